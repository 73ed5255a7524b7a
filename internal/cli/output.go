package cli

import (
	"io"
	"math/bits"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Davincible/guff/pkg/config"
)

// newProgress returns a progress bar on stderr. It is silent when the
// config disables it, output is JSON or stderr is not a terminal.
func newProgress(cmd *cobra.Command, cfg *config.Config, total int64, desc string) *progressbar.ProgressBar {
	w := cmd.ErrOrStderr()
	if !cfg.UI.ProgressBar || cfg.UI.Verbosity == "quiet" || jsonOutput(cmd) || !isTerminal(w) {
		return progressbar.DefaultSilent(total, desc)
	}
	return progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the column count of w, or 80 when w is not a
// terminal.
func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			return cols
		}
	}
	return 80
}

// elementBits is the width of the smallest element type holding width bits.
func elementBits(width int) int {
	return max(8, 1<<bits.Len(uint(width-1)))
}
