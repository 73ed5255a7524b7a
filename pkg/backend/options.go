package backend

import (
	"log/slog"

	"github.com/Davincible/guff/pkg/field"
	"github.com/Davincible/guff/pkg/tables"
)

// Option overrides a switchboard parameter.
type Option func(*options)

type options struct {
	kinds     []field.Kind
	limits    tables.Limits
	embedded  bool
	cache     *tables.Cache
	selfCheck int
	logger    *slog.Logger
	host      *Host
}

func defaultOptions() options {
	return options{
		limits:    tables.DefaultLimits,
		embedded:  true,
		selfCheck: DefaultSelfCheckSamples,
	}
}

func (o *options) log() *slog.Logger {
	if o.logger == nil {
		return slog.Default()
	}
	return o.logger
}

// WithKinds sets the backend kinds to try, most preferred first. Kinds
// not listed are never selected, except the reference, which is always
// the last resort. Listing KindReference drops everything after it.
func WithKinds(kinds ...field.Kind) Option {
	return func(o *options) {
		o.kinds = append([]field.Kind(nil), kinds...)
	}
}

// WithLimits bounds the size of tables generated at construction.
func WithLimits(l tables.Limits) Option {
	return func(o *options) {
		o.limits = l
	}
}

// WithoutEmbedded ignores compiled-in tables and always generates.
func WithoutEmbedded() Option {
	return func(o *options) {
		o.embedded = false
	}
}

// WithCache shares generated tables between fields through c.
func WithCache(c *tables.Cache) Option {
	return func(o *options) {
		o.cache = c
	}
}

// WithSelfCheck sets how many samples a candidate backend is compared on
// before it is accepted. Zero disables the check.
func WithSelfCheck(samples int) Option {
	return func(o *options) {
		o.selfCheck = max(samples, 0)
	}
}

// WithLogger sets the logger used to report selection attempts.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithHost demotes backends whose tables would not fit in h's L2 cache.
func WithHost(h Host) Option {
	return func(o *options) {
		o.host = &h
	}
}
