package backend

import (
	"crypto/rand"
	"testing"

	"github.com/hashicorp/vault/shamir"
	"github.com/klauspost/reedsolomon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Davincible/guff/pkg/field"
)

// combine recovers a secret split by vault's shamir package with Lagrange
// interpolation at zero. Each share carries its x coordinate in the last
// byte.
func combine(t *testing.T, f field.Field[uint8], shares [][]byte) []byte {
	t.Helper()
	n := len(shares[0]) - 1
	xs := make([]uint8, len(shares))
	for i, s := range shares {
		xs[i] = s[n]
	}

	secret := make([]byte, n)
	for j := range shares {
		// basis_j(0) = prod_{m != j} x_m / (x_m - x_j)
		basis := f.One()
		for m := range shares {
			if m == j {
				continue
			}
			q, err := f.Div(xs[m], f.Add(xs[m], xs[j]))
			require.NoError(t, err)
			basis = f.Mul(basis, q)
		}
		for i := 0; i < n; i++ {
			secret[i] = f.Add(secret[i], f.Mul(shares[j][i], basis))
		}
	}
	return secret
}

func TestVaultShamirOracle(t *testing.T) {
	secret := make([]byte, 64)
	_, err := rand.Read(secret)
	require.NoError(t, err)

	shares, err := shamir.Split(secret, 7, 4)
	require.NoError(t, err)

	for _, f := range backends[uint8](t, field.MustDescriptor(8, 0x11B)) {
		t.Run(name(f), func(t *testing.T) {
			assert.Equal(t, secret, combine(t, f, shares[:4]))
			assert.Equal(t, secret, combine(t, f, shares[3:]))
			assert.Equal(t, secret, combine(t, f, [][]byte{shares[0], shares[2], shares[4], shares[6]}))
		})
	}

	f, err := New8(0x11B)
	require.NoError(t, err)
	assert.Equal(t, secret, combine(t, f, shares[1:5]))
}

func TestReedSolomonOracle(t *testing.T) {
	in := make([]byte, 256)
	for i := range in {
		in[i] = byte(i)
	}
	out := make([]byte, len(in))
	var ll reedsolomon.LowLevel

	for _, f := range backends[uint8](t, field.MustDescriptor(8, 0x11D)) {
		t.Run(name(f), func(t *testing.T) {
			for c := 0; c < 256; c++ {
				ll.GalMulSlice(byte(c), in, out)
				for i, v := range in {
					require.Equal(t, out[i], f.Mul(uint8(c), v), "c=%#x v=%#x", c, v)
				}
			}
			for e := 1; e < 256; e++ {
				inv, err := f.Inv(uint8(e))
				require.NoError(t, err)
				require.Equal(t, reedsolomon.Inv(byte(e)), inv, "e=%#x", e)
			}
		})
	}
}
