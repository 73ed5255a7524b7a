package tables

import (
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/Davincible/guff/pkg/field"
	"github.com/Davincible/guff/pkg/gf2"
)

// Cache memoizes generated tables. It is an explicit object owned by the
// caller; nothing is cached unless a Cache is passed in. Concurrent
// requests for the same table share a single build, and failed builds are
// not remembered. A nil *Cache is valid and builds every time.
type Cache struct {
	tables sync.Map
	group  singleflight.Group
	builds atomic.Int64
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

type cacheKey struct {
	kind      Kind
	elemBits  int
	desc      field.Descriptor
	bits      int
	generator uint64
}

func (k cacheKey) String() string {
	return fmt.Sprintf("%s/%d/%s/%d/%d", k.kind, k.elemBits, k.desc, k.bits, k.generator)
}

// Builds returns how many tables the cache has generated.
func (c *Cache) Builds() int64 {
	if c == nil {
		return 0
	}
	return c.builds.Load()
}

// Len returns the number of tables held.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	n := 0
	c.tables.Range(func(any, any) bool {
		n++
		return true
	})
	return n
}

func load[T Table](c *Cache, key cacheKey, build func() (T, error)) (T, error) {
	if c == nil {
		return build()
	}
	if v, ok := c.tables.Load(key); ok {
		return v.(T), nil
	}
	v, err, _ := c.group.Do(key.String(), func() (any, error) {
		if v, ok := c.tables.Load(key); ok {
			return v, nil
		}
		t, err := build()
		if err != nil {
			return nil, err
		}
		c.builds.Add(1)
		c.tables.Store(key, t)
		return t, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// CachedLogExp is BuildLogExp through c.
func CachedLogExp[E field.Element](c *Cache, d field.Descriptor, lim Limits) (*LogExp[E], error) {
	if d.IsZero() {
		return BuildLogExp[E](d, lim)
	}
	return CachedLogExpWithGenerator(c, d, E(gf2.Reduce(2, d.FullPoly())), lim)
}

// CachedLogExpWithGenerator is BuildLogExpWithGenerator through c.
func CachedLogExpWithGenerator[E field.Element](c *Cache, d field.Descriptor, g E, lim Limits) (*LogExp[E], error) {
	if err := lim.Allow(KindLogExp, d.Width(), 0); err != nil {
		return nil, err
	}
	key := cacheKey{kind: KindLogExp, elemBits: field.ElementBits[E](), desc: d, generator: uint64(g)}
	return load(c, key, func() (*LogExp[E], error) { return BuildLogExpWithGenerator(d, g, lim) })
}

// CachedFullMul is BuildFullMul through c.
func CachedFullMul[E field.Element](c *Cache, d field.Descriptor, lim Limits) (*FullMul[E], error) {
	if err := lim.Allow(KindFullMul, d.Width(), 0); err != nil {
		return nil, err
	}
	key := cacheKey{kind: KindFullMul, elemBits: field.ElementBits[E](), desc: d}
	return load(c, key, func() (*FullMul[E], error) { return BuildFullMul[E](d, lim) })
}

// CachedFullInv is BuildFullInv through c.
func CachedFullInv[E field.Element](c *Cache, d field.Descriptor, lim Limits) (*FullInv[E], error) {
	if err := lim.Allow(KindFullInv, d.Width(), 0); err != nil {
		return nil, err
	}
	key := cacheKey{kind: KindFullInv, elemBits: field.ElementBits[E](), desc: d}
	return load(c, key, func() (*FullInv[E], error) { return BuildFullInv[E](d, lim) })
}

// CachedMull is BuildMull through c.
func CachedMull(c *Cache, bits int, lim Limits) (*Mull, error) {
	if err := lim.Allow(KindMull, 0, bits); err != nil {
		return nil, err
	}
	key := cacheKey{kind: KindMull, elemBits: 16, bits: bits}
	return load(c, key, func() (*Mull, error) { return BuildMull(bits, lim) })
}

// CachedReduction is BuildReduction through c.
func CachedReduction[E field.Element](c *Cache, d field.Descriptor, bits int, lim Limits) (*Reduction[E], error) {
	if err := lim.Allow(KindReduction, d.Width(), bits); err != nil {
		return nil, err
	}
	key := cacheKey{kind: KindReduction, elemBits: field.ElementBits[E](), desc: d, bits: bits}
	return load(c, key, func() (*Reduction[E], error) { return BuildReduction[E](d, bits, lim) })
}
