package blockdef

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mc-blueprint-converter/internal/voxel"
)

// countingGenerator tracks how often each signature is generated.
type countingGenerator struct {
	calls atomic.Int64
	delay time.Duration
	def   *Definition
	err   error
}

func (g *countingGenerator) Generate(sig Signature) (*Definition, error) {
	g.calls.Add(1)
	if g.delay > 0 {
		time.Sleep(g.delay)
	}
	return g.def, g.err
}

func stamp(color voxel.Color) *Definition {
	return NewDefinition([]StampVoxel{{X: 0, Y: 0, Z: 0, Color: color}})
}

func TestResolveMemoizes(t *testing.T) {
	gen := &countingGenerator{def: stamp(0xFF0000)}
	lib := NewLibrary(gen, 16)

	sig := Signature{Name: "stone", Data: 0}
	first := lib.Resolve(sig)
	second := lib.Resolve(sig)

	assert.Equal(t, int64(1), gen.calls.Load())
	assert.False(t, first.Fallback)
	assert.Same(t, first.Def, second.Def)
}

func TestResolveCanonicalizes(t *testing.T) {
	// Stair variants differing only in facing share one stamp.
	gen := &countingGenerator{def: stamp(0x00FF00)}
	lib := NewLibrary(gen, 16)

	a := lib.Resolve(Signature{Name: "oak_stairs", Data: 0})
	b := lib.Resolve(Signature{Name: "oak_stairs", Data: 3})
	c := lib.Resolve(Signature{Name: "oak_stairs", Data: 0x4})

	assert.Equal(t, int64(1), gen.calls.Load())
	assert.Same(t, a.Def, b.Def)
	assert.Same(t, a.Def, c.Def)
}

func TestResolveMissFallsBack(t *testing.T) {
	gen := &countingGenerator{} // returns (nil, nil): no model
	lib := NewLibrary(gen, 4)

	res := lib.Resolve(Signature{Name: "mystery_block", Data: 0})
	require.True(t, res.Fallback)
	assert.Same(t, lib.DefaultStamp(), res.Def)

	// The miss is cached: no second generation attempt.
	lib.Resolve(Signature{Name: "mystery_block", Data: 0})
	assert.Equal(t, int64(1), gen.calls.Load())

	rep := lib.Report()
	assert.Equal(t, 2, rep.Total())
	assert.Equal(t, 2, rep.Misses["mystery_block"])
}

func TestResolveErrorFallsBack(t *testing.T) {
	gen := &countingGenerator{err: errors.New("texture missing")}
	lib := NewLibrary(gen, 4)

	res := lib.Resolve(Signature{Name: "broken", Data: 0})
	require.True(t, res.Fallback)
	assert.Contains(t, res.Reason, "texture missing")

	// Failures are cached too: one generation per signature per run.
	lib.Resolve(Signature{Name: "broken", Data: 0})
	assert.Equal(t, int64(1), gen.calls.Load())
}

func TestResolveConcurrentSingleGeneration(t *testing.T) {
	gen := &countingGenerator{def: stamp(0x0000FF), delay: 20 * time.Millisecond}
	lib := NewLibrary(gen, 16)

	const workers = 16
	var wg sync.WaitGroup
	results := make([]Resolution, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = lib.Resolve(Signature{Name: "stone", Data: 0})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(1), gen.calls.Load())
	for _, r := range results {
		assert.False(t, r.Fallback)
		assert.Same(t, results[0].Def, r.Def)
	}
}

func TestDefaultStamp(t *testing.T) {
	lib := NewLibrary(&countingGenerator{}, 3)

	def := lib.DefaultStamp()
	assert.Len(t, def.Voxels, 27)
	for _, v := range def.Voxels {
		assert.Equal(t, DefaultColor, v.Color)
	}
	dx, dy, dz := def.Bounds.Extents()
	assert.Equal(t, [3]int{3, 3, 3}, [3]int{dx, dy, dz})

	// Built once, shared.
	assert.Same(t, def, lib.DefaultStamp())
}

func TestNewDefinition(t *testing.T) {
	d := NewDefinition([]StampVoxel{
		{X: 5, Y: 1, Z: 2},
		{X: 0, Y: 3, Z: 0},
		{X: 2, Y: 0, Z: 4},
	})

	assert.Equal(t, voxel.Bounds{MinX: 0, MinY: 0, MinZ: 0, MaxX: 5, MaxY: 3, MaxZ: 4}, d.Bounds)

	// Voxels come back in packed-key order.
	for i := 1; i < len(d.Voxels); i++ {
		a, b := d.Voxels[i-1], d.Voxels[i]
		assert.Less(t, voxel.Pack(a.X, a.Y, a.Z), voxel.Pack(b.X, b.Y, b.Z))
	}
}

func TestCanonical(t *testing.T) {
	cases := []struct {
		name string
		in   Signature
		want Signature
	}{
		{"stairs mask facing and flip", Signature{"oak_stairs", 0x7}, Signature{"oak_stairs", 0}},
		{"pillar mask axis", Signature{"oak_log", 0x4 | 0x1}, Signature{"oak_log", 0x1}},
		{"slab mask half", Signature{"stone_slab", 0x8 | 0x2}, Signature{"stone_slab", 0x2}},
		{"fixture drops all", Signature{"torch", 0x5}, Signature{"torch", 0}},
		{"door mask facing", Signature{"oak_door", 0x3 | 0x8}, Signature{"oak_door", 0x8}},
		{"plain block unchanged", Signature{"stone", 0x6}, Signature{"stone", 0x6}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.in.Canonical())
		})
	}
}
