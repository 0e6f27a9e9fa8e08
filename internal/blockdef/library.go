package blockdef

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"mc-blueprint-converter/internal/voxel"
)

// DefaultColor is the gray used for blocks with no known definition.
const DefaultColor = voxel.Color(0x808080)

// Generator produces a definition for a canonical signature. Returning
// (nil, nil) means the generator has no model for the signature.
type Generator interface {
	Generate(sig Signature) (*Definition, error)
}

// Library memoizes block definitions per canonical signature for the life
// of one run. Lookups are safe for concurrent use; a singleflight gate
// guarantees at most one generation per missing signature, with concurrent
// requesters waiting on the first generation's result.
type Library struct {
	gen      Generator
	stampRes int

	group singleflight.Group

	mu       sync.Mutex
	defs     map[Signature]*Definition // nil entry = known miss
	misses   map[string]int
	fallback *Definition
}

// NewLibrary creates a library around a generator. stampRes is the edge
// length of one block stamp in voxels (16 for standard assets).
func NewLibrary(gen Generator, stampRes int) *Library {
	return &Library{
		gen:      gen,
		stampRes: stampRes,
		defs:     make(map[Signature]*Definition),
		misses:   make(map[string]int),
	}
}

// StampResolution returns the stamp edge length in voxels.
func (l *Library) StampResolution() int {
	return l.stampRes
}

// Resolve returns the definition for a signature, generating and caching
// it on first reference. Generation failures degrade to the default stamp
// and are tallied in the coverage report; they never abort a run.
func (l *Library) Resolve(sig Signature) Resolution {
	canon := sig.Canonical()

	l.mu.Lock()
	def, known := l.defs[canon]
	l.mu.Unlock()

	if !known {
		v, err, _ := l.group.Do(canon.Name+"#"+fmt.Sprint(canon.Data), func() (any, error) {
			d, err := l.gen.Generate(canon)
			if err != nil {
				return nil, err
			}
			l.mu.Lock()
			l.defs[canon] = d
			l.mu.Unlock()
			return d, nil
		})
		if err != nil {
			// Cache the failure so the signature is generated at most once.
			l.mu.Lock()
			if _, dup := l.defs[canon]; !dup {
				l.defs[canon] = nil
			}
			l.mu.Unlock()
			return l.fallbackResolution(sig, err.Error())
		}
		def, _ = v.(*Definition)
	}

	if def == nil {
		return l.fallbackResolution(sig, "no model for signature")
	}
	return Resolution{Def: def}
}

func (l *Library) fallbackResolution(sig Signature, reason string) Resolution {
	l.mu.Lock()
	l.misses[sig.Name]++
	l.mu.Unlock()
	return Resolution{Def: l.DefaultStamp(), Fallback: true, Reason: reason}
}

// DefaultStamp returns the fixed fallback: a solid gray cube filling one
// block cell. Built once and shared; read-only like every definition.
func (l *Library) DefaultStamp() *Definition {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fallback == nil {
		n := l.stampRes
		voxels := make([]StampVoxel, 0, n*n*n)
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				for x := 0; x < n; x++ {
					voxels = append(voxels, StampVoxel{X: x, Y: y, Z: z, Color: DefaultColor})
				}
			}
		}
		l.fallback = NewDefinition(voxels)
	}
	return l.fallback
}

// Report returns a snapshot of the coverage counters.
func (l *Library) Report() Report {
	l.mu.Lock()
	defer l.mu.Unlock()
	misses := make(map[string]int, len(l.misses))
	for k, v := range l.misses {
		misses[k] = v
	}
	return Report{Misses: misses}
}
