package posmap

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
)

// Fallback is the policy applied when forward alignment cannot find an
// output character in the original text (collapsed whitespace, trimmed
// boundaries, inserted separators).
type Fallback int

const (
	// FallbackSplitPosition records the output position itself.
	FallbackSplitPosition Fallback = iota
	// FallbackLastKnown repeats the last successfully mapped original position.
	FallbackLastKnown
	// FallbackInterpolate is reserved for interpolating between neighboring
	// known positions. It is not implemented yet.
	FallbackInterpolate
)

const defaultMaxWarnings = 10

// Mapper builds and stores position maps. The zero value is not usable;
// create instances with New.
type Mapper struct {
	fallback    Fallback
	maxWarnings int
	validate    bool
	maps        map[string][]int
}

// Option is a configuration directive for Mapper construction.
type Option func(m *Mapper)

// WithFallback selects the alignment-miss policy. Selecting the reserved
// FallbackInterpolate is rejected and keeps the previous setting.
func WithFallback(f Fallback) Option {
	return func(m *Mapper) {
		if f == FallbackInterpolate {
			tracer().Errorf("posmap: interpolating fallback is reserved, keeping %v", m.fallback)
			return
		}
		m.fallback = f
	}
}

// MaxWarnings caps the number of alignment misses that are counted and
// logged per map, to avoid unbounded logging on heavily transformed texts.
func MaxWarnings(n int) Option {
	return func(m *Mapper) {
		if n >= 0 {
			m.maxWarnings = n
		}
	}
}

// Validate switches the post-alignment range check on or off. Violations
// are logged, never fatal.
func Validate(on bool) Option {
	return func(m *Mapper) {
		m.validate = on
	}
}

// New creates a Mapper, applying options.
func New(opts ...Option) *Mapper {
	m := &Mapper{
		fallback:    FallbackSplitPosition,
		maxWarnings: defaultMaxWarnings,
		validate:    true,
		maps:        make(map[string][]int),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Result is the outcome of building one position map.
type Result struct {
	PositionMap   []int  // output position → original position
	Reconstructed string // concatenation of the input fragments
	Success       bool
	MappedCount   int // characters aligned by exact match
	WarningCount  int // alignment misses, capped at MaxWarnings
	ExactMatch    bool
}

// BuildMap aligns the concatenation of fragments with the original text.
// If both are character-identical the identity map is returned; otherwise a
// forward greedy alignment is run: a cursor scans the original text for the
// first match of each output character, applying the configured fallback on
// a miss. BuildMap never fails; degraded alignments are reported through
// WarningCount.
func (m *Mapper) BuildMap(original string, fragments []string) Result {
	reconstructed := strings.Join(fragments, "")
	res := Result{
		Reconstructed: reconstructed,
		Success:       true,
	}
	orig := []rune(original)
	out := []rune(reconstructed)
	res.PositionMap = make([]int, len(out))

	if original == reconstructed {
		for i := range res.PositionMap {
			res.PositionMap[i] = i
		}
		res.MappedCount = len(out)
		res.ExactMatch = true
		return res
	}

	cursor := 0
	lastKnown := 0
	for i, r := range out {
		hit := -1
		for j := cursor; j < len(orig); j++ {
			if orig[j] == r {
				hit = j
				break
			}
		}
		if hit >= 0 {
			res.PositionMap[i] = hit
			cursor = hit + 1
			lastKnown = hit
			res.MappedCount++
			continue
		}
		switch m.fallback {
		case FallbackLastKnown:
			res.PositionMap[i] = lastKnown
		default:
			res.PositionMap[i] = i
		}
		if res.WarningCount < m.maxWarnings {
			res.WarningCount++
			tracer().P("pos", i).Infof("posmap: no match for %q, fallback to %d",
				string(r), res.PositionMap[i])
		}
	}
	if m.validate {
		m.checkRanges(res.PositionMap, len(orig))
	}
	return res
}

// checkRanges logs positions outside [0, origLen). Out-of-range entries can
// stem from the split-position fallback on shortened originals; they are a
// signal for degraded output, not a failure.
func (m *Mapper) checkRanges(pm []int, origLen int) {
	logged := 0
	for i, v := range pm {
		if v >= 0 && v < origLen {
			continue
		}
		if logged < m.maxWarnings {
			logged++
			tracer().P("pos", i).Infof("posmap: mapped position %d outside original [0,%d)", v, origLen)
		}
	}
}

// --- Storage ---------------------------------------------------------------

// Store keeps a copy of a position map under an element id, overwriting any
// previous map for the same id. The caller's slice is not aliased.
func (m *Mapper) Store(elementID string, pm []int) {
	cp := make([]int, len(pm))
	copy(cp, pm)
	m.maps[elementID] = cp
}

// Get returns a copy of the stored map for an element id. Mutating the
// returned slice does not affect the stored version.
func (m *Mapper) Get(elementID string) ([]int, bool) {
	pm, ok := m.maps[elementID]
	if !ok {
		return nil, false
	}
	cp := make([]int, len(pm))
	copy(cp, pm)
	return cp, true
}

// Has checks for a stored map without copying it.
func (m *Mapper) Has(elementID string) bool {
	_, ok := m.maps[elementID]
	return ok
}

// Delete removes the map for an element id, reporting wether one existed.
func (m *Mapper) Delete(elementID string) bool {
	_, ok := m.maps[elementID]
	delete(m.maps, elementID)
	return ok
}

// ClearAll drops every stored map.
func (m *Mapper) ClearAll() {
	m.maps = make(map[string][]int)
}

// Stats are aggregate numbers over all stored maps.
type Stats struct {
	TotalMaps   int
	MemoryBytes int     // rough estimate, 8 bytes per entry
	LargestMap  int     // entry count of the largest map
	AverageSize float64 // mean entry count
}

// Stats returns aggregate statistics for the store.
func (m *Mapper) Stats() Stats {
	var s Stats
	s.TotalMaps = len(m.maps)
	total := 0
	for _, pm := range m.maps {
		total += len(pm)
		if len(pm) > s.LargestMap {
			s.LargestMap = len(pm)
		}
	}
	s.MemoryBytes = total * 8
	if s.TotalMaps > 0 {
		s.AverageSize = float64(total) / float64(s.TotalMaps)
	}
	return s
}
