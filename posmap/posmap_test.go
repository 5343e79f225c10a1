package posmap_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/segment/posmap"
	"github.com/stretchr/testify/require"
)

func TestBuildMapIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segment.posmap")
	defer teardown()
	//
	m := posmap.New()
	res := m.BuildMap("Hello", []string{"Hello"})
	if !res.ExactMatch {
		t.Error("expected identical texts to be an exact match, aren't")
	}
	for i, v := range res.PositionMap {
		if v != i {
			t.Fatalf("expected identity map, position %d maps to %d", i, v)
		}
	}
	if res.MappedCount != 5 || res.WarningCount != 0 {
		t.Errorf("expected 5 mapped characters without warnings, have %d/%d",
			res.MappedCount, res.WarningCount)
	}
}

func TestBuildMapFragments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segment.posmap")
	defer teardown()
	//
	m := posmap.New()
	res := m.BuildMap("Hello World", []string{"Hello ", "World"})
	if res.Reconstructed != "Hello World" {
		t.Errorf("expected fragments to reconstruct the original, have %q", res.Reconstructed)
	}
	if !res.ExactMatch {
		t.Error("expected an exact match, isn't")
	}
	if len(res.PositionMap) != 11 {
		t.Fatalf("expected a map of length 11, have %d", len(res.PositionMap))
	}
	for i, v := range res.PositionMap {
		if v != i {
			t.Errorf("expected identity at %d, have %d", i, v)
		}
	}
}

func TestBuildMapFallbacks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segment.posmap")
	defer teardown()
	//
	cases := []struct {
		name      string
		fallback  posmap.Fallback
		original  string
		fragments []string
		want      []int
		warnings  int
	}{
		{
			name:      "collapsed whitespace aligns exactly",
			fallback:  posmap.FallbackSplitPosition,
			original:  "a  b",
			fragments: []string{"a b"},
			want:      []int{0, 1, 3},
			warnings:  0,
		},
		{
			name:      "inserted character falls back to split position",
			fallback:  posmap.FallbackSplitPosition,
			original:  "ab",
			fragments: []string{"a", "x", "b"},
			want:      []int{0, 1, 1},
			warnings:  1,
		},
		{
			name:      "inserted character repeats last known position",
			fallback:  posmap.FallbackLastKnown,
			original:  "ab",
			fragments: []string{"a", "x", "b"},
			want:      []int{0, 0, 1},
			warnings:  1,
		},
		{
			// the interpolating policy is reserved; selecting it is
			// rejected and the default split-position policy stays active
			name:      "reserved interpolating policy is rejected",
			fallback:  posmap.FallbackInterpolate,
			original:  "ab",
			fragments: []string{"a", "x", "b"},
			want:      []int{0, 1, 1},
			warnings:  1,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := posmap.New(posmap.WithFallback(c.fallback))
			res := m.BuildMap(c.original, c.fragments)
			require.True(t, res.Success)
			require.False(t, res.ExactMatch)
			require.Equal(t, c.want, res.PositionMap)
			require.Equal(t, c.warnings, res.WarningCount)
		})
	}
}

func TestBuildMapWarningCap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segment.posmap")
	defer teardown()
	//
	m := posmap.New(posmap.MaxWarnings(3))
	res := m.BuildMap("", []string{"xxxxxxxx"}) // every character misses
	if res.WarningCount != 3 {
		t.Errorf("expected warning count to be capped at 3, is %d", res.WarningCount)
	}
	if res.MappedCount != 0 {
		t.Errorf("expected no mapped characters, have %d", res.MappedCount)
	}
}

func TestStoreCopySemantics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segment.posmap")
	defer teardown()
	//
	m := posmap.New()
	pm := []int{0, 1, 2}
	m.Store("el", pm)
	pm[0] = 99 // mutating the input must not reach the store
	got, ok := m.Get("el")
	if !ok {
		t.Fatal("expected a stored map for 'el', have none")
	}
	if got[0] != 0 {
		t.Errorf("store aliases the caller's slice, got[0] = %d", got[0])
	}
	got[1] = 99 // mutating the output must not reach the store either
	again, _ := m.Get("el")
	if again[1] != 1 {
		t.Errorf("get aliases the stored slice, again[1] = %d", again[1])
	}
}

func TestStoreLifecycle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segment.posmap")
	defer teardown()
	//
	m := posmap.New()
	m.Store("a", []int{0, 1, 2, 3})
	m.Store("b", []int{0, 1})
	if !m.Has("a") || !m.Has("b") {
		t.Fatal("expected both maps to be stored, aren't")
	}
	stats := m.Stats()
	if stats.TotalMaps != 2 || stats.LargestMap != 4 || stats.AverageSize != 3 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if !m.Delete("a") || m.Delete("a") {
		t.Error("expected delete to report presence exactly once")
	}
	m.ClearAll()
	if m.Has("b") {
		t.Error("expected clear-all to evict 'b', didn't")
	}
}
