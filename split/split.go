package split

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/tyse/core/dimen"
)

// UnitKind identifies the kind of segmentation that produced a set of
// units. It is handed to completion callbacks alongside the units.
type UnitKind int

const (
	Characters UnitKind = iota
	Words
	Lines
)

func (k UnitKind) String() string {
	switch k {
	case Characters:
		return "characters"
	case Words:
		return "words"
	case Lines:
		return "lines"
	}
	return "unknown"
}

// WrapConfig configures how wrapping operations build their units. It is a
// pure value without identity.
type WrapConfig struct {
	UseInlineContainer bool              // <span> containers instead of <div>
	ClassName          string            // class set on every created unit
	BaseStyles         map[string]string // inline styles set on every unit
	DataAttributes     map[string]string // data attributes set on every unit
	InlineBlock        bool              // display:inline-block on units
}

// DefaultWrapConfig returns the configuration used by the engine when the
// caller does not care: inline-block spans without classes.
func DefaultWrapConfig() WrapConfig {
	return WrapConfig{
		UseInlineContainer: true,
		InlineBlock:        true,
	}
}

func (cfg WrapConfig) containerTag() string {
	if cfg.UseInlineContainer {
		return "span"
	}
	return "div"
}

const (
	defaultTolerance    = 5 * dimen.PT
	defaultSmallContent = 100 // runes of markup
)

// Splitter performs line detection, unit wrapping and geometric grouping.
// The pipeline is synchronous and single-threaded: every measurement must
// reflect the mutation immediately preceding it.
type Splitter struct {
	tolerance  dimen.DU
	smallLimit int
}

// Option is a configuration directive for Splitter construction.
type Option func(s *Splitter)

// Tolerance sets how much the measured height (for line detection) or the
// vertical position (for grouping) may vary before a new line is assumed.
func Tolerance(t dimen.DU) Option {
	return func(s *Splitter) {
		if t >= 0 {
			s.tolerance = t
		}
	}
}

// SmallContentLimit sets the markup length (in runes) up to which styled
// content is preserved as a single line instead of being measured.
func SmallContentLimit(n int) Option {
	return func(s *Splitter) {
		if n >= 0 {
			s.smallLimit = n
		}
	}
}

// New creates a Splitter, applying options.
func New(opts ...Option) *Splitter {
	s := &Splitter{
		tolerance:  defaultTolerance,
		smallLimit: defaultSmallContent,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tolerance returns the configured measurement tolerance.
func (s *Splitter) Tolerance() dimen.DU {
	return s.tolerance
}
