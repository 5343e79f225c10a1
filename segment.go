package segment

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/npillmayer/segment/inline"
	"github.com/npillmayer/segment/notify"
	"github.com/npillmayer/segment/posmap"
	"github.com/npillmayer/segment/split"
	"github.com/npillmayer/segment/styled"
)

// Engine bundles the four collaborating services of the segmentation
// pipeline into one explicitly constructed, independently lifetimed object.
// All per-element state lives inside the services, keyed by opaque element
// ids; the id is the only link between them.
type Engine struct {
	Split      *split.Splitter
	Styles     *inline.Preserver
	Positions  *posmap.Mapper
	Completion *notify.Registry
}

// Option is a configuration directive for Engine construction.
type Option func(cfg *config)

type config struct {
	splitOpts  []split.Option
	inlineOpts []inline.Option
	posmapOpts []posmap.Option
	notifyOpts []notify.Option
}

// SplitOptions forwards options to the engine's Splitter.
func SplitOptions(opts ...split.Option) Option {
	return func(cfg *config) { cfg.splitOpts = append(cfg.splitOpts, opts...) }
}

// StyleOptions forwards options to the engine's style Preserver.
func StyleOptions(opts ...inline.Option) Option {
	return func(cfg *config) { cfg.inlineOpts = append(cfg.inlineOpts, opts...) }
}

// PositionOptions forwards options to the engine's position Mapper.
func PositionOptions(opts ...posmap.Option) Option {
	return func(cfg *config) { cfg.posmapOpts = append(cfg.posmapOpts, opts...) }
}

// NotifyOptions forwards options to the engine's callback Registry.
func NotifyOptions(opts ...notify.Option) Option {
	return func(cfg *config) { cfg.notifyOpts = append(cfg.notifyOpts, opts...) }
}

// New creates an Engine with freshly constructed services.
func New(opts ...Option) *Engine {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Engine{
		Split:      split.New(cfg.splitOpts...),
		Styles:     inline.New(cfg.inlineOpts...),
		Positions:  posmap.New(cfg.posmapOpts...),
		Completion: notify.New(cfg.notifyOpts...),
	}
}

// EnsureID returns the element id unchanged, or a generated one if the
// caller passed an empty id.
func (e *Engine) EnsureID(elementID string) string {
	if elementID == "" {
		return uuid.NewString()
	}
	return elementID
}

// Reset clears all per-element state of every service, e.g. for test
// isolation. Nothing is persisted beyond the process anyway.
func (e *Engine) Reset() {
	e.Styles.ClearAll()
	e.Positions.ClearAll()
	e.Completion.ClearAll()
}

// SplitCharacters wraps an element into per-character units and notifies
// the completion callback registered for the element id.
func (e *Engine) SplitCharacters(elementID string, node styled.Node, cfg split.WrapConfig) ([]styled.Node, notify.NotificationResult) {
	units := e.Split.WrapCharacters(node, cfg)
	return units, e.Completion.Notify(elementID, units, split.Characters)
}

// SplitWords wraps an element into per-word units and notifies the
// completion callback registered for the element id.
func (e *Engine) SplitWords(elementID string, node styled.Node, cfg split.WrapConfig) ([]styled.Node, notify.NotificationResult) {
	units := e.Split.WrapWords(node, cfg)
	return units, e.Completion.Notify(elementID, units, split.Words)
}

// SplitLines runs the full line pipeline: capture the element's style
// facts, detect line boundaries, and, when detection had to sacrifice the
// markup, re-style each detected line through a position map aligning the
// detected text with the original text. The resulting fragments are wrapped
// into line units and the completion callback is notified.
func (e *Engine) SplitLines(elementID string, node styled.Node, cfg split.WrapConfig) ([]styled.Node, notify.NotificationResult) {
	original := node.TextContent()
	capture := e.Styles.Capture(node, elementID)
	detected := e.Split.DetectLines(node)
	fragments := detected.Lines
	if detected.Success && !detected.HTMLPreserved && len(capture.Facts) > 0 {
		fragments = e.restyleLines(elementID, original, detected.Lines)
	}
	units := e.Split.WrapFragments(node, fragments, cfg)
	return units, e.Completion.Notify(elementID, units, split.Lines)
}

// restyleLines aligns the detected plain-text lines with the original text
// and reconstructs per-line HTML from the captured style facts. The
// position map is stored for the element so the host can translate unit
// positions back to source positions later.
func (e *Engine) restyleLines(elementID, original string, lines []string) []string {
	tracer().Debugf("engine: re-styling %d detected lines for %q", len(lines), elementID)
	res := e.Positions.BuildMap(original, lines)
	e.Positions.Store(elementID, res.PositionMap)
	restyled := make([]string, len(lines))
	offset := 0
	for i, line := range lines {
		start := offset
		if start < len(res.PositionMap) {
			start = res.PositionMap[start]
		}
		restyled[i] = e.Styles.Reconstruct(line, start, elementID)
		offset += utf8.RuneCountInString(line)
	}
	return restyled
}
