package split

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/npillmayer/segment/styled"
)

// IndexAttribute is the attribute carrying a unit's sequential position.
const IndexAttribute = "data-segment-index"

// WrapCharacters replaces the content of an element with one unit per
// Unicode code point and returns the units in original order. Whitespace
// characters become units of their own, styled with white-space:pre so
// spacing survives layout changes.
func (s *Splitter) WrapCharacters(node styled.Node, cfg WrapConfig) []styled.Node {
	text := node.TextContent()
	node.RemoveChildren()
	runes := []rune(text)
	units := make([]styled.Node, 0, len(runes))
	for i, r := range runes {
		unit := newUnit(node, cfg, i, string(r))
		if unicode.IsSpace(r) {
			unit.SetStyle("white-space", "pre")
		}
		node.AppendChild(unit)
		units = append(units, unit)
	}
	return units
}

// WrapWords replaces the content of an element with one unit per word,
// splitting on run-preserving whitespace boundaries. Whitespace-only
// tokens become units of their own so the original spacing is addressable
// and survives re-layout.
func (s *Splitter) WrapWords(node styled.Node, cfg WrapConfig) []styled.Node {
	text := node.TextContent()
	node.RemoveChildren()
	tokens := splitRuns(text)
	units := make([]styled.Node, 0, len(tokens))
	for i, tok := range tokens {
		unit := newUnit(node, cfg, i, tok)
		if strings.TrimSpace(tok) == "" {
			unit.SetStyle("white-space", "pre")
		}
		node.AppendChild(unit)
		units = append(units, unit)
	}
	return units
}

// WrapLines detects line boundaries and replaces the content of an element
// with one container per detected line. Line content is assigned as raw
// HTML, preserving any styling markup the fragments carry.
func (s *Splitter) WrapLines(node styled.Node, cfg WrapConfig) []styled.Node {
	res := s.DetectLines(node)
	if !res.Success {
		tracer().Infof("split: wrapping lines from degraded detection: %s", res.Err)
	}
	return s.WrapFragments(node, res.Lines, cfg)
}

// WrapFragments replaces the content of an element with one container per
// fragment, assigning each fragment as raw HTML. It is the second half of
// WrapLines, exposed for callers that post-process detected lines (e.g.
// re-styling them through package inline) before wrapping.
func (s *Splitter) WrapFragments(node styled.Node, fragments []string, cfg WrapConfig) []styled.Node {
	node.RemoveChildren()
	units := make([]styled.Node, 0, len(fragments))
	for i, fragment := range fragments {
		unit := newUnit(node, cfg, i, "")
		if err := unit.SetInnerHTML(fragment); err != nil {
			tracer().Errorf("split: unparsable line fragment %d: %v", i, err)
			unit.SetTextContent(fragment)
		}
		node.AppendChild(unit)
		units = append(units, unit)
	}
	return units
}

// newUnit creates one positioned unit: sequential index, configured class
// and data attributes, and inline-block styling with a stable transform
// origin so the host can animate units independently.
func newUnit(owner styled.Node, cfg WrapConfig, index int, text string) styled.Node {
	unit := owner.CreateElement(cfg.containerTag())
	if text != "" {
		unit.SetTextContent(text)
	}
	unit.SetAttr(IndexAttribute, strconv.Itoa(index))
	if cfg.ClassName != "" {
		unit.SetAttr("class", cfg.ClassName)
	}
	for k, v := range cfg.DataAttributes {
		unit.SetAttr(k, v)
	}
	for k, v := range cfg.BaseStyles {
		unit.SetStyle(k, v)
	}
	if cfg.InlineBlock {
		unit.SetStyle("display", "inline-block")
	}
	unit.SetStyle("transform-origin", "50% 50%")
	return unit
}

// splitRuns splits text into alternating runs of whitespace and
// non-whitespace characters, preserving every rune.
func splitRuns(text string) []string {
	var runs []string
	start := 0
	var inSpace bool
	for i, r := range text {
		s := unicode.IsSpace(r)
		if i > 0 && s != inSpace {
			runs = append(runs, text[start:i])
			start = i
		}
		inSpace = s
	}
	if start < len(text) {
		runs = append(runs, text[start:])
	}
	return runs
}
