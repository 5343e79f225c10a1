package split

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/segment/styled"
)

// LineDetectionResult is the transient outcome of one line detection call.
// The detector itself keeps no copy; callers may persist it.
type LineDetectionResult struct {
	Lines         []string // HTML fragments, one per visual line
	Success       bool
	LineCount     int
	OriginalText  string
	HTMLPreserved bool // styling markup survived into Lines
	Err           string
}

// DetectLines finds where visual line breaks fall within an element.
// It never panics and never returns an empty result: on internal failure
// the whole original content comes back as a single line with
// Success=false and an error message.
//
// Unstyled content is measured word by word (see package doc for the
// cost/accuracy tradeoff). Styled content shorter than the small-content
// limit is preserved whole, trading line accuracy for style fidelity on
// short strings. Longer styled content falls back to plain-text
// measurement, sacrificing the markup; this asymmetry is intentional and
// surfaces through HTMLPreserved=false.
func (s *Splitter) DetectLines(node styled.Node) (res LineDetectionResult) {
	var markup string
	text := node.TextContent()
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("split: line detection failed: %v", r)
			fallback := markup
			if fallback == "" {
				fallback = text
			}
			res = LineDetectionResult{
				Lines:        []string{fallback},
				LineCount:    1,
				OriginalText: text,
				Err:          fmt.Sprintf("line detection: %v", r),
			}
		}
	}()
	res.OriginalText = text

	markup, err := node.InnerHTML()
	if err != nil {
		panic(err) // recovered above into the single-line fallback
	}
	if strings.TrimSpace(text) == "" {
		res.Lines = []string{markup}
		res.LineCount = 1
		res.Success = true
		res.HTMLPreserved = true
		return res
	}
	if hasStylingSignal(node) {
		if utf8.RuneCountInString(markup) < s.smallLimit {
			res.Lines = []string{markup}
			res.LineCount = 1
			res.Success = true
			res.HTMLPreserved = true
			return res
		}
		tracer().Infof("split: styled content of %d runes measured as plain text, styling is lost",
			utf8.RuneCountInString(markup))
	}
	res.Lines = s.measureLines(node, text, markup)
	res.LineCount = len(res.Lines)
	res.Success = true
	return res
}

// hasStylingSignal checks for child elements or an inline style, i.e. the
// signals that content would lose styling under plain-text measurement.
// Inline-emphasis tags and styled descendants both surface as element
// children here.
func hasStylingSignal(node styled.Node) bool {
	return len(node.Children()) > 0 || node.Attr("style") != ""
}

// measureLines runs the word-growth measurement loop on the live node: the
// buffer grows word by word, and a height jump above the tolerance records
// a break before the word that caused it. The node's original markup is
// restored afterwards.
func (s *Splitter) measureLines(node styled.Node, text, markup string) []string {
	defer func() {
		if err := node.SetInnerHTML(markup); err != nil {
			tracer().Errorf("split: cannot restore content after measurement: %v", err)
		}
	}()

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}
	var lines []string
	current := words[0]
	node.SetTextContent(current)
	lastHeight := node.Bounds().H
	for _, word := range words[1:] {
		grown := current + " " + word
		node.SetTextContent(grown)
		h := node.Bounds().H
		if h-lastHeight > s.tolerance {
			lines = append(lines, current)
			current = word
			node.SetTextContent(current)
			lastHeight = node.Bounds().H
			continue
		}
		current = grown
		lastHeight = h
	}
	return append(lines, current)
}
