package inline

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

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/segment/styled"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// StyleFact describes one styled sub-range of an owner text. Facts are
// immutable once captured; a later capture for the same owner id supersedes
// (not merges with) the previous fact list.
type StyleFact struct {
	Text               string            // the styled text
	StartIndex         int               // rune index into the owner text
	EndIndex           int               // exclusive rune index
	ComputedProperties map[string]string // computed-style snapshot
	TagName            string            // lowercase element name
	InlineStyleRaw     string            // verbatim style attribute
}

// CaptureResult is the outcome of one capture pass.
type CaptureResult struct {
	Facts        []StyleFact
	OwnerText    string
	MatchedCount int // nodes matched by the style predicate, incl. empty ones
	Success      bool
	Err          string
}

// styleSelector matches elements that carry a styling signal: inline
// emphasis tags, an inline style, or a class. Custom data attributes are
// checked separately (cascadia has no wildcard attribute selector).
var styleSelector = cascadia.MustCompile(
	"b, strong, em, i, u, s, small, sub, sup, code, kbd, samp, var, mark, [style], [class]")

// Preserver captures style facts and reconstructs styled HTML from them.
// Fact lists are keyed by a caller-supplied opaque element id.
type Preserver struct {
	colorToken string
	facts      map[string][]StyleFact
}

// Option is a configuration directive for Preserver construction.
type Option func(p *Preserver)

// ColorToken sets the design-token custom property that CSSString rewrites
// into a plain color declaration.
func ColorToken(name string) Option {
	return func(p *Preserver) {
		if strings.HasPrefix(name, "--") {
			p.colorToken = name
		}
	}
}

// New creates a Preserver, applying options.
func New(opts ...Option) *Preserver {
	p := &Preserver{
		colorToken: "--framer-text-color",
		facts:      make(map[string][]StyleFact),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Capture scans the descendants of node for styled sub-ranges and stores
// the resulting fact list under elementID, replacing any earlier list.
// Capture never panics; an internal failure yields an empty result with
// Success=false and an error message.
func (p *Preserver) Capture(node styled.Node, elementID string) (res CaptureResult) {
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("inline: capture failed: %v", r)
			res = CaptureResult{Success: false, Err: fmt.Sprintf("capture: %v", r)}
		}
	}()
	ownerText := node.TextContent()
	res = CaptureResult{OwnerText: ownerText, Success: true}
	seen := make(map[styled.Node]bool)
	var walk func(el styled.Node)
	walk = func(el styled.Node) {
		for _, ch := range el.Children() {
			if p.isStyled(ch) && !seen[ch] {
				seen[ch] = true
				res.MatchedCount++
				if fact, ok := p.factFor(ch, ownerText); ok {
					res.Facts = append(res.Facts, fact)
				}
			}
			walk(ch)
		}
	}
	walk(node)
	p.facts[elementID] = res.Facts
	return res
}

// isStyled is the style-indicating predicate for capture.
func (p *Preserver) isStyled(el styled.Node) bool {
	var h *html.Node
	if hb, ok := el.(styled.HTMLBacked); ok {
		h = hb.HTMLNode()
	} else {
		h = shimNode(el)
	}
	if styleSelector.Match(h) {
		return true
	}
	for _, a := range el.Attributes() {
		if strings.HasPrefix(a.Key, "data-") {
			return true
		}
	}
	return false
}

// shimNode synthesizes a minimal parse-tree node for selector matching
// against foreign styled.Node implementations.
func shimNode(el styled.Node) *html.Node {
	tag := el.TagName()
	h := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	for _, a := range el.Attributes() {
		h.Attr = append(h.Attr, html.Attribute{Key: a.Key, Val: a.Value})
	}
	return h
}

// factFor locates the styled node's text within the owner text and
// snapshots its styling. Nodes with empty text yield no fact.
func (p *Preserver) factFor(el styled.Node, ownerText string) (StyleFact, bool) {
	text := el.TextContent()
	if strings.TrimSpace(text) == "" {
		return StyleFact{}, false
	}
	byteStart := strings.Index(ownerText, text)
	if byteStart < 0 {
		tracer().Infof("inline: styled text %q not found in owner text", excerpt(text))
		return StyleFact{}, false
	}
	if strings.Count(ownerText, text) > 1 {
		tracer().Infof("inline: styled text %q occurs repeatedly, range may be mis-located",
			excerpt(text))
	}
	start := utf8.RuneCountInString(ownerText[:byteStart])
	fact := StyleFact{
		Text:               text,
		StartIndex:         start,
		EndIndex:           start + utf8.RuneCountInString(text),
		ComputedProperties: el.ComputedStyles().Snapshot(),
		TagName:            el.TagName(),
		InlineStyleRaw:     el.Attr("style"),
	}
	return fact, true
}

func excerpt(s string) string {
	if utf8.RuneCountInString(s) <= 20 {
		return s
	}
	return string([]rune(s)[:20]) + "…"
}

// --- Fact storage ------------------------------------------------------------

// Facts returns a copy of the fact list captured for an element id, or nil
// if none was captured. Mutating the copy does not affect the store.
func (p *Preserver) Facts(elementID string) []StyleFact {
	facts, ok := p.facts[elementID]
	if !ok {
		return nil
	}
	cp := make([]StyleFact, len(facts))
	for i, f := range facts {
		props := make(map[string]string, len(f.ComputedProperties))
		for k, v := range f.ComputedProperties {
			props[k] = v
		}
		f.ComputedProperties = props
		cp[i] = f
	}
	return cp
}

// Has checks wether facts were captured for an element id.
func (p *Preserver) Has(elementID string) bool {
	_, ok := p.facts[elementID]
	return ok
}

// Clear evicts the facts for one element id.
func (p *Preserver) Clear(elementID string) {
	delete(p.facts, elementID)
}

// ClearAll drops every stored fact list.
func (p *Preserver) ClearAll() {
	p.facts = make(map[string][]StyleFact)
}

// Stats are aggregate numbers over all stored fact lists.
type Stats struct {
	TotalOwners int
	TotalFacts  int
}

// Stats returns aggregate statistics for the fact store.
func (p *Preserver) Stats() Stats {
	var s Stats
	s.TotalOwners = len(p.facts)
	for _, facts := range p.facts {
		s.TotalFacts += len(facts)
	}
	return s
}
