package htmldom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/segment/styled"
	"github.com/npillmayer/tyse/core/dimen"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a headless styled tree. The root is a synthetic block
// container holding the parsed fragment; geometry is produced lazily by the
// document's layouter whenever content has been mutated since the last
// measurement.
type Document struct {
	root     *html.Node
	layouter Layouter
	width    dimen.DU
	wrappers map[*html.Node]*domNode
	bounds   map[*html.Node]styled.Rect
	styles   map[*html.Node]*styled.PropertyMap
	dirty    bool
}

// Option is a configuration directive for document construction.
type Option func(d *Document)

// WithLayouter injects the geometry backend. Default is a Monospace
// layouter with 10pt glyphs.
func WithLayouter(l Layouter) Option {
	return func(d *Document) {
		if l != nil {
			d.layouter = l
		}
	}
}

// WithWidth sets the width of the root container, i.e. the measure text is
// wrapped at. Default is 60 glyphs of the default Monospace layouter.
func WithWidth(w dimen.DU) Option {
	return func(d *Document) {
		if w > 0 {
			d.width = w
		}
	}
}

// FromFragment parses an HTML fragment into a document. The fragment
// becomes the content of a synthetic <div> root container.
func FromFragment(markup string, opts ...Option) (*Document, error) {
	d := &Document{
		layouter: Monospace{CharWidth: 10 * dimen.PT, LineHeight: 12 * dimen.PT},
		width:    600 * dimen.PT,
		wrappers: make(map[*html.Node]*domNode),
		bounds:   make(map[*html.Node]styled.Rect),
		styles:   make(map[*html.Node]*styled.PropertyMap),
		dirty:    true,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.root = &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	}
	children, err := parseFragment(markup)
	if err != nil {
		return nil, err
	}
	for _, ch := range children {
		d.root.AppendChild(ch)
	}
	return d, nil
}

// Root returns the root container of the document.
func (d *Document) Root() styled.Node {
	return d.wrap(d.root)
}

// wrap returns the one wrapper per html node, creating it on first use.
// Wrapper identity matters: clients deduplicate nodes by comparing the
// interface values they got from Children().
func (d *Document) wrap(h *html.Node) *domNode {
	if h == nil {
		return nil
	}
	if n, ok := d.wrappers[h]; ok {
		return n
	}
	n := &domNode{doc: d, h: h}
	d.wrappers[h] = n
	return n
}

// invalidate marks geometry and computed styles as stale.
func (d *Document) invalidate() {
	d.dirty = true
}

// reflow synchronously recomputes computed styles and geometry for the
// whole tree. This happens on every measurement after a mutation, which is
// the forced-reflow behaviour the line detector deliberately relies on.
func (d *Document) reflow() {
	if !d.dirty {
		return
	}
	d.styles = make(map[*html.Node]*styled.PropertyMap)
	d.computeStyles(d.root, nil)
	d.bounds = d.layouter.Layout(d.root, d.width)
	d.dirty = false
}

// computeStyles walks the parse tree and assembles a property map per
// element: user-agent defaults implied by the tag, then the element's
// inline declarations, linked to the parent map for inherited lookups.
func (d *Document) computeStyles(h *html.Node, parent *styled.PropertyMap) {
	if h.Type != html.ElementNode {
		return
	}
	pmap := styled.NewPropertyMap()
	for _, kv := range tagDefaults(h.Data) {
		pmap.Add(kv.Key, kv.Value)
	}
	if raw := attrValue(h, "style"); raw != "" {
		decls, err := parser.ParseDeclarations(raw)
		if err != nil {
			tracer().Infof("dom: unparsable inline style %q: %v", raw, err)
		} else {
			for _, decl := range decls {
				pmap.Add(decl.Property, styled.Property(decl.Value))
			}
		}
	}
	pmap.LinkToParent(parent)
	d.styles[h] = pmap
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		d.computeStyles(ch, pmap)
	}
}

// tagDefaults returns the text-level styling a user agent implies for an
// element, e.g. boldface for <b>.
func tagDefaults(tag string) []styled.KeyValue {
	switch tag {
	case "b", "strong":
		return []styled.KeyValue{{Key: "font-weight", Value: "bold"}}
	case "i", "em":
		return []styled.KeyValue{{Key: "font-style", Value: "italic"}}
	case "u":
		return []styled.KeyValue{{Key: "text-decoration", Value: "underline"}}
	case "s", "strike", "del":
		return []styled.KeyValue{{Key: "text-decoration", Value: "line-through"}}
	case "small":
		return []styled.KeyValue{{Key: "font-size", Value: "smaller"}}
	case "sub":
		return []styled.KeyValue{{Key: "vertical-align", Value: "sub"}, {Key: "font-size", Value: "smaller"}}
	case "sup":
		return []styled.KeyValue{{Key: "vertical-align", Value: "super"}, {Key: "font-size", Value: "smaller"}}
	case "code", "kbd", "samp", "var":
		return []styled.KeyValue{{Key: "font-family", Value: "monospace"}}
	case "mark":
		return []styled.KeyValue{{Key: "background-color", Value: "yellow"}, {Key: "color", Value: "black"}}
	}
	return nil
}

// parseFragment parses markup in the context of a synthetic <div>,
// returning detached nodes.
func parseFragment(markup string) ([]*html.Node, error) {
	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	}
	return html.ParseFragment(strings.NewReader(markup), ctx)
}

func attrValue(h *html.Node, key string) string {
	for _, a := range h.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttrValue(h *html.Node, key, value string) {
	for i, a := range h.Attr {
		if a.Key == key {
			h.Attr[i].Val = value
			return
		}
	}
	h.Attr = append(h.Attr, html.Attribute{Key: key, Val: value})
}
