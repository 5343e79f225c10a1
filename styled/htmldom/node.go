package htmldom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/segment/styled"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// domNode adapts one node of the parse tree to the styled.Node capability.
// There is exactly one wrapper per html node (see Document.wrap), so
// clients may compare interface values for identity.
type domNode struct {
	doc *Document
	h   *html.Node
}

var _ styled.Node = &domNode{}
var _ styled.HTMLBacked = &domNode{}

var errForeignNode = errors.New("dom: node stems from a different styled tree implementation")

// HTMLNode exposes the underlying parse-tree node.
func (n *domNode) HTMLNode() *html.Node {
	return n.h
}

func (n *domNode) TagName() string {
	if n.h.Type == html.TextNode {
		return "#text"
	}
	return strings.ToLower(n.h.Data)
}

func (n *domNode) TextContent() string {
	var sb strings.Builder
	collectText(n.h, &sb)
	return sb.String()
}

func collectText(h *html.Node, sb *strings.Builder) {
	if h.Type == html.TextNode {
		sb.WriteString(h.Data)
		return
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		collectText(ch, sb)
	}
}

func (n *domNode) SetTextContent(text string) {
	n.RemoveChildren()
	n.h.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	n.doc.invalidate()
}

func (n *domNode) InnerHTML() (string, error) {
	var sb strings.Builder
	for ch := n.h.FirstChild; ch != nil; ch = ch.NextSibling {
		if err := html.Render(&sb, ch); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

func (n *domNode) SetInnerHTML(markup string) error {
	children, err := parseFragment(markup)
	if err != nil {
		return err
	}
	n.RemoveChildren()
	for _, ch := range children {
		n.h.AppendChild(ch)
	}
	n.doc.invalidate()
	return nil
}

func (n *domNode) Attr(key string) string {
	return attrValue(n.h, key)
}

func (n *domNode) SetAttr(key, value string) {
	setAttrValue(n.h, key, value)
	n.doc.invalidate()
}

func (n *domNode) Attributes() []styled.Attr {
	attrs := make([]styled.Attr, 0, len(n.h.Attr))
	for _, a := range n.h.Attr {
		attrs = append(attrs, styled.Attr{Key: a.Key, Value: a.Val})
	}
	return attrs
}

func (n *domNode) Style(key string) string {
	raw := attrValue(n.h, "style")
	if raw == "" {
		return ""
	}
	decls, err := parser.ParseDeclarations(raw)
	if err != nil {
		tracer().Infof("dom: unparsable inline style %q: %v", raw, err)
		return ""
	}
	for _, decl := range decls {
		if decl.Property == key {
			return decl.Value
		}
	}
	return ""
}

func (n *domNode) SetStyle(key, value string) {
	raw := attrValue(n.h, "style")
	var parts []string
	if raw != "" {
		if decls, err := parser.ParseDeclarations(raw); err == nil {
			for _, decl := range decls {
				if decl.Property == key {
					continue
				}
				parts = append(parts, decl.Property+": "+decl.Value)
			}
		}
	}
	parts = append(parts, key+": "+value)
	setAttrValue(n.h, "style", strings.Join(parts, "; "))
	n.doc.invalidate()
}

func (n *domNode) ComputedStyles() *styled.PropertyMap {
	n.doc.reflow()
	return n.doc.styles[n.h]
}

func (n *domNode) Bounds() styled.Rect {
	n.doc.reflow()
	return n.doc.bounds[n.h]
}

func (n *domNode) Parent() styled.Node {
	if n.h.Parent == nil {
		return nil
	}
	return n.doc.wrap(n.h.Parent)
}

// Children returns the element children of a node, in document order.
// Text runs are reachable through TextContent and InnerHTML instead.
func (n *domNode) Children() []styled.Node {
	var children []styled.Node
	for ch := n.h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			children = append(children, n.doc.wrap(ch))
		}
	}
	return children
}

func (n *domNode) AppendChild(ch styled.Node) {
	d, ok := ch.(*domNode)
	if !ok {
		tracer().Errorf("dom: AppendChild: %v", errForeignNode)
		return
	}
	if d.h.Parent != nil {
		d.h.Parent.RemoveChild(d.h)
	}
	n.h.AppendChild(d.h)
	n.doc.invalidate()
}

func (n *domNode) InsertBefore(ch, ref styled.Node) error {
	d, ok1 := ch.(*domNode)
	r, ok2 := ref.(*domNode)
	if !ok1 || !ok2 {
		return errForeignNode
	}
	if r.h.Parent != n.h {
		return errors.New("dom: InsertBefore: reference node is not a child")
	}
	if d.h.Parent != nil {
		d.h.Parent.RemoveChild(d.h)
	}
	n.h.InsertBefore(d.h, r.h)
	n.doc.invalidate()
	return nil
}

func (n *domNode) RemoveChildren() {
	for n.h.FirstChild != nil {
		n.h.RemoveChild(n.h.FirstChild)
	}
	n.doc.invalidate()
}

func (n *domNode) Detach() {
	if n.h.Parent != nil {
		n.h.Parent.RemoveChild(n.h)
		n.doc.invalidate()
	}
}

func (n *domNode) CreateElement(tag string) styled.Node {
	h := &html.Node{
		Type:     html.ElementNode,
		Data:     strings.ToLower(tag),
		DataAtom: atom.Lookup([]byte(tag)),
	}
	return n.doc.wrap(h)
}
