package htmldom

import (
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/segment/styled"
	"github.com/npillmayer/tyse/core/dimen"
	"golang.org/x/net/html"
)

// Layouter produces bounding geometry for every node of a parse tree.
// Implementations are free to use real font metrics; the engine only relies
// on heights growing when text wraps and on Y coordinates of units.
type Layouter interface {
	Layout(root *html.Node, width dimen.DU) map[*html.Node]styled.Rect
}

// Monospace is a layouter flowing text with fixed glyph metrics and greedy
// word wrap at the container width. A word wider than the measure overflows
// its line instead of being hyphenated.
type Monospace struct {
	CharWidth  dimen.DU
	LineHeight dimen.DU
}

// Layout implements interface Layouter.
func (m Monospace) Layout(root *html.Node, width dimen.DU) map[*html.Node]styled.Rect {
	boxes := make(map[*html.Node]styled.Rect)
	c := &cursor{m: m, width: width, boxes: boxes}
	c.flow(root)
	return boxes
}

// cursor tracks the current flow position within the measure.
type cursor struct {
	m     Monospace
	width dimen.DU
	x, y  dimen.DU
	boxes map[*html.Node]styled.Rect
}

func (c *cursor) flow(h *html.Node) (box styled.Rect, placed bool) {
	switch h.Type {
	case html.TextNode:
		box, placed = c.flowText(h.Data)
	case html.ElementNode:
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			chBox, chPlaced := c.flow(ch)
			if chPlaced {
				box, placed = union(box, placed, chBox)
			}
		}
		if !placed { // empty elements sit at the cursor without extension
			box = styled.Rect{X: c.x, Y: c.y}
		}
	}
	c.boxes[h] = box
	return box, placed
}

// flowText places a text run token by token. Tokens alternate between
// whitespace and non-whitespace; a token crossing the right edge of the
// measure starts a new line, whitespace tokens are dropped at the break.
func (c *cursor) flowText(text string) (box styled.Rect, placed bool) {
	for _, tok := range tokenize(text) {
		w := dimen.DU(utf8.RuneCountInString(tok)) * c.m.CharWidth
		ws := isSpace(tok)
		if c.x > 0 && c.x+w > c.width {
			c.x = 0
			c.y += c.m.LineHeight
			if ws {
				continue // a break swallows the whitespace causing it
			}
		}
		box, placed = union(box, placed, styled.Rect{X: c.x, Y: c.y, W: w, H: c.m.LineHeight})
		c.x += w
	}
	return box, placed
}

// tokenize splits text into alternating runs of whitespace and
// non-whitespace characters, preserving every rune.
func tokenize(text string) []string {
	var tokens []string
	start := 0
	var inSpace bool
	for i, r := range text {
		s := unicode.IsSpace(r)
		if i > 0 && s != inSpace {
			tokens = append(tokens, text[start:i])
			start = i
		}
		inSpace = s
	}
	if start < len(text) {
		tokens = append(tokens, text[start:])
	}
	return tokens
}

func isSpace(tok string) bool {
	for _, r := range tok {
		return unicode.IsSpace(r)
	}
	return false
}

func union(a styled.Rect, placed bool, b styled.Rect) (styled.Rect, bool) {
	if !placed {
		return b, true
	}
	x0, y0 := a.X, a.Y
	if b.X < x0 {
		x0 = b.X
	}
	if b.Y < y0 {
		y0 = b.Y
	}
	x1, y1 := a.X+a.W, a.Y+a.H
	if b.X+b.W > x1 {
		x1 = b.X + b.W
	}
	if b.Y+b.H > y1 {
		y1 = b.Y + b.H
	}
	return styled.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, true
}
