package inline

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"golang.org/x/net/html"
)

// Reconstruct re-emits a line of text as HTML, wrapping the sub-ranges
// covered by captured style facts into styled spans. lineStart is the rune
// position of the line's first character within the owner text the facts
// were captured from.
//
// At most one fact is active per character; where ranges conflict, the
// last-registered fact wins. A span opens when the active fact changes and
// closes when it changes again. If no fact overlaps the line at all, the
// line text is returned unchanged.
func (p *Preserver) Reconstruct(lineText string, lineStart int, elementID string) string {
	runes := []rune(lineText)
	lineEnd := lineStart + len(runes)
	var overlapping []StyleFact
	for _, f := range p.facts[elementID] {
		if f.StartIndex < lineEnd && f.EndIndex > lineStart {
			overlapping = append(overlapping, f)
		}
	}
	if len(overlapping) == 0 {
		return lineText
	}

	// later facts shadow earlier ones on conflicting ranges
	factAt := func(pos int) int {
		active := -1
		for i, f := range overlapping {
			if f.StartIndex <= pos && pos < f.EndIndex {
				active = i
			}
		}
		return active
	}

	var sb strings.Builder
	active := -1
	for i, r := range runes {
		fact := factAt(lineStart + i)
		if fact != active {
			if active >= 0 {
				sb.WriteString("</span>")
			}
			if fact >= 0 {
				if css := p.CSSString(overlapping[fact]); css != "" {
					sb.WriteString(`<span style="` + html.EscapeString(css) + `">`)
				} else {
					sb.WriteString("<span>")
				}
			}
			active = fact
		}
		sb.WriteString(html.EscapeString(string(r)))
	}
	if active >= 0 {
		sb.WriteString("</span>")
	}
	return sb.String()
}
