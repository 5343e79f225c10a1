/*
Package segdbg implements helpers to debug segmentation output.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package segdbg

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/segment/split"
	"github.com/npillmayer/segment/styled"
	tp "github.com/xlab/treeprint"
)

// UnitTree renders a list of segmentation units (and their nested units,
// e.g. characters inside line wrappers) as an indented tree, one label per
// unit with tag, index, text excerpt and bounds. Intended for t.Logf dumps
// and ad-hoc debugging.
func UnitTree(units []styled.Node) string {
	p := tp.New()
	for _, u := range units {
		ppu(p, u)
	}
	return p.String()
}

func ppu(p tp.Tree, unit styled.Node) {
	children := unit.Children()
	if len(children) == 0 {
		p.AddNode(label(unit))
		return
	}
	branch := p.AddBranch(label(unit))
	for _, ch := range children {
		ppu(branch, ch)
	}
}

func label(unit styled.Node) string {
	index := unit.Attr(split.IndexAttribute)
	if index == "" {
		index = unit.Attr(split.GroupIndexAttribute)
	}
	if index == "" {
		index = "·"
	}
	return fmt.Sprintf("<%s>[%s] %q %v", unit.TagName(), index,
		excerpt(unit.TextContent()), unit.Bounds())
}

func excerpt(s string) string {
	if utf8.RuneCountInString(s) <= 16 {
		return s
	}
	return string([]rune(s)[:16]) + "…"
}
