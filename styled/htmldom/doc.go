/*
Package htmldom provides a headless implementation of the styled.Node
capability on top of golang.org/x/net/html parse trees.

It is a reference host for the segmentation engine: markup is parsed and
serialized with x/net/html, inline styles are parsed with douceur, computed
styles cascade along the parse tree, and geometry is produced by an
injectable Layouter. The shipped Monospace layouter flows text with fixed
glyph metrics and greedy word wrap, which is enough to exercise every
measurement-driven algorithm of the engine without a browser.

Status

Early draft—API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmldom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'segment.dom'.
func tracer() tracing.Trace {
	return tracing.Select("segment.dom")
}
