/*
Package posmap aligns a transformed ("split") text with the original text it
was derived from, and answers which original position an output position
corresponds to.

Line detection and wrapping normalize whitespace and trim fragment
boundaries, so the concatenation of the detected fragments is usually not
byte-identical to the source text. Style facts, however, carry ranges in
terms of the source text. A position map bridges the two: index i of the map
holds the original position of output character i. Maps are built once per
(original, fragments) pair and stored keyed by an opaque element id.

Positions are Unicode code point indices, not byte offsets, so they compose
with the rune-based ranges of package inline.

Status

Early draft—API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package posmap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'segment.posmap'.
func tracer() tracing.Trace {
	return tracing.Select("segment.posmap")
}
