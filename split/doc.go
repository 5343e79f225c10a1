/*
Package split decomposes rendered text into independently addressable
character, word and line units.

Line boundaries are found by measurement, not guessed: the detector grows a
test buffer word by word and re-measures the owner's rendered height after
every growth, recording a break whenever the height jumps by more than the
configured tolerance. This forces a layout recomputation per word, an
O(word-count) sequence of synchronous measurements. That cost is deliberate:
each measurement reflects up-to-date geometry, which is what makes the
detected breaks trustworthy. Whether batched text metrics could replace the
loop without losing accuracy is an open question; the Layouter abstraction
of styled/htmldom leaves room for such a backend, but this package does not
silently assume the answer.

Wrapping operations clear the owner element and re-insert one positioned
unit per character, word or line, each tagged with a sequential index and
styled for later independent animation. GroupIntoLines re-groups existing
units into line wrappers by their vertical position.

Status

Early draft—API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package split

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'segment.split'.
func tracer() tracing.Trace {
	return tracing.Select("segment.split")
}
