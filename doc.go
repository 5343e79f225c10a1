/*
Package segment is a style-preserving text segmentation engine: given a
rendered text element whose content may carry mixed inline styling, it
detects where visual line breaks fall, decomposes the text into characters,
words or lines as independently addressable units, tracks the
correspondence between positions in the decomposed output and positions in
the original text, reconstructs per-segment HTML reproducing the original
styling, and notifies a host when a decomposition finishes so it can re-run
its own animation logic against the new units.

Overview

Four collaborating services make up the pipeline, bundled by type Engine:

▪︎ package split detects line boundaries by measurement and wraps content
into unit elements,

▪︎ package inline captures style facts from a styled source and re-emits
them as styled spans on arbitrary text ranges,

▪︎ package posmap aligns the detected (whitespace-normalized) text with the
original text so reconstruction stays boundary-accurate,

▪︎ package notify hands finished unit lists back to the hosting layer.

The engine does not render or animate anything itself. Its only inbound
dependency is the styled.Node capability: a live content tree supporting
text and markup access, computed-style snapshotting, geometry queries and
child mutation. Package styled/htmldom ships a headless implementation on
top of golang.org/x/net/html, which is also what the tests run against.

The pipeline is synchronous and single-threaded: line detection
interleaves mutations with forced layout measurements, so there are no
suspension points at which concurrent access would be meaningful. A
concurrent port would have to add per-element-id mutual exclusion.

Status

Early draft—API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package segment

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'segment.engine'.
func tracer() tracing.Trace {
	return tracing.Select("segment.engine")
}
