/*
Package inline preserves inline text styling across segmentation.

A capture pass over a styled element records a StyleFact for every styled
sub-range of the element's text: the covered text, its rune range within the
owner text, a computed-style snapshot, the tag name and the raw inline style
string. After line detection has chopped the text up, Reconstruct re-emits
per-line HTML whose spans reproduce the captured styling, with CSSString
distilling each fact into an inline style declaration list.

Facts locate their range by searching for the first occurrence of the
styled node's text within the owner text. When the same styled text appears
more than once this mis-locates the later occurrences, a known limitation
(a warning is traced), not something this package tries to guess around.
Likewise only one fact can be active per character (the last-registered
fact wins); truly overlapping or nested spans are not representable.

Status

Early draft—API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package inline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'segment.inline'.
func tracer() tracing.Trace {
	return tracing.Select("segment.inline")
}
