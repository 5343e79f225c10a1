/*
Package styled defines the capability a hosting environment has to provide
for the segmentation engine to operate: a live tree of styled content
supporting text access, markup access, computed-style snapshotting,
bounding-geometry queries and child mutation.

The segmentation, capture and reconstruction algorithms are written against
this interface only. Any environment providing these primitives is
sufficient: a real browser DOM behind a bridge, a headless layout engine,
or the test double in package styled/htmldom.

Status

Early draft—API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styled
