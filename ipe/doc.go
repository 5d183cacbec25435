// Package ipe models the Ipe 7 XML document format: files, pages with
// stacking layers and views, and the drawable objects a geometry pipeline
// produces (paths, point marks, labels, groups).
//
// The schema is deliberately partial. Paths support the straight-line
// operators (move, line, close) in Ipe's postfix syntax; curve operators,
// style sheets and page transforms are out of scope. Parse skips unknown
// page objects, so documents written by Ipe itself load as long as the
// geometry is polygonal.
//
// Marshal and Parse round-trip: coordinates are rendered in the shortest
// form that reads back bit-identically. The package performs no I/O and no
// drawing; render rasterizes pages, and callers persist the bytes.
package ipe
