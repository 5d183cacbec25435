// Package render rasterizes Ipe pages and Delaunay triangulations into
// images: geometry is fit to a fixed canvas with a clear frame, the y axis
// flipped so documents keep their bottom-left origin, and strokes and
// marks sized in pixels independent of the content scale.
//
// The package draws; it does not lay out documents. TriangulationPage is
// the one bridge: it spells a triangulation as an Ipe page, which both
// Triangulation here and the XML export elsewhere consume, so the raster
// and the document always agree.
package render
