package render

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r2"

	"github.com/msakai/hgeometry/box"
	"github.com/msakai/hgeometry/delaunay"
	"github.com/msakai/hgeometry/ipe"
)

// Page rasterizes an Ipe page. The drawing is scaled to fit the padded
// canvas, preserving aspect ratio, with the Ipe origin at the bottom left.
// A page with no geometry returns ErrNothingToDraw.
func Page(p *ipe.Page, opts ...Option) (image.Image, error) {
	o := newOptions(opts)

	bb, err := pageBounds(p)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(o.Width, o.Height)
	dc.SetColor(o.Background)
	dc.Clear()

	// Flip so y grows upward, then fit: pad, center, scale, anchor at the
	// bounds corner.
	availW := math.Max(float64(o.Width)-2*o.Padding, 1)
	availH := math.Max(float64(o.Height)-2*o.Padding, 1)
	scale := fitScale(bb, availW, availH)

	dc.Translate(0, float64(o.Height))
	dc.Scale(1, -1)
	dc.Translate(o.Padding+(availW-scale*bb.Width())/2, o.Padding+(availH-scale*bb.Height())/2)
	dc.Scale(scale, scale)
	dc.Translate(-bb.Min().X, -bb.Min().Y)

	drawObjects(dc, p.Objects, o, scale)
	return dc.Image(), nil
}

// Triangulation rasterizes a triangulation: every Delaunay edge a segment,
// every site a dot.
func Triangulation(t *delaunay.Triangulation, opts ...Option) (image.Image, error) {
	page := TriangulationPage(t)
	return Page(&page, opts...)
}

// TriangulationPage lays a triangulation out as a one-layer Ipe page, the
// shared document form behind both the XML export and the raster.
func TriangulationPage(t *delaunay.Triangulation) ipe.Page {
	page := ipe.Page{
		Layers: []ipe.Layer{{Name: "alpha"}},
		Views:  []ipe.View{{Layers: "alpha", Active: "alpha"}},
	}
	for _, e := range t.Edges() {
		seg := ipe.PathFromPoints([]r2.Point{t.Position(e[0]), t.Position(e[1])}, false)
		seg.Layer = "alpha"
		seg.Stroke = "black"
		page.Objects = append(page.Objects, seg)
	}
	for i := 0; i < t.NumSites(); i++ {
		page.Objects = append(page.Objects, &ipe.Mark{
			Layer:  "alpha",
			Name:   "mark/disk(sx)",
			Pos:    t.Position(i),
			Size:   "normal",
			Stroke: "black",
		})
	}
	return page
}

// SavePNG writes img to path in PNG format.
func SavePNG(path string, img image.Image) error {
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}

// pageBounds collects the bounding box of every drawable coordinate.
func pageBounds(p *ipe.Page) (box.Box, error) {
	pts := collectPoints(nil, p.Objects)
	bb, err := box.FromPoints(pts...)
	if err != nil {
		return box.Box{}, fmt.Errorf("render: empty page: %w", ErrNothingToDraw)
	}
	return bb, nil
}

func collectPoints(pts []r2.Point, objs []ipe.Object) []r2.Point {
	for _, obj := range objs {
		switch o := obj.(type) {
		case *ipe.Path:
			for _, op := range o.Ops {
				if op.Kind != ipe.Close {
					pts = append(pts, op.To)
				}
			}
		case *ipe.Mark:
			pts = append(pts, o.Pos)
		case *ipe.Text:
			pts = append(pts, o.Pos)
		case *ipe.Group:
			pts = collectPoints(pts, o.Objects)
		}
	}
	return pts
}

// fitScale returns the largest uniform scale that keeps the bounds inside
// the available area. Zero-extent axes impose no constraint; a single
// point renders at unit scale.
func fitScale(bb box.Box, availW, availH float64) float64 {
	sw, sh := math.Inf(1), math.Inf(1)
	if bb.Width() > 0 {
		sw = availW / bb.Width()
	}
	if bb.Height() > 0 {
		sh = availH / bb.Height()
	}
	s := math.Min(sw, sh)
	if math.IsInf(s, 1) {
		return 1
	}
	return s
}
