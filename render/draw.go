package render

import (
	"image/color"

	"github.com/fogleman/gg"

	"github.com/msakai/hgeometry/ipe"
)

// ipeColors maps the basic Ipe color names onto raster colors. Unknown
// names fall back to the option defaults.
var ipeColors = map[string]color.Color{
	"black": color.Black,
	"white": color.White,
	"red":   color.RGBA{R: 0xff, A: 0xff},
	"green": color.RGBA{G: 0xff, A: 0xff},
	"blue":  color.RGBA{B: 0xff, A: 0xff},
	"gray":  color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
}

func colorByName(name string, fallback color.Color) color.Color {
	if c, ok := ipeColors[name]; ok {
		return c
	}
	return fallback
}

// drawObjects renders objects in document order. scale converts
// pixel-valued options into content units, so stroke widths and mark radii
// stay constant on screen regardless of the fit.
func drawObjects(dc *gg.Context, objs []ipe.Object, o Options, scale float64) {
	for _, obj := range objs {
		switch t := obj.(type) {
		case *ipe.Path:
			drawPath(dc, t, o, scale)
		case *ipe.Mark:
			drawMark(dc, t, o, scale)
		case *ipe.Text:
			drawText(dc, t, o)
		case *ipe.Group:
			drawObjects(dc, t.Objects, o, scale)
		}
	}
}

func drawPath(dc *gg.Context, p *ipe.Path, o Options, scale float64) {
	for _, op := range p.Ops {
		switch op.Kind {
		case ipe.MoveTo:
			dc.MoveTo(op.To.X, op.To.Y)
		case ipe.LineTo:
			dc.LineTo(op.To.X, op.To.Y)
		case ipe.Close:
			dc.ClosePath()
		}
	}
	if p.Fill != "" {
		dc.SetColor(colorByName(p.Fill, o.Fill))
		dc.FillPreserve()
	}
	dc.SetColor(colorByName(p.Stroke, o.Stroke))
	dc.SetLineWidth(o.LineWidth / scale)
	dc.Stroke()
}

func drawMark(dc *gg.Context, m *ipe.Mark, o Options, scale float64) {
	if o.MarkRadius <= 0 {
		return
	}
	dc.DrawCircle(m.Pos.X, m.Pos.Y, o.MarkRadius/scale)
	dc.SetColor(colorByName(m.Stroke, o.Stroke))
	dc.Fill()
}

// drawText draws the label upright: the context is y-flipped for
// geometry, so the anchor is mapped to device coordinates and the label
// drawn under the identity transform.
func drawText(dc *gg.Context, t *ipe.Text, o Options) {
	x, y := dc.TransformPoint(t.Pos.X, t.Pos.Y)
	dc.Push()
	dc.Identity()
	dc.SetColor(colorByName(t.Stroke, o.Stroke))
	dc.DrawStringAnchored(t.Value, x, y, 0, 0.5)
	dc.Pop()
}
