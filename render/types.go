package render

import (
	"errors"
	"image/color"
)

var (
	// ErrNothingToDraw reports a page with no geometry to take bounds from.
	ErrNothingToDraw = errors.New("render: nothing to draw")
)

// Panic messages for option misuse (programmer errors).
const (
	panicBadSize    = "render: WithSize(non-positive dimensions)"
	panicBadPadding = "render: WithPadding(negative padding)"
	panicBadStroke  = "render: WithLineWidth(non-positive width)"
)

// Options holds the raster parameters.
type Options struct {
	// Width, Height are the canvas size in pixels.
	Width, Height int

	// Padding is the frame kept clear around the drawing, in pixels.
	Padding float64

	// Background fills the canvas before drawing.
	Background color.Color

	// Stroke colors lines and marks whose Ipe color name is unknown or
	// absent.
	Stroke color.Color

	// Fill colors paths whose Ipe fill name is unknown.
	Fill color.Color

	// LineWidth is the stroke width in pixels, independent of the
	// content-to-canvas scale.
	LineWidth float64

	// MarkRadius is the dot radius for point marks, in pixels.
	MarkRadius float64
}

// Option mutates Options before rendering begins.
type Option func(*Options)

// DefaultOptions returns the defaults: an 800x800 white canvas with a
// 24-pixel frame, thin black strokes and 3-pixel marks.
func DefaultOptions() Options {
	return Options{
		Width:      800,
		Height:     800,
		Padding:    24,
		Background: color.White,
		Stroke:     color.Black,
		Fill:       color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff},
		LineWidth:  2,
		MarkRadius: 3,
	}
}

// WithSize sets the canvas dimensions in pixels. Panics unless both are
// positive.
func WithSize(width, height int) Option {
	if width <= 0 || height <= 0 {
		panic(panicBadSize)
	}
	return func(o *Options) { o.Width, o.Height = width, height }
}

// WithPadding sets the clear frame around the drawing. Panics on negative
// values.
func WithPadding(px float64) Option {
	if px < 0 {
		panic(panicBadPadding)
	}
	return func(o *Options) { o.Padding = px }
}

// WithBackground sets the canvas fill color.
func WithBackground(c color.Color) Option {
	return func(o *Options) { o.Background = c }
}

// WithStroke sets the fallback stroke color.
func WithStroke(c color.Color) Option {
	return func(o *Options) { o.Stroke = c }
}

// WithLineWidth sets the stroke width in pixels. Panics unless positive.
func WithLineWidth(px float64) Option {
	if px <= 0 {
		panic(panicBadStroke)
	}
	return func(o *Options) { o.LineWidth = px }
}

// WithMarkRadius sets the point-mark radius in pixels. Zero hides marks.
func WithMarkRadius(px float64) Option {
	return func(o *Options) { o.MarkRadius = px }
}

// newOptions applies opts over the defaults, last option winning.
func newOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
