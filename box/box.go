package box

import (
	"errors"

	"github.com/golang/geo/r2"

	"github.com/msakai/hgeometry/interval"
)

// ErrNoPoints indicates FromPoints was called without any point.
var ErrNoPoints = errors.New("box: at least one point required")

// Box is a closed axis-aligned rectangle in the plane. It embeds r2.Rect,
// so its predicates (ContainsPoint, InteriorContainsPoint, Center, Size,
// ClampPoint, ...) apply directly. A box with an empty axis interval is
// empty, per the r2 convention.
type Box struct {
	r2.Rect
}

// New returns the box spanned by two opposite corners. The corners may be
// any two opposite ones, in either order.
func New(a, b r2.Point) Box {
	return Box{r2.RectFromPoints(a, b)}
}

// FromPoints returns the smallest box containing all given points.
func FromPoints(pts ...r2.Point) (Box, error) {
	if len(pts) == 0 {
		return Box{}, ErrNoPoints
	}
	return Box{r2.RectFromPoints(pts...)}, nil
}

// FromCenterSize returns the box centered at center with the given full
// width and height.
func FromCenterSize(center, size r2.Point) Box {
	return Box{r2.RectFromCenterSize(center, size)}
}

// Min returns the corner with the smallest coordinates.
func (b Box) Min() r2.Point { return b.Lo() }

// Max returns the corner with the largest coordinates.
func (b Box) Max() r2.Point { return b.Hi() }

// Width returns the extent along the x axis.
func (b Box) Width() float64 { return b.Rect.X.Length() }

// Height returns the extent along the y axis.
func (b Box) Height() float64 { return b.Rect.Y.Length() }

// Contains reports whether p lies in the box, boundary included.
func (b Box) Contains(p r2.Point) bool { return b.ContainsPoint(p) }

// ContainsBox reports whether o lies entirely within b.
func (b Box) ContainsBox(o Box) bool { return b.Rect.Contains(o.Rect) }

// Intersects reports whether b and o share at least one point. Closed
// semantics: boxes touching in an edge or a corner intersect.
func (b Box) Intersects(o Box) bool { return b.Rect.Intersects(o.Rect) }

// Intersect returns the overlap of b and o and whether it is non-empty.
// Touching boxes overlap in a degenerate (zero-area) box.
func (b Box) Intersect(o Box) (Box, bool) {
	inter := b.Rect.Intersection(o.Rect)
	if inter.IsEmpty() {
		return Box{}, false
	}
	return Box{inter}, true
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	return Box{b.Rect.Union(o.Rect)}
}

// Extended returns the smallest box containing b and p.
func (b Box) Extended(p r2.Point) Box {
	return Box{b.AddPoint(p)}
}

// Expanded grows the box by margin on all four sides (shrinks it for a
// negative margin; may become empty).
func (b Box) Expanded(margin float64) Box {
	return Box{b.ExpandedByMargin(margin)}
}

// X returns the box's projection onto the x axis.
func (b Box) X() interval.Interval { return interval.Interval{Interval: b.Rect.X} }

// Y returns the box's projection onto the y axis.
func (b Box) Y() interval.Interval { return interval.Interval{Interval: b.Rect.Y} }

// Corners returns the four corners in counterclockwise order starting at
// Min: (x0,y0), (x1,y0), (x1,y1), (x0,y1).
func (b Box) Corners() [4]r2.Point {
	lo, hi := b.Lo(), b.Hi()
	return [4]r2.Point{
		{X: lo.X, Y: lo.Y},
		{X: hi.X, Y: lo.Y},
		{X: hi.X, Y: hi.Y},
		{X: lo.X, Y: hi.Y},
	}
}

// Empty returns the canonical empty box, which contains no point and
// unions as the identity.
func Empty() Box {
	return Box{r2.EmptyRect()}
}
