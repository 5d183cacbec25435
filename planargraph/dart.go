package planargraph

import "fmt"

// Arc is the dense identity of one undirected edge, in [0, E).
type Arc int

// String renders the arc as "a<id>".
func (a Arc) String() string { return fmt.Sprintf("a%d", int(a)) }

// Direction orients a dart along its arc. Backward is the algebraic inverse
// of Forward; flipping twice is the identity.
type Direction uint8

const (
	// Forward darts carry identity 2*arc.
	Forward Direction = iota
	// Backward darts carry identity 2*arc+1.
	Backward
)

// Flip returns the opposite direction.
func (dir Direction) Flip() Direction {
	if dir == Forward {
		return Backward
	}
	return Forward
}

// String renders Forward as "+" and Backward as "-".
func (dir Direction) String() string {
	if dir == Forward {
		return "+"
	}
	return "-"
}

// Dart is a directed half-edge: one arc traversed in one direction. Darts
// are plain values; the zero value is the Forward dart of arc 0.
type Dart struct {
	Arc Arc
	Dir Direction
}

// DartFromIndex is the inverse of Index: it rebuilds the dart with the given
// dense identity.
func DartFromIndex(i int) Dart {
	return Dart{Arc: Arc(i >> 1), Dir: Direction(i & 1)}
}

// Index returns the dart's dense identity: 2*arc for Forward darts,
// 2*arc+1 for Backward darts. This satisfies permutation.Element.
func (d Dart) Index() int {
	return int(d.Arc)<<1 | int(d.Dir)
}

// Twin returns the opposite dart of the same arc. Twin is an involution:
// d.Twin().Twin() == d.
func (d Dart) Twin() Dart {
	return Dart{Arc: d.Arc, Dir: d.Dir.Flip()}
}

// IsForward reports whether the dart traverses its arc in canonical
// direction.
func (d Dart) IsForward() bool { return d.Dir == Forward }

// String renders the dart as "d<arc><dir>", e.g. "d3+" or "d0-".
func (d Dart) String() string {
	return fmt.Sprintf("d%d%s", int(d.Arc), d.Dir)
}
