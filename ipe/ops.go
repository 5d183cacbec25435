package ipe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/golang/geo/r2"
)

// OpKind distinguishes the supported path operators.
type OpKind uint8

const (
	// MoveTo starts a new subpath at Op.To ("x y m").
	MoveTo OpKind = iota
	// LineTo extends the current subpath to Op.To ("x y l").
	LineTo
	// Close closes the current subpath ("h"). Op.To is unused.
	Close
)

// String renders the operator in Ipe syntax.
func (k OpKind) String() string {
	switch k {
	case MoveTo:
		return "m"
	case LineTo:
		return "l"
	default:
		return "h"
	}
}

// Op is one step of a path contour.
type Op struct {
	Kind OpKind
	To   r2.Point
}

// PathFromPoints builds a path visiting pts in order: a move to the first
// point, lines to the rest, and a closing operator when closed is set.
// An empty point list yields a path with no operations.
func PathFromPoints(pts []r2.Point, closed bool) *Path {
	p := &Path{}
	for i, q := range pts {
		kind := LineTo
		if i == 0 {
			kind = MoveTo
		}
		p.Ops = append(p.Ops, Op{Kind: kind, To: q})
	}
	if closed && len(pts) > 0 {
		p.Ops = append(p.Ops, Op{Kind: Close})
	}
	return p
}

// data renders the operations in postfix syntax, one per line.
func (p *Path) data() string {
	var sb strings.Builder
	for _, op := range p.Ops {
		switch op.Kind {
		case Close:
			sb.WriteString("h\n")
		default:
			sb.WriteString(fmtCoord(op.To.X))
			sb.WriteByte(' ')
			sb.WriteString(fmtCoord(op.To.Y))
			sb.WriteByte(' ')
			sb.WriteString(op.Kind.String())
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// parseOps scans postfix path text: coordinates accumulate until an
// operator consumes them. Curve operators of full Ipe (c, q, e, a, s, u)
// are not modeled and are rejected.
func parseOps(data string) ([]Op, error) {
	var (
		ops   []Op
		stack []float64
	)
	for _, tok := range strings.Fields(data) {
		switch tok {
		case "m", "l":
			if len(stack) != 2 {
				return nil, fmt.Errorf("ipe: %d coordinates before %q: %w", len(stack), tok, ErrBadCoordinates)
			}
			kind := MoveTo
			if tok == "l" {
				kind = LineTo
			}
			ops = append(ops, Op{Kind: kind, To: r2.Point{X: stack[0], Y: stack[1]}})
			stack = stack[:0]
		case "h":
			if len(stack) != 0 {
				return nil, fmt.Errorf("ipe: %d coordinates before %q: %w", len(stack), tok, ErrBadCoordinates)
			}
			ops = append(ops, Op{Kind: Close})
		default:
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("ipe: path token %q: %w", tok, ErrBadPathOp)
			}
			if len(stack) == 2 {
				return nil, fmt.Errorf("ipe: more than two coordinates pending: %w", ErrBadCoordinates)
			}
			stack = append(stack, v)
		}
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("ipe: %d trailing coordinates: %w", len(stack), ErrBadCoordinates)
	}
	return ops, nil
}

// fmtCoord renders a coordinate the way Ipe does, shortest form that
// round-trips.
func fmtCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// parsePos splits an Ipe position attribute "x y".
func parsePos(s string) (r2.Point, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return r2.Point{}, fmt.Errorf("ipe: pos %q: %w", s, ErrBadCoordinates)
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return r2.Point{}, fmt.Errorf("ipe: pos %q: %w", s, ErrBadCoordinates)
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return r2.Point{}, fmt.Errorf("ipe: pos %q: %w", s, ErrBadCoordinates)
	}
	return r2.Point{X: x, Y: y}, nil
}

// fmtPos renders a position attribute "x y".
func fmtPos(p r2.Point) string {
	return fmtCoord(p.X) + " " + fmtCoord(p.Y)
}
