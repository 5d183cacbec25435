package ipe

import (
	"encoding/xml"
	"errors"

	"github.com/golang/geo/r2"
)

var (
	// ErrNotIpe reports input whose root element is not <ipe>.
	ErrNotIpe = errors.New("ipe: not an ipe document")

	// ErrBadCoordinates reports a malformed position or path coordinate.
	ErrBadCoordinates = errors.New("ipe: bad coordinates")

	// ErrBadPathOp reports an unknown or unsupported path operator.
	ErrBadPathOp = errors.New("ipe: bad path operator")
)

// Document constants for files this package writes.
const (
	// FormatVersion is the Ipe document version emitted by Marshal.
	FormatVersion = "70218"
	// DefaultCreator tags documents produced by this module.
	DefaultCreator = "hgeometry"
)

// File is the root <ipe> document: a version header and a page list.
// Style sheets and the <info> block of full Ipe files are ignored on
// parse and never written.
type File struct {
	XMLName xml.Name `xml:"ipe"`
	Version string   `xml:"version,attr"`
	Creator string   `xml:"creator,attr,omitempty"`
	Pages   []Page   `xml:"page"`
}

// NewFile wraps pages in a File with the current format version.
func NewFile(pages ...Page) *File {
	return &File{Version: FormatVersion, Creator: DefaultCreator, Pages: pages}
}

// Page is one <page>: its stacking layers, presentation views and drawing
// objects, each kept in document order.
type Page struct {
	Layers  []Layer
	Views   []View
	Objects []Object
}

// Layer names one stacking layer of a page.
type Layer struct {
	Name string `xml:"name,attr"`
}

// View selects the layers visible in one presentation step.
type View struct {
	Layers string `xml:"layers,attr"`
	Active string `xml:"active,attr"`
}

// Object is one drawable element of a page: *Path, *Mark, *Text or
// *Group. The set is closed.
type Object interface {
	object()
}

// Path is a polyline or polygon contour. Its operations are encoded in
// Ipe's postfix syntax as element text: "x y m", "x y l" and "h".
type Path struct {
	Layer  string
	Stroke string
	Fill   string
	Pen    string
	Ops    []Op
}

// Mark is a point symbol, Ipe's <use> of a mark glyph such as
// "mark/disk(sx)".
type Mark struct {
	Layer  string
	Name   string
	Pos    r2.Point
	Size   string
	Stroke string
}

// Text is a label anchored at a position. Value is the raw label source.
type Text struct {
	Layer  string
	Pos    r2.Point
	Stroke string
	Value  string
}

// Group nests objects that move together.
type Group struct {
	Layer   string
	Objects []Object
}

func (*Path) object()  {}
func (*Mark) object()  {}
func (*Text) object()  {}
func (*Group) object() {}
