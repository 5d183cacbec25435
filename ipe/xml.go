package ipe

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// xmlPreamble matches the header Ipe itself writes.
const xmlPreamble = "<?xml version=\"1.0\"?>\n<!DOCTYPE ipe SYSTEM \"ipe.dtd\">\n"

// Marshal renders the document as Ipe XML, preamble and doctype included.
func Marshal(f *File) ([]byte, error) {
	body, err := xml.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("ipe: marshal: %w", err)
	}
	var buf bytes.Buffer
	buf.WriteString(xmlPreamble)
	buf.Write(body)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Parse decodes Ipe XML. Input whose root element is not <ipe> is rejected
// with ErrNotIpe; unknown page objects are skipped, malformed coordinates
// and path operators are errors.
func Parse(data []byte) (*File, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("ipe: no root element: %w", ErrNotIpe)
		}
		if se, ok := tok.(xml.StartElement); ok {
			if se.Name.Local != "ipe" {
				return nil, fmt.Errorf("ipe: root element <%s>: %w", se.Name.Local, ErrNotIpe)
			}
			break
		}
	}

	var f File
	if err := xml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("ipe: parse: %w", err)
	}
	return &f, nil
}

// MarshalXML writes the page with layers first, then views, then objects
// in document order.
func (p Page) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "page"}
	start.Attr = nil
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, l := range p.Layers {
		if err := e.EncodeElement(l, xml.StartElement{Name: xml.Name{Local: "layer"}}); err != nil {
			return err
		}
	}
	for _, v := range p.Views {
		if err := e.EncodeElement(v, xml.StartElement{Name: xml.Name{Local: "view"}}); err != nil {
			return err
		}
	}
	if err := encodeObjects(e, p.Objects); err != nil {
		return err
	}
	return e.EncodeToken(start.End())
}

// UnmarshalXML reads the children of <page>, preserving object order.
func (p *Page) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "layer":
				var l Layer
				if err := d.DecodeElement(&l, &t); err != nil {
					return err
				}
				p.Layers = append(p.Layers, l)
			case "view":
				var v View
				if err := d.DecodeElement(&v, &t); err != nil {
					return err
				}
				p.Views = append(p.Views, v)
			default:
				obj, err := decodeObject(d, t)
				if err != nil {
					return err
				}
				if obj != nil {
					p.Objects = append(p.Objects, obj)
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

func encodeObjects(e *xml.Encoder, objs []Object) error {
	for _, obj := range objs {
		var err error
		switch o := obj.(type) {
		case *Path:
			err = encodePath(e, o)
		case *Mark:
			err = encodeMark(e, o)
		case *Text:
			err = encodeText(e, o)
		case *Group:
			err = encodeGroup(e, o)
		default:
			err = fmt.Errorf("ipe: cannot encode object %T", obj)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func encodePath(e *xml.Encoder, p *Path) error {
	start := xml.StartElement{Name: xml.Name{Local: "path"}}
	start.Attr = appendAttr(start.Attr, "layer", p.Layer)
	start.Attr = appendAttr(start.Attr, "stroke", p.Stroke)
	start.Attr = appendAttr(start.Attr, "fill", p.Fill)
	start.Attr = appendAttr(start.Attr, "pen", p.Pen)
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := e.EncodeToken(xml.CharData("\n" + p.data())); err != nil {
		return err
	}
	return e.EncodeToken(start.End())
}

func encodeMark(e *xml.Encoder, m *Mark) error {
	start := xml.StartElement{Name: xml.Name{Local: "use"}}
	start.Attr = appendAttr(start.Attr, "layer", m.Layer)
	start.Attr = appendAttr(start.Attr, "name", m.Name)
	start.Attr = appendAttr(start.Attr, "pos", fmtPos(m.Pos))
	start.Attr = appendAttr(start.Attr, "size", m.Size)
	start.Attr = appendAttr(start.Attr, "stroke", m.Stroke)
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	return e.EncodeToken(start.End())
}

func encodeText(e *xml.Encoder, t *Text) error {
	start := xml.StartElement{Name: xml.Name{Local: "text"}}
	start.Attr = appendAttr(start.Attr, "layer", t.Layer)
	start.Attr = appendAttr(start.Attr, "pos", fmtPos(t.Pos))
	start.Attr = appendAttr(start.Attr, "stroke", t.Stroke)
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := e.EncodeToken(xml.CharData(t.Value)); err != nil {
		return err
	}
	return e.EncodeToken(start.End())
}

func encodeGroup(e *xml.Encoder, g *Group) error {
	start := xml.StartElement{Name: xml.Name{Local: "group"}}
	start.Attr = appendAttr(start.Attr, "layer", g.Layer)
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := encodeObjects(e, g.Objects); err != nil {
		return err
	}
	return e.EncodeToken(start.End())
}

// appendAttr appends name="value", dropping empty values.
func appendAttr(attrs []xml.Attr, name, value string) []xml.Attr {
	if value == "" {
		return attrs
	}
	return append(attrs, xml.Attr{Name: xml.Name{Local: name}, Value: value})
}

// decodeObject dispatches on the element name. Unknown elements are
// skipped and reported as a nil object.
func decodeObject(d *xml.Decoder, se xml.StartElement) (Object, error) {
	switch se.Name.Local {
	case "path":
		return decodePath(d, se)
	case "use":
		return decodeMark(d, se)
	case "text":
		return decodeText(d, se)
	case "group":
		return decodeGroup(d, se)
	default:
		return nil, d.Skip()
	}
}

func decodePath(d *xml.Decoder, se xml.StartElement) (*Path, error) {
	p := &Path{}
	for _, a := range se.Attr {
		switch a.Name.Local {
		case "layer":
			p.Layer = a.Value
		case "stroke":
			p.Stroke = a.Value
		case "fill":
			p.Fill = a.Value
		case "pen":
			p.Pen = a.Value
		}
	}

	var data strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.CharData:
			data.Write(t)
		case xml.StartElement:
			if err := d.Skip(); err != nil {
				return nil, err
			}
		case xml.EndElement:
			ops, err := parseOps(data.String())
			if err != nil {
				return nil, err
			}
			p.Ops = ops
			return p, nil
		}
	}
}

func decodeMark(d *xml.Decoder, se xml.StartElement) (*Mark, error) {
	m := &Mark{}
	var pos string
	for _, a := range se.Attr {
		switch a.Name.Local {
		case "layer":
			m.Layer = a.Value
		case "name":
			m.Name = a.Value
		case "pos":
			pos = a.Value
		case "size":
			m.Size = a.Value
		case "stroke":
			m.Stroke = a.Value
		}
	}
	if err := d.Skip(); err != nil {
		return nil, err
	}

	p, err := parsePos(pos)
	if err != nil {
		return nil, err
	}
	m.Pos = p
	return m, nil
}

func decodeText(d *xml.Decoder, se xml.StartElement) (*Text, error) {
	t := &Text{}
	var pos string
	for _, a := range se.Attr {
		switch a.Name.Local {
		case "layer":
			t.Layer = a.Value
		case "pos":
			pos = a.Value
		case "stroke":
			t.Stroke = a.Value
		}
	}

	var value strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch tt := tok.(type) {
		case xml.CharData:
			value.Write(tt)
		case xml.StartElement:
			if err := d.Skip(); err != nil {
				return nil, err
			}
		case xml.EndElement:
			p, err := parsePos(pos)
			if err != nil {
				return nil, err
			}
			t.Pos = p
			t.Value = value.String()
			return t, nil
		}
	}
}

func decodeGroup(d *xml.Decoder, se xml.StartElement) (*Group, error) {
	g := &Group{}
	for _, a := range se.Attr {
		if a.Name.Local == "layer" {
			g.Layer = a.Value
		}
	}

	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			obj, err := decodeObject(d, t)
			if err != nil {
				return nil, err
			}
			if obj != nil {
				g.Objects = append(g.Objects, obj)
			}
		case xml.EndElement:
			return g, nil
		}
	}
}
