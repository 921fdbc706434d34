package xmlio

import (
	"bytes"
	"encoding/xml"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"
)

// Reader is a forward-only cursor over an XML document. It is not safe for
// concurrent use; one Reader parses one document.
type Reader struct {
	d *xml.Decoder
}

func NewReader(r io.Reader) *Reader {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel
	return &Reader{d: d}
}

// Next returns the next start element, end element, comment or non-blank
// character data. Whitespace, processing instructions and directives are
// skipped. The returned token is a copy and stays valid.
func (r *Reader) Next() (xml.Token, error) {
	for {
		tok, err := r.d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement, xml.EndElement:
			return t, nil
		case xml.Comment:
			return t.Copy(), nil
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return t.Copy(), nil
			}
		}
	}
}

// Root advances to the document element.
func (r *Reader) Root() (xml.StartElement, error) {
	for {
		tok, err := r.Next()
		if err == io.EOF {
			return xml.StartElement{}, errors.New("document has no root element")
		}
		if err != nil {
			return xml.StartElement{}, errors.Wrap(err, "reading root element")
		}
		if se, ok := tok.(xml.StartElement); ok {
			return se, nil
		}
	}
}

// Skip consumes everything up to and including the end of the element whose
// start was read last.
func (r *Reader) Skip() error {
	return r.d.Skip()
}

// Children calls fn for each child element of the element whose start was read
// last, and consumes that element's end tag. fn must consume the child
// completely. Comments and stray text between children are ignored.
func (r *Reader) Children(fn func(xml.StartElement) error) error {
	for {
		tok, err := r.Next()
		if err != nil {
			return unexpectedEOF(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if err := fn(t); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

// ReadText returns the character data of the element whose start was read
// last and consumes its end tag. Child elements are skipped.
func (r *Reader) ReadText() (string, error) {
	var buf bytes.Buffer
	for {
		tok, err := r.d.Token()
		if err != nil {
			return "", unexpectedEOF(err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.Write(t)
		case xml.StartElement:
			if err := r.d.Skip(); err != nil {
				return "", err
			}
		case xml.EndElement:
			return buf.String(), nil
		}
	}
}

func unexpectedEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

// AttrValue returns the value of the named attribute of se.
func AttrValue(se xml.StartElement, name string) (string, bool) {
	for _, a := range se.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}
