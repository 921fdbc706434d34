package xmlio

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/jsphweid/rsxml/timecode"
)

// AttrParser converts attribute values of one element. The first failure is
// kept as a *FormatError and returned by Err.
type AttrParser struct {
	Element string
	err     error
}

func NewAttrParser(se xml.StartElement) *AttrParser {
	return &AttrParser{Element: se.Name.Local}
}

func (p *AttrParser) fail(a xml.Attr, err error) {
	if p.err == nil {
		p.err = &FormatError{Element: p.Element, Attr: a.Name.Local, Value: a.Value, Err: err}
	}
}

func (p *AttrParser) Err() error {
	return p.err
}

func (p *AttrParser) Time(a xml.Attr) int {
	ms, err := timecode.Decode(a.Value)
	if err != nil {
		p.fail(a, err)
	}
	return ms
}

func (p *AttrParser) integer(a xml.Attr, bits int) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(a.Value), 10, bits)
	if err != nil {
		p.fail(a, err)
	}
	return v
}

func (p *AttrParser) Int(a xml.Attr) int {
	return int(p.integer(a, 32))
}

func (p *AttrParser) Int16(a xml.Attr) int16 {
	return int16(p.integer(a, 16))
}

func (p *AttrParser) Int8(a xml.Attr) int8 {
	return int8(p.integer(a, 8))
}

func (p *AttrParser) Uint8(a xml.Attr) uint8 {
	v, err := strconv.ParseUint(strings.TrimSpace(a.Value), 10, 8)
	if err != nil {
		p.fail(a, err)
	}
	return uint8(v)
}

func (p *AttrParser) Float32(a xml.Attr) float32 {
	v, err := strconv.ParseFloat(strings.TrimSpace(a.Value), 32)
	if err != nil {
		p.fail(a, err)
	}
	return float32(v)
}

// Require fails with ErrMissingAttribute for the first name that se lacks.
func Require(se xml.StartElement, names ...string) error {
	for _, name := range names {
		if _, ok := AttrValue(se, name); !ok {
			return &FormatError{Element: se.Name.Local, Attr: name, Err: ErrMissingAttribute}
		}
	}
	return nil
}

// ParseText converts the text content of a metadata element.
func ParseText[T any](elem, text string, parse func(string) (T, error)) (T, error) {
	v, err := parse(strings.TrimSpace(text))
	if err != nil {
		var zero T
		return zero, &FormatError{Element: elem, Value: text, Err: err}
	}
	return v, nil
}
