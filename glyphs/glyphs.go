// Package glyphs reads and writes the glyph definitions of custom lyric fonts.
package glyphs

import (
	"encoding/xml"
	"io"
	"os"

	"github.com/pkg/errors"
)

type GlyphDefinitions struct {
	XMLName       xml.Name          `xml:"GlyphDefinitions"`
	TextureWidth  int               `xml:"TextureWidth,attr"`
	TextureHeight int               `xml:"TextureHeight,attr"`
	Glyphs        []GlyphDefinition `xml:"GlyphDefinition"`
}

// GlyphDefinition locates one symbol in the font texture, in texture
// coordinates from 0 to 1.
type GlyphDefinition struct {
	Symbol    string  `xml:"Symbol,attr"`
	InnerYMin float32 `xml:"InnerYMin,attr"`
	InnerYMax float32 `xml:"InnerYMax,attr"`
	InnerXMin float32 `xml:"InnerXMin,attr"`
	InnerXMax float32 `xml:"InnerXMax,attr"`
	OuterYMin float32 `xml:"OuterYMin,attr"`
	OuterYMax float32 `xml:"OuterYMax,attr"`
	OuterXMin float32 `xml:"OuterXMin,attr"`
	OuterXMax float32 `xml:"OuterXMax,attr"`
}

func Read(r io.Reader) (*GlyphDefinitions, error) {
	var gd GlyphDefinitions
	if err := xml.NewDecoder(r).Decode(&gd); err != nil {
		return nil, errors.Wrap(err, "decoding glyph definitions")
	}
	return &gd, nil
}

func (gd *GlyphDefinitions) Write(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(gd); err != nil {
		return errors.Wrap(err, "encoding glyph definitions")
	}
	return enc.Flush()
}

func Load(path string) (*GlyphDefinitions, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

func (gd *GlyphDefinitions) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gd.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Find returns the definition of symbol, or nil.
func (gd *GlyphDefinitions) Find(symbol string) *GlyphDefinition {
	for i := range gd.Glyphs {
		if gd.Glyphs[i].Symbol == symbol {
			return &gd.Glyphs[i]
		}
	}
	return nil
}
