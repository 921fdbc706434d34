package model

import (
	"encoding/xml"

	"github.com/jsphweid/rsxml/xmlio"
)

// Vocal is one lyric syllable. Note is a MIDI pitch; 254 marks unpitched.
type Vocal struct {
	Time   int
	Note   uint8
	Length int
	Lyric  string
}

func NewVocal(time, length int, lyric string) Vocal {
	return Vocal{Time: time, Note: 60, Length: length, Lyric: lyric}
}

func (v Vocal) TimeCode() int { return v.Time }

func ReadVocal(r *xmlio.Reader, se xml.StartElement) (Vocal, error) {
	var v Vocal
	p := xmlio.NewAttrParser(se)
	for _, a := range se.Attr {
		switch a.Name.Local {
		case "time":
			v.Time = p.Time(a)
		case "note":
			v.Note = p.Uint8(a)
		case "length":
			v.Length = p.Time(a)
		case "lyric":
			v.Lyric = a.Value
		}
	}
	if err := p.Err(); err != nil {
		return v, err
	}
	return v, r.Skip()
}

func (v *Vocal) WriteXML(w *xmlio.Writer) {
	w.TimeAttr("time", v.Time)
	w.IntAttr("note", int(v.Note))
	w.TimeAttr("length", v.Length)
	w.Attr("lyric", v.Lyric)
}

// Show light note ranges.
const (
	FogMin    uint8 = 24
	FogMax    uint8 = 35
	BeamOff   uint8 = 42
	BeamMin   uint8 = 48
	BeamMax   uint8 = 59
	LasersOff uint8 = 66
	LasersOn  uint8 = 67
)

// ShowLight is a stage lighting cue.
type ShowLight struct {
	Time int
	Note uint8
}

func (s ShowLight) TimeCode() int { return s.Time }

func (s *ShowLight) IsFog() bool {
	return s.Note >= FogMin && s.Note <= FogMax
}

func (s *ShowLight) IsBeam() bool {
	return (s.Note >= BeamMin && s.Note <= BeamMax) || s.Note == BeamOff
}

func ReadShowLight(r *xmlio.Reader, se xml.StartElement) (ShowLight, error) {
	var s ShowLight
	p := xmlio.NewAttrParser(se)
	for _, a := range se.Attr {
		switch a.Name.Local {
		case "time":
			s.Time = p.Time(a)
		case "note":
			s.Note = p.Uint8(a)
		}
	}
	if err := p.Err(); err != nil {
		return s, err
	}
	return s, r.Skip()
}

func (s *ShowLight) WriteXML(w *xmlio.Writer) {
	w.TimeAttr("time", s.Time)
	w.IntAttr("note", int(s.Note))
}
