package model

import (
	"encoding/xml"

	"github.com/jsphweid/rsxml/xmlio"
)

// Ebeat is a beat of the tempo map. Measure is -1 for beats inside a measure.
type Ebeat struct {
	Time    int
	Measure int16
}

func (b Ebeat) TimeCode() int { return b.Time }

func ReadEbeat(r *xmlio.Reader, se xml.StartElement) (Ebeat, error) {
	b := Ebeat{Measure: -1}
	p := xmlio.NewAttrParser(se)
	for _, a := range se.Attr {
		switch a.Name.Local {
		case "time":
			b.Time = p.Time(a)
		case "measure":
			b.Measure = p.Int16(a)
		}
	}
	if err := p.Err(); err != nil {
		return b, err
	}
	return b, r.Skip()
}

func (b *Ebeat) WriteXML(w *xmlio.Writer) {
	w.TimeAttr("time", b.Time)
	w.OptionalAttr("measure", b.Measure != -1, itoa(b.Measure), "-1")
}

type Section struct {
	Name   string
	Number int16
	Time   int
}

func (s Section) TimeCode() int { return s.Time }

func ReadSection(r *xmlio.Reader, se xml.StartElement) (Section, error) {
	var s Section
	if err := xmlio.Require(se, "number", "startTime"); err != nil {
		return s, err
	}
	p := xmlio.NewAttrParser(se)
	for _, a := range se.Attr {
		switch a.Name.Local {
		case "name":
			s.Name = a.Value
		case "number":
			s.Number = p.Int16(a)
		case "startTime":
			s.Time = p.Time(a)
		}
	}
	if err := p.Err(); err != nil {
		return s, err
	}
	return s, r.Skip()
}

func (s *Section) WriteXML(w *xmlio.Writer) {
	w.Attr("name", s.Name)
	w.IntAttr("number", int(s.Number))
	w.TimeAttr("startTime", s.Time)
}

// Event is a timed game event such as "B0" or "e1".
type Event struct {
	Code string
	Time int
}

func (e Event) TimeCode() int { return e.Time }

func ReadEvent(r *xmlio.Reader, se xml.StartElement) (Event, error) {
	var e Event
	if err := xmlio.Require(se, "time"); err != nil {
		return e, err
	}
	p := xmlio.NewAttrParser(se)
	for _, a := range se.Attr {
		switch a.Name.Local {
		case "time":
			e.Time = p.Time(a)
		case "code":
			e.Code = a.Value
		}
	}
	if err := p.Err(); err != nil {
		return e, err
	}
	return e, r.Skip()
}

func (e *Event) WriteXML(w *xmlio.Writer) {
	w.TimeAttr("time", e.Time)
	w.Attr("code", e.Code)
}

type ToneChange struct {
	Time int
	ID   uint8
	Name string
}

func (tc ToneChange) TimeCode() int { return tc.Time }

func ReadToneChange(r *xmlio.Reader, se xml.StartElement) (ToneChange, error) {
	var tc ToneChange
	if err := xmlio.Require(se, "time"); err != nil {
		return tc, err
	}
	p := xmlio.NewAttrParser(se)
	for _, a := range se.Attr {
		switch a.Name.Local {
		case "time":
			tc.Time = p.Time(a)
		case "id":
			// Older files leave the id empty.
			if a.Value != "" {
				tc.ID = p.Uint8(a)
			}
		case "name":
			tc.Name = a.Value
		}
	}
	if err := p.Err(); err != nil {
		return tc, err
	}
	return tc, r.Skip()
}

func (tc *ToneChange) WriteXML(w *xmlio.Writer) {
	w.TimeAttr("time", tc.Time)
	w.IntAttr("id", int(tc.ID))
	w.Attr("name", tc.Name)
}

// ToneInfo holds the base tone, the up to four named tone slots (tonea to
// toned) and the tone changes. A nil name means the element is absent.
type ToneInfo struct {
	BaseToneName *string
	Names        [4]*string
	Changes      []ToneChange
}

// ToneElement returns the element name of tone slot i.
func ToneElement(i int) string {
	return "tone" + string(rune('a'+i))
}

// ToneSlot returns the slot index of a tonea..toned element name, or -1.
func ToneSlot(name string) int {
	if len(name) == 5 && name[:4] == "tone" && name[4] >= 'a' && name[4] <= 'd' {
		return int(name[4] - 'a')
	}
	return -1
}

func (ti *ToneInfo) WriteXML(w *xmlio.Writer) {
	if ti.BaseToneName != nil {
		w.ElementString("tonebase", *ti.BaseToneName)
	}
	for i, name := range ti.Names {
		if name != nil {
			w.ElementString(ToneElement(i), *name)
		}
	}
	xmlio.WriteList(w, ti.Changes, "tones", "tone", (*ToneChange).WriteXML)
}
