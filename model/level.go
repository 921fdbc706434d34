package model

import (
	"encoding/xml"

	"github.com/jsphweid/rsxml/xmlio"
)

// Level is one difficulty of an arrangement. Each list is in time order.
type Level struct {
	Difficulty int8
	Notes      []Note
	Chords     []Chord
	Anchors    []Anchor
	HandShapes []HandShape
}

func NewLevel(difficulty int8) Level {
	return Level{Difficulty: difficulty}
}

func ReadLevel(r *xmlio.Reader, se xml.StartElement) (Level, error) {
	lvl := NewLevel(-1)
	if err := xmlio.Require(se, "difficulty"); err != nil {
		return lvl, err
	}
	p := xmlio.NewAttrParser(se)
	for _, a := range se.Attr {
		if a.Name.Local == "difficulty" {
			lvl.Difficulty = p.Int8(a)
		}
	}
	if err := p.Err(); err != nil {
		return lvl, err
	}

	err := r.Children(func(child xml.StartElement) error {
		var err error
		switch child.Name.Local {
		case "notes":
			lvl.Notes, err = xmlio.ReadList(r, child, ReadNote)
		case "chords":
			lvl.Chords, err = xmlio.ReadList(r, child, ReadChord)
		case "anchors":
			lvl.Anchors, err = xmlio.ReadList(r, child, ReadAnchor)
		case "handShapes":
			lvl.HandShapes, err = xmlio.ReadList(r, child, ReadHandShape)
		default:
			err = r.Skip()
		}
		return err
	})
	return lvl, err
}

func (l *Level) WriteXML(w *xmlio.Writer) {
	w.IntAttr("difficulty", int(l.Difficulty))
	xmlio.WriteList(w, l.Notes, "notes", "note", (*Note).WriteXML)
	xmlio.WriteList(w, l.Chords, "chords", "chord", (*Chord).WriteXML)
	xmlio.WriteList(w, l.Anchors, "anchors", "anchor", (*Anchor).WriteXML)
	xmlio.WriteList(w, l.HandShapes, "handShapes", "handShape", (*HandShape).WriteXML)
}

// Anchor sets the fret position and width of the fretting-hand zone from Time.
type Anchor struct {
	Fret  int8
	Time  int
	Width int8
}

func NewAnchor(fret int8, time int) Anchor {
	return Anchor{Fret: fret, Time: time, Width: 4}
}

func (a Anchor) TimeCode() int { return a.Time }

func ReadAnchor(r *xmlio.Reader, se xml.StartElement) (Anchor, error) {
	var an Anchor
	if err := xmlio.Require(se, "time", "fret", "width"); err != nil {
		return an, err
	}
	p := xmlio.NewAttrParser(se)
	for _, a := range se.Attr {
		switch a.Name.Local {
		case "time":
			an.Time = p.Time(a)
		case "fret":
			an.Fret = p.Int8(a)
		case "width":
			// Written as "4.000", stored whole.
			an.Width = int8(p.Float32(a))
		}
	}
	if err := p.Err(); err != nil {
		return an, err
	}
	return an, r.Skip()
}

func (an *Anchor) WriteXML(w *xmlio.Writer) {
	w.TimeAttr("time", an.Time)
	w.IntAttr("fret", int(an.Fret))
	w.Attr("width", formatF3(an.Width))
}
