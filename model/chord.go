package model

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/jsphweid/rsxml/util"
	"github.com/jsphweid/rsxml/xmlio"
)

type ChordMask uint8

const (
	ChordLinkNext ChordMask = 1 << iota
	ChordAccent
	ChordFretHandMute
	// ChordHighDensity is a leftover of the first game. FixHighDensity clears it.
	ChordHighDensity
	ChordIgnore
	ChordPalmMute
	// ChordHopo is unused.
	ChordHopo
)

var chordFlagBits = xmlio.FlagBits{
	"linkNext":     0,
	"accent":       1,
	"fretHandMute": 2,
	"highDensity":  3,
	"ignore":       4,
	"palmMute":     5,
	"hopo":         6,
}

// Chord is a strike of the chord template ChordID. ChordNotes, when present,
// give the per-string detail of that strike.
type Chord struct {
	Time       int
	ChordID    int16
	Mask       ChordMask
	ChordNotes []Note
}

func (c Chord) TimeCode() int { return c.Time }

func (c *Chord) Clone() Chord {
	res := *c
	if c.ChordNotes != nil {
		res.ChordNotes = make([]Note, len(c.ChordNotes))
		for i := range c.ChordNotes {
			res.ChordNotes[i] = c.ChordNotes[i].Clone()
		}
	}
	return res
}

func (c *Chord) IsLinkNext() bool { return util.HasFlag(c.Mask, ChordLinkNext) }
func (c *Chord) SetLinkNext(on bool) { util.SetFlag(&c.Mask, ChordLinkNext, on) }
func (c *Chord) IsAccent() bool { return util.HasFlag(c.Mask, ChordAccent) }
func (c *Chord) SetAccent(on bool) { util.SetFlag(&c.Mask, ChordAccent, on) }
func (c *Chord) IsFretHandMute() bool { return util.HasFlag(c.Mask, ChordFretHandMute) }
func (c *Chord) SetFretHandMute(on bool) { util.SetFlag(&c.Mask, ChordFretHandMute, on) }
func (c *Chord) IsHighDensity() bool { return util.HasFlag(c.Mask, ChordHighDensity) }
func (c *Chord) SetHighDensity(on bool) { util.SetFlag(&c.Mask, ChordHighDensity, on) }
func (c *Chord) IsIgnore() bool { return util.HasFlag(c.Mask, ChordIgnore) }
func (c *Chord) SetIgnore(on bool) { util.SetFlag(&c.Mask, ChordIgnore, on) }
func (c *Chord) IsPalmMute() bool { return util.HasFlag(c.Mask, ChordPalmMute) }
func (c *Chord) SetPalmMute(on bool) { util.SetFlag(&c.Mask, ChordPalmMute, on) }
func (c *Chord) IsHopo() bool { return util.HasFlag(c.Mask, ChordHopo) }
func (c *Chord) SetHopo(on bool) { util.SetFlag(&c.Mask, ChordHopo, on) }
func (c *Chord) HasChordNotes() bool { return len(c.ChordNotes) > 0 }

func ReadChord(r *xmlio.Reader, se xml.StartElement) (Chord, error) {
	var c Chord
	p := xmlio.NewAttrParser(se)
	for _, a := range se.Attr {
		if xmlio.ReadFlag(&c.Mask, chordFlagBits, a) {
			continue
		}
		switch a.Name.Local {
		case "time":
			c.Time = p.Time(a)
		case "chordId":
			c.ChordID = p.Int16(a)
		}
	}
	if err := p.Err(); err != nil {
		return c, err
	}

	err := r.Children(func(child xml.StartElement) error {
		if child.Name.Local != "chordNote" {
			return r.Skip()
		}
		n, err := ReadNote(r, child)
		if err != nil {
			return err
		}
		c.ChordNotes = append(c.ChordNotes, n)
		return nil
	})
	return c, err
}

func (c *Chord) WriteXML(w *xmlio.Writer) {
	w.TimeAttr("time", c.Time)
	w.IntAttr("chordId", int(c.ChordID))
	w.Flag("linkNext", c.IsLinkNext())
	w.Flag("accent", c.IsAccent())
	w.Flag("fretHandMute", c.IsFretHandMute())
	w.Flag("highDensity", c.IsHighDensity())
	w.Flag("ignore", c.IsIgnore())
	w.Flag("palmMute", c.IsPalmMute())
	w.Flag("hopo", c.IsHopo())
	if !w.Abridged() {
		w.Attr("strum", "down")
	}

	for i := range c.ChordNotes {
		w.StartElement("chordNote")
		c.ChordNotes[i].WriteXML(w)
		w.EndElement()
	}
}

// ChordTemplate holds a fingering. Unused strings have -1 in Frets and Fingers.
type ChordTemplate struct {
	Name        string
	DisplayName string
	Fingers     [6]int8
	Frets       [6]int8
}

func NewChordTemplate(name, displayName string) ChordTemplate {
	return ChordTemplate{
		Name:        name,
		DisplayName: displayName,
		Fingers:     [6]int8{-1, -1, -1, -1, -1, -1},
		Frets:       [6]int8{-1, -1, -1, -1, -1, -1},
	}
}

// IsArpeggio reports whether the display name carries the "-arp" suffix.
func (ct *ChordTemplate) IsArpeggio() bool {
	return strings.HasSuffix(ct.DisplayName, "-arp")
}

func ReadChordTemplate(r *xmlio.Reader, se xml.StartElement) (ChordTemplate, error) {
	ct := NewChordTemplate("", "")
	p := xmlio.NewAttrParser(se)
	for _, a := range se.Attr {
		name := a.Name.Local
		switch {
		case name == "chordName":
			ct.Name = a.Value
		case name == "displayName":
			ct.DisplayName = a.Value
		case stringIndex(name, "finger") >= 0:
			ct.Fingers[stringIndex(name, "finger")] = p.Int8(a)
		case stringIndex(name, "fret") >= 0:
			ct.Frets[stringIndex(name, "fret")] = p.Int8(a)
		}
	}
	if err := p.Err(); err != nil {
		return ct, err
	}
	return ct, r.Skip()
}

// stringIndex returns n for an attribute named prefix+n with n in 0..5.
func stringIndex(name, prefix string) int {
	if len(name) != len(prefix)+1 || !strings.HasPrefix(name, prefix) {
		return -1
	}
	i := int(name[len(prefix)] - '0')
	if i < 0 || i > 5 {
		return -1
	}
	return i
}

func (ct *ChordTemplate) WriteXML(w *xmlio.Writer) {
	w.Attr("chordName", ct.Name)
	w.Attr("displayName", ct.DisplayName)
	for i, f := range ct.Fingers {
		w.OptionalAttr("finger"+strconv.Itoa(i), f != -1, itoa(f), "-1")
	}
	for i, f := range ct.Frets {
		w.OptionalAttr("fret"+strconv.Itoa(i), f != -1, itoa(f), "-1")
	}
}

// HandShape is the interval [StartTime, EndTime) during which the fingering of
// chord template ChordID is held.
type HandShape struct {
	ChordID   int16
	StartTime int
	EndTime   int
}

func (hs HandShape) TimeCode() int { return hs.StartTime }

func ReadHandShape(r *xmlio.Reader, se xml.StartElement) (HandShape, error) {
	var hs HandShape
	if err := xmlio.Require(se, "chordId", "startTime", "endTime"); err != nil {
		return hs, err
	}
	p := xmlio.NewAttrParser(se)
	for _, a := range se.Attr {
		switch a.Name.Local {
		case "chordId":
			hs.ChordID = p.Int16(a)
		case "startTime":
			hs.StartTime = p.Time(a)
		case "endTime":
			hs.EndTime = p.Time(a)
		}
	}
	if err := p.Err(); err != nil {
		return hs, err
	}
	return hs, r.Skip()
}

func (hs *HandShape) WriteXML(w *xmlio.Writer) {
	w.IntAttr("chordId", int(hs.ChordID))
	w.TimeAttr("startTime", hs.StartTime)
	w.TimeAttr("endTime", hs.EndTime)
}
