package model

import (
	"encoding/xml"
	"strconv"

	"github.com/jsphweid/rsxml/util"
	"github.com/jsphweid/rsxml/xmlio"
)

type NoteMask uint16

const (
	NoteLinkNext NoteMask = 1 << iota
	NoteAccent
	NoteHammerOn
	NoteHarmonic
	NoteIgnore
	NoteFretHandMute
	NotePalmMute
	NotePullOff
	NoteTremolo
	NotePinchHarmonic
	// NotePickDirection round-trips but means nothing to the game.
	NotePickDirection
	NoteSlap
	NotePluck
	NoteRightHand
)

var noteFlagBits = xmlio.FlagBits{
	"linkNext":      0,
	"accent":        1,
	"hammerOn":      2,
	"harmonic":      3,
	"ignore":        4,
	"mute":          5,
	"palmMute":      6,
	"pullOff":       7,
	"tremolo":       8,
	"harmonicPinch": 9,
	"pickDirection": 10,
}

// Note is a single note, or one string of a chord when used as a chord note.
// LeftHand, SlideTo and SlideUnpitchTo use -1 for "not set", Tap and Vibrato
// use 0.
type Note struct {
	Time           int
	Sustain        int
	Fret           int8
	String         int8
	LeftHand       int8
	SlideTo        int8
	SlideUnpitchTo int8
	Tap            int8
	Vibrato        uint8
	Mask           NoteMask
	MaxBend        float32
	BendValues     []BendValue
}

func NewNote() Note {
	return Note{LeftHand: -1, SlideTo: -1, SlideUnpitchTo: -1}
}

func (n Note) TimeCode() int { return n.Time }

// Clone returns a copy that shares no bend values with n.
func (n *Note) Clone() Note {
	c := *n
	if n.BendValues != nil {
		c.BendValues = append([]BendValue(nil), n.BendValues...)
	}
	return c
}

func (n *Note) IsLinkNext() bool { return util.HasFlag(n.Mask, NoteLinkNext) }
func (n *Note) SetLinkNext(on bool) { util.SetFlag(&n.Mask, NoteLinkNext, on) }
func (n *Note) IsAccent() bool { return util.HasFlag(n.Mask, NoteAccent) }
func (n *Note) SetAccent(on bool) { util.SetFlag(&n.Mask, NoteAccent, on) }
func (n *Note) IsHammerOn() bool { return util.HasFlag(n.Mask, NoteHammerOn) }
func (n *Note) SetHammerOn(on bool) { util.SetFlag(&n.Mask, NoteHammerOn, on) }
func (n *Note) IsHarmonic() bool { return util.HasFlag(n.Mask, NoteHarmonic) }
func (n *Note) SetHarmonic(on bool) { util.SetFlag(&n.Mask, NoteHarmonic, on) }
func (n *Note) IsIgnore() bool { return util.HasFlag(n.Mask, NoteIgnore) }
func (n *Note) SetIgnore(on bool) { util.SetFlag(&n.Mask, NoteIgnore, on) }
func (n *Note) IsFretHandMute() bool { return util.HasFlag(n.Mask, NoteFretHandMute) }
func (n *Note) SetFretHandMute(on bool) { util.SetFlag(&n.Mask, NoteFretHandMute, on) }
func (n *Note) IsPalmMute() bool { return util.HasFlag(n.Mask, NotePalmMute) }
func (n *Note) SetPalmMute(on bool) { util.SetFlag(&n.Mask, NotePalmMute, on) }
func (n *Note) IsPullOff() bool { return util.HasFlag(n.Mask, NotePullOff) }
func (n *Note) SetPullOff(on bool) { util.SetFlag(&n.Mask, NotePullOff, on) }
func (n *Note) IsTremolo() bool { return util.HasFlag(n.Mask, NoteTremolo) }
func (n *Note) SetTremolo(on bool) { util.SetFlag(&n.Mask, NoteTremolo, on) }
func (n *Note) IsPinchHarmonic() bool { return util.HasFlag(n.Mask, NotePinchHarmonic) }
func (n *Note) SetPinchHarmonic(on bool) { util.SetFlag(&n.Mask, NotePinchHarmonic, on) }
func (n *Note) IsSlap() bool { return util.HasFlag(n.Mask, NoteSlap) }
func (n *Note) SetSlap(on bool) { util.SetFlag(&n.Mask, NoteSlap, on) }
func (n *Note) IsPluck() bool { return util.HasFlag(n.Mask, NotePluck) }
func (n *Note) SetPluck(on bool) { util.SetFlag(&n.Mask, NotePluck, on) }
func (n *Note) IsRightHand() bool { return util.HasFlag(n.Mask, NoteRightHand) }
func (n *Note) SetRightHand(on bool) { util.SetFlag(&n.Mask, NoteRightHand, on) }
func (n *Note) IsVibrato() bool { return n.Vibrato != 0 }
func (n *Note) IsBend() bool { return len(n.BendValues) > 0 }
func (n *Note) IsSlide() bool { return n.SlideTo != -1 }
func (n *Note) IsUnpitchedSlide() bool { return n.SlideUnpitchTo != -1 }
func (n *Note) IsTap() bool { return n.Tap != 0 }

func (n *Note) IsHopo() bool {
	return n.Mask&(NoteHammerOn|NotePullOff) != 0
}

// ReadNote reads a <note> or <chordNote> element.
func ReadNote(r *xmlio.Reader, se xml.StartElement) (Note, error) {
	n := NewNote()
	p := xmlio.NewAttrParser(se)
	for _, a := range se.Attr {
		if xmlio.ReadFlag(&n.Mask, noteFlagBits, a) {
			continue
		}
		switch a.Name.Local {
		case "time":
			n.Time = p.Time(a)
		case "sustain":
			n.Sustain = p.Time(a)
		case "fret":
			n.Fret = p.Int8(a)
		case "string":
			n.String = p.Int8(a)
		case "leftHand":
			n.LeftHand = p.Int8(a)
		case "slideTo":
			n.SlideTo = p.Int8(a)
		case "slideUnpitchTo":
			n.SlideUnpitchTo = p.Int8(a)
		case "tap":
			n.Tap = p.Int8(a)
		case "vibrato":
			n.Vibrato = p.Uint8(a)
		case "bend":
			n.MaxBend = p.Float32(a)
		// These three use -1 for off.
		case "slap":
			n.SetSlap(p.Int8(a) != -1)
		case "pluck":
			n.SetPluck(p.Int8(a) != -1)
		case "rightHand":
			n.SetRightHand(p.Int8(a) != -1)
		}
	}
	if err := p.Err(); err != nil {
		return n, err
	}

	err := r.Children(func(child xml.StartElement) error {
		if child.Name.Local != "bendValues" {
			return r.Skip()
		}
		bvs, err := xmlio.ReadList(r, child, ReadBendValue)
		n.BendValues = bvs
		return err
	})
	return n, err
}

func (n *Note) WriteXML(w *xmlio.Writer) {
	w.TimeAttr("time", n.Time)
	w.IntAttr("string", int(n.String))
	w.IntAttr("fret", int(n.Fret))
	w.OptionalAttr("sustain", n.Sustain > 0, encodeTime(n.Sustain), "0.000")
	w.Flag("linkNext", n.IsLinkNext())
	w.Flag("accent", n.IsAccent())
	w.OptionalAttr("bend", n.IsBend(), strconv.FormatFloat(float64(n.MaxBend), 'f', -1, 32), "0")
	w.Flag("hammerOn", n.IsHammerOn())
	w.Flag("harmonic", n.IsHarmonic())
	w.Flag("hopo", n.IsHopo())
	w.Flag("ignore", n.IsIgnore())
	w.OptionalAttr("leftHand", n.LeftHand != -1, itoa(n.LeftHand), "-1")
	w.Flag("mute", n.IsFretHandMute())
	w.Flag("palmMute", n.IsPalmMute())
	w.FlagWithOff("pluck", n.IsPluck(), "-1")
	w.Flag("pullOff", n.IsPullOff())
	w.FlagWithOff("slap", n.IsSlap(), "-1")
	w.OptionalAttr("slideTo", n.IsSlide(), itoa(n.SlideTo), "-1")
	w.Flag("tremolo", n.IsTremolo())
	w.Flag("harmonicPinch", n.IsPinchHarmonic())
	w.Flag("pickDirection", util.HasFlag(n.Mask, NotePickDirection))
	w.FlagWithOff("rightHand", n.IsRightHand(), "-1")
	w.OptionalAttr("slideUnpitchTo", n.IsUnpitchedSlide(), itoa(n.SlideUnpitchTo), "-1")
	w.OptionalAttr("tap", n.IsTap(), itoa(n.Tap), "0")
	w.OptionalAttr("vibrato", n.IsVibrato(), itoa(n.Vibrato), "0")

	if n.IsBend() {
		xmlio.WriteList(w, n.BendValues, "bendValues", "bendValue", (*BendValue).WriteXML)
	}
}

// BendValue is one point of a bend curve, Step is in half steps.
type BendValue struct {
	Time int
	Step float32
}

func (b BendValue) TimeCode() int { return b.Time }

func ReadBendValue(r *xmlio.Reader, se xml.StartElement) (BendValue, error) {
	var b BendValue
	p := xmlio.NewAttrParser(se)
	for _, a := range se.Attr {
		switch a.Name.Local {
		case "time":
			b.Time = p.Time(a)
		case "step":
			b.Step = p.Float32(a)
		}
	}
	if err := p.Err(); err != nil {
		return b, err
	}
	return b, r.Skip()
}

func (b *BendValue) WriteXML(w *xmlio.Writer) {
	w.TimeAttr("time", b.Time)
	if b.Step != 0 || !w.Abridged() {
		w.Attr("step", formatF3(b.Step))
	}
}
