package model

import (
	"testing"

	"github.com/jsphweid/rsxml/xmlio"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNewNoteSentinels(t *testing.T) {
	assert := assert.New(t)

	n := NewNote()
	assert.Equal(int8(-1), n.SlideTo)
	assert.Equal(int8(-1), n.SlideUnpitchTo)
	assert.Equal(int8(-1), n.LeftHand)
	assert.False(n.IsSlide())
	assert.False(n.IsUnpitchedSlide())
	assert.False(n.IsBend())
	assert.False(n.IsTap())
	assert.False(n.IsVibrato())
}

func TestNoteMaskSetters(t *testing.T) {
	setters := map[NoteMask]func(*Note, bool){
		NoteLinkNext:      (*Note).SetLinkNext,
		NoteAccent:        (*Note).SetAccent,
		NoteHammerOn:      (*Note).SetHammerOn,
		NoteHarmonic:      (*Note).SetHarmonic,
		NoteIgnore:        (*Note).SetIgnore,
		NoteFretHandMute:  (*Note).SetFretHandMute,
		NotePalmMute:      (*Note).SetPalmMute,
		NotePullOff:       (*Note).SetPullOff,
		NoteTremolo:       (*Note).SetTremolo,
		NotePinchHarmonic: (*Note).SetPinchHarmonic,
		NoteSlap:          (*Note).SetSlap,
		NotePluck:         (*Note).SetPluck,
		NoteRightHand:     (*Note).SetRightHand,
	}
	for flag, set := range setters {
		for _, start := range []NoteMask{0, NoteAccent | NotePickDirection, NoteRightHand | NoteLinkNext} {
			n := Note{Mask: start &^ flag}
			before := n.Mask
			set(&n, true)
			assert.Equal(t, before|flag, n.Mask)
			set(&n, false)
			assert.Equal(t, before, n.Mask)
		}
	}
}

func TestNoteMaskGetters(t *testing.T) {
	assert := assert.New(t)

	n := Note{Mask: NoteAccent | NoteHammerOn | NoteHarmonic | NotePinchHarmonic | NoteIgnore}
	assert.True(n.IsAccent())
	assert.True(n.IsHammerOn())
	assert.True(n.IsHarmonic())
	assert.True(n.IsPinchHarmonic())
	assert.True(n.IsIgnore())
	assert.True(n.IsHopo())
	assert.False(n.IsLinkNext())
	assert.False(n.IsFretHandMute())
	assert.False(n.IsPalmMute())
	assert.False(n.IsPullOff())
	assert.False(n.IsTremolo())
	assert.False(n.IsPluck())
	assert.False(n.IsSlap())
	assert.False(n.IsRightHand())
}

func TestNoteWriteModes(t *testing.T) {
	n := NewNote()
	n.Time = 1000
	n.String = 2
	n.Fret = 5

	abridged := render(t, xmlio.Abridged, "note", n.WriteXML)
	assert.Equal(t, `<note time="1.000" string="2" fret="5" />`, abridged)

	full := render(t, xmlio.Full, "note", n.WriteXML)
	assert.Equal(t, `<note time="1.000" string="2" fret="5" sustain="0.000" linkNext="0" accent="0" bend="0" `+
		`hammerOn="0" harmonic="0" hopo="0" ignore="0" leftHand="-1" mute="0" palmMute="0" pluck="-1" `+
		`pullOff="0" slap="-1" slideTo="-1" tremolo="0" harmonicPinch="0" pickDirection="0" rightHand="-1" `+
		`slideUnpitchTo="-1" tap="0" vibrato="0" />`, full)
}

func TestNoteWithBendValues(t *testing.T) {
	n := NewNote()
	n.Time = 1000
	n.Fret = 7
	n.Sustain = 500
	n.MaxBend = 1
	n.SetHammerOn(true)
	n.BendValues = []BendValue{{Time: 1100, Step: 1}, {Time: 1200}}

	expected := `<note time="1.000" string="0" fret="7" sustain="0.500" bend="1" hammerOn="1" hopo="1">
  <bendValues count="2">
    <bendValue time="1.100" step="1.000" />
    <bendValue time="1.200" />
  </bendValues>
</note>`
	assert.Equal(t, expected, render(t, xmlio.Abridged, "note", n.WriteXML))
}

func TestReadNote(t *testing.T) {
	assert := assert.New(t)

	doc := `<note time="12.345" string="3" fret="12" sustain="1.5" slap="-1" pluck="1" rightHand="0"
  mute="1" harmonicPinch="2" slideTo="14" tap="2" vibrato="80" bend="0.5" leftHand="3">
  <bendValues count="1">
    <bendValue time="12.400" step="0.500" />
  </bendValues>
</note>`
	n, err := parse(t, doc, ReadNote)
	assert.NoError(err)
	assert.Equal(12345, n.Time)
	assert.Equal(int8(3), n.String)
	assert.Equal(int8(12), n.Fret)
	assert.Equal(1500, n.Sustain)
	assert.False(n.IsSlap())
	assert.True(n.IsPluck())
	assert.True(n.IsRightHand())
	assert.True(n.IsFretHandMute())
	assert.True(n.IsPinchHarmonic())
	assert.True(n.IsSlide())
	assert.Equal(int8(14), n.SlideTo)
	assert.False(n.IsUnpitchedSlide())
	assert.True(n.IsTap())
	assert.Equal(uint8(80), n.Vibrato)
	assert.Equal(int8(3), n.LeftHand)
	assert.Equal(float32(0.5), n.MaxBend)
	assert.Equal([]BendValue{{Time: 12400, Step: 0.5}}, n.BendValues)
}

func TestReadNoteRejectsBadFret(t *testing.T) {
	_, err := parse(t, `<note time="1.000" fret="x" />`, ReadNote)

	var ferr *xmlio.FormatError
	assert.True(t, errors.As(err, &ferr))
	assert.Equal(t, "fret", ferr.Attr)
}

func TestNoteFullRoundTrip(t *testing.T) {
	assert := assert.New(t)

	n := NewNote()
	n.Time = 5432
	n.Mask = NoteAccent | NotePickDirection | NoteSlap | NotePalmMute
	n.SlideUnpitchTo = 9
	n.Vibrato = 40

	first := render(t, xmlio.Full, "note", n.WriteXML)
	back, err := parse(t, first, ReadNote)
	assert.NoError(err)
	assert.Equal(n, back)
	assert.Equal(first, render(t, xmlio.Full, "note", back.WriteXML))
}

func TestNoteCloneDoesNotShareBends(t *testing.T) {
	n := NewNote()
	n.BendValues = []BendValue{{Time: 1, Step: 1}}
	c := n.Clone()
	c.BendValues[0].Step = 2
	assert.Equal(t, float32(1), n.BendValues[0].Step)
}
