package model

import (
	"testing"

	"github.com/jsphweid/rsxml/xmlio"
	"github.com/stretchr/testify/assert"
)

func TestFindAndInsertByTime(t *testing.T) {
	assert := assert.New(t)

	beats := []Ebeat{{Time: 100}, {Time: 200}, {Time: 400}}
	assert.Equal(1, FindIndexByTime(beats, 200))
	assert.Equal(-1, FindIndexByTime(beats, 300))
	assert.Equal(-1, FindIndexByTime(beats, 500))

	beats = InsertByTime(beats, Ebeat{Time: 300, Measure: 2})
	beats = InsertByTime(beats, Ebeat{Time: 50})
	beats = InsertByTime(beats, Ebeat{Time: 900})
	var times []int
	for _, b := range beats {
		times = append(times, b.Time)
	}
	assert.Equal([]int{50, 100, 200, 300, 400, 900}, times)
	assert.Equal(int16(2), beats[3].Measure)

	assert.Len(InRange(beats, 100, 400), 3)
}

func TestCommentType(t *testing.T) {
	cases := map[string]CommentType{
		" CST v2.6.0.0 ":            CommentToolkit,
		" eof v1.8 ":                CommentEOF,
		" DDC Improver 1.0 ":        CommentDDCImprover,
		" DDC v1.5 ":                CommentDDC,
		" something else entirely ": CommentUnknown,
	}
	for text, expected := range cases {
		t.Run(text, func(t *testing.T) {
			assert.Equal(t, expected, Comment(text).Type())
		})
	}
}

func TestEbeatWrite(t *testing.T) {
	assert := assert.New(t)

	b := Ebeat{Time: 1000, Measure: -1}
	assert.Equal(`<ebeat time="1.000" />`, render(t, xmlio.Abridged, "ebeat", b.WriteXML))
	assert.Equal(`<ebeat time="1.000" measure="-1" />`, render(t, xmlio.Full, "ebeat", b.WriteXML))

	back, err := parse(t, `<ebeat time="1.000" />`, ReadEbeat)
	assert.NoError(err)
	assert.Equal(b, back)
}

func TestAnchorWidth(t *testing.T) {
	assert := assert.New(t)

	a, err := parse(t, `<anchor time="4.567" fret="22" width="6.000" />`, ReadAnchor)
	assert.NoError(err)
	assert.Equal(Anchor{Fret: 22, Time: 4567, Width: 6}, a)
	assert.Equal(`<anchor time="4.567" fret="22" width="6.000" />`, render(t, xmlio.Abridged, "anchor", a.WriteXML))
	assert.Equal(int8(4), NewAnchor(1, 0).Width)
}

func TestToneChangeOptionalID(t *testing.T) {
	assert := assert.New(t)

	tc, err := parse(t, `<tone time="5.000" id="" name="clean" />`, ReadToneChange)
	assert.NoError(err)
	assert.Equal(ToneChange{Time: 5000, Name: "clean"}, tc)
	assert.Equal(`<tone time="5.000" id="0" name="clean" />`, render(t, xmlio.Abridged, "tone", tc.WriteXML))
	assert.Equal("tonec", ToneElement(2))
	assert.Equal(2, ToneSlot("tonec"))
	assert.Equal(-1, ToneSlot("tonebase"))
}

func TestShowLightRanges(t *testing.T) {
	assert := assert.New(t)

	sl := ShowLight{}
	for note := FogMin; note <= FogMax; note++ {
		sl.Note = note
		assert.True(sl.IsFog())
	}
	sl.Note = FogMax + 1
	assert.False(sl.IsFog())

	for note := BeamMin; note <= BeamMax; note++ {
		sl.Note = note
		assert.True(sl.IsBeam())
	}
	sl.Note = BeamOff
	assert.True(sl.IsBeam())
	sl.Note = BeamMin - 1
	assert.False(sl.IsBeam())
}

func TestVocalWrite(t *testing.T) {
	v := NewVocal(12340, 500, "Test")
	v.Note = 66
	assert.Equal(t, `<vocal time="12.340" note="66" length="0.500" lyric="Test" />`, render(t, xmlio.Abridged, "vocal", v.WriteXML))
}
