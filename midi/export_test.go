package midi

import (
	"testing"

	"github.com/jsphweid/rsxml/arrangement"
	"github.com/jsphweid/rsxml/model"
	"github.com/stretchr/testify/assert"
)

func note(time int, str, fret int8) model.Note {
	n := model.NewNote()
	n.Time = time
	n.String = str
	n.Fret = fret
	return n
}

func testArrangement() *arrangement.InstrumentalArrangement {
	arr := arrangement.New()
	arr.MetaData.AverageTempo = 120
	ct := model.NewChordTemplate("E5", "E5")
	ct.Frets = [6]int8{0, 2, 2, -1, -1, -1}
	arr.ChordTemplates = []model.ChordTemplate{ct}
	return arr
}

func TestPitch(t *testing.T) {
	assert := assert.New(t)
	md := model.NewMetaData()

	assert.Equal(uint8(40), Pitch(&md, 0, 0))
	assert.Equal(uint8(69), Pitch(&md, 5, 5))

	md.Tuning.Strings[0] = -2
	assert.Equal(uint8(38), Pitch(&md, 0, 0))

	md.ArrangementProperties.Set(model.PropPathBass, true)
	assert.Equal(uint8(26), Pitch(&md, 0, 0))
	assert.Equal(uint8(0), Pitch(&md, 7, 0))
}

func TestTicks(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint64(960), Ticks(500, 120))
	assert.Equal(uint64(1920), Ticks(1000, 120))
	assert.Equal(uint64(0), Ticks(-50, 120))
}

func TestFromLevelNoteCount(t *testing.T) {
	assert := assert.New(t)
	arr := testArrangement()
	ignored := note(3000, 0, 1)
	ignored.SetIgnore(true)
	withNotes := model.Chord{Time: 1000, ChordNotes: []model.Note{note(1000, 0, 3), note(1000, 1, 5)}}
	lvl := model.Level{
		Notes:  []model.Note{note(0, 0, 0), note(500, 1, 2), ignored},
		Chords: []model.Chord{withNotes, {Time: 2000, ChordID: 0}, {Time: 2500, ChordID: 9}},
	}

	s := FromLevel(arr, &lvl)

	// two notes, two chord notes and three template frets
	assert.Equal(7, NoteCount(s))
	assert.Len(s.Tracks, 1)
}

func TestFromLevelSoundings(t *testing.T) {
	assert := assert.New(t)
	arr := testArrangement()
	lvl := model.Level{Chords: []model.Chord{{Time: 1000, ChordID: 0}}}

	soundings := Soundings(FromLevel(arr, &lvl))

	if assert.Len(soundings, 1) {
		assert.Equal(uint32(1000), soundings[0].Offset)
		assert.Equal("40-47-52", ChordKey(soundings[0].Keys))
	}
}

func TestFromVocals(t *testing.T) {
	vocals := []model.Vocal{
		model.NewVocal(0, 500, "Hel-"),
		model.NewVocal(500, 500, "lo"),
		{Time: 1000, Note: 254, Length: 500, Lyric: "hey"},
	}

	s := FromVocals(vocals, 100)

	assert.Equal(t, 2, NoteCount(s))
}

func TestChordKeyDoesNotReorderInput(t *testing.T) {
	keys := []uint8{52, 40, 47}
	assert.Equal(t, "40-47-52", ChordKey(keys))
	assert.Equal(t, []uint8{52, 40, 47}, keys)
}

func TestWriteAndReadFile(t *testing.T) {
	assert := assert.New(t)
	arr := testArrangement()
	lvl := model.Level{Notes: []model.Note{note(0, 0, 0), note(500, 1, 2)}}
	path := t.TempDir() + "/out.mid"

	assert.NoError(WriteFile(FromLevel(arr, &lvl), path))
	s, err := ReadFile(path)

	assert.NoError(err)
	assert.Equal(2, NoteCount(s))
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(t.TempDir() + "/nope.mid")
	assert.Error(t, err)
}
