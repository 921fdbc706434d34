package arrangement

import "github.com/jsphweid/rsxml/model"

// FixHighDensity replaces the high density flag with the convention the game
// uses for repeated strums: chords keep their chord notes only when they start
// a hand shape or the first strike after fret-hand muted chords, the rest are
// drawn without them. The version is set to 8.
func (a *InstrumentalArrangement) FixHighDensity() {
	a.Version = CurrentVersion

	for li := range a.Levels {
		lvl := &a.Levels[li]
		for _, hs := range lvl.HandShapes {
			fixHandShape(lvl.Chords, hs)
		}
		// Chords outside any hand shape only lose the flag.
		for ci := range lvl.Chords {
			removeHighDensity(&lvl.Chords[ci], false)
		}
	}
}

func fixHandShape(chords []model.Chord, hs model.HandShape) {
	startsWithMute := false
	chordNum := 0
	prevChordID := -1

	for ci := range chords {
		chord := &chords[ci]
		if chord.Time < hs.StartTime || chord.Time >= hs.EndTime {
			continue
		}
		chordNum++

		if chordNum == 1 {
			if !chord.IsFretHandMute() {
				// The first strike of a hand shape is always drawn in full.
				removeHighDensity(chord, false)
				prevChordID = int(chord.ChordID)
				continue
			}
			startsWithMute = true
			// Muted chords without techniques carry no chord notes.
			if chord.HasChordNotes() && allWithoutSustain(chord.ChordNotes) {
				chord.ChordNotes = nil
			}
		}

		if startsWithMute && !chord.IsFretHandMute() {
			removeHighDensity(chord, false)
			startsWithMute = false
		} else {
			removeHighDensity(chord, true)

			// A repeated chord inside the hand shape is a strum.
			if int(chord.ChordID) == prevChordID && chord.HasChordNotes() && allWithoutSustain(chord.ChordNotes) {
				chord.ChordNotes = nil
			}
		}

		prevChordID = int(chord.ChordID)
	}
}

// removeHighDensity clears the flag. When dropNotes is set the chord notes of
// a high density chord are removed too, and a chord that loses a harmonic is
// ignored instead.
func removeHighDensity(chord *model.Chord, dropNotes bool) {
	if !chord.IsHighDensity() {
		return
	}
	chord.SetHighDensity(false)
	if !dropNotes {
		return
	}
	for i := range chord.ChordNotes {
		if chord.ChordNotes[i].IsHarmonic() {
			chord.SetIgnore(true)
			break
		}
	}
	chord.ChordNotes = nil
}

func allWithoutSustain(notes []model.Note) bool {
	for _, n := range notes {
		if n.Sustain != 0 {
			return false
		}
	}
	return true
}
