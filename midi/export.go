package midi

import (
	"sort"

	"github.com/jsphweid/rsxml/arrangement"
	"github.com/jsphweid/rsxml/model"
	"github.com/jsphweid/rsxml/util"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const TicksPerQuarter = 960

const (
	channel = 0
	// Notes without sustain still need to sound for a while.
	minLength = 100
	velocity  = 100
	// Muted strikes are quieter.
	muteVelocity = 40
)

// Open string pitches of a guitar in standard tuning, low E first.
var standardPitches = [6]int{40, 45, 50, 55, 59, 64}

// Pitch is the MIDI key of fret on str for the tuning of md. Bass
// arrangements sound an octave lower.
func Pitch(md *model.MetaData, str, fret int8) uint8 {
	if str < 0 || int(str) >= len(standardPitches) {
		return 0
	}
	p := standardPitches[str] + int(md.Tuning.Strings[str]) + int(fret)
	if md.ArrangementProperties.Has(model.PropPathBass) {
		p -= 12
	}
	return uint8(util.Max(0, util.Min(127, p)))
}

// Ticks converts a time in milliseconds at tempo beats per minute.
func Ticks(ms int, tempo float32) uint64 {
	if ms <= 0 {
		return 0
	}
	return uint64(float64(ms) * float64(tempo) * TicksPerQuarter / 60000)
}

type event struct {
	tick uint64
	on   bool
	key  uint8
	vel  uint8
	// Meta events sort before notes at the same tick.
	meta smf.Message
}

type track struct {
	tempo  float32
	events []event
}

func (t *track) note(time, length int, key, vel uint8) {
	length = util.Max(length, minLength)
	t.events = append(t.events,
		event{tick: Ticks(time, t.tempo), on: true, key: key, vel: vel},
		event{tick: Ticks(time+length, t.tempo), key: key},
	)
}

func (t *track) build(name string) smf.Track {
	sort.SliceStable(t.events, func(i, j int) bool {
		a, b := t.events[i], t.events[j]
		if a.tick != b.tick {
			return a.tick < b.tick
		}
		// Offs first so repeated keys retrigger.
		return rank(a) < rank(b)
	})

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(name))
	tr.Add(0, smf.MetaTempo(float64(t.tempo)))
	var last uint64
	for _, e := range t.events {
		delta := uint32(e.tick - last)
		last = e.tick
		switch {
		case e.meta != nil:
			tr.Add(delta, e.meta)
		case e.on:
			tr.Add(delta, midi.NoteOn(channel, e.key, e.vel))
		default:
			tr.Add(delta, midi.NoteOff(channel, e.key))
		}
	}
	tr.Close(0)
	return tr
}

func rank(e event) int {
	switch {
	case e.meta != nil:
		return 0
	case !e.on:
		return 1
	}
	return 2
}

func newSMF(tr smf.Track) *smf.SMF {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(TicksPerQuarter)
	// Add only fails for tracks without an end of track event.
	_ = s.Add(tr)
	return s
}

func noteVelocity(n *model.Note) uint8 {
	if n.IsFretHandMute() || n.IsPalmMute() {
		return muteVelocity
	}
	return velocity
}

// FromLevel renders one level of arr. Chords without chord notes sound the
// frets of their template.
func FromLevel(arr *arrangement.InstrumentalArrangement, lvl *model.Level) *smf.SMF {
	md := &arr.MetaData
	t := track{tempo: md.AverageTempo}
	if t.tempo <= 0 {
		t.tempo = 120
	}

	for i := range lvl.Notes {
		n := &lvl.Notes[i]
		if n.IsIgnore() {
			continue
		}
		t.note(n.Time, n.Sustain, Pitch(md, n.String, n.Fret), noteVelocity(n))
	}

	for i := range lvl.Chords {
		c := &lvl.Chords[i]
		if c.IsIgnore() {
			continue
		}
		if c.HasChordNotes() {
			for j := range c.ChordNotes {
				n := &c.ChordNotes[j]
				t.note(c.Time, n.Sustain, Pitch(md, n.String, n.Fret), noteVelocity(n))
			}
			continue
		}
		if int(c.ChordID) < 0 || int(c.ChordID) >= len(arr.ChordTemplates) {
			continue
		}
		vel := uint8(velocity)
		if c.IsFretHandMute() || c.IsPalmMute() {
			vel = muteVelocity
		}
		for str, fret := range arr.ChordTemplates[c.ChordID].Frets {
			if fret >= 0 {
				t.note(c.Time, 0, Pitch(md, int8(str), fret), vel)
			}
		}
	}

	return newSMF(t.build(util.Deref(md.Arrangement)))
}

// FromVocals renders lyrics as lyric events. Pitched vocals also get notes.
func FromVocals(vocals []model.Vocal, tempo float32) *smf.SMF {
	t := track{tempo: tempo}
	for _, v := range vocals {
		t.events = append(t.events, event{tick: Ticks(v.Time, tempo), meta: smf.MetaLyric(v.Lyric)})
		if v.Note <= 127 {
			t.note(v.Time, v.Length, v.Note, velocity)
		}
	}
	return newSMF(t.build("Vocals"))
}
