// Package sample cuts a short MIDI preview out of an arrangement.
package sample

import (
	"github.com/jsphweid/rsxml/arrangement"
	"github.com/jsphweid/rsxml/midi"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Create renders the merged transcription of arr from startMs on, stopping
// after maxNotes note starts.
func Create(arr *arrangement.InstrumentalArrangement, startMs, maxNotes int) (*smf.SMF, error) {
	lvl, err := arr.GenerateTranscriptionTrack()
	if err != nil {
		return nil, err
	}
	full := midi.FromLevel(arr, &lvl)
	ticksOffset := midi.Ticks(startMs, arr.MetaData.AverageTempo)

	res := smf.New()
	res.TimeFormat = full.TimeFormat
	for _, track := range full.Tracks {
		if err := res.Add(cut(track, ticksOffset, maxNotes)); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func isEndOfTrack(msg smf.Message) bool {
	return len(msg) >= 2 && msg[0] == 0xFF && msg[1] == 0x2F
}

// cut keeps the meta events up to ticksOffset at the start of the track and
// the notes from ticksOffset on.
func cut(track smf.Track, ticksOffset uint64, maxNotes int) smf.Track {
	var newTrack smf.Track
	var absTicks, lastTicks uint64
	numNoteOn := 0
	held := make(map[uint8]bool)

TrackEventLoop:
	for _, evt := range track {
		absTicks += uint64(evt.Delta)
		var ch, key, vel uint8
		switch {
		case evt.Message.GetNoteOn(&ch, &key, &vel):
			if absTicks < ticksOffset || numNoteOn >= maxNotes {
				continue
			}
			numNoteOn++
			held[key] = true
		case evt.Message.GetNoteOff(&ch, &key, &vel):
			// Only release keys the preview pressed.
			if !held[key] {
				continue
			}
			delete(held, key)
		default:
			if absTicks <= ticksOffset && !isEndOfTrack(evt.Message) {
				newTrack.Add(0, evt.Message)
			}
			continue
		}

		rel := absTicks - ticksOffset
		newTrack.Add(uint32(rel-lastTicks), evt.Message)
		lastTicks = rel
		if numNoteOn >= maxNotes && len(held) == 0 {
			break TrackEventLoop
		}
	}

	newTrack.Close(0)
	return newTrack
}
