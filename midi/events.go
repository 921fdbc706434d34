package midi

import (
	"fmt"
	"sort"

	"gitlab.com/gomidi/midi/v2/smf"
)

// Sounding is the set of keys held at Offset, in milliseconds.
type Sounding struct {
	Offset uint32
	Keys   []uint8
}

type reducedEvent struct {
	offset    int64
	isNoteOff bool
	key       uint8
}

// ChordKey names a set of keys, lowest first, like "40-45-50".
func ChordKey(keys []uint8) string {
	sorted := append([]uint8(nil), keys...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	var res string
	for i, key := range sorted {
		res += fmt.Sprintf("%v", key)
		if i < len(sorted)-1 {
			res += "-"
		}
	}
	return res
}

// NoteCount counts the note on events of all tracks.
func NoteCount(s *smf.SMF) int {
	count := 0
	for _, events := range s.Tracks {
		for _, event := range events {
			var ch, key, vel uint8
			if event.Message.GetNoteOn(&ch, &key, &vel) {
				count++
			}
		}
	}
	return count
}

// Soundings returns the keys held after every change, in time order. Moments
// where nothing sounds are left out.
func Soundings(s *smf.SMF) []Sounding {
	var events []reducedEvent
	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			var ch, key, vel uint8
			switch {
			case event.Message.GetNoteOn(&ch, &key, &vel):
				events = append(events, reducedEvent{offset: s.TimeAt(absTicks), key: key})
			case event.Message.GetNoteOff(&ch, &key, &vel):
				events = append(events, reducedEvent{offset: s.TimeAt(absTicks), isNoteOff: true, key: key})
			}
		}
	}

	// earlier first, then note offs
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].offset != events[j].offset {
			return events[i].offset < events[j].offset
		}
		return events[i].isNoteOff && !events[j].isNoteOff
	})

	byOffset := make(map[int64][]uint8)
	var offsets []int64
	pressed := make(map[uint8]bool)
	for _, evt := range events {
		if evt.isNoteOff {
			delete(pressed, evt.key)
		} else {
			pressed[evt.key] = true
		}
		if _, ok := byOffset[evt.offset]; !ok {
			offsets = append(offsets, evt.offset)
		}
		keys := make([]uint8, 0, len(pressed))
		for key := range pressed {
			keys = append(keys, key)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
		byOffset[evt.offset] = keys
	}

	var res []Sounding
	for _, offset := range offsets {
		if keys := byOffset[offset]; len(keys) > 0 {
			// microseconds to millis
			res = append(res, Sounding{Offset: uint32(offset / 1000), Keys: keys})
		}
	}
	return res
}
