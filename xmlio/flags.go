package xmlio

import (
	"encoding/xml"
	"strconv"

	"github.com/jsphweid/rsxml/timecode"
	"golang.org/x/exp/constraints"
)

// ParseBinary reads a "0"/"1" attribute. Any first character from '1' up
// counts as set, which accepts the odd values some third-party files carry.
func ParseBinary(text string) uint8 {
	if text == "" || text[0] < '1' {
		return 0
	}
	return 1
}

func Binary(on bool) string {
	if on {
		return "1"
	}
	return "0"
}

// FlagBits maps attribute names to their bit position in a mask.
type FlagBits map[string]uint

// ReadFlag ors the attribute into mask when its name is in bits.
func ReadFlag[M constraints.Unsigned](mask *M, bits FlagBits, a xml.Attr) bool {
	shift, ok := bits[a.Name.Local]
	if !ok {
		return false
	}
	*mask |= M(ParseBinary(a.Value)) << shift
	return true
}

// Flag writes "1" when on, and "0" only in full mode.
func (w *Writer) Flag(name string, on bool) {
	w.FlagWithOff(name, on, "0")
}

func (w *Writer) FlagWithOff(name string, on bool, off string) {
	if on {
		w.Attr(name, "1")
	} else if !w.Abridged() {
		w.Attr(name, off)
	}
}

// OptionalAttr writes value when present, otherwise fallback in full mode.
func (w *Writer) OptionalAttr(name string, present bool, value, fallback string) {
	if present {
		w.Attr(name, value)
	} else if !w.Abridged() {
		w.Attr(name, fallback)
	}
}

func (w *Writer) TimeAttr(name string, ms int) {
	w.Attr(name, timecode.Encode(ms))
}

func (w *Writer) IntAttr(name string, v int) {
	w.Attr(name, strconv.Itoa(v))
}
