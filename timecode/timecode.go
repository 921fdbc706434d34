// Package timecode converts between integer milliseconds and the fixed-point
// seconds strings ("12.345") used for every time attribute in arrangement files.
package timecode

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Encode formats ms as seconds with exactly three decimals. It works on the
// decimal digits of ms directly, so large values never pick up float rounding.
func Encode(ms int) string {
	if ms < 0 {
		return "-" + Encode(-ms)
	}

	str := strconv.Itoa(ms)
	switch len(str) {
	case 1:
		return "0.00" + str
	case 2:
		return "0.0" + str
	case 3:
		return "0." + str
	}

	var b strings.Builder
	b.Grow(len(str) + 1)
	b.WriteString(str[:len(str)-3])
	b.WriteByte('.')
	b.WriteString(str[len(str)-3:])
	return b.String()
}

// Decode parses seconds into milliseconds. Digits past the third decimal are
// truncated, missing ones are treated as zeros.
func Decode(text string) (int, error) {
	if text == "" {
		return 0, errors.New("empty time code")
	}

	sep := strings.IndexByte(text, '.')
	if sep == -1 {
		secs, err := strconv.Atoi(text)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid time code %q", text)
		}
		return secs * 1000, nil
	}

	decimals := text[sep+1:]
	if len(decimals) > 3 {
		decimals = decimals[:3]
	}

	var b strings.Builder
	b.Grow(sep + 3)
	b.WriteString(text[:sep])
	b.WriteString(decimals)
	for i := len(decimals); i < 3; i++ {
		b.WriteByte('0')
	}

	digits := b.String()
	if digits == "-" || digits == "+" || strings.ContainsAny(digits[1:], "+-") {
		return 0, errors.Errorf("invalid time code %q", text)
	}
	ms, err := strconv.Atoi(digits)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid time code %q", text)
	}
	return ms, nil
}
