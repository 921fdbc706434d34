package model

import (
	"strconv"

	"github.com/jsphweid/rsxml/timecode"
	"golang.org/x/exp/constraints"
)

func itoa[I constraints.Integer](v I) string {
	return strconv.FormatInt(int64(v), 10)
}

func encodeTime(ms int) string {
	return timecode.Encode(ms)
}

// formatF3 formats f with exactly three decimals.
func formatF3[F constraints.Float | constraints.Integer](f F) string {
	return strconv.FormatFloat(float64(f), 'f', 3, 32)
}
