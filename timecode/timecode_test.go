package timecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	cases := []struct {
		ms   int
		want string
	}{
		{0, "0.000"},
		{18, "0.018"},
		{235, "0.235"},
		{1000, "1.000"},
		{1234, "1.234"},
		{20500, "20.500"},
		{989999, "989.999"},
		{987456123, "987456.123"},
		{-1500, "-1.500"},
		{-7, "-0.007"},
	}

	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			assert.Equal(t, c.want, Encode(c.ms))
		})
	}
}

func TestDecode(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"0.000", 0},
		{"0.018", 18},
		{"0.235", 235},
		{"1.000", 1000},
		{"1.234", 1234},
		{"20.500", 20500},
		{"989.999", 989999},
		{"1", 1000},
		{"8.7", 8700},
		{"6.66", 6660},
		{"18.00599", 18005},
		{"254.112", 254112},
		{"9504.11299999", 9504112},
		{"-1.5", -1500},
		{".5", 500},
	}

	for _, c := range cases {
		t.Run(c.text, func(t *testing.T) {
			got, err := Decode(c.text)
			assert := assert.New(t)
			assert.NoError(err)
			assert.Equal(c.want, got)
		})
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	for _, text := range []string{"", "abc", "1.2x", "1e3", "-", "1.-5"} {
		_, err := Decode(text)
		assert.Error(t, err, text)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, ms := range []int{0, 1, 999, 1000, 20500, 989999, 987456123, -250} {
		got, err := Decode(Encode(ms))
		assert := assert.New(t)
		assert.NoError(err)
		assert.Equal(ms, got)
	}
}
