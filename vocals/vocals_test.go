package vocals

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/jsphweid/rsxml/model"
	"github.com/stretchr/testify/assert"
)

func TestSaveFormat(t *testing.T) {
	assert := assert.New(t)
	path := t.TempDir() + "/vocals.xml"
	v := model.NewVocal(12340, 500, "Test")
	v.Note = 66

	assert.NoError(Save(path, []model.Vocal{v}))

	data, err := os.ReadFile(path)
	assert.NoError(err)
	assert.Equal(`<?xml version="1.0" encoding="utf-8"?>
<vocals count="1">
  <vocal time="12.340" note="66" length="0.500" lyric="Test" />
</vocals>`, string(data))
}

func TestLoadRoundTrip(t *testing.T) {
	assert := assert.New(t)
	path := t.TempDir() + "/vocals.xml"
	in := []model.Vocal{
		model.NewVocal(1000, 250, "Hel-"),
		model.NewVocal(1250, 250, "lo+"),
		model.NewVocal(2000, 1000, "\"world\" & <you>"),
	}

	assert.NoError(Save(path, in))
	out, err := Load(path)

	assert.NoError(err)
	assert.Equal(in, out)
}

func TestReadRejectsOtherRoot(t *testing.T) {
	_, err := Read(strings.NewReader(`<showlights count="0" />`))
	assert.Error(t, err)
}

func TestReadEmpty(t *testing.T) {
	assert := assert.New(t)
	var buf bytes.Buffer
	assert.NoError(Write(&buf, nil))
	assert.Contains(buf.String(), `<vocals count="0" />`)

	vocals, err := Read(&buf)
	assert.NoError(err)
	assert.Empty(vocals)
}

func TestLyrics(t *testing.T) {
	vocals := []model.Vocal{
		{Lyric: "I"}, {Lyric: "can-"}, {Lyric: "not+"},
		{Lyric: "go"}, {Lyric: "on"},
	}
	assert.Equal(t, []string{"I cannot", "go on"}, Lyrics(vocals))
}
