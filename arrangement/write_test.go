package arrangement

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jsphweid/rsxml/model"
	"github.com/jsphweid/rsxml/xmlio"
	"github.com/stretchr/testify/assert"
)

func writeString(t *testing.T, arr *InstrumentalArrangement, mode xmlio.Mode) string {
	var buf bytes.Buffer
	if err := arr.Write(&buf, mode); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestWriteComputedFields(t *testing.T) {
	assert := assert.New(t)
	arr := loadTestFile(t)
	arr.MetaData.CentOffset = 5

	out := writeString(t, arr, xmlio.Abridged)
	assert.Contains(out, `<song version="8">`)
	assert.Contains(out, "\n  <!-- CST v3.0.0.0 -->\n  <!-- DDC v3.5 -->\n  <title>Test Song</title>")
	assert.Contains(out, "<offset>-1.000</offset>")
	assert.Contains(out, "<startBeat>1.000</startBeat>")
	assert.Contains(out, "<centOffset>5</centOffset>")
	assert.Contains(out, "<averageTempo>120.000</averageTempo>")
	assert.Contains(out, "<crowdSpeed>1</crowdSpeed>")
	assert.Contains(out, `<linkedDiffs count="0" />`)
	assert.NotContains(out, "internalName")
	assert.NotContains(out, "dropped")
	assert.True(strings.HasSuffix(out, "</song>"))
}

func TestWriteOffsetFollowsFirstBeat(t *testing.T) {
	assert := assert.New(t)
	arr := New()

	out := writeString(t, arr, xmlio.Abridged)
	assert.Contains(out, "<offset>0.000</offset>")
	assert.Contains(out, "<startBeat>0.000</startBeat>")

	arr.Ebeats = []model.Ebeat{{Time: 2345, Measure: 1}}
	out = writeString(t, arr, xmlio.Abridged)
	assert.Contains(out, "<offset>-2.345</offset>")
	assert.Contains(out, "<startBeat>2.345</startBeat>")
}

func TestWriteOptionalElements(t *testing.T) {
	assert := assert.New(t)
	arr := New()

	out := writeString(t, arr, xmlio.Full)
	assert.Contains(out, "<title />")
	assert.NotContains(out, "songNameSort")
	assert.NotContains(out, "albumArt")
	assert.NotContains(out, "linkedDiffs")
	assert.NotContains(out, "phraseProperties")
	assert.NotContains(out, "transcriptionTrack")
	assert.NotContains(out, "tonebase")
	assert.Contains(out, `<tones count="0" />`)
	assert.Contains(out, `<levels count="0" />`)
}

func TestFullWriteIsIdempotent(t *testing.T) {
	assert := assert.New(t)
	first := writeString(t, loadTestFile(t), xmlio.Full)

	arr, err := Read(strings.NewReader(first))
	assert.NoError(err)
	second := writeString(t, arr, xmlio.Full)

	assert.Equal(first, second)
	assert.Contains(first, `strum="down"`)
	assert.Contains(first, `<ebeat time="1.500" measure="-1" />`)
}

func TestAbridgedWriteIsSmaller(t *testing.T) {
	arr := loadTestFile(t)
	full := writeString(t, arr, xmlio.Full)
	abridged := writeString(t, arr, xmlio.Abridged)

	assert.Less(t, len(abridged), len(full))
	assert.NotContains(t, abridged, `linkNext="0"`)
	assert.Contains(t, full, `linkNext="0"`)
}
