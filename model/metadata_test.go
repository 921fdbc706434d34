package model

import (
	"testing"

	"github.com/jsphweid/rsxml/xmlio"
	"github.com/stretchr/testify/assert"
)

func TestArrangementPropertiesAlwaysWritten(t *testing.T) {
	assert := assert.New(t)

	var p ArrangementProperties
	p.Set(PropPathBass, true)
	p.Set(PropRepresent, true)
	p.Set(PropBends, true)
	p.Set(PropBends, false)

	out := render(t, xmlio.Abridged, "arrangementProperties", p.WriteXML)
	assert.Contains(out, `<arrangementProperties represent="1" bonusArr="0" standardTuning="0"`)
	assert.Contains(out, `bends="0"`)
	assert.Contains(out, `pathRhythm="0" pathBass="1" />`)
	assert.Equal([]string{"represent", "pathBass"}, p.Names())

	back, err := parse(t, out, ReadArrangementProperties)
	assert.NoError(err)
	assert.Equal(p, back)
}

func TestArrangementPropertiesToleratesMissing(t *testing.T) {
	p, err := parse(t, `<arrangementProperties pathLead="1" bassPick="7" />`, ReadArrangementProperties)
	assert.NoError(t, err)
	assert.True(t, p.Has(PropPathLead))
	assert.True(t, p.Has(PropBassPick))
	assert.False(t, p.Has(PropRepresent))
}

func TestTuning(t *testing.T) {
	assert := assert.New(t)

	doc := `<tuning string0="-2" string1="0" string2="0" string3="0" string4="0" string5="0" />`
	tuning, err := parse(t, doc, ReadTuning)
	assert.NoError(err)
	assert.Equal([6]int16{-2, 0, 0, 0, 0, 0}, tuning.Strings)
	assert.False(tuning.IsStandard())
	assert.Equal(doc, render(t, xmlio.Full, "tuning", tuning.WriteXML))

	_, err = parse(t, `<tuning string0="0" />`, ReadTuning)
	assert.ErrorIs(err, xmlio.ErrMissingAttribute)
}

func TestNewMetaDataTempo(t *testing.T) {
	assert.Equal(t, float32(120), NewMetaData().AverageTempo)
}
