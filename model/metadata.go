package model

import (
	"encoding/xml"
	"strconv"

	"github.com/jsphweid/rsxml/util"
	"github.com/jsphweid/rsxml/xmlio"
)

// MetaData is the song-level information at the top of an arrangement file.
// Nil strings are elements that were absent, which some writers care about.
type MetaData struct {
	Title                  *string
	TitleSort              *string
	Arrangement            *string
	Part                   int16
	CentOffset             int
	SongLength             int
	AverageTempo           float32
	Tuning                 Tuning
	Capo                   int8
	ArtistName             *string
	ArtistNameSort         *string
	AlbumName              *string
	AlbumNameSort          *string
	AlbumYear              int
	AlbumArt               *string
	ArrangementProperties  ArrangementProperties
	LastConversionDateTime *string
}

func NewMetaData() MetaData {
	return MetaData{AverageTempo: 120}
}

// Tuning holds the offset of each string from standard tuning in semitones.
type Tuning struct {
	Strings [6]int16
}

func (t Tuning) IsStandard() bool {
	return t.Strings == [6]int16{}
}

func ReadTuning(r *xmlio.Reader, se xml.StartElement) (Tuning, error) {
	var t Tuning
	p := xmlio.NewAttrParser(se)
	for i := range t.Strings {
		name := "string" + strconv.Itoa(i)
		v, ok := xmlio.AttrValue(se, name)
		if !ok {
			return t, xmlio.Require(se, name)
		}
		t.Strings[i] = p.Int16(xml.Attr{Name: xml.Name{Local: name}, Value: v})
	}
	if err := p.Err(); err != nil {
		return t, err
	}
	return t, r.Skip()
}

func (t *Tuning) WriteXML(w *xmlio.Writer) {
	for i, s := range t.Strings {
		w.IntAttr("string"+strconv.Itoa(i), int(s))
	}
}

// ArrangementProperties is the set of techniques and traits an arrangement
// declares, one bit per trait.
type ArrangementProperties uint32

const (
	PropRepresent ArrangementProperties = 1 << iota
	PropBonusArrangement
	PropStandardTuning
	PropNonStandardChords
	PropBarreChords
	PropPowerChords
	PropDropDPower
	PropOpenChords
	PropFingerPicking
	PropPickDirection
	PropDoubleStops
	PropPalmMutes
	PropHarmonics
	PropPinchHarmonics
	PropHopo
	PropTremolo
	PropSlides
	PropUnpitchedSlides
	PropBends
	PropTapping
	PropVibrato
	PropFretHandMutes
	PropSlapPop
	PropTwoFingerPicking
	PropFifthsAndOctaves
	PropSyncopation
	PropBassPick
	PropSustain
	PropPathLead
	PropPathRhythm
	PropPathBass
)

// Attribute names by bit position, in the order they are written.
var arrangementPropertyNames = [...]string{
	"represent",
	"bonusArr",
	"standardTuning",
	"nonStandardChords",
	"barreChords",
	"powerChords",
	"dropDPower",
	"openChords",
	"fingerPicking",
	"pickDirection",
	"doubleStops",
	"palmMutes",
	"harmonics",
	"pinchHarmonics",
	"hopo",
	"tremolo",
	"slides",
	"unpitchedSlides",
	"bends",
	"tapping",
	"vibrato",
	"fretHandMutes",
	"slapPop",
	"twoFingerPicking",
	"fifthsAndOctaves",
	"syncopation",
	"bassPick",
	"sustain",
	"pathLead",
	"pathRhythm",
	"pathBass",
}

var arrangementPropertyBits = func() xmlio.FlagBits {
	bits := make(xmlio.FlagBits, len(arrangementPropertyNames))
	for i, name := range arrangementPropertyNames {
		bits[name] = uint(i)
	}
	return bits
}()

func (p ArrangementProperties) Has(prop ArrangementProperties) bool {
	return util.HasFlag(p, prop)
}

func (p *ArrangementProperties) Set(prop ArrangementProperties, on bool) {
	util.SetFlag(p, prop, on)
}

// Names returns the attribute names of the traits that are set.
func (p ArrangementProperties) Names() []string {
	var res []string
	for i, name := range arrangementPropertyNames {
		if p.Has(1 << i) {
			res = append(res, name)
		}
	}
	return res
}

// ReadArrangementProperties treats a missing attribute as not set.
func ReadArrangementProperties(r *xmlio.Reader, se xml.StartElement) (ArrangementProperties, error) {
	var p ArrangementProperties
	for _, a := range se.Attr {
		xmlio.ReadFlag(&p, arrangementPropertyBits, a)
	}
	return p, r.Skip()
}

func (p *ArrangementProperties) WriteXML(w *xmlio.Writer) {
	for i, name := range arrangementPropertyNames {
		w.Attr(name, xmlio.Binary(p.Has(1<<i)))
	}
}
