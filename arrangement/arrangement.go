// Package arrangement reads, writes and transforms instrumental arrangement
// files: one track of a song with its metadata, tempo map, phrases and one
// level per difficulty.
package arrangement

import (
	"github.com/jsphweid/rsxml/model"
	"github.com/pkg/errors"
)

var (
	ErrNotArrangement     = errors.New("not an instrumental arrangement")
	ErrUnsupportedVersion = errors.New("unsupported arrangement version")
	ErrInvalidReference   = errors.New("invalid reference")
)

// MinVersion is the oldest file version that can be read. Older files belong
// to the first game.
const MinVersion = 7

// CurrentVersion is the version every file is written with.
const CurrentVersion = 8

type InstrumentalArrangement struct {
	// Version is the version the file was read with.
	Version  uint8
	Comments []model.Comment
	MetaData model.MetaData

	Phrases          []model.Phrase
	PhraseIterations []model.PhraseIteration
	NewLinkedDiffs   []model.NewLinkedDiff
	// Legacy lists are only written when not nil.
	LinkedDiffs      []model.LinkedDiff
	PhraseProperties []model.PhraseProperty

	ChordTemplates []model.ChordTemplate
	Ebeats         []model.Ebeat
	Tones          model.ToneInfo
	Sections       []model.Section
	Events         []model.Event

	TranscriptionTrack *model.Level
	Levels             []model.Level
}

func New() *InstrumentalArrangement {
	return &InstrumentalArrangement{
		Version:  CurrentVersion,
		MetaData: model.NewMetaData(),
	}
}

// StartBeat is the time of the first beat, or 0 without beats.
func (a *InstrumentalArrangement) StartBeat() int {
	if len(a.Ebeats) == 0 {
		return 0
	}
	return a.Ebeats[0].Time
}
