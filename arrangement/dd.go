package arrangement

import (
	"sync"

	"github.com/jsphweid/rsxml/model"
	"github.com/jsphweid/rsxml/util"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// span is the part of a level that one phrase iteration takes its content from.
type span struct {
	level      *model.Level
	start, end int
}

// phraseSpans pairs each phrase iteration with the next one. The last
// iteration closes the song and contributes nothing.
func (a *InstrumentalArrangement) phraseSpans() ([]span, error) {
	if len(a.PhraseIterations) < 2 {
		return nil, nil
	}
	spans := make([]span, 0, len(a.PhraseIterations)-1)
	for i, pi := range a.PhraseIterations[:len(a.PhraseIterations)-1] {
		if pi.PhraseID < 0 || pi.PhraseID >= len(a.Phrases) {
			return nil, errors.Wrapf(ErrInvalidReference, "phrase iteration %d refers to phrase %d of %d", i, pi.PhraseID, len(a.Phrases))
		}
		maxDifficulty := int(a.Phrases[pi.PhraseID].MaxDifficulty)
		if maxDifficulty >= len(a.Levels) {
			return nil, errors.Wrapf(ErrInvalidReference, "phrase %d has max difficulty %d but there are %d levels", pi.PhraseID, maxDifficulty, len(a.Levels))
		}
		spans = append(spans, span{
			level: &a.Levels[maxDifficulty],
			start: pi.Time,
			end:   a.PhraseIterations[i+1].Time,
		})
	}
	return spans, nil
}

func extract[T model.Timed](spans []span, get func(*model.Level) []T, clone func(T) T) []T {
	var res []T
	for _, s := range spans {
		for _, e := range model.InRange(get(s.level), s.start, s.end) {
			res = append(res, clone(e))
		}
	}
	return res
}

func same[T any](v T) T { return v }

// GenerateTranscriptionTrack merges the levels into one, taking each phrase
// iteration from the level of its phrase's max difficulty. The arrangement is
// not modified.
func (a *InstrumentalArrangement) GenerateTranscriptionTrack() (model.Level, error) {
	lvl := model.NewLevel(0)
	spans, err := a.phraseSpans()
	if err != nil {
		return lvl, err
	}

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		lvl.Notes = extract(spans, func(l *model.Level) []model.Note { return l.Notes },
			func(n model.Note) model.Note { return n.Clone() })
	}()
	go func() {
		defer wg.Done()
		lvl.Chords = extract(spans, func(l *model.Level) []model.Chord { return l.Chords },
			func(c model.Chord) model.Chord { return c.Clone() })
	}()
	go func() {
		defer wg.Done()
		lvl.HandShapes = extract(spans, func(l *model.Level) []model.HandShape { return l.HandShapes }, same[model.HandShape])
	}()
	go func() {
		defer wg.Done()
		lvl.Anchors = extract(spans, func(l *model.Level) []model.Anchor { return l.Anchors }, same[model.Anchor])
	}()
	wg.Wait()

	return lvl, nil
}

// RemoveDD replaces the levels with the merged transcription level. With
// matchPhrasesToSections the phrases are rebuilt from the sections, otherwise
// the existing phrases are kept with their difficulties zeroed. Chord templates
// no longer referenced at the end of the list are removed.
func (a *InstrumentalArrangement) RemoveDD(matchPhrasesToSections bool) error {
	merged, err := a.GenerateTranscriptionTrack()
	if err != nil {
		return err
	}

	a.TranscriptionTrack = util.Ptr(model.NewLevel(-1))
	a.Levels = []model.Level{merged}

	a.NewLinkedDiffs = nil
	if a.LinkedDiffs != nil {
		a.LinkedDiffs = a.LinkedDiffs[:0]
	}

	if matchPhrasesToSections {
		a.matchPhrasesToSections()
	} else {
		for i := range a.Phrases {
			a.Phrases[i].MaxDifficulty = 0
		}
		for i := range a.PhraseIterations {
			a.PhraseIterations[i].HeroLevels = model.HeroLevels{}
		}
	}

	a.pruneChordTemplates()
	return nil
}

func (a *InstrumentalArrangement) matchPhrasesToSections() {
	phrases := []model.Phrase{{Name: "COUNT"}}
	seen := make(map[string]bool)
	for _, s := range a.Sections {
		if !seen[s.Name] {
			seen[s.Name] = true
			phrases = append(phrases, model.Phrase{Name: s.Name})
		}
	}
	phrases[len(phrases)-1].Name = "END"
	end := len(phrases) - 1

	iterations := make([]model.PhraseIteration, 0, len(a.Sections)+1)
	iterations = append(iterations, model.PhraseIteration{Time: a.StartBeat(), PhraseID: 0})
	for _, s := range a.Sections {
		id := slices.IndexFunc(phrases, func(p model.Phrase) bool { return p.Name == s.Name })
		if id == -1 {
			// The name was replaced by END.
			id = end
		}
		iterations = append(iterations, model.PhraseIteration{Time: s.Time, PhraseID: id})
	}
	iterations[len(iterations)-1].PhraseID = end

	a.Phrases = phrases
	a.PhraseIterations = iterations
}

// pruneChordTemplates drops the templates after the highest id used by the
// first level. Remaining templates keep their ids.
func (a *InstrumentalArrangement) pruneChordTemplates() {
	if len(a.ChordTemplates) == 0 || len(a.Levels) == 0 {
		return
	}
	highest := 0
	for _, c := range a.Levels[0].Chords {
		highest = util.Max(highest, int(c.ChordID))
	}
	for _, hs := range a.Levels[0].HandShapes {
		highest = util.Max(highest, int(hs.ChordID))
	}
	if highest < len(a.ChordTemplates)-1 {
		a.ChordTemplates = a.ChordTemplates[:highest+1]
	}
}
