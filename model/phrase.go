package model

import (
	"encoding/xml"
	"strconv"

	"github.com/jsphweid/rsxml/util"
	"github.com/jsphweid/rsxml/xmlio"
)

type PhraseMask uint8

const (
	PhraseDisparity PhraseMask = 1 << iota
	PhraseIgnore
	PhraseSolo
)

var phraseFlagBits = xmlio.FlagBits{
	"disparity": 0,
	"ignore":    1,
	"solo":      2,
}

type Phrase struct {
	Name          string
	MaxDifficulty uint8
	Mask          PhraseMask
}

func (p *Phrase) IsDisparity() bool { return util.HasFlag(p.Mask, PhraseDisparity) }
func (p *Phrase) SetDisparity(on bool) { util.SetFlag(&p.Mask, PhraseDisparity, on) }
func (p *Phrase) IsIgnore() bool { return util.HasFlag(p.Mask, PhraseIgnore) }
func (p *Phrase) SetIgnore(on bool) { util.SetFlag(&p.Mask, PhraseIgnore, on) }
func (p *Phrase) IsSolo() bool { return util.HasFlag(p.Mask, PhraseSolo) }
func (p *Phrase) SetSolo(on bool) { util.SetFlag(&p.Mask, PhraseSolo, on) }

func ReadPhrase(r *xmlio.Reader, se xml.StartElement) (Phrase, error) {
	var ph Phrase
	p := xmlio.NewAttrParser(se)
	for _, a := range se.Attr {
		if xmlio.ReadFlag(&ph.Mask, phraseFlagBits, a) {
			continue
		}
		switch a.Name.Local {
		case "maxDifficulty":
			ph.MaxDifficulty = p.Uint8(a)
		case "name":
			ph.Name = a.Value
		}
	}
	if err := p.Err(); err != nil {
		return ph, err
	}
	return ph, r.Skip()
}

func (p *Phrase) WriteXML(w *xmlio.Writer) {
	w.IntAttr("maxDifficulty", int(p.MaxDifficulty))
	w.Attr("name", p.Name)
	w.Flag("disparity", p.IsDisparity())
	w.Flag("ignore", p.IsIgnore())
	w.Flag("solo", p.IsSolo())
}

// HeroLevels are the difficulties of a phrase iteration for the easy, medium
// and hard presets.
type HeroLevels struct {
	Easy   uint8
	Medium uint8
	Hard   uint8
}

func (h HeroLevels) Any() bool {
	return h.Easy > 0 || h.Medium > 0 || h.Hard > 0
}

func readHeroLevels(r *xmlio.Reader) (HeroLevels, error) {
	var h HeroLevels
	err := r.Children(func(se xml.StartElement) error {
		if se.Name.Local != "heroLevel" {
			return r.Skip()
		}
		if err := xmlio.Require(se, "hero", "difficulty"); err != nil {
			return err
		}
		p := xmlio.NewAttrParser(se)
		var hero int
		var difficulty uint8
		for _, a := range se.Attr {
			switch a.Name.Local {
			case "hero":
				hero = p.Int(a)
			case "difficulty":
				difficulty = p.Uint8(a)
			}
		}
		if err := p.Err(); err != nil {
			return err
		}
		switch hero {
		case 1:
			h.Easy = difficulty
		case 2:
			h.Medium = difficulty
		case 3:
			h.Hard = difficulty
		}
		return r.Skip()
	})
	// Official files leave out the hard level when it equals medium.
	if h.Hard == 0 && h.Medium != 0 {
		h.Hard = h.Medium
	}
	return h, err
}

func (h *HeroLevels) WriteXML(w *xmlio.Writer) {
	w.Attr("count", "3")
	for i, difficulty := range [3]uint8{h.Easy, h.Medium, h.Hard} {
		w.StartElement("heroLevel")
		w.IntAttr("hero", i+1)
		w.IntAttr("difficulty", int(difficulty))
		w.EndElement()
	}
}

// PhraseIteration places phrase PhraseID at Time.
type PhraseIteration struct {
	Time       int
	PhraseID   int
	Variation  string
	HeroLevels HeroLevels
}

func (pi PhraseIteration) TimeCode() int { return pi.Time }

func ReadPhraseIteration(r *xmlio.Reader, se xml.StartElement) (PhraseIteration, error) {
	var pi PhraseIteration
	if err := xmlio.Require(se, "time", "phraseId"); err != nil {
		return pi, err
	}
	p := xmlio.NewAttrParser(se)
	for _, a := range se.Attr {
		switch a.Name.Local {
		case "time":
			pi.Time = p.Time(a)
		case "phraseId":
			pi.PhraseID = p.Int(a)
		case "variation":
			pi.Variation = a.Value
		}
	}
	if err := p.Err(); err != nil {
		return pi, err
	}

	err := r.Children(func(child xml.StartElement) error {
		if child.Name.Local != "heroLevels" {
			return r.Skip()
		}
		h, err := readHeroLevels(r)
		pi.HeroLevels = h
		return err
	})
	return pi, err
}

func (pi *PhraseIteration) WriteXML(w *xmlio.Writer) {
	w.TimeAttr("time", pi.Time)
	w.IntAttr("phraseId", pi.PhraseID)
	if !w.Abridged() || pi.Variation != "" {
		w.Attr("variation", pi.Variation)
	}
	if pi.HeroLevels.Any() {
		w.StartElement("heroLevels")
		pi.HeroLevels.WriteXML(w)
		w.EndElement()
	}
}

// NewLinkedDiff links the phrases PhraseIDs for difficulty LevelBreak.
type NewLinkedDiff struct {
	LevelBreak int8
	Ratio      *string
	PhraseIDs  []int
}

func (n *NewLinkedDiff) PhraseCount() int {
	return len(n.PhraseIDs)
}

func ReadNewLinkedDiff(r *xmlio.Reader, se xml.StartElement) (NewLinkedDiff, error) {
	nld := NewLinkedDiff{LevelBreak: -1}
	if err := xmlio.Require(se, "levelBreak"); err != nil {
		return nld, err
	}
	p := xmlio.NewAttrParser(se)
	for _, a := range se.Attr {
		switch a.Name.Local {
		case "levelBreak":
			nld.LevelBreak = p.Int8(a)
		case "ratio":
			nld.Ratio = util.Ptr(a.Value)
		}
	}
	if err := p.Err(); err != nil {
		return nld, err
	}

	err := r.Children(func(child xml.StartElement) error {
		if child.Name.Local != "nld_phrase" {
			return r.Skip()
		}
		if err := xmlio.Require(child, "id"); err != nil {
			return err
		}
		id, _ := xmlio.AttrValue(child, "id")
		v, err := xmlio.ParseText("nld_phrase", id, strconv.Atoi)
		if err != nil {
			return err
		}
		nld.PhraseIDs = append(nld.PhraseIDs, v)
		return r.Skip()
	})
	return nld, err
}

func (n *NewLinkedDiff) WriteXML(w *xmlio.Writer) {
	w.IntAttr("levelBreak", int(n.LevelBreak))
	if n.Ratio == nil {
		w.Attr("ratio", "1.000")
	} else {
		w.Attr("ratio", *n.Ratio)
	}
	w.IntAttr("phraseCount", n.PhraseCount())
	for _, id := range n.PhraseIDs {
		w.StartElement("nld_phrase")
		w.IntAttr("id", id)
		w.EndElement()
	}
}

type LinkedDiff struct {
	ChildID  int
	ParentID int
}

func ReadLinkedDiff(r *xmlio.Reader, se xml.StartElement) (LinkedDiff, error) {
	var ld LinkedDiff
	if err := xmlio.Require(se, "childId", "parentId"); err != nil {
		return ld, err
	}
	p := xmlio.NewAttrParser(se)
	for _, a := range se.Attr {
		switch a.Name.Local {
		case "childId":
			ld.ChildID = p.Int(a)
		case "parentId":
			ld.ParentID = p.Int(a)
		}
	}
	if err := p.Err(); err != nil {
		return ld, err
	}
	return ld, r.Skip()
}

func (ld *LinkedDiff) WriteXML(w *xmlio.Writer) {
	w.IntAttr("childId", ld.ChildID)
	w.IntAttr("parentId", ld.ParentID)
}

type PhraseProperty struct {
	PhraseID   int
	Redundant  int16
	LevelJump  int8
	Empty      int
	Difficulty int
}

func ReadPhraseProperty(r *xmlio.Reader, se xml.StartElement) (PhraseProperty, error) {
	var pp PhraseProperty
	if err := xmlio.Require(se, "phraseId", "redundant", "levelJump", "empty", "difficulty"); err != nil {
		return pp, err
	}
	p := xmlio.NewAttrParser(se)
	for _, a := range se.Attr {
		switch a.Name.Local {
		case "phraseId":
			pp.PhraseID = p.Int(a)
		case "redundant":
			pp.Redundant = p.Int16(a)
		case "levelJump":
			pp.LevelJump = p.Int8(a)
		case "empty":
			pp.Empty = p.Int(a)
		case "difficulty":
			pp.Difficulty = p.Int(a)
		}
	}
	if err := p.Err(); err != nil {
		return pp, err
	}
	return pp, r.Skip()
}

func (pp *PhraseProperty) WriteXML(w *xmlio.Writer) {
	w.IntAttr("phraseId", pp.PhraseID)
	w.IntAttr("redundant", int(pp.Redundant))
	w.IntAttr("levelJump", int(pp.LevelJump))
	w.IntAttr("empty", pp.Empty)
	w.IntAttr("difficulty", pp.Difficulty)
}
