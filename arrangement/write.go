package arrangement

import (
	"io"
	"os"
	"strconv"

	"github.com/jsphweid/rsxml/model"
	"github.com/jsphweid/rsxml/timecode"
	"github.com/jsphweid/rsxml/util"
	"github.com/jsphweid/rsxml/xmlio"
	"github.com/pkg/errors"
)

// Save writes the arrangement to path, replacing any existing file.
func (a *InstrumentalArrangement) Save(path string, mode xmlio.Mode) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := a.Write(f, mode); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %v", path)
	}
	return f.Close()
}

// Write serializes the arrangement. The offset and start beat are computed
// from the beats rather than stored.
func (a *InstrumentalArrangement) Write(w io.Writer, mode xmlio.Mode) error {
	xw := xmlio.NewWriter(w, mode)
	xw.StartDocument()
	xw.StartElement("song")
	xw.IntAttr("version", CurrentVersion)

	for _, c := range a.Comments {
		xw.Comment(string(c))
	}

	a.writeMetaData(xw)

	xmlio.WriteList(xw, a.Phrases, "phrases", "phrase", (*model.Phrase).WriteXML)
	xmlio.WriteList(xw, a.PhraseIterations, "phraseIterations", "phraseIteration", (*model.PhraseIteration).WriteXML)
	xmlio.WriteList(xw, a.NewLinkedDiffs, "newLinkedDiffs", "newLinkedDiff", (*model.NewLinkedDiff).WriteXML)
	if a.LinkedDiffs != nil {
		xmlio.WriteList(xw, a.LinkedDiffs, "linkedDiffs", "linkedDiff", (*model.LinkedDiff).WriteXML)
	}
	if a.PhraseProperties != nil {
		xmlio.WriteList(xw, a.PhraseProperties, "phraseProperties", "phraseProperty", (*model.PhraseProperty).WriteXML)
	}
	xmlio.WriteList(xw, a.ChordTemplates, "chordTemplates", "chordTemplate", (*model.ChordTemplate).WriteXML)
	xmlio.WriteList(xw, a.Ebeats, "ebeats", "ebeat", (*model.Ebeat).WriteXML)

	a.Tones.WriteXML(xw)

	xmlio.WriteList(xw, a.Sections, "sections", "section", (*model.Section).WriteXML)
	xmlio.WriteList(xw, a.Events, "events", "event", (*model.Event).WriteXML)

	if a.TranscriptionTrack != nil {
		xw.StartElement("transcriptionTrack")
		a.TranscriptionTrack.WriteXML(xw)
		xw.EndElement()
	}

	xmlio.WriteList(xw, a.Levels, "levels", "level", (*model.Level).WriteXML)

	xw.EndElement()
	return xw.Flush()
}

func (a *InstrumentalArrangement) writeMetaData(xw *xmlio.Writer) {
	md := &a.MetaData
	startBeat := a.StartBeat()

	xw.ElementString("title", util.Deref(md.Title))
	xw.ElementString("arrangement", util.Deref(md.Arrangement))
	xw.ElementString("part", strconv.Itoa(int(md.Part)))
	xw.ElementString("offset", offset(startBeat))
	xw.ElementString("centOffset", strconv.Itoa(md.CentOffset))
	xw.ElementString("songLength", timecode.Encode(md.SongLength))
	if md.TitleSort != nil {
		xw.ElementString("songNameSort", *md.TitleSort)
	}
	xw.ElementString("startBeat", timecode.Encode(startBeat))
	xw.ElementString("averageTempo", strconv.FormatFloat(float64(md.AverageTempo), 'f', 3, 32))

	xw.StartElement("tuning")
	md.Tuning.WriteXML(xw)
	xw.EndElement()

	xw.ElementString("capo", strconv.Itoa(int(md.Capo)))
	xw.ElementString("artistName", util.Deref(md.ArtistName))
	if md.ArtistNameSort != nil {
		xw.ElementString("artistNameSort", *md.ArtistNameSort)
	}
	xw.ElementString("albumName", util.Deref(md.AlbumName))
	if md.AlbumNameSort != nil {
		xw.ElementString("albumNameSort", *md.AlbumNameSort)
	}
	xw.ElementString("albumYear", strconv.Itoa(md.AlbumYear))
	if md.AlbumArt != nil {
		xw.ElementString("albumArt", *md.AlbumArt)
	}
	// The crowd speed is driven by events; the element is always 1.
	xw.ElementString("crowdSpeed", "1")

	xw.StartElement("arrangementProperties")
	md.ArrangementProperties.WriteXML(xw)
	xw.EndElement()

	xw.ElementString("lastConversionDateTime", util.Deref(md.LastConversionDateTime))
}

// offset is the negated start beat in seconds.
func offset(startBeat int) string {
	if startBeat == 0 {
		return "0.000"
	}
	return timecode.Encode(-startBeat)
}
