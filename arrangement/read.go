package arrangement

import (
	"encoding/xml"
	"io"
	"os"
	"strconv"

	"github.com/jsphweid/rsxml/model"
	"github.com/jsphweid/rsxml/timecode"
	"github.com/jsphweid/rsxml/util"
	"github.com/jsphweid/rsxml/xmlio"
	"github.com/pkg/errors"
)

// Load reads the arrangement file at path.
func Load(path string) (*InstrumentalArrangement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	arr, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %v", path)
	}
	return arr, nil
}

// Read parses a whole arrangement document. Comments directly after the root
// start tag are kept; unknown elements are skipped.
func Read(r io.Reader) (*InstrumentalArrangement, error) {
	xr := xmlio.NewReader(r)
	root, err := xr.Root()
	if err != nil {
		return nil, err
	}
	version, err := validateRoot(root)
	if err != nil {
		return nil, err
	}

	arr := New()
	arr.Version = version
	leading := true
	for {
		tok, err := xr.Next()
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.Comment:
			if leading {
				arr.Comments = append(arr.Comments, model.Comment(t))
			}
		case xml.StartElement:
			leading = false
			if err := arr.readElement(xr, t); err != nil {
				return nil, err
			}
		case xml.EndElement:
			return arr, nil
		}
	}
}

func validateRoot(root xml.StartElement) (uint8, error) {
	if root.Name.Local != "song" {
		return 0, errors.Wrapf(ErrNotArrangement, "expected root element song, found %v", root.Name.Local)
	}
	if err := xmlio.Require(root, "version"); err != nil {
		return 0, err
	}
	v, _ := xmlio.AttrValue(root, "version")
	version, err := xmlio.ParseText("song", v, func(s string) (uint64, error) {
		return strconv.ParseUint(s, 10, 8)
	})
	if err != nil {
		return 0, err
	}
	if version < MinVersion {
		return 0, errors.Wrapf(ErrUnsupportedVersion, "version %d", version)
	}
	return uint8(version), nil
}

func readString(xr *xmlio.Reader) (*string, error) {
	text, err := xr.ReadText()
	if err != nil {
		return nil, err
	}
	return util.Ptr(text), nil
}

func readInt(xr *xmlio.Reader, se xml.StartElement, bits int) (int64, error) {
	text, err := xr.ReadText()
	if err != nil {
		return 0, err
	}
	return xmlio.ParseText(se.Name.Local, text, func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, bits)
	})
}

// readMetaElement fills one metadata field. It reports false for elements
// that are not metadata.
func readMetaElement(md *model.MetaData, xr *xmlio.Reader, se xml.StartElement) (bool, error) {
	var err error
	var v int64
	switch se.Name.Local {
	case "title":
		md.Title, err = readString(xr)
	case "arrangement":
		md.Arrangement, err = readString(xr)
	case "part":
		v, err = readInt(xr, se, 16)
		md.Part = int16(v)
	case "centOffset":
		v, err = readInt(xr, se, 32)
		md.CentOffset = int(v)
	case "songLength":
		var text string
		if text, err = xr.ReadText(); err == nil {
			md.SongLength, err = xmlio.ParseText("songLength", text, timecode.Decode)
		}
	case "songNameSort":
		md.TitleSort, err = readString(xr)
	case "averageTempo":
		var text string
		if text, err = xr.ReadText(); err == nil {
			var f float64
			f, err = xmlio.ParseText("averageTempo", text, func(s string) (float64, error) {
				return strconv.ParseFloat(s, 32)
			})
			md.AverageTempo = float32(f)
		}
	case "tuning":
		md.Tuning, err = model.ReadTuning(xr, se)
	case "capo":
		v, err = readInt(xr, se, 8)
		md.Capo = int8(v)
	case "artistName":
		md.ArtistName, err = readString(xr)
	case "artistNameSort":
		md.ArtistNameSort, err = readString(xr)
	case "albumName":
		md.AlbumName, err = readString(xr)
	case "albumNameSort":
		md.AlbumNameSort, err = readString(xr)
	case "albumYear":
		var text string
		if text, err = xr.ReadText(); err == nil && text != "" {
			md.AlbumYear, err = xmlio.ParseText("albumYear", text, strconv.Atoi)
		}
	case "albumArt":
		md.AlbumArt, err = readString(xr)
	case "arrangementProperties":
		md.ArrangementProperties, err = model.ReadArrangementProperties(xr, se)
	case "lastConversionDateTime":
		md.LastConversionDateTime, err = readString(xr)
	default:
		return false, nil
	}
	return true, err
}

// readToneElement fills a tone name of ti. It reports false for other elements.
func readToneElement(ti *model.ToneInfo, xr *xmlio.Reader, se xml.StartElement) (bool, error) {
	var err error
	if se.Name.Local == "tonebase" {
		ti.BaseToneName, err = readString(xr)
		return true, err
	}
	if i := model.ToneSlot(se.Name.Local); i >= 0 {
		ti.Names[i], err = readString(xr)
		return true, err
	}
	return false, nil
}

func (a *InstrumentalArrangement) readElement(xr *xmlio.Reader, se xml.StartElement) error {
	if ok, err := readMetaElement(&a.MetaData, xr, se); ok {
		return err
	}
	if ok, err := readToneElement(&a.Tones, xr, se); ok {
		return err
	}

	var err error
	switch se.Name.Local {
	case "phrases":
		a.Phrases, err = xmlio.ReadList(xr, se, model.ReadPhrase)
	case "phraseIterations":
		a.PhraseIterations, err = xmlio.ReadList(xr, se, model.ReadPhraseIteration)
	case "newLinkedDiffs":
		a.NewLinkedDiffs, err = xmlio.ReadList(xr, se, model.ReadNewLinkedDiff)
	case "linkedDiffs":
		a.LinkedDiffs, err = xmlio.ReadList(xr, se, model.ReadLinkedDiff)
		if a.LinkedDiffs == nil {
			a.LinkedDiffs = []model.LinkedDiff{}
		}
	case "phraseProperties":
		a.PhraseProperties, err = xmlio.ReadList(xr, se, model.ReadPhraseProperty)
		if a.PhraseProperties == nil {
			a.PhraseProperties = []model.PhraseProperty{}
		}
	case "chordTemplates":
		a.ChordTemplates, err = xmlio.ReadList(xr, se, model.ReadChordTemplate)
	case "ebeats":
		a.Ebeats, err = xmlio.ReadList(xr, se, model.ReadEbeat)
	case "tones":
		a.Tones.Changes, err = xmlio.ReadList(xr, se, model.ReadToneChange)
	case "sections":
		a.Sections, err = xmlio.ReadList(xr, se, model.ReadSection)
	case "events":
		a.Events, err = xmlio.ReadList(xr, se, model.ReadEvent)
	case "transcriptionTrack":
		var lvl model.Level
		lvl, err = model.ReadLevel(xr, se)
		a.TranscriptionTrack = &lvl
	case "levels":
		a.Levels, err = xmlio.ReadList(xr, se, model.ReadLevel)
	default:
		err = xr.Skip()
	}
	return err
}

// LoadToneNames reads only the tone names of the file at path.
func LoadToneNames(path string) (model.ToneInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.ToneInfo{}, err
	}
	defer f.Close()
	return ReadToneNames(f)
}

// ReadToneNames collects the base and slot tone names and stops at the
// sections or levels, which come after them.
func ReadToneNames(r io.Reader) (model.ToneInfo, error) {
	var ti model.ToneInfo
	err := scanHeader(r, func(xr *xmlio.Reader, se xml.StartElement) (bool, error) {
		switch se.Name.Local {
		case "sections", "levels":
			return true, nil
		}
		ok, err := readToneElement(&ti, xr, se)
		if !ok {
			err = xr.Skip()
		}
		return false, err
	})
	return ti, err
}

// listSections are the elements after the metadata block.
var listSections = map[string]bool{
	"phrases":            true,
	"phraseIterations":   true,
	"newLinkedDiffs":     true,
	"linkedDiffs":        true,
	"phraseProperties":   true,
	"chordTemplates":     true,
	"ebeats":             true,
	"tones":              true,
	"sections":           true,
	"events":             true,
	"transcriptionTrack": true,
	"levels":             true,
}

// LoadMetaData reads only the metadata of the file at path.
func LoadMetaData(path string) (model.MetaData, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.MetaData{}, err
	}
	defer f.Close()
	return ReadMetaData(f)
}

// ReadMetaData reads the metadata block and returns at the first list.
func ReadMetaData(r io.Reader) (model.MetaData, error) {
	md := model.NewMetaData()
	err := scanHeader(r, func(xr *xmlio.Reader, se xml.StartElement) (bool, error) {
		if listSections[se.Name.Local] {
			return true, nil
		}
		ok, err := readMetaElement(&md, xr, se)
		if !ok {
			err = xr.Skip()
		}
		return false, err
	})
	return md, err
}

// scanHeader validates the root and calls fn for each top level element until
// fn reports done or the document ends.
func scanHeader(r io.Reader, fn func(*xmlio.Reader, xml.StartElement) (bool, error)) error {
	xr := xmlio.NewReader(r)
	root, err := xr.Root()
	if err != nil {
		return err
	}
	if _, err := validateRoot(root); err != nil {
		return err
	}
	for {
		tok, err := xr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			done, err := fn(xr, t)
			if done || err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}
