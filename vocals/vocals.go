// Package vocals reads and writes lyric files: a bare list of vocals.
package vocals

import (
	"io"
	"os"

	"github.com/jsphweid/rsxml/model"
	"github.com/jsphweid/rsxml/xmlio"
	"github.com/pkg/errors"
)

func Read(r io.Reader) ([]model.Vocal, error) {
	return xmlio.ReadDocument(r, "vocals", model.ReadVocal)
}

func Write(w io.Writer, vocals []model.Vocal) error {
	return xmlio.WriteDocument(w, vocals, "vocals", "vocal", (*model.Vocal).WriteXML)
}

func Load(path string) ([]model.Vocal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	vocals, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %v", path)
	}
	return vocals, nil
}

func Save(path string, vocals []model.Vocal) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, vocals); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Lyrics joins the syllables into lines. A trailing "-" joins a syllable to
// the next one and a trailing "+" ends the line.
func Lyrics(vocals []model.Vocal) []string {
	var lines []string
	line := ""
	for _, v := range vocals {
		text := v.Lyric
		switch {
		case len(text) > 0 && text[len(text)-1] == '+':
			line += text[:len(text)-1]
			lines = append(lines, line)
			line = ""
			continue
		case len(text) > 0 && text[len(text)-1] == '-':
			line += text[:len(text)-1]
			continue
		}
		line += text + " "
	}
	if line != "" {
		lines = append(lines, line[:len(line)-1])
	}
	return lines
}
