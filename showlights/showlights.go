// Package showlights reads and writes stage lighting cue files.
package showlights

import (
	"io"
	"os"

	"github.com/jsphweid/rsxml/model"
	"github.com/jsphweid/rsxml/xmlio"
	"github.com/pkg/errors"
)

func Read(r io.Reader) ([]model.ShowLight, error) {
	return xmlio.ReadDocument(r, "showlights", model.ReadShowLight)
}

func Write(w io.Writer, lights []model.ShowLight) error {
	return xmlio.WriteDocument(w, lights, "showlights", "showlight", (*model.ShowLight).WriteXML)
}

func Load(path string) ([]model.ShowLight, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lights, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %v", path)
	}
	return lights, nil
}

func Save(path string, lights []model.ShowLight) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, lights); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Validate checks that the cues start with a fog and a beam color, which the
// game needs to light the stage.
func Validate(lights []model.ShowLight) error {
	fog, beam := false, false
	for i := range lights {
		fog = fog || lights[i].IsFog()
		beam = beam || lights[i].IsBeam()
	}
	switch {
	case !fog:
		return errors.New("no fog color cue")
	case !beam:
		return errors.New("no beam color cue")
	}
	return nil
}
