// Package catalog summarizes arrangement files for the catalog table.
package catalog

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/jsphweid/rsxml/arrangement"
	"github.com/jsphweid/rsxml/model"
	"github.com/jsphweid/rsxml/util"
)

// NewEntry reads only the header of the file at path.
func NewEntry(path string) (model.CatalogEntry, error) {
	md, err := arrangement.LoadMetaData(path)
	if err != nil {
		return model.CatalogEntry{}, err
	}
	tones, err := arrangement.LoadToneNames(path)
	if err != nil {
		return model.CatalogEntry{}, err
	}

	e := FromMetaData(&md)
	e.Path = filepath.ToSlash(path)
	e.Tones = model.NewTonesResponse(tones).Names
	if len(e.Tones) == 0 {
		e.Tones = nil
	}
	return e, nil
}

// FromMetaData fills every field but the path and tones.
func FromMetaData(md *model.MetaData) model.CatalogEntry {
	return model.CatalogEntry{
		Title:          util.Deref(md.Title),
		Artist:         util.Deref(md.ArtistName),
		Album:          util.Deref(md.AlbumName),
		AlbumYear:      md.AlbumYear,
		Arrangement:    util.Deref(md.Arrangement),
		SongLength:     md.SongLength,
		AverageTempo:   md.AverageTempo,
		Tuning:         md.Tuning.Strings[:],
		Capo:           md.Capo,
		Properties:     md.ArrangementProperties.Names(),
		LastConversion: util.Deref(md.LastConversionDateTime),
	}
}

// Scan builds an entry for every readable file. progress, when not nil, is
// called before each file.
func Scan(paths []string, progress func(done, total int)) []model.CatalogEntry {
	var res []model.CatalogEntry
	for i, path := range paths {
		if progress != nil {
			progress(i, len(paths))
		}
		e, err := NewEntry(path)
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", path, err)
			continue
		}
		res = append(res, e)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Path < res[j].Path
	})
	return res
}
