package cmd

import (
	"fmt"

	"github.com/jsphweid/rsxml/arrangement"
	"github.com/jsphweid/rsxml/util"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Summarizes an arrangement",
	Long:  `Prints a YAML summary of the comments, phrases, tones and levels of an arrangement.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		arr, err := arrangement.Load(args[0])
		cobra.CheckErr(err)

		out, err := yaml.Marshal(summarize(arr))
		cobra.CheckErr(err)
		fmt.Print(string(out))
	},
}

type commentSummary struct {
	Type string `yaml:"type"`
	Text string `yaml:"text"`
}

type levelSummary struct {
	Difficulty int8 `yaml:"difficulty"`
	Notes      int  `yaml:"notes"`
	Chords     int  `yaml:"chords"`
	Anchors    int  `yaml:"anchors"`
	HandShapes int  `yaml:"handShapes"`
}

type summary struct {
	Title          string           `yaml:"title"`
	Artist         string           `yaml:"artist"`
	Arrangement    string           `yaml:"arrangement"`
	Version        uint8            `yaml:"version"`
	Comments       []commentSummary `yaml:"comments,omitempty"`
	Tuning         []int16          `yaml:"tuning,flow"`
	Properties     []string         `yaml:"properties,flow"`
	Phrases        []string         `yaml:"phrases,flow"`
	Sections       int              `yaml:"sections"`
	ChordTemplates int              `yaml:"chordTemplates"`
	Tones          []string         `yaml:"tones,flow,omitempty"`
	ToneChanges    int              `yaml:"toneChanges"`
	Levels         []levelSummary   `yaml:"levels"`
}

func summarize(arr *arrangement.InstrumentalArrangement) summary {
	md := &arr.MetaData
	s := summary{
		Title:          util.Deref(md.Title),
		Artist:         util.Deref(md.ArtistName),
		Arrangement:    util.Deref(md.Arrangement),
		Version:        arr.Version,
		Tuning:         md.Tuning.Strings[:],
		Properties:     md.ArrangementProperties.Names(),
		Sections:       len(arr.Sections),
		ChordTemplates: len(arr.ChordTemplates),
		ToneChanges:    len(arr.Tones.Changes),
	}
	for _, c := range arr.Comments {
		s.Comments = append(s.Comments, commentSummary{Type: c.Type().String(), Text: string(c)})
	}
	for _, p := range arr.Phrases {
		s.Phrases = append(s.Phrases, p.Name)
	}
	for _, name := range arr.Tones.Names {
		if name != nil {
			s.Tones = append(s.Tones, *name)
		}
	}
	for _, l := range arr.Levels {
		s.Levels = append(s.Levels, levelSummary{
			Difficulty: l.Difficulty,
			Notes:      len(l.Notes),
			Chords:     len(l.Chords),
			Anchors:    len(l.Anchors),
			HandShapes: len(l.HandShapes),
		})
	}
	return s
}
