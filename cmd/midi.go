package cmd

import (
	"fmt"

	"github.com/jsphweid/rsxml/arrangement"
	"github.com/jsphweid/rsxml/midi"
	"github.com/jsphweid/rsxml/sample"
	"github.com/jsphweid/rsxml/vocals"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2/smf"
)

var (
	midiVocals      bool
	midiTempo       float32
	midiSampleStart int
	midiSampleNotes int
)

func init() {
	midiCmd.Flags().BoolVar(&midiVocals, "vocals", false, "the input is a vocals file")
	midiCmd.Flags().Float32Var(&midiTempo, "tempo", 120, "tempo for vocals")
	midiCmd.Flags().IntVar(&midiSampleStart, "sample-start", 0, "start of the preview in milliseconds")
	midiCmd.Flags().IntVar(&midiSampleNotes, "sample-notes", 0, "write a preview of this many notes instead of the whole track")
	rootCmd.AddCommand(midiCmd)
}

var midiCmd = &cobra.Command{
	Use:   "midi <in> <out>",
	Short: "Renders an arrangement or vocals file as MIDI",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		var s *smf.SMF
		var err error
		if midiVocals {
			s, err = vocalsToMidi(args[0])
		} else {
			s, err = arrangementToMidi(args[0], midiSampleStart, midiSampleNotes)
		}
		cobra.CheckErr(err)
		cobra.CheckErr(midi.WriteFile(s, args[1]))

		distinct := make(map[string]bool)
		for _, sounding := range midi.Soundings(s) {
			distinct[midi.ChordKey(sounding.Keys)] = true
		}
		fmt.Printf("Wrote %v notes, %v distinct sounds to %v\n", midi.NoteCount(s), len(distinct), args[1])
	},
}

func vocalsToMidi(path string) (*smf.SMF, error) {
	vs, err := vocals.Load(path)
	if err != nil {
		return nil, err
	}
	return midi.FromVocals(vs, midiTempo), nil
}

// ArrangementMidi renders the merged transcription of arr, or a preview of
// it when sampleNotes is positive.
func ArrangementMidi(arr *arrangement.InstrumentalArrangement, sampleStart, sampleNotes int) (*smf.SMF, error) {
	if sampleNotes > 0 {
		return sample.Create(arr, sampleStart, sampleNotes)
	}
	lvl, err := arr.GenerateTranscriptionTrack()
	if err != nil {
		return nil, err
	}
	return midi.FromLevel(arr, &lvl), nil
}

func arrangementToMidi(path string, sampleStart, sampleNotes int) (*smf.SMF, error) {
	arr, err := arrangement.Load(path)
	if err != nil {
		return nil, err
	}
	return ArrangementMidi(arr, sampleStart, sampleNotes)
}
