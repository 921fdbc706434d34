package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jsphweid/rsxml/arrangement"
	"github.com/jsphweid/rsxml/constants"
	"github.com/jsphweid/rsxml/xmlio"
	"github.com/spf13/cobra"
)

// ConvertOptions selects the transforms applied to an arrangement.
type ConvertOptions struct {
	Full            bool
	FixHighDensity  bool
	RemoveDD        bool
	MatchToSections bool
}

func (o ConvertOptions) Mode() xmlio.Mode {
	if o.Full {
		return xmlio.Full
	}
	return xmlio.Abridged
}

var convertOpts ConvertOptions

func init() {
	convertCmd.Flags().BoolVar(&convertOpts.Full, "full", false, "write every attribute, even defaults")
	convertCmd.Flags().BoolVar(&convertOpts.FixHighDensity, "fix-high-density", false, "replace high density chords")
	convertCmd.Flags().BoolVar(&convertOpts.RemoveDD, "remove-dd", false, "merge the difficulty levels into one")
	convertCmd.Flags().BoolVar(&convertOpts.MatchToSections, "match-sections", false, "with --remove-dd, rebuild the phrases from the sections")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <in> [out]",
	Short: "Rewrites an arrangement",
	Long: `Reads an arrangement, applies the selected transforms and writes it again.
Without an output path the file goes to OUT_PATH under the same name.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		out := filepath.Join(constants.GetOutDir(), filepath.Base(args[0]))
		if len(args) == 2 {
			out = args[1]
		}
		cobra.CheckErr(convert(args[0], out, convertOpts))
		fmt.Printf("Wrote %v\n", out)
	},
}

// Transform reads an arrangement from r and applies the transforms of opts.
func Transform(r io.Reader, opts ConvertOptions) (*arrangement.InstrumentalArrangement, error) {
	arr, err := arrangement.Read(r)
	if err != nil {
		return nil, err
	}
	if opts.FixHighDensity {
		arr.FixHighDensity()
	}
	if opts.RemoveDD {
		if err := arr.RemoveDD(opts.MatchToSections); err != nil {
			return nil, err
		}
	}
	return arr, nil
}

func convert(in, out string, opts ConvertOptions) error {
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()

	arr, err := Transform(f, opts)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return err
	}
	return arr.Save(out, opts.Mode())
}
