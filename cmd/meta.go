package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/rsxml/arrangement"
	"github.com/jsphweid/rsxml/timecode"
	"github.com/jsphweid/rsxml/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(metaCmd)
}

var metaCmd = &cobra.Command{
	Use:   "meta <file>",
	Short: "Prints the metadata of an arrangement",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		md, err := arrangement.LoadMetaData(args[0])
		cobra.CheckErr(err)

		fmt.Printf("title: %v\n", util.Deref(md.Title))
		fmt.Printf("artist: %v\n", util.Deref(md.ArtistName))
		fmt.Printf("album: %v (%v)\n", util.Deref(md.AlbumName), md.AlbumYear)
		fmt.Printf("arrangement: %v\n", util.Deref(md.Arrangement))
		fmt.Printf("length: %v\n", timecode.Encode(md.SongLength))
		fmt.Printf("tempo: %.3f\n", md.AverageTempo)
		fmt.Printf("tuning: %v (standard: %v)\n", md.Tuning.Strings, md.Tuning.IsStandard())
		fmt.Printf("capo: %v\n", md.Capo)
		fmt.Printf("properties: %v\n", strings.Join(md.ArrangementProperties.Names(), ", "))
	},
}
