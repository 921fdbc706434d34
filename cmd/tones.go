package cmd

import (
	"fmt"

	"github.com/jsphweid/rsxml/arrangement"
	"github.com/jsphweid/rsxml/model"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tonesCmd)
}

var tonesCmd = &cobra.Command{
	Use:   "tones <file>",
	Short: "Lists the tone names of an arrangement",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ti, err := arrangement.LoadToneNames(args[0])
		cobra.CheckErr(err)

		res := model.NewTonesResponse(ti)
		if res.Base != "" {
			fmt.Printf("base: %v\n", res.Base)
		}
		for i, name := range ti.Names {
			if name != nil {
				fmt.Printf("%v: %v\n", model.ToneElement(i), *name)
			}
		}
	},
}
