package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rsxml",
	Short: "Rocksmith 2014 arrangement tools",
	Long: `Reads, converts and inspects Rocksmith 2014 arrangement XML files,
renders them as MIDI and keeps a catalog of them in DynamoDB.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
