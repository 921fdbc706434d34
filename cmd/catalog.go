package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/rsxml/catalog"
	"github.com/jsphweid/rsxml/db"
	"github.com/jsphweid/rsxml/util"
	"github.com/spf13/cobra"
)

var catalogDryRun bool

func init() {
	catalogCmd.Flags().BoolVar(&catalogDryRun, "dry-run", false, "scan without storing")
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog <dir> [max]",
	Short: "Scans arrangements into the catalog table",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		var maxNum int
		if len(args) == 2 {
			arg1, err := strconv.Atoi(args[1])
			cobra.CheckErr(err)
			maxNum = arg1
		}
		cobra.CheckErr(runCatalog(args[0], maxNum))
	},
}

func runCatalog(dir string, maxNum int) error {
	paths, err := util.GatherAllXmlPaths(dir, maxNum)
	if err != nil {
		return err
	}

	debounced := debounce.New(200 * time.Millisecond)
	entries := catalog.Scan(paths, func(done, total int) {
		debounced(func() {
			fmt.Printf("Processing %v of %v files\n", done+1, total)
		})
	})
	fmt.Printf("Scanned %v of %v files\n", len(entries), len(paths))
	if catalogDryRun {
		return nil
	}

	store, err := db.New()
	if err != nil {
		return err
	}
	if err := store.PutEntries(entries); err != nil {
		return err
	}
	fmt.Printf("Stored %v entries\n", len(entries))
	return nil
}
