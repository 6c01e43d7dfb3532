package cmd

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jsphweid/tjadex/db"
	"github.com/jsphweid/tjadex/model"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(lookupCmd)
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <file.tja>...",
	Short: "Looks up stored summaries",
	Long:  `Prints the summaries that index --dynamo stored for every course of the given chart paths.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := db.GetSummaries(summaryKeys(args))
		if err != nil {
			return err
		}
		printSummaries(cmd.OutOrStdout(), args, res)
		return nil
	},
}

func summaryKeys(paths []string) []string {
	var keys []string
	for _, p := range paths {
		for id := model.Easy; id <= model.Edit; id++ {
			keys = append(keys, db.Key(p, id))
		}
	}
	return keys
}

func printSummaries(w io.Writer, paths []string, res map[string]model.IndexEntry) {
	for _, p := range paths {
		found := false
		for id := model.Easy; id <= model.Edit; id++ {
			e, ok := res[db.Key(p, id)]
			if !ok {
				continue
			}
			found = true
			fmt.Fprintf(w, "%v [%v %v] combo %v, max score %v, %.3f notes/s\n",
				e.Title, e.Course, e.Level, e.TotalCombo, humanize.Comma(int64(e.MaxScore)), e.Density)
		}
		if !found {
			fmt.Fprintf(w, "%v: not indexed\n", p)
		}
	}
}
