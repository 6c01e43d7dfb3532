package cmd

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

// debug lines only show up with --verbose
var logger = log.New(io.Discard, "tjadex: ", log.LstdFlags)

var rootCmd = &cobra.Command{
	Use:   "tjadex",
	Short: "TJA chart statistics",
	Long:  `Parses TJA rhythm charts and reports combo, score potential, note density and hold lengths.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetOutput(os.Stderr)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug output")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
