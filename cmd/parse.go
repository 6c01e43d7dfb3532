package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/tjadex/model"
	"github.com/jsphweid/tjadex/util"
	"github.com/spf13/cobra"
)

var parseFormat string

func init() {
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", formatText, "output format: text, json or yaml")
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse <file.tja>",
	Short: "Parses a chart",
	Long:  `Parses a chart and prints its headers and courses.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chart, err := loadChart(args[0])
		if err != nil {
			return err
		}
		return writeFormatted(cmd.OutOrStdout(), parseFormat, chart, func(w io.Writer) {
			printChart(w, chart)
		})
	},
}

func printChart(w io.Writer, chart model.Chart) {
	h := chart.Headers
	fmt.Fprintf(w, "Title:     %v\n", h.Title)
	if h.Subtitle != "" {
		fmt.Fprintf(w, "Subtitle:  %v\n", h.Subtitle)
	}
	fmt.Fprintf(w, "Genre:     %v\n", h.Genre)
	fmt.Fprintf(w, "BPM:       %v\n", h.BPM)
	fmt.Fprintf(w, "Wave:      %v\n", h.Wave)
	fmt.Fprintf(w, "Offset:    %v\n", h.Offset)
	fmt.Fprintf(w, "DemoStart: %v\n", h.DemoStart)
	for _, name := range h.Unparsed {
		fmt.Fprintf(w, "warning: could not read %v header\n", name)
	}

	for _, id := range util.GetSortedKeys(chart.Courses) {
		c := chart.Courses[id]
		fmt.Fprintf(w, "\n%v (level %v): %v measures, balloons %v\n", id, c.Headers.Level, len(c.Measures), c.Headers.Balloon)
		for _, name := range c.Headers.Unparsed {
			fmt.Fprintf(w, "warning: could not read %v\n", name)
		}
	}
}
