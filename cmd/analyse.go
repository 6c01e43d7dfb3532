package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
	"github.com/jsphweid/tjadex/analysis"
	"github.com/jsphweid/tjadex/model"
	"github.com/spf13/cobra"
)

var (
	analyseCourse string
	analyseFormat string
)

func init() {
	analyseCmd.Flags().StringVarP(&analyseCourse, "course", "c", "", "course name or number (default: hardest)")
	analyseCmd.Flags().StringVarP(&analyseFormat, "format", "f", formatText, "output format: text, json or yaml")
	rootCmd.AddCommand(analyseCmd)
}

var analyseCmd = &cobra.Command{
	Use:     "analyse <file.tja>",
	Aliases: []string{"analyze", "stats"},
	Short:   "Prints statistics for a course",
	Long:    `Prints combo, score potential, note counts, density and hold lengths for one course of a chart.`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return analyseFile(cmd.OutOrStdout(), args[0], analyseCourse, analyseFormat)
	},
}

func analyseFile(w io.Writer, path, courseName, format string) error {
	chart, err := loadChart(path)
	if err != nil {
		return err
	}
	id, err := pickCourse(chart, courseName)
	if err != nil {
		return err
	}
	res, err := analysis.Analyse(chart, id)
	if err != nil {
		return err
	}
	return writeFormatted(w, format, res.Response(), func(w io.Writer) {
		printAnalysis(w, chart.Headers, res)
	})
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func printAnalysis(w io.Writer, h model.Headers, res analysis.Result) {
	s, sum := res.Statistics, res.Summary

	fmt.Fprintf(w, "%v - %v (level %v)\n", h.Title, res.Timeline.Course, res.Timeline.Headers.Level)
	fmt.Fprintf(w, "Total combo: %v\n", s.TotalCombo)
	if sum.HasRenda {
		fmt.Fprintf(w, "Max score:   %v + rolls\n", humanize.Comma(int64(sum.MaxScore)))
	} else {
		fmt.Fprintf(w, "Max score:   %v\n", humanize.Comma(int64(sum.MaxScore)))
	}
	fmt.Fprintf(w, "Don:         %v (small %v, big %v) %.2f%%\n", sum.Don, s.Notes[0], s.Notes[2], sum.DonRatio)
	fmt.Fprintf(w, "Kat:         %v (small %v, big %v) %.2f%%\n", sum.Kat, s.Notes[1], s.Notes[3], sum.KatRatio)
	fmt.Fprintf(w, "Density:     %.3f notes/s\n", sum.Density)
	fmt.Fprintf(w, "Length:      %v (%.2fs)\n", durafmt.Parse(seconds(s.Length)).LimitFirstN(2), s.Length)

	if len(s.Rendas) > 0 {
		parts := make([]string, len(s.Rendas))
		for i, r := range s.Rendas {
			parts[i] = fmt.Sprintf("%.3fs", r)
		}
		fmt.Fprintf(w, "Rolls:       %v = %.3fs\n", strings.Join(parts, " + "), sum.RendaTotal)
	}
	for _, b := range sum.Balloons {
		fmt.Fprintf(w, "Balloon:     %.3fs / %v hits (%.3f hits/s)\n", b.Length, b.Count, b.Rate)
	}

	fmt.Fprintf(w, "Density graph (%.2fs per bin, peak %v):\n%v\n", res.Graph.Timeframe, res.Graph.Max, sparkline(res.Graph))
}

var sparks = []rune("▁▂▃▄▅▆▇█")

func sparkline(g model.Graph) string {
	var b strings.Builder
	for _, bin := range g.Bins {
		sum := bin.Don + bin.Kat
		switch {
		case sum == 0:
			b.WriteRune(' ')
		case g.Max == 0:
			b.WriteRune(sparks[0])
		default:
			b.WriteRune(sparks[(sum*(len(sparks)-1))/g.Max])
		}
	}
	return b.String()
}
