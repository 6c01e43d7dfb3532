package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
	"github.com/jsphweid/tjadex/model"
	"github.com/jsphweid/tjadex/util"
	"github.com/spf13/cobra"
)

var reportTop int

func init() {
	reportCmd.Flags().IntVarP(&reportTop, "top", "n", 5, "number of densest courses to list")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a report",
	Long:  `Summarises the index written by the index command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := util.ReadBinary[[]model.IndexEntry](util.GetIndexPath())
		if err != nil {
			return err
		}
		report(cmd.OutOrStdout(), entries, reportTop)
		return nil
	},
}

type indexReport struct {
	numFiles   int
	numCourses int
	perCourse  map[model.CourseID]int
	lengths    []float64
	combos     []int
	maxScores  []int
}

func analyzeIndex(entries []model.IndexEntry) indexReport {
	r := indexReport{perCourse: make(map[model.CourseID]int)}
	files := make(map[uint32]bool)
	for _, e := range entries {
		files[e.FileNum] = true
		r.numCourses += 1
		r.perCourse[e.Course] += 1
		r.lengths = append(r.lengths, e.Length)
		r.combos = append(r.combos, e.TotalCombo)
		r.maxScores = append(r.maxScores, e.MaxScore)
	}
	r.numFiles = len(files)
	return r
}

func report(w io.Writer, entries []model.IndexEntry, top int) {
	r := analyzeIndex(entries)
	fmt.Fprintf(w, "files: %v\n", r.numFiles)
	fmt.Fprintf(w, "courses: %v\n", r.numCourses)
	for _, id := range util.GetSortedKeys(r.perCourse) {
		fmt.Fprintf(w, "  %v: %v\n", id, r.perCourse[id])
	}
	if r.numCourses == 0 {
		return
	}

	fmt.Fprintf(w, "total play time: %v\n", durafmt.Parse(seconds(util.Sum(r.lengths))).LimitFirstN(3))
	fmt.Fprintf(w, "total notes: %v\n", humanize.Comma(int64(util.Sum(r.combos))))
	fmt.Fprintf(w, "average max score: %v\n", humanize.Comma(int64(util.Sum(r.maxScores)/r.numCourses)))

	dense := append([]model.IndexEntry(nil), entries...)
	sort.SliceStable(dense, func(i, j int) bool {
		return dense[i].Density > dense[j].Density
	})
	if top > len(dense) {
		top = len(dense)
	}
	fmt.Fprintf(w, "densest courses:\n")
	for _, e := range dense[:top] {
		fmt.Fprintf(w, "  %.3f notes/s  %v [%v %v]\n", e.Density, e.Title, e.Course, e.Level)
	}
}
