package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsphweid/tjadex/midi"
	"github.com/jsphweid/tjadex/sample"
	"github.com/jsphweid/tjadex/timeline"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	exportCourse string
	exportOut    string
	exportDemo   bool
	exportNotes  int
)

func init() {
	exportCmd.Flags().StringVarP(&exportCourse, "course", "c", "", "course name or number (default: hardest)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default: <chart>.<course>.mid)")
	exportCmd.Flags().BoolVar(&exportDemo, "demo", false, "only export a preview starting at DEMOSTART")
	exportCmd.Flags().IntVar(&exportNotes, "notes", 64, "number of notes in the preview")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <file.tja>",
	Short: "Exports a course as MIDI",
	Long:  `Writes the timeline of a course as a drum track with its tempo map.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return export(args[0])
	},
}

func export(path string) error {
	chart, err := loadChart(path)
	if err != nil {
		return err
	}
	id, err := pickCourse(chart, exportCourse)
	if err != nil {
		return err
	}
	tl, err := timeline.Build(chart.Courses[id])
	if err != nil {
		return err
	}

	s, err := midi.Build(tl)
	if err != nil {
		return err
	}
	if exportDemo {
		offset := midi.DemoOffset(tl, chart.Headers.DemoStart)
		logger.Printf("demo starts at tick %v", offset)
		s = sample.Create(s, offset, exportNotes)
	}

	out := exportOut
	if out == "" {
		base := strings.TrimSuffix(path, filepath.Ext(path))
		out = fmt.Sprintf("%v.%v.mid", base, strings.ToLower(id.String()))
	}

	f, err := os.Create(out)
	if err != nil {
		return errors.Wrap(err, "Couldn't open file: "+out)
	}
	defer f.Close()

	if _, err := s.WriteTo(f); err != nil {
		return errors.Wrap(err, "Write failed for file: "+out)
	}
	fmt.Printf("Wrote %v\n", out)
	return nil
}
