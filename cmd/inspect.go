package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/tjadex/layout"
	"github.com/spf13/cobra"
)

var (
	inspectCourse string
	inspectFormat string
)

func init() {
	inspectCmd.Flags().StringVarP(&inspectCourse, "course", "c", "", "course name or number (default: hardest)")
	inspectCmd.Flags().StringVarP(&inspectFormat, "format", "f", formatText, "output format: text, json or yaml")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.tja>",
	Short: "Inspects the measures of a course",
	Long:  `Prints the measures of a course split into rows the way a chart image lays them out.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chart, err := loadChart(args[0])
		if err != nil {
			return err
		}
		id, err := pickCourse(chart, inspectCourse)
		if err != nil {
			return err
		}

		rows := layout.Rows(chart.Courses[id])
		return writeFormatted(cmd.OutOrStdout(), inspectFormat, rows, func(w io.Writer) {
			for i, row := range rows {
				fmt.Fprintf(w, "row %v (%v beats)\n", i, row.Beats)
				for j, m := range row.Measures {
					fmt.Fprintf(w, "  %3d  %v/%v  %v", row.Start+j, m.Signature.Dividend, m.Signature.Divisor, m.Data)
					for _, e := range m.Events {
						fmt.Fprintf(w, "  [%v@%v %v]", e.Kind, e.Position, e.Value)
					}
					fmt.Fprintln(w)
				}
			}
		})
	},
}
