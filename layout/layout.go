// Package layout splits a course into display rows ahead of rendering.
package layout

import "github.com/jsphweid/tjadex/model"

type Row struct {
	// index of the first measure of the row in the course
	Start    int             `json:"start" yaml:"start"`
	Beats    float64         `json:"beats" yaml:"beats"`
	Measures []model.Measure `json:"measures" yaml:"measures"`
}

// Rows starts a new row when a measure would overflow the course's
// TTROWBEAT width or when the measure asks for a break.
func Rows(course model.Course) []Row {
	width := float64(course.Headers.TTRowBeat)

	var rows []Row
	var cur Row
	for i, m := range course.Measures {
		beats := m.Signature.Beats()
		if len(cur.Measures) > 0 && (width < cur.Beats+beats || m.Properties.TTBreak) {
			rows = append(rows, cur)
			cur = Row{Start: i}
		}
		cur.Measures = append(cur.Measures, m)
		cur.Beats += beats
	}
	if len(cur.Measures) > 0 {
		rows = append(rows, cur)
	}
	return rows
}
