package tja

import (
	"regexp"
	"strings"

	"github.com/jsphweid/tjadex/constants"
	"github.com/jsphweid/tjadex/model"
)

var newlineRe = regexp.MustCompile(`\r\n|\r|\n`)

// Parse builds a Chart from TJA text using the default configuration.
func Parse(text string) model.Chart {
	return ParseWith(text, constants.GetDefaults())
}

// ParseWith builds a Chart from TJA text. Lines that are not understood are
// dropped; parsing never fails.
func ParseWith(text string, defaults constants.Defaults) model.Chart {
	chart := model.Chart{
		Headers: model.Headers{BPM: defaults.BPM},
		Courses: make(map[model.CourseID]model.Course),
	}

	var group []Line
	flush := func() {
		if len(group) == 0 {
			return
		}
		a := newCourseAssembler(defaults)
		for _, l := range group {
			a.apply(l)
		}
		course := a.finish(chart.Headers.BPM)
		chart.Courses[course.ID] = course
		group = nil
	}

	for _, raw := range newlineRe.Split(text, -1) {
		line := StripComment(strings.TrimSpace(raw))
		if line == "" {
			continue
		}

		l := ClassifyLine(line)
		switch {
		case l.Type == Header && l.Scope == Global:
			applyGlobalHeader(&chart.Headers, l)
		case l.Type == Header && l.Scope == CourseScope:
			if l.Name == "COURSE" {
				flush()
			}
			group = append(group, l)
		case l.Type == Command, l.Type == Data:
			group = append(group, l)
		}
	}
	flush()

	return chart
}

func setFloat(h *model.Headers, l Line, dst *float64) {
	v, ok := parseLeadingFloat(l.Value)
	if !ok {
		h.Unparsed = append(h.Unparsed, l.Name)
		return
	}
	*dst = v
}

// setTempo is setFloat for tempos, which must be positive.
func setTempo(h *model.Headers, l Line) {
	v, ok := parseLeadingFloat(l.Value)
	if !ok || v <= 0 {
		h.Unparsed = append(h.Unparsed, l.Name)
		return
	}
	h.BPM = v
}

func applyGlobalHeader(h *model.Headers, l Line) {
	switch l.Name {
	case "TITLE":
		h.Title = l.Value
	case "SUBTITLE":
		h.Subtitle = l.Value
	case "BPM":
		setTempo(h, l)
	case "WAVE":
		h.Wave = l.Value
	case "OFFSET":
		setFloat(h, l, &h.Offset)
	case "DEMOSTART":
		setFloat(h, l, &h.DemoStart)
	case "GENRE":
		h.Genre = l.Value
	}
}
