package tja

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jsphweid/tjadex/constants"
	"github.com/jsphweid/tjadex/model"
)

var (
	intPrefixRe   = regexp.MustCompile(`^[+-]?\d+`)
	floatPrefixRe = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	measureRe     = regexp.MustCompile(`(\d+)/(\d+)`)
	nonDigitRe    = regexp.MustCompile(`[^0-9]`)
)

// parseLeadingInt reads the integer at the start of s, ignoring any trailing text.
func parseLeadingInt(s string) (int, bool) {
	m := intPrefixRe.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseLeadingFloat(s string) (float64, bool) {
	m := floatPrefixRe.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseBalloon(s string) []int {
	res := []int{}
	for _, part := range nonDigitRe.Split(s, -1) {
		if part == "" {
			continue
		}
		if v, err := strconv.Atoi(part); err == nil {
			res = append(res, v)
		}
	}
	return res
}

func defaultCourseHeaders() model.CourseHeaders {
	return model.CourseHeaders{
		Course:    "Easy",
		Level:     1,
		Balloon:   []int{},
		ScoreInit: 100,
		ScoreDiff: 100,
		TTRowBeat: 16,
	}
}

// courseAssembler folds the lines of one course into measures. Data is
// buffered until a fragment ends with a comma, which seals a measure.
type courseAssembler struct {
	headers  model.CourseHeaders
	measures []model.Measure

	signature  model.Signature
	properties model.MeasureProperties
	data       strings.Builder
	events     []model.Event
}

func newCourseAssembler(defaults constants.Defaults) *courseAssembler {
	return &courseAssembler{
		headers: defaultCourseHeaders(),
		signature: model.Signature{
			Dividend: defaults.MeasureDividend,
			Divisor:  defaults.MeasureDivisor,
		},
	}
}

func (a *courseAssembler) unparsed(name string) {
	a.headers.Unparsed = append(a.headers.Unparsed, name)
}

func (a *courseAssembler) setInt(name, value string, dst *int) {
	v, ok := parseLeadingInt(value)
	if !ok {
		a.unparsed(name)
		return
	}
	*dst = v
}

func (a *courseAssembler) applyHeader(l Line) {
	switch l.Name {
	case "COURSE":
		a.headers.Course = l.Value
	case "LEVEL":
		a.setInt(l.Name, l.Value, &a.headers.Level)
	case "BALLOON":
		a.headers.Balloon = parseBalloon(l.Value)
	case "SCOREINIT":
		a.setInt(l.Name, l.Value, &a.headers.ScoreInit)
	case "SCOREDIFF":
		a.setInt(l.Name, l.Value, &a.headers.ScoreDiff)
	case "TTROWBEAT":
		a.setInt(l.Name, l.Value, &a.headers.TTRowBeat)
	}
}

func (a *courseAssembler) pushEvent(kind model.EventKind, value float64) {
	a.events = append(a.events, model.Event{
		Kind:     kind,
		Position: a.data.Len(),
		Value:    value,
	})
}

func (a *courseAssembler) pushValueEvent(kind model.EventKind, l Line) {
	v, ok := parseLeadingFloat(l.Value)
	if !ok {
		a.unparsed(l.Name)
		return
	}
	if kind == model.EventBPM && v <= 0 {
		a.unparsed(l.Name)
		return
	}
	a.pushEvent(kind, v)
}

func (a *courseAssembler) applyCommand(l Line) {
	switch l.Name {
	case "MEASURE":
		m := measureRe.FindStringSubmatch(l.Value)
		if m == nil {
			return
		}
		dividend, _ := strconv.Atoi(m[1])
		divisor, _ := strconv.Atoi(m[2])
		a.signature = model.Signature{Dividend: dividend, Divisor: divisor}
	case "GOGOSTART":
		a.pushEvent(model.EventGogoStart, 0)
	case "GOGOEND":
		a.pushEvent(model.EventGogoEnd, 0)
	case "SCROLL":
		a.pushValueEvent(model.EventScroll, l)
	case "BPMCHANGE":
		a.pushValueEvent(model.EventBPM, l)
	case "TTBREAK":
		a.properties.TTBreak = true
	}
}

func (a *courseAssembler) applyData(data string) {
	if !strings.HasSuffix(data, ",") {
		a.data.WriteString(data)
		return
	}

	a.data.WriteString(strings.TrimSuffix(data, ","))
	a.measures = append(a.measures, model.Measure{
		Signature:  a.signature,
		Properties: a.properties,
		Data:       a.data.String(),
		Events:     a.events,
	})
	a.data.Reset()
	a.events = nil
	a.properties = model.MeasureProperties{}
}

func (a *courseAssembler) apply(l Line) {
	switch l.Type {
	case Header:
		a.applyHeader(l)
	case Command:
		a.applyCommand(l)
	case Data:
		a.applyData(l.Value)
	}
}

// finish seals the course. Data left in the buffer without a closing comma
// never becomes a measure.
func (a *courseAssembler) finish(bpm float64) model.Course {
	if len(a.measures) > 0 && !hasInitialBPM(a.measures[0]) {
		first := &a.measures[0]
		first.Events = append([]model.Event{{Kind: model.EventBPM, Position: 0, Value: bpm}}, first.Events...)
	}

	return model.Course{
		ID:       ResolveCourse(a.headers.Course),
		Headers:  a.headers,
		Measures: a.measures,
	}
}

func hasInitialBPM(m model.Measure) bool {
	for _, e := range m.Events {
		if e.Kind == model.EventBPM && e.Position == 0 {
			return true
		}
	}
	return false
}

// LookupCourse maps a course name or number to its identifier.
func LookupCourse(name string) (model.CourseID, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "easy", "0":
		return model.Easy, true
	case "normal", "1":
		return model.Normal, true
	case "hard", "2":
		return model.Hard, true
	case "oni", "3":
		return model.Oni, true
	case "edit", "4":
		return model.Edit, true
	}
	return model.Easy, false
}

// ResolveCourse is LookupCourse with unknown names falling back to Easy.
func ResolveCourse(name string) model.CourseID {
	id, _ := LookupCourse(name)
	return id
}
