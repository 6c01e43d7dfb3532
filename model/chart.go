package model

type CourseID int

const (
	Easy CourseID = iota
	Normal
	Hard
	Oni
	Edit
)

var courseNames = [...]string{"Easy", "Normal", "Hard", "Oni", "Edit"}

func (c CourseID) String() string {
	if c < Easy || c > Edit {
		return "Unknown"
	}
	return courseNames[c]
}

type Headers struct {
	Title     string  `json:"title" yaml:"title"`
	Subtitle  string  `json:"subtitle" yaml:"subtitle"`
	BPM       float64 `json:"bpm" yaml:"bpm"`
	Wave      string  `json:"wave" yaml:"wave"`
	Offset    float64 `json:"offset" yaml:"offset"`
	DemoStart float64 `json:"demoStart" yaml:"demoStart"`
	Genre     string  `json:"genre" yaml:"genre"`

	// names of numeric headers whose value could not be read; the default was kept
	Unparsed []string `json:"unparsed,omitempty" yaml:"unparsed,omitempty"`
}

type CourseHeaders struct {
	Course    string `json:"course" yaml:"course"`
	Level     int    `json:"level" yaml:"level"`
	Balloon   []int  `json:"balloon" yaml:"balloon"`
	ScoreInit int    `json:"scoreInit" yaml:"scoreInit"`
	ScoreDiff int    `json:"scoreDiff" yaml:"scoreDiff"`
	TTRowBeat int    `json:"ttRowBeat" yaml:"ttRowBeat"`

	Unparsed []string `json:"unparsed,omitempty" yaml:"unparsed,omitempty"`
}

type Signature struct {
	Dividend int `json:"dividend" yaml:"dividend"`
	Divisor  int `json:"divisor" yaml:"divisor"`
}

// Beats is the measure length in quarter-note beats.
func (s Signature) Beats() float64 {
	if s.Divisor == 0 {
		return 0
	}
	return float64(s.Dividend) / float64(s.Divisor) * 4
}

type MeasureProperties struct {
	TTBreak bool `json:"ttBreak,omitempty" yaml:"ttBreak,omitempty"`
}

type Measure struct {
	Signature  Signature         `json:"signature" yaml:"signature"`
	Properties MeasureProperties `json:"properties" yaml:"properties"`
	Data       string            `json:"data" yaml:"data"`
	Events     []Event           `json:"events" yaml:"events"`
}

type Course struct {
	ID       CourseID      `json:"id" yaml:"id"`
	Headers  CourseHeaders `json:"headers" yaml:"headers"`
	Measures []Measure     `json:"measures" yaml:"measures"`
}

type Chart struct {
	Headers Headers             `json:"headers" yaml:"headers"`
	Courses map[CourseID]Course `json:"courses" yaml:"courses"`
}
