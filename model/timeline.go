package model

type EventKind string

const (
	EventBPM       EventKind = "bpm"
	EventGogoStart EventKind = "gogoStart"
	EventGogoEnd   EventKind = "gogoEnd"
	EventScroll    EventKind = "scroll"
)

// Event is a measure-level change. Position indexes into the measure data
// (0..len inclusive); Beat is only set once the event is placed on a timeline.
type Event struct {
	Kind     EventKind `json:"kind" yaml:"kind"`
	Position int       `json:"position" yaml:"position"`
	Value    float64   `json:"value,omitempty" yaml:"value,omitempty"`
	Beat     float64   `json:"beat" yaml:"beat"`
}

type NoteKind string

const (
	Don      NoteKind = "don"
	Kat      NoteKind = "kat"
	DonBig   NoteKind = "donBig"
	KatBig   NoteKind = "katBig"
	Renda    NoteKind = "renda"
	RendaBig NoteKind = "rendaBig"
	Balloon  NoteKind = "balloon"
	End      NoteKind = "end"
)

// HitIndex returns the slot of a hit note in Statistics.Notes, or -1.
func (k NoteKind) HitIndex() int {
	switch k {
	case Don:
		return 0
	case Kat:
		return 1
	case DonBig:
		return 2
	case KatBig:
		return 3
	}
	return -1
}

func (k NoteKind) IsHit() bool {
	return k.HitIndex() != -1
}

func (k NoteKind) IsBig() bool {
	return k == DonBig || k == KatBig
}

type Note struct {
	Kind NoteKind `json:"kind" yaml:"kind"`
	Beat float64  `json:"beat" yaml:"beat"`
	Time float64  `json:"time" yaml:"time"`

	// only meaningful for balloons
	Count int `json:"count,omitempty" yaml:"count,omitempty"`
}

type Timeline struct {
	Course  CourseID      `json:"course" yaml:"course"`
	Headers CourseHeaders `json:"headers" yaml:"headers"`
	Events  []Event       `json:"events" yaml:"events"`
	Notes   []Note        `json:"notes" yaml:"notes"`
}
