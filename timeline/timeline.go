package timeline

import (
	"github.com/jsphweid/tjadex/constants"
	"github.com/jsphweid/tjadex/model"
	"github.com/jsphweid/tjadex/timing"
	"github.com/pkg/errors"
)

var ErrBalloonOverrun = errors.New("balloon count mismatch")

var noteCodes = map[byte]model.NoteKind{
	'1': model.Don,
	'2': model.Kat,
	'3': model.DonBig,
	'4': model.KatBig,
	'5': model.Renda,
	'6': model.RendaBig,
	'7': model.Balloon,
	'8': model.End,
}

// CountBalloons returns how many balloon counts the course consumes. A run
// of 9s opens a single balloon until an 8 closes it.
func CountBalloons(course model.Course) int {
	var n int
	var imo bool
	for _, m := range course.Measures {
		for i := 0; i < len(m.Data); i++ {
			switch m.Data[i] {
			case '7':
				n++
			case '9':
				if !imo {
					imo = true
					n++
				}
			case '8':
				imo = false
			}
		}
	}
	return n
}

// Build places every note and event of the course on a global beat axis and
// resolves note times.
func Build(course model.Course) (model.Timeline, error) {
	return BuildWith(course, constants.GetDefaults())
}

func BuildWith(course model.Course, defaults constants.Defaults) (model.Timeline, error) {
	if need, have := CountBalloons(course), len(course.Headers.Balloon); need > have {
		return model.Timeline{}, errors.Wrapf(ErrBalloonOverrun, "%v balloons but %v counts declared", need, have)
	}

	tl := model.Timeline{
		Course:  course.ID,
		Headers: course.Headers,
	}

	var beat float64
	var balloon int
	var imo bool

	for _, m := range course.Measures {
		length := m.Signature.Beats()

		granularity := len(m.Data)
		if granularity == 0 {
			granularity = 1
		}
		for _, e := range m.Events {
			e.Beat = beat + length*float64(e.Position)/float64(granularity)
			tl.Events = append(tl.Events, e)
		}

		for d := 0; d < len(m.Data); d++ {
			note := model.Note{Beat: beat + length*float64(d)/float64(len(m.Data))}

			switch ch := m.Data[d]; ch {
			case '7':
				note.Kind = model.Balloon
				note.Count = course.Headers.Balloon[balloon]
				balloon++
			case '9':
				if imo {
					continue
				}
				note.Kind = model.Balloon
				note.Count = course.Headers.Balloon[balloon]
				balloon++
				imo = true
			case '8':
				note.Kind = model.End
				imo = false
			default:
				kind, ok := noteCodes[ch]
				if !ok {
					continue
				}
				note.Kind = kind
			}

			tl.Notes = append(tl.Notes, note)
		}

		beat += length
	}

	beats := make([]float64, len(tl.Notes))
	for i, n := range tl.Notes {
		beats[i] = n.Beat
	}
	for i, t := range timing.Integrate(tl.Events, beats, defaults.BPM) {
		tl.Notes[i].Time = t
	}

	return tl, nil
}
