package timeline

import (
	"testing"

	"github.com/jsphweid/tjadex/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func measure(data string, events ...model.Event) model.Measure {
	return model.Measure{
		Signature: model.Signature{Dividend: 4, Divisor: 4},
		Data:      data,
		Events:    events,
	}
}

func course(balloons []int, measures ...model.Measure) model.Course {
	return model.Course{
		ID:       model.Oni,
		Headers:  model.CourseHeaders{Balloon: balloons, ScoreInit: 100, ScoreDiff: 100},
		Measures: measures,
	}
}

func kinds(notes []model.Note) []model.NoteKind {
	var res []model.NoteKind
	for _, n := range notes {
		res = append(res, n.Kind)
	}
	return res
}

func TestNoteBeatsAndTimes(t *testing.T) {
	c := course(nil,
		measure("1020", model.Event{Kind: model.EventBPM, Value: 120}),
		measure("30"),
	)
	tl, err := Build(c)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]model.Note{
		{Kind: model.Don, Beat: 0, Time: 0},
		{Kind: model.Kat, Beat: 2, Time: 1},
		{Kind: model.DonBig, Beat: 4, Time: 2},
	}, tl.Notes)
}

func TestEventBeats(t *testing.T) {
	c := course(nil,
		measure("1111",
			model.Event{Kind: model.EventBPM, Value: 120},
			model.Event{Kind: model.EventGogoStart, Position: 2},
			model.Event{Kind: model.EventBPM, Position: 4, Value: 240},
		),
		measure("", model.Event{Kind: model.EventGogoEnd}),
		measure("1"),
	)
	tl, err := Build(c)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]model.Event{
		{Kind: model.EventBPM, Value: 120, Beat: 0},
		{Kind: model.EventGogoStart, Position: 2, Beat: 2},
		{Kind: model.EventBPM, Position: 4, Value: 240, Beat: 4},
		{Kind: model.EventGogoEnd, Beat: 4},
	}, tl.Events)

	// 4 beats at 120 then the empty measure and 4 more beats at 240
	last := tl.Notes[len(tl.Notes)-1]
	assert.Equal(8.0, last.Beat)
	assert.InDelta(3.0, last.Time, 1e-9)
}

func TestTimeSignature(t *testing.T) {
	m := measure("111")
	m.Signature = model.Signature{Dividend: 3, Divisor: 4}
	tl, err := Build(course(nil, m, measure("1")))

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]float64{0, 1, 2, 3}, []float64{tl.Notes[0].Beat, tl.Notes[1].Beat, tl.Notes[2].Beat, tl.Notes[3].Beat})
}

func TestBalloonCountsAreConsumedInOrder(t *testing.T) {
	tl, err := Build(course([]int{5, 8}, measure("7008"), measure("9998")))

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]model.NoteKind{model.Balloon, model.End, model.Balloon, model.End}, kinds(tl.Notes))
	assert.Equal(5, tl.Notes[0].Count)
	assert.Equal(8, tl.Notes[2].Count)
	assert.Equal(0.0, tl.Notes[2].Beat-4)
}

func TestUnknownCodesProduceNoNotes(t *testing.T) {
	tl, err := Build(course(nil, measure("0A1056")))

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]model.NoteKind{model.Don, model.Renda, model.RendaBig}, kinds(tl.Notes))
}

func TestBalloonOverrun(t *testing.T) {
	_, err := Build(course([]int{5}, measure("7080"), measure("9908")))

	assert := assert.New(t)
	assert.Error(err)
	assert.Equal(ErrBalloonOverrun, errors.Cause(err))
}

func TestCountBalloons(t *testing.T) {
	assert.Equal(t, 3, CountBalloons(course(nil, measure("7008"), measure("9999"), measure("8900"), measure("0008"))))
}

func TestNoteTimesAreMonotonic(t *testing.T) {
	c := course(nil,
		measure("1212", model.Event{Kind: model.EventBPM, Value: 160}),
		measure("1111111111111111", model.Event{Kind: model.EventBPM, Position: 8, Value: 75}),
		measure("3040", model.Event{Kind: model.EventBPM, Position: 1, Value: 300}),
	)
	tl, err := Build(c)

	assert.NoError(t, err)
	for i := 1; i < len(tl.Notes); i++ {
		assert.GreaterOrEqual(t, tl.Notes[i].Beat, tl.Notes[i-1].Beat)
		assert.GreaterOrEqual(t, tl.Notes[i].Time, tl.Notes[i-1].Time)
	}
}
