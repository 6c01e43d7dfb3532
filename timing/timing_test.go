package timing

import (
	"testing"

	"github.com/jsphweid/tjadex/model"
	"github.com/stretchr/testify/assert"
)

func bpm(beat, value float64) model.Event {
	return model.Event{Kind: model.EventBPM, Beat: beat, Value: value}
}

func TestDefaultTempo(t *testing.T) {
	times := Integrate(nil, []float64{0, 1, 4}, 120)
	assert.Equal(t, []float64{0, 0.5, 2}, times)
}

func TestTempoChangeBetweenTargets(t *testing.T) {
	times := Integrate([]model.Event{bpm(4, 240)}, []float64{8}, 120)
	assert.InDelta(t, 3.0, times[0], 1e-9)
}

func TestSeveralChangesBeforeOneTarget(t *testing.T) {
	events := []model.Event{bpm(0, 60), bpm(1, 120), bpm(3, 240)}
	times := Integrate(events, []float64{0, 5}, 120)

	assert := assert.New(t)
	assert.InDelta(0.0, times[0], 1e-9)
	// 1 beat at 60, 2 at 120, 2 at 240
	assert.InDelta(1+1+0.5, times[1], 1e-9)
}

func TestChangesAtSameBeatApplyInOrder(t *testing.T) {
	events := []model.Event{bpm(2, 60), bpm(2, 240)}
	times := Integrate(events, []float64{2, 6}, 120)

	assert := assert.New(t)
	assert.InDelta(1.0, times[0], 1e-9)
	assert.InDelta(2.0, times[1], 1e-9)
}

func TestNonTempoEventsAreSkipped(t *testing.T) {
	events := []model.Event{
		{Kind: model.EventGogoStart, Beat: 1},
		bpm(2, 60),
		{Kind: model.EventScroll, Beat: 3, Value: 2},
	}
	times := Integrate(events, []float64{1, 2, 4}, 120)
	assert.Equal(t, []float64{0.5, 1, 3}, times)
}

func TestTimesAreMonotonic(t *testing.T) {
	events := []model.Event{bpm(0, 200), bpm(3.5, 90), bpm(7, 310)}
	beats := []float64{0, 0.25, 1, 3.5, 3.5, 5, 7, 7.75, 12}
	times := Integrate(events, beats, 120)

	assert.Len(t, times, len(beats))
	for i := 1; i < len(times); i++ {
		assert.GreaterOrEqual(t, times[i], times[i-1])
	}
}

func TestNoTargets(t *testing.T) {
	assert.Empty(t, Integrate([]model.Event{bpm(0, 100)}, nil, 120))
}

func TestNonPositiveTempoIsIgnored(t *testing.T) {
	events := []model.Event{bpm(0, 0), bpm(2, -60)}
	times := Integrate(events, []float64{0, 1, 2, 4}, 120)

	assert.Equal(t, []float64{0, 0.5, 1, 2}, times)
}
