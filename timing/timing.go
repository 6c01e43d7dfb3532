// Package timing converts beat positions into elapsed seconds under a
// piecewise constant tempo.
package timing

import "github.com/jsphweid/tjadex/model"

// Integrate returns the time in seconds of every beat in beats. Both events
// and beats must be sorted by beat. Only bpm events with a positive value
// change the tempo; events at the same beat apply in order, so the last one wins.
func Integrate(events []model.Event, beats []float64, bpm float64) []float64 {
	var passedBeat, passedTime float64
	times := make([]float64, 0, len(beats))

	e := 0
	for _, target := range beats {
		for e < len(events) && events[e].Beat <= target {
			evt := events[e]
			if evt.Kind == model.EventBPM && evt.Value > 0 {
				delta := evt.Beat - passedBeat
				passedTime += 60 / bpm * delta
				passedBeat = evt.Beat
				bpm = evt.Value
			}
			e++
		}

		delta := target - passedBeat
		passedTime += 60 / bpm * delta
		passedBeat = target
		times = append(times, passedTime)
	}

	return times
}
