package graph

import (
	"github.com/jsphweid/tjadex/constants"
	"github.com/jsphweid/tjadex/model"
)

// Build counts hit notes into equal time bins spanning the whole timeline.
func Build(tl model.Timeline) model.Graph {
	return BuildWith(tl, constants.GetDefaults().GraphBins)
}

func BuildWith(tl model.Timeline, bins int) model.Graph {
	g := model.Graph{Bins: make([]model.GraphBin, bins)}
	if len(tl.Notes) == 0 || bins == 0 {
		return g
	}

	length := tl.Notes[len(tl.Notes)-1].Time
	g.Timeframe = length / float64(bins)

	for _, note := range tl.Notes {
		if !note.Kind.IsHit() {
			continue
		}

		idx := 0
		if g.Timeframe > 0 {
			pos := note.Time / g.Timeframe
			switch {
			case pos >= float64(bins):
				idx = bins - 1
			case pos > 0:
				idx = int(pos)
			}
		}

		switch note.Kind {
		case model.Don, model.DonBig:
			g.Bins[idx].Don++
		case model.Kat, model.KatBig:
			g.Bins[idx].Kat++
		}
	}

	for _, b := range g.Bins {
		if sum := b.Don + b.Kat; sum > g.Max {
			g.Max = sum
		}
	}
	return g
}
