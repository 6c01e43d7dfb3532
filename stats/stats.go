package stats

import (
	"math"

	"github.com/jsphweid/tjadex/model"
)

// A balloon resolved at or below this many hits per second counts as popped.
const PopRate = 60

const gogoRate = 1.2

type holdKind int

const (
	holdNone holdKind = iota
	holdRoll
	holdBalloon
)

type hold struct {
	kind  holdKind
	start float64
	count int
	gogo  int
}

// Tier is the column of Score.Notes a hit at this combo lands in.
func Tier(combo int) int {
	switch {
	case combo < 10:
		return 0
	case combo < 30:
		return 1
	case combo < 50:
		return 2
	case combo < 100:
		return 3
	}
	return 4
}

var tierMultipliers = [5]int{0, 1, 2, 4, 8}

func floor10(v float64) int {
	return int(math.Floor(v/10)) * 10
}

// NoteScore is the score of one small note at the given tier.
func NoteScore(scoreInit, scoreDiff, tier int, gogo bool) int {
	score := floor10(float64(scoreInit + scoreDiff*tierMultipliers[tier]))
	if gogo {
		score = floor10(float64(score) * gogoRate)
	}
	return score
}

// Compute walks the notes once in time order, tracking go-go time from the
// events that precede each note.
func Compute(tl model.Timeline) model.Statistics {
	s := model.Statistics{
		Rendas:   []float64{},
		Balloons: []model.BalloonStat{},
	}

	var start, end float64
	var seenHit bool
	var open hold
	var gogo int

	e := 0
	for _, note := range tl.Notes {
		for e < len(tl.Events) && tl.Events[e].Beat <= note.Beat {
			switch tl.Events[e].Kind {
			case model.EventGogoStart:
				gogo = 1
			case model.EventGogoEnd:
				gogo = 0
			}
			e++
		}

		if idx := note.Kind.HitIndex(); idx != -1 {
			if !seenHit {
				start = note.Time
				seenHit = true
			}
			end = note.Time

			s.Notes[idx]++
			s.TotalCombo++

			tier := Tier(s.TotalCombo)
			score := NoteScore(tl.Headers.ScoreInit, tl.Headers.ScoreDiff, tier, gogo == 1)
			if note.Kind.IsBig() {
				s.Score.Notes[gogo][tier] += 2
				score *= 2
			} else {
				s.Score.Notes[gogo][tier]++
			}
			s.Score.Potential += score
			continue
		}

		switch note.Kind {
		case model.Renda, model.RendaBig:
			open = hold{kind: holdRoll, start: note.Time}
		case model.Balloon:
			open = hold{kind: holdBalloon, start: note.Time, count: note.Count, gogo: gogo}
		case model.End:
			switch open.kind {
			case holdRoll:
				s.Rendas = append(s.Rendas, note.Time-open.start)
			case holdBalloon:
				length := note.Time - open.start
				s.Balloons = append(s.Balloons, model.BalloonStat{Length: length, Count: open.count})
				if length > 0 && float64(open.count)/length <= PopRate {
					s.Score.Balloon[open.gogo] += open.count - 1
					s.Score.BalloonPop[open.gogo]++
				}
			}
			open = hold{}
		}
	}

	s.Length = end - start
	return s
}
