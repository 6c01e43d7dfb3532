package stats

import "github.com/jsphweid/tjadex/model"

// Bonus points awarded per leftover balloon hit and per pop, indexed by go-go.
var (
	BalloonHitBonus = [2]int{300, 360}
	BalloonPopBonus = [2]int{5000, 6000}
)

const ComboBonus = 10000

// MaxScore estimates the best achievable score, excluding rolls.
func MaxScore(s model.Statistics, headers model.CourseHeaders) int {
	var total int
	for tier := 0; tier < 5; tier++ {
		total += s.Score.Notes[0][tier] * NoteScore(headers.ScoreInit, headers.ScoreDiff, tier, false)
		total += s.Score.Notes[1][tier] * NoteScore(headers.ScoreInit, headers.ScoreDiff, tier, true)
	}
	for gogo := 0; gogo < 2; gogo++ {
		total += s.Score.Balloon[gogo] * BalloonHitBonus[gogo]
		total += s.Score.BalloonPop[gogo] * BalloonPopBonus[gogo]
	}
	total += s.TotalCombo / 100 * ComboBonus
	return total
}

func ratio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// Summarise derives display figures. Ratios over an empty course are zero.
func Summarise(s model.Statistics, headers model.CourseHeaders) model.Summary {
	sum := model.Summary{
		MaxScore: MaxScore(s, headers),
		HasRenda: len(s.Rendas) > 0,
		Don:      s.Notes[0] + s.Notes[2],
		Kat:      s.Notes[1] + s.Notes[3],
		Density:  ratio(float64(s.TotalCombo), s.Length),
		Balloons: make([]model.BalloonSpeed, 0, len(s.Balloons)),
	}

	sum.DonRatio = ratio(float64(sum.Don), float64(s.TotalCombo)) * 100
	if s.TotalCombo > 0 {
		sum.KatRatio = 100 - sum.DonRatio
	}

	for _, r := range s.Rendas {
		sum.RendaTotal += r
	}
	for _, b := range s.Balloons {
		sum.Balloons = append(sum.Balloons, model.BalloonSpeed{
			BalloonStat: b,
			Rate:        ratio(float64(b.Count), b.Length),
		})
	}

	return sum
}
