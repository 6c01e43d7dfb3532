package analysis

import (
	"math"
	"testing"

	"github.com/jsphweid/tjadex/model"
	"github.com/jsphweid/tjadex/timeline"
	"github.com/jsphweid/tjadex/tja"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

const chartText = `TITLE:Analysis
BPM:120

COURSE:Oni
BALLOON:10
SCOREINIT:300
SCOREDIFF:100
#START
1111,
#GOGOSTART
2222,
#GOGOEND
7000,
0008,
#END
`

func TestAnalyse(t *testing.T) {
	res, err := Analyse(tja.Parse(chartText), model.Oni)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(model.Oni, res.Timeline.Course)
	assert.Equal(8, res.Statistics.TotalCombo)
	assert.Equal([4]int{4, 4, 0, 0}, res.Statistics.Notes)
	assert.Equal(3.5, res.Statistics.Length)
	assert.Equal(4*300+4*360, res.Statistics.Score.Potential)

	// one balloon of 10 hits over 3.5s
	assert.Equal([2]int{9, 0}, res.Statistics.Score.Balloon)
	assert.Equal([2]int{1, 0}, res.Statistics.Score.BalloonPop)
	assert.Equal(4*300+4*360+9*300+5000, res.Summary.MaxScore)

	assert.Equal(50.0, res.Summary.DonRatio)
	assert.Len(res.Graph.Bins, 100)
	assert.Equal(8, res.Response().Statistics.TotalCombo)
}

func TestAnalyseMissingCourse(t *testing.T) {
	_, err := Analyse(tja.Parse(chartText), model.Edit)

	assert.Equal(t, ErrCourseNotFound, errors.Cause(err))
}

func TestAnalyseBalloonOverrun(t *testing.T) {
	text := "COURSE:Oni\nBALLOON:3\n#START\n7008,\n7008,\n#END\n"
	_, err := Analyse(tja.Parse(text), model.Oni)

	assert.Equal(t, timeline.ErrBalloonOverrun, errors.Cause(err))
}

func TestAnalyseZeroTempoStaysFinite(t *testing.T) {
	text := "BPM:0\nCOURSE:Oni\n#START\n#BPMCHANGE 0\n1111,\n#END\n"
	res, err := Analyse(tja.Parse(text), model.Oni)

	assert := assert.New(t)
	assert.NoError(err)
	prev := 0.0
	for _, n := range res.Timeline.Notes {
		assert.False(math.IsNaN(n.Time) || math.IsInf(n.Time, 0))
		assert.GreaterOrEqual(n.Time, prev)
		prev = n.Time
	}
	assert.Equal(1.5, res.Statistics.Length)
	assert.False(math.IsNaN(res.Summary.Density))
	assert.False(math.IsNaN(res.Graph.Timeframe))
}
