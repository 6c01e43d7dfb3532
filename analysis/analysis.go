package analysis

import (
	"github.com/jsphweid/tjadex/graph"
	"github.com/jsphweid/tjadex/model"
	"github.com/jsphweid/tjadex/stats"
	"github.com/jsphweid/tjadex/timeline"
	"github.com/pkg/errors"
)

var ErrCourseNotFound = errors.New("course not found")

type Result struct {
	Timeline   model.Timeline
	Statistics model.Statistics
	Summary    model.Summary
	Graph      model.Graph
}

func Analyse(chart model.Chart, id model.CourseID) (Result, error) {
	course, ok := chart.Courses[id]
	if !ok {
		return Result{}, errors.Wrapf(ErrCourseNotFound, "%v", id)
	}

	tl, err := timeline.Build(course)
	if err != nil {
		return Result{}, errors.Wrapf(err, "course %v", id)
	}

	s := stats.Compute(tl)
	return Result{
		Timeline:   tl,
		Statistics: s,
		Summary:    stats.Summarise(s, tl.Headers),
		Graph:      graph.Build(tl),
	}, nil
}

func (r Result) Response() model.AnalysisResponse {
	return model.AnalysisResponse{
		Course:     r.Timeline.Course,
		Statistics: r.Statistics,
		Summary:    r.Summary,
		Graph:      r.Graph,
	}
}
