package model

type ChartCreated struct {
	Id      string     `json:"id"`
	Title   string     `json:"title"`
	Courses []CourseID `json:"courses"`
}

type AnalysisResponse struct {
	Course     CourseID   `json:"course"`
	Statistics Statistics `json:"statistics"`
	Summary    Summary    `json:"summary"`
	Graph      Graph      `json:"graph"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
