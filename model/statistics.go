package model

type BalloonStat struct {
	Length float64 `json:"length" yaml:"length"`
	Count  int     `json:"count" yaml:"count"`
}

// Score indexes are [gogo][tier] for Notes and [gogo] for the balloon counters,
// with gogo 0 = off and 1 = on.
type Score struct {
	Potential  int       `json:"score" yaml:"score"`
	Notes      [2][5]int `json:"notes" yaml:"notes"`
	Balloon    [2]int    `json:"balloon" yaml:"balloon"`
	BalloonPop [2]int    `json:"balloonPop" yaml:"balloonPop"`
}

type Statistics struct {
	TotalCombo int           `json:"totalCombo" yaml:"totalCombo"`
	Notes      [4]int        `json:"notes" yaml:"notes"`
	Length     float64       `json:"length" yaml:"length"`
	Rendas     []float64     `json:"rendas" yaml:"rendas"`
	Balloons   []BalloonStat `json:"balloons" yaml:"balloons"`
	Score      Score         `json:"score" yaml:"score"`
}

type BalloonSpeed struct {
	BalloonStat `yaml:",inline"`
	Rate        float64 `json:"rate" yaml:"rate"`
}

// Summary holds the figures derived from Statistics for display.
type Summary struct {
	MaxScore   int            `json:"maxScore" yaml:"maxScore"`
	HasRenda   bool           `json:"hasRenda" yaml:"hasRenda"`
	Don        int            `json:"don" yaml:"don"`
	Kat        int            `json:"kat" yaml:"kat"`
	DonRatio   float64        `json:"donRatio" yaml:"donRatio"`
	KatRatio   float64        `json:"katRatio" yaml:"katRatio"`
	Density    float64        `json:"density" yaml:"density"`
	RendaTotal float64        `json:"rendaTotal" yaml:"rendaTotal"`
	Balloons   []BalloonSpeed `json:"balloons" yaml:"balloons"`
}

type GraphBin struct {
	Don int `json:"don" yaml:"don"`
	Kat int `json:"kat" yaml:"kat"`
}

type Graph struct {
	Timeframe float64    `json:"timeframe" yaml:"timeframe"`
	Max       int        `json:"max" yaml:"max"`
	Bins      []GraphBin `json:"data" yaml:"data"`
}
