package constants

// Defaults are the initial values threaded into parsing and timing.
type Defaults struct {
	BPM             float64
	MeasureDividend int
	MeasureDivisor  int
	GraphBins       int
}

func GetDefaults() Defaults {
	return Defaults{
		BPM:             120,
		MeasureDividend: 4,
		MeasureDivisor:  4,
		GraphBins:       100,
	}
}
