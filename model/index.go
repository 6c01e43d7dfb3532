package model

type FileNum = uint32
type FileNumToTJAPath = map[FileNum]string

// IndexEntry is one analysed course of one indexed file.
type IndexEntry struct {
	FileNum    FileNum
	Path       string
	Title      string
	Course     CourseID
	Level      int
	TotalCombo int
	Length     float64
	MaxScore   int
	Density    float64
}
