package tja

import (
	"regexp"
	"strings"
)

type LineType int

const (
	Unknown LineType = iota
	Header
	Command
	Data
)

type Scope int

const (
	Global Scope = iota
	CourseScope
)

type Line struct {
	Type  LineType
	Scope Scope
	Name  string
	Value string
}

var globalHeaders = map[string]bool{
	"TITLE":     true,
	"SUBTITLE":  true,
	"BPM":       true,
	"WAVE":      true,
	"OFFSET":    true,
	"DEMOSTART": true,
	"GENRE":     true,
}

var courseHeaders = map[string]bool{
	"COURSE":    true,
	"LEVEL":     true,
	"BALLOON":   true,
	"SCOREINIT": true,
	"SCOREDIFF": true,

	"TTROWBEAT": true,
}

var commands = map[string]bool{
	"START":       true,
	"END":         true,
	"GOGOSTART":   true,
	"GOGOEND":     true,
	"MEASURE":     true,
	"SCROLL":      true,
	"BPMCHANGE":   true,
	"DELAY":       true,
	"BRANCHSTART": true,
	"BRANCHEND":   true,
	"SECTION":     true,
	"N":           true,
	"E":           true,
	"M":           true,
	"LEVELHOLD":   true,
	"BMSCROLL":    true,
	"HBSCROLL":    true,
	"BARLINEOFF":  true,
	"BARLINEON":   true,

	"TTBREAK": true,
}

var (
	headerRe  = regexp.MustCompile(`(?i)^([A-Z]+):(.+)`)
	commandRe = regexp.MustCompile(`(?i)^#([A-Z]+)(?:\s+(.+))?`)
	dataRe    = regexp.MustCompile(`^([0-9]*,?)$`)
)

func StripComment(line string) string {
	if i := strings.Index(line, "//"); i != -1 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

// ClassifyLine never fails: anything it does not recognise is Unknown.
func ClassifyLine(line string) Line {
	if m := headerRe.FindStringSubmatch(line); m != nil {
		name := strings.ToUpper(m[1])
		value := strings.TrimSpace(m[2])
		switch {
		case globalHeaders[name]:
			return Line{Type: Header, Scope: Global, Name: name, Value: value}
		case courseHeaders[name]:
			return Line{Type: Header, Scope: CourseScope, Name: name, Value: value}
		}
	} else if m := commandRe.FindStringSubmatch(line); m != nil {
		name := strings.ToUpper(m[1])
		if commands[name] {
			return Line{Type: Command, Name: name, Value: strings.TrimSpace(m[2])}
		}
	} else if m := dataRe.FindStringSubmatch(line); m != nil {
		return Line{Type: Data, Value: m[1]}
	}

	return Line{Type: Unknown, Value: line}
}
