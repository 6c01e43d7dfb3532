package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsphweid/tjadex/model"
	"github.com/jsphweid/tjadex/tja"
	"github.com/stretchr/testify/assert"
)

func TestPickCourse(t *testing.T) {
	chart := tja.Parse(serveTJA)

	id, err := pickCourse(chart, "")
	assert.NoError(t, err)
	assert.Equal(t, model.Oni, id)

	id, err = pickCourse(chart, "2")
	assert.NoError(t, err)
	assert.Equal(t, model.Hard, id)

	_, err = pickCourse(chart, "easy")
	assert.Error(t, err)

	_, err = pickCourse(model.Chart{}, "")
	assert.Error(t, err)
}

func TestWriteFormatted(t *testing.T) {
	v := model.GraphBin{Don: 2, Kat: 1}
	text := func(w io.Writer) {}

	var buf bytes.Buffer
	assert.NoError(t, writeFormatted(&buf, formatJSON, v, text))
	assert.JSONEq(t, `{"don": 2, "kat": 1}`, buf.String())

	buf.Reset()
	assert.NoError(t, writeFormatted(&buf, formatYAML, v, text))
	assert.Equal(t, "don: 2\nkat: 1\n", buf.String())

	assert.Error(t, writeFormatted(&buf, "xml", v, text))
}

func TestReport(t *testing.T) {
	entries := []model.IndexEntry{
		{FileNum: 0, Title: "Slow", Course: model.Easy, Level: 2, TotalCombo: 1000, Length: 60, MaxScore: 300000, Density: 1},
		{FileNum: 0, Title: "Slow", Course: model.Oni, Level: 9, TotalCombo: 2000, Length: 60, MaxScore: 900000, Density: 5},
		{FileNum: 1, Title: "Fast", Course: model.Oni, Level: 10, TotalCombo: 1500, Length: 30, MaxScore: 1200000, Density: 8},
	}

	var buf bytes.Buffer
	report(&buf, entries, 2)
	out := buf.String()

	assert := assert.New(t)
	assert.Contains(out, "files: 2\n")
	assert.Contains(out, "courses: 3\n")
	assert.Contains(out, "total notes: 4,500\n")
	assert.Contains(out, "average max score: 800,000\n")
	assert.Less(strings.Index(out, "Fast"), strings.Index(out, "Slow"))
	assert.NotContains(out, "1.000 notes/s")
}

func TestAnalyseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.tja")
	assert.NoError(t, os.WriteFile(path, []byte(serveTJA), 0666))

	var buf bytes.Buffer
	assert.NoError(t, analyseFile(&buf, path, "oni", formatJSON))

	var res model.AnalysisResponse
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	assert.Equal(t, 4, res.Statistics.TotalCombo)

	buf.Reset()
	assert.NoError(t, analyseFile(&buf, path, "", formatText))
	assert.Contains(t, buf.String(), "Total combo: 4\n")

	assert.Error(t, analyseFile(&buf, path, "hard", formatText))
}
