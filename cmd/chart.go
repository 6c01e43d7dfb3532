package cmd

import (
	"encoding/json"
	"io"

	"github.com/jsphweid/tjadex/file"
	"github.com/jsphweid/tjadex/model"
	"github.com/jsphweid/tjadex/tja"
	"github.com/jsphweid/tjadex/util"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func loadChart(path string) (model.Chart, error) {
	text, err := file.ReadTJA(path)
	if err != nil {
		return model.Chart{}, err
	}
	chart := tja.Parse(text)
	logger.Printf("parsed %v: %v courses", path, len(chart.Courses))
	return chart, nil
}

// pickCourse resolves the --course flag. Without one the hardest course in
// the chart is used.
func pickCourse(chart model.Chart, name string) (model.CourseID, error) {
	if name == "" {
		keys := util.GetSortedKeys(chart.Courses)
		if len(keys) == 0 {
			return 0, errors.New("chart has no courses")
		}
		return keys[len(keys)-1], nil
	}

	id, ok := tja.LookupCourse(name)
	if !ok {
		return 0, errors.Errorf("unknown course %q", name)
	}
	if _, ok := chart.Courses[id]; !ok {
		return 0, errors.Errorf("chart has no %v course", id)
	}
	return id, nil
}

func writeFormatted(w io.Writer, format string, v any, text func(io.Writer)) error {
	switch format {
	case formatText:
		text(w)
		return nil
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(v), "encoding json")
	case formatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return errors.Wrap(enc.Encode(v), "encoding yaml")
	}
	return errors.Errorf("unknown format %q", format)
}
