package file

import (
	"bytes"
	"os"
	"unicode/utf8"

	"github.com/jsphweid/tjadex/model"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

const (
	UTF8     = "UTF-8"
	UTF16    = "UTF-16"
	ShiftJIS = "Shift_JIS"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func CreateFileNumMap(paths []string) model.FileNumToTJAPath {
	res := make(model.FileNumToTJAPath)
	for i, v := range paths {
		res[uint32(i)] = v
	}
	return res
}

// Decode guesses the charset of a TJA file. Files without a BOM that are not
// valid UTF-8 are read as Shift_JIS, which most charts in the wild use.
func Decode(b []byte) (string, string, error) {
	switch {
	case bytes.HasPrefix(b, utf8BOM):
		return string(b[len(utf8BOM):]), UTF8, nil
	case bytes.HasPrefix(b, []byte{0xFF, 0xFE}), bytes.HasPrefix(b, []byte{0xFE, 0xFF}):
		res, err := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder().Bytes(b)
		if err != nil {
			return "", UTF16, errors.Wrap(err, "decoding UTF-16")
		}
		return string(res), UTF16, nil
	case utf8.Valid(b):
		return string(b), UTF8, nil
	}

	res, err := japanese.ShiftJIS.NewDecoder().Bytes(b)
	if err != nil {
		return "", ShiftJIS, errors.Wrap(err, "decoding Shift_JIS")
	}
	return string(res), ShiftJIS, nil
}

func ReadTJA(path string) (string, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading %v", path)
	}
	text, _, err := Decode(dat)
	if err != nil {
		return "", errors.Wrapf(err, "decoding %v", path)
	}
	return text, nil
}
