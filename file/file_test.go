package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

const title = "TITLE:さいたま2000\n"

func TestDecodeUTF8(t *testing.T) {
	text, enc, err := Decode([]byte(title))

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(UTF8, enc)
	assert.Equal(title, text)
}

func TestDecodeUTF8BOM(t *testing.T) {
	text, enc, err := Decode(append([]byte{0xEF, 0xBB, 0xBF}, title...))

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(UTF8, enc)
	assert.Equal(title, text)
}

func TestDecodeUTF16(t *testing.T) {
	encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(title))
	assert.NoError(t, err)

	text, enc, err := Decode(encoded)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(UTF16, enc)
	assert.Equal(title, text)
}

func TestDecodeShiftJIS(t *testing.T) {
	encoded, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte(title))
	assert.NoError(t, err)

	text, enc, err := Decode(encoded)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(ShiftJIS, enc)
	assert.Equal(title, text)
}

func TestReadTJA(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.tja")
	encoded, _ := japanese.ShiftJIS.NewEncoder().Bytes([]byte(title))
	assert.NoError(t, os.WriteFile(path, encoded, 0666))

	text, err := ReadTJA(path)
	assert.NoError(t, err)
	assert.Equal(t, title, text)

	_, err = ReadTJA(filepath.Join(t.TempDir(), "missing.tja"))
	assert.Error(t, err)
}

func TestCreateFileNumMap(t *testing.T) {
	res := CreateFileNumMap([]string{"a.tja", "b.tja"})
	assert.Equal(t, "b.tja", res[1])
	assert.Len(t, res, 2)
}
