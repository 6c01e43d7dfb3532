package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/tjadex/model"
	"github.com/stretchr/testify/assert"
)

func TestGatherAllTJAPaths(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0777))
	for _, name := range []string{"a.tja", "sub/b.TJA", "c.ogg"} {
		assert.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0666))
	}

	paths, err := GatherAllTJAPaths(dir, 0)
	assert.NoError(t, err)
	assert.Len(t, paths, 2)

	paths, err = GatherAllTJAPaths(dir, 1)
	assert.NoError(t, err)
	assert.Len(t, paths, 1)

	_, err = GatherAllTJAPaths(filepath.Join(dir, "missing"), 0)
	assert.Error(t, err)
}

func TestBinaryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.dat")
	entries := []model.IndexEntry{
		{FileNum: 0, Path: "a.tja", Title: "A", Course: model.Oni, Level: 8, TotalCombo: 500},
	}
	assert.NoError(t, CreateBinary(path, entries))

	res, err := ReadBinary[[]model.IndexEntry](path)
	assert.NoError(t, err)
	assert.Equal(t, entries, res)

	_, err = ReadBinary[[]model.IndexEntry](filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestGetSortedKeys(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, GetSortedKeys(map[int]bool{3: true, 1: true, 2: false}))
}

func TestMaxAndSum(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(3, Max(1, 3))
	assert.Equal(2.5, Max(2.5, -1))
	assert.Equal(6, Sum([]int{1, 2, 3}))
	assert.Equal(0.0, Sum([]float64{}))
}

func TestChunk(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([][]int{{1, 2}, {3, 4}, {5}}, Chunk([]int{1, 2, 3, 4, 5}, 2))
	assert.Equal([][]int{{1, 2}}, Chunk([]int{1, 2}, 100))
	assert.Empty(Chunk([]int{}, 3))
}
