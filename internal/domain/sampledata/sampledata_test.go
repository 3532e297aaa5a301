package sampledata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := Default()

	for _, c := range Categories {
		assert.Positive(t, s.Len(c), "category %s", c)
	}
	assert.Equal(t, 8, s.Len(Names))
	assert.Equal(t, 5, s.Len(Domains))

	first, err := s.At(Names, 0)
	require.NoError(t, err)
	assert.Equal(t, "John Smith", first)

	assert.Equal(t, "Lorem ipsum dolor", s.Words(0, 3))
	assert.Positive(t, s.WordCount())
}

func TestSet_Words_Wraps(t *testing.T) {
	s := New(nil, "a b c")

	assert.Equal(t, "c a b c a", s.Words(2, 5))
	assert.Equal(t, "", s.Words(0, 0))
}

func TestSet_At_Errors(t *testing.T) {
	s := Default()

	_, err := s.At(Names, 100)
	assert.Error(t, err)

	_, err = s.At(Category("unknown"), 0)
	assert.ErrorIs(t, err, ErrEmptyCategory)
}

func TestNew_CopiesInput(t *testing.T) {
	names := []string{"Cher"}
	s := New(map[Category][]string{Names: names}, "")

	names[0] = "Changed"

	got, err := s.At(Names, 0)
	require.NoError(t, err)
	assert.Equal(t, "Cher", got)
	assert.Equal(t, Default().Len(Cities), s.Len(Cities), "missing categories fall back to built-in tables")
	assert.Equal(t, Default().WordCount(), s.WordCount())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	content := `
names:
  - Ada Lovelace
  - Alan Turing
domains:
  - acme.test
text: one two three four
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 2, s.Len(Names))
	d, err := s.At(Domains, 0)
	require.NoError(t, err)
	assert.Equal(t, "acme.test", d)
	assert.Equal(t, Default().Len(States), s.Len(States))
	assert.Equal(t, 4, s.WordCount())
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("names: [unterminated"), 0o644))
	_, err = LoadFile(path)
	assert.Error(t, err)
}
