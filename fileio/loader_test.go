package fileio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, content string) string {
	filePath := filepath.Join(t.TempDir(), "input.txt")
	err := os.WriteFile(filePath, []byte(content), 0644)
	require.Nil(t, err)

	return filePath
}

func TestParseAlphabet(t *testing.T) {
	t.Parallel()

	t.Run("nil reader should error", func(t *testing.T) {
		t.Parallel()

		ordering, err := ParseAlphabet(nil)
		assert.Nil(t, ordering)
		assert.Equal(t, ErrNilReader, err)
	})
	t.Run("empty line should error", func(t *testing.T) {
		t.Parallel()

		ordering, err := ParseAlphabet(strings.NewReader("b\n\na\n"))
		assert.Nil(t, ordering)
		assert.True(t, errors.Is(err, ErrEmptyAlphabetLine))
		assert.Contains(t, err.Error(), "line 2")
	})
	t.Run("empty source should return an empty ordering", func(t *testing.T) {
		t.Parallel()

		ordering, err := ParseAlphabet(strings.NewReader(""))
		assert.Nil(t, err)
		assert.Equal(t, []rune{}, ordering)
	})
	t.Run("should keep the first character of each line", func(t *testing.T) {
		t.Parallel()

		ordering, err := ParseAlphabet(strings.NewReader("b\r\nayz\nć\nc"))
		assert.Nil(t, err)
		assert.Equal(t, []rune{'b', 'a', 'ć', 'c'}, ordering)
	})
}

func TestParseWordList(t *testing.T) {
	t.Parallel()

	t.Run("nil reader should error", func(t *testing.T) {
		t.Parallel()

		words, err := ParseWordList(nil)
		assert.Nil(t, words)
		assert.Equal(t, ErrNilReader, err)
	})
	t.Run("should keep the lines order", func(t *testing.T) {
		t.Parallel()

		words, err := ParseWordList(strings.NewReader("banana\r\napple\n\ncherry\n"))
		assert.Nil(t, err)
		assert.Equal(t, []string{"banana", "apple", "", "cherry"}, words)
	})
	t.Run("line too long should error", func(t *testing.T) {
		t.Parallel()

		words, err := ParseWordList(strings.NewReader(strings.Repeat("a", maxLineSize+1)))
		assert.Nil(t, words)
		assert.NotNil(t, err)
	})
}

func TestLoadAlphabet(t *testing.T) {
	t.Parallel()

	t.Run("missing file should error", func(t *testing.T) {
		t.Parallel()

		missingFile := filepath.Join(t.TempDir(), "missing.txt")
		ordering, err := LoadAlphabet(missingFile)
		assert.Nil(t, ordering)
		assert.True(t, errors.Is(err, ErrFileDoesNotExist))
		assert.Contains(t, err.Error(), missingFile)
	})
	t.Run("invalid content should error", func(t *testing.T) {
		t.Parallel()

		filePath := writeTestFile(t, "a\n\n")
		ordering, err := LoadAlphabet(filePath)
		assert.Nil(t, ordering)
		assert.True(t, errors.Is(err, ErrEmptyAlphabetLine))
		assert.Contains(t, err.Error(), filePath)
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		ordering, err := LoadAlphabet(writeTestFile(t, "b\na\nc\n"))
		assert.Nil(t, err)
		assert.Equal(t, []rune{'b', 'a', 'c'}, ordering)
	})
}

func TestLoadWordList(t *testing.T) {
	t.Parallel()

	t.Run("missing file should error", func(t *testing.T) {
		t.Parallel()

		words, err := LoadWordList(filepath.Join(t.TempDir(), "missing.txt"))
		assert.Nil(t, words)
		assert.True(t, errors.Is(err, ErrFileDoesNotExist))
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		words, err := LoadWordList(writeTestFile(t, "banana\napple\ncherry\n"))
		assert.Nil(t, err)
		assert.Equal(t, []string{"banana", "apple", "cherry"}, words)
	})
}
