package fileio

import (
	"bufio"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/multiversx/mx-chain-core-go/core"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("fileio")

const maxLineSize = 1024 * 1024

// LoadAlphabet reads the characters ordering from the provided file. See ParseAlphabet for the format.
func LoadAlphabet(filePath string) ([]rune, error) {
	ordering, err := loadFile(filePath, ParseAlphabet)
	if err != nil {
		return nil, err
	}

	log.Debug("alphabet loaded", "file", filePath, "num characters", len(ordering))

	return ordering, nil
}

// LoadWordList reads the words from the provided file. See ParseWordList for the format.
func LoadWordList(filePath string) ([]string, error) {
	words, err := loadFile(filePath, ParseWordList)
	if err != nil {
		return nil, err
	}

	log.Debug("word list loaded", "file", filePath, "num words", len(words))

	return words, nil
}

// ParseAlphabet reads one character per line, the line index being the rank of the character.
// Only the first character of a line is used.
func ParseAlphabet(reader io.Reader) ([]rune, error) {
	ordering := make([]rune, 0)
	err := scanLines(reader, func(lineIndex int, line string) error {
		if len(line) == 0 {
			return fmt.Errorf("%w at line %d", ErrEmptyAlphabetLine, lineIndex+1)
		}

		c, _ := utf8.DecodeRuneInString(line)
		ordering = append(ordering, c)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return ordering, nil
}

// ParseWordList reads one word per line, keeping the order of the lines
func ParseWordList(reader io.Reader) ([]string, error) {
	words := make([]string, 0)
	err := scanLines(reader, func(_ int, line string) error {
		words = append(words, line)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return words, nil
}

func scanLines(reader io.Reader, handler func(lineIndex int, line string) error) error {
	if reader == nil {
		return ErrNilReader
	}

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	lineIndex := 0
	for scanner.Scan() {
		err := handler(lineIndex, scanner.Text())
		if err != nil {
			return err
		}
		lineIndex++
	}

	return scanner.Err()
}

func loadFile[T any](filePath string, parser func(reader io.Reader) (T, error)) (T, error) {
	var empty T
	if !core.FileExists(filePath) {
		return empty, fmt.Errorf("%w, file %s", ErrFileDoesNotExist, filePath)
	}

	file, err := core.OpenFile(filePath)
	if err != nil {
		return empty, err
	}
	defer func() {
		errClose := file.Close()
		log.LogIfError(errClose, "file", filePath)
	}()

	result, err := parser(file)
	if err != nil {
		return empty, fmt.Errorf("%w, file %s", err, filePath)
	}

	return result, nil
}
