package fileio

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-sortbench-go/common"
)

const snapshotFileExtension = ".txt"

type snapshotPersister struct {
	outputDirectory string
}

// NewSnapshotPersister creates a persister writing the sorted words in the provided directory
func NewSnapshotPersister(outputDirectory string) (*snapshotPersister, error) {
	if len(outputDirectory) == 0 {
		return nil, ErrEmptyOutputDirectory
	}

	return &snapshotPersister{
		outputDirectory: outputDirectory,
	}, nil
}

// Persist writes the words of the sequence, one per line, in a file named after the provided name.
// An existing file with the same name is overwritten.
func (sp *snapshotPersister) Persist(name string, sequence common.WordSequence) error {
	if len(name) == 0 {
		return ErrEmptySnapshotName
	}
	if check.IfNil(sequence) {
		return common.ErrNilWordSequence
	}

	err := os.MkdirAll(sp.outputDirectory, os.ModePerm)
	if err != nil {
		return err
	}

	filePath := sp.FilePath(name)
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer func() {
		errClose := file.Close()
		log.LogIfError(errClose, "file", filePath)
	}()

	writer := bufio.NewWriter(file)
	for _, word := range sequence.Words() {
		_, err = writer.WriteString(word)
		if err != nil {
			return err
		}
		err = writer.WriteByte('\n')
		if err != nil {
			return err
		}
	}

	err = writer.Flush()
	if err != nil {
		return err
	}

	log.Debug("sorted words persisted", "file", filePath, "num words", sequence.Len())

	return nil
}

// FilePath returns the path of the file used for the provided snapshot name
func (sp *snapshotPersister) FilePath(name string) string {
	return filepath.Join(sp.outputDirectory, name+snapshotFileExtension)
}

// IsInterfaceNil returns true if there is no value under the interface
func (sp *snapshotPersister) IsInterfaceNil() bool {
	return sp == nil
}
