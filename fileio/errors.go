package fileio

import "errors"

// ErrFileDoesNotExist signals that the requested file does not exist
var ErrFileDoesNotExist = errors.New("file does not exist")

// ErrEmptyAlphabetLine signals that an alphabet source contains an empty line
var ErrEmptyAlphabetLine = errors.New("empty line in alphabet source")

// ErrNilReader signals that a nil reader has been provided
var ErrNilReader = errors.New("nil reader")

// ErrEmptyOutputDirectory signals that an empty output directory has been provided
var ErrEmptyOutputDirectory = errors.New("empty output directory")

// ErrEmptySnapshotName signals that an empty snapshot name has been provided
var ErrEmptySnapshotName = errors.New("empty snapshot name")
