package sorters

import "errors"

// ErrUnknownSorterType signals that the provided sorter type is not supported
var ErrUnknownSorterType = errors.New("unknown sorter type")

// ErrNoSorterTypes signals that an empty list of sorter types has been provided
var ErrNoSorterTypes = errors.New("no sorter types provided")
