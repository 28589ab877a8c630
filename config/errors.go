package config

import "errors"

var errNilConfig = errors.New("nil benchmark config")

var errNegativeTotalWordsToSort = errors.New("negative TotalWordsToSort value")

var errNoSortersConfigured = errors.New("no sorters configured")

var errInvalidSorterName = errors.New("invalid sorter name")
