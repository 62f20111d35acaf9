package repository

import "errors"

// ErrNotFound is returned when a key holds no usable record.
var ErrNotFound = errors.New("not found")
