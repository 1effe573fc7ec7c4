package storage

import "errors"

var ErrNotFound = errors.New("resource not found")
var ErrConflict = errors.New("resource conflict (e.g., duplicate key)")

// ErrInvalidReference means a foreign key pointed at a row that does not exist.
var ErrInvalidReference = errors.New("referenced resource does not exist")
