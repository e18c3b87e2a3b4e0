package ptable

import "errors"

// ErrNotFound is returned when a symbol or atomic number is not in the table.
var ErrNotFound = errors.New("ptable: element not found")
