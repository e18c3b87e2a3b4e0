package render

import "errors"

// ErrUnknownFormat is returned for output paths or format names that no
// encoder handles.
var ErrUnknownFormat = errors.New("render: unknown output format")
