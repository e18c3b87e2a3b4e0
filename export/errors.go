package export

import "errors"

// ErrUnknownFormat is returned for unsupported format names and file
// extensions.
var ErrUnknownFormat = errors.New("export: unknown format")
