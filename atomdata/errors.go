package atomdata

import "errors"

// ErrNoData is returned by [Backend.Edges] for elements without tabulated
// X-ray data.
var ErrNoData = errors.New("atomdata: no x-ray data for element")
