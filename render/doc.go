// Package render draws periodic tables and XRF spectra.
//
// Charts are built as [chart.Chart] values so callers can compose them
// before rendering; the periodic table is rasterised directly into an
// [image.RGBA]. [SaveChart] and [SaveImage] pick the output encoding from the
// file extension.
package render
