package render

import (
	"image"
	"image/color"
	"strconv"

	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/cwbudde/algo-xrf/ptable"
)

// Grid of the main block: groups 1..18 and periods 1..7 with half a cell of
// margin on each side.
const (
	tableColumns = 19
	tableRows    = 8
	boxFraction  = 0.9
)

// DefaultCellSize is the pixel pitch of the periodic-table grid.
const DefaultCellSize = 72

const minCellSize = 32

var (
	boxEdgeColor = drawing.Color{R: 204, G: 204, B: 255, A: 255}
	labelColor   = color.Black
)

// TableOptions controls TableImage.
type TableOptions struct {
	// CellSize is the grid pitch in pixels. Values below 32 select
	// DefaultCellSize.
	CellSize int
	// Width rescales the finished image to this width, keeping the aspect
	// ratio. Zero keeps the native size.
	Width int
}

// TableImage draws the main block of the periodic table with selected
// elements highlighted. Each element gets a box at (group, period) showing
// its atomic number, symbol and name. Lanthanides and actinides are left
// out.
func TableImage(table *ptable.Table, selected []string, opts TableOptions) (*image.RGBA, error) {
	colors, _, err := Colorize(table, selected)
	if err != nil {
		return nil, err
	}

	cell := opts.CellSize
	if cell < minCellSize {
		cell = DefaultCellSize
	}

	img := image.NewRGBA(image.Rect(0, 0, tableColumns*cell, tableRows*cell))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	for i, e := range table.Elements() {
		if !e.Regular() {
			continue
		}
		drawElementBox(img, e, colors[i], cell)
	}

	if opts.Width <= 0 || opts.Width == img.Bounds().Dx() {
		return img, nil
	}
	return scaleToWidth(img, opts.Width), nil
}

func drawElementBox(dst *image.RGBA, e ptable.Element, fill color.Color, cell int) {
	cx, cy := e.Group*cell, e.Period*cell
	half := int(boxFraction*float64(cell)) / 2
	box := image.Rect(cx-half, cy-half, cx+half, cy+half)

	draw.Draw(dst, box, image.NewUniform(fill), image.Point{}, draw.Over)
	strokeRect(dst, box, boxEdgeColor)

	face := basicfont.Face7x13
	ascent := face.Metrics().Ascent.Ceil()

	drawCentered(dst, face, strconv.Itoa(e.AtomicNumber), cx, box.Min.Y+ascent+2)
	drawCentered(dst, face, e.Symbol, cx, cy+ascent/2)
	drawCentered(dst, face, fitText(face, e.Name, box.Dx()-4), cx, box.Max.Y-4)
}

func strokeRect(dst *image.RGBA, r image.Rectangle, c color.Color) {
	src := image.NewUniform(c)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1),
		image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y),
		image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, edge := range edges {
		draw.Draw(dst, edge, src, image.Point{}, draw.Over)
	}
}

// drawCentered draws s with its baseline at y, horizontally centred on x.
func drawCentered(dst *image.RGBA, face font.Face, s string, x, y int) {
	if s == "" {
		return
	}
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(labelColor), Face: face}
	w := d.MeasureString(s).Ceil()
	d.Dot = fixed.Point26_6{X: fixed.I(x - w/2), Y: fixed.I(y)}
	d.DrawString(s)
}

// fitText shortens s until it fits in width pixels.
func fitText(face font.Face, s string, width int) string {
	runes := []rune(s)
	for len(runes) > 0 && font.MeasureString(face, string(runes)).Ceil() > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}

func scaleToWidth(src *image.RGBA, width int) *image.RGBA {
	b := src.Bounds()
	height := max(1, b.Dy()*width/b.Dx())
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
