package document

import "io"

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Color is an RGB triple.
type Color struct{ R, G, B int }

var (
	colorBrand = Color{249, 115, 22}
	colorWhite = Color{255, 255, 255}
	colorInk   = Color{30, 41, 59}
	colorMuted = Color{100, 116, 139}
)

// Canvas is the drawing surface of the generator. Coordinates are millimetres
// from the top-left corner of the current page; y is the text baseline.
type Canvas interface {
	PageSize() (w, h float64)
	AddPage()
	SetFont(bold bool, size float64)
	SetTextColor(c Color)
	FillRect(x, y, w, h float64, c Color)
	Line(x1, y1, x2, y2 float64)
	Text(x, y float64, s string, align Align)
	// SplitText wraps s into lines no wider than w with the current font.
	SplitText(s string, w float64) []string
	// Image draws a JPEG. An error leaves the canvas usable.
	Image(name string, jpeg []byte, x, y, w, h float64) error
	Output(w io.Writer) error
}
