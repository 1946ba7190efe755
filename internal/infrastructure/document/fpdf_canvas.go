package document

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
)

const fontFamily = "Helvetica"

// FPDFCanvas draws on an A4 portrait fpdf document using the core Helvetica font.
type FPDFCanvas struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

var _ Canvas = (*FPDFCanvas)(nil)

func NewFPDFCanvas(title string) *FPDFCanvas {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetTitle(title, true)
	pdf.SetCreator("ponto_eletronica", true)
	pdf.SetFont(fontFamily, "", 10)
	return &FPDFCanvas{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (c *FPDFCanvas) PageSize() (float64, float64) {
	return c.pdf.GetPageSize()
}

func (c *FPDFCanvas) AddPage() {
	c.pdf.AddPage()
}

func (c *FPDFCanvas) SetFont(bold bool, size float64) {
	style := ""
	if bold {
		style = "B"
	}
	c.pdf.SetFont(fontFamily, style, size)
}

func (c *FPDFCanvas) SetTextColor(col Color) {
	c.pdf.SetTextColor(col.R, col.G, col.B)
}

func (c *FPDFCanvas) FillRect(x, y, w, h float64, col Color) {
	c.pdf.SetFillColor(col.R, col.G, col.B)
	c.pdf.Rect(x, y, w, h, "F")
}

func (c *FPDFCanvas) Line(x1, y1, x2, y2 float64) {
	c.pdf.Line(x1, y1, x2, y2)
}

func (c *FPDFCanvas) Text(x, y float64, s string, align Align) {
	s = c.tr(latin1(s))
	switch align {
	case AlignCenter:
		x -= c.pdf.GetStringWidth(s) / 2
	case AlignRight:
		x -= c.pdf.GetStringWidth(s)
	}
	c.pdf.Text(x, y, s)
}

func (c *FPDFCanvas) SplitText(s string, w float64) []string {
	var lines []string
	for _, para := range strings.Split(latin1(s), "\n") {
		if para == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, c.pdf.SplitText(para, w)...)
	}
	return lines
}

func (c *FPDFCanvas) Image(name string, jpeg []byte, x, y, w, h float64) error {
	opts := fpdf.ImageOptions{ImageType: "JPG"}
	c.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(jpeg))
	if !c.pdf.Ok() {
		err := c.pdf.Error()
		c.pdf.ClearError()
		return fmt.Errorf("register image %s: %w", name, err)
	}
	c.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	if !c.pdf.Ok() {
		err := c.pdf.Error()
		c.pdf.ClearError()
		return fmt.Errorf("draw image %s: %w", name, err)
	}
	return nil
}

func (c *FPDFCanvas) Output(w io.Writer) error {
	return c.pdf.Output(w)
}

// latin1 replaces characters the core fonts cannot encode.
func latin1(s string) string {
	return strings.Map(func(r rune) rune {
		if r > 0xFF {
			return '?'
		}
		return r
	}, s)
}
