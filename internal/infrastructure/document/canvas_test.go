package document

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"
)

type op struct {
	Kind string
	Page int
	X, Y float64
	Text string
}

// recordingCanvas keeps every drawing call for layout assertions.
type recordingCanvas struct {
	ops      []op
	page     int
	imageErr error
	outErr   error
}

func (r *recordingCanvas) PageSize() (float64, float64) { return 210, 297 }

func (r *recordingCanvas) AddPage() {
	r.page++
	r.ops = append(r.ops, op{Kind: "page", Page: r.page})
}

func (r *recordingCanvas) SetFont(bool, float64) {}

func (r *recordingCanvas) SetTextColor(Color) {}

func (r *recordingCanvas) FillRect(x, y, _, _ float64, _ Color) {
	r.ops = append(r.ops, op{Kind: "rect", Page: r.page, X: x, Y: y})
}

func (r *recordingCanvas) Line(x1, y1, _, _ float64) {
	r.ops = append(r.ops, op{Kind: "line", Page: r.page, X: x1, Y: y1})
}

func (r *recordingCanvas) Text(x, y float64, s string, _ Align) {
	r.ops = append(r.ops, op{Kind: "text", Page: r.page, X: x, Y: y, Text: s})
}

// SplitText wraps on words assuming 2mm per character.
func (r *recordingCanvas) SplitText(s string, w float64) []string {
	limit := int(w / 2)
	var lines []string
	cur := ""
	for _, word := range strings.Fields(s) {
		switch {
		case cur == "":
			cur = word
		case len([]rune(cur))+1+len([]rune(word)) > limit:
			lines = append(lines, cur)
			cur = word
		default:
			cur += " " + word
		}
	}
	if cur != "" || len(lines) == 0 {
		lines = append(lines, cur)
	}
	return lines
}

func (r *recordingCanvas) Image(name string, _ []byte, x, y, _, _ float64) error {
	if r.imageErr != nil {
		return r.imageErr
	}
	r.ops = append(r.ops, op{Kind: "image", Page: r.page, X: x, Y: y, Text: name})
	return nil
}

func (r *recordingCanvas) Output(w io.Writer) error {
	if r.outErr != nil {
		return r.outErr
	}
	_, err := io.WriteString(w, "%PDF-recorded")
	return err
}

func (r *recordingCanvas) texts() []string {
	var out []string
	for _, o := range r.ops {
		if o.Kind == "text" {
			out = append(out, o.Text)
		}
	}
	return out
}

func (r *recordingCanvas) kind(kind string) []op {
	var out []op
	for _, o := range r.ops {
		if o.Kind == kind {
			out = append(out, o)
		}
	}
	return out
}

func (r *recordingCanvas) indexOf(text string) int {
	for i, s := range r.texts() {
		if s == text {
			return i
		}
	}
	return -1
}

func pngDataURL(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}
