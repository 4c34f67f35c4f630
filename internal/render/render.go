// Package render produces the placeholder artifact for a generation.
// Swapping in a real model provider means replacing Renderer with a
// client that honors the same contract: PNG bytes out, nothing else.
package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	defaultWidth  = 768
	defaultHeight = 512
	wrapWidth     = 36
	lineHeight    = 16
)

var (
	background = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	titleInk   = color.RGBA{A: 255}
	bodyInk    = color.RGBA{R: 30, G: 30, B: 30, A: 255}
)

// Renderer draws prompt text onto a neutral canvas.
type Renderer struct {
	width  int
	height int
}

func NewRenderer() *Renderer {
	return &Renderer{width: defaultWidth, height: defaultHeight}
}

// Render returns the PNG-encoded placeholder. These are the bytes the
// manifest hash is computed over, before any metadata embedding.
func (r *Renderer) Render(prompt, styleName string) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	drawLines(img, []string{"DEMO ONLY", styleName}, 20, 30, titleInk)
	drawLines(img, wrap(prompt, wrapWidth), 20, 130, bodyInk)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawLines(img draw.Image, lines []string, x, y int, ink color.Color) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(ink),
		Face: basicfont.Face7x13,
	}
	for i, line := range lines {
		d.Dot = fixed.P(x, y+i*lineHeight)
		d.DrawString(line)
	}
}

// wrap splits text into lines of at most width characters, breaking on
// spaces where possible.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) <= width {
			current += " " + word
			continue
		}
		lines = append(lines, current)
		current = word
	}
	lines = append(lines, current)
	return lines
}
