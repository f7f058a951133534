package asset

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"
	"unicode/utf8"
)

// Transparent marks a sprite cell the renderer skips
const Transparent = ' '

// luminanceRamp maps opaque pixel brightness to glyphs, dark to light
var luminanceRamp = []rune("@%#*+=-:.")

// Sprite is a decoded glyph grid, row 0 at the top
type Sprite struct {
	Width  int
	Height int
	Cells  []rune
}

// At returns the glyph at column x, row y; Transparent when out of range
func (s *Sprite) At(x, y int) rune {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return Transparent
	}
	return s.Cells[y*s.Width+x]
}

// FlipY returns a vertically mirrored copy
func (s *Sprite) FlipY() *Sprite {
	out := &Sprite{
		Width:  s.Width,
		Height: s.Height,
		Cells:  make([]rune, len(s.Cells)),
	}
	for y := 0; y < s.Height; y++ {
		copy(out.Cells[(s.Height-1-y)*s.Width:(s.Height-y)*s.Width], s.Cells[y*s.Width:(y+1)*s.Width])
	}
	return out
}

// DecodeText reads text art, one row per line, padding short rows with Transparent
func DecodeText(r io.Reader) (*Sprite, error) {
	var lines []string
	width := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if n := utf8.RuneCountInString(line); n > width {
			width = n
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// Trailing blank lines are editor noise, not sprite rows
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 || width == 0 {
		return nil, errors.New("empty sprite")
	}

	s := &Sprite{
		Width:  width,
		Height: len(lines),
		Cells:  make([]rune, width*len(lines)),
	}
	for y, line := range lines {
		x := 0
		for _, r := range line {
			s.Cells[y*width+x] = r
			x++
		}
		for ; x < width; x++ {
			s.Cells[y*width+x] = Transparent
		}
	}
	return s, nil
}

// DecodePNG converts an image to glyphs, one pixel per cell
// Pixels below half alpha become Transparent; the rest pick a glyph by luminance
func DecodePNG(r io.Reader) (*Sprite, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, err
	}
	return FromImage(img)
}

// FromImage converts any decoded image to a sprite
func FromImage(img image.Image) (*Sprite, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("empty image %dx%d", w, h)
	}

	s := &Sprite{
		Width:  w,
		Height: h,
		Cells:  make([]rune, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cr, cg, cb, ca := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if ca < 0x8000 {
				s.Cells[y*w+x] = Transparent
				continue
			}
			// Rec. 601 luma on 16-bit channels
			lum := (299*cr + 587*cg + 114*cb) / 1000
			idx := int(lum) * len(luminanceRamp) / 0x10000
			if idx >= len(luminanceRamp) {
				idx = len(luminanceRamp) - 1
			}
			s.Cells[y*w+x] = luminanceRamp[idx]
		}
	}
	return s, nil
}
