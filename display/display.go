// Package display provides the pixel-level surface the expression core
// treats as an external collaborator (§1 "Out of scope"): a Display
// interface with set_pixel/fill/draw_line/draw_image/draw_string/clear/
// present, plus a 128x64 1-bit Framebuffer implementation and a
// lipgloss-rendered terminal adapter. The core never imports this
// package's terminal half; it only ever sees the Display interface.
package display

import "github.com/nspire-go/neda/glyph"

// Width and Height are the fixed dimensions of the calculator's 1-bit
// back-buffer (§6 "Display bus").
const (
	Width  = 128
	Height = 64
)

// Display is the pixel surface the core draws into. The core never
// touches RS/RW/E control lines directly (§6); it writes into the
// back-buffer and calls Present to push a frame.
type Display interface {
	glyph.Plotter
	Fill(x, y, w, h int, on bool)
	DrawLine(x0, y0, x1, y1 int)
	DrawImage(x, y int, img glyph.Image, inverted bool)
	DrawString(x, y int, bs []byte, spacing int, align glyph.Align, inverted bool)
	Clear()
	Present()
}

// Framebuffer is a 128x64 1-bit back-buffer, bit-packed row-major the same
// way glyph.Image is, grounded on the teacher's Buffer type (buffer.go) —
// generalized from a Cell grid of runes+Style to a single bitplane, and
// from the teacher's row-level dirty tracking to a single "dirty since
// last Present" flag, since a monochrome LCD has no partial-redraw bus
// concept worth modeling here.
type Framebuffer struct {
	bits  []byte // row-major, (Width+7)/8 bytes per row
	dirty bool
}

// NewFramebuffer returns a cleared 128x64 back-buffer.
func NewFramebuffer() *Framebuffer {
	return &Framebuffer{bits: make([]byte, rowBytes()*Height)}
}

func rowBytes() int { return (Width + 7) / 8 }

// SetPixel implements glyph.Plotter and Display.
func (f *Framebuffer) SetPixel(x, y int, on bool) {
	if x < 0 || y < 0 || x >= Width || y >= Height {
		return
	}
	idx := y*rowBytes() + x/8
	mask := byte(0x80 >> uint(x%8))
	if on {
		f.bits[idx] |= mask
	} else {
		f.bits[idx] &^= mask
	}
	f.dirty = true
}

// Pixel reports whether (x, y) is set.
func (f *Framebuffer) Pixel(x, y int) bool {
	if x < 0 || y < 0 || x >= Width || y >= Height {
		return false
	}
	idx := y*rowBytes() + x/8
	return f.bits[idx]&(0x80>>uint(x%8)) != 0
}

// Fill sets or clears every pixel in the rectangle [x,x+w) x [y,y+h).
func (f *Framebuffer) Fill(x, y, w, h int, on bool) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			f.SetPixel(x+dx, y+dy, on)
		}
	}
}

// DrawLine draws a line from (x0,y0) to (x1,y1) via Bresenham's algorithm.
func (f *Framebuffer) DrawLine(x0, y0, x1, y1 int) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	err := dx + dy
	for {
		f.SetPixel(x0, y0, true)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawImage blits img's bits at (x, y), setting the pixel of each set bit
// (ORing) or ANDing them against the existing buffer when inverted, mirroring
// glyph.DrawString's compositing rule (§4.5).
func (f *Framebuffer) DrawImage(x, y int, img glyph.Image, inverted bool) {
	for dy := 0; dy < img.Height; dy++ {
		for dx := 0; dx < img.Width; dx++ {
			set := img.Pixel(dx, dy)
			if inverted {
				if !set {
					f.SetPixel(x+dx, y+dy, false)
				}
				continue
			}
			if set {
				f.SetPixel(x+dx, y+dy, true)
			}
		}
	}
}

// DrawString draws a glyph-store string at (x, y) via glyph.DrawString.
func (f *Framebuffer) DrawString(x, y int, bs []byte, spacing int, align glyph.Align, inverted bool) {
	glyph.DrawString(f, glyph.NewStore(), x, y, bs, spacing, align, inverted)
}

// Clear blanks the whole buffer.
func (f *Framebuffer) Clear() {
	for i := range f.bits {
		f.bits[i] = 0
	}
	f.dirty = true
}

// Present marks the buffer as flushed. On the real hardware this pushes
// the frame over the parallel LCD bus (§5 "only present() is slow enough
// to matter"); here it just clears the dirty flag for Dirty's callers
// (e.g. the terminal adapter, which only re-renders on a dirty frame).
func (f *Framebuffer) Present() { f.dirty = false }

// Dirty reports whether SetPixel has been called since the last Present.
func (f *Framebuffer) Dirty() bool { return f.dirty }

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
