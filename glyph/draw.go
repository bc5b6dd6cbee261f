package glyph

// Plotter is the minimal surface glyph drawing needs from a display. The
// real Display interface (display.Display) satisfies this implicitly —
// glyph never imports display, keeping the dependency one-directional.
type Plotter interface {
	SetPixel(x, y int, on bool)
}

// Align controls how DrawString positions a pre-measured string relative to
// the given anchor, mirroring the teacher's horizontal alignment flags.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// DrawString draws bs (a sequence of glyph-store bytes, not runes — see
// package doc) at (x, y), honoring spacing and alignment. In normal mode
// each set glyph bit turns its pixel on and unset bits leave the pixel as
// it was; pixels are not flipped, since a Plotter cannot read a pixel back.
// inverted ANDs each glyph's bits against the existing pixels instead: an
// unset bit turns its pixel off, and no pixel is turned on.
func DrawString(p Plotter, s *Store, x, y int, bs []byte, spacing int, align Align, inverted bool) {
	width := StringWidth(s, bs, spacing)
	switch align {
	case AlignRight:
		x -= width
	case AlignCenter:
		x -= width / 2
	}
	cursor := x
	for _, c := range bs {
		img := s.Glyph(c)
		drawGlyph(p, img, cursor, y, inverted)
		cursor += img.Width + spacing
	}
}

func drawGlyph(p Plotter, img Image, x, y int, inverted bool) {
	for dy := 0; dy < img.Height; dy++ {
		for dx := 0; dx < img.Width; dx++ {
			set := img.Pixel(dx, dy)
			if inverted {
				// AND-compose: only ever turns pixels off, never on.
				if !set {
					p.SetPixel(x+dx, y+dy, false)
				}
				continue
			}
			if set {
				p.SetPixel(x+dx, y+dy, true)
			}
		}
	}
}

// DrawStringSmall is the condensed-font counterpart of DrawString.
func DrawStringSmall(p Plotter, s *SmallStore, x, y int, bs []byte, spacing int) {
	cursor := x
	for _, c := range bs {
		img := s.Glyph(c)
		for dy := 0; dy < img.Height; dy++ {
			for dx := 0; dx < img.Width; dx++ {
				if img.Pixel(dx, dy) {
					p.SetPixel(cursor+dx, y+dy, true)
				}
			}
		}
		cursor += img.Width + spacing
	}
}
