package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// quadrant maps each of the 16 possible 2x2-pixel-block combinations to
// its Unicode block-element rune (bit 0 = top-left, 1 = top-right, 2 =
// bottom-left, 3 = bottom-right), letting a 128x64 Framebuffer render into
// a 64x32 terminal cell grid at full bit fidelity instead of one char per
// pixel.
var quadrant = [16]rune{
	' ', '▘', '▝', '▀',
	'▖', '▌', '▞', '▛',
	'▗', '▚', '▐', '▜',
	'▄', '▙', '▟', '█',
}

// onStyle and offStyle style the rendered block characters, grounded on
// the teacher's Style.Foreground/Background pattern (tui.go) — generalized
// from a full 256-color cell grid to the two-tone LCD look-alike this
// monochrome buffer calls for.
var (
	onStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	offStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0"))
)

// RenderTerminal renders f as a lipgloss-styled string: one terminal
// character per 2x2 pixel block, with no border around the grid (the
// teacher's Buffer.DrawPanel framing, display.go, is kept as reference only
// and not imported: that helper lives in a package not wired into this
// module's dependency graph, see DESIGN.md).
func RenderTerminal(f *Framebuffer) string {
	var b strings.Builder
	for y := 0; y < Height; y += 2 {
		for x := 0; x < Width; x += 2 {
			idx := 0
			if f.Pixel(x, y) {
				idx |= 1
			}
			if f.Pixel(x+1, y) {
				idx |= 2
			}
			if f.Pixel(x, y+1) {
				idx |= 4
			}
			if f.Pixel(x+1, y+1) {
				idx |= 8
			}
			r := quadrant[idx]
			if idx == 0 {
				b.WriteString(offStyle.Render(string(r)))
			} else {
				b.WriteString(onStyle.Render(string(r)))
			}
		}
		if y+2 < Height {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
