package display

import "testing"

func TestSetPixelBounds(t *testing.T) {
	f := NewFramebuffer()
	f.SetPixel(-1, 0, true)
	f.SetPixel(0, -1, true)
	f.SetPixel(Width, 0, true)
	f.SetPixel(0, Height, true)
	if f.Dirty() {
		t.Fatal("out-of-bounds SetPixel should not mark the buffer dirty")
	}
}

func TestSetPixelAndPresent(t *testing.T) {
	f := NewFramebuffer()
	f.SetPixel(3, 3, true)
	if !f.Pixel(3, 3) {
		t.Fatal("expected pixel set")
	}
	if !f.Dirty() {
		t.Fatal("expected dirty after SetPixel")
	}
	f.Present()
	if f.Dirty() {
		t.Fatal("expected clean after Present")
	}
}

func TestFill(t *testing.T) {
	f := NewFramebuffer()
	f.Fill(0, 0, 4, 4, true)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if !f.Pixel(x, y) {
				t.Fatalf("expected (%d,%d) set", x, y)
			}
		}
	}
	if f.Pixel(4, 0) {
		t.Fatal("fill overran bounds")
	}
}

func TestClear(t *testing.T) {
	f := NewFramebuffer()
	f.Fill(0, 0, 10, 10, true)
	f.Clear()
	if f.Pixel(5, 5) {
		t.Fatal("expected cleared buffer")
	}
}

func TestRenderTerminalDimensions(t *testing.T) {
	f := NewFramebuffer()
	out := RenderTerminal(f)
	if out == "" {
		t.Fatal("expected non-empty terminal rendering")
	}
}
