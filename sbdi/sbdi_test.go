package sbdi

import (
	"bytes"
	"testing"
)

func TestFrameRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	in := Message{Kind: SetMode, Param: 0x1234}
	if err := w.WriteFrame(in); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}

	r := NewReader(&buf)
	out, err := r.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if out != in {
		t.Fatalf("got %+v, want %+v", out, in)
	}
}

func TestParityMismatch(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteByte(0x55); err != nil {
		t.Fatalf("WriteByte: %v", err)
	}
	corrupted := buf.Bytes()
	corrupted[1] ^= 1 // flip the parity bit

	r := NewReader(bytes.NewReader(corrupted))
	if _, err := r.ReadByte(); err != ErrParity {
		t.Fatalf("got err %v, want ErrParity", err)
	}
}
