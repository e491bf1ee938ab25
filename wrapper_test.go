package c2patext

import (
	"bytes"
	"encoding/binary"
	"testing"
	"unicode/utf8"

	"github.com/encypherai/c2pa-text/internal/wire"
)

func TestByteSelectorBijection(t *testing.T) {
	seen := make(map[rune]bool, 256)
	for i := 0; i < 256; i++ {
		b := byte(i)
		r := byteToSelector(b)

		if b <= 15 {
			if r < vsStart || r > vsEnd {
				t.Fatalf("byte %d mapped to %U, outside low range", b, r)
			}
		} else {
			if r < vsSupStart || r > vsSupEnd {
				t.Fatalf("byte %d mapped to %U, outside high range", b, r)
			}
		}
		if !utf8.ValidRune(r) {
			t.Fatalf("byte %d mapped to invalid rune %U", b, r)
		}
		if seen[r] {
			t.Fatalf("byte %d mapped to already-used rune %U", b, r)
		}
		seen[r] = true

		got, ok := selectorToByte(r)
		if !ok || got != b {
			t.Fatalf("round trip of byte %d: got %d, ok=%v", b, got, ok)
		}
	}
}

func TestSelectorToByteRejectsOutsideRanges(t *testing.T) {
	outside := []rune{'a', ' ', Marker, vsStart - 1, vsEnd + 1, vsSupStart - 1, vsSupEnd + 1, 0x10FFFF}
	for _, r := range outside {
		if b, ok := selectorToByte(r); ok {
			t.Fatalf("rune %U decoded to byte %d, want rejection", r, b)
		}
	}
}

func TestEncodeWrapperLayout(t *testing.T) {
	payload := []byte{0x00, 0x10, 0xFF}
	runes := []rune(EncodeWrapper(payload))

	if len(runes) != 1+HeaderSize+len(payload) {
		t.Fatalf("wrapper has %d codepoints, want %d", len(runes), 1+HeaderSize+len(payload))
	}
	if runes[0] != Marker {
		t.Fatalf("first codepoint = %U, want marker", runes[0])
	}

	raw := make([]byte, 0, HeaderSize+len(payload))
	for _, r := range runes[1:] {
		b, ok := selectorToByte(r)
		if !ok {
			t.Fatalf("codepoint %U does not decode", r)
		}
		raw = append(raw, b)
	}

	if !bytes.Equal(raw[0:8], wire.Magic[:]) {
		t.Fatalf("magic = %x", raw[0:8])
	}
	if raw[8] != Version {
		t.Fatalf("version byte = %d", raw[8])
	}
	if got := binary.BigEndian.Uint32(raw[9:13]); got != uint32(len(payload)) {
		t.Fatalf("declared length = %d, want %d", got, len(payload))
	}
	if !bytes.Equal(raw[HeaderSize:], payload) {
		t.Fatalf("payload bytes = %x", raw[HeaderSize:])
	}
}

func TestEncodeWrapperEmptyPayload(t *testing.T) {
	runes := []rune(EncodeWrapper(nil))
	if len(runes) != 1+HeaderSize {
		t.Fatalf("empty wrapper has %d codepoints, want %d", len(runes), 1+HeaderSize)
	}
}

func TestEncodeWrapperDeterministic(t *testing.T) {
	payload := []byte("same input")
	if EncodeWrapper(payload) != EncodeWrapper(payload) {
		t.Fatalf("encoding is not deterministic")
	}
}
