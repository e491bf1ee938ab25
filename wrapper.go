package c2patext

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/encypherai/c2pa-text/internal/wire"
)

const (
	// Marker is the zero-width no-break space that anchors a wrapper in
	// text.
	Marker = '\uFEFF'

	// Version is the wrapper format version this package produces and
	// accepts.
	Version = wire.Version

	// HeaderSize is the pre-encoding wrapper header length in bytes.
	HeaderSize = wire.HeaderSize
)

// Variation selector ranges used as the byte carrier. VS1-VS16 hold
// byte values 0-15, VS17-VS256 (the supplement plane) hold 16-255.
const (
	vsStart    = 0xFE00
	vsEnd      = 0xFE0F
	vsSupStart = 0xE0100
	vsSupEnd   = 0xE01EF
)

// byteToSelector maps one byte onto its carrier codepoint. Total over
// all byte values; never produces a surrogate.
func byteToSelector(b byte) rune {
	if b <= 15 {
		return rune(vsStart + int(b))
	}
	return rune(vsSupStart + int(b) - 16)
}

// selectorToByte is the arithmetic inverse of byteToSelector. The
// second return is false when r is not a carrier codepoint, which ends
// a wrapper candidate during scanning.
func selectorToByte(r rune) (byte, bool) {
	if r >= vsStart && r <= vsEnd {
		return byte(r - vsStart), true
	}
	if r >= vsSupStart && r <= vsSupEnd {
		return byte(r-vsSupStart) + 16, true
	}
	return 0, false
}

// EncodeWrapper encodes manifest bytes into an invisible wrapper
// string: the marker, the 13 header codepoints, then one codepoint per
// payload byte. Deterministic for a given input.
func EncodeWrapper(manifestBytes []byte) string {
	raw := wire.AppendHeader(make([]byte, 0, wire.HeaderSize+len(manifestBytes)), uint32(len(manifestBytes)))
	raw = append(raw, manifestBytes...)

	var sb strings.Builder
	sb.Grow(3 + 4*len(raw)) // marker is 3 UTF-8 bytes, each selector at most 4
	sb.WriteRune(Marker)
	for _, b := range raw {
		sb.WriteRune(byteToSelector(b))
	}
	return sb.String()
}

// EmbedManifest embeds a manifest into host text. The host text is
// NFC-normalized first and the wrapper appended after, never the other
// way round: normalizing the combined result could coalesce or reorder
// the carrier codepoints.
func EmbedManifest(text string, manifestBytes []byte) string {
	return norm.NFC.String(text) + EncodeWrapper(manifestBytes)
}
