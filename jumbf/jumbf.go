// Package jumbf parses JUMBF (ISO/IEC 19566-5) box headers.
//
// A box starts with a 4-byte big-endian size and a 4-byte type tag. A
// size of 0 means the box extends to the end of the buffer; a size of 1
// means a 64-bit size follows the 8-byte header. Sizes 2 through 7
// cannot hold a header and are rejected. The package reads headers
// only; it does not walk nested boxes.
package jumbf

import (
	"encoding/binary"
	"errors"
)

const (
	// TypeSuperbox is the type tag of the outermost JUMBF container box.
	TypeSuperbox = "jumb"
	// TypeDescription is the type tag of the description box that must
	// lead a superbox's content.
	TypeDescription = "jumd"

	// MinBoxSize is the smallest box: 4-byte size + 4-byte type.
	MinBoxSize = 8
	// ExtendedHeaderSize is the header length when the 64-bit size form
	// is used.
	ExtendedHeaderSize = 16
)

// C2PAManifestStoreUUID identifies a C2PA manifest store inside a
// description box.
var C2PAManifestStoreUUID = [16]byte{
	0x63, 0x32, 0x70, 0x61, 0x00, 0x11, 0x00, 0x10,
	0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71,
}

var (
	ErrShortBox         = errors.New("jumbf: buffer shorter than minimal box header")
	ErrShortExtendedBox = errors.New("jumbf: extended size declared but 64-bit size field missing")
	ErrInvalidBoxSize   = errors.New("jumbf: box size below minimum")
)

// BoxHeader is the decoded leading header of a box.
type BoxHeader struct {
	// Size is the effective byte length of the whole box, header
	// included. For an extends-to-end box it is the buffer length the
	// header was parsed from.
	Size uint64
	// Type is the 4-byte type tag.
	Type [4]byte
	// HeaderLen is 8, or 16 when the extended size form was used.
	HeaderLen int
	// ExtendsToEnd is set when the size field was 0.
	ExtendsToEnd bool
}

// TypeString returns the type tag as a string.
func (h BoxHeader) TypeString() string {
	return string(h.Type[:])
}

// ParseBoxHeader decodes the box header at the start of b.
func ParseBoxHeader(b []byte) (BoxHeader, error) {
	if len(b) < MinBoxSize {
		return BoxHeader{}, ErrShortBox
	}

	var h BoxHeader
	size := binary.BigEndian.Uint32(b[0:4])
	copy(h.Type[:], b[4:8])

	switch {
	case size == 0:
		h.Size = uint64(len(b))
		h.HeaderLen = MinBoxSize
		h.ExtendsToEnd = true
	case size == 1:
		if len(b) < ExtendedHeaderSize {
			return BoxHeader{}, ErrShortExtendedBox
		}
		h.Size = binary.BigEndian.Uint64(b[8:16])
		h.HeaderLen = ExtendedHeaderSize
	case size < MinBoxSize:
		return BoxHeader{}, ErrInvalidBoxSize
	default:
		h.Size = uint64(size)
		h.HeaderLen = MinBoxSize
	}

	return h, nil
}
