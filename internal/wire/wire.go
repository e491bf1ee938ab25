package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

// Wrapper byte header: magic(8) | version(1) | payloadLen(u32 be).
// This is the pre-encoding layout; on the text side every byte becomes
// one variation selector.
const (
	Version    byte = 1
	HeaderSize      = 13
)

var Magic = [...]byte{'C', '2', 'P', 'A', 'T', 'X', 'T', 0}

var (
	ErrShortHeader = errors.New("c2patext: header shorter than 13 bytes")
	ErrBadMagic    = errors.New("c2patext: invalid magic bytes")
	ErrBadVersion  = errors.New("c2patext: unsupported wrapper version")
)

// Header is the decoded fixed wrapper header.
type Header struct {
	Version    byte
	PayloadLen uint32
}

func hasMagic(b []byte) bool {
	return len(b) >= 8 && bytes.Equal(b[:8], Magic[:])
}

// AppendHeader appends the 13-byte wrapper header for a payload of
// payloadLen bytes to dst and returns the extended slice.
func AppendHeader(dst []byte, payloadLen uint32) []byte {
	dst = append(dst, Magic[:]...)
	dst = append(dst, Version)

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], payloadLen)
	return append(dst, u4[:]...)
}

// ParseHeader decodes the fixed header at the start of b. Checks run in
// wire order: length, magic, version. On ErrBadVersion the returned
// Header still carries the version that was seen, so callers can report
// it.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, ErrShortHeader
	}
	if !hasMagic(b) {
		return Header{}, ErrBadMagic
	}

	h := Header{
		Version:    b[8],
		PayloadLen: binary.BigEndian.Uint32(b[9:13]),
	}
	if h.Version != Version {
		return h, ErrBadVersion
	}
	return h, nil
}
