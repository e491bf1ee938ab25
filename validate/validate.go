// Package validate checks C2PA text manifest payloads for structural
// problems before they are embedded, and previously produced wrapper
// bytes after they are recovered. It inspects container structure only;
// manifest semantics, signatures and trust chains are out of scope.
//
// Every entry point returns a *Result instead of an error so callers
// can inspect all findings and decide severity themselves.
package validate

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/encypherai/c2pa-text/internal/wire"
	"github.com/encypherai/c2pa-text/jumbf"
)

// JUMBF validates the top-level box structure of jumbfBytes.
//
// Checks short-circuit: the first failing condition is reported and the
// call returns, so PrimaryCode is deterministic for a given input. In
// strict mode the superbox content must open with a description box;
// the C2PA manifest-store UUID check is the one exception to the
// short-circuit rule, it records a mismatch without returning early.
func JUMBF(jumbfBytes []byte, strict bool) *Result {
	result := NewResult()
	result.JUMBFBytes = append([]byte(nil), jumbfBytes...)

	if len(jumbfBytes) == 0 {
		result.AddIssue(CodeEmptyManifest, "JUMBF content is empty", 0, "")
		return result
	}

	box, err := jumbf.ParseBoxHeader(jumbfBytes)
	switch {
	case errors.Is(err, jumbf.ErrShortBox):
		result.AddIssue(CodeInvalidJumbfHeader,
			fmt.Sprintf("JUMBF too short for box header: %d bytes, minimum %d",
				len(jumbfBytes), jumbf.MinBoxSize),
			0, "")
		return result
	case errors.Is(err, jumbf.ErrShortExtendedBox):
		result.AddIssue(CodeTruncatedJumbf,
			"extended box size declared but not enough bytes for 64-bit size field",
			0, "")
		return result
	case errors.Is(err, jumbf.ErrInvalidBoxSize):
		size := binary.BigEndian.Uint32(jumbfBytes[0:4])
		result.AddIssue(CodeInvalidJumbfBoxSize,
			fmt.Sprintf("invalid box size: %d (minimum is %d)", size, jumbf.MinBoxSize),
			0, "")
		return result
	}

	if uint64(len(jumbfBytes)) < box.Size {
		result.AddIssue(CodeTruncatedJumbf,
			fmt.Sprintf("JUMBF truncated: declared size %d, actual %d",
				box.Size, len(jumbfBytes)),
			0, "")
		return result
	}

	if box.TypeString() != jumbf.TypeSuperbox {
		result.AddIssue(CodeInvalidJumbfHeader,
			fmt.Sprintf("expected JUMBF superbox type %q, got %q",
				jumbf.TypeSuperbox, box.TypeString()),
			4, fmt.Sprintf("box_type=%x", box.Type[:]))
		return result
	}

	if strict {
		checkStrict(result, jumbfBytes, box.HeaderLen)
	}
	return result
}

// checkStrict verifies the superbox content opens with a description
// box and, when enough bytes are present, that the description carries
// the C2PA manifest-store UUID.
func checkStrict(result *Result, jumbfBytes []byte, headerLen int) {
	if len(jumbfBytes) < headerLen+jumbf.MinBoxSize {
		result.AddIssue(CodeMissingDescriptionBox,
			"JUMBF superbox too short to contain description box",
			headerLen, "")
		return
	}

	descType := jumbfBytes[headerLen+4 : headerLen+8]
	if string(descType) != jumbf.TypeDescription {
		result.AddIssue(CodeMissingDescriptionBox,
			fmt.Sprintf("expected description box %q, got %q",
				jumbf.TypeDescription, descType),
			headerLen+4, "")
		return
	}

	uuidOffset := headerLen + jumbf.MinBoxSize
	if len(jumbfBytes) >= uuidOffset+16 {
		found := jumbfBytes[uuidOffset : uuidOffset+16]
		if !bytes.Equal(found, jumbf.C2PAManifestStoreUUID[:]) {
			result.AddIssue(CodeInvalidC2paUuid,
				"invalid C2PA manifest store UUID",
				uuidOffset,
				fmt.Sprintf("expected=%x, found=%x", jumbf.C2PAManifestStoreUUID[:], found))
		}
	}
}

// Manifest validates manifest bytes before embedding. When checkJUMBF
// is set the top-level box structure is validated as well and any
// findings are merged into the returned result.
func Manifest(manifestBytes []byte, checkJUMBF, strict bool) *Result {
	result := NewResult()
	result.ManifestBytes = append([]byte(nil), manifestBytes...)

	if len(manifestBytes) == 0 {
		result.AddIssue(CodeEmptyManifest, "manifest bytes are empty", -1, "")
		return result
	}

	result.ActualLength = len(manifestBytes)

	if checkJUMBF {
		result.merge(JUMBF(manifestBytes, strict))
	}
	return result
}

// Wrapper validates the raw bytes of an already-encoded wrapper: the
// 13-byte header (magic, version, declared length) followed by the
// manifest payload. The payload is then checked as non-strict JUMBF.
func Wrapper(wrapperBytes []byte) *Result {
	result := NewResult()

	hdr, err := wire.ParseHeader(wrapperBytes)
	switch {
	case errors.Is(err, wire.ErrShortHeader):
		result.AddIssue(CodeCorruptedWrapper,
			fmt.Sprintf("wrapper too short: %d bytes, minimum %d",
				len(wrapperBytes), wire.HeaderSize),
			0, "")
		return result
	case errors.Is(err, wire.ErrBadMagic):
		result.AddIssue(CodeInvalidMagic,
			fmt.Sprintf("invalid magic: expected %q, got %x",
				wire.Magic[:], wrapperBytes[0:8]),
			0, "")
		return result
	case errors.Is(err, wire.ErrBadVersion):
		result.Version = int(hdr.Version)
		result.AddIssue(CodeUnsupportedVersion,
			fmt.Sprintf("unsupported version: %d, expected %d", hdr.Version, wire.Version),
			8, "")
		return result
	}

	result.Version = int(hdr.Version)
	result.DeclaredLength = int64(hdr.PayloadLen)

	actual := len(wrapperBytes) - wire.HeaderSize
	result.ActualLength = actual

	if int(hdr.PayloadLen) != actual {
		result.AddIssue(CodeLengthMismatch,
			fmt.Sprintf("length mismatch: declares %d bytes, actual %d",
				hdr.PayloadLen, actual),
			9, "")
		return result
	}

	payload := wrapperBytes[wire.HeaderSize:]
	result.JUMBFBytes = append([]byte(nil), payload...)
	result.ManifestBytes = append([]byte(nil), payload...)

	result.merge(JUMBF(payload, false))
	return result
}
