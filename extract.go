package c2patext

import (
	"golang.org/x/text/unicode/norm"

	"github.com/encypherai/c2pa-text/internal/wire"
)

// ExtractionResult is the outcome of scanning text for a wrapper.
// Manifest is nil when no wrapper was found, and Offset/Length are -1.
// Offset and Length are byte positions in the original, unmodified
// input string, not in CleanText.
type ExtractionResult struct {
	Manifest  []byte
	CleanText string
	Offset    int
	Length    int
}

// WrapperInfo locates a wrapper without producing clean text. Offset
// and Length are byte positions in the input string.
type WrapperInfo struct {
	Manifest []byte
	Offset   int
	Length   int
}

// span is one recognized wrapper found by the scanner, in byte
// coordinates of the scanned string.
type span struct {
	start    int
	end      int
	manifest []byte
}

// scanWrapper walks codepoints with an index cursor looking for
// marker-anchored wrapper sequences. At each marker it greedily decodes
// the following carrier codepoints; a run of at least HeaderSize bytes
// whose header parses and whose declared length fits the run is a
// recognized wrapper. The whole decodable run belongs to the span and
// scanning resumes after it. A marker whose run fails any header check
// is not a wrapper: scanning resumes one codepoint past the marker, so
// a stray marker cannot mask a wrapper hiding later in its run.
//
// A second recognized wrapper anywhere in the text fails the scan with
// ErrMultipleWrappers.
func scanWrapper(text string) (span, bool, error) {
	type cp struct {
		off int
		r   rune
	}
	cps := make([]cp, 0, len(text))
	for off, r := range text {
		cps = append(cps, cp{off, r})
	}

	var found span
	haveWrapper := false

	i := 0
	for i < len(cps) {
		if cps[i].r != Marker {
			i++
			continue
		}

		// Greedily decode the run after the marker.
		run := make([]byte, 0, 64)
		j := i + 1
		for j < len(cps) {
			b, ok := selectorToByte(cps[j].r)
			if !ok {
				break
			}
			run = append(run, b)
			j++
		}

		hdr, err := wire.ParseHeader(run)
		if err != nil || len(run) < wire.HeaderSize+int(hdr.PayloadLen) {
			i++
			continue
		}

		if haveWrapper {
			return span{}, false, ErrMultipleWrappers
		}

		end := len(text)
		if j < len(cps) {
			end = cps[j].off
		}
		// Non-nil even for a zero-length payload, so callers can tell
		// "found, empty" from "not found".
		manifest := make([]byte, hdr.PayloadLen)
		copy(manifest, run[wire.HeaderSize:])
		found = span{
			start:    cps[i].off,
			end:      end,
			manifest: manifest,
		}
		haveWrapper = true
		i = j
	}

	return found, haveWrapper, nil
}

// ExtractManifest scans text for an embedded wrapper. With exactly one
// recognized wrapper it returns the decoded manifest, the text with the
// wrapper span removed and re-normalized, and the span's byte offset
// and length in the original text. With none it succeeds with a nil
// Manifest and the normalized input as CleanText. More than one
// recognized wrapper returns ErrMultipleWrappers.
func ExtractManifest(text string) (ExtractionResult, error) {
	s, ok, err := scanWrapper(text)
	if err != nil {
		return ExtractionResult{}, err
	}
	if !ok {
		return ExtractionResult{
			Manifest:  nil,
			CleanText: norm.NFC.String(text),
			Offset:    -1,
			Length:    -1,
		}, nil
	}

	return ExtractionResult{
		Manifest:  s.manifest,
		CleanText: norm.NFC.String(text[:s.start] + text[s.end:]),
		Offset:    s.start,
		Length:    s.end - s.start,
	}, nil
}

// FindWrapper locates and decodes a wrapper without removing it. The
// second return is false when the text holds no recognized wrapper.
func FindWrapper(text string) (WrapperInfo, bool, error) {
	s, ok, err := scanWrapper(text)
	if err != nil || !ok {
		return WrapperInfo{}, false, err
	}
	return WrapperInfo{
		Manifest: s.manifest,
		Offset:   s.start,
		Length:   s.end - s.start,
	}, true, nil
}
