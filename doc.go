// Package c2patext embeds binary C2PA manifests invisibly inside UTF-8
// text and recovers them exactly. Each payload byte maps onto a Unicode
// variation selector; a zero-width no-break space anchors the sequence
// so a scanner can find it again inside arbitrary surrounding text.
//
// Components:
//   - EncodeWrapper / EmbedManifest / ExtractManifest: the codec. Host
//     text is NFC-normalized before the wrapper is appended; the wrapper
//     itself is never normalized.
//   - validate: structural checks for JUMBF manifest payloads and for
//     recovered wrapper bytes, reported as issue lists rather than errors.
//   - jumbf: JUMBF box header parsing (size variants, type tags).
//   - report: machine-readable encodings of validation results.
//
// Wrapper layout (pre-encoding bytes, one variation selector each):
//
//	magic "C2PATXT\0" (8) | version (1) | payload length u32 be (4) | payload
//
// Byte mapping: 0-15 -> U+FE00..U+FE0F, 16-255 -> U+E0100..U+E01EF.
// The mapping is closed-form arithmetic in both directions.
//
// All operations are pure functions over their inputs and safe for
// concurrent use.
package c2patext
