package report

import (
	"github.com/fxamacker/cbor/v2"
)

// CBOR encodes reports as application/cbor using fxamacker/cbor.
// The zero value is NOT ready to use. Construct with NewCBOR or
// MustCBOR.
//
// Use deterministic=true for canonical encoding (RFC 8949 Core
// Deterministic) when you need byte-for-byte stable outputs, e.g. for
// hashing or signing validation reports.
type CBOR struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

var _ Encoder = CBOR{}

// NewCBOR constructs a CBOR encoder.
//   - Deterministic is true, uses CoreDetEncOptions (RFC 8949).
//   - Otherwise uses PreferredUnsortedEncOptions (smaller/faster defaults).
func NewCBOR(deterministic bool) (CBOR, error) {
	var eo cbor.EncOptions
	if deterministic {
		eo = cbor.CoreDetEncOptions()
	} else {
		eo = cbor.PreferredUnsortedEncOptions()
	}

	em, err := eo.EncMode()
	if err != nil {
		return CBOR{}, err
	}
	dm, err := (cbor.DecOptions{}).DecMode()
	if err != nil {
		return CBOR{}, err
	}
	return CBOR{enc: em, dec: dm}, nil
}

// MustCBOR is like NewCBOR but panics on error. Handy for package-level
// variables in tests and examples.
func MustCBOR(deterministic bool) CBOR {
	c, err := NewCBOR(deterministic)
	if err != nil {
		panic(err)
	}
	return c
}

func (CBOR) ContentType() string { return "application/cbor" }

func (c CBOR) Encode(r Report) ([]byte, error) {
	return c.enc.Marshal(r)
}

func (c CBOR) Decode(b []byte) (Report, error) {
	var r Report
	err := c.dec.Unmarshal(b, &r)
	return r, err
}
