// Package report renders validation results into machine-readable
// formats for tooling and audit pipelines. The Report type is a stable
// DTO decoupled from the validate package's in-memory result; encoders
// exist for JSON, CBOR and MessagePack.
package report

import (
	"github.com/encypherai/c2pa-text/validate"
)

// Issue mirrors one validation finding.
type Issue struct {
	Code    string `json:"code" cbor:"code" msgpack:"code"`
	Message string `json:"message" cbor:"message" msgpack:"message"`
	Offset  int    `json:"offset" cbor:"offset" msgpack:"offset"`
	Context string `json:"context,omitempty" cbor:"context,omitempty" msgpack:"context,omitempty"`
}

// Report is the serializable form of a validation result. Length and
// version fields are -1 when the underlying check never recorded them.
type Report struct {
	Valid          bool    `json:"valid" cbor:"valid" msgpack:"valid"`
	PrimaryCode    string  `json:"primary_code" cbor:"primary_code" msgpack:"primary_code"`
	Issues         []Issue `json:"issues,omitempty" cbor:"issues,omitempty" msgpack:"issues,omitempty"`
	Version        int     `json:"version" cbor:"version" msgpack:"version"`
	DeclaredLength int64   `json:"declared_length" cbor:"declared_length" msgpack:"declared_length"`
	ActualLength   int     `json:"actual_length" cbor:"actual_length" msgpack:"actual_length"`
}

// FromResult builds a Report from a validation result.
func FromResult(r *validate.Result) Report {
	rep := Report{
		Valid:          r.Valid,
		PrimaryCode:    r.PrimaryCode().String(),
		Version:        r.Version,
		DeclaredLength: r.DeclaredLength,
		ActualLength:   r.ActualLength,
	}
	if len(r.Issues) > 0 {
		rep.Issues = make([]Issue, 0, len(r.Issues))
		for _, issue := range r.Issues {
			rep.Issues = append(rep.Issues, Issue{
				Code:    issue.Code.String(),
				Message: issue.Message,
				Offset:  issue.Offset,
				Context: issue.Context,
			})
		}
	}
	return rep
}

// Encoder serializes reports into one wire format.
type Encoder interface {
	// ContentType returns the MIME type of the encoded form.
	ContentType() string

	Encode(Report) ([]byte, error)
	Decode([]byte) (Report, error)
}
