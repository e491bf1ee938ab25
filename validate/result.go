package validate

import (
	"fmt"
	"strings"
)

// Code is a stable C2PA validation status identifier. Codes are part of
// the public contract and never change between releases.
type Code string

const (
	CodeValid Code = "valid"

	// Wrapper-level codes.
	CodeCorruptedWrapper   Code = "manifest.text.corruptedWrapper"
	CodeMultipleWrappers   Code = "manifest.text.multipleWrappers"
	CodeInvalidMagic       Code = "manifest.text.invalidMagic"
	CodeUnsupportedVersion Code = "manifest.text.unsupportedVersion"
	CodeLengthMismatch     Code = "manifest.text.lengthMismatch"
	CodeEmptyManifest      Code = "manifest.text.emptyManifest"

	// JUMBF-level codes.
	CodeInvalidJumbfHeader    Code = "manifest.jumbf.invalidHeader"
	CodeInvalidJumbfBoxSize   Code = "manifest.jumbf.invalidBoxSize"
	CodeMissingDescriptionBox Code = "manifest.jumbf.missingDescriptionBox"
	CodeInvalidC2paUuid       Code = "manifest.jumbf.invalidC2paUuid"
	CodeTruncatedJumbf        Code = "manifest.jumbf.truncated"
)

func (c Code) String() string { return string(c) }

// Issue is a single validation finding. Offset is a byte offset into
// the validated buffer, or -1 when the issue has no specific location.
// Context carries optional extra detail such as the offending bytes.
type Issue struct {
	Code    Code
	Message string
	Offset  int
	Context string
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s", i.Code, i.Message)
}

// Result aggregates validation issues in arrival order. Valid is true
// iff no issue was ever added. Issues are data, not errors; callers
// decide which codes they treat as fatal.
//
// Version, DeclaredLength and ActualLength are -1 until the relevant
// check has run far enough to record them.
type Result struct {
	Valid  bool
	Issues []Issue

	ManifestBytes []byte
	JUMBFBytes    []byte

	Version        int
	DeclaredLength int64
	ActualLength   int
}

// NewResult returns a Result in the valid state with no issues.
func NewResult() *Result {
	return &Result{
		Valid:          true,
		Version:        -1,
		DeclaredLength: -1,
		ActualLength:   -1,
	}
}

// AddIssue records one issue and marks the result invalid.
func (r *Result) AddIssue(code Code, message string, offset int, context string) {
	r.Issues = append(r.Issues, Issue{
		Code:    code,
		Message: message,
		Offset:  offset,
		Context: context,
	})
	r.Valid = false
}

// PrimaryCode returns the first issue's code, or CodeValid when the
// result carries no issues.
func (r *Result) PrimaryCode() Code {
	if len(r.Issues) == 0 {
		return CodeValid
	}
	return r.Issues[0].Code
}

// merge appends the other result's issues and carries over invalidity.
func (r *Result) merge(other *Result) {
	if other.Valid {
		return
	}
	r.Issues = append(r.Issues, other.Issues...)
	r.Valid = false
}

func (r *Result) String() string {
	if r.Valid {
		return "validation passed: manifest is structurally compliant"
	}
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for _, issue := range r.Issues {
		fmt.Fprintf(&sb, "  - %s\n", issue)
	}
	return sb.String()
}
