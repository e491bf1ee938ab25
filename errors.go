package c2patext

import (
	"errors"
	"fmt"

	"github.com/encypherai/c2pa-text/validate"
)

// Sentinel errors for programmatic handling with errors.Is.
var (
	// ErrMultipleWrappers is returned by extraction when more than one
	// recognized wrapper exists in the text. A manifest-in-text must be
	// unique; the ambiguity is surfaced instead of resolved by picking
	// the first.
	ErrMultipleWrappers = errors.New("c2patext: multiple wrappers detected")

	// ErrManifestTooLarge is returned by Embedder.Embed when the
	// manifest exceeds the configured MaxManifestSize.
	ErrManifestTooLarge = errors.New("c2patext: manifest exceeds size limit")
)

// ValidationError is returned by Embedder.Embed when the pre-embed
// structural check fails. Result carries the full findings.
type ValidationError struct {
	Result *validate.Result
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("c2patext: manifest failed validation: %s", e.Result.PrimaryCode())
}
