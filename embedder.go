package c2patext

import (
	"github.com/encypherai/c2pa-text/validate"
)

// Options tune an Embedder. The zero value is usable: no logging, no
// size limit, no pre-embed validation.
type Options struct {
	Logger Logger // if nil, NopLogger is used

	// ValidateBeforeEmbed runs the structural manifest validator before
	// encoding; a failing result aborts the embed with a
	// *ValidationError.
	ValidateBeforeEmbed bool

	// Strict extends the pre-embed check to the description box and
	// C2PA UUID. Only meaningful with ValidateBeforeEmbed.
	Strict bool

	// MaxManifestSize is the maximum accepted manifest length in bytes.
	// 0 disables the limit.
	MaxManifestSize int
}

// Embedder bundles the codec with pre-embed validation, a size limit
// and logging. All methods are safe for concurrent use.
type Embedder struct {
	log      Logger
	validate bool
	strict   bool
	maxSize  int
}

// NewEmbedder builds an Embedder from opts.
func NewEmbedder(opts Options) *Embedder {
	return &Embedder{
		log:      coalesce[Logger](opts.Logger, NopLogger{}),
		validate: opts.ValidateBeforeEmbed,
		strict:   opts.Strict,
		maxSize:  opts.MaxManifestSize,
	}
}

// Embed embeds manifestBytes into text after the configured checks.
func (e *Embedder) Embed(text string, manifestBytes []byte) (string, error) {
	if e.maxSize > 0 && len(manifestBytes) > e.maxSize {
		e.log.Debug("embed rejected (size limit)", Fields{
			"size": len(manifestBytes), "limit": e.maxSize,
		})
		return "", ErrManifestTooLarge
	}

	if e.validate {
		result := validate.Manifest(manifestBytes, true, e.strict)
		if !result.Valid {
			e.log.Debug("embed rejected (validation failed)", Fields{
				"code": result.PrimaryCode().String(), "issues": len(result.Issues),
			})
			return "", &ValidationError{Result: result}
		}
	}

	out := EmbedManifest(text, manifestBytes)
	e.log.Debug("manifest embedded", Fields{
		"manifest_bytes": len(manifestBytes), "text_bytes": len(out),
	})
	return out, nil
}

// Extract scans text for an embedded wrapper.
func (e *Embedder) Extract(text string) (ExtractionResult, error) {
	res, err := ExtractManifest(text)
	if err != nil {
		e.log.Warn("extract failed", Fields{"err": err.Error()})
		return res, err
	}
	if res.Manifest == nil {
		e.log.Debug("no wrapper found", Fields{"text_bytes": len(text)})
	} else {
		e.log.Debug("manifest extracted", Fields{
			"manifest_bytes": len(res.Manifest), "offset": res.Offset, "length": res.Length,
		})
	}
	return res, nil
}
