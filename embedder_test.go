package c2patext

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/encypherai/c2pa-text/validate"
)

// captureLogger records messages for assertions.
type captureLogger struct {
	mu   sync.Mutex
	msgs []string
}

func (c *captureLogger) record(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, msg)
}

func (c *captureLogger) Debug(msg string, _ Fields) { c.record(msg) }
func (c *captureLogger) Info(msg string, _ Fields)  { c.record(msg) }
func (c *captureLogger) Warn(msg string, _ Fields)  { c.record(msg) }
func (c *captureLogger) Error(msg string, _ Fields) { c.record(msg) }

func TestEmbedderZeroOptionsRoundTrip(t *testing.T) {
	e := NewEmbedder(Options{})
	manifest := minimalJUMBF()

	out, err := e.Embed("host", manifest)
	if err != nil {
		t.Fatalf("Embed error: %v", err)
	}
	res, err := e.Extract(out)
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if !bytes.Equal(res.Manifest, manifest) {
		t.Fatalf("round trip mismatch")
	}
}

func TestEmbedderSizeLimit(t *testing.T) {
	e := NewEmbedder(Options{MaxManifestSize: 4})

	if _, err := e.Embed("host", []byte{1, 2, 3, 4, 5}); !errors.Is(err, ErrManifestTooLarge) {
		t.Fatalf("expected ErrManifestTooLarge, got %v", err)
	}
	if _, err := e.Embed("host", []byte{1, 2, 3, 4}); err != nil {
		t.Fatalf("manifest at the limit rejected: %v", err)
	}
}

func TestEmbedderValidatesBeforeEmbed(t *testing.T) {
	e := NewEmbedder(Options{ValidateBeforeEmbed: true})

	if _, err := e.Embed("host", minimalJUMBF()); err != nil {
		t.Fatalf("valid manifest rejected: %v", err)
	}

	badType := append([]byte{0, 0, 0, 8}, "xxxx"...)
	_, err := e.Embed("host", badType)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if code := verr.Result.PrimaryCode(); code != validate.CodeInvalidJumbfHeader {
		t.Fatalf("primary code = %q", code)
	}
}

func TestEmbedderStrictValidation(t *testing.T) {
	e := NewEmbedder(Options{ValidateBeforeEmbed: true, Strict: true})

	_, err := e.Embed("host", minimalJUMBF())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if code := verr.Result.PrimaryCode(); code != validate.CodeMissingDescriptionBox {
		t.Fatalf("primary code = %q", code)
	}
}

func TestEmbedderLogsOperations(t *testing.T) {
	log := &captureLogger{}
	e := NewEmbedder(Options{Logger: log})

	out, err := e.Embed("host", minimalJUMBF())
	if err != nil {
		t.Fatalf("Embed error: %v", err)
	}
	if _, err := e.Extract(out); err != nil {
		t.Fatalf("Extract error: %v", err)
	}

	if len(log.msgs) < 2 {
		t.Fatalf("expected embed and extract log entries, got %v", log.msgs)
	}
}
