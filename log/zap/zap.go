package zap

import (
	c2patext "github.com/encypherai/c2pa-text"
	"go.uber.org/zap"
)

type ZapLogger struct{ L *zap.Logger }

var _ c2patext.Logger = ZapLogger{}

func (z ZapLogger) Debug(msg string, f c2patext.Fields) { z.L.Debug(msg, zf(f)...) }
func (z ZapLogger) Info(msg string, f c2patext.Fields)  { z.L.Info(msg, zf(f)...) }
func (z ZapLogger) Warn(msg string, f c2patext.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z ZapLogger) Error(msg string, f c2patext.Fields) { z.L.Error(msg, zf(f)...) }

func zf(f c2patext.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}
