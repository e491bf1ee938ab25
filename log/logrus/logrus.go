package logrus

import (
	c2patext "github.com/encypherai/c2pa-text"
	"github.com/sirupsen/logrus"
)

type LogrusLogger struct{ E *logrus.Entry }

var _ c2patext.Logger = LogrusLogger{}

func (l LogrusLogger) Debug(msg string, f c2patext.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l LogrusLogger) Info(msg string, f c2patext.Fields) {
	l.E.WithFields(logrus.Fields(f)).Info(msg)
}
func (l LogrusLogger) Warn(msg string, f c2patext.Fields) {
	l.E.WithFields(logrus.Fields(f)).Warn(msg)
}
func (l LogrusLogger) Error(msg string, f c2patext.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
