package logging

import (
	"io"
	"os"
	"strings"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// New builds the process logger. Unknown formats are rejected so a typo in
// LOG_FORMAT does not silently switch output.
func New(level, format string) (*logrus.Logger, error) {
	return NewWithOutput(level, format, os.Stdout)
}

func NewWithOutput(level, format string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, errors.Wrap(err, "parse log level")
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(lvl)
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case FormatJSON:
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, errors.Errorf("unknown log format %q", format)
	}
	return l, nil
}

// Component returns an entry tagged the way every layer tags its logs.
func Component(l *logrus.Logger, component, layer string) *logrus.Entry {
	return l.WithFields(logrus.Fields{"component": component, "layer": layer})
}
