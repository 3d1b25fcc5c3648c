package usecase

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Settings tunes the coordinators. Zero fields fall back to the defaults
// returned by DefaultSettings.
type Settings struct {
	OrderNumberPrefix   string
	RequestNumberPrefix string
	TxTimeout           time.Duration
	NotifyTimeout       time.Duration
	MaxQuotationLines   int
	MinMessageLength    int
	MaxMessageLength    int
	Retry               RetryPolicy
	Now                 func() time.Time
}

func DefaultSettings() Settings {
	return Settings{
		OrderNumberPrefix:   "ORD",
		RequestNumberPrefix: "SMP",
		TxTimeout:           5 * time.Second,
		NotifyTimeout:       3 * time.Second,
		MaxQuotationLines:   40,
		MinMessageLength:    10,
		MaxMessageLength:    2000,
		Retry:               DefaultRetryPolicy(),
		Now:                 func() time.Time { return time.Now().UTC() },
	}
}

func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.OrderNumberPrefix == "" {
		s.OrderNumberPrefix = d.OrderNumberPrefix
	}
	if s.RequestNumberPrefix == "" {
		s.RequestNumberPrefix = d.RequestNumberPrefix
	}
	if s.TxTimeout <= 0 {
		s.TxTimeout = d.TxTimeout
	}
	if s.NotifyTimeout <= 0 {
		s.NotifyTimeout = d.NotifyTimeout
	}
	if s.MaxQuotationLines <= 0 {
		s.MaxQuotationLines = d.MaxQuotationLines
	}
	if s.MinMessageLength <= 0 {
		s.MinMessageLength = d.MinMessageLength
	}
	if s.MaxMessageLength <= 0 {
		s.MaxMessageLength = d.MaxMessageLength
	}
	if s.Retry.MaxAttempts <= 0 {
		s.Retry = d.Retry
	}
	if s.Now == nil {
		s.Now = d.Now
	}
	return s
}

func loggerOrDiscard(log *logrus.Entry) *logrus.Entry {
	if log != nil {
		return log
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}
