// Package apilog writes per-request trace events for debugging API
// integrations. Events go to a rotating JSON file, never to the console,
// and credential-looking material is redacted before anything is written.
package apilog

import (
	"fmt"
	"regexp"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Pattern to match common credential material that can leak into error
// strings (e.g. a token pasted into a base URL).
var sensitive = regexp.MustCompile(`(?i)(authorization|bearer|token|api[_-]?key)[=:\s][^\s"&]*`)

// TraceLogger records one event per API exchange. A nil TraceLogger is a
// no-op, so the client can carry one unconditionally.
type TraceLogger struct {
	logger *zap.Logger
}

// Options control the rotating trace file.
type Options struct {
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// New creates a trace logger writing JSON events to a rotating file.
func New(opts Options) (*TraceLogger, error) {
	if opts.Filename == "" {
		return nil, fmt.Errorf("trace log filename is required")
	}
	if opts.MaxSizeMB == 0 {
		opts.MaxSizeMB = 10
	}
	if opts.MaxBackups == 0 {
		opts.MaxBackups = 3
	}

	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   opts.Filename,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   opts.Compress,
	})

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), sink, zap.DebugLevel)

	return &TraceLogger{logger: zap.New(core)}, nil
}

// Exchange records one completed round trip.
func (t *TraceLogger) Exchange(method, route string, status, bodySize int, duration time.Duration) {
	if t == nil || t.logger == nil {
		return
	}
	t.logger.Info("exchange",
		zap.String("method", method),
		zap.String("route", redact(route)),
		zap.Int("status", status),
		zap.Int("body_size", bodySize),
		zap.Duration("duration", duration))
}

// TransportError records a failed round trip (no response received).
func (t *TraceLogger) TransportError(method, route string, err error) {
	if t == nil || t.logger == nil {
		return
	}
	t.logger.Error("transport_error",
		zap.String("method", method),
		zap.String("route", redact(route)),
		zap.String("error", redact(err.Error())))
}

// Close flushes buffered events.
func (t *TraceLogger) Close() error {
	if t == nil || t.logger == nil {
		return nil
	}
	return t.logger.Sync()
}

func redact(s string) string {
	return sensitive.ReplaceAllString(s, "[REDACTED]")
}
