// Package observability builds the structured logger shared by the commands.
package observability

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	attrService = "service"
	attrGrammar = "grammar"
)

// ErrInvalidLevel is returned by [ParseLevel] for unknown level names.
var ErrInvalidLevel = errors.New("invalid log level")

// Config selects the logger's format, level and destination.
type Config struct {
	// Output defaults to os.Stderr.
	Output  io.Writer
	Service string
	Grammar string
	Level   slog.Level
	JSON    bool
}

// ServiceHandler is an [slog.Handler] that attaches service metadata
// (service, grammar) to every record. The attributes are pre-attached at
// construction so they stay at the top level when groups are used.
type ServiceHandler struct {
	inner slog.Handler
}

// NewServiceHandler wraps inner, attaching the service and grammar names.
func NewServiceHandler(inner slog.Handler, service, grammarName string) *ServiceHandler {
	attrs := []slog.Attr{slog.String(attrService, service)}

	if grammarName != "" {
		attrs = append(attrs, slog.String(attrGrammar, grammarName))
	}

	return &ServiceHandler{inner: inner.WithAttrs(attrs)}
}

// Enabled delegates to the inner handler.
func (sh *ServiceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return sh.inner.Enabled(ctx, level)
}

// Handle delegates to the inner handler.
func (sh *ServiceHandler) Handle(ctx context.Context, record slog.Record) error {
	err := sh.inner.Handle(ctx, record)
	if err != nil {
		return fmt.Errorf("service handler: %w", err)
	}

	return nil
}

// WithAttrs returns a new ServiceHandler with additional attributes on the inner handler.
func (sh *ServiceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ServiceHandler{inner: sh.inner.WithAttrs(attrs)}
}

// WithGroup returns a new ServiceHandler with a group prefix on the inner handler.
func (sh *ServiceHandler) WithGroup(name string) slog.Handler {
	return &ServiceHandler{inner: sh.inner.WithGroup(name)}
}

// NewLogger builds a text or JSON logger from cfg.
func NewLogger(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.Level}

	var inner slog.Handler
	if cfg.JSON {
		inner = slog.NewJSONHandler(out, handlerOpts)
	} else {
		inner = slog.NewTextHandler(out, handlerOpts)
	}

	return slog.New(NewServiceHandler(inner, cfg.Service, cfg.Grammar))
}

// ParseLevel maps debug, info, warn and error (case-insensitive) to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
}
