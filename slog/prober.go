package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagemark"
)

// Ensure LoggingProber implements pagemark.Prober.
var _ pagemark.Prober = (*LoggingProber)(nil)

// LoggingProber wraps a Prober with debug logging for rendering decisions.
type LoggingProber struct {
	next   pagemark.Prober
	logger *slog.Logger
}

// NewLoggingProber creates a new LoggingProber.
func NewLoggingProber(next pagemark.Prober, logger *slog.Logger) *LoggingProber {
	return &LoggingProber{next: next, logger: logger}
}

// NeedsRendering runs the probe, logs the decision, and returns it.
func (p *LoggingProber) NeedsRendering(html string) bool {
	begin := time.Now()
	needs := p.next.NeedsRendering(html)
	p.logger.Info("render probe",
		"bytes", len(html),
		"needs_rendering", needs,
		"duration", time.Since(begin),
	)
	return needs
}
