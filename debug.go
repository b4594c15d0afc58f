package cadence

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// newDebugLogger returns the stderr console logger used when debug mode is
// on and no Logger was configured.
func newDebugLogger() zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return zerolog.New(out).With().Timestamp().Str("component", "cadence").Logger()
}

// SetDebugMode enables or disables per-action trace logging. When enabled
// with a discarding logger, traces go to stderr.
func (s *Scheduler) SetDebugMode(enabled bool) {
	s.debug = enabled
	s.cfg.Debug = enabled
	if enabled && s.cfg.Logger == nil && s.logger.GetLevel() == zerolog.Disabled {
		s.logger = newDebugLogger()
	}
}

// DebugMode reports whether trace logging is on.
func (s *Scheduler) DebugMode() bool {
	return s.debug
}

func (s *Scheduler) logAdded(h Handle, inst *instance) {
	if !s.debug {
		return
	}
	s.logger.Debug().
		Uint32("slot", h.index).
		Uint32("tag", inst.tag).
		Int("actions", len(inst.actions)).
		Int("live", s.count).
		Msg("sequence added")
}

func (s *Scheduler) logStep(h Handle, inst *instance, a Action, r Result) {
	if !s.debug {
		return
	}
	s.logger.Debug().
		Uint32("slot", h.index).
		Uint32("tag", inst.tag).
		Int("cursor", inst.cursor).
		Stringer("kind", a.Kind()).
		Stringer("result", r).
		Msg("action executed")
}

func (s *Scheduler) logFinished(h Handle, inst *instance) {
	if !s.debug {
		return
	}
	s.logger.Debug().
		Uint32("slot", h.index).
		Uint32("tag", inst.tag).
		Msg("sequence finished")
}

func (s *Scheduler) logCancelled(h Handle, inst *instance) {
	if !s.debug {
		return
	}
	s.logger.Debug().
		Uint32("slot", h.index).
		Uint32("tag", inst.tag).
		Int("cursor", inst.cursor).
		Msg("sequence cancelled")
}

// logStepLimit is always logged: hitting the bound usually means a loop made
// only of instant actions.
func (s *Scheduler) logStepLimit(h Handle, inst *instance) {
	s.logger.Warn().
		Uint32("slot", h.index).
		Uint32("tag", inst.tag).
		Int("limit", s.cfg.MaxStepsPerTick).
		Msg("step limit reached, sequence deferred to next tick")
}
