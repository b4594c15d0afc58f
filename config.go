package cadence

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Settings holds the tunables that can come from the environment.
type Settings struct {
	// MaxSequenceActions is the capacity of a live sequence. Templates longer
	// than this are rejected by RunSequence.
	MaxSequenceActions int `env:"CADENCE_MAX_SEQUENCE_ACTIONS" envDefault:"32"`
	// MaxRewind caps how far a RepeatBack result moves the cursor. It can
	// only lower the distance; values above MaxRepeatBack are clamped.
	MaxRewind int `env:"CADENCE_MAX_REWIND" envDefault:"10"`
	// MaxStepsPerTick bounds how many actions one sequence may execute in a
	// single tick; when the bound is hit the sequence resumes next tick.
	// Zero means unbounded, so a sequence that loops over instant actions
	// only never yields.
	MaxStepsPerTick int `env:"CADENCE_MAX_STEPS_PER_TICK"`
	// ElasticPeriod is applied process-wide with SetElasticPeriod when a
	// Scheduler is created. Zero leaves the current period alone.
	ElasticPeriod float32 `env:"CADENCE_ELASTIC_PERIOD"`
	// Debug enables per-action trace logging.
	Debug bool `env:"CADENCE_DEBUG"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		MaxSequenceActions: 32,
		MaxRewind:          DefaultMaxRewind,
	}
}

// LoadSettings reads Settings from CADENCE_* environment variables.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	return s.withDefaults(), nil
}

// withDefaults replaces non-positive capacities with their defaults.
func (s Settings) withDefaults() Settings {
	def := DefaultSettings()
	if s.MaxSequenceActions <= 0 {
		s.MaxSequenceActions = def.MaxSequenceActions
	}
	if s.MaxRewind <= 0 {
		s.MaxRewind = def.MaxRewind
	}
	s.MaxRewind = min(s.MaxRewind, MaxRepeatBack)
	s.MaxStepsPerTick = max(s.MaxStepsPerTick, 0)
	return s
}

// Config configures a Scheduler.
type Config struct {
	Settings

	// OnSequenceEnd is called with the tag of every sequence that runs to
	// completion. Cancelled sequences are not reported.
	OnSequenceEnd func(tag uint32)

	// Logger receives debug traces. nil uses a console logger on stderr when
	// Debug is set and discards output otherwise.
	Logger *zerolog.Logger

	// Clock supplies wall-clock time to Update. nil uses time.Now.
	Clock func() time.Time
}
