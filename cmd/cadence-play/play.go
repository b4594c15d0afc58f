package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/phanxgames/cadence"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const sampleRate = beep.SampleRate(44100)

var (
	playFrames     int
	playDelta      time.Duration
	playLoops      int
	playMaxSteps   int
	playDebug      bool
	playJSONOutput bool
)

func init() {
	rootCmd.Flags().IntVarP(&playFrames, "frames", "n", 600, "maximum number of frames to run")
	rootCmd.Flags().DurationVar(&playDelta, "dt", time.Second/60, "frame duration")
	rootCmd.Flags().IntVar(&playMaxSteps, "max-steps", 1<<16, "per-sequence step limit per frame when CADENCE_MAX_STEPS_PER_TICK is unset")
	rootCmd.Flags().IntVar(&playLoops, "loops", 1, "times each named condition answers true before answering false")
	rootCmd.Flags().BoolVar(&playDebug, "debug", false, "trace every executed action")
	rootCmd.Flags().BoolVar(&playJSONOutput, "json", false, "log as JSON lines")
}

var rootCmd = &cobra.Command{
	Use:   "cadence-play <script.json>",
	Short: "Play a cadence script headlessly",
	Long: `Play a cadence script headlessly.

Every target, texture, sound, callback and condition the script names is
stubbed: targets are plain nodes, textures have no image, sounds are short
sine tones and callbacks log their arguments. The script runs at a fixed
frame rate until every sequence has finished or --frames is reached, then
the final state of each target is printed.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		if playJSONOutput {
			log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		script, err := cadence.LoadScript(data)
		if err != nil {
			return err
		}
		return play(script)
	},
}

func play(script *cadence.Script) error {
	settings, err := cadence.LoadSettings()
	if err != nil {
		return err
	}
	settings.Debug = settings.Debug || playDebug
	if settings.MaxStepsPerTick == 0 {
		settings.MaxStepsPerTick = playMaxSteps
	}

	logger := log.Logger
	var frame int
	sched := cadence.NewScheduler(cadence.Config{
		Settings: settings,
		Logger:   &logger,
		OnSequenceEnd: func(tag uint32) {
			logger.Info().Uint32("tag", tag).Int("frame", frame).Msg("sequence finished")
		},
	})

	env, nodes, err := stubEnv(script.References(), &frame)
	if err != nil {
		return err
	}
	if _, err := script.RunAll(sched, env); err != nil {
		return fmt.Errorf("run script: %w", err)
	}

	// Drain the channel as a speaker would, one frame of samples at a time.
	samples := make([][2]float64, sampleRate.N(playDelta))
	for frame = 1; frame <= playFrames && sched.Len() > 0; frame++ {
		sched.Tick(playDelta)
		env.Channel.Stream(samples)
	}
	if sched.Len() > 0 {
		logger.Warn().Int("frames", playFrames).Int("running", sched.Len()).Msg("frame limit reached")
	}

	for _, name := range script.TargetNames() {
		n := nodes[name]
		r, g, b := n.Texture.ColorMod()
		logger.Info().
			Str("target", name).
			Float64("x", n.X).
			Float64("y", n.Y).
			Float64("angle", n.Rotation).
			Float64("scaleX", n.ScaleX).
			Float64("scaleY", n.ScaleY).
			Int("alpha", n.Alpha()).
			Int("z", n.ZIndex).
			Bool("visible", n.Visible).
			Uints8("tint", []uint8{r, g, b}).
			Msg("final state")
	}
	return nil
}

// stubEnv resolves every name in refs to a stand-in that logs its use.
func stubEnv(refs cadence.ScriptRefs, frame *int) (cadence.ScriptEnv, map[string]*cadence.Node, error) {
	env := cadence.ScriptEnv{
		Targets:          make(map[string]cadence.Target, len(refs.Targets)),
		Textures:         make(map[string]*cadence.Texture, len(refs.Textures)),
		Sounds:           make(map[string]*beep.Buffer, len(refs.Sounds)),
		Channel:          cadence.NewChannel(),
		Callbacks:        make(map[string]func(uint32), len(refs.Callbacks)),
		IntegerCallbacks: make(map[string]func(uint32, int32), len(refs.IntegerCallbacks)),
		Conditions:       make(map[string]func(uint32) bool, len(refs.Conditions)),
	}
	nodes := make(map[string]*cadence.Node, len(refs.Targets))
	for _, name := range refs.Targets {
		n := cadence.NewSprite(name, cadence.NewTexture(nil))
		nodes[name] = n
		env.Targets[name] = n
	}
	for _, name := range refs.Textures {
		env.Textures[name] = cadence.NewTexture(nil)
	}
	for i, name := range refs.Sounds {
		buf, err := tone(440 * float64(i+1))
		if err != nil {
			return env, nil, fmt.Errorf("sound %q: %w", name, err)
		}
		env.Sounds[name] = buf
	}
	for _, name := range refs.Callbacks {
		env.Callbacks[name] = func(tag uint32) {
			log.Info().Str("callback", name).Uint32("tag", tag).Int("frame", *frame).Msg("callback")
		}
	}
	for _, name := range refs.IntegerCallbacks {
		env.IntegerCallbacks[name] = func(tag uint32, value int32) {
			log.Info().Str("callback", name).Uint32("tag", tag).Int32("value", value).Int("frame", *frame).Msg("callback")
		}
	}
	for _, name := range refs.Conditions {
		remaining := playLoops
		env.Conditions[name] = func(tag uint32) bool {
			remaining--
			return remaining >= 0
		}
	}
	return env, nodes, nil
}

// tone renders a 100ms sine tone.
func tone(freq float64) (*beep.Buffer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(beep.Take(sampleRate.N(100*time.Millisecond), sine))
	return buf, nil
}
