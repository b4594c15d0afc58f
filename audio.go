package cadence

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Channel is an audio mixing channel that PlayFx actions start sounds on.
// It is a beep.Streamer itself, so it can be handed to speaker.Play or mixed
// into another mixer. Play is safe to call while the speaker goroutine is
// streaming.
type Channel struct {
	mu    sync.Mutex
	mixer *beep.Mixer
}

// NewChannel creates a silent channel.
func NewChannel() *Channel {
	return &Channel{mixer: &beep.Mixer{}}
}

// Play starts s on the channel. Finished streamers are dropped by the mixer.
func (c *Channel) Play(s beep.Streamer) {
	if s == nil {
		return
	}
	c.mu.Lock()
	c.mixer.Add(s)
	c.mu.Unlock()
}

// Clear stops every sound on the channel.
func (c *Channel) Clear() {
	c.mu.Lock()
	c.mixer.Clear()
	c.mu.Unlock()
}

// Len returns the number of sounds still playing.
func (c *Channel) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mixer.Len()
}

// Stream implements beep.Streamer. The channel never drains: with nothing
// playing it produces silence.
func (c *Channel) Stream(samples [][2]float64) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mixer.Stream(samples)
}

// Err implements beep.Streamer.
func (c *Channel) Err() error {
	return nil
}

// OpenSpeaker initializes the default speaker at rate with a buffer of
// bufferLen and starts playing the channel on it.
func (c *Channel) OpenSpeaker(rate beep.SampleRate, bufferLen time.Duration) error {
	if err := speaker.Init(rate, rate.N(bufferLen)); err != nil {
		return err
	}
	speaker.Play(c)
	return nil
}

// PlayFx starts a sound effect on a channel and completes immediately.
type PlayFx struct {
	instant
	channel *Channel
	sound   *beep.Buffer
}

// NewPlayFx creates a PlayFx action. A nil sound plays nothing.
func NewPlayFx(tag uint32, channel *Channel, sound *beep.Buffer) *PlayFx {
	if channel == nil {
		panic("cadence: PlayFx requires a non-nil channel")
	}
	return &PlayFx{instant: instant{tag: tag}, channel: channel, sound: sound}
}

// SetSound replaces the sound played on the next execution.
func (a *PlayFx) SetSound(sound *beep.Buffer) {
	a.sound = sound
}

func (a *PlayFx) Execute(float32) Result {
	if a.sound != nil {
		a.channel.Play(a.sound.Streamer(0, a.sound.Len()))
	}
	return Done
}
