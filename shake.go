package cadence

import (
	"math"
	"math/rand/v2"
	"time"
)

// Shake jitters its target within ±radius of the position it had when the
// action started, then snaps it back there on the final tick.
type Shake struct {
	interval
	target     Target
	radius     float64
	originX    float64
	originY    float64
	seed       uint32
	seedSource func() uint32
}

// NewShake creates a Shake action. Each Start draws a fresh seed.
func NewShake(tag uint32, target Target, radius float64, d time.Duration) *Shake {
	return &Shake{
		interval:   newInterval(tag, d),
		target:     mustTarget(target, "Shake"),
		radius:     radius,
		seedSource: rand.Uint32,
	}
}

// SetSeedSource replaces the function Start draws seeds from, for
// reproducible shakes.
func (a *Shake) SetSeedSource(fn func() uint32) {
	if fn == nil {
		fn = rand.Uint32
	}
	a.seedSource = fn
}

func (a *Shake) Start() {
	a.interval.Start()
	a.seed = a.seedSource()
	a.originX, a.originY = a.target.Position()
}

func (a *Shake) Execute(dt float32) Result {
	if isDisposed(a.target) {
		return Done
	}
	p, _ := a.step(dt)
	if p >= 1 {
		a.target.SetPosition(a.originX, a.originY)
		return Done
	}
	dx := float64(randomM11(&a.seed)) * a.radius
	dy := float64(randomM11(&a.seed)) * a.radius
	a.target.SetPosition(a.originX+dx, a.originY+dy)
	return InProgress
}

// randomM11 advances a linear congruential generator and returns a value in
// [-1, 1). The 15 seed bits land in the mantissa of a float in [2, 4).
func randomM11(seed *uint32) float32 {
	*seed = *seed*134775813 + 1
	bits := (*seed&0x7fff)<<8 | 0x40000000
	return math.Float32frombits(bits) - 3
}
