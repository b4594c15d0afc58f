package cadence

import (
	"math"
	"time"
)

// MoveTo moves its target from wherever it is when the action starts to a
// destination.
type MoveTo struct {
	interval
	target       Target
	dstX, dstY   float64
	srcX, srcY   float64
	diffX, diffY float64
}

// NewMoveTo creates a MoveTo action.
func NewMoveTo(tag uint32, target Target, x, y float64, d time.Duration) *MoveTo {
	return &MoveTo{
		interval: newInterval(tag, d),
		target:   mustTarget(target, "MoveTo"),
		dstX:     x,
		dstY:     y,
	}
}

func (a *MoveTo) Start() {
	a.interval.Start()
	a.srcX, a.srcY = a.target.Position()
	a.diffX = a.dstX - a.srcX
	a.diffY = a.dstY - a.srcY
}

func (a *MoveTo) Execute(dt float32) Result {
	if isDisposed(a.target) {
		return Done
	}
	p, e := a.step(dt)
	a.target.SetPosition(lerp(a.srcX, a.diffX, e), lerp(a.srcY, a.diffY, e))
	return resultFor(p)
}

// RotateTo turns its target to a final angle.
type RotateTo struct {
	interval
	target Target
	final  float64
	start  float64
	diff   float64
}

// NewRotateTo creates a RotateTo action.
func NewRotateTo(tag uint32, target Target, angle float64, d time.Duration) *RotateTo {
	return &RotateTo{
		interval: newInterval(tag, d),
		target:   mustTarget(target, "RotateTo"),
		final:    angle,
	}
}

func (a *RotateTo) Start() {
	a.interval.Start()
	a.start = a.target.Angle()
	a.diff = a.final - a.start
}

func (a *RotateTo) Execute(dt float32) Result {
	if isDisposed(a.target) {
		return Done
	}
	p, e := a.step(dt)
	a.target.SetAngle(lerp(a.start, a.diff, e))
	return resultFor(p)
}

// scaleAxes selects which axes a scale action drives.
type scaleAxes uint8

const (
	scaleBoth scaleAxes = iota
	scaleXOnly
	scaleYOnly
)

// ScaleTo resizes its target toward a final scale factor. Depending on the
// constructor it drives both axes (NewScaleTo) or one (NewScaleXTo,
// NewScaleYTo).
type ScaleTo struct {
	interval
	target         Target
	axes           scaleAxes
	final          float64
	startX, startY float64
}

// NewScaleTo creates an action that scales both axes to final.
func NewScaleTo(tag uint32, target Target, final float64, d time.Duration) *ScaleTo {
	return newScaleTo(tag, target, final, d, scaleBoth, "ScaleTo")
}

// NewScaleXTo creates an action that scales only the X axis to final.
func NewScaleXTo(tag uint32, target Target, final float64, d time.Duration) *ScaleTo {
	return newScaleTo(tag, target, final, d, scaleXOnly, "ScaleXTo")
}

// NewScaleYTo creates an action that scales only the Y axis to final.
func NewScaleYTo(tag uint32, target Target, final float64, d time.Duration) *ScaleTo {
	return newScaleTo(tag, target, final, d, scaleYOnly, "ScaleYTo")
}

func newScaleTo(tag uint32, target Target, final float64, d time.Duration, axes scaleAxes, ctor string) *ScaleTo {
	return &ScaleTo{
		interval: newInterval(tag, d),
		target:   mustTarget(target, ctor),
		axes:     axes,
		final:    final,
	}
}

func (a *ScaleTo) Start() {
	a.interval.Start()
	a.startX, a.startY = a.target.Scale()
}

func (a *ScaleTo) Execute(dt float32) Result {
	if isDisposed(a.target) {
		return Done
	}
	p, e := a.step(dt)
	sx, sy := a.startX, a.startY
	if a.axes != scaleYOnly {
		sx = lerp(a.startX, a.final-a.startX, e)
	}
	if a.axes != scaleXOnly {
		sy = lerp(a.startY, a.final-a.startY, e)
	}
	a.target.SetScale(sx, sy)
	return resultFor(p)
}

// AlphaTo fades its target to a final 0..255 alpha.
type AlphaTo struct {
	interval
	target Target
	final  int
	start  int
	diff   int
}

// NewAlphaTo creates an AlphaTo action.
func NewAlphaTo(tag uint32, target Target, alpha int, d time.Duration) *AlphaTo {
	return &AlphaTo{
		interval: newInterval(tag, d),
		target:   mustTarget(target, "AlphaTo"),
		final:    alpha,
	}
}

func (a *AlphaTo) Start() {
	a.interval.Start()
	a.start = a.target.Alpha()
	a.diff = a.final - a.start
}

func (a *AlphaTo) Execute(dt float32) Result {
	if isDisposed(a.target) {
		return Done
	}
	p, e := a.step(dt)
	a.target.SetAlpha(int(lerp(float64(a.start), float64(a.diff), e)))
	return resultFor(p)
}

// Blink toggles visibility blinks times over the duration. Within each of
// the blinks equal slices of eased progress the target is hidden for the
// first half and shown for the second.
type Blink struct {
	interval
	target Target
	blinks int
}

// NewBlink creates a Blink action. blinks < 1 is treated as 1.
func NewBlink(tag uint32, target Target, blinks int, d time.Duration) *Blink {
	return &Blink{
		interval: newInterval(tag, d),
		target:   mustTarget(target, "Blink"),
		blinks:   max(blinks, 1),
	}
}

func (a *Blink) Execute(dt float32) Result {
	if isDisposed(a.target) {
		return Done
	}
	p, e := a.step(dt)
	slice := 1 / float32(a.blinks)
	m := float32(math.Mod(float64(e), float64(slice)))
	a.target.SetVisible(m > slice/2)
	return resultFor(p)
}

// DelayTime waits for its duration and does nothing else.
type DelayTime struct {
	interval
}

// NewDelayTime creates a DelayTime action.
func NewDelayTime(d time.Duration) *DelayTime {
	return &DelayTime{interval: newInterval(0, d)}
}

func (a *DelayTime) Execute(dt float32) Result {
	p, _ := a.step(dt)
	return resultFor(p)
}

// TintTo moves the color modulation of a Tintable resource toward a final
// color, each channel independently.
type TintTo struct {
	interval
	target Tintable
	final  [3]uint8
	start  [3]uint8
	diff   [3]int
}

// NewTintTo creates a TintTo action.
func NewTintTo(tag uint32, target Tintable, r, g, b uint8, d time.Duration) *TintTo {
	return &TintTo{
		interval: newInterval(tag, d),
		target:   mustTarget(target, "TintTo"),
		final:    [3]uint8{r, g, b},
	}
}

func (a *TintTo) Start() {
	a.interval.Start()
	r, g, b := a.target.ColorMod()
	a.start = [3]uint8{r, g, b}
	for i := range a.diff {
		a.diff[i] = int(a.final[i]) - int(a.start[i])
	}
}

func (a *TintTo) Execute(dt float32) Result {
	if isDisposed(a.target) {
		return Done
	}
	p, e := a.step(dt)
	var c [3]uint8
	for i := range c {
		c[i] = uint8(clampByte(int(lerp(float64(a.start[i]), float64(a.diff[i]), e))))
	}
	a.target.SetColorMod(c[0], c[1], c[2])
	return resultFor(p)
}
