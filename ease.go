package cadence

import (
	"math"

	"github.com/tanema/gween/ease"
)

// EaseFunc maps normalized progress in [0, 1] to eased progress.
type EaseFunc func(t float32) float32

// Ease selects a curve from the interpolation catalog.
type Ease uint8

const (
	EaseLinear Ease = iota
	EaseSineIn
	EaseSineOut
	EaseSineInOut
	EaseExpoIn
	EaseExpoOut
	EaseExpoInOut
	EaseBounceIn
	EaseBounceOut
	EaseBounceInOut
	EaseElasticIn
	EaseElasticOut
	EaseElasticInOut
	EaseQuadIn
	EaseQuadOut
	EaseQuadInOut
	EaseCubicIn
	EaseCubicOut
	EaseCubicInOut
	EaseQuartIn
	EaseQuartOut
	EaseQuartInOut
	EaseQuintIn
	EaseQuintOut
	EaseQuintInOut
	EaseCircIn
	EaseCircOut
	EaseCircInOut
	EaseBackIn
	EaseBackOut
	EaseBackInOut

	easeCount
)

var easeNames = [easeCount]string{
	EaseLinear:       "linear",
	EaseSineIn:       "sine-in",
	EaseSineOut:      "sine-out",
	EaseSineInOut:    "sine-in-out",
	EaseExpoIn:       "expo-in",
	EaseExpoOut:      "expo-out",
	EaseExpoInOut:    "expo-in-out",
	EaseBounceIn:     "bounce-in",
	EaseBounceOut:    "bounce-out",
	EaseBounceInOut:  "bounce-in-out",
	EaseElasticIn:    "elastic-in",
	EaseElasticOut:   "elastic-out",
	EaseElasticInOut: "elastic-in-out",
	EaseQuadIn:       "quad-in",
	EaseQuadOut:      "quad-out",
	EaseQuadInOut:    "quad-in-out",
	EaseCubicIn:      "cubic-in",
	EaseCubicOut:     "cubic-out",
	EaseCubicInOut:   "cubic-in-out",
	EaseQuartIn:      "quart-in",
	EaseQuartOut:     "quart-out",
	EaseQuartInOut:   "quart-in-out",
	EaseQuintIn:      "quint-in",
	EaseQuintOut:     "quint-out",
	EaseQuintInOut:   "quint-in-out",
	EaseCircIn:       "circ-in",
	EaseCircOut:      "circ-out",
	EaseCircInOut:    "circ-in-out",
	EaseBackIn:       "back-in",
	EaseBackOut:      "back-out",
	EaseBackInOut:    "back-in-out",
}

// easeFuncs is filled in init because the elastic entries close over
// package state.
var easeFuncs [easeCount]EaseFunc

func init() {
	easeFuncs = [easeCount]EaseFunc{
		EaseLinear:       easeLinear,
		EaseSineIn:       fromTween(ease.InSine),
		EaseSineOut:      fromTween(ease.OutSine),
		EaseSineInOut:    fromTween(ease.InOutSine),
		EaseExpoIn:       fromTween(ease.InExpo),
		EaseExpoOut:      fromTween(ease.OutExpo),
		EaseExpoInOut:    fromTween(ease.InOutExpo),
		EaseBounceIn:     fromTween(ease.InBounce),
		EaseBounceOut:    fromTween(ease.OutBounce),
		EaseBounceInOut:  fromTween(ease.InOutBounce),
		EaseElasticIn:    easeElasticIn,
		EaseElasticOut:   easeElasticOut,
		EaseElasticInOut: easeElasticInOut,
		EaseQuadIn:       fromTween(ease.InQuad),
		EaseQuadOut:      fromTween(ease.OutQuad),
		EaseQuadInOut:    fromTween(ease.InOutQuad),
		EaseCubicIn:      fromTween(ease.InCubic),
		EaseCubicOut:     fromTween(ease.OutCubic),
		EaseCubicInOut:   fromTween(ease.InOutCubic),
		EaseQuartIn:      fromTween(ease.InQuart),
		EaseQuartOut:     fromTween(ease.OutQuart),
		EaseQuartInOut:   fromTween(ease.InOutQuart),
		EaseQuintIn:      fromTween(ease.InQuint),
		EaseQuintOut:     fromTween(ease.OutQuint),
		EaseQuintInOut:   fromTween(ease.InOutQuint),
		EaseCircIn:       fromTween(ease.InCirc),
		EaseCircOut:      fromTween(ease.OutCirc),
		EaseCircInOut:    fromTween(ease.InOutCirc),
		EaseBackIn:       fromTween(ease.InBack),
		EaseBackOut:      fromTween(ease.OutBack),
		EaseBackInOut:    fromTween(ease.InOutBack),
	}
}

// Func returns the curve for e. Unknown keys fall back to linear.
func (e Ease) Func() EaseFunc {
	if e >= easeCount {
		return easeLinear
	}
	return easeFuncs[e]
}

func (e Ease) String() string {
	if e >= easeCount {
		return "linear"
	}
	return easeNames[e]
}

// ParseEase looks up a catalog key by its String form. The second return is
// false for unknown names, in which case EaseLinear is returned.
func ParseEase(name string) (Ease, bool) {
	for i, n := range easeNames {
		if n == name {
			return Ease(i), true
		}
	}
	return EaseLinear, false
}

func easeLinear(t float32) float32 { return t }

// fromTween adapts a gween easing function to normalized progress. Both
// endpoints return t exactly; some Penner curves carry a small offset there.
func fromTween(fn ease.TweenFunc) EaseFunc {
	return func(t float32) float32 {
		if t == 0 || t == 1 {
			return t
		}
		return fn(t, 0, 1, 1)
	}
}

// --- Elastic ---

const (
	defaultElasticPeriod      = 0.3
	defaultElasticInOutPeriod = 0.3 * 1.5
)

// elasticPeriod is shared by every elastic curve in the process.
var elasticPeriod float32 = defaultElasticPeriod

// SetElasticPeriod sets the oscillation period used by all elastic curves.
// Typical values lie between 0.1 and 0.9. The setting is process-wide.
func SetElasticPeriod(p float32) {
	elasticPeriod = p
}

// ElasticPeriod returns the current process-wide elastic period.
func ElasticPeriod() float32 {
	return elasticPeriod
}

func periodOr(def float32) float32 {
	if elasticPeriod > 0 {
		return elasticPeriod
	}
	return def
}

func easeElasticIn(t float32) float32 {
	if t == 0 || t == 1 {
		return t
	}
	p := periodOr(defaultElasticPeriod)
	s := p / 4
	t--
	return float32(-math.Pow(2, float64(10*t)) * math.Sin(float64(t-s)*2*math.Pi/float64(p)))
}

func easeElasticOut(t float32) float32 {
	if t == 0 || t == 1 {
		return t
	}
	p := periodOr(defaultElasticPeriod)
	s := p / 4
	return float32(math.Pow(2, float64(-10*t))*math.Sin(float64(t-s)*2*math.Pi/float64(p)) + 1)
}

func easeElasticInOut(t float32) float32 {
	if t == 0 || t == 1 {
		return t
	}
	p := periodOr(defaultElasticInOutPeriod)
	s := p / 4
	t = t*2 - 1
	if t < 0 {
		return float32(-0.5 * math.Pow(2, float64(10*t)) * math.Sin(float64(t-s)*2*math.Pi/float64(p)))
	}
	return float32(math.Pow(2, float64(-10*t))*math.Sin(float64(t-s)*2*math.Pi/float64(p))*0.5 + 1)
}
