package cadence

import (
	"math"
	"testing"
)

func TestEaseEndpoints(t *testing.T) {
	for e := Ease(0); e < easeCount; e++ {
		fn := e.Func()
		if got := fn(0); got != 0 {
			t.Errorf("%s(0) = %v, want 0", e, got)
		}
		if got := fn(1); got != 1 {
			t.Errorf("%s(1) = %v, want 1", e, got)
		}
	}
}

func TestEaseKnownValues(t *testing.T) {
	tests := []struct {
		ease Ease
		t    float32
		want float64
	}{
		{EaseLinear, 0.25, 0.25},
		{EaseSineIn, 0.5, 1 - math.Cos(math.Pi/4)},
		{EaseSineOut, 0.5, math.Sin(math.Pi / 4)},
		{EaseSineInOut, 0.5, 0.5},
		{EaseExpoIn, 0.5, math.Pow(2, -5)},
		{EaseExpoOut, 0.5, 1 - math.Pow(2, -5)},
		{EaseQuadIn, 0.5, 0.25},
		{EaseCubicOut, 0.5, 0.875},
		{EaseBounceOut, 1 / 2.75, 1},
	}
	for _, tt := range tests {
		t.Run(tt.ease.String(), func(t *testing.T) {
			got := float64(tt.ease.Func()(tt.t))
			if math.Abs(got-tt.want) > 1e-3 {
				t.Errorf("%s(%v) = %v, want %v", tt.ease, tt.t, got, tt.want)
			}
		})
	}
}

func TestEaseUnknownFallsBackToLinear(t *testing.T) {
	e := Ease(200)
	if got := e.Func()(0.3); got != 0.3 {
		t.Errorf("unknown ease(0.3) = %v, want 0.3", got)
	}
	if e.String() != "linear" {
		t.Errorf("String = %q, want linear", e.String())
	}
}

func TestParseEase(t *testing.T) {
	for e := Ease(0); e < easeCount; e++ {
		got, ok := ParseEase(e.String())
		if !ok || got != e {
			t.Errorf("ParseEase(%q) = %v, %v", e.String(), got, ok)
		}
	}
	if got, ok := ParseEase("wobble"); ok || got != EaseLinear {
		t.Errorf("ParseEase(wobble) = %v, %v; want linear, false", got, ok)
	}
}

func TestElasticPeriod(t *testing.T) {
	defer SetElasticPeriod(defaultElasticPeriod)

	if ElasticPeriod() != defaultElasticPeriod {
		t.Fatalf("default period = %v", ElasticPeriod())
	}
	before := EaseElasticOut.Func()(0.2)
	SetElasticPeriod(0.6)
	after := EaseElasticOut.Func()(0.2)
	if before == after {
		t.Error("changing the period did not change the curve")
	}

	// A non-positive period falls back to the defaults.
	SetElasticPeriod(0)
	if got := EaseElasticOut.Func()(0.2); got != before {
		t.Errorf("period 0 gives %v, want default %v", got, before)
	}
	SetElasticPeriod(defaultElasticInOutPeriod)
	inOut := EaseElasticInOut.Func()(0.3)
	SetElasticPeriod(-1)
	if got := EaseElasticInOut.Func()(0.3); got != inOut {
		t.Errorf("in-out with period -1 = %v, want %v", got, inOut)
	}
}

func TestNewSchedulerAppliesElasticPeriod(t *testing.T) {
	defer SetElasticPeriod(defaultElasticPeriod)
	NewScheduler(Config{Settings: Settings{ElasticPeriod: 0.45}})
	if ElasticPeriod() != 0.45 {
		t.Errorf("ElasticPeriod = %v, want 0.45", ElasticPeriod())
	}
}
