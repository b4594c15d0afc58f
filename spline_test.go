package cadence

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSplineToErrors(t *testing.T) {
	n := NewNode("n")
	_, err := NewSplineTo(0, n, nil, 0, 100*ms)
	assert.ErrorIs(t, err, ErrNoPoints)

	_, err = NewSplineTo(0, n, make([]Vec2, MaxSplinePoints+1), 0, 100*ms)
	assert.True(t, errors.Is(err, ErrTooManyPoints), "got %v", err)

	_, err = NewSplineTo(0, n, make([]Vec2, MaxSplinePoints), 0, 100*ms)
	assert.NoError(t, err)
}

func TestSplineToSnapsToFirstPointOnStart(t *testing.T) {
	n := NewNode("n")
	n.SetPosition(99, 99)
	a, err := NewSplineTo(0, n, []Vec2{{X: 5, Y: 6}, {X: 50, Y: 60}}, 0, 100*ms)
	require.NoError(t, err)
	a.Start()
	assert.Equal(t, [2]float64{5, 6}, [2]float64{n.X, n.Y})
}

func TestSplineToEndsAtLastPoint(t *testing.T) {
	n := NewNode("n")
	pts := []Vec2{{X: 0, Y: 0}, {X: 10, Y: 20}, {X: 40, Y: -10}}
	a, err := NewSplineTo(0, n, pts, 0.5, 300*ms)
	require.NoError(t, err)
	a.Start()
	for range 5 {
		require.Equal(t, InProgress, a.Execute(50))
	}
	assert.Equal(t, Done, a.Execute(50))
	assert.InDelta(t, 40, n.X, 1e-9)
	assert.InDelta(t, -10, n.Y, 1e-9)
}

func TestSplineToPassesThroughPoints(t *testing.T) {
	n := NewNode("n")
	pts := []Vec2{{X: 0, Y: 0}, {X: 10, Y: 20}, {X: 40, Y: -10}, {X: 0, Y: 0}}
	a, err := NewSplineTo(0, n, pts, 0, 400*ms)
	require.NoError(t, err)

	// Segment boundaries land exactly on control points.
	for i, want := range pts[:3] {
		got := a.at(float32(i) * 0.25)
		assert.InDelta(t, want.X, got.X, 1e-4, "point %d", i)
		assert.InDelta(t, want.Y, got.Y, 1e-4, "point %d", i)
	}
}

func TestSplineToTensionOneIsSmoothStep(t *testing.T) {
	n := NewNode("n")
	a, err := NewSplineTo(0, n, []Vec2{{X: 0, Y: 0}, {X: 30, Y: 0}}, 1, 100*ms)
	require.NoError(t, err)
	a.Start()
	// Two points give two segments; the first covers half the duration.
	a.Execute(25)
	assert.InDelta(t, 15, n.X, 1e-9)
	a.Execute(25)
	assert.InDelta(t, 30, n.X, 1e-9)
	a.Execute(25)
	assert.InDelta(t, 30, n.X, 1e-9)
}

func TestSplineToSinglePointHolds(t *testing.T) {
	n := NewNode("n")
	a, err := NewSplineTo(0, n, []Vec2{{X: 7, Y: 8}}, 0, 100*ms)
	require.NoError(t, err)
	a.Start()
	a.Execute(30)
	assert.Equal(t, [2]float64{7, 8}, [2]float64{n.X, n.Y})
}

func TestSplineToSegmentsFollowRawProgress(t *testing.T) {
	n := NewNode("n")
	pts := []Vec2{{X: 0}, {X: 100}, {X: 200}, {X: 300}}
	a, err := NewSplineTo(0, n, pts, 0, 1000*ms)
	require.NoError(t, err)
	a.SetInterpolation(EaseQuadIn)
	a.Start()

	// Halfway through the duration is the start of the third segment,
	// whatever the easing curve.
	require.Equal(t, InProgress, a.Execute(500))
	assert.InDelta(t, 200, n.X, 1e-6)
	assert.InDelta(t, 0, n.Y, 1e-6)
}
