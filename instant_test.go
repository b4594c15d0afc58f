package cadence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstantSetters(t *testing.T) {
	tex := NewTexture(nil)
	tests := []struct {
		name  string
		build func(n *Node) Action
		check func(t *testing.T, n *Node)
	}{
		{"Show", func(n *Node) Action { n.Visible = false; return NewShow(n) },
			func(t *testing.T, n *Node) { assert.True(t, n.Visible) }},
		{"Hide", func(n *Node) Action { return NewHide(n) },
			func(t *testing.T, n *Node) { assert.False(t, n.Visible) }},
		{"Place", func(n *Node) Action { return NewPlace(n, 3, 4) },
			func(t *testing.T, n *Node) { assert.Equal(t, [2]float64{3, 4}, [2]float64{n.X, n.Y}) }},
		{"PlaceX", func(n *Node) Action { n.Y = 9; return NewPlaceX(n, 3) },
			func(t *testing.T, n *Node) { assert.Equal(t, [2]float64{3, 9}, [2]float64{n.X, n.Y}) }},
		{"PlaceY", func(n *Node) Action { n.X = 9; return NewPlaceY(n, 4) },
			func(t *testing.T, n *Node) { assert.Equal(t, [2]float64{9, 4}, [2]float64{n.X, n.Y}) }},
		{"Rotate", func(n *Node) Action { return NewRotate(n, 1.5) },
			func(t *testing.T, n *Node) { assert.Equal(t, 1.5, n.Rotation) }},
		{"Scale", func(n *Node) Action { return NewScale(n, 2) },
			func(t *testing.T, n *Node) { assert.Equal(t, [2]float64{2, 2}, [2]float64{n.ScaleX, n.ScaleY}) }},
		{"Alpha", func(n *Node) Action { return NewAlpha(n, 51) },
			func(t *testing.T, n *Node) { assert.Equal(t, 51, n.Alpha()) }},
		{"Alpha clamps", func(n *Node) Action { return NewAlpha(n, 300) },
			func(t *testing.T, n *Node) { assert.Equal(t, 255, n.Alpha()) }},
		{"ZOrder", func(n *Node) Action { return NewZOrder(n, -3) },
			func(t *testing.T, n *Node) { assert.Equal(t, -3, n.ZIndex) }},
		{"TextureChange", func(n *Node) Action { return NewTextureChange(n, tex) },
			func(t *testing.T, n *Node) { assert.Same(t, tex, n.Texture) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNode("n")
			a := tt.build(n)
			a.Start()
			assert.Equal(t, Done, a.Execute(0))
			tt.check(t, n)
		})
	}
}

func TestInstantSkipsDisposedTarget(t *testing.T) {
	n := NewNode("n")
	n.Dispose()
	for _, a := range []Action{
		NewHide(n),
		NewPlace(n, 5, 5),
		NewRotate(n, 1),
		NewScale(n, 3),
		NewAlpha(n, 0),
		NewZOrder(n, 4),
	} {
		assert.Equal(t, Done, a.Execute(0))
	}
	assert.True(t, n.Visible)
	assert.Zero(t, n.X)
	assert.Zero(t, n.Rotation)
	assert.Equal(t, 1.0, n.ScaleX)
	assert.Equal(t, 255, n.Alpha())
	assert.Zero(t, n.ZIndex)
}
