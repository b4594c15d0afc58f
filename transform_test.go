package cadence

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestComputeLocalTransform(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(n *Node)
		px, py       float64
		wantX, wantY float64
	}{
		{"identity", func(n *Node) {}, 5, 7, 5, 7},
		{"translate", func(n *Node) { n.X, n.Y = 10, 20 }, 1, 1, 11, 21},
		{"scale", func(n *Node) { n.ScaleX, n.ScaleY = 2, 3 }, 1, 1, 2, 3},
		{"rotate 90", func(n *Node) { n.Rotation = math.Pi / 2 }, 1, 0, 0, 1},
		{"pivot", func(n *Node) { n.PivotX, n.PivotY = 16, 16; n.X, n.Y = 100, 100 }, 16, 16, 100, 100},
		{"pivot scale rotate", func(n *Node) {
			n.PivotX, n.PivotY = 1, 0
			n.ScaleX, n.ScaleY = 2, 2
			n.Rotation = math.Pi
			n.X, n.Y = 10, 0
		}, 2, 0, 8, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNode("n")
			tt.setup(n)
			g := n.GeoM()
			x, y := g.Apply(tt.px, tt.py)
			if !approxEqual(x, tt.wantX) || !approxEqual(y, tt.wantY) {
				t.Errorf("point = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestGeoMCachesUntilDirty(t *testing.T) {
	n := NewNode("n")
	n.X, n.Y = 5, 6
	g := n.GeoM()
	if n.transformDirty {
		t.Error("GeoM should clear the dirty flag")
	}
	if x, y := g.Apply(0, 0); !approxEqual(x, 5) || !approxEqual(y, 6) {
		t.Fatalf("origin maps to (%v, %v), want (5, 6)", x, y)
	}

	// A direct field write is not seen until the node is marked dirty.
	n.X = 50
	g = n.GeoM()
	if x, _ := g.Apply(0, 0); !approxEqual(x, 5) {
		t.Errorf("x = %v before MarkDirty, want cached 5", x)
	}
	n.MarkDirty()
	g = n.GeoM()
	if x, _ := g.Apply(0, 0); !approxEqual(x, 50) {
		t.Errorf("x = %v after MarkDirty, want 50", x)
	}

	// Setters mark the node dirty themselves.
	n.SetScale(2, 2)
	g = n.GeoM()
	if x, y := g.Apply(1, 1); !approxEqual(x, 52) || !approxEqual(y, 8) {
		t.Errorf("(1, 1) maps to (%v, %v) after SetScale, want (52, 8)", x, y)
	}
}

func TestSortByZIsStable(t *testing.T) {
	a, b, c, d := NewNode("a"), NewNode("b"), NewNode("c"), NewNode("d")
	a.ZIndex, b.ZIndex, c.ZIndex, d.ZIndex = 1, 0, 1, -1
	in := []*Node{a, b, c, d}
	got := sortByZ(in)
	want := []*Node{d, b, a, c}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order[%d] = %s, want %s", i, got[i].Name, want[i].Name)
		}
	}
	if in[0] != a || in[3] != d {
		t.Error("input slice was reordered")
	}
}

func TestDrawSkipsHiddenAndDisposed(t *testing.T) {
	dst := ebiten.NewImage(4, 4)
	hidden := NewNode("hidden")
	hidden.Visible = false
	disposed := NewNode("disposed")
	disposed.Dispose()
	bare := NewNode("bare")
	// None of these have an image to draw; the call must not panic.
	DrawNodes(dst, []*Node{hidden, disposed, bare, NewSprite("headless", NewTexture(nil))})
}

func TestColorScaleCombinesTintAndOpacity(t *testing.T) {
	tex := NewTexture(nil)
	tex.SetColorMod(255, 0, 255)
	n := NewSprite("n", tex)
	n.Opacity = 0.5
	cs := n.colorScale()
	if cs.R() != 0.5 || cs.G() != 0 || cs.A() != 0.5 {
		t.Errorf("color scale = (%v, %v, %v, %v)", cs.R(), cs.G(), cs.B(), cs.A())
	}
}
