package cadence

import (
	"math"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// computeLocalTransform computes the affine matrix [a, b, c, d, tx, ty] that
// maps texture space to screen space for n.
//
// Composition order:
//
//	Translate(-PivotX, -PivotY) -> Scale -> Rotate -> Translate(X, Y)
func computeLocalTransform(n *Node) [6]float64 {
	sx := n.ScaleX
	sy := n.ScaleY
	sin, cos := math.Sincos(n.Rotation)

	preTx := -n.PivotX * sx
	preTy := -n.PivotY * sy

	return [6]float64{
		cos * sx, sin * sx,
		-sin * sy, cos * sy,
		cos*preTx - sin*preTy + n.X,
		sin*preTx + cos*preTy + n.Y,
	}
}

// GeoM returns the node's transform as an ebiten matrix. The matrix is
// cached and recomputed only when the node is dirty; writes to the exported
// transform fields must be followed by MarkDirty.
func (n *Node) GeoM() ebiten.GeoM {
	if n.transformDirty {
		n.local = computeLocalTransform(n)
		n.transformDirty = false
	}
	m := n.local
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// colorScale combines the node tint, the texture modulation and Opacity.
func (n *Node) colorScale() ebiten.ColorScale {
	var cs ebiten.ColorScale
	if n.Texture != nil {
		cs = n.Texture.ColorScale()
	}
	cs.Scale(float32(n.Color.R), float32(n.Color.G), float32(n.Color.B), float32(n.Color.A))
	cs.ScaleAlpha(float32(n.Opacity))
	return cs
}

// Draw renders the node onto dst. Hidden, disposed and texture-less nodes
// draw nothing.
func (n *Node) Draw(dst *ebiten.Image) {
	if !n.Visible || n.disposed || n.Texture == nil || n.Texture.Image == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM = n.GeoM()
	op.ColorScale = n.colorScale()
	dst.DrawImage(n.Texture.Image, op)
}

// DrawNodes draws nodes in ascending ZIndex order. Nodes sharing a ZIndex
// keep their slice order. The input slice is not reordered.
func DrawNodes(dst *ebiten.Image, nodes []*Node) {
	sorted := sortByZ(nodes)
	for _, n := range sorted {
		n.Draw(dst)
	}
}

func sortByZ(nodes []*Node) []*Node {
	sorted := slices.Clone(nodes)
	slices.SortStableFunc(sorted, func(a, b *Node) int {
		return a.ZIndex - b.ZIndex
	})
	return sorted
}
