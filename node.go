package cadence

import "math"

// nodeIDCounter is not atomic; nodes are created on the game goroutine.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a minimal sprite-like target. It implements Target, Textured and
// Disposable, and can draw itself onto an ebiten image (see DrawNodes).
// Hosts with their own scene graph implement Target on their node type
// instead.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	PivotX   float64
	PivotY   float64

	// Visibility & ordering
	Opacity float64 // [0, 1]
	Visible bool
	ZIndex  int

	// Appearance
	Color   Color
	Texture *Texture

	local          [6]float64
	transformDirty bool
	disposed       bool
}

// NewNode creates a visible node at the origin with unit scale and full alpha.
func NewNode(name string) *Node {
	return &Node{
		ID:             nextNodeID(),
		Name:           name,
		ScaleX:         1,
		ScaleY:         1,
		Opacity:        1,
		Visible:        true,
		Color:          ColorWhite,
		transformDirty: true,
	}
}

// NewSprite creates a node that draws tex.
func NewSprite(name string, tex *Texture) *Node {
	n := NewNode(name)
	n.Texture = tex
	return n
}

// MarkDirty flags the node's transform for recomputation. The setters call
// it; code that assigns X, Y, ScaleX, ScaleY, Rotation or the pivot directly
// must call it before the next draw.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// Position returns the node's local position.
func (n *Node) Position() (x, y float64) {
	return n.X, n.Y
}

// SetPosition moves the node and marks it dirty.
func (n *Node) SetPosition(x, y float64) {
	n.X, n.Y = x, y
	n.transformDirty = true
}

// Angle returns the rotation in radians.
func (n *Node) Angle() float64 {
	return n.Rotation
}

// SetAngle sets the rotation in radians.
func (n *Node) SetAngle(angle float64) {
	n.Rotation = angle
	n.transformDirty = true
}

// Scale returns the per-axis scale factors.
func (n *Node) Scale() (sx, sy float64) {
	return n.ScaleX, n.ScaleY
}

// SetScale sets the per-axis scale factors.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX, n.ScaleY = sx, sy
	n.transformDirty = true
}

// Alpha returns Opacity on a 0..255 scale.
func (n *Node) Alpha() int {
	return int(math.Round(n.Opacity * 255))
}

// SetAlpha sets Opacity from a 0..255 value; out-of-range values clamp.
func (n *Node) SetAlpha(alpha int) {
	n.Opacity = float64(clampByte(alpha)) / 255
}

// ZOrder returns ZIndex.
func (n *Node) ZOrder() int {
	return n.ZIndex
}

// SetZOrder sets ZIndex.
func (n *Node) SetZOrder(z int) {
	n.ZIndex = z
}

// IsVisible reports whether the node is drawn.
func (n *Node) IsVisible() bool {
	return n.Visible
}

// SetVisible shows or hides the node.
func (n *Node) SetVisible(visible bool) {
	n.Visible = visible
}

// SetTexture swaps the node's texture.
func (n *Node) SetTexture(tex *Texture) {
	n.Texture = tex
}

// Dispose marks the node as disposed. Actions targeting it finish without
// further writes.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.disposed = true
	n.ID = 0
	n.Texture = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

func clampByte(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return v
	}
}
