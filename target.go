package cadence

// Target is the scene-graph handle that node actions mutate. The scheduler
// never creates or destroys targets; it only calls these accessors.
//
// Alpha is expressed on a 0..255 scale. Angle units are whatever the target
// uses; Node uses radians.
type Target interface {
	Position() (x, y float64)
	SetPosition(x, y float64)
	Angle() float64
	SetAngle(angle float64)
	Scale() (sx, sy float64)
	SetScale(sx, sy float64)
	Alpha() int
	SetAlpha(alpha int)
	ZOrder() int
	SetZOrder(z int)
	IsVisible() bool
	SetVisible(visible bool)
}

// Textured is a target whose image can be swapped by TextureChange.
type Textured interface {
	SetTexture(tex *Texture)
}

// Tintable is a color-modulated resource animated by TintTo.
type Tintable interface {
	ColorMod() (r, g, b uint8)
	SetColorMod(r, g, b uint8)
}

// Disposable is implemented by targets that can be torn down while actions
// still reference them. Actions stop touching a disposed target and report
// Done.
type Disposable interface {
	IsDisposed() bool
}

func isDisposed(t any) bool {
	d, ok := t.(Disposable)
	return ok && d.IsDisposed()
}

func mustTarget[T any](t T, ctor string) T {
	if any(t) == nil {
		panic("cadence: " + ctor + " requires a non-nil target")
	}
	return t
}
