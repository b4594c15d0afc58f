package cadence

// Instant setters. Each performs one mutation on its target and returns Done.
// A disposed target is left untouched.

// Show makes the target visible.
type Show struct {
	instant
	target Target
}

// NewShow creates a Show action.
func NewShow(target Target) *Show {
	return &Show{target: mustTarget(target, "Show")}
}

func (a *Show) Execute(float32) Result {
	if !isDisposed(a.target) {
		a.target.SetVisible(true)
	}
	return Done
}

// Hide makes the target invisible.
type Hide struct {
	instant
	target Target
}

// NewHide creates a Hide action.
func NewHide(target Target) *Hide {
	return &Hide{target: mustTarget(target, "Hide")}
}

func (a *Hide) Execute(float32) Result {
	if !isDisposed(a.target) {
		a.target.SetVisible(false)
	}
	return Done
}

// Place moves the target to a fixed position.
type Place struct {
	instant
	target Target
	x, y   float64
}

// NewPlace creates a Place action.
func NewPlace(target Target, x, y float64) *Place {
	return &Place{target: mustTarget(target, "Place"), x: x, y: y}
}

func (a *Place) Execute(float32) Result {
	if !isDisposed(a.target) {
		a.target.SetPosition(a.x, a.y)
	}
	return Done
}

// PlaceX changes only the horizontal coordinate.
type PlaceX struct {
	instant
	target Target
	x      float64
}

// NewPlaceX creates a PlaceX action.
func NewPlaceX(target Target, x float64) *PlaceX {
	return &PlaceX{target: mustTarget(target, "PlaceX"), x: x}
}

func (a *PlaceX) Execute(float32) Result {
	if !isDisposed(a.target) {
		_, y := a.target.Position()
		a.target.SetPosition(a.x, y)
	}
	return Done
}

// PlaceY changes only the vertical coordinate.
type PlaceY struct {
	instant
	target Target
	y      float64
}

// NewPlaceY creates a PlaceY action.
func NewPlaceY(target Target, y float64) *PlaceY {
	return &PlaceY{target: mustTarget(target, "PlaceY"), y: y}
}

func (a *PlaceY) Execute(float32) Result {
	if !isDisposed(a.target) {
		x, _ := a.target.Position()
		a.target.SetPosition(x, a.y)
	}
	return Done
}

// Rotate sets the target angle.
type Rotate struct {
	instant
	target Target
	angle  float64
}

// NewRotate creates a Rotate action.
func NewRotate(target Target, angle float64) *Rotate {
	return &Rotate{target: mustTarget(target, "Rotate"), angle: angle}
}

func (a *Rotate) Execute(float32) Result {
	if !isDisposed(a.target) {
		a.target.SetAngle(a.angle)
	}
	return Done
}

// Scale sets a uniform scale on both axes.
type Scale struct {
	instant
	target Target
	scale  float64
}

// NewScale creates a Scale action.
func NewScale(target Target, scale float64) *Scale {
	return &Scale{target: mustTarget(target, "Scale"), scale: scale}
}

func (a *Scale) Execute(float32) Result {
	if !isDisposed(a.target) {
		a.target.SetScale(a.scale, a.scale)
	}
	return Done
}

// Alpha sets the target opacity on a 0..255 scale.
type Alpha struct {
	instant
	target Target
	alpha  int
}

// NewAlpha creates an Alpha action.
func NewAlpha(target Target, alpha int) *Alpha {
	return &Alpha{target: mustTarget(target, "Alpha"), alpha: alpha}
}

func (a *Alpha) Execute(float32) Result {
	if !isDisposed(a.target) {
		a.target.SetAlpha(a.alpha)
	}
	return Done
}

// ZOrder changes the target's draw order.
type ZOrder struct {
	instant
	target Target
	z      int
}

// NewZOrder creates a ZOrder action.
func NewZOrder(target Target, z int) *ZOrder {
	return &ZOrder{target: mustTarget(target, "ZOrder"), z: z}
}

func (a *ZOrder) Execute(float32) Result {
	if !isDisposed(a.target) {
		a.target.SetZOrder(a.z)
	}
	return Done
}

// TextureChange swaps the texture of a Textured target.
type TextureChange struct {
	instant
	target Textured
	tex    *Texture
}

// NewTextureChange creates a TextureChange action. tex may be nil to clear
// the texture.
func NewTextureChange(target Textured, tex *Texture) *TextureChange {
	return &TextureChange{target: mustTarget(target, "TextureChange"), tex: tex}
}

func (a *TextureChange) Execute(float32) Result {
	if !isDisposed(a.target) {
		a.target.SetTexture(a.tex)
	}
	return Done
}
