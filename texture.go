package cadence

import "github.com/hajimehoshi/ebiten/v2"

// Texture pairs an image with a color modulation, the resource TintTo
// animates. The modulation is applied at draw time through ColorScale, so
// several nodes sharing a Texture share its tint.
type Texture struct {
	Image *ebiten.Image

	r, g, b uint8
}

// NewTexture wraps img with a white (identity) color modulation. img may be
// nil for headless use.
func NewTexture(img *ebiten.Image) *Texture {
	return &Texture{Image: img, r: 255, g: 255, b: 255}
}

// ColorMod returns the current modulation.
func (t *Texture) ColorMod() (r, g, b uint8) {
	return t.r, t.g, t.b
}

// SetColorMod sets the modulation.
func (t *Texture) SetColorMod(r, g, b uint8) {
	t.r, t.g, t.b = r, g, b
}

// ColorScale returns the modulation as an ebiten color scale.
func (t *Texture) ColorScale() ebiten.ColorScale {
	var cs ebiten.ColorScale
	cs.Scale(float32(t.r)/255, float32(t.g)/255, float32(t.b)/255, 1)
	return cs
}

// Size returns the image dimensions, or 0,0 without an image.
func (t *Texture) Size() (w, h int) {
	if t.Image == nil {
		return 0, 0
	}
	b := t.Image.Bounds()
	return b.Dx(), b.Dy()
}
