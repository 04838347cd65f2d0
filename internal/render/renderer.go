//go:build ebiten

package render

import (
	"pixmas/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// FramePainter uploads a core.Frame into a single GPU image and draws it.
type FramePainter struct {
	w, h int
	img  *ebiten.Image
}

// NewFramePainter allocates a painter for a frame of size w*h.
func NewFramePainter(w, h int) *FramePainter {
	return &FramePainter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Blit uploads the frame pixels and draws them scaled onto dst.
func (fp *FramePainter) Blit(dst *ebiten.Image, f *core.Frame, scale int) {
	if f.W != fp.w || f.H != fp.h {
		return
	}
	fp.img.WritePixels(f.Pix)
	fp.Redraw(dst, scale)
}

// Redraw draws the last uploaded frame again without a fresh upload, for
// frames where the simulation reported nothing changed.
func (fp *FramePainter) Redraw(dst *ebiten.Image, scale int) {
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(fp.img, op)
}

// Size returns the dimensions of the underlying image.
func (fp *FramePainter) Size() (int, int) { return fp.w, fp.h }
