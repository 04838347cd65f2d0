//go:build !ebiten

package render

import "pixmas/internal/core"

// FramePainter is a placeholder that satisfies the API expected by the GUI build.
type FramePainter struct{}

// NewFramePainter panics to indicate that the ebiten build tag is required.
func NewFramePainter(int, int) *FramePainter {
	panic("render.NewFramePainter requires building with the 'ebiten' tag")
}

// Blit is a no-op placeholder.
func (fp *FramePainter) Blit(any, *core.Frame, int) {}

// Redraw is a no-op placeholder.
func (fp *FramePainter) Redraw(any, int) {}

// Size returns zeros in the headless build.
func (fp *FramePainter) Size() (int, int) { return 0, 0 }
