//go:build !ebiten

package ui

// Overlay is a placeholder that satisfies the API expected by the GUI build.
type Overlay struct{}

// NewOverlay constructs the headless placeholder.
func NewOverlay() *Overlay { return &Overlay{} }

// SetPaused is a no-op placeholder.
func (o *Overlay) SetPaused(bool) {}

// SetSlipped is a no-op placeholder.
func (o *Overlay) SetSlipped(bool) {}

// Draw is a no-op placeholder to satisfy the interface shape.
func (o *Overlay) Draw(any) {}
