//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws status text on top of the running hack.
type Overlay struct {
	paused  bool
	slipped bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// SetPaused toggles the pause notice.
func (o *Overlay) SetPaused(paused bool) { o.paused = paused }

// SetSlipped toggles the too-slow notice.
func (o *Overlay) SetSlipped(slipped bool) { o.slipped = slipped }

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	face := basicfont.Face7x13
	if o.paused {
		text.Draw(screen, "paused (space resumes)", face, 8, 16,
			color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
	if o.slipped {
		text.Draw(screen, "running too slow, skipping ticks", face, 8, 32,
			color.RGBA{R: 230, G: 120, B: 120, A: 255})
	}
}
