package core

// Pixel is a packed RGBA color value, R in the high byte. The zero value
// doubles as the empty/transparent sentinel throughout the simulations, which
// works because Pack always sets the alpha byte.
type Pixel uint32

// Pack builds an opaque Pixel from 8-bit color channels.
func Pack(r, g, b uint8) Pixel {
	return Pixel(r)<<24 | Pixel(g)<<16 | Pixel(b)<<8 | 0xff
}

// RGBA8 unpacks the color channels.
func (p Pixel) RGBA8() (r, g, b, a uint8) {
	return uint8(p >> 24), uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// Frame is a W×H RGBA pixel buffer the hacks composite into. The byte layout
// matches what the display layer uploads directly, four bytes per pixel in
// row-major order.
type Frame struct {
	W, H int
	Pix  []byte
}

// NewFrame allocates a frame with the given dimensions.
func NewFrame(w, h int) *Frame {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Frame{W: w, H: h, Pix: make([]byte, 4*w*h)}
}

// Clear resets every pixel to opaque black.
func (f *Frame) Clear() {
	for i := 0; i < len(f.Pix); i += 4 {
		f.Pix[i+0] = 0
		f.Pix[i+1] = 0
		f.Pix[i+2] = 0
		f.Pix[i+3] = 0xff
	}
}

// SetPixel writes a packed color at (x, y). Out-of-bounds writes are dropped.
func (f *Frame) SetPixel(x, y int, p Pixel) {
	if x < 0 || x >= f.W || y < 0 || y >= f.H {
		return
	}
	base := (y*f.W + x) * 4
	f.Pix[base+0] = uint8(p >> 24)
	f.Pix[base+1] = uint8(p >> 16)
	f.Pix[base+2] = uint8(p >> 8)
	f.Pix[base+3] = uint8(p)
}

// PixelAt reads back the packed color at (x, y), or zero out of bounds.
func (f *Frame) PixelAt(x, y int) Pixel {
	if x < 0 || x >= f.W || y < 0 || y >= f.H {
		return 0
	}
	base := (y*f.W + x) * 4
	return Pixel(f.Pix[base+0])<<24 | Pixel(f.Pix[base+1])<<16 |
		Pixel(f.Pix[base+2])<<8 | Pixel(f.Pix[base+3])
}
