package clock

import (
	"fmt"
	"image"
	"time"

	"pixmas/internal/core"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// segmentThickness is fixed; the rest of the layout scales with the
	// universe dimensions.
	segmentThickness = 8

	// hueRotationMinutes is how long a full trip around the hue wheel takes
	// in hue-cycle mode.
	hueRotationMinutes = 30
)

// segmentsByDigit maps a decimal digit to its lit segments, bit s = segment s.
// Segment order: 0 top, 1 top-left, 2 top-right, 3 middle, 4 bottom-left,
// 5 bottom-right, 6 bottom. Note 7 lights the top-left serif.
var segmentsByDigit = [10]uint8{
	0x77, // 0
	0x24, // 1
	0x5d, // 2
	0x6d, // 3
	0x2e, // 4
	0x6b, // 5
	0x7b, // 6
	0x27, // 7
	0x7f, // 8
	0x6f, // 9
}

// Digit is one seven-segment digit slot: which segments are lit, and the
// rectangle each segment covers in universe coordinates.
type Digit struct {
	Segment [7]bool
	SegRect [7]image.Rectangle
}

// sizeFor lays out the segment rectangles for a digit anchored at (x, y).
// sw and sh are segment width and height; st segment thickness. The rendered
// digit spans (sw, 2*sh+st) due to the midline.
func (d *Digit) sizeFor(x, y, sw, sh, st int) {
	for s := 0; s < 7; s++ {
		rx, ry, rw, rh := x, y, st, st
		if s == 0 || s == 3 || s == 6 { // horizontal
			rx += st
			rw = sw - st*2
		} else { // vertical
			ry += st
			rh = sh - st
		}
		if s == 2 || s == 5 { // right
			rx += sw - st
		}
		if s == 4 || s == 5 { // bottom vertical
			ry += sh
		}
		if s == 3 { // middle
			ry += sh
		}
		if s == 6 { // bottom
			ry += sh * 2
		}
		d.SegRect[s] = image.Rect(rx, ry, rx+rw, ry+rh)
	}
}

// setNumber switches the lit-segment pattern to the given digit value.
func (d *Digit) setNumber(n int) {
	bits := segmentsByDigit[n]
	for s := 0; s < 7; s++ {
		d.Segment[s] = bits&(1<<s) != 0
	}
}

// DigitalClock rasterizes an HH:MM seven-segment clock face into a boolean
// mask. The mask shape changes at most once per minute; the display color
// changes once per second. The mask is used both for compositing and as the
// physics obstacle field.
type DigitalClock struct {
	w, h     int
	hueCycle bool

	digits [4]Digit
	mask   *core.ByteGrid

	lastMinute int
	lastSecond int
	color      core.Pixel
}

// New lays out a clock face for a w×h universe. It fails when the dimensions
// are too small to hold the segment geometry; there is no degraded mode.
func New(w, h int, hueCycle bool) (*DigitalClock, error) {
	st := segmentThickness
	y := (2*h)/7 - st/2 // centering correction
	sw := (2 * w) / 13
	sh := (3 * h) / 14 // i.e. 1.5 sevenths
	if sw <= st*2 || sh <= st || y < 0 {
		return nil, fmt.Errorf("clock: %dx%d is too small for the segment layout", w, h)
	}

	c := &DigitalClock{
		w:          w,
		h:          h,
		hueCycle:   hueCycle,
		mask:       core.NewByteGrid(w, h),
		lastMinute: -1,
		lastSecond: -1,
		color:      core.Pack(0, 255, 0),
	}
	// Spacings as even divisions of width, where digits are double-wide:
	// gap, 2*digit, gap, 2*digit, colon, 2*digit, gap, 2*digit, gap = 13.
	// For height it's 2*gap, 3*digit, 2*gap = 7.
	for i := range c.digits {
		c.digits[i].sizeFor((((i*3)+1)*w)/13, y, sw, sh, st)
	}
	return c, nil
}

// SetTime updates the clock face for the given wall-clock reading. It returns
// true only when the solid regions changed shape, so callers can skip
// re-deriving anything expensive otherwise. Repeated calls within the same
// second are free.
func (c *DigitalClock) SetTime(t time.Time) bool {
	sec := t.Second()
	if c.lastSecond == sec {
		return false
	}
	c.lastSecond = sec
	c.color = c.colorFor(t.Minute(), sec)

	// The actual rasterization is only every minute.
	if c.lastMinute == t.Minute() {
		return false
	}
	c.lastMinute = t.Minute()
	c.digits[0].setNumber(t.Hour() / 10)
	c.digits[1].setNumber(t.Hour() % 10)
	c.digits[2].setNumber(t.Minute() / 10)
	c.digits[3].setNumber(t.Minute() % 10)
	c.rasterize()
	return true
}

func (c *DigitalClock) rasterize() {
	c.mask.Clear()
	cells := c.mask.Cells()
	for i := range c.digits {
		d := &c.digits[i]
		for s := 0; s < 7; s++ {
			if !d.Segment[s] {
				continue
			}
			r := d.SegRect[s]
			for y := r.Min.Y; y < r.Max.Y; y++ {
				for x := r.Min.X; x < r.Max.X; x++ {
					cells[c.mask.Index(x, y)] = 1
				}
			}
		}
	}
}

// colorFor derives the cosmetic display color for the given minute and second.
func (c *DigitalClock) colorFor(min, sec int) core.Pixel {
	if c.hueCycle {
		s := sec + 60*(min%hueRotationMinutes)
		hue := float64(s) / (60.0 * hueRotationMinutes)
		r, g, b := colorful.Hsv(hue*360, 1, 1).RGB255()
		return core.Pack(r, g, b)
	}
	// Festive mode: bounce between red and green over each minute.
	s := sec
	if min%2 == 1 {
		s = 59 - s
	}
	if s < 30 {
		return core.Pack(255, uint8((s*255)/29), 0)
	}
	return core.Pack(uint8(((59-s)*255)/29), 255, 0)
}

// SolidAt reports whether the clock face is opaque at (x, y). The coordinates
// must be within the clock's own bounds; callers clamp before querying. That
// is a precondition, not a recoverable error.
func (c *DigitalClock) SolidAt(x, y int) bool {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		panic(fmt.Sprintf("clock: SolidAt(%d, %d) out of %dx%d bounds", x, y, c.w, c.h))
	}
	return c.mask.Cells()[c.mask.Index(x, y)] != 0
}

// Digit exposes the segment states and rectangles of digit slot i, so callers
// can spawn effects exactly over a segment's footprint.
func (c *DigitalClock) Digit(i int) *Digit {
	return &c.digits[i]
}

// TopY returns the y coordinate of the top edge of the digit area.
func (c *DigitalClock) TopY() int {
	return c.digits[0].SegRect[0].Min.Y
}

// Color returns the current display color.
func (c *DigitalClock) Color() core.Pixel {
	return c.color
}

// Render composites the clock face over the frame, color-keyed so unlit
// pixels stay transparent.
func (c *DigitalClock) Render(f *core.Frame) {
	cells := c.mask.Cells()
	for y := 0; y < c.h; y++ {
		row := y * c.w
		for x := 0; x < c.w; x++ {
			if cells[row+x] != 0 {
				f.SetPixel(x, y, c.color)
			}
		}
	}
}
