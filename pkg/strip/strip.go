// Package strip keeps the color buffer for an addressable LED strip and
// pushes it to the hardware with global brightness and color correction
// applied, the way FastLED does on Arduino.
package strip

import (
	"image/color"
)

// ColorWriter sends a full frame of colors to the strip.
// ws2812.Device from tinygo.org/x/drivers satisfies it.
type ColorWriter interface {
	WriteColors(buf []color.RGBA) error
}

// TypicalLEDStrip is the correction for typical 5050 SMD strips.
var TypicalLEDStrip = color.RGBA{255, 176, 240, 255}

// UncorrectedColor leaves channel values untouched.
var UncorrectedColor = color.RGBA{255, 255, 255, 255}

// Strip is a fixed length pixel buffer bound to a ColorWriter.
type Strip struct {
	writer     ColorWriter
	pixels     []color.RGBA
	out        []color.RGBA
	brightness uint8
	correction color.RGBA
}

// Option configures a Strip.
type Option func(*Strip)

// WithBrightness sets the global brightness (0-255).
func WithBrightness(b uint8) Option {
	return func(s *Strip) { s.brightness = b }
}

// WithCorrection sets the per-channel color correction.
func WithCorrection(c color.RGBA) Option {
	return func(s *Strip) { s.correction = c }
}

// New allocates a strip of n pixels. Both buffers are allocated once here.
func New(w ColorWriter, n int, opts ...Option) *Strip {
	if n < 0 {
		n = 0
	}
	s := &Strip{
		writer:     w,
		pixels:     make([]color.RGBA, n),
		out:        make([]color.RGBA, n),
		brightness: 255,
		correction: UncorrectedColor,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Len returns the number of pixels.
func (s *Strip) Len() int {
	return len(s.pixels)
}

// Pixels returns the pixel buffer. Writes to it show up on the next Show.
func (s *Strip) Pixels() []color.RGBA {
	return s.pixels
}

// SetPixel sets pixel i. Out of range indexes are ignored.
func (s *Strip) SetPixel(i int, c color.RGBA) {
	if i < 0 || i >= len(s.pixels) {
		return
	}
	s.pixels[i] = c
}

// Clear turns every pixel off in the buffer. Call Show to apply.
func (s *Strip) Clear() {
	for i := range s.pixels {
		s.pixels[i] = color.RGBA{}
	}
}

// SetBrightness changes the global brightness.
func (s *Strip) SetBrightness(b uint8) {
	s.brightness = b
}

// Brightness returns the global brightness.
func (s *Strip) Brightness() uint8 {
	return s.brightness
}

// Show scales the buffer by correction and brightness and writes it out.
// The pixel buffer itself is left unchanged.
func (s *Strip) Show() error {
	adjR := scale8(s.correction.R, s.brightness)
	adjG := scale8(s.correction.G, s.brightness)
	adjB := scale8(s.correction.B, s.brightness)

	for i, c := range s.pixels {
		s.out[i] = color.RGBA{
			R: scale8(c.R, adjR),
			G: scale8(c.G, adjG),
			B: scale8(c.B, adjB),
			A: c.A,
		}
	}
	return s.writer.WriteColors(s.out)
}

// scale8 scales v by scale/256 with 255 meaning "unchanged".
func scale8(v, scale uint8) uint8 {
	return uint8((uint16(v) * (1 + uint16(scale))) >> 8)
}
