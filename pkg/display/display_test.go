package display

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScreen is a 1-bit frame buffer that counts flushes.
type fakeScreen struct {
	w, h     int16
	pixels   map[[2]int16]bool
	clears   int
	displays int
	err      error
}

func newFakeScreen() *fakeScreen {
	return &fakeScreen{w: 128, h: 64, pixels: map[[2]int16]bool{}}
}

func (s *fakeScreen) Size() (int16, int16) { return s.w, s.h }

func (s *fakeScreen) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	if c.R|c.G|c.B != 0 {
		s.pixels[[2]int16{x, y}] = true
	} else {
		delete(s.pixels, [2]int16{x, y})
	}
}

func (s *fakeScreen) Display() error {
	s.displays++
	return s.err
}

func (s *fakeScreen) ClearBuffer() {
	s.clears++
	s.pixels = map[[2]int16]bool{}
}

// bounds returns the first and last pixel rows holding a lit pixel.
func (s *fakeScreen) bounds() (minY, maxY int16) {
	minY, maxY = s.h, -1
	for p := range s.pixels {
		if p[1] < minY {
			minY = p[1]
		}
		if p[1] > maxY {
			maxY = p[1]
		}
	}
	return minY, maxY
}

func TestShowReadingsDrawsAndFlushes(t *testing.T) {
	screen := newFakeScreen()
	m := NewManager(screen)

	require.NoError(t, m.ShowReadings(42, 50))

	assert.Equal(t, 1, screen.clears)
	assert.Equal(t, 1, screen.displays)
	assert.NotEmpty(t, screen.pixels)

	minY, maxY := screen.bounds()
	assert.GreaterOrEqual(t, minY, int16(18), "text starts under the top margin")
	assert.Less(t, maxY, int16(64))
}

func TestShowReadingsRepaints(t *testing.T) {
	screen := newFakeScreen()
	m := NewManager(screen)

	require.NoError(t, m.ShowReadings(100, 100))
	first := len(screen.pixels)
	require.NoError(t, m.ShowReadings(1, 1))

	assert.Equal(t, 2, screen.clears)
	assert.Equal(t, 2, screen.displays)
	assert.Less(t, len(screen.pixels), first, "old digits must be cleared")
}

func TestShowReadingsFlushError(t *testing.T) {
	errBus := errors.New("i2c nack")
	screen := newFakeScreen()
	screen.err = errBus

	m := NewManager(screen)
	assert.ErrorIs(t, m.ShowReadings(1, 2), errBus)
}

func TestShowMessageDropsOverflowRows(t *testing.T) {
	screen := newFakeScreen()
	m := NewManager(screen)

	require.NoError(t, m.ShowMessage("a", "b", "c", "d", "e"))
	_, maxY := screen.bounds()
	assert.Less(t, maxY, int16(64))
}

func TestClear(t *testing.T) {
	screen := newFakeScreen()
	m := NewManager(screen)

	require.NoError(t, m.ShowReadings(3, 4))
	require.NoError(t, m.Clear())
	assert.Empty(t, screen.pixels)
	assert.Equal(t, 2, screen.displays)
}

func TestColumns(t *testing.T) {
	m := NewManager(newFakeScreen())
	assert.Equal(t, 11, m.Columns())
}

func TestFormatReadings(t *testing.T) {
	f := NewFormatter(11)

	dist, ctrl := f.FormatReadings(49, 50)
	assert.Equal(t, "DIST:49", dist)
	assert.Equal(t, "CTRL:50", ctrl)

	dist, _ = f.FormatReadings(123456789, 0)
	assert.Equal(t, "DIST:1234..", dist)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 3))
	assert.Equal(t, "a..", truncate("abcd", 3))
	assert.Equal(t, "ab", truncate("abcd", 2))
}
