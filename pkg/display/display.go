// Package display renders the two live readings on the SSD1306 OLED.
//
// Text is drawn with tinyfont into the driver's frame buffer; nothing reaches
// the panel until the buffer is flushed with Display().
package display

import (
	"errors"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

const (
	// Baseline of the first text row. The glyph tops sit just under y=20.
	firstBaseline = 34
	leftMargin    = 0
)

// Text color for the monochrome panel
var white = color.RGBA{255, 255, 255, 255}

// Errors returned while bringing up the panel.
var (
	ErrI2CConfig   = errors.New("I2C config failed")
	ErrNotDetected = errors.New("display not detected")
)

// Screen is a buffered monochrome display. *ssd1306.Device satisfies it.
type Screen interface {
	drivers.Displayer
	ClearBuffer()
}

// Manager draws text rows on a Screen.
type Manager struct {
	screen    Screen
	font      tinyfont.Fonter
	lineH     int16
	cols      int
	formatter *Formatter
}

// NewManager wraps screen using the default 9pt monospace font.
func NewManager(screen Screen) *Manager {
	return NewManagerWithFont(screen, &freemono.Bold9pt7b, glyphWidth9pt)
}

// NewManagerWithFont wraps screen with a specific monospace font.
// glyphWidth is the horizontal advance of one character in pixels.
func NewManagerWithFont(screen Screen, font tinyfont.Fonter, glyphWidth int16) *Manager {
	w, _ := screen.Size()
	cols := 1
	if glyphWidth > 0 && w/glyphWidth > 0 {
		cols = int(w / glyphWidth)
	}
	return &Manager{
		screen:    screen,
		font:      font,
		lineH:     int16(font.GetYAdvance()),
		cols:      cols,
		formatter: NewFormatter(cols),
	}
}

// Columns returns how many characters fit on one row.
func (m *Manager) Columns() int {
	return m.cols
}

// ShowReadings redraws the distance and control rows and flushes.
func (m *Manager) ShowReadings(distance, control int) error {
	dist, ctrl := m.formatter.FormatReadings(distance, control)
	return m.ShowMessage(dist, ctrl)
}

// ShowMessage clears the buffer, draws one row per line and flushes.
// Lines that do not fit the screen height are dropped.
func (m *Manager) ShowMessage(lines ...string) error {
	m.screen.ClearBuffer()
	_, h := m.screen.Size()

	y := int16(firstBaseline)
	for _, line := range lines {
		if y > h {
			break
		}
		m.drawString(leftMargin, y, truncate(line, m.cols))
		y += m.lineH
	}
	return m.refresh()
}

// Clear blanks the panel.
func (m *Manager) Clear() error {
	m.screen.ClearBuffer()
	return m.refresh()
}

// drawString draws s with its baseline at y.
func (m *Manager) drawString(x, y int16, s string) {
	tinyfont.WriteLine(m.screen, m.font, x, y, s, white)
}

// refresh pushes the frame buffer to the panel.
func (m *Manager) refresh() error {
	return m.screen.Display()
}

// truncate limits a string to maxLen characters, adding ".." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 2 {
		return s[:maxLen]
	}
	return s[:maxLen-2] + ".."
}
