package display

import (
	"strconv"
)

// Row labels, kept short so a 3 digit value fits a 128px row at 9pt.
const (
	labelDistance = "DIST:"
	labelControl  = "CTRL:"
)

// glyphWidth9pt is the advance of FreeMono 9pt glyphs.
const glyphWidth9pt = 11

// Formatter builds the text rows shown on the display.
type Formatter struct {
	cols int
}

// NewFormatter creates a formatter for rows of cols characters.
func NewFormatter(cols int) *Formatter {
	return &Formatter{cols: cols}
}

// FormatReadings returns the distance row and the control row.
func (f *Formatter) FormatReadings(distance, control int) (dist, ctrl string) {
	dist = truncate(labelDistance+strconv.Itoa(distance), f.cols)
	ctrl = truncate(labelControl+strconv.Itoa(control), f.cols)
	return dist, ctrl
}
