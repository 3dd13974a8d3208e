package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tuffrabit/tinygo-rangebar-rp2040/pkg/bargraph"
	"github.com/tuffrabit/tinygo-rangebar-rp2040/pkg/indicator"
)

const (
	ledOn  = "●"
	ledOff = "·"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	offStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
	onStateStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")).Bold(true)
	offStateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// renderStrip draws one dot per LED in its output color.
func renderStrip(frame []color.RGBA) string {
	var b strings.Builder
	for _, c := range frame {
		if c.R|c.G|c.B == 0 {
			b.WriteString(offStyle.Render(ledOff))
			continue
		}
		hex := fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(ledOn))
	}
	return b.String()
}

// renderSummary prints the numbers behind one frame.
func renderSummary(f indicator.Frame) string {
	state := offStateStyle.Render(f.Pattern.State.String())
	if f.Pattern.State == bargraph.StateOn {
		state = onStateStyle.Render(f.Pattern.State.String())
	}
	return fmt.Sprintf("pot=%d threshold=%dcm pulse=%dµs distance=%dcm state=%s lit=%d/%d",
		f.Raw, f.Threshold, f.PulseMicros, f.Distance, state, f.Pattern.Lit, len(f.Pattern.Slots))
}
