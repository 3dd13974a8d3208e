package main

import (
	"fmt"
	"image/color"
	"io"
	"strings"
	"time"

	"github.com/tuffrabit/tinygo-rangebar-rp2040/pkg/display"
	"github.com/tuffrabit/tinygo-rangebar-rp2040/pkg/indicator"
	"github.com/tuffrabit/tinygo-rangebar-rp2040/pkg/ranging"
	"github.com/tuffrabit/tinygo-rangebar-rp2040/pkg/strip"
	"github.com/tuffrabit/tinygo-rangebar-rp2040/serial"
)

// simPot returns a fixed 16-bit ADC sample.
type simPot struct {
	sample uint16
}

func (p *simPot) Get() uint16 { return p.sample }

// simSonar returns a fixed echo pulse width.
type simSonar struct {
	pulse int32
}

func (s *simSonar) ReadPulse() int32 { return s.pulse }

// simLED keeps the last frame written to the strip.
type simLED struct {
	last []color.RGBA
}

func (l *simLED) WriteColors(buf []color.RGBA) error {
	l.last = append(l.last[:0], buf...)
	return nil
}

// textScreen is a monochrome frame buffer that prints with half blocks.
type textScreen struct {
	w, h   int16
	buffer []bool
	front  []bool
}

func newTextScreen(w, h int16) *textScreen {
	return &textScreen{
		w:      w,
		h:      h,
		buffer: make([]bool, int(w)*int(h)),
		front:  make([]bool, int(w)*int(h)),
	}
}

func (s *textScreen) Size() (int16, int16) { return s.w, s.h }

func (s *textScreen) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	s.buffer[int(y)*int(s.w)+int(x)] = c.R|c.G|c.B != 0
}

func (s *textScreen) Display() error {
	copy(s.front, s.buffer)
	return nil
}

func (s *textScreen) ClearBuffer() {
	for i := range s.buffer {
		s.buffer[i] = false
	}
}

func (s *textScreen) on(x, y int) bool {
	if y >= int(s.h) {
		return false
	}
	return s.front[y*int(s.w)+x]
}

// String renders the last flushed frame, two pixel rows per text line.
func (s *textScreen) String() string {
	var b strings.Builder
	for y := 0; y < int(s.h); y += 2 {
		for x := 0; x < int(s.w); x++ {
			top, bottom := s.on(x, y), s.on(x, y+1)
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// simBench is the indicator wired to simulated parts.
type simBench struct {
	pot    *simPot
	sonar  *simSonar
	led    *simLED
	screen *textScreen
	ctrl   *indicator.Controller
}

func newSimBench(configPath string, pot int, logOut io.Writer) (*simBench, error) {
	if pot < 0 || pot > ranging.PotMax {
		return nil, fmt.Errorf("pot level %d outside 0-%d", pot, ranging.PotMax)
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	b := &simBench{
		pot:    &simPot{sample: uint16(pot) << 6},
		sonar:  &simSonar{},
		led:    &simLED{},
		screen: newTextScreen(cfg.Display.Width, cfg.Display.Height),
	}

	bar := strip.New(b.led, cfg.Strip.Length,
		strip.WithBrightness(cfg.Strip.Brightness),
		strip.WithCorrection(cfg.Strip.Correction.Color()),
	)
	b.ctrl, err = indicator.New(cfg, b.pot, b.sonar, display.NewManager(b.screen), bar,
		serial.NewLogger(logOut), indicator.WithSleep(func(time.Duration) {}))
	if err != nil {
		return nil, err
	}
	return b, nil
}
