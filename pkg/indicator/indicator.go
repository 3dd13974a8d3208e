// Package indicator runs the measure-and-show loop.
//
// Each iteration reads the potentiometer, derives the threshold, fires the
// ultrasonic module, derives the distance, refreshes the display, repaints
// the LED bar and flushes it, then sleeps for the configured delay. Nothing
// carries over between iterations except what the hardware itself shows.
package indicator

import (
	"errors"
	"fmt"
	"time"

	"github.com/tuffrabit/tinygo-rangebar-rp2040/pkg/bargraph"
	"github.com/tuffrabit/tinygo-rangebar-rp2040/pkg/config"
	"github.com/tuffrabit/tinygo-rangebar-rp2040/pkg/ranging"
	"github.com/tuffrabit/tinygo-rangebar-rp2040/pkg/strip"
)

var (
	ErrStripLength = errors.New("strip length does not match config")
	ErrDisplay     = errors.New("display refresh failed")
	ErrStrip       = errors.New("strip write failed")
)

// Readout shows the two readings. *display.Manager satisfies it.
type Readout interface {
	ShowReadings(distance, control int) error
}

// Logger receives non-fatal errors. *serial.Logger satisfies it.
type Logger interface {
	Errorf(format string, args ...any)
}

// Frame is everything one iteration measured and drew.
type Frame struct {
	ranging.Measurement
	Pattern bargraph.Pattern
}

// Controller owns the hardware handles for the lifetime of the loop.
type Controller struct {
	pot     ranging.AnalogReader
	sonar   ranging.PulseTimer
	readout Readout
	strip   *strip.Strip
	bands   []bargraph.Band
	delay   time.Duration
	log     Logger
	sleep   func(time.Duration)
}

// Option configures a Controller.
type Option func(*Controller)

// WithBands replaces the default green/orange/red bands.
func WithBands(bands []bargraph.Band) Option {
	return func(c *Controller) { c.bands = bands }
}

// WithSleep replaces time.Sleep between iterations.
func WithSleep(sleep func(time.Duration)) Option {
	return func(c *Controller) { c.sleep = sleep }
}

// New builds a controller. The strip must already be cleared and shown.
func New(cfg config.Config, pot ranging.AnalogReader, sonar ranging.PulseTimer,
	readout Readout, s *strip.Strip, log Logger, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if s.Len() != cfg.Strip.Length {
		return nil, fmt.Errorf("%w: strip %d, config %d", ErrStripLength, s.Len(), cfg.Strip.Length)
	}

	c := &Controller{
		pot:     pot,
		sonar:   sonar,
		readout: readout,
		strip:   s,
		bands:   bargraph.DefaultBands,
		delay:   cfg.LoopDelay,
		log:     log,
		sleep:   time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Step runs one iteration without the trailing delay.
// Display and strip errors are logged and returned; the frame is still valid.
func (c *Controller) Step() (Frame, error) {
	var f Frame
	f.Measurement = ranging.Measure(c.pot, c.sonar)

	var errs []error
	if err := c.readout.ShowReadings(f.Distance, f.Threshold); err != nil {
		err = fmt.Errorf("%w: %w", ErrDisplay, err)
		c.log.Errorf("%v", err)
		errs = append(errs, err)
	}

	f.Pattern = bargraph.Compute(f.Distance, f.Threshold, c.strip.Pixels(), c.bands)

	if err := c.strip.Show(); err != nil {
		err = fmt.Errorf("%w: %w", ErrStrip, err)
		c.log.Errorf("%v", err)
		errs = append(errs, err)
	}

	return f, errors.Join(errs...)
}

// RunN runs n iterations, each followed by the loop delay.
func (c *Controller) RunN(n int) {
	for i := 0; i < n; i++ {
		c.Step()
		c.sleep(c.delay)
	}
}

// Run loops forever.
func (c *Controller) Run() {
	for {
		c.Step()
		c.sleep(c.delay)
	}
}
