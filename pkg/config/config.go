// Package config defines the compile-time configuration of the indicator.
// Every value has a fixed default; nothing is read from flash.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"time"
)

// Strip defaults
const (
	DefaultStripLength = 16
	DefaultBrightness  = 255
)

// Display defaults (SSD1306 128x64 on I2C)
const (
	DefaultDisplayAddress = 0x3C
	DefaultDisplayWidth   = 128
	DefaultDisplayHeight  = 64
	DefaultI2CFrequency   = 400000 // 400kHz fast mode
)

const (
	DefaultLoopDelay  = 100 * time.Millisecond
	DefaultSerialBaud = 115200
)

// TypicalLEDStrip is the color correction applied to a typical 5050 SMD strip.
var TypicalLEDStrip = RGB{R: 255, G: 176, B: 240}

// RGB is a plain 8-bit color triple.
type RGB struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// Color converts c to an opaque color.RGBA.
func (c RGB) Color() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Strip configures the pixel strip.
type Strip struct {
	Length     int   `yaml:"length"`
	Brightness uint8 `yaml:"brightness"`
	Correction RGB   `yaml:"correction"`
}

// Display configures the OLED.
type Display struct {
	Address      uint16 `yaml:"address"`
	Width        int16  `yaml:"width"`
	Height       int16  `yaml:"height"`
	I2CFrequency uint32 `yaml:"i2c_frequency"`
}

// Config is the full device configuration.
type Config struct {
	Strip      Strip         `yaml:"strip"`
	Display    Display       `yaml:"display"`
	LoopDelay  time.Duration `yaml:"loop_delay"`
	SerialBaud uint32        `yaml:"serial_baud"`
}

// Errors
var (
	ErrInvalidStrip   = errors.New("invalid strip config")
	ErrInvalidDisplay = errors.New("invalid display config")
	ErrInvalidDelay   = errors.New("invalid loop delay")
)

// Default returns the configuration the firmware is built with.
func Default() Config {
	return Config{
		Strip: Strip{
			Length:     DefaultStripLength,
			Brightness: DefaultBrightness,
			Correction: TypicalLEDStrip,
		},
		Display: Display{
			Address:      DefaultDisplayAddress,
			Width:        DefaultDisplayWidth,
			Height:       DefaultDisplayHeight,
			I2CFrequency: DefaultI2CFrequency,
		},
		LoopDelay:  DefaultLoopDelay,
		SerialBaud: DefaultSerialBaud,
	}
}

// Validate checks that c describes hardware the firmware can drive.
func (c *Config) Validate() error {
	if c.Strip.Length <= 0 {
		return fmt.Errorf("%w: length %d", ErrInvalidStrip, c.Strip.Length)
	}
	// 7-bit I2C address space
	if c.Display.Address == 0 || c.Display.Address > 0x7F {
		return fmt.Errorf("%w: address 0x%02X", ErrInvalidDisplay, c.Display.Address)
	}
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidDisplay, c.Display.Width, c.Display.Height)
	}
	if c.LoopDelay < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidDelay, c.LoopDelay)
	}
	return nil
}
