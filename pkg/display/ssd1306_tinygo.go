//go:build tinygo

package display

import (
	"fmt"
	"machine"
	"time"

	"tinygo.org/x/drivers/ssd1306"

	"github.com/tuffrabit/tinygo-rangebar-rp2040/pkg/config"
)

// NewSSD1306 configures the I2C bus, checks that the panel answers at its
// address and initializes it. The returned device has a blank screen.
func NewSSD1306(bus *machine.I2C, sda, scl machine.Pin, cfg config.Display) (*ssd1306.Device, error) {
	if err := bus.Configure(machine.I2CConfig{
		Frequency: cfg.I2CFrequency,
		SCL:       scl,
		SDA:       sda,
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrI2CConfig, err)
	}

	// Small delay for bus stabilization
	time.Sleep(10 * time.Millisecond)

	// The controller ACKs a plain read of its status byte; a NACK means
	// nothing is wired at this address.
	var status [1]byte
	if err := bus.Tx(cfg.Address, nil, status[:]); err != nil {
		return nil, fmt.Errorf("%w at 0x%02X: %v", ErrNotDetected, cfg.Address, err)
	}

	dev := ssd1306.NewI2C(bus)
	dev.Configure(ssd1306.Config{
		Address: cfg.Address,
		Width:   cfg.Width,
		Height:  cfg.Height,
	})
	dev.ClearDisplay()

	return &dev, nil
}
