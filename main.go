//go:build tinygo

package main

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/hcsr04"
	"tinygo.org/x/drivers/ws2812"

	"github.com/tuffrabit/tinygo-rangebar-rp2040/pkg/config"
	"github.com/tuffrabit/tinygo-rangebar-rp2040/pkg/display"
	"github.com/tuffrabit/tinygo-rangebar-rp2040/pkg/indicator"
	"github.com/tuffrabit/tinygo-rangebar-rp2040/pkg/strip"
	"github.com/tuffrabit/tinygo-rangebar-rp2040/serial"
)

// startupDelay gives the USB console and the sensors time to settle.
const startupDelay = time.Second

func main() {
	cfg := config.Default()

	machine.Serial.Configure(machine.UARTConfig{BaudRate: cfg.SerialBaud})
	log := serial.NewLogger(machine.Serial)

	time.Sleep(startupDelay)

	// LED strip: blank it before anything else
	PIN_STRIP.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led := ws2812.New(PIN_STRIP)
	bar := strip.New(&led, cfg.Strip.Length,
		strip.WithBrightness(cfg.Strip.Brightness),
		strip.WithCorrection(cfg.Strip.Correction.Color()),
	)
	bar.Clear()
	if err := bar.Show(); err != nil {
		log.Errorf("strip: %v", err)
	}

	// Ultrasonic module
	sonar := hcsr04.New(PIN_TRIGGER, PIN_ECHO)
	sonar.Configure()

	// Potentiometer
	machine.InitADC()
	pot := machine.ADC{Pin: PIN_POT}
	if err := pot.Configure(machine.ADCConfig{}); err != nil {
		log.Errorf("adc: %v", err)
	}

	// Display is the only hard requirement
	oled, err := display.NewSSD1306(machine.I2C0, PIN_SDA, PIN_SCL, cfg.Display)
	if err != nil {
		halt(log, "SSD1306 allocation failed", err)
	}
	screen := display.NewManager(oled)

	ctrl, err := indicator.New(cfg, pot, &sonar, screen, bar, log)
	if err != nil {
		halt(log, "config rejected", err)
	}

	log.Infof("rangebar running, %d LEDs", bar.Len())
	ctrl.Run()
}

// halt reports msg and err on the console and stops for good.
func halt(log *serial.Logger, msg string, err error) {
	log.Println(msg)
	log.Errorf("%v", err)
	for {
		time.Sleep(time.Hour)
	}
}
