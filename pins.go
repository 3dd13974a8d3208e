//go:build tinygo

package main

import "machine"

const (
	// Ultrasonic module (HC-SR04)
	PIN_TRIGGER = machine.GPIO2
	PIN_ECHO    = machine.GPIO16

	// WS2812 data line
	PIN_STRIP = machine.GPIO14

	// Potentiometer wiper (ADC0)
	PIN_POT = machine.ADC0

	// SSD1306 on I2C0
	PIN_SDA = machine.GPIO0
	PIN_SCL = machine.GPIO1
)
