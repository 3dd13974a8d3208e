// Package ranging turns raw sensor input into the two numbers the indicator
// works with: the measured distance and the user-selected threshold.
//
// The sensors themselves are reached through two small interfaces so that the
// conversion logic can be tested on the host:
//
//	AnalogReader - machine.ADC (potentiometer wiper)
//	PulseTimer   - *hcsr04.Device (HC-SR04 ultrasonic module)
package ranging

// SoundSpeed is the speed of sound used for the echo conversion, in cm/µs.
// Distance uses the equivalent exact ratio 17/1000 (SoundSpeed/2).
const SoundSpeed = 0.034

// Potentiometer and threshold ranges
const (
	PotMax       = 1023 // 10-bit analog level
	ThresholdMax = 100  // cm
)

// AnalogReader reads a raw analog level. machine.ADC satisfies it.
type AnalogReader interface {
	Get() uint16
}

// PulseTimer triggers the ultrasonic module and returns the echo pulse width
// in microseconds, or 0 when no echo arrived before the driver's timeout.
// *hcsr04.Device from tinygo.org/x/drivers satisfies it.
type PulseTimer interface {
	ReadPulse() int32
}

// Measurement holds everything read during one loop iteration.
type Measurement struct {
	Raw         int   // potentiometer level, 0-1023
	Threshold   int   // cm, 0-100
	PulseMicros int32 // echo pulse width, 0 on timeout
	Distance    int   // cm
}

// Measure reads the potentiometer, derives the threshold, then fires the
// ultrasonic module and derives the distance, in that order.
func Measure(pot AnalogReader, sonar PulseTimer) Measurement {
	var m Measurement
	m.Raw = PotLevel(pot.Get())
	m.Threshold = Threshold(m.Raw)
	m.PulseMicros = sonar.ReadPulse()
	m.Distance = Distance(m.PulseMicros)
	return m
}

// Distance converts a round-trip echo pulse width to centimeters, truncating.
// Integer arithmetic keeps round inputs exact: pulse*0.034/2 == pulse*17/1000.
func Distance(pulseMicros int32) int {
	if pulseMicros <= 0 {
		return 0
	}
	return int(int64(pulseMicros) * 17 / 1000)
}

// PotLevel scales a TinyGo ADC sample (always 0-65535 regardless of the
// converter's real resolution) to the 10-bit potentiometer range.
func PotLevel(adc uint16) int {
	return int(adc >> 6)
}

// Threshold maps a potentiometer level to a cutoff distance in [0, 100] cm.
// Levels outside [0, PotMax] are clamped first.
func Threshold(raw int) int {
	raw = Constrain(raw, 0, PotMax)
	return Map(raw, 0, PotMax, 0, ThresholdMax)
}

// Map re-maps x from [inMin, inMax] to [outMin, outMax] with integer math,
// truncating toward zero. The result is not clamped.
// A collapsed input range returns outMin.
func Map(x, inMin, inMax, outMin, outMax int) int {
	if inMax == inMin {
		return outMin
	}
	return (x-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}

// Constrain clamps x to [lo, hi].
func Constrain(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
