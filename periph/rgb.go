//go:build rp2040

package periph

import "machine"

// RGB is the three-channel traffic-light indicator.
type RGB struct {
	red, green, blue machine.Pin
}

// NewRGB configures the three pins as outputs, all off.
func NewRGB(red, green, blue machine.Pin) *RGB {
	for _, p := range []machine.Pin{red, green, blue} {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
		p.Low()
	}
	return &RGB{red: red, green: green, blue: blue}
}

// Set drives the three channels. All eight combinations are valid.
func (l *RGB) Set(red, green, blue bool) error {
	l.red.Set(red)
	l.green.Set(green)
	l.blue.Set(blue)
	return nil
}
