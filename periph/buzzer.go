//go:build rp2040

package periph

import (
	"errors"
	"machine"
)

var errToneFreq = errors.New("periph: tone frequency must be nonzero")

// toneWrap is the duty resolution: tone duty is expressed as a level out of
// this fixed wrap value.
const toneWrap = 10000

const nanosPerSecond = 1_000_000_000

// pwmSlice is the subset of the machine PWM peripheral the buzzer uses.
type pwmSlice interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

// Buzzer drives an audible tone on a PWM-capable pin.
type Buzzer struct {
	pwm    pwmSlice
	pin    machine.Pin
	ch     uint8
	active bool
}

// NewBuzzer configures the pin as a plain output, driven low, until the
// first tone is requested.
func NewBuzzer(pwm pwmSlice, pin machine.Pin) *Buzzer {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pin.Low()
	return &Buzzer{pwm: pwm, pin: pin}
}

// SetTone starts the tone at freqHz with duty as a level out of the fixed
// 10000-step wrap.
func (b *Buzzer) SetTone(freqHz uint32, duty uint16) error {
	if freqHz == 0 {
		return errToneFreq
	}
	if err := b.pwm.Configure(machine.PWMConfig{
		Period: nanosPerSecond / uint64(freqHz),
	}); err != nil {
		return err
	}
	ch, err := b.pwm.Channel(b.pin)
	if err != nil {
		return err
	}
	b.ch = ch
	b.active = true
	b.pwm.Set(ch, b.pwm.Top()*uint32(duty)/toneWrap)
	return nil
}

// Off silences the buzzer. The pin is handed back to GPIO and driven low so
// it is never left floating.
func (b *Buzzer) Off() error {
	if b.active {
		b.pwm.Set(b.ch, 0)
		b.active = false
	}
	b.pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	b.pin.Low()
	return nil
}
