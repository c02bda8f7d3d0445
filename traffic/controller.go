package traffic

import (
	"errors"
	"time"
)

// Outputs is the set of peripheral capabilities the controller drives.
// Real implementations talk to hardware; errors are surfaced so the control
// loop can report them, never to stop the cycle.
type Outputs interface {
	// SetIndicator drives the three indicator channels. All eight
	// combinations must be accepted.
	SetIndicator(red, green, blue bool) error
	// SetTone enables the buzzer at freqHz with duty as a level out of a
	// fixed 10000-step wrap.
	SetTone(freqHz uint32, duty uint16) error
	// ClearTone silences the buzzer and leaves its pin driven low.
	ClearTone() error
	// ShowDigit renders a single decimal digit on the pixel matrix.
	ShowDigit(n int) error
	// ClearMatrix blanks the pixel matrix.
	ClearMatrix() error
	// ShowLines clears the status display and redraws up to two lines.
	ShowLines(lines []string) error
}

// Controller owns the traffic-light cycle: one mutable current phase,
// advanced once per call to Advance. It is not safe for concurrent use and
// is only ever driven from the single control loop.
type Controller struct {
	out     Outputs
	current PhaseID

	// sleep paces the countdown. Tests substitute a scripted clock.
	sleep func(time.Duration)
}

// NewController returns a controller starting at the Stop phase.
func NewController(out Outputs) *Controller {
	return &Controller{
		out:   out,
		sleep: time.Sleep,
	}
}

// Current returns the phase the next call to Advance will apply.
func (c *Controller) Current() PhaseID {
	return c.current
}

// Advance applies the current phase's outputs, runs its one-second-per-digit
// countdown and steps to the next phase in the cycle. It blocks for the
// phase's full countdown. Peripheral failures do not interrupt the sequence;
// they are collected and returned joined so the loop can log them.
func (c *Controller) Advance() error {
	p := Lookup(c.current)

	var errs []error
	fail := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	// Reset first so a faulty earlier phase cannot leave the indicator and
	// tone in a combination no phase defines.
	fail(c.out.SetIndicator(false, false, false))
	fail(c.out.ClearTone())

	fail(c.out.SetIndicator(p.Indicator.Red, p.Indicator.Green, p.Indicator.Blue))
	if p.Tone.Enabled {
		fail(c.out.SetTone(p.Tone.FreqHz, p.Tone.Duty))
	}
	fail(c.out.ShowLines(p.Lines))

	for i := p.CountdownSeconds; i > 0; i-- {
		fail(c.out.ShowDigit(i))
		c.sleep(time.Second)
	}
	fail(c.out.ClearMatrix())

	c.current = c.current.Next()
	return errors.Join(errs...)
}
