package traffic

// PhaseID identifies one of the three traffic-light phases.
type PhaseID uint8

const (
	Stop PhaseID = iota
	Caution
	Go
)

func (id PhaseID) String() string {
	switch id {
	case Stop:
		return "vermelho"
	case Caution:
		return "amarelo"
	case Go:
		return "verde"
	}
	return "invalido"
}

// Next returns the phase that follows id in the fixed cycle
// Stop -> Caution -> Go -> Stop.
func (id PhaseID) Next() PhaseID {
	if id >= Go {
		return Stop
	}
	return id + 1
}

// Indicator is the on/off state of the three indicator channels.
// Only off, red, red+green and green are ever used by the phase table,
// but drivers must accept all eight combinations.
type Indicator struct {
	Red, Green, Blue bool
}

// Tone is the buzzer configuration of a phase. Duty is a level out of the
// fixed 10000-step PWM wrap used by the buzzer driver.
type Tone struct {
	Enabled bool
	FreqHz  uint32
	Duty    uint16
}

// Phase is the build-time configuration of one traffic-light state.
type Phase struct {
	ID               PhaseID
	Indicator        Indicator
	Tone             Tone
	Lines            []string
	CountdownSeconds int
}

// phases is the complete phase table. Messages, durations and the 300Hz
// buzzer tone mirror the BitDogLab semáforo firmware.
var phases = [...]Phase{
	Stop: {
		ID:               Stop,
		Indicator:        Indicator{Red: true},
		Lines:            []string{"Proibido a", "passagem"},
		CountdownSeconds: 3,
	},
	Caution: {
		ID:               Caution,
		Indicator:        Indicator{Red: true, Green: true},
		Lines:            []string{"Atencao!"},
		CountdownSeconds: 3,
	},
	Go: {
		ID:               Go,
		Indicator:        Indicator{Green: true},
		Tone:             Tone{Enabled: true, FreqHz: 300, Duty: 300},
		Lines:            []string{"Permitido a", "passagem"},
		CountdownSeconds: 6,
	},
}

// Lookup returns the configuration for id.
func Lookup(id PhaseID) Phase {
	return phases[id]
}
