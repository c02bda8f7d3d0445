package traffic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextWraps(t *testing.T) {
	assert.Equal(t, Caution, Stop.Next())
	assert.Equal(t, Go, Caution.Next())
	assert.Equal(t, Stop, Go.Next())
}

func TestPhaseTable(t *testing.T) {
	for _, id := range []PhaseID{Stop, Caution, Go} {
		p := Lookup(id)
		assert.Equal(t, id, p.ID)
		assert.Greater(t, p.CountdownSeconds, 0)
		assert.LessOrEqual(t, len(p.Lines), 2)
		assert.NotEmpty(t, p.Lines)
		assert.False(t, p.Indicator.Blue, "blue is never part of a phase")
	}

	assert.Equal(t, Indicator{Red: true}, Lookup(Stop).Indicator)
	assert.Equal(t, Indicator{Red: true, Green: true}, Lookup(Caution).Indicator)
	assert.Equal(t, Indicator{Green: true}, Lookup(Go).Indicator)

	assert.Equal(t, 3, Lookup(Stop).CountdownSeconds)
	assert.Equal(t, 3, Lookup(Caution).CountdownSeconds)
	assert.Equal(t, 6, Lookup(Go).CountdownSeconds)

	assert.False(t, Lookup(Stop).Tone.Enabled)
	assert.False(t, Lookup(Caution).Tone.Enabled)
	assert.Equal(t, Tone{Enabled: true, FreqHz: 300, Duty: 300}, Lookup(Go).Tone)

	assert.Equal(t, []string{"Proibido a", "passagem"}, Lookup(Stop).Lines)
	assert.Equal(t, []string{"Atencao!"}, Lookup(Caution).Lines)
	assert.Equal(t, []string{"Permitido a", "passagem"}, Lookup(Go).Lines)
}

func TestPhaseIDString(t *testing.T) {
	assert.Equal(t, "vermelho", Stop.String())
	assert.Equal(t, "amarelo", Caution.String())
	assert.Equal(t, "verde", Go.String())
	assert.Equal(t, "invalido", PhaseID(7).String())
}
