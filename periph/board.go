//go:build rp2040

package periph

// Board bundles the peripheral drivers behind the controller's Outputs seam.
type Board struct {
	RGB    *RGB
	Buzzer *Buzzer
	Matrix *Matrix
	OLED   *OLED
}

func (b *Board) SetIndicator(red, green, blue bool) error {
	return b.RGB.Set(red, green, blue)
}

func (b *Board) SetTone(freqHz uint32, duty uint16) error {
	return b.Buzzer.SetTone(freqHz, duty)
}

func (b *Board) ClearTone() error {
	return b.Buzzer.Off()
}

func (b *Board) ShowDigit(n int) error {
	return b.Matrix.ShowDigit(n)
}

func (b *Board) ClearMatrix() error {
	return b.Matrix.Clear()
}

func (b *Board) ShowLines(lines []string) error {
	return b.OLED.ShowLines(lines)
}
