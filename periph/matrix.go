//go:build rp2040

package periph

import (
	"machine"

	pio "github.com/tinygo-org/pio/rp2-pio"
	"github.com/tinygo-org/pio/rp2-pio/piolib"
)

// digitGRB is the color of a lit countdown pixel in WS2812B wire order.
// Dim red keeps the panel's total current draw low.
const digitGRB = uint32(8) << 16

// Matrix drives the 5x5 WS2812B panel used for the countdown digits.
type Matrix struct {
	dev   *piolib.WS2812B
	frame [matrixPixels]uint32
}

// NewMatrix loads the WS2812B shift program on sm and blanks the panel.
// The state machine should be claimed beforehand.
func NewMatrix(sm pio.StateMachine, pin machine.Pin) (*Matrix, error) {
	dev, err := piolib.NewWS2812B(sm, pin)
	if err != nil {
		return nil, err
	}
	m := &Matrix{dev: dev}
	return m, m.Clear()
}

// ShowDigit renders a single decimal digit.
func (m *Matrix) ShowDigit(n int) error {
	rows, err := digitFrame(n)
	if err != nil {
		return err
	}
	for y := 0; y < matrixSize; y++ {
		for x := 0; x < matrixSize; x++ {
			var c uint32
			if rows[y]&(1<<uint(matrixSize-1-x)) != 0 {
				c = digitGRB
			}
			m.frame[pixelIndex(x, y)] = c
		}
	}
	return m.dev.WriteRaw(m.frame[:])
}

// Clear blanks the panel.
func (m *Matrix) Clear() error {
	for i := range m.frame {
		m.frame[i] = 0
	}
	return m.dev.WriteRaw(m.frame[:])
}

// pixelIndex maps matrix coordinates to the serpentine order the panel is
// wired in: the data line enters at the bottom-right corner and rows
// alternate direction.
func pixelIndex(x, y int) int {
	row := matrixSize - 1 - y
	if row%2 == 0 {
		return row*matrixSize + (matrixSize - 1 - x)
	}
	return row*matrixSize + x
}
