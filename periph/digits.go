package periph

import "errors"

var errBadDigit = errors.New("periph: digit out of range")

const (
	// matrixSize is the width and height of the pixel matrix.
	matrixSize = 5
	// matrixPixels is the LED count of the panel.
	matrixPixels = matrixSize * matrixSize
)

// digitFont holds one 5x5 frame per decimal digit. Each digit is five rows
// of five bits, most significant bit is the leftmost column.
var digitFont = [10][matrixSize]uint8{
	0: {
		0b11111,
		0b10001,
		0b10001,
		0b10001,
		0b11111,
	},
	1: {
		0b00100,
		0b01100,
		0b00100,
		0b00100,
		0b01110,
	},
	2: {
		0b11111,
		0b00001,
		0b11111,
		0b10000,
		0b11111,
	},
	3: {
		0b11111,
		0b00001,
		0b11111,
		0b00001,
		0b11111,
	},
	4: {
		0b10001,
		0b10001,
		0b11111,
		0b00001,
		0b00001,
	},
	5: {
		0b11111,
		0b10000,
		0b11111,
		0b00001,
		0b11111,
	},
	6: {
		0b11111,
		0b10000,
		0b11111,
		0b10001,
		0b11111,
	},
	7: {
		0b11111,
		0b00001,
		0b00010,
		0b00100,
		0b00100,
	},
	8: {
		0b11111,
		0b10001,
		0b11111,
		0b10001,
		0b11111,
	},
	9: {
		0b11111,
		0b10001,
		0b11111,
		0b00001,
		0b11111,
	},
}

// digitFrame returns the row bitmap for decimal digit n.
func digitFrame(n int) ([matrixSize]uint8, error) {
	if n < 0 || n > 9 {
		return [matrixSize]uint8{}, errBadDigit
	}
	return digitFont[n], nil
}
