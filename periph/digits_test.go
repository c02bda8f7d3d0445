package periph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigitFrameRange(t *testing.T) {
	for n := 0; n <= 9; n++ {
		_, err := digitFrame(n)
		assert.NoError(t, err, "digit %d", n)
	}
	for _, n := range []int{-1, 10, 100} {
		_, err := digitFrame(n)
		assert.ErrorIs(t, err, errBadDigit, "digit %d", n)
	}
}

func TestDigitFramesFitPanel(t *testing.T) {
	for n := 0; n <= 9; n++ {
		rows, err := digitFrame(n)
		require.NoError(t, err)
		for y, row := range rows {
			assert.Zero(t, row&^0b11111, "digit %d row %d spills past column 5", n, y)
		}
	}
}

func TestDigitFramesDistinctAndLit(t *testing.T) {
	seen := map[[matrixSize]uint8]int{}
	for n := 0; n <= 9; n++ {
		rows, err := digitFrame(n)
		require.NoError(t, err)

		var lit int
		for _, row := range rows {
			for row != 0 {
				lit += int(row & 1)
				row >>= 1
			}
		}
		assert.NotZero(t, lit, "digit %d renders blank", n)

		if prev, dup := seen[rows]; dup {
			t.Errorf("digit %d and %d share a frame", prev, n)
		}
		seen[rows] = n
	}
}
