//go:build rp2040

package periph

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

const (
	oledWidth  = 128
	oledHeight = 64
	oledAddr   = 0x3C

	// Fixed text positions, matching the 128x64 layout of the original
	// BitDogLab firmware.
	lineX = 5
)

var lineY = [2]int16{20, 40}

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// OLED is the SSD1306 status display.
type OLED struct {
	dev ssd1306.Device
}

// NewOLED initializes the display on an already configured I2C bus and
// blanks it.
func NewOLED(bus drivers.I2C) *OLED {
	dev := ssd1306.NewI2C(bus)
	dev.Configure(ssd1306.Config{
		Width:    oledWidth,
		Height:   oledHeight,
		Address:  oledAddr,
		VccState: ssd1306.SWITCHCAPVCC,
	})
	dev.ClearBuffer()
	dev.ClearDisplay()
	return &OLED{dev: dev}
}

// ShowLines clears the display and redraws up to two lines at the fixed
// line positions.
func (o *OLED) ShowLines(lines []string) error {
	o.dev.ClearBuffer()
	for i, line := range lines {
		if i >= len(lineY) {
			break
		}
		tinyfont.WriteLine(&o.dev, &freemono.Regular9pt7b, lineX, lineY[i], line, white)
	}
	return o.dev.Display()
}
