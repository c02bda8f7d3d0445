//go:build rp2040

package main

import (
	"machine"
	"time"

	pio "github.com/tinygo-org/pio/rp2-pio"

	"github.com/embarcatech/semaforo/periph"
	"github.com/embarcatech/semaforo/traffic"
)

// BitDogLab pin map.
const (
	pinLEDRed   = machine.GP13
	pinLEDGreen = machine.GP11
	pinLEDBlue  = machine.GP12
	pinBuzzer   = machine.GP21
	pinMatrix   = machine.GP7
	pinSDA      = machine.GP14
	pinSCL      = machine.GP15
)

func main() {
	// The matrix shift program goes in first since the PIO claim can fail.
	sm, err := pio.PIO0.ClaimStateMachine()
	if err != nil {
		panic(err.Error())
	}
	matrix, err := periph.NewMatrix(sm, pinMatrix)
	if err != nil {
		panic(err.Error())
	}

	machine.I2C1.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       pinSDA,
		SCL:       pinSCL,
	})

	board := &periph.Board{
		RGB:    periph.NewRGB(pinLEDRed, pinLEDGreen, pinLEDBlue),
		Buzzer: periph.NewBuzzer(machine.PWM2, pinBuzzer),
		Matrix: matrix,
		OLED:   periph.NewOLED(machine.I2C1),
	}

	ctl := traffic.NewController(board)

	// Apply the first phase before the report loop starts.
	advance(ctl)
	for {
		println("semaforo em operacao - fase:", ctl.Current().String())
		time.Sleep(time.Second)
		advance(ctl)
	}
}

func advance(ctl *traffic.Controller) {
	if err := ctl.Advance(); err != nil {
		println("semaforo: periferico indisponivel:", err.Error())
	}
}
