package indicator

import (
	"fmt"

	"github.com/Sanjib-ac/gsk-LIAL-Initiation-Device/internal/ports"
)

// Pins maps the indicator channels and auxiliary lights onto BCM pins.
type Pins struct {
	Red     int
	Green   int
	Blue    int
	Status  int
	Success int
	Error   int
}

// Driver maps color and light requests onto digital pin writes. It holds no
// blink or retry logic; timing belongs to the pipeline driving it.
type Driver struct {
	io   ports.DigitalIO
	pins Pins
}

// New configures all six pins as outputs (driven low) and returns the driver.
func New(io ports.DigitalIO, pins Pins) (*Driver, error) {
	for _, pin := range []int{pins.Red, pins.Green, pins.Blue, pins.Status, pins.Success, pins.Error} {
		if err := io.ConfigureOutput(pin); err != nil {
			return nil, fmt.Errorf("configure pin %d: %w", pin, err)
		}
	}
	return &Driver{io: io, pins: pins}, nil
}

func (d *Driver) SetColor(c ports.Color) {
	d.io.Write(d.pins.Red, c.Red)
	d.io.Write(d.pins.Green, c.Green)
	d.io.Write(d.pins.Blue, c.Blue)
}

func (d *Driver) SetLight(l ports.Light, on bool) {
	switch l {
	case ports.LightStatus:
		d.io.Write(d.pins.Status, on)
	case ports.LightSuccess:
		d.io.Write(d.pins.Success, on)
	case ports.LightError:
		d.io.Write(d.pins.Error, on)
	}
}

var _ ports.Indicator = (*Driver)(nil)
