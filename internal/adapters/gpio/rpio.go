package gpio

import (
	"fmt"
	"sync"

	"github.com/stianeikeland/go-rpio/v4"

	"github.com/Sanjib-ac/gsk-LIAL-Initiation-Device/internal/ports"
)

// RPi drives Raspberry Pi BCM pins through /dev/gpiomem.
type RPi struct {
	mu      sync.Mutex
	outputs []int
	open    bool
}

func OpenRPi() (*RPi, error) {
	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("open gpio: %w", err)
	}
	return &RPi{open: true}, nil
}

func (r *RPi) ConfigureOutput(pin int) error {
	p := rpio.Pin(pin)
	p.Output()
	p.Low()

	r.mu.Lock()
	r.outputs = append(r.outputs, pin)
	r.mu.Unlock()
	return nil
}

func (r *RPi) ConfigureInput(pin int) error {
	p := rpio.Pin(pin)
	p.Input()
	p.PullUp()
	return nil
}

func (r *RPi) Write(pin int, high bool) {
	if high {
		rpio.Pin(pin).High()
	} else {
		rpio.Pin(pin).Low()
	}
}

func (r *RPi) Read(pin int) bool {
	return rpio.Pin(pin).Read() == rpio.High
}

// Cleanup drives every configured output low so no LED is left lit, then
// releases the memory mapping.
func (r *RPi) Cleanup() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.open {
		return nil
	}
	for _, pin := range r.outputs {
		rpio.Pin(pin).Low()
	}
	r.open = false
	return rpio.Close()
}

var _ ports.DigitalIO = (*RPi)(nil)
