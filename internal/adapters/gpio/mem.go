package gpio

import (
	"sync"

	"github.com/Sanjib-ac/gsk-LIAL-Initiation-Device/internal/ports"
)

// Mem is an in-memory DigitalIO used by tests and dry-run mode. Inputs
// default to high, matching a pull-up button at rest.
type Mem struct {
	mu      sync.Mutex
	levels  map[int]bool
	inputs  map[int]bool
	outputs []int
	writes  []Write
	cleaned bool
}

// Write records one output transition, in order.
type Write struct {
	Pin  int
	High bool
}

func NewMem() *Mem {
	return &Mem{
		levels: make(map[int]bool),
		inputs: make(map[int]bool),
	}
}

func (m *Mem) ConfigureOutput(pin int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outputs = append(m.outputs, pin)
	m.levels[pin] = false
	return nil
}

func (m *Mem) ConfigureInput(pin int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inputs[pin] = true
	m.levels[pin] = true
	return nil
}

func (m *Mem) Write(pin int, high bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.levels[pin] = high
	m.writes = append(m.writes, Write{Pin: pin, High: high})
}

func (m *Mem) Read(pin int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	level, ok := m.levels[pin]
	if !ok {
		return true
	}
	return level
}

func (m *Mem) Cleanup() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, pin := range m.outputs {
		m.levels[pin] = false
	}
	m.cleaned = true
	return nil
}

// SetInput drives an input pin level, simulating the physical button. Low
// means pressed when the pull-up is active.
func (m *Mem) SetInput(pin int, high bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.levels[pin] = high
}

// Level returns the current level of any pin.
func (m *Mem) Level(pin int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.levels[pin]
}

// Writes returns a copy of the recorded output transitions.
func (m *Mem) Writes() []Write {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Write, len(m.writes))
	copy(out, m.writes)
	return out
}

// CleanedUp reports whether Cleanup ran.
func (m *Mem) CleanedUp() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cleaned
}

var _ ports.DigitalIO = (*Mem)(nil)
