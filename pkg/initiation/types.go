package initiation

import (
	"github.com/Sanjib-ac/gsk-LIAL-Initiation-Device/internal/adapters/gpio"
	"github.com/Sanjib-ac/gsk-LIAL-Initiation-Device/internal/app/pipeline"
	"github.com/Sanjib-ac/gsk-LIAL-Initiation-Device/internal/domain"
	"github.com/Sanjib-ac/gsk-LIAL-Initiation-Device/internal/ports"
)

// Record is the unit of work produced by one button press. It mirrors
// internal/domain.Record but is exported so custom writers and replicators
// can reference it.
type Record = domain.Record

// Press marks one qualifying debounced falling edge.
type Press = pipeline.Press

// DigitalIO abstracts the board's pin capability so it can be substituted
// off-device.
type DigitalIO = ports.DigitalIO

// Indicator drives the tri-color indicator and auxiliary lights.
type Indicator = ports.Indicator

// Color is the tri-channel indicator state.
type Color = ports.Color

// Light identifies one auxiliary light channel.
type Light = ports.Light

// Prober reports network reachability.
type Prober = ports.Prober

// Replicator copies a written record to a remote destination.
type Replicator = ports.Replicator

// RemoteTarget identifies the replication destination.
type RemoteTarget = ports.RemoteTarget

// RecordWriter persists a record at its local path.
type RecordWriter = ports.RecordWriter

// Observability emits logs and metrics about press handling.
type Observability = ports.Observability

// Field is a structured log field used by Observability implementations.
type Field = ports.Field

// MemoryGPIO is the in-memory DigitalIO used by dry runs and tests.
type MemoryGPIO = gpio.Mem

var (
	ColorOff   = ports.ColorOff
	ColorRed   = ports.ColorRed
	ColorGreen = ports.ColorGreen
)

const (
	LightStatus  = ports.LightStatus
	LightSuccess = ports.LightSuccess
	LightError   = ports.LightError
)

// NewMemoryGPIO returns an in-memory pin capability whose inputs rest high,
// like a pull-up button.
func NewMemoryGPIO() *MemoryGPIO {
	return gpio.NewMem()
}
