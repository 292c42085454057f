package ports

// DigitalIO is the board's digital pin capability. All operations are
// synchronous and immediate; the controller never holds a pin reference, only
// BCM pin numbers from configuration.
type DigitalIO interface {
	// ConfigureOutput sets the pin to output mode and drives it low.
	ConfigureOutput(pin int) error
	// ConfigureInput sets the pin to input mode with the internal pull-up
	// enabled, so a pressed button reads low.
	ConfigureInput(pin int) error
	Write(pin int, high bool)
	Read(pin int) bool
	// Cleanup drives every configured output low and releases the hardware.
	Cleanup() error
}
