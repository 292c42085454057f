package ports

// Color is the tri-channel state of the RGB indicator.
type Color struct {
	Red   bool
	Green bool
	Blue  bool
}

var (
	ColorOff   = Color{}
	ColorRed   = Color{Red: true}
	ColorGreen = Color{Green: true}
)

// Light identifies one of the auxiliary single-channel lights.
type Light int

const (
	// LightStatus is raised while a press is being processed.
	LightStatus Light = iota
	// LightSuccess is pulsed after a successful write.
	LightSuccess
	// LightError blinks on attempt failures and is held on after exhaustion.
	LightError
)

// Indicator drives the tri-color indicator and the auxiliary lights. It has
// no logic of its own; blink timing belongs to the caller.
type Indicator interface {
	SetColor(c Color)
	SetLight(l Light, on bool)
}
