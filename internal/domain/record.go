package domain

import "time"

// Record is the unit of work produced by one qualifying button press. The
// filename and content are derived once at press time and reused verbatim by
// every retry, so all attempts of a press target the same file with the same
// payload.
type Record struct {
	Filename  string
	Content   string
	LocalPath string
	CreatedAt time.Time
	NetworkUp bool
}
