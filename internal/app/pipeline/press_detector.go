package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Sanjib-ac/gsk-LIAL-Initiation-Device/internal/ports"
)

// Press marks one qualifying debounced falling edge on the button input.
type Press struct {
	At time.Time
}

// Detector polls the button pin and emits one Press per falling edge. A held
// button produces no further events until the input returns high. The
// detector makes no retry decisions; it only hands off to the consumer of
// the channel.
type Detector struct {
	io       ports.DigitalIO
	pin      int
	interval time.Duration

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	started bool
}

func NewDetector(io ports.DigitalIO, pin int, interval time.Duration) *Detector {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &Detector{io: io, pin: pin, interval: interval}
}

func (d *Detector) Start(out chan<- Press) error {
	d.mu.Lock()
	if d.started {
		d.mu.Unlock()
		return fmt.Errorf("press detector already started")
	}
	d.mu.Unlock()

	if err := d.io.ConfigureInput(d.pin); err != nil {
		return fmt.Errorf("configure button pin %d: %w", d.pin, err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	d.mu.Lock()
	d.cancel = cancel
	d.started = true
	d.mu.Unlock()

	d.wg.Add(1)
	go d.poll(ctx, out)
	return nil
}

func (d *Detector) Stop() error {
	d.mu.Lock()
	if !d.started {
		d.mu.Unlock()
		return nil
	}
	cancel := d.cancel
	d.cancel = nil
	d.started = false
	d.mu.Unlock()

	cancel()
	d.wg.Wait()
	return nil
}

func (d *Detector) poll(ctx context.Context, out chan<- Press) {
	defer d.wg.Done()

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	var wasPressed bool
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Pull-up input: a pressed button pulls the pin low.
			pressed := !d.io.Read(d.pin)
			switch {
			case pressed && !wasPressed:
				wasPressed = true
				select {
				case out <- Press{At: time.Now()}:
				case <-ctx.Done():
					return
				}
			case !pressed:
				wasPressed = false
			}
		}
	}
}
