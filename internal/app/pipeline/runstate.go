package pipeline

import "sync"

// RunState holds the network snapshot shared between the status loop and
// press handling. The status loop is the only writer; the record builder
// reads it once at press time.
type RunState struct {
	mu        sync.Mutex
	connected bool
}

func (s *RunState) SetConnected(v bool) {
	s.mu.Lock()
	s.connected = v
	s.mu.Unlock()
}

func (s *RunState) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}
