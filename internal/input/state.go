package input

import "sync"

// State is the shared movement-intent record. Input collaborators call
// Press and Release from any goroutine; the simulation calls Snapshot once
// per tick and Advance after it.
//
// Terminals report presses but not releases, so a press may be given a
// hold window: the flag stays set for that many ticks unless pressed again.
// A hold of zero keeps the flag until Release.
type State struct {
	mu        sync.Mutex
	hold      int
	remaining [numKeys]int // Ticks left per key; -1 means held until Release
}

// NewState creates a state whose presses last hold ticks (0 = until Release).
func NewState(hold int) *State {
	if hold < 0 {
		hold = 0
	}
	return &State{hold: hold}
}

// Press marks k as held.
func (s *State) Press(k Key) {
	if k == KeyNone {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hold == 0 {
		s.remaining[k] = -1
	} else {
		s.remaining[k] = s.hold
	}
}

// Release clears k.
func (s *State) Release(k Key) {
	if k == KeyNone {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.remaining[k] = 0
}

// Reset clears all keys.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.remaining = [numKeys]int{}
}

// Apply makes st hold exactly the keys in. Any previous presses are dropped.
func (s *State) Apply(in Intent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k := KeyUp; k <= KeyJump; k++ {
		if in.has(k) {
			s.remaining[k] = -1
		} else {
			s.remaining[k] = 0
		}
	}
}

// Snapshot returns a consistent copy of the held flags.
func (s *State) Snapshot() Intent {
	s.mu.Lock()
	defer s.mu.Unlock()

	var in Intent
	for k := KeyUp; k <= KeyJump; k++ {
		in = in.set(k, s.remaining[k] != 0)
	}
	return in
}

// Advance counts one tick off every hold window.
func (s *State) Advance() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k := range s.remaining {
		if s.remaining[k] > 0 {
			s.remaining[k]--
		}
	}
}
