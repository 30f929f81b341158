package input

import (
	"sync"
	"testing"
)

func TestKeyForRune(t *testing.T) {
	tests := []struct {
		r        rune
		expected Key
	}{
		{'w', KeyUp},
		{'W', KeyUp},
		{'a', KeyLeft},
		{'A', KeyLeft},
		{'s', KeyDown},
		{'S', KeyDown},
		{'d', KeyRight},
		{'D', KeyRight},
		{' ', KeyJump},
		{'q', KeyNone},
		{'1', KeyNone},
	}

	for _, tc := range tests {
		if got := KeyForRune(tc.r); got != tc.expected {
			t.Errorf("KeyForRune(%q) = %v, expected %v", tc.r, got, tc.expected)
		}
	}
}

func TestStatePressRelease(t *testing.T) {
	s := NewState(0)

	if s.Snapshot().held() {
		t.Fatal("new state should be empty")
	}

	s.Press(KeyLeft)
	s.Press(KeyJump)
	got := s.Snapshot()
	if !got.Left || !got.Jump || got.Right || got.Up || got.Down {
		t.Errorf("Snapshot() = %v, expected .L..J flags", got)
	}

	// Hold of zero never expires on its own
	for i := 0; i < 100; i++ {
		s.Advance()
	}
	if !s.Snapshot().Left {
		t.Error("held key expired without release")
	}

	s.Release(KeyLeft)
	if s.Snapshot().Left {
		t.Error("Release() did not clear the flag")
	}

	s.Reset()
	if s.Snapshot().held() {
		t.Error("Reset() left flags set")
	}
}

func TestStateHoldWindow(t *testing.T) {
	s := NewState(3)
	s.Press(KeyRight)

	for i := 0; i < 3; i++ {
		if !s.Snapshot().Right {
			t.Fatalf("tick %d: flag expired early", i)
		}
		s.Advance()
	}
	if s.Snapshot().Right {
		t.Error("flag should expire after the hold window")
	}

	// Repeated presses extend the window
	s.Press(KeyRight)
	s.Advance()
	s.Press(KeyRight)
	s.Advance()
	s.Advance()
	if !s.Snapshot().Right {
		t.Error("repeat press should restart the window")
	}
}

func TestStateIgnoresKeyNone(t *testing.T) {
	s := NewState(0)
	s.Press(KeyNone)
	s.Release(KeyNone)
	if s.Snapshot().held() {
		t.Error("KeyNone should not set any flag")
	}
}

func TestStateConcurrentWriters(t *testing.T) {
	s := NewState(0)
	var wg sync.WaitGroup

	for _, k := range []Key{KeyUp, KeyDown, KeyLeft, KeyRight, KeyJump} {
		wg.Add(1)
		go func(k Key) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				s.Press(k)
				s.Release(k)
			}
			s.Press(k)
		}(k)
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			default:
				s.Snapshot()
				s.Advance()
			}
		}
	}()

	wg.Wait()
	close(done)

	got := s.Snapshot()
	if !(got.Up && got.Down && got.Left && got.Right && got.Jump) {
		t.Errorf("Snapshot() = %v, expected all flags", got)
	}
}

func TestIntentString(t *testing.T) {
	if got := (Intent{Up: true, Jump: true}).String(); got != "U...J" {
		t.Errorf("String() = %q, expected %q", got, "U...J")
	}
	if got := (Intent{}).String(); got != "....." {
		t.Errorf("String() = %q", got)
	}
}
