package input

import (
	"fmt"
	"strconv"
	"strings"
)

// Step holds an intent for a number of ticks.
type Step struct {
	Intent Intent
	Ticks  int
}

// Script is a fixed input sequence for runs without a keyboard.
type Script []Step

// ParseScript reads a script of space-separated "keys:ticks" steps. Keys are
// w/a/s/d plus j for jump, in any order and case; an empty key list idles.
// For example "d:30 dj:1 :20" walks right, jumps while walking, then waits.
func ParseScript(s string) (Script, error) {
	var script Script
	for _, field := range strings.Fields(s) {
		keys, count, ok := strings.Cut(field, ":")
		if !ok {
			return nil, fmt.Errorf("input: step %q: missing ':ticks'", field)
		}
		ticks, err := strconv.Atoi(count)
		if err != nil || ticks <= 0 {
			return nil, fmt.Errorf("input: step %q: ticks must be a positive integer", field)
		}

		var in Intent
		for _, r := range keys {
			k := KeyForRune(r)
			if r == 'j' || r == 'J' {
				k = KeyJump
			}
			if k == KeyNone {
				return nil, fmt.Errorf("input: step %q: unknown key %q", field, r)
			}
			in = in.set(k, true)
		}
		script = append(script, Step{Intent: in, Ticks: ticks})
	}
	return script, nil
}

// Len returns the total number of ticks the script covers.
func (s Script) Len() int {
	n := 0
	for _, st := range s {
		n += st.Ticks
	}
	return n
}

// At returns the intent held on the given tick; past the end nothing is held.
func (s Script) At(tick int) Intent {
	for _, st := range s {
		if tick < st.Ticks {
			return st.Intent
		}
		tick -= st.Ticks
	}
	return Intent{}
}
