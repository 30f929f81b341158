// Package input holds the movement-intent record consumed by the player
// once per tick, and the state that input collaborators write into.
package input

import (
	"strings"
	"unicode"
)

// Intent is the set of movement flags held during one tick.
type Intent struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Jump  bool
}

// held reports whether any flag is set.
func (i Intent) held() bool {
	return i.Up || i.Down || i.Left || i.Right || i.Jump
}

// String returns a compact form like "U.L.J" for logs and the HUD.
func (i Intent) String() string {
	var sb strings.Builder
	flag := func(on bool, c byte) {
		if on {
			sb.WriteByte(c)
		} else {
			sb.WriteByte('.')
		}
	}
	flag(i.Up, 'U')
	flag(i.Down, 'D')
	flag(i.Left, 'L')
	flag(i.Right, 'R')
	flag(i.Jump, 'J')
	return sb.String()
}

// Key is one of the five movement inputs.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyJump
)

// numKeys sizes per-key arrays; index 0 is KeyNone.
const numKeys = int(KeyJump) + 1

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyJump:
		return "Jump"
	default:
		return "None"
	}
}

// KeyForRune maps w/a/s/d/space, in any case, to a movement key.
func KeyForRune(r rune) Key {
	switch unicode.ToLower(r) {
	case 'w':
		return KeyUp
	case 's':
		return KeyDown
	case 'a':
		return KeyLeft
	case 'd':
		return KeyRight
	case ' ':
		return KeyJump
	}
	return KeyNone
}

// set returns a copy of i with the flag for k switched to on.
func (i Intent) set(k Key, on bool) Intent {
	switch k {
	case KeyUp:
		i.Up = on
	case KeyDown:
		i.Down = on
	case KeyLeft:
		i.Left = on
	case KeyRight:
		i.Right = on
	case KeyJump:
		i.Jump = on
	}
	return i
}

// has reports whether the flag for k is set.
func (i Intent) has(k Key) bool {
	switch k {
	case KeyUp:
		return i.Up
	case KeyDown:
		return i.Down
	case KeyLeft:
		return i.Left
	case KeyRight:
		return i.Right
	case KeyJump:
		return i.Jump
	}
	return false
}
