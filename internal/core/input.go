package core

// Key is an abstract input key, decoupled from the physical key that
// produced it. Platforms translate their native events into Keys.
type Key int

const (
	KeyNone    Key = iota
	KeyUp          // Up arrow, W
	KeyDown        // Down arrow, S
	KeyLeft        // Left arrow, A
	KeyRight       // Right arrow, D
	KeyPause       // P, Escape
	KeyRestart     // R
	KeyQuit        // Q, Ctrl+C
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyPause:
		return "Pause"
	case KeyRestart:
		return "Restart"
	case KeyQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseKeys turns a compact key script into keys, one per rune:
// U/D/L/R for directions and '.' (or any other rune) for no key.
// Used by headless runs and tests to replay input deterministically.
func ParseKeys(script string) []Key {
	keys := make([]Key, 0, len(script))
	for _, r := range script {
		switch r {
		case 'U', 'u':
			keys = append(keys, KeyUp)
		case 'D', 'd':
			keys = append(keys, KeyDown)
		case 'L', 'l':
			keys = append(keys, KeyLeft)
		case 'R', 'r':
			keys = append(keys, KeyRight)
		default:
			keys = append(keys, KeyNone)
		}
	}
	return keys
}
