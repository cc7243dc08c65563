package core

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// AllDirections returns every direction in declaration order. The array is
// a copy, so callers may modify it freely.
func AllDirections() [4]Direction {
	return [4]Direction{DirUp, DirDown, DirLeft, DirRight}
}

// Inverse returns the opposite direction.
func (d Direction) Inverse() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the unit step for the direction. Y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// DirectionFromKey maps an arrow-equivalent key to a direction.
// Any other key reports false and should be ignored by the caller.
func DirectionFromKey(k Key) (Direction, bool) {
	switch k {
	case KeyUp:
		return DirUp, true
	case KeyDown:
		return DirDown, true
	case KeyLeft:
		return DirLeft, true
	case KeyRight:
		return DirRight, true
	}
	return DirUp, false
}
