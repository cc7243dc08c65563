package snake

import (
	"github.com/gammazero/deque"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Colors of the snake's cells.
const (
	HeadColor = core.ColorOrange
	BodyColor = core.ColorOlive
)

// Outcome is what the snake ran into during its last Advance.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeAteFood
	OutcomeAteSelf
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeAteFood:
		return "ate_food"
	case OutcomeAteSelf:
		return "ate_self"
	default:
		return "unknown"
	}
}

// Pending is a queued direction change. Dir is meaningful only when Set.
type Pending struct {
	Dir core.Direction
	Set bool
}

// RenderHint is a board cell with its fixed color tag.
type RenderHint struct {
	Cell  core.Cell
	Color core.Color
}

// Snake is the player's snake on a w x h toroidal grid.
// The body is ordered front (next to the head) to back (tail).
type Snake struct {
	w, h    int
	head    core.Cell
	body    deque.Deque[core.Cell]
	dir     core.Direction // committed: applied on the next move
	lastDir core.Direction // applied on the previous move
	pending Pending
	outcome Outcome
}

// NewSnake creates a snake heading right with its head at start and a
// single body segment one column behind it.
// start.X must be at least 1; the segment is not wrapped.
func NewSnake(start core.Cell, w, h int) *Snake {
	s := &Snake{
		w:       w,
		h:       h,
		head:    start,
		dir:     core.DirRight,
		lastDir: core.DirRight,
	}
	s.body.PushBack(core.Cell{X: start.X - 1, Y: start.Y})
	return s
}

// SetPendingDirection applies one direction input.
//
// When a change is already committed but not yet moved on, req is queued
// for the following tick unless it reverses the committed direction.
// Otherwise req is committed directly unless it reverses the last applied
// direction. Anything else is dropped.
func (s *Snake) SetPendingDirection(req core.Direction) {
	switch {
	case s.dir != s.lastDir && req.Inverse() != s.dir:
		s.pending = Pending{Dir: req, Set: true}
	case req.Inverse() != s.lastDir:
		s.dir = req
	}
}

// Advance moves the snake one cell and reports what it ate.
func (s *Snake) Advance(food Food) Outcome {
	if s.pending.Set && s.dir == s.lastDir {
		// A change committed after this one was queued can make the queued
		// direction a reversal of the last move. Such a change is dropped.
		if s.pending.Dir.Inverse() != s.lastDir {
			s.dir = s.pending.Dir
		}
		s.pending = Pending{}
	}

	next := s.head.Move(s.dir, s.w, s.h)
	s.body.PushFront(s.head)
	s.head = next

	switch {
	case s.bodyContains(next):
		// Terminal. The tail stays, so the head overlaps the body even
		// when it lands on the tail cell.
		s.outcome = OutcomeAteSelf
	case next == food.Cell():
		s.outcome = OutcomeAteFood
	default:
		s.outcome = OutcomeNone
		s.body.PopBack()
	}

	s.lastDir = s.dir
	return s.outcome
}

func (s *Snake) bodyContains(c core.Cell) bool {
	return s.body.Index(func(seg core.Cell) bool { return seg == c }) >= 0
}

// Head returns the head cell.
func (s *Snake) Head() core.Cell {
	return s.head
}

// Body returns a copy of the body cells, front to back.
func (s *Snake) Body() []core.Cell {
	cells := make([]core.Cell, s.body.Len())
	for i := range cells {
		cells[i] = s.body.At(i)
	}
	return cells
}

// Len returns the number of body segments, excluding the head.
func (s *Snake) Len() int {
	return s.body.Len()
}

// Direction returns the committed direction.
func (s *Snake) Direction() core.Direction {
	return s.dir
}

// LastDirection returns the direction applied on the previous move.
func (s *Snake) LastDirection() core.Direction {
	return s.lastDir
}

// Pending returns the queued direction change, if any.
func (s *Snake) Pending() Pending {
	return s.pending
}

// Outcome returns the result of the last Advance.
func (s *Snake) Outcome() Outcome {
	return s.outcome
}

// Hints returns the body cells followed by the head, in draw order.
func (s *Snake) Hints() []RenderHint {
	hints := make([]RenderHint, 0, s.body.Len()+1)
	for i := 0; i < s.body.Len(); i++ {
		hints = append(hints, RenderHint{Cell: s.body.At(i), Color: BodyColor})
	}
	return append(hints, RenderHint{Cell: s.head, Color: HeadColor})
}
