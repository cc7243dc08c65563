package snake

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/gridsnake/internal/core"
)

const testW, testH = 30, 20

var farFood = NewFood(core.Cell{X: 0, Y: 0})

func TestNewSnake(t *testing.T) {
	s := NewSnake(core.Cell{X: 7, Y: 10}, testW, testH)

	if s.Head() != (core.Cell{X: 7, Y: 10}) {
		t.Errorf("Head() = %v, expected (7,10)", s.Head())
	}
	if body := s.Body(); !reflect.DeepEqual(body, []core.Cell{{X: 6, Y: 10}}) {
		t.Errorf("Body() = %v, expected [(6,10)]", body)
	}
	if s.Direction() != core.DirRight || s.LastDirection() != core.DirRight {
		t.Errorf("initial directions = %v/%v, expected right/right", s.Direction(), s.LastDirection())
	}
	if s.Pending().Set {
		t.Error("initial pending direction should be empty")
	}
	if s.Outcome() != OutcomeNone {
		t.Errorf("initial outcome = %v, expected none", s.Outcome())
	}
}

func TestAdvanceMovesAndDropsTail(t *testing.T) {
	s := NewSnake(core.Cell{X: 7, Y: 10}, testW, testH)

	if out := s.Advance(farFood); out != OutcomeNone {
		t.Fatalf("Advance() = %v, expected none", out)
	}
	if s.Head() != (core.Cell{X: 8, Y: 10}) {
		t.Errorf("Head() = %v, expected (8,10)", s.Head())
	}
	if body := s.Body(); !reflect.DeepEqual(body, []core.Cell{{X: 7, Y: 10}}) {
		t.Errorf("Body() = %v, expected [(7,10)]", body)
	}
}

func TestAdvanceWrapsAround(t *testing.T) {
	s := NewSnake(core.Cell{X: 29, Y: 0}, testW, testH)

	s.Advance(farFood)
	if s.Head() != (core.Cell{X: 0, Y: 0}) {
		t.Fatalf("Head() = %v, expected wrap to (0,0)", s.Head())
	}

	// (0,0) was the food cell; start fresh facing up at the top edge.
	s = NewSnake(core.Cell{X: 5, Y: 0}, testW, testH)
	s.SetPendingDirection(core.DirUp)
	s.Advance(farFood)
	if s.Head() != (core.Cell{X: 5, Y: 19}) {
		t.Errorf("Head() = %v, expected wrap to (5,19)", s.Head())
	}
}

func TestAdvanceEatsFood(t *testing.T) {
	s := NewSnake(core.Cell{X: 7, Y: 10}, testW, testH)

	out := s.Advance(NewFood(core.Cell{X: 8, Y: 10}))
	if out != OutcomeAteFood {
		t.Fatalf("Advance() = %v, expected ate_food", out)
	}
	expected := []core.Cell{{X: 7, Y: 10}, {X: 6, Y: 10}}
	if body := s.Body(); !reflect.DeepEqual(body, expected) {
		t.Errorf("Body() = %v, expected %v", body, expected)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", s.Len())
	}
}

func TestAdvanceEatsSelf(t *testing.T) {
	// Head at (3,1) moving right, body curled so that going down then
	// left then up runs into a segment that is not the tail.
	s := NewSnake(core.Cell{X: 3, Y: 1}, testW, testH)
	for _, c := range []core.Cell{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3}, {X: 2, Y: 3}} {
		s.body.PushBack(c)
	}
	// body: (2,1) (1,1) (1,2) (1,3) (2,3)

	s.SetPendingDirection(core.DirDown)
	if out := s.Advance(farFood); out != OutcomeNone {
		t.Fatalf("first move = %v, expected none", out)
	}
	s.SetPendingDirection(core.DirLeft)
	if out := s.Advance(farFood); out != OutcomeNone {
		t.Fatalf("second move = %v, expected none", out)
	}
	// head (2,2), body (3,2) (3,1) (2,1) (1,1) (1,2)
	lenBefore := s.Len()

	s.SetPendingDirection(core.DirUp)
	if out := s.Advance(farFood); out != OutcomeAteSelf {
		t.Fatalf("third move = %v, expected ate_self", out)
	}
	if s.Head() != (core.Cell{X: 2, Y: 1}) {
		t.Errorf("Head() = %v, expected (2,1)", s.Head())
	}
	if s.Len() != lenBefore+1 {
		t.Errorf("Len() = %d after self collision, expected %d", s.Len(), lenBefore+1)
	}
	if !s.bodyContains(s.Head()) {
		t.Error("head should overlap the body on the self-collision tick")
	}
}

func TestAdvanceBitesTail(t *testing.T) {
	// Head at (2,1) moving right; the body loops round so that moving
	// down lands exactly on the tail cell.
	s := NewSnake(core.Cell{X: 2, Y: 1}, testW, testH)
	s.body.PushBack(core.Cell{X: 1, Y: 2})
	s.body.PushBack(core.Cell{X: 2, Y: 2})
	// body: (1,1) (1,2) (2,2)

	s.SetPendingDirection(core.DirDown)
	if out := s.Advance(farFood); out != OutcomeAteSelf {
		t.Fatalf("Advance() = %v, expected ate_self", out)
	}

	if s.Head() != (core.Cell{X: 2, Y: 2}) {
		t.Errorf("Head() = %v, expected (2,2)", s.Head())
	}
	expected := []core.Cell{{X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}}
	if body := s.Body(); !reflect.DeepEqual(body, expected) {
		t.Errorf("Body() = %v, expected %v", body, expected)
	}
	if !s.bodyContains(s.Head()) {
		t.Error("head should overlap the kept tail on the self-collision tick")
	}
}

func TestSelfCollisionBeatsFood(t *testing.T) {
	s := NewSnake(core.Cell{X: 3, Y: 1}, testW, testH)
	for _, c := range []core.Cell{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}} {
		s.body.PushBack(c)
	}
	// body: (2,1) (1,1) (1,2) (2,2) (3,2); moving down hits (3,2).

	s.SetPendingDirection(core.DirDown)
	if out := s.Advance(NewFood(core.Cell{X: 3, Y: 2})); out != OutcomeAteSelf {
		t.Errorf("Advance() = %v, expected ate_self to win over food", out)
	}
}

func TestSetPendingDirectionRules(t *testing.T) {
	R, L, U, D := core.DirRight, core.DirLeft, core.DirUp, core.DirDown

	tests := []struct {
		name        string
		dir, last   core.Direction
		req         core.Direction
		wantDir     core.Direction
		wantPending Pending
	}{
		{"turn commits directly", R, R, D, D, Pending{}},
		{"same direction is a no-op commit", R, R, R, R, Pending{}},
		{"reverse of last move ignored", R, R, L, R, Pending{}},
		{"second turn queues", D, R, L, D, Pending{Dir: L, Set: true}},
		{"second turn same as committed queues", D, R, D, D, Pending{Dir: D, Set: true}},
		{"reverse of committed but not of last commits", D, R, U, U, Pending{}},
		{"reverse while unchanged ignored", U, U, D, U, Pending{}},
		{"queued change back to last direction", D, R, R, D, Pending{Dir: R, Set: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSnake(core.Cell{X: 7, Y: 10}, testW, testH)
			s.dir, s.lastDir = tc.dir, tc.last

			s.SetPendingDirection(tc.req)

			if s.dir != tc.wantDir {
				t.Errorf("committed = %v, expected %v", s.dir, tc.wantDir)
			}
			if s.pending != tc.wantPending {
				t.Errorf("pending = %+v, expected %+v", s.pending, tc.wantPending)
			}
		})
	}
}

func TestSetPendingDirectionExhaustive(t *testing.T) {
	for _, dir := range core.AllDirections() {
		for _, last := range core.AllDirections() {
			if dir == last.Inverse() {
				// Unreachable: nothing commits a reversal of the last move.
				continue
			}
			for _, req := range core.AllDirections() {
				s := NewSnake(core.Cell{X: 7, Y: 10}, testW, testH)
				s.dir, s.lastDir = dir, last

				s.SetPendingDirection(req)

				changed := dir != last
				switch {
				case changed && req != dir.Inverse():
					if s.dir != dir || s.pending != (Pending{Dir: req, Set: true}) {
						t.Errorf("dir=%v last=%v req=%v: expected %v queued, got dir=%v pending=%+v", dir, last, req, req, s.dir, s.pending)
					}
				case req != last.Inverse():
					if s.dir != req || s.pending.Set {
						t.Errorf("dir=%v last=%v req=%v: expected direct commit, got dir=%v pending=%+v", dir, last, req, s.dir, s.pending)
					}
				default:
					if s.dir != dir || s.pending.Set {
						t.Errorf("dir=%v last=%v req=%v: expected no change, got dir=%v pending=%+v", dir, last, req, s.dir, s.pending)
					}
				}
				if s.dir == last.Inverse() {
					t.Errorf("dir=%v last=%v req=%v: committed a reversal", dir, last, req)
				}
			}
		}
	}
}

func TestPendingPromotedOnlyAfterCommittedMove(t *testing.T) {
	s := NewSnake(core.Cell{X: 7, Y: 10}, testW, testH)

	s.SetPendingDirection(core.DirDown) // commits
	s.SetPendingDirection(core.DirLeft) // queues

	s.Advance(farFood)
	if s.Head() != (core.Cell{X: 7, Y: 11}) {
		t.Fatalf("first move should go down, head = %v", s.Head())
	}
	if !s.Pending().Set {
		t.Fatal("pending should survive the tick that applies the committed change")
	}

	s.Advance(farFood)
	if s.Head() != (core.Cell{X: 6, Y: 11}) {
		t.Errorf("second move should go left, head = %v", s.Head())
	}
	if s.Pending().Set {
		t.Error("pending should be consumed")
	}
}

func TestDownThenUpWhileMovingRight(t *testing.T) {
	s := NewSnake(core.Cell{X: 7, Y: 10}, testW, testH)

	s.SetPendingDirection(core.DirDown)
	s.SetPendingDirection(core.DirUp)

	if out := s.Advance(farFood); out != OutcomeNone {
		t.Fatalf("Advance() = %v, expected none", out)
	}
	if s.Head() != (core.Cell{X: 7, Y: 9}) {
		t.Errorf("Head() = %v, expected (7,9): Up replaces the unapplied Down", s.Head())
	}
	if s.LastDirection() == core.DirLeft {
		t.Error("snake reversed into its neck")
	}
}

func TestQueuedReversalIsDropped(t *testing.T) {
	s := NewSnake(core.Cell{X: 7, Y: 10}, testW, testH)

	s.SetPendingDirection(core.DirDown) // commits Down
	s.SetPendingDirection(core.DirDown) // queues Down
	s.SetPendingDirection(core.DirUp)   // commits Up over Down

	s.Advance(farFood) // moves Up
	if s.LastDirection() != core.DirUp {
		t.Fatalf("first move = %v, expected up", s.LastDirection())
	}

	// The queued Down now reverses the last move and must not apply.
	if out := s.Advance(farFood); out == OutcomeAteSelf {
		t.Fatal("queued reversal drove the snake into its neck")
	}
	if s.LastDirection() != core.DirUp {
		t.Errorf("second move = %v, expected up", s.LastDirection())
	}
}

// TestNoSingleTickReversal replays every sequence of up to seven
// operations (four direction keys plus advance) and checks no move ever
// reverses the previous one.
func TestNoSingleTickReversal(t *testing.T) {
	const ops, depth = 5, 7

	total := 1
	for range depth {
		total *= ops
	}

	for seq := range total {
		s := NewSnake(core.Cell{X: 7, Y: 10}, testW, testH)
		code := seq
		for range depth {
			op := code % ops
			code /= ops

			if op < 4 {
				s.SetPendingDirection(core.AllDirections()[op])
				continue
			}

			prev := s.LastDirection()
			out := s.Advance(farFood)
			if s.LastDirection() == prev.Inverse() {
				t.Fatalf("sequence %d: move %v reversed previous %v", seq, s.LastDirection(), prev)
			}
			if out == OutcomeAteSelf {
				t.Fatalf("sequence %d: length-1 snake collided with itself", seq)
			}
		}
	}
}

func TestSnakeHints(t *testing.T) {
	s := NewSnake(core.Cell{X: 7, Y: 10}, testW, testH)
	s.Advance(NewFood(core.Cell{X: 8, Y: 10}))

	expected := []RenderHint{
		{Cell: core.Cell{X: 7, Y: 10}, Color: BodyColor},
		{Cell: core.Cell{X: 6, Y: 10}, Color: BodyColor},
		{Cell: core.Cell{X: 8, Y: 10}, Color: HeadColor},
	}
	if hints := s.Hints(); !reflect.DeepEqual(hints, expected) {
		t.Errorf("Hints() = %v, expected %v", hints, expected)
	}
}
