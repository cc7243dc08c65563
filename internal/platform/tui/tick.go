// Package tui provides the Bubble Tea integration for the snake game.
// It owns the frame loop, key mapping and terminal rendering; the game
// itself only sees whole simulation ticks and abstract keys.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per rendered frame.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the specified rate.
func frameCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(max(1, fps))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// stepper converts wall-clock frames into a count of fixed simulation steps.
// Leftover time carries into the next frame, so steps are never merged or
// dropped.
type stepper struct {
	interval time.Duration
	last     time.Time
	acc      time.Duration
}

func newStepper(tickRate int) stepper {
	return stepper{interval: time.Second / time.Duration(max(1, tickRate))}
}

// advance records a frame at now and returns how many steps are due.
// The first frame after a reset only starts the clock.
func (s *stepper) advance(now time.Time) int {
	if s.last.IsZero() {
		s.last = now
		return 0
	}
	elapsed := now.Sub(s.last)
	s.last = now
	if elapsed > 0 {
		s.acc += elapsed
	}
	n := int(s.acc / s.interval)
	s.acc -= time.Duration(n) * s.interval
	return n
}

// reset stops the clock; used while paused.
func (s *stepper) reset() {
	s.last = time.Time{}
	s.acc = 0
}
