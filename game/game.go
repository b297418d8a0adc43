// Package game implements the snake state machine: a Session advances
// on a fixed tick while the renderer reads it between ticks.
package game

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"crt-snake/game/types"
)

// Screen layout and timing constants. Everything is compile-time
// configured; there are no flags, env vars or config files.
const (
	ScreenWidth  = 800
	ScreenHeight = 600
	UnitSize     = 20
	BorderSize   = 20

	TickInterval = 100 * time.Millisecond

	// StyleScoreInterval is the score step at which the CRT theme
	// rotates to the next one in the list.
	StyleScoreInterval = 5

	initialLength = 3
)

// PlayField is the playable grid inside the bezel, in cells.
var PlayField = types.Grid{
	Width:  (ScreenWidth - 2*BorderSize) / UnitSize,
	Height: (ScreenHeight - 2*BorderSize) / UnitSize,
}

// Session is one run of the game. It has two states: running, where
// ticks and direction changes apply, and game over, where only Reset
// brings it back. Score and high score survive resets within the
// process; nothing is persisted beyond it.
type Session struct {
	ID         string
	Snake      []types.Point // head first
	Food       types.Point
	Direction  types.Direction
	Running    bool
	Score      int
	HighScore  int
	StyleIndex int

	styleCount int
	startTime  time.Time
	rng        *rand.Rand
}

// NewSession creates a session cycling through styleCount themes and
// immediately resets it. The RNG is shared with the renderer's noise
// pass; tests inject a seeded one.
func NewSession(styleCount int, rng *rand.Rand) *Session {
	if styleCount < 1 {
		styleCount = 1
	}
	s := &Session{styleCount: styleCount, rng: rng}
	s.Reset()
	return s
}

// Reset starts a fresh run: a three-segment snake centered on the
// grid heading right, score and style back to zero, new food, new
// session ID. The high score is left alone.
func (s *Session) Reset() {
	center := types.Point{X: PlayField.Width / 2, Y: PlayField.Height / 2}
	s.Snake = s.Snake[:0]
	for i := 0; i < initialLength; i++ {
		s.Snake = append(s.Snake, types.Point{X: center.X - i, Y: center.Y})
	}
	s.Direction = types.DirRight
	s.Score = 0
	s.StyleIndex = 0
	s.Running = true
	s.startTime = time.Now()
	s.ID = uuid.NewString()
	s.spawnFood()
}

// SetDirection applies d unless the session is over or d would
// reverse the snake onto itself; such inputs are dropped silently.
func (s *Session) SetDirection(d types.Direction) {
	if !s.Running || d == s.Direction.Opposite() {
		return
	}
	s.Direction = d
}

// Tick advances the state machine by one step: move, then food, then
// collisions. Growth applies before the collision check so the check
// sees the updated segment list. A no-op once the session is over.
func (s *Session) Tick() {
	if !s.Running {
		return
	}

	newHead := s.Snake[0].Add(s.Direction.Delta())
	s.Snake = append([]types.Point{newHead}, s.Snake...)

	if newHead == s.Food {
		s.Score++
		if s.Score > s.HighScore {
			s.HighScore = s.Score
		}
		if s.Score%StyleScoreInterval == 0 {
			s.StyleIndex = (s.StyleIndex + 1) % s.styleCount
		}
		s.spawnFood()
	} else {
		s.Snake = s.Snake[:len(s.Snake)-1]
	}

	if s.hitWall(newHead) || s.hitSelf() {
		s.Running = false
	}
}

// Head returns the head segment.
func (s *Session) Head() types.Point {
	return s.Snake[0]
}

// Elapsed is the wall-clock time since the last reset.
func (s *Session) Elapsed() time.Duration {
	return time.Since(s.startTime)
}
