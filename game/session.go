package game

import (
	"math/rand"
	"time"
)

// Outcome is the result of one Tick.
type Outcome int

const (
	// Alive: the snake moved and nothing else happened.
	Alive Outcome = iota
	// Ate: the head landed on the food; growth is pending and the
	// score was bumped.
	Ate
	// GameOver: the snake ran into itself.
	GameOver
	// Won: the snake covers the whole field and no cell is left for
	// food.
	Won
)

// Session runs one game: a snake, one food cell and a score. It is
// advanced exactly one step per Tick by an external clock; the core is
// rate-agnostic. A Session is owned by a single loop driver and is not
// safe for concurrent use.
type Session struct {
	grid  Grid
	snake *Snake
	food  Food
	score int
	over  bool
	won   bool
	seed  int64
	rng   *rand.Rand
}

// NewSession starts a fresh game on g. Seed 0 draws from the clock; any
// other value makes every run (and every Reset) deterministic.
func NewSession(g Grid, seed int64) *Session {
	s := &Session{grid: g, seed: seed}
	s.Reset()
	return s
}

// Reset discards the running game and builds a fresh snake, food and
// score. It is the only way out of a terminated session.
func (s *Session) Reset() {
	seed := s.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.rng = rand.New(rand.NewSource(seed))
	s.snake = NewSnake(s.grid)
	s.score = 0
	s.over = false
	s.won = false
	s.food = Food{}
	s.food.Respawn(s.grid, s.rng, s.snake.Occupies)
}

// Steer forwards a direction request to the snake. Terminated sessions
// ignore it.
func (s *Session) Steer(d Direction) {
	if s.over {
		return
	}
	s.snake.Steer(d)
}

// Tick advances the game one step. Once the session has terminated,
// Tick mutates nothing and keeps reporting the terminal outcome.
func (s *Session) Tick() Outcome {
	if s.over {
		if s.won {
			return Won
		}
		return GameOver
	}

	if !s.snake.Advance(s.grid) {
		s.over = true
		return GameOver
	}

	if !s.food.CollidesWith(s.snake.Head()) {
		return Alive
	}

	s.snake.Grow()
	s.score++
	if !s.food.Respawn(s.grid, s.rng, s.snake.Occupies) {
		// Perfect game: the body fills the field, there is nowhere
		// left to put food.
		s.over = true
		s.won = true
		return Won
	}
	return Ate
}

// Grid returns the playing field.
func (s *Session) Grid() Grid {
	return s.grid
}

// Score returns the number of food cells eaten this game.
func (s *Session) Score() int {
	return s.score
}

// Terminated reports whether the game has ended.
func (s *Session) Terminated() bool {
	return s.over
}

// Won reports whether the game ended by filling the field rather than
// by collision.
func (s *Session) Won() bool {
	return s.won
}

// Body returns the snake's cells, head first, for rendering.
func (s *Session) Body() []Point {
	return s.snake.Body()
}

// Head returns the snake's head cell.
func (s *Session) Head() Point {
	return s.snake.Head()
}

// Length returns the snake's current length.
func (s *Session) Length() int {
	return s.snake.Len()
}

// FoodAt returns the cell the food currently sits on.
func (s *Session) FoodAt() Point {
	return s.food.Pos()
}
