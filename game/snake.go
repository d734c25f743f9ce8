package game

// Snake is the player-controlled actor: an ordered run of occupied
// cells, head first, with a committed and a pending direction. Once it
// has collided it stays collided; a new Snake is built to play again.
type Snake struct {
	body    []Point
	dir     Direction // applied during the most recent Advance
	pending Direction // applied on the next Advance
	grew    bool
	alive   bool
}

// NewSnake places a one-segment snake at the grid center, facing right.
func NewSnake(g Grid) *Snake {
	return &Snake{
		body:    []Point{g.Center()},
		dir:     Right,
		pending: Right,
		alive:   true,
	}
}

// Steer requests a direction for the next Advance. A request opposite
// to the latest pending direction is silently dropped so a single key
// press cannot turn the snake back into its own neck. The comparison is
// against the pending value, not the committed one: requests made
// within the same tick chain off each other.
func (s *Snake) Steer(d Direction) {
	if d == s.pending.Opposite() {
		return
	}
	s.pending = d
}

// Grow marks the snake to keep its tail on the next Advance. Growth is
// always deferred to the tick boundary, never applied immediately.
func (s *Snake) Grow() {
	s.grew = true
}

// Advance commits the pending direction and moves the snake one cell,
// wrapping at the field edges. It returns false when the new head lands
// on the body; the snake is then collided and left untouched, so the
// final shape stays available for display.
func (s *Snake) Advance(g Grid) bool {
	if !s.alive {
		return false
	}
	s.dir = s.pending
	delta := s.dir.Delta()
	head := g.Wrap(Point{X: s.body[0].X + delta.X, Y: s.body[0].Y + delta.Y})

	// Every segment except the current head counts, including the tail
	// cell that would move away this tick.
	for _, p := range s.body[1:] {
		if p == head {
			s.alive = false
			return false
		}
	}

	body := make([]Point, 0, len(s.body)+1)
	body = append(body, head)
	body = append(body, s.body...)
	if s.grew {
		s.grew = false
	} else {
		body = body[:len(body)-1]
	}
	s.body = body
	return true
}

// Head returns the position of the snake's head.
func (s *Snake) Head() Point {
	return s.body[0]
}

// Body returns a copy of the occupied cells, head first.
func (s *Snake) Body() []Point {
	out := make([]Point, len(s.body))
	copy(out, s.body)
	return out
}

// Len returns the number of occupied cells.
func (s *Snake) Len() int {
	return len(s.body)
}

// Occupies reports whether p is one of the snake's cells.
func (s *Snake) Occupies(p Point) bool {
	for _, b := range s.body {
		if b == p {
			return true
		}
	}
	return false
}

// Direction returns the committed direction of the last Advance.
func (s *Snake) Direction() Direction {
	return s.dir
}

// Pending returns the direction the next Advance will apply.
func (s *Snake) Pending() Direction {
	return s.pending
}

// Alive reports whether the snake has not collided yet.
func (s *Snake) Alive() bool {
	return s.alive
}
