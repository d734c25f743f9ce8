package game

// Direction is one of the four unit moves on the grid. Up decreases Y,
// Down increases Y (screen coordinates).
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionDeltas = [...]Point{
	Up:    {X: 0, Y: -1},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

var directionOpposites = [...]Direction{
	Up:    Down,
	Down:  Up,
	Left:  Right,
	Right: Left,
}

var directionNames = [...]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

// Delta returns the per-tick offset for the direction.
func (d Direction) Delta() Point {
	return directionDeltas[d]
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return directionOpposites[d]
}

func (d Direction) String() string {
	if d < Up || d > Right {
		return "unknown"
	}
	return directionNames[d]
}

// ParseDirection converts the lowercase direction names ("up", "down",
// "left", "right") back to a Direction.
func ParseDirection(s string) (Direction, bool) {
	for d, name := range directionNames {
		if s == name {
			return Direction(d), true
		}
	}
	return Up, false
}
