package game

import "math/rand"

// respawnRetries caps uniform sampling before falling back to a scan of
// the free cells, so a nearly full board cannot spin forever.
const respawnRetries = 64

// Food is the single collectible cell on the field.
type Food struct {
	pos Point
}

// Respawn places the food on a uniformly random cell for which occupied
// returns false. It reports false when the field has no free cell left,
// which is the perfect-game state.
func (f *Food) Respawn(g Grid, rng *rand.Rand, occupied func(Point) bool) bool {
	for i := 0; i < respawnRetries; i++ {
		p := Point{X: rng.Intn(g.Width), Y: rng.Intn(g.Height)}
		if !occupied(p) {
			f.pos = p
			return true
		}
	}

	// Dense board: pick directly among the remaining free cells.
	var free []Point
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := Point{X: x, Y: y}
			if !occupied(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return false
	}
	f.pos = free[rng.Intn(len(free))]
	return true
}

// Pos returns the cell the food sits on.
func (f *Food) Pos() Point {
	return f.pos
}

// CollidesWith reports whether p sits on the food cell.
func (f *Food) CollidesWith(p Point) bool {
	return f.pos == p
}
