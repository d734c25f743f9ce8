// Package options holds the user-tunable game settings: difficulty and
// the snake/food colors. Values are picked by cycling through fixed
// lists that wrap at both ends; the game core never sees any of this.
package options

import "image/color"

// Palette shared by the terminal and PNG renderers.
var (
	Black  = color.RGBA{A: 255}
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Green  = color.RGBA{G: 255, A: 255}
	Red    = color.RGBA{R: 255, A: 255}
	Blue   = color.RGBA{B: 255, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, A: 255}
	Purple = color.RGBA{R: 128, B: 128, A: 255}
	Cyan   = color.RGBA{G: 255, B: 255, A: 255}
	Orange = color.RGBA{R: 255, G: 165, A: 255}
)

var (
	difficulties = []string{"Easy", "Medium", "Hard", "Very Hard", "Extreme"}
	// Ticks per second the play loop runs at for each difficulty. The
	// rules never change with difficulty, only the clock does.
	difficultyFPS = []int{10, 15, 30, 60, 120}

	snakeColors     = []color.RGBA{Green, Blue, Yellow, Purple, Cyan, Orange}
	snakeColorNames = []string{"green", "blue", "yellow", "purple", "cyan", "orange"}

	foodColors     = []color.RGBA{Red, Orange, Yellow, Purple, Cyan, White}
	foodColorNames = []string{"red", "orange", "yellow", "purple", "cyan", "white"}
)

// Options is a set of selections into the fixed lists above.
type Options struct {
	difficulty int
	snakeColor int
	foodColor  int
}

// New returns the default selection: Medium, green snake, red food.
func New() *Options {
	return &Options{difficulty: 1}
}

// Difficulty returns the selected difficulty name.
func (o *Options) Difficulty() string {
	return difficulties[o.difficulty]
}

// FPS returns the play-loop tick rate for the selected difficulty.
func (o *Options) FPS() int {
	return difficultyFPS[o.difficulty]
}

// SnakeColor returns the selected body color.
func (o *Options) SnakeColor() color.RGBA {
	return snakeColors[o.snakeColor]
}

// SnakeColorName returns the selected body color's config name.
func (o *Options) SnakeColorName() string {
	return snakeColorNames[o.snakeColor]
}

// FoodColor returns the selected food color.
func (o *Options) FoodColor() color.RGBA {
	return foodColors[o.foodColor]
}

// FoodColorName returns the selected food color's config name.
func (o *Options) FoodColorName() string {
	return foodColorNames[o.foodColor]
}

func (o *Options) NextDifficulty() {
	o.difficulty = (o.difficulty + 1) % len(difficulties)
}

func (o *Options) PrevDifficulty() {
	o.difficulty = (o.difficulty - 1 + len(difficulties)) % len(difficulties)
}

func (o *Options) NextSnakeColor() {
	o.snakeColor = (o.snakeColor + 1) % len(snakeColors)
}

func (o *Options) PrevSnakeColor() {
	o.snakeColor = (o.snakeColor - 1 + len(snakeColors)) % len(snakeColors)
}

func (o *Options) NextFoodColor() {
	o.foodColor = (o.foodColor + 1) % len(foodColors)
}

func (o *Options) PrevFoodColor() {
	o.foodColor = (o.foodColor - 1 + len(foodColors)) % len(foodColors)
}

// SetDifficulty selects a difficulty by name, for config defaults. It
// reports false and leaves the selection alone on an unknown name.
func (o *Options) SetDifficulty(name string) bool {
	for i, d := range difficulties {
		if d == name {
			o.difficulty = i
			return true
		}
	}
	return false
}

// SetSnakeColor selects a body color by config name.
func (o *Options) SetSnakeColor(name string) bool {
	for i, n := range snakeColorNames {
		if n == name {
			o.snakeColor = i
			return true
		}
	}
	return false
}

// SetFoodColor selects a food color by config name.
func (o *Options) SetFoodColor(name string) bool {
	for i, n := range foodColorNames {
		if n == name {
			o.foodColor = i
			return true
		}
	}
	return false
}
