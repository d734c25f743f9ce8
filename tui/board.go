// Package tui contains the terminal presentations of the game: the
// full menu-driven app and a minimal variant, both drawing through
// tcell and driving the same game core one Steer/Tick at a time.
package tui

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/veresna/gridsnake/game"
	"github.com/veresna/gridsnake/options"
)

// Cells are drawn two columns wide so they come out roughly square in
// a terminal font.
const cellWidth = 2

// boardTop is the first board row; row 0 carries the score line.
const boardTop = 1

func toTCell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func directionForKey(ev *tcell.EventKey) (game.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.Up, true
	case tcell.KeyDown:
		return game.Down, true
	case tcell.KeyLeft:
		return game.Left, true
	case tcell.KeyRight:
		return game.Right, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return game.Up, true
		case 's', 'S':
			return game.Down, true
		case 'a', 'A':
			return game.Left, true
		case 'd', 'D':
			return game.Right, true
		}
	}
	return game.Up, false
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func drawTextCentered(s tcell.Screen, y int, style tcell.Style, text string) {
	w, _ := s.Size()
	drawText(s, (w-len(text))/2, y, style, text)
}

func drawCell(s tcell.Screen, p game.Point, col color.RGBA) {
	style := tcell.StyleDefault.Background(toTCell(col))
	for i := 0; i < cellWidth; i++ {
		s.SetContent(p.X*cellWidth+i, p.Y+boardTop, ' ', nil, style)
	}
}

// drawBoard renders one frame of a running game: score line, body with
// a distinguished head, and the food cell.
func drawBoard(s tcell.Screen, sess *game.Session, opts *options.Options) {
	s.Clear()

	body := sess.Body()
	for i := len(body) - 1; i >= 0; i-- {
		col := opts.SnakeColor()
		if i == 0 {
			col = options.Blue
		}
		drawCell(s, body[i], col)
	}
	drawCell(s, sess.FoodAt(), opts.FoodColor())

	drawText(s, 0, 0, tcell.StyleDefault.Foreground(tcell.ColorWhite),
		fmt.Sprintf("Score: %d", sess.Score()))
	s.Show()
}

// drawGameOver renders the terminal screen shown after a finished game.
func drawGameOver(s tcell.Screen, sess *game.Session, withMenuHint bool) {
	s.Clear()
	_, h := s.Size()

	title := "Game Over"
	if sess.Won() {
		title = "You Win!"
	}
	drawTextCentered(s, h/3, tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true), title)
	drawTextCentered(s, h/2, tcell.StyleDefault.Foreground(tcell.ColorWhite),
		fmt.Sprintf("Final Score: %d", sess.Score()))

	hint := "Press R to Restart or Q to Quit"
	if withMenuHint {
		hint = "Press R to Restart or M for Menu"
	}
	drawTextCentered(s, h/2+2, tcell.StyleDefault.Foreground(tcell.ColorWhite), hint)
	s.Show()
}
