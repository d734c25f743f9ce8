package tui

import (
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/veresna/gridsnake/game"
	"github.com/veresna/gridsnake/options"
)

// State is the screen the full app currently shows.
type State int

const (
	StateMenu State = iota
	StateOptions
	StatePlaying
	StateGameOver
)

// menuFPS drives the loop whenever no game is running; during play the
// rate follows the selected difficulty.
const menuFPS = 30

var (
	menuItems   = []string{"Play Game", "Options", "Quit"}
	optionItems = []string{"Difficulty", "Snake Color", "Food Color", "Back"}
)

// App is the full-menu terminal presentation: main menu, options
// screen with cycling values, the game itself and a game-over screen.
type App struct {
	screen tcell.Screen
	sess   *game.Session
	opts   *options.Options
	state  State
	sel    int // highlighted row on menu screens

	// OnTick, when set, observes the session after every play tick.
	// The frame exporter hangs off this.
	OnTick func(*game.Session)
}

// NewApp wires the presentation to a session and option set.
func NewApp(sess *game.Session, opts *options.Options) *App {
	return &App{sess: sess, opts: opts, state: StateMenu}
}

// Run owns the terminal until the player quits.
func (a *App) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	a.screen = screen

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	fps := menuFPS
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if a.handleKey(ev) {
					return nil
				}
			}
		case <-ticker.C:
			a.update()
			a.draw()
			if want := a.wantFPS(); want != fps {
				fps = want
				ticker.Stop()
				ticker = time.NewTicker(time.Second / time.Duration(fps))
			}
		}
	}
}

func (a *App) wantFPS() int {
	if a.state == StatePlaying {
		return a.opts.FPS()
	}
	return menuFPS
}

// handleKey dispatches a key press for the current state and reports
// whether the app should exit.
func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch a.state {
	case StateMenu:
		return a.handleMenuKey(ev)
	case StateOptions:
		a.handleOptionsKey(ev)
	case StatePlaying:
		a.handlePlayKey(ev)
	case StateGameOver:
		a.handleGameOverKey(ev)
	}
	return false
}

func (a *App) handleMenuKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyUp:
		a.sel = (a.sel - 1 + len(menuItems)) % len(menuItems)
	case tcell.KeyDown:
		a.sel = (a.sel + 1) % len(menuItems)
	case tcell.KeyEnter:
		switch a.sel {
		case 0:
			a.sess.Reset()
			a.state = StatePlaying
		case 1:
			a.state = StateOptions
			a.sel = 0
		case 2:
			return true
		}
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return a.handleMenuKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
		}
	}
	return false
}

func (a *App) handleOptionsKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		a.sel = (a.sel - 1 + len(optionItems)) % len(optionItems)
	case tcell.KeyDown:
		a.sel = (a.sel + 1) % len(optionItems)
	case tcell.KeyLeft:
		switch a.sel {
		case 0:
			a.opts.PrevDifficulty()
		case 1:
			a.opts.PrevSnakeColor()
		case 2:
			a.opts.PrevFoodColor()
		}
	case tcell.KeyRight:
		switch a.sel {
		case 0:
			a.opts.NextDifficulty()
		case 1:
			a.opts.NextSnakeColor()
		case 2:
			a.opts.NextFoodColor()
		}
	case tcell.KeyEscape:
		a.state = StateMenu
		a.sel = 0
	case tcell.KeyEnter:
		if a.sel == 3 {
			a.state = StateMenu
			a.sel = 0
		}
	}
}

func (a *App) handlePlayKey(ev *tcell.EventKey) {
	if d, ok := directionForKey(ev); ok {
		a.sess.Steer(d)
		return
	}
	if ev.Key() == tcell.KeyEscape {
		a.state = StateMenu
		a.sel = 0
	}
}

func (a *App) handleGameOverKey(ev *tcell.EventKey) {
	if ev.Key() != tcell.KeyRune {
		return
	}
	switch ev.Rune() {
	case 'r', 'R':
		a.sess.Reset()
		a.state = StatePlaying
	case 'm', 'M':
		a.state = StateMenu
		a.sel = 0
	}
}

func (a *App) update() {
	if a.state != StatePlaying {
		return
	}
	out := a.sess.Tick()
	if a.OnTick != nil {
		a.OnTick(a.sess)
	}
	if out == game.GameOver || out == game.Won {
		a.state = StateGameOver
	}
}

func (a *App) draw() {
	switch a.state {
	case StateMenu:
		a.drawMenu()
	case StateOptions:
		a.drawOptions()
	case StatePlaying:
		drawBoard(a.screen, a.sess, a.opts)
	case StateGameOver:
		drawGameOver(a.screen, a.sess, true)
	}
}

func (a *App) drawMenu() {
	s := a.screen
	s.Clear()
	_, h := s.Size()

	drawTextCentered(s, h/4, tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true), "Snake Game")
	for i, item := range menuItems {
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		if i == a.sel {
			style = tcell.StyleDefault.Foreground(tcell.ColorYellow)
		}
		drawTextCentered(s, h/2+i*2, style, item)
	}
	drawTextCentered(s, h-2, tcell.StyleDefault.Foreground(tcell.ColorWhite),
		"Use Arrow Keys to Navigate, Enter to Select")
	s.Show()
}

func (a *App) drawOptions() {
	s := a.screen
	s.Clear()
	w, h := s.Size()

	drawTextCentered(s, h/6, tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true), "Options")

	y := h / 3
	for i, item := range optionItems {
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		if i == a.sel {
			style = tcell.StyleDefault.Foreground(tcell.ColorYellow)
		}
		drawText(s, w/2-len(item)-2, y+i*2, style, item)

		switch i {
		case 0:
			drawText(s, w/2+2, y, style, "< "+a.opts.Difficulty()+" >")
		case 1:
			drawSwatch(s, w/2+2, y+2, a.opts.SnakeColor())
		case 2:
			drawSwatch(s, w/2+2, y+4, a.opts.FoodColor())
		}
	}
	drawTextCentered(s, h-2, tcell.StyleDefault.Foreground(tcell.ColorWhite),
		"Use Arrow Keys to Navigate and Change Values")
	s.Show()
}

func drawSwatch(s tcell.Screen, x, y int, col color.RGBA) {
	style := tcell.StyleDefault.Background(toTCell(col))
	for i := 0; i < 4; i++ {
		s.SetContent(x+i, y, ' ', nil, style)
	}
}
