package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/veresna/gridsnake/game"
	"github.com/veresna/gridsnake/options"
)

// Minimal is the menu-less presentation: it boots straight into a game
// and only knows steering, restart and quit. It shares every drawing
// and core call with the full app.
type Minimal struct {
	Session *game.Session
	Opts    *options.Options

	// OnTick, when set, observes the session after every tick.
	OnTick func(*game.Session)
}

// Run owns the terminal until the player quits with Q or Escape.
func (m *Minimal) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(time.Second / time.Duration(m.Opts.FPS()))
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if m.handleKey(ev) {
					return nil
				}
			}
		case <-ticker.C:
			if !m.Session.Terminated() {
				m.Session.Tick()
				if m.OnTick != nil {
					m.OnTick(m.Session)
				}
			}
			if m.Session.Terminated() {
				drawGameOver(screen, m.Session, false)
			} else {
				drawBoard(screen, m.Session, m.Opts)
			}
		}
	}
}

func (m *Minimal) handleKey(ev *tcell.EventKey) bool {
	if d, ok := directionForKey(ev); ok {
		m.Session.Steer(d)
		return false
	}
	if ev.Key() == tcell.KeyEscape {
		return true
	}
	if ev.Key() == tcell.KeyRune {
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'r', 'R':
			m.Session.Reset()
		}
	}
	return false
}
