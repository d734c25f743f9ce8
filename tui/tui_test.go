package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/veresna/gridsnake/game"
	"github.com/veresna/gridsnake/options"
)

func simScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("sim screen: %v", err)
	}
	s.SetSize(80, 24)
	t.Cleanup(s.Fini)
	return s
}

func testSession(t *testing.T) *game.Session {
	t.Helper()
	g, err := game.NewGrid(10, 8)
	if err != nil {
		t.Fatal(err)
	}
	return game.NewSession(g, 1)
}

func bgAt(s tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := s.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestDirectionForKey(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want game.Direction
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), game.Up},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), game.Down},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), game.Left},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), game.Right},
		{tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), game.Up},
		{tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), game.Down},
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), game.Left},
		{tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), game.Right},
	}
	for _, c := range cases {
		got, ok := directionForKey(c.ev)
		if !ok || got != c.want {
			t.Errorf("directionForKey(%v/%q) = %v, %v; want %v", c.ev.Key(), c.ev.Rune(), got, ok, c.want)
		}
	}
	if _, ok := directionForKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)); ok {
		t.Error("'x' should not map to a direction")
	}
}

func TestDrawBoardPaintsHeadAndFood(t *testing.T) {
	s := simScreen(t)
	sess := testSession(t)
	opts := options.New()

	drawBoard(s, sess, opts)

	head := sess.Head()
	if got := bgAt(s, head.X*cellWidth, head.Y+boardTop); got != toTCell(options.Blue) {
		t.Errorf("head cell background = %v, want blue", got)
	}
	food := sess.FoodAt()
	if got := bgAt(s, food.X*cellWidth, food.Y+boardTop); got != toTCell(opts.FoodColor()) {
		t.Errorf("food cell background = %v, want %v", got, toTCell(opts.FoodColor()))
	}
}

func TestMenuEnterStartsGame(t *testing.T) {
	a := NewApp(testSession(t), options.New())
	a.screen = simScreen(t)

	if a.state != StateMenu {
		t.Fatalf("initial state = %v, want menu", a.state)
	}
	a.handleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if a.state != StatePlaying {
		t.Errorf("state after Enter on Play Game = %v, want playing", a.state)
	}
}

func TestMenuNavigationWraps(t *testing.T) {
	a := NewApp(testSession(t), options.New())
	a.handleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	if a.sel != len(menuItems)-1 {
		t.Errorf("up from the first item selected %d, want %d", a.sel, len(menuItems)-1)
	}
	a.handleKey(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	if a.sel != 0 {
		t.Errorf("down wrapped to %d, want 0", a.sel)
	}
}

func TestQuitFromMenu(t *testing.T) {
	a := NewApp(testSession(t), options.New())
	a.sel = 2 // Quit
	if !a.handleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)) {
		t.Error("Enter on Quit should exit")
	}
}

func TestOptionsCyclingKeys(t *testing.T) {
	a := NewApp(testSession(t), options.New())
	a.state = StateOptions
	a.sel = 0

	a.handleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	if a.opts.Difficulty() != "Hard" {
		t.Errorf("difficulty after Right = %q, want Hard", a.opts.Difficulty())
	}
	a.handleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	if a.opts.Difficulty() != "Medium" {
		t.Errorf("difficulty after Left = %q, want Medium", a.opts.Difficulty())
	}

	a.handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if a.state != StateMenu {
		t.Errorf("Escape should return to the menu, state = %v", a.state)
	}
}

func TestPlayKeysSteerAndPause(t *testing.T) {
	a := NewApp(testSession(t), options.New())
	a.state = StatePlaying

	a.handleKey(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	a.update()
	if want := a.sess.Grid().Center().Y + 1; a.sess.Head().Y != want {
		t.Errorf("head Y after steering down = %d, want %d", a.sess.Head().Y, want)
	}

	a.handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if a.state != StateMenu {
		t.Errorf("Escape during play should open the menu, state = %v", a.state)
	}
}

func TestGameOverKeys(t *testing.T) {
	a := NewApp(testSession(t), options.New())
	a.state = StateGameOver

	a.handleKey(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone))
	if a.state != StateMenu {
		t.Errorf("M should return to the menu, state = %v", a.state)
	}

	a.state = StateGameOver
	a.handleKey(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if a.state != StatePlaying {
		t.Errorf("R should restart, state = %v", a.state)
	}
	if a.sess.Score() != 0 || a.sess.Terminated() {
		t.Error("restart should hand out a fresh session state")
	}
}

func TestUpdateCallsOnTick(t *testing.T) {
	a := NewApp(testSession(t), options.New())
	a.state = StatePlaying
	called := 0
	a.OnTick = func(s *game.Session) { called++ }

	a.update()
	a.update()
	if called != 2 {
		t.Errorf("OnTick called %d times, want 2", called)
	}

	a.state = StateMenu
	a.update()
	if called != 2 {
		t.Error("OnTick must not fire outside play")
	}
}

func TestWantFPSFollowsState(t *testing.T) {
	a := NewApp(testSession(t), options.New())
	if a.wantFPS() != menuFPS {
		t.Errorf("menu fps = %d, want %d", a.wantFPS(), menuFPS)
	}
	a.state = StatePlaying
	if a.wantFPS() != a.opts.FPS() {
		t.Errorf("play fps = %d, want %d", a.wantFPS(), a.opts.FPS())
	}
}

func TestMinimalKeys(t *testing.T) {
	m := &Minimal{Session: testSession(t), Opts: options.New()}

	if m.handleKey(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone)) {
		t.Error("steering must not quit")
	}
	if !m.handleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("Q should quit")
	}
	if !m.handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Escape should quit")
	}
	m.Session.Tick()
	m.handleKey(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if m.Session.Score() != 0 || m.Session.Length() != 1 {
		t.Errorf("after R: score %d length %d, want a fresh session", m.Session.Score(), m.Session.Length())
	}
}
