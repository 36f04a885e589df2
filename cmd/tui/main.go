// Terminal front end. Renders the board as character cells and drives
// the same simulation core as the graphical build.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/core"
	"github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/level"
	"github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/systems"
)

const (
	tickInterval = 16 * time.Millisecond
	messageMs    = 2000
)

var (
	styleDefault = tcell.StyleDefault
	stylePath    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTower   = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleBasic   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleFast    = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleTank    = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleShot    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleCursor  = tcell.StyleDefault.Reverse(true)
	styleGood    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBad     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

type Game struct {
	screen  tcell.Screen
	session *core.Session
	lvl     *level.Level

	width, height  int
	scaleX, scaleY float64

	// Cursor cell for placement and upgrades
	curX, curY int

	message   string
	messageAt time.Time
}

func NewGame(lvl *level.Level, seed int64) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	g := &Game{
		screen:  screen,
		session: core.NewSession(lvl, seed),
		lvl:     lvl,
	}
	systems.Install(g.session)
	g.handleResize()
	g.curX = g.width / 2
	g.curY = (g.height - 2) / 2
	return g, nil
}

func (g *Game) cleanup() {
	g.screen.Fini()
}

func (g *Game) handleResize() {
	g.width, g.height = g.screen.Size()
	boardH := g.height - 2
	if boardH < 1 {
		boardH = 1
	}
	g.scaleX = float64(g.width) / float64(g.lvl.ScreenW)
	g.scaleY = float64(boardH) / float64(g.lvl.PlayfieldH())

	if g.curX >= g.width {
		g.curX = g.width - 1
	}
	if g.curY >= boardH {
		g.curY = boardH - 1
	}
}

// cell maps world coordinates to a screen cell.
func (g *Game) cell(wx, wy float64) (int, int) {
	return int(wx * g.scaleX), int(wy * g.scaleY)
}

// world maps a screen cell back to the center of its world region.
func (g *Game) world(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) / g.scaleX, (float64(cy) + 0.5) / g.scaleY
}

func (g *Game) say(msg string) {
	g.message = msg
	g.messageAt = time.Now()
}

func (g *Game) run() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}

		case <-ticker.C:
			g.session.Tick()
			g.draw()
		}
	}
}

func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		switch g.session.State {
		case core.StateMenu:
			if ev.Key() == tcell.KeyEnter {
				g.session.StartGame()
			}
		case core.StateGameOver, core.StateVictory:
			if ev.Key() == tcell.KeyEnter {
				g.session.ResetToPlaying()
			} else if ev.Key() == tcell.KeyRune && ev.Rune() == 'm' {
				g.session.ReturnToMenu()
			}
		case core.StatePaused:
			if ev.Key() == tcell.KeyRune && ev.Rune() == 'p' {
				g.session.Resume()
			}
		case core.StatePlaying:
			g.handlePlayingKey(ev)
		}

	case *tcell.EventResize:
		g.handleResize()
		g.screen.Sync()
	}
	return true
}

func (g *Game) handlePlayingKey(ev *tcell.EventKey) {
	boardH := g.height - 2

	switch ev.Key() {
	case tcell.KeyUp:
		g.moveCursor(0, -1, boardH)
		return
	case tcell.KeyDown:
		g.moveCursor(0, 1, boardH)
		return
	case tcell.KeyLeft:
		g.moveCursor(-1, 0, boardH)
		return
	case tcell.KeyRight:
		g.moveCursor(1, 0, boardH)
		return
	}
	if ev.Key() != tcell.KeyRune {
		return
	}

	switch ev.Rune() {
	case 'h':
		g.moveCursor(-1, 0, boardH)
	case 'j':
		g.moveCursor(0, 1, boardH)
	case 'k':
		g.moveCursor(0, -1, boardH)
	case 'l':
		g.moveCursor(1, 0, boardH)
	case 'n':
		if !g.session.StartNextWave() {
			g.say("wave already running")
		}
	case 't':
		wx, wy := g.world(g.curX, g.curY)
		if !g.session.PlaceTowerAt(wx, wy) {
			g.say("cannot place tower here")
		}
	case 'u':
		wx, wy := g.world(g.curX, g.curY)
		id := g.session.SelectTowerAt(wx, wy)
		if id == 0 {
			g.say("no tower under cursor")
		} else if !g.session.UpgradeTower(id) {
			g.say("cannot upgrade")
		}
	case 'p':
		g.session.Pause()
	case 'm':
		g.session.ReturnToMenu()
	}
}

func (g *Game) moveCursor(dx, dy, boardH int) {
	g.curX += dx
	g.curY += dy
	if g.curX < 0 {
		g.curX = 0
	}
	if g.curX >= g.width {
		g.curX = g.width - 1
	}
	if g.curY < 0 {
		g.curY = 0
	}
	if g.curY >= boardH {
		g.curY = boardH - 1
	}
}

func (g *Game) draw() {
	g.screen.Clear()

	switch g.session.State {
	case core.StateMenu:
		g.drawMenu()
	default:
		g.drawBoard()
		g.drawHUD()
	}

	g.screen.Show()
}

func (g *Game) drawMenu() {
	cy := g.height / 2
	g.drawCentered(cy-2, "T O W E R   D E F E N C E", styleTower)
	g.drawCentered(cy, "Enter to start", styleDefault)
	g.drawCentered(cy+1, "arrows/hjkl move, t place, u upgrade, n wave, p pause", stylePath)
	g.drawCentered(cy+2, "Esc quits", stylePath)
}

func (g *Game) drawBoard() {
	snap := g.session.Snapshot()

	g.drawPath()

	for _, t := range snap.Towers {
		cx, cy := g.cell(t.X, t.Y)
		g.set(cx, cy, rune('0'+t.Level), styleTower)
	}
	for _, e := range snap.Enemies {
		cx, cy := g.cell(e.X, e.Y)
		switch e.Kind {
		case core.EnemyFast:
			g.set(cx, cy, 'f', styleFast)
		case core.EnemyTank:
			g.set(cx, cy, 'O', styleTank)
		default:
			g.set(cx, cy, 'o', styleBasic)
		}
	}
	for _, p := range snap.Projectiles {
		cx, cy := g.cell(p.X, p.Y)
		g.set(cx, cy, '*', styleShot)
	}

	if g.session.State == core.StatePlaying {
		g.set(g.curX, g.curY, ' ', styleCursor)
	}

	switch g.session.State {
	case core.StatePaused:
		g.drawCentered(g.height/2, " PAUSED ", styleCursor)
	case core.StateGameOver:
		g.drawCentered(g.height/2-1, " GAME OVER ", styleBad)
		g.drawCentered(g.height/2, fmt.Sprintf(" you survived %d waves ", snap.Wave), styleDefault)
		g.drawCentered(g.height/2+1, " Enter restarts, m for menu ", stylePath)
	case core.StateVictory:
		g.drawCentered(g.height/2-1, " VICTORY! ", styleGood)
		g.drawCentered(g.height/2, " Enter restarts, m for menu ", stylePath)
	}
}

func (g *Game) drawPath() {
	path := g.lvl.Path
	for i := 0; i+1 < len(path); i++ {
		a, b := path[i], path[i+1]
		dx := b.X - a.X
		dy := b.Y - a.Y
		steps := int((abs(dx) + abs(dy)) * g.scaleX * 2)
		if steps < 1 {
			steps = 1
		}
		for s := 0; s <= steps; s++ {
			t := float64(s) / float64(steps)
			cx, cy := g.cell(a.X+dx*t, a.Y+dy*t)
			g.set(cx, cy, '.', stylePath)
		}
	}
}

func (g *Game) drawHUD() {
	snap := g.session.Snapshot()
	hudY := g.height - 2

	wave := "wave ready, n starts the next one"
	if snap.WaveActive {
		wave = fmt.Sprintf("wave running, %d enemies queued", snap.Pending)
	}
	line := fmt.Sprintf("$%d | %d lives | wave %d/%d | %s",
		snap.Money, snap.Lives, snap.Wave, core.VictoryWave, wave)
	g.drawText(0, hudY, line, styleDefault)

	if g.message != "" && time.Since(g.messageAt).Milliseconds() < messageMs {
		g.drawText(0, hudY+1, g.message, styleBad)
	} else {
		g.drawText(0, hudY+1, "t place  u upgrade  n wave  p pause  m menu  Esc quit", stylePath)
	}
}

func (g *Game) set(x, y int, r rune, style tcell.Style) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height-2 {
		return
	}
	g.screen.SetContent(x, y, r, nil, style)
}

func (g *Game) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		if x+i >= g.width {
			break
		}
		g.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (g *Game) drawCentered(y int, s string, style tcell.Style) {
	g.drawText((g.width-len(s))/2, y, s, style)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func main() {
	var (
		levelPath = flag.String("level", "", "board layout YAML, empty for the built-in board")
		seed      = flag.Int64("seed", 0, "simulation seed, 0 picks one")
	)
	flag.Parse()

	lvl := level.Default()
	if *levelPath != "" {
		loaded, err := level.Load(*levelPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load level: %v\n", err)
			os.Exit(1)
		}
		lvl = loaded
	}

	game, err := NewGame(lvl, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.cleanup()

	game.run()
}
