package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/audio"
	"github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/core"
	"github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/input"
	"github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/level"
	"github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/network"
	"github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/render"
	"github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/systems"
	"github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/ui"
)

// Game implements ebiten.Game interface
type Game struct {
	session  *core.Session
	renderer *render.Renderer
	hud      *ui.HUD
	screens  *ui.Screens
	input    *input.InputState
	sound    *audio.AudioManager
	recorder *network.Replay

	placing  bool
	selected core.EntityID
}

func NewGame(lvl *level.Level, seed int64, recordPath string, mute bool) (*Game, error) {
	g := &Game{
		session:  core.NewSession(lvl, seed),
		renderer: render.New(lvl),
		hud:      ui.NewHUD(lvl.ScreenW, lvl.ScreenH, lvl.HUDHeight),
		screens:  ui.NewScreens(lvl.ScreenW, lvl.ScreenH),
		input:    input.NewInputState(),
		sound:    audio.NewAudioManager(),
	}
	systems.Install(g.session)

	if !mute {
		if err := g.sound.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		}
	}
	g.sound.AttachBus(g.session.Events)

	if recordPath != "" {
		rec, err := network.NewReplayRecorder(recordPath)
		if err != nil {
			return nil, err
		}
		rec.Attach(g.session.Events)
		g.recorder = rec
	}

	return g, nil
}

// Close flushes the replay file and silences the speaker.
func (g *Game) Close() {
	if g.recorder != nil {
		if err := g.recorder.Close(); err != nil {
			log.Printf("close replay: %v", err)
		}
	}
	g.sound.Cleanup()
}

func (g *Game) Update() error {
	g.input.Update()

	switch g.session.State {
	case core.StateMenu:
		g.updateMenu()
	case core.StatePlaying:
		g.updatePlaying()
	case core.StatePaused:
		g.updatePaused()
	case core.StateGameOver, core.StateVictory:
		g.updateEndScreen()
	}

	g.session.Tick()
	return nil
}

func (g *Game) updateMenu() {
	start := g.input.IsKeyJustPressed(ebiten.KeyEnter) ||
		(g.input.LeftJustPressed && g.screens.StartButton().Contains(g.input.MouseX, g.input.MouseY))
	if start {
		g.sound.PlaySFX(audio.SndClick)
		g.session.StartGame()
	}
}

func (g *Game) updatePlaying() {
	if g.input.IsKeyJustPressed(ebiten.KeyP) {
		g.session.Pause()
		return
	}
	if g.input.IsKeyJustPressed(ebiten.KeyM) {
		g.deselect()
		g.session.ReturnToMenu()
		return
	}
	if g.input.IsKeyJustPressed(ebiten.KeyEscape) {
		g.deselect()
	}
	if g.input.IsKeyJustPressed(ebiten.KeyN) {
		g.session.StartNextWave()
	}
	if g.input.IsKeyJustPressed(ebiten.KeyB) && g.session.Money >= core.TowerCost {
		g.placing = true
		g.selected = 0
	}
	if g.input.IsKeyJustPressed(ebiten.KeyU) && g.selected != 0 {
		g.session.UpgradeTower(g.selected)
	}

	if g.input.RightJustPressed {
		g.deselect()
	}
	if g.input.LeftJustPressed {
		g.handleLeftClick(g.input.MouseX, g.input.MouseY)
	}
}

func (g *Game) handleLeftClick(mx, my int) {
	switch g.hud.HandleClick(mx, my) {
	case ui.ActionNextWave:
		if g.session.StartNextWave() {
			g.sound.PlaySFX(audio.SndClick)
		}
	case ui.ActionBuyTower:
		if g.session.Money >= core.TowerCost {
			g.sound.PlaySFX(audio.SndClick)
			g.placing = true
			g.selected = 0
		}
	case ui.ActionUpgrade:
		if g.selected != 0 {
			g.session.UpgradeTower(g.selected)
		}
	case ui.ActionPanel:
		// click landed on the panel background, swallow it
	case ui.ActionNone:
		if g.placing {
			if g.session.PlaceTowerAt(float64(mx), float64(my)) {
				g.placing = false
			}
		} else {
			g.selected = g.session.SelectTowerAt(float64(mx), float64(my))
		}
	}
}

func (g *Game) updatePaused() {
	if g.input.IsKeyJustPressed(ebiten.KeyP) || g.input.IsKeyJustPressed(ebiten.KeyEscape) {
		g.session.Resume()
	}
}

func (g *Game) updateEndScreen() {
	if g.input.IsKeyJustPressed(ebiten.KeyM) {
		g.deselect()
		g.session.ReturnToMenu()
		return
	}
	restart := g.input.IsKeyJustPressed(ebiten.KeyEnter) ||
		(g.input.LeftJustPressed && g.screens.RestartButton().Contains(g.input.MouseX, g.input.MouseY))
	if restart {
		g.sound.PlaySFX(audio.SndClick)
		g.deselect()
		g.session.ResetToPlaying()
	}
}

func (g *Game) deselect() {
	g.placing = false
	g.selected = 0
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.session.State == core.StateMenu {
		g.screens.DrawMenu(screen)
		return
	}

	snap := g.session.Snapshot()
	g.renderer.Draw(screen, snap, g.selected)

	if g.placing {
		mx, my := g.input.MouseX, g.input.MouseY
		valid := g.session.CanPlaceTower(float64(mx), float64(my))
		g.renderer.DrawPlacementPreview(screen, float64(mx), float64(my), valid)
	}

	g.hud.Draw(screen, snap, findTower(snap, g.selected))

	switch g.session.State {
	case core.StatePaused:
		g.screens.DrawPause(screen)
	case core.StateGameOver:
		g.screens.DrawGameOver(screen, snap.Wave)
	case core.StateVictory:
		g.screens.DrawVictory(screen)
	}
}

func findTower(snap *core.Snapshot, id core.EntityID) *core.TowerSnap {
	if id == 0 {
		return nil
	}
	for i := range snap.Towers {
		if snap.Towers[i].ID == id {
			return &snap.Towers[i]
		}
	}
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.session.Level.ScreenW, g.session.Level.ScreenH
}

func main() {
	var (
		levelPath  = flag.String("level", "", "board layout YAML, empty for the built-in board")
		seed       = flag.Int64("seed", 0, "simulation seed, 0 picks one")
		recordPath = flag.String("record", "", "write a command replay to this file")
		mute       = flag.Bool("mute", false, "disable sound")
	)
	flag.Parse()

	lvl := level.Default()
	if *levelPath != "" {
		loaded, err := level.Load(*levelPath)
		if err != nil {
			log.Fatalf("load level: %v", err)
		}
		lvl = loaded
	}

	game, err := NewGame(lvl, *seed, *recordPath, *mute)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(lvl.ScreenW, lvl.ScreenH)
	ebiten.SetWindowTitle("Tower Defence")
	ebiten.SetVsyncEnabled(true)

	err = ebiten.RunGame(game)
	game.Close()
	if err != nil {
		log.Fatal(err)
	}
}
