package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Screens draws the full-screen states around play: the main menu, the
// end screens and the pause overlay.
type Screens struct {
	ScreenW, ScreenH int
}

func NewScreens(sw, sh int) *Screens {
	return &Screens{ScreenW: sw, ScreenH: sh}
}

// StartButton is the menu's start control.
func (s *Screens) StartButton() Button {
	return Button{s.ScreenW/2 - 100, 300, 200, 50, "START GAME"}
}

// RestartButton is shared by the game over and victory screens.
func (s *Screens) RestartButton() Button {
	return Button{s.ScreenW/2 - 100, 350, 200, 50, "RESTART"}
}

func (s *Screens) DrawMenu(screen *ebiten.Image) {
	screen.Fill(colorBlack)

	cx := s.ScreenW / 2
	drawTextCentered(screen, "TOWER DEFENCE", cx, 200, colorWhite)

	drawButton(screen, s.StartButton(), colorGreen, colorBlack)

	instructions := []string{
		"Build towers to defend against enemies",
		"Survive 10 waves to win",
		"Click to place towers, upgrade by selecting them",
		"Don't let enemies reach the end!",
	}
	y := 400
	for _, inst := range instructions {
		drawTextCentered(screen, inst, cx, y, colorWhite)
		y += 30
	}
}

func (s *Screens) DrawGameOver(screen *ebiten.Image, wave int) {
	s.drawOverlay(screen)

	cx := s.ScreenW / 2
	drawTextCentered(screen, "GAME OVER", cx, 250, colorRed)
	drawTextCentered(screen, fmt.Sprintf("You survived %d waves", wave), cx, 300, colorWhite)

	drawButton(screen, s.RestartButton(), colorGreen, colorBlack)
}

func (s *Screens) DrawVictory(screen *ebiten.Image) {
	s.drawOverlay(screen)

	cx := s.ScreenW / 2
	drawTextCentered(screen, "VICTORY!", cx, 250, colorGreen)
	drawTextCentered(screen, "You successfully defended against all waves!", cx, 300, colorWhite)

	b := s.RestartButton()
	b.Label = "PLAY AGAIN"
	drawButton(screen, b, colorBlue, colorWhite)
}

func (s *Screens) DrawPause(screen *ebiten.Image) {
	s.drawOverlay(screen)

	cx := s.ScreenW / 2
	drawTextCentered(screen, "PAUSED", cx, 250, colorWhite)
	drawTextCentered(screen, "Press P to resume", cx, 300, colorLightGray)
}

func (s *Screens) drawOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(s.ScreenW), float32(s.ScreenH), colorOverlay, false)
}
