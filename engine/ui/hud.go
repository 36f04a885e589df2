package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/core"
)

var (
	colorBlack     = color.RGBA{0, 0, 0, 255}
	colorWhite     = color.RGBA{255, 255, 255, 255}
	colorGray      = color.RGBA{128, 128, 128, 255}
	colorLightGray = color.RGBA{200, 200, 200, 255}
	colorRed       = color.RGBA{255, 0, 0, 255}
	colorGreen     = color.RGBA{0, 255, 0, 255}
	colorBlue      = color.RGBA{0, 0, 255, 255}
	colorYellow    = color.RGBA{255, 255, 0, 255}
	colorOverlay   = color.RGBA{0, 0, 0, 200}
)

// Button is a clickable screen rectangle.
type Button struct {
	X, Y, W, H int
	Label      string
}

func (b Button) Contains(mx, my int) bool {
	return mx >= b.X && mx < b.X+b.W && my >= b.Y && my < b.Y+b.H
}

// Action identifies which HUD control a click landed on.
type Action int

const (
	ActionNone Action = iota // outside the panel
	ActionPanel              // panel background, click is consumed
	ActionNextWave
	ActionBuyTower
	ActionUpgrade
)

// HUD is the control strip along the bottom edge during play.
type HUD struct {
	ScreenW, ScreenH int
	PanelH           int
}

func NewHUD(sw, sh, panelH int) *HUD {
	return &HUD{ScreenW: sw, ScreenH: sh, PanelH: panelH}
}

func (h *HUD) NextWaveButton() Button {
	return Button{250, h.ScreenH - 50, 150, 35, "Next Wave"}
}

func (h *HUD) BuyTowerButton() Button {
	return Button{450, h.ScreenH - 80, 150, 35, fmt.Sprintf("Tower ($%d)", core.TowerCost)}
}

func (h *HUD) UpgradeButton() Button {
	return Button{450, h.ScreenH - 40, 150, 35, fmt.Sprintf("Upgrade ($%d)", core.UpgradeCost)}
}

// HandleClick maps a click position to the control under it. Geometry
// only; whether the action is currently allowed is the caller's problem.
func (h *HUD) HandleClick(mx, my int) Action {
	if my < h.ScreenH-h.PanelH {
		return ActionNone
	}
	switch {
	case h.NextWaveButton().Contains(mx, my):
		return ActionNextWave
	case h.BuyTowerButton().Contains(mx, my):
		return ActionBuyTower
	case h.UpgradeButton().Contains(mx, my):
		return ActionUpgrade
	}
	return ActionPanel
}

// Draw renders the panel. selected is the tower whose info is shown, nil
// when nothing is selected.
func (h *HUD) Draw(screen *ebiten.Image, snap *core.Snapshot, selected *core.TowerSnap) {
	py := h.ScreenH - h.PanelH
	vector.DrawFilledRect(screen, 0, float32(py), float32(h.ScreenW), float32(h.PanelH), colorLightGray, false)

	drawText(screen, fmt.Sprintf("Money: $%d", snap.Money), 20, h.ScreenH-80, colorBlack)
	drawText(screen, fmt.Sprintf("Lives: %d", snap.Lives), 20, h.ScreenH-40, colorBlack)
	drawText(screen, fmt.Sprintf("Wave: %d", snap.Wave), 250, h.ScreenH-80, colorBlack)

	nw := h.NextWaveButton()
	if snap.WaveActive {
		nw.Label = "Wave Active"
		drawButton(screen, nw, colorGray, colorBlack)
	} else {
		drawButton(screen, nw, colorGreen, colorBlack)
	}

	bt := h.BuyTowerButton()
	if snap.Money >= core.TowerCost {
		drawButton(screen, bt, colorBlue, colorWhite)
	} else {
		drawButton(screen, bt, colorGray, colorWhite)
	}

	if selected != nil && selected.Level < core.MaxTowerLevel {
		up := h.UpgradeButton()
		if snap.Money >= core.UpgradeCost {
			drawButton(screen, up, colorYellow, colorBlack)
		} else {
			drawButton(screen, up, colorGray, colorBlack)
		}
	}

	drawText(screen, "Click tower to select/upgrade | Right-click to deselect", 650, h.ScreenH-60, colorBlack)
}

// drawText places s with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(dst, s, basicfont.Face7x13, x, y+11, clr)
}

// drawTextCentered places s centered on (cx, cy).
func drawTextCentered(dst *ebiten.Image, s string, cx, cy int, clr color.Color) {
	text.Draw(dst, s, basicfont.Face7x13, cx-len(s)*7/2, cy+5, clr)
}

func drawButton(dst *ebiten.Image, b Button, bg, fg color.Color) {
	vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bg, false)
	drawTextCentered(dst, b.Label, b.X+b.W/2, b.Y+b.H/2, fg)
}
