package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/core"
	"github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/level"
)

// EnemyColors maps enemy kinds to their fill color
var EnemyColors = map[core.EnemyKind]color.RGBA{
	core.EnemyBasic: {255, 0, 0, 255},   // red
	core.EnemyFast:  {255, 165, 0, 255}, // orange
	core.EnemyTank:  {128, 0, 128, 255}, // purple
}

// TowerColors maps tower kinds to their fill color
var TowerColors = map[core.TowerKind]color.RGBA{
	core.TowerBasic:  {0, 0, 255, 255},   // blue
	core.TowerSniper: {0, 100, 0, 255},   // dark green
	core.TowerSplash: {128, 0, 128, 255}, // purple
}

var (
	colorField      = color.RGBA{255, 255, 255, 255}
	colorPath       = color.RGBA{128, 128, 128, 255}
	colorOutline    = color.RGBA{0, 0, 0, 255}
	colorProjectile = color.RGBA{255, 255, 0, 255}
	colorHealthLost = color.RGBA{255, 0, 0, 255}
	colorHealthLeft = color.RGBA{0, 255, 0, 255}
	colorRange      = color.RGBA{200, 200, 200, 255}
	colorValidSpot  = color.RGBA{0, 255, 0, 255}
	colorBadSpot    = color.RGBA{255, 0, 0, 255}
)

const pathWidth = 30

// Renderer draws the playfield from session snapshots. It holds no game
// state beyond the board geometry.
type Renderer struct {
	Level *level.Level
}

func New(lvl *level.Level) *Renderer {
	return &Renderer{Level: lvl}
}

// Draw renders the field, the path and every entity. The selected tower,
// if any, gets its range ring.
func (r *Renderer) Draw(screen *ebiten.Image, snap *core.Snapshot, selected core.EntityID) {
	screen.Fill(colorField)
	r.drawPath(screen)

	for _, t := range snap.Towers {
		if t.ID == selected {
			vector.StrokeCircle(screen, float32(t.X), float32(t.Y), float32(t.Range), 1, colorRange, true)
		}
		r.drawTower(screen, t)
	}
	for _, e := range snap.Enemies {
		r.drawEnemy(screen, e)
	}
	for _, p := range snap.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), core.ProjectileRadius, colorProjectile, true)
	}
}

// DrawPlacementPreview shows the ghost tower under the cursor with the
// basic tower's range ring, green on legal ground and red otherwise.
func (r *Renderer) DrawPlacementPreview(screen *ebiten.Image, x, y float64, valid bool) {
	clr := colorValidSpot
	if !valid {
		clr = colorBadSpot
	}
	vector.StrokeCircle(screen, float32(x), float32(y), core.TowerRadius, 2, clr, true)
	baseRange := float32(core.TowerDefs[core.TowerBasic].BaseRange)
	vector.StrokeCircle(screen, float32(x), float32(y), baseRange, 1, colorRange, true)
}

func (r *Renderer) drawPath(screen *ebiten.Image) {
	p := r.Level.Path
	for i := 0; i+1 < len(p); i++ {
		vector.StrokeLine(screen,
			float32(p[i].X), float32(p[i].Y),
			float32(p[i+1].X), float32(p[i+1].Y),
			pathWidth, colorPath, false)
	}
}

func (r *Renderer) drawEnemy(screen *ebiten.Image, e core.EnemySnap) {
	clr, ok := EnemyColors[e.Kind]
	if !ok {
		clr = color.RGBA{255, 0, 255, 255}
	}
	vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), float32(e.Radius), clr, true)

	// Health bar above the enemy
	const barW, barH = 20, 4
	bx := float32(e.X) - barW/2
	by := float32(e.Y-e.Radius) - 8
	vector.DrawFilledRect(screen, bx, by, barW, barH, colorHealthLost, false)
	vector.DrawFilledRect(screen, bx, by, barW*float32(e.Health), barH, colorHealthLeft, false)
}

func (r *Renderer) drawTower(screen *ebiten.Image, t core.TowerSnap) {
	clr, ok := TowerColors[t.Kind]
	if !ok {
		clr = color.RGBA{255, 0, 255, 255}
	}
	vector.DrawFilledCircle(screen, float32(t.X), float32(t.Y), core.TowerRadius, clr, true)
	vector.StrokeCircle(screen, float32(t.X), float32(t.Y), core.TowerRadius, 2, colorOutline, true)

	// Level digit centered on the tower
	lvl := fmt.Sprintf("%d", t.Level)
	text.Draw(screen, lvl, basicfont.Face7x13, int(t.X)-3, int(t.Y)+5, color.White)
}
