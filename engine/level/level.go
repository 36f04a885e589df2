package level

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Waypoint is a point on the enemy path in screen pixels.
type Waypoint struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Level describes a playable board: the screen dimensions, the HUD strip
// reserved at the bottom, the enemy path and the tower placement
// clearances. Enemies enter at Path[0] and leak at the last waypoint.
type Level struct {
	Name          string     `yaml:"name"`
	ScreenW       int        `yaml:"screenWidth"`
	ScreenH       int        `yaml:"screenHeight"`
	HUDHeight     int        `yaml:"hudHeight"`
	PathClearance float64    `yaml:"pathClearance"`
	TowerSpacing  float64    `yaml:"towerSpacing"`
	Path          []Waypoint `yaml:"path"`
}

// Default returns the built-in board: a 1000x700 screen with a 100px HUD
// strip and the classic ten-waypoint path.
func Default() *Level {
	return &Level{
		Name:          "classic",
		ScreenW:       1000,
		ScreenH:       700,
		HUDHeight:     100,
		PathClearance: 40,
		TowerSpacing:  50,
		Path: []Waypoint{
			{X: 0, Y: 200}, {X: 200, Y: 200}, {X: 200, Y: 400}, {X: 400, Y: 400},
			{X: 400, Y: 200}, {X: 600, Y: 200}, {X: 600, Y: 500}, {X: 800, Y: 500},
			{X: 800, Y: 300}, {X: 1000, Y: 300},
		},
	}
}

// Load reads a level from a YAML file.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var l Level
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("level %q: %w", l.Name, err)
	}
	return &l, nil
}

// Save writes the level as YAML.
func (l *Level) Save(path string) error {
	data, err := yaml.Marshal(l)
	if err != nil {
		return fmt.Errorf("encode level: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write level: %w", err)
	}
	return nil
}

// Validate checks that the board is playable.
func (l *Level) Validate() error {
	if l.ScreenW <= 0 || l.ScreenH <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", l.ScreenW, l.ScreenH)
	}
	if l.HUDHeight < 0 || l.HUDHeight >= l.ScreenH {
		return fmt.Errorf("invalid HUD height %d", l.HUDHeight)
	}
	if len(l.Path) < 2 {
		return fmt.Errorf("path needs at least 2 waypoints, got %d", len(l.Path))
	}
	if l.PathClearance < 0 || l.TowerSpacing < 0 {
		return fmt.Errorf("clearances must be non-negative")
	}
	return nil
}

// PlayfieldH returns the height of the playable area above the HUD strip.
func (l *Level) PlayfieldH() int {
	return l.ScreenH - l.HUDHeight
}

// InPlayfield reports whether the point lies in the playable area,
// excluding the HUD strip.
func (l *Level) InPlayfield(x, y float64) bool {
	return x >= 0 && x <= float64(l.ScreenW) && y >= 0 && y <= float64(l.PlayfieldH())
}

// ClearOfPath reports whether the point keeps the placement clearance
// from every path waypoint.
func (l *Level) ClearOfPath(x, y float64) bool {
	for _, wp := range l.Path {
		dx := x - wp.X
		dy := y - wp.Y
		if math.Sqrt(dx*dx+dy*dy) < l.PathClearance {
			return false
		}
	}
	return true
}
