package ai

import (
	"math"
	"math/rand"

	"github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/core"
	"github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/level"
)

// Difficulty controls how often the autoplayer acts
type Difficulty int

const (
	DiffEasy Difficulty = iota
	DiffMedium
	DiffHard
)

// Autoplayer drives a session without a human: it starts waves, places
// towers at legal spots along the path and upgrades existing towers when
// flush. The headless runner, the spectator server and soak tests use it.
// It has its own RNG so the session's wave shuffles stay untouched by
// policy choices.
type Autoplayer struct {
	Difficulty Difficulty
	Rand       *rand.Rand

	thinkInterval uint64
	spots         []level.Waypoint
	spotIdx       int
}

// New builds an autoplayer for the board. Candidate tower spots are
// sampled beside every path segment, filtered to legal ground, and
// shuffled once with the given seed.
func New(lvl *level.Level, seed int64, diff Difficulty) *Autoplayer {
	interval := uint64(60)
	switch diff {
	case DiffEasy:
		interval = 120
	case DiffHard:
		interval = 30
	}
	ap := &Autoplayer{
		Difficulty:    diff,
		Rand:          rand.New(rand.NewSource(seed)),
		thinkInterval: interval,
		spots:         candidateSpots(lvl),
	}
	ap.Rand.Shuffle(len(ap.spots), func(i, j int) {
		ap.spots[i], ap.spots[j] = ap.spots[j], ap.spots[i]
	})
	return ap
}

// Think issues at most one command. Call it between ticks; it only acts
// every think interval, so lower difficulties build up slower.
func (ap *Autoplayer) Think(s *core.Session) {
	if s.State != core.StatePlaying {
		return
	}
	if s.World.TickCount%ap.thinkInterval != 0 {
		return
	}

	if !s.WaveActive {
		s.StartNextWave()
		return
	}
	if s.Money >= core.TowerCost && ap.place(s) {
		return
	}
	if s.Money >= core.UpgradeCost {
		ap.upgrade(s)
	}
}

// place tries the candidate spots in order until one takes. Spots taken
// or crowded out by earlier towers are skipped for good.
func (ap *Autoplayer) place(s *core.Session) bool {
	for ap.spotIdx < len(ap.spots) {
		spot := ap.spots[ap.spotIdx]
		if s.PlaceTowerAt(spot.X, spot.Y) {
			ap.spotIdx++
			return true
		}
		if !s.CanPlaceTower(spot.X, spot.Y) {
			// Permanently blocked, move on
			ap.spotIdx++
			continue
		}
		// Legal spot but funds were short
		return false
	}
	return false
}

// upgrade raises the weakest tower, earliest placed first.
func (ap *Autoplayer) upgrade(s *core.Session) {
	w := s.World
	var bestID core.EntityID
	bestLevel := core.MaxTowerLevel
	for _, id := range w.Query(core.CompTower) {
		tw := w.Get(id, core.CompTower).(*core.Tower)
		if tw.Level < bestLevel {
			bestLevel = tw.Level
			bestID = id
		}
	}
	if bestID != 0 {
		s.UpgradeTower(bestID)
	}
}

// candidateSpots samples points beside each path segment at a fixed
// offset just outside the path clearance.
func candidateSpots(lvl *level.Level) []level.Waypoint {
	offset := lvl.PathClearance + 15
	var spots []level.Waypoint

	for i := 0; i+1 < len(lvl.Path); i++ {
		a, b := lvl.Path[i], lvl.Path[i+1]
		dx, dy := b.X-a.X, b.Y-a.Y
		length := math.Sqrt(dx*dx + dy*dy)
		if length == 0 {
			continue
		}
		nx, ny := -dy/length, dx/length

		for _, t := range []float64{0.25, 0.5, 0.75} {
			mx := a.X + dx*t
			my := a.Y + dy*t
			for _, side := range []float64{1, -1} {
				x := mx + nx*offset*side
				y := my + ny*offset*side
				if lvl.InPlayfield(x, y) && lvl.ClearOfPath(x, y) {
					spots = append(spots, level.Waypoint{X: x, Y: y})
				}
			}
		}
	}
	return spots
}
