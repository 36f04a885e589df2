package core

import (
	"math/rand"
	"time"

	"github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/level"
)

// GameState represents the overall game state
type GameState uint8

const (
	StateMenu GameState = iota
	StatePlaying
	StatePaused
	StateGameOver
	StateVictory
)

func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameover"
	case StateVictory:
		return "victory"
	}
	return "unknown"
}

// Session owns one complete game: the entity world, the board, the
// economy, the wave cycle and the state machine. Everything is
// single-threaded; front ends drive Tick from their own loop and issue
// commands between ticks. Commands with unmet preconditions are silent
// no-ops. Two sessions in one process never share state.
type Session struct {
	World  *World
	Events *EventBus
	Level  *level.Level
	Rand   *rand.Rand
	Seed   int64

	State      GameState
	Money      int
	Lives      int
	WaveNumber int
	Wave       *Wave
	WaveActive bool
}

// NewSession creates a session on lvl in the menu state. Seed 0 derives
// a seed from the clock; any other value gives a reproducible run.
// Callers still need to install the simulation systems on the world.
func NewSession(lvl *level.Level, seed int64) *Session {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Session{
		World:  NewWorld(),
		Events: NewEventBus(),
		Level:  lvl,
		Rand:   rand.New(rand.NewSource(seed)),
		Seed:   seed,
		State:  StateMenu,
		Money:  StartingMoney,
		Lives:  StartingLives,
	}
}

// reset rewinds the session to the initial state. The RNG restarts from
// the seed so a reset run replays identically.
func (s *Session) reset() {
	s.World.Clear()
	s.Rand = rand.New(rand.NewSource(s.Seed))
	s.Money = StartingMoney
	s.Lives = StartingLives
	s.WaveNumber = 0
	s.Wave = nil
	s.WaveActive = false
}

// StartGame leaves the menu and begins a fresh run.
func (s *Session) StartGame() {
	if s.State != StateMenu {
		return
	}
	s.ResetToPlaying()
}

// ResetToPlaying reinitializes the session and begins a fresh run. The
// restart buttons on the end screens land here. The reset event carries
// the pre-reset tick so recorded command streams stay in issue order.
func (s *Session) ResetToPlaying() {
	tick := s.World.TickCount
	s.reset()
	s.State = StatePlaying
	s.Events.Emit(Event{Type: EvtGameReset, Tick: tick})
}

// ReturnToMenu reinitializes the session and returns to the menu.
func (s *Session) ReturnToMenu() {
	s.reset()
	s.State = StateMenu
}

// Pause suspends the simulation; Tick no-ops until Resume.
func (s *Session) Pause() {
	if s.State == StatePlaying {
		s.State = StatePaused
	}
}

// Resume continues a paused game.
func (s *Session) Resume() {
	if s.State == StatePaused {
		s.State = StatePlaying
	}
}

// TogglePause flips between playing and paused.
func (s *Session) TogglePause() {
	switch s.State {
	case StatePlaying:
		s.State = StatePaused
	case StatePaused:
		s.State = StatePlaying
	}
}

// Tick advances the simulation one step: wave spawning, enemy movement,
// tower fire, projectile resolution, in that order. One call is one
// tick; front ends own the pacing. Outside the playing state only
// queued events are dispatched.
func (s *Session) Tick() {
	if s.State == StatePlaying {
		s.World.Tick()
	}
	s.Events.Dispatch()
}

// CanPlaceTower reports whether the spot passes the geometry rules:
// inside the playfield, clear of the path and spaced from other towers.
// Funds are checked by PlaceTowerAt, matching the placement preview
// which shows validity regardless of money.
func (s *Session) CanPlaceTower(x, y float64) bool {
	if !s.Level.InPlayfield(x, y) {
		return false
	}
	if !s.Level.ClearOfPath(x, y) {
		return false
	}
	probe := Position{X: x, Y: y}
	for _, id := range s.World.Query(CompTower, CompPosition) {
		pos := s.World.Get(id, CompPosition).(*Position)
		if pos.DistanceTo(&probe) < s.Level.TowerSpacing {
			return false
		}
	}
	return true
}

// PlaceTowerAt buys a level-1 basic tower at the spot. Returns false
// without side effects when the session is not playing, funds are short
// or the spot is blocked.
func (s *Session) PlaceTowerAt(x, y float64) bool {
	if s.State != StatePlaying {
		return false
	}
	if s.Money < TowerCost || !s.CanPlaceTower(x, y) {
		return false
	}
	s.Money -= TowerCost
	def := TowerDefs[TowerBasic]
	id := s.World.Spawn()
	s.World.Attach(id, &Position{X: x, Y: y})
	s.World.Attach(id, &Tower{Kind: TowerBasic, Level: 1})
	s.World.Attach(id, &Weapon{
		Damage:   def.BaseDamage,
		Range:    def.BaseRange,
		FireRate: def.FireRate,
	})
	s.emit(EvtTowerPlaced, TowerPlacedEvent{ID: id, X: x, Y: y})
	return true
}

// UpgradeTower raises the tower one level and refreshes its weapon
// stats. Returns false when the id is stale, the tower is maxed, funds
// are short or the session is not playing.
func (s *Session) UpgradeTower(id EntityID) bool {
	if s.State != StatePlaying {
		return false
	}
	tc := s.World.Get(id, CompTower)
	wc := s.World.Get(id, CompWeapon)
	if tc == nil || wc == nil {
		return false
	}
	tw := tc.(*Tower)
	if tw.Level >= MaxTowerLevel || s.Money < UpgradeCost {
		return false
	}
	s.Money -= UpgradeCost
	tw.Level++
	wep := wc.(*Weapon)
	wep.Range = TowerRange(tw.Kind, tw.Level)
	wep.Damage = TowerDamage(tw.Kind, tw.Level)
	s.emit(EvtTowerUpgraded, TowerUpgradedEvent{ID: id, Level: tw.Level})
	return true
}

// StartNextWave begins the next wave. Returns false when not playing or
// while a wave is still running. Starting any wave after the first
// grants the wave bonus.
func (s *Session) StartNextWave() bool {
	if s.State != StatePlaying || s.WaveActive {
		return false
	}
	s.WaveNumber++
	s.Wave = NewWave(s.WaveNumber, s.Rand)
	s.WaveActive = true
	if s.WaveNumber > 1 {
		s.Money += WaveBonus
	}
	s.emit(EvtWaveStarted, WaveStartedEvent{Number: s.WaveNumber, Size: s.Wave.Remaining()})
	return true
}

// SelectTowerAt returns the tower whose center is within the selection
// radius of the spot, or 0. Pure query, no state change.
func (s *Session) SelectTowerAt(x, y float64) EntityID {
	probe := Position{X: x, Y: y}
	for _, id := range s.World.Query(CompTower, CompPosition) {
		pos := s.World.Get(id, CompPosition).(*Position)
		if pos.DistanceTo(&probe) <= TowerRadius {
			return id
		}
	}
	return 0
}

// emit queues an event stamped with the current tick.
func (s *Session) emit(t EventType, payload interface{}) {
	s.Events.Emit(Event{Type: t, Tick: s.World.TickCount, Payload: payload})
}
