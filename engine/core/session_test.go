package core

import (
	"testing"

	"github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/level"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	lvl := level.Default()
	if err := lvl.Validate(); err != nil {
		t.Fatalf("Default level failed validation: %v", err)
	}
	return NewSession(lvl, 7)
}

// TestNewSessionDefaults verifies a fresh session starts in the menu with
// the starting economy.
func TestNewSessionDefaults(t *testing.T) {
	s := newTestSession(t)

	if s.State != StateMenu {
		t.Errorf("Expected menu state, got %s", s.State)
	}
	if s.Money != StartingMoney {
		t.Errorf("Expected %d money, got %d", StartingMoney, s.Money)
	}
	if s.Lives != StartingLives {
		t.Errorf("Expected %d lives, got %d", StartingLives, s.Lives)
	}
	if s.WaveNumber != 0 || s.WaveActive {
		t.Errorf("Expected no wave yet, got number %d active %v", s.WaveNumber, s.WaveActive)
	}
	if s.Seed != 7 {
		t.Errorf("Expected seed 7, got %d", s.Seed)
	}
}

// TestSeedZeroDerivesFromClock verifies seed 0 is replaced, never stored
func TestSeedZeroDerivesFromClock(t *testing.T) {
	s := NewSession(level.Default(), 0)
	if s.Seed == 0 {
		t.Error("Expected a derived nonzero seed")
	}
}

// TestStartGameOnlyFromMenu verifies StartGame is a no-op mid-run
func TestStartGameOnlyFromMenu(t *testing.T) {
	s := newTestSession(t)

	s.StartGame()
	if s.State != StatePlaying {
		t.Fatalf("Expected playing after StartGame, got %s", s.State)
	}

	// A second StartGame must not reset the run
	s.Money = 123
	s.StartGame()
	if s.Money != 123 {
		t.Errorf("Expected StartGame to no-op while playing, money reset to %d", s.Money)
	}
}

// TestPauseResumeToggle verifies the pause transitions and their guards
func TestPauseResumeToggle(t *testing.T) {
	s := newTestSession(t)

	// Pause and resume do nothing in the menu
	s.Pause()
	if s.State != StateMenu {
		t.Errorf("Expected pause to no-op in menu, got %s", s.State)
	}
	s.Resume()
	if s.State != StateMenu {
		t.Errorf("Expected resume to no-op in menu, got %s", s.State)
	}

	s.StartGame()
	s.Pause()
	if s.State != StatePaused {
		t.Errorf("Expected paused, got %s", s.State)
	}
	s.Resume()
	if s.State != StatePlaying {
		t.Errorf("Expected playing after resume, got %s", s.State)
	}

	s.TogglePause()
	if s.State != StatePaused {
		t.Errorf("Expected toggle to pause, got %s", s.State)
	}
	s.TogglePause()
	if s.State != StatePlaying {
		t.Errorf("Expected toggle to resume, got %s", s.State)
	}
}

// TestTickAdvancesOnlyWhilePlaying verifies the simulation freezes in the
// menu and while paused, but queued events still go out.
func TestTickAdvancesOnlyWhilePlaying(t *testing.T) {
	s := newTestSession(t)

	dispatched := 0
	s.Events.On(EvtGameReset, func(e Event) { dispatched++ })

	s.Tick()
	if s.World.TickCount != 0 {
		t.Errorf("Expected tick count 0 in menu, got %d", s.World.TickCount)
	}

	s.StartGame()
	s.Tick()
	if s.World.TickCount != 1 {
		t.Errorf("Expected tick count 1, got %d", s.World.TickCount)
	}
	if dispatched != 1 {
		t.Errorf("Expected the reset event dispatched once, got %d", dispatched)
	}

	s.Pause()
	s.Tick()
	if s.World.TickCount != 1 {
		t.Errorf("Expected tick count frozen while paused, got %d", s.World.TickCount)
	}
}

// TestPlaceTowerAt verifies the buy path: state gate, funds, geometry and
// the spawned components.
func TestPlaceTowerAt(t *testing.T) {
	s := newTestSession(t)

	// 1. Not playing yet
	if s.PlaceTowerAt(100, 100) {
		t.Error("Expected placement to fail in the menu")
	}

	s.StartGame()

	// 2. Valid spot
	placed := 0
	s.Events.On(EvtTowerPlaced, func(e Event) {
		p := e.Payload.(TowerPlacedEvent)
		if p.X != 100 || p.Y != 100 {
			t.Errorf("Expected placement event at (100, 100), got (%v, %v)", p.X, p.Y)
		}
		placed++
	})
	if !s.PlaceTowerAt(100, 100) {
		t.Fatal("Expected placement at (100, 100) to succeed")
	}
	if s.Money != StartingMoney-TowerCost {
		t.Errorf("Expected money %d after buying, got %d", StartingMoney-TowerCost, s.Money)
	}
	s.Tick()
	if placed != 1 {
		t.Errorf("Expected one placement event, got %d", placed)
	}

	towers := s.World.Query(CompTower, CompWeapon, CompPosition)
	if len(towers) != 1 {
		t.Fatalf("Expected 1 tower entity, got %d", len(towers))
	}
	tw := s.World.Get(towers[0], CompTower).(*Tower)
	wep := s.World.Get(towers[0], CompWeapon).(*Weapon)
	if tw.Kind != TowerBasic || tw.Level != 1 {
		t.Errorf("Expected level 1 basic tower, got %s level %d", tw.Kind, tw.Level)
	}
	if wep.Range != 120 || wep.Damage != 30 || wep.FireRate != 30 {
		t.Errorf("Expected weapon 120/30/30, got %v/%d/%d", wep.Range, wep.Damage, wep.FireRate)
	}

	// 3. Too close to a path waypoint
	if s.PlaceTowerAt(200, 210) {
		t.Error("Expected placement 10px from a waypoint to fail")
	}

	// 4. Inside the HUD strip
	if s.PlaceTowerAt(500, 650) {
		t.Error("Expected placement in the HUD strip to fail")
	}

	// 5. Tower spacing: under 50px is blocked, exactly 50px is allowed
	if s.PlaceTowerAt(100, 149) {
		t.Error("Expected placement 49px from a tower to fail")
	}
	if !s.PlaceTowerAt(100, 150) {
		t.Error("Expected placement exactly 50px from a tower to succeed")
	}

	// 6. Funds gate
	s.Money = TowerCost - 1
	if s.PlaceTowerAt(500, 100) {
		t.Error("Expected placement with short funds to fail")
	}
}

// TestCanPlaceTowerIgnoresFunds verifies the geometry check alone does
// not look at money, matching the placement preview.
func TestCanPlaceTowerIgnoresFunds(t *testing.T) {
	s := newTestSession(t)
	s.StartGame()
	s.Money = 0

	if !s.CanPlaceTower(100, 100) {
		t.Error("Expected a broke session to still preview a valid spot")
	}
	if s.PlaceTowerAt(100, 100) {
		t.Error("Expected the actual buy to fail without funds")
	}
}

// TestUpgradeTower verifies cost, stat refresh, the level cap and the
// stale-id guard.
func TestUpgradeTower(t *testing.T) {
	s := newTestSession(t)
	s.StartGame()
	s.Money = 1000

	if !s.PlaceTowerAt(100, 100) {
		t.Fatal("Placement failed during setup")
	}
	id := s.SelectTowerAt(100, 100)
	if id == 0 {
		t.Fatal("Expected to select the placed tower")
	}

	if !s.UpgradeTower(id) {
		t.Fatal("Expected first upgrade to succeed")
	}
	if s.Money != 1000-TowerCost-UpgradeCost {
		t.Errorf("Expected money %d after upgrade, got %d", 1000-TowerCost-UpgradeCost, s.Money)
	}
	tw := s.World.Get(id, CompTower).(*Tower)
	wep := s.World.Get(id, CompWeapon).(*Weapon)
	if tw.Level != 2 {
		t.Errorf("Expected level 2, got %d", tw.Level)
	}
	if wep.Range != 140 || wep.Damage != 45 {
		t.Errorf("Expected weapon 140/45 at level 2, got %v/%d", wep.Range, wep.Damage)
	}

	if !s.UpgradeTower(id) {
		t.Fatal("Expected second upgrade to succeed")
	}
	if tw.Level != MaxTowerLevel {
		t.Fatalf("Expected level %d, got %d", MaxTowerLevel, tw.Level)
	}

	// Maxed tower refuses further upgrades and charges nothing
	before := s.Money
	if s.UpgradeTower(id) {
		t.Error("Expected upgrade past the level cap to fail")
	}
	if s.Money != before {
		t.Errorf("Expected no charge on refused upgrade, money went %d to %d", before, s.Money)
	}

	// Stale id
	if s.UpgradeTower(9999) {
		t.Error("Expected upgrade of an unknown entity to fail")
	}

	// Funds gate
	s2 := newTestSession(t)
	s2.StartGame()
	s2.PlaceTowerAt(100, 100)
	s2.Money = UpgradeCost - 1
	if s2.UpgradeTower(s2.SelectTowerAt(100, 100)) {
		t.Error("Expected upgrade with short funds to fail")
	}
}

// TestStartNextWave verifies the wave cycle guard and the bonus rule:
// no bonus on wave 1, a bonus on every later wave start.
func TestStartNextWave(t *testing.T) {
	s := newTestSession(t)

	if s.StartNextWave() {
		t.Error("Expected wave start to fail in the menu")
	}

	s.StartGame()
	if !s.StartNextWave() {
		t.Fatal("Expected wave 1 to start")
	}
	if s.WaveNumber != 1 || !s.WaveActive {
		t.Errorf("Expected wave 1 active, got number %d active %v", s.WaveNumber, s.WaveActive)
	}
	if s.Money != StartingMoney {
		t.Errorf("Expected no bonus on wave 1, money %d", s.Money)
	}

	if s.StartNextWave() {
		t.Error("Expected wave start to fail while a wave is active")
	}

	// Simulate the wave ending, then start the next one
	s.WaveActive = false
	if !s.StartNextWave() {
		t.Fatal("Expected wave 2 to start")
	}
	if s.Money != StartingMoney+WaveBonus {
		t.Errorf("Expected +%d bonus on wave 2, money %d", WaveBonus, s.Money)
	}
}

// TestSelectTowerAt verifies the selection hitbox boundary
func TestSelectTowerAt(t *testing.T) {
	s := newTestSession(t)
	s.StartGame()
	if !s.PlaceTowerAt(300, 100) {
		t.Fatal("Placement failed during setup")
	}

	if got := s.SelectTowerAt(300+TowerRadius, 100); got == 0 {
		t.Error("Expected a click exactly on the radius to select")
	}
	if got := s.SelectTowerAt(300+TowerRadius+1, 100); got != 0 {
		t.Errorf("Expected a click outside the radius to select nothing, got %d", got)
	}
	if got := s.SelectTowerAt(50, 50); got != 0 {
		t.Errorf("Expected empty ground to select nothing, got %d", got)
	}
}

// TestResetRewindsRNG verifies a reset run replays the same shuffled
// spawn queue as the first run.
func TestResetRewindsRNG(t *testing.T) {
	s := NewSession(level.Default(), 42)
	s.StartGame()
	s.StartNextWave()

	drain := func() []EnemyKind {
		var kinds []EnemyKind
		for s.Wave.Remaining() > 0 {
			if k, ok := s.Wave.SpawnStep(); ok {
				kinds = append(kinds, k)
			}
		}
		return kinds
	}
	first := drain()

	s.ResetToPlaying()
	if s.WaveNumber != 0 || s.Wave != nil {
		t.Fatalf("Expected wave state cleared on reset, got number %d", s.WaveNumber)
	}
	s.StartNextWave()
	second := drain()

	if len(first) != len(second) {
		t.Fatalf("Expected equal queue lengths, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Expected identical spawn order after reset, diverged at %d", i)
			break
		}
	}
}

// TestResetEventCarriesPreResetTick verifies the reset event is stamped
// with the tick count before the world is cleared, so recorded command
// streams keep their issue order.
func TestResetEventCarriesPreResetTick(t *testing.T) {
	s := newTestSession(t)
	s.StartGame()
	for i := 0; i < 5; i++ {
		s.Tick()
	}

	var resetTick uint64
	resets := 0
	s.Events.On(EvtGameReset, func(e Event) {
		resetTick = e.Tick
		resets++
	})

	s.ResetToPlaying()
	s.Events.Dispatch()

	if resets != 1 {
		t.Fatalf("Expected one reset event, got %d", resets)
	}
	if resetTick != 5 {
		t.Errorf("Expected reset stamped with pre-reset tick 5, got %d", resetTick)
	}
	if s.World.TickCount != 0 {
		t.Errorf("Expected world tick rewound to 0, got %d", s.World.TickCount)
	}
}

// TestReturnToMenu verifies the session lands back in the menu with a
// fresh economy.
func TestReturnToMenu(t *testing.T) {
	s := newTestSession(t)
	s.StartGame()
	s.PlaceTowerAt(100, 100)
	s.StartNextWave()

	s.ReturnToMenu()

	if s.State != StateMenu {
		t.Errorf("Expected menu state, got %s", s.State)
	}
	if s.Money != StartingMoney || s.Lives != StartingLives {
		t.Errorf("Expected fresh economy, got money %d lives %d", s.Money, s.Lives)
	}
	if s.World.EntityCount() != 0 {
		t.Errorf("Expected an empty world, got %d entities", s.World.EntityCount())
	}
}

// TestSnapshotReflectsSession verifies the render snapshot carries the
// session scalars and per-entity views.
func TestSnapshotReflectsSession(t *testing.T) {
	s := newTestSession(t)
	s.StartGame()
	s.PlaceTowerAt(100, 100)
	s.StartNextWave()

	snap := s.Snapshot()
	if snap.State != "playing" {
		t.Errorf("Expected state playing, got %q", snap.State)
	}
	if snap.Money != s.Money || snap.Lives != s.Lives {
		t.Errorf("Expected money %d lives %d, got %d and %d", s.Money, s.Lives, snap.Money, snap.Lives)
	}
	if snap.Wave != 1 || !snap.WaveActive {
		t.Errorf("Expected wave 1 active, got %d active %v", snap.Wave, snap.WaveActive)
	}
	if snap.Pending != 7 {
		t.Errorf("Expected 7 pending spawns, got %d", snap.Pending)
	}
	if len(snap.Towers) != 1 {
		t.Fatalf("Expected 1 tower in snapshot, got %d", len(snap.Towers))
	}
	tw := snap.Towers[0]
	if tw.X != 100 || tw.Y != 100 || tw.Level != 1 || tw.Range != 120 {
		t.Errorf("Expected tower view (100, 100) level 1 range 120, got %+v", tw)
	}
	if len(snap.Enemies) != 0 || len(snap.Projectiles) != 0 {
		t.Errorf("Expected no enemies or projectiles yet, got %d and %d",
			len(snap.Enemies), len(snap.Projectiles))
	}
}
