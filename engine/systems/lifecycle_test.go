package systems

import (
	"testing"

	"github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/core"
	"github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/level"
)

// TestGameOverWhenWavesLeakOut runs the full pipeline with no towers.
// Every enemy leaks, so the run must end in game over with the life
// counter at exactly zero.
func TestGameOverWhenWavesLeakOut(t *testing.T) {
	s := core.NewSession(level.Default(), 3)
	Install(s)
	s.StartGame()

	leaks := 0
	s.Events.On(core.EvtEnemyLeaked, func(e core.Event) { leaks++ })

	for tick := 0; s.State == core.StatePlaying; tick++ {
		if tick > 20000 {
			t.Fatalf("Run never ended: wave %d, %d lives at tick %d",
				s.WaveNumber, s.Lives, s.World.TickCount)
		}
		if !s.WaveActive {
			s.StartNextWave()
		}
		s.Tick()
	}

	if s.State != core.StateGameOver {
		t.Fatalf("Expected game over, got %s", s.State)
	}
	if s.Lives != 0 {
		t.Errorf("Expected 0 lives, got %d", s.Lives)
	}
	if leaks != core.StartingLives {
		t.Errorf("Expected exactly %d counted leaks, got %d", core.StartingLives, leaks)
	}
	// Waves 1 and 2 leak 18 lives, so the run ends during wave 3
	if s.WaveNumber != 3 {
		t.Errorf("Expected the run to end on wave 3, got %d", s.WaveNumber)
	}
}

// TestTowerDefendsThePath drops a single basic tower beside the path and
// sends one basic enemy down it. The tower gets enough shots off inside
// its range windows to kill before the leak.
func TestTowerDefendsThePath(t *testing.T) {
	s := core.NewSession(level.Default(), 1)
	Install(s)
	s.StartGame()

	if !s.PlaceTowerAt(300, 300) {
		t.Fatal("Placement failed during setup")
	}
	enemy := SpawnEnemy(s, core.EnemyBasic)

	kills := 0
	s.Events.On(core.EvtEnemyKilled, func(e core.Event) { kills++ })
	leaks := 0
	s.Events.On(core.EvtEnemyLeaked, func(e core.Event) { leaks++ })

	for i := 0; i < 2000 && s.World.Alive(enemy); i++ {
		s.Tick()
	}
	if s.World.Alive(enemy) {
		t.Fatal("Enemy neither killed nor leaked after 2000 ticks")
	}
	// One more tick lets any projectile still in flight notice its
	// target is gone.
	s.Tick()

	if kills != 1 {
		t.Errorf("Expected one kill, got %d", kills)
	}
	if leaks != 0 {
		t.Errorf("Expected no leaks, got %d", leaks)
	}
	if s.Lives != core.StartingLives {
		t.Errorf("Expected lives untouched at %d, got %d", core.StartingLives, s.Lives)
	}
	wantMoney := core.StartingMoney - core.TowerCost + core.EnemyDefs[core.EnemyBasic].Reward
	if s.Money != wantMoney {
		t.Errorf("Expected money %d after buying and one bounty, got %d", wantMoney, s.Money)
	}
	if got := len(s.World.Query(core.CompProjectile)); got != 0 {
		t.Errorf("Expected no projectiles left, got %d", got)
	}
}

// TestLeakedEnemyNotTargeted verifies the pass order inside one tick:
// an enemy that leaks is removed by the movement pass before the combat
// pass runs, so no tower fires at it.
func TestLeakedEnemyNotTargeted(t *testing.T) {
	s := core.NewSession(level.Default(), 1)
	Install(s)
	s.StartGame()

	// A tower watching the path exit, quick enough to fire on tick one
	placeTestTower(s, 900, 300, 120, 30, 1)
	spawnWalker(s, 2, len(s.Level.Path)-1)

	fired := 0
	s.Events.On(core.EvtTowerFired, func(e core.Event) { fired++ })

	s.Tick()

	if s.Lives != core.StartingLives-1 {
		t.Errorf("Expected the leak to cost a life, got %d lives", s.Lives)
	}
	if fired != 0 {
		t.Errorf("Expected no shots at a leaked enemy, got %d", fired)
	}
	if got := len(s.World.Query(core.CompProjectile)); got != 0 {
		t.Errorf("Expected no projectiles, got %d", got)
	}
}
