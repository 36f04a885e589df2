package systems

import "github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/core"

// WaveSystem drives the active wave: it steps the spawn timer while
// enemies are queued, and once the wave is complete and the board has
// drained it either ends the game in victory or hands control back to
// the player. The wave number holds until the next StartNextWave.
type WaveSystem struct {
	S *core.Session
}

func (ws *WaveSystem) Priority() int { return 10 }

func (ws *WaveSystem) Update(w *core.World) {
	s := ws.S
	if s.Wave == nil {
		return
	}

	if !s.Wave.Complete {
		if kind, ok := s.Wave.SpawnStep(); ok {
			SpawnEnemy(s, kind)
		}
		return
	}

	if s.WaveActive && len(w.Query(core.CompEnemy)) == 0 {
		if s.Wave.Number >= core.VictoryWave {
			s.State = core.StateVictory
			s.Events.Emit(core.Event{Type: core.EvtVictory, Tick: w.TickCount})
			return
		}
		s.WaveActive = false
		s.Events.Emit(core.Event{Type: core.EvtWaveCleared, Tick: w.TickCount})
	}
}

// SpawnEnemy creates an enemy of the kind at the head of the path.
func SpawnEnemy(s *core.Session, kind core.EnemyKind) core.EntityID {
	def := core.EnemyDefs[kind]
	w := s.World
	start := s.Level.Path[0]

	id := w.Spawn()
	w.Attach(id, &core.Position{X: start.X, Y: start.Y})
	w.Attach(id, &core.Health{Current: def.MaxHealth, Max: def.MaxHealth})
	w.Attach(id, &core.Movable{Speed: def.Speed})
	w.Attach(id, &core.Enemy{Kind: kind, Reward: def.Reward, Radius: core.EnemyRadius})

	s.Events.Emit(core.Event{
		Type:    core.EvtEnemySpawned,
		Tick:    w.TickCount,
		Payload: core.EnemySpawnedEvent{ID: id, Kind: kind},
	})
	return id
}
