package systems

import (
	"math"

	"github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/core"
	"github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/level"
)

// MovementSystem advances enemies along the shared path. An enemy that
// runs out of path is removed on the spot, costs one life, and ends the
// game when the last life goes. Removals happen before the combat pass,
// so towers never target an enemy that leaked this tick.
type MovementSystem struct {
	S *core.Session
}

func (ms *MovementSystem) Priority() int { return 20 }

func (ms *MovementSystem) Update(w *core.World) {
	s := ms.S
	path := s.Level.Path

	for _, id := range w.Query(core.CompEnemy, core.CompPosition, core.CompMovable) {
		pos := w.Get(id, core.CompPosition).(*core.Position)
		mov := w.Get(id, core.CompMovable).(*core.Movable)

		if !advance(pos, mov, path) {
			continue
		}

		w.Remove(id)
		if s.Lives > 0 {
			s.Lives--
			s.Events.Emit(core.Event{
				Type:    core.EvtEnemyLeaked,
				Tick:    w.TickCount,
				Payload: core.EnemyLeakedEvent{ID: id, LivesLeft: s.Lives},
			})
			if s.Lives == 0 {
				s.State = core.StateGameOver
				s.Events.Emit(core.Event{Type: core.EvtGameOver, Tick: w.TickCount})
			}
		}
	}
}

// advance moves one enemy one tick along the path and reports whether it
// reached the end. Within a step of the next waypoint the enemy snaps to
// it; reaching the final waypoint counts as leaking without any further
// movement that tick.
func advance(pos *core.Position, mov *core.Movable, path []level.Waypoint) bool {
	if mov.PathIdx >= len(path)-1 {
		return true
	}

	target := path[mov.PathIdx+1]
	dx := target.X - pos.X
	dy := target.Y - pos.Y
	dist := math.Sqrt(dx*dx + dy*dy)

	if dist <= mov.Speed {
		mov.PathIdx++
		if mov.PathIdx >= len(path)-1 {
			return true
		}
		pos.X = path[mov.PathIdx].X
		pos.Y = path[mov.PathIdx].Y
		return false
	}

	pos.X += dx / dist * mov.Speed
	pos.Y += dy / dist * mov.Speed
	return false
}
