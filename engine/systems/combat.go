package systems

import (
	"math"

	"github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/core"
)

// CombatSystem retargets every tower against the live enemy set and
// fires when the cooldown allows. Targets are re-picked from scratch
// each tick: nearest enemy in range, ties to the earliest spawned.
type CombatSystem struct {
	S *core.Session
}

func (cs *CombatSystem) Priority() int { return 30 }

func (cs *CombatSystem) Update(w *core.World) {
	enemies := w.Query(core.CompEnemy, core.CompPosition)

	for _, tid := range w.Query(core.CompTower, core.CompWeapon, core.CompPosition) {
		wep := w.Get(tid, core.CompWeapon).(*core.Weapon)
		tpos := w.Get(tid, core.CompPosition).(*core.Position)

		wep.TargetID = 0
		bestDist := math.MaxFloat64
		for _, eid := range enemies {
			epos := w.Get(eid, core.CompPosition).(*core.Position)
			d := tpos.DistanceTo(epos)
			if d <= wep.Range && d < bestDist {
				bestDist = d
				wep.TargetID = eid
			}
		}

		if wep.TargetID == 0 || w.TickCount-wep.LastShot < wep.FireRate {
			continue
		}

		// Fire
		wep.LastShot = w.TickCount
		pid := w.Spawn()
		w.Attach(pid, &core.Position{X: tpos.X, Y: tpos.Y})
		w.Attach(pid, &core.Projectile{
			SourceID: tid,
			TargetID: wep.TargetID,
			Speed:    core.ProjectileSpeed,
			Damage:   wep.Damage,
			Radius:   core.ProjectileRadius,
		})

		cs.S.Events.Emit(core.Event{
			Type:    core.EvtTowerFired,
			Tick:    w.TickCount,
			Payload: core.TowerFiredEvent{TowerID: tid, TargetID: wep.TargetID},
		})
	}
}
