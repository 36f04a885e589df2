package systems

import "github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/core"

// ProjectileSystem moves projectiles toward their targets and resolves
// arrivals. A projectile whose target already left the board is
// discarded without effect. Kills credit the enemy's reward and remove
// the enemy immediately, so a second projectile chasing the same enemy
// this tick sees it gone and never double-pays.
type ProjectileSystem struct {
	S *core.Session
}

func (ps *ProjectileSystem) Priority() int { return 40 }

func (ps *ProjectileSystem) Update(w *core.World) {
	s := ps.S

	for _, pid := range w.Query(core.CompProjectile, core.CompPosition) {
		proj := w.Get(pid, core.CompProjectile).(*core.Projectile)

		tgt := w.Get(proj.TargetID, core.CompEnemy)
		if tgt == nil {
			w.Remove(pid)
			continue
		}

		pos := w.Get(pid, core.CompPosition).(*core.Position)
		tpos := w.Get(proj.TargetID, core.CompPosition).(*core.Position)

		dist := pos.DistanceTo(tpos)
		if dist > proj.Speed {
			pos.X += (tpos.X - pos.X) / dist * proj.Speed
			pos.Y += (tpos.Y - pos.Y) / dist * proj.Speed
			continue
		}

		// Arrival
		h := w.Get(proj.TargetID, core.CompHealth).(*core.Health)
		h.Current -= proj.Damage
		s.Events.Emit(core.Event{
			Type:    core.EvtProjectileHit,
			Tick:    w.TickCount,
			Payload: core.ProjectileHitEvent{TargetID: proj.TargetID, Damage: proj.Damage},
		})

		if h.Current <= 0 {
			enemy := tgt.(*core.Enemy)
			s.Money += enemy.Reward
			s.Events.Emit(core.Event{
				Type:    core.EvtEnemyKilled,
				Tick:    w.TickCount,
				Payload: core.EnemyKilledEvent{ID: proj.TargetID, Kind: enemy.Kind, Reward: enemy.Reward},
			})
			w.Remove(proj.TargetID)
		}
		w.Remove(pid)
	}
}
