package core

// Snapshot is a read-only view of the session for renderers, UIs and the
// spectator feed. It carries plain values only, no live references; it
// stays valid after any number of further ticks.
type Snapshot struct {
	Tick        uint64           `json:"tick"`
	State       string           `json:"state"`
	Money       int              `json:"money"`
	Lives       int              `json:"lives"`
	Wave        int              `json:"wave"`
	WaveActive  bool             `json:"waveActive"`
	Pending     int              `json:"pending"` // enemies still queued to spawn
	Enemies     []EnemySnap      `json:"enemies"`
	Towers      []TowerSnap      `json:"towers"`
	Projectiles []ProjectileSnap `json:"projectiles"`
}

type EnemySnap struct {
	ID     EntityID  `json:"id"`
	X      float64   `json:"x"`
	Y      float64   `json:"y"`
	Kind   EnemyKind `json:"kind"`
	Health float64   `json:"health"` // ratio in [0,1]
	Radius float64   `json:"radius"`
}

type TowerSnap struct {
	ID    EntityID  `json:"id"`
	X     float64   `json:"x"`
	Y     float64   `json:"y"`
	Kind  TowerKind `json:"kind"`
	Level int       `json:"level"`
	Range float64   `json:"range"`
}

type ProjectileSnap struct {
	ID EntityID `json:"id"`
	X  float64  `json:"x"`
	Y  float64  `json:"y"`
}

// Snapshot captures the current state. Entities appear in spawn order.
func (s *Session) Snapshot() *Snapshot {
	w := s.World
	snap := &Snapshot{
		Tick:       w.TickCount,
		State:      s.State.String(),
		Money:      s.Money,
		Lives:      s.Lives,
		Wave:       s.WaveNumber,
		WaveActive: s.WaveActive,
	}
	if s.Wave != nil {
		snap.Pending = s.Wave.Remaining()
	}
	for _, id := range w.Query(CompEnemy, CompPosition, CompHealth) {
		pos := w.Get(id, CompPosition).(*Position)
		e := w.Get(id, CompEnemy).(*Enemy)
		h := w.Get(id, CompHealth).(*Health)
		snap.Enemies = append(snap.Enemies, EnemySnap{
			ID: id, X: pos.X, Y: pos.Y,
			Kind: e.Kind, Health: h.Ratio(), Radius: e.Radius,
		})
	}
	for _, id := range w.Query(CompTower, CompWeapon, CompPosition) {
		pos := w.Get(id, CompPosition).(*Position)
		t := w.Get(id, CompTower).(*Tower)
		wep := w.Get(id, CompWeapon).(*Weapon)
		snap.Towers = append(snap.Towers, TowerSnap{
			ID: id, X: pos.X, Y: pos.Y,
			Kind: t.Kind, Level: t.Level, Range: wep.Range,
		})
	}
	for _, id := range w.Query(CompProjectile, CompPosition) {
		pos := w.Get(id, CompPosition).(*Position)
		snap.Projectiles = append(snap.Projectiles, ProjectileSnap{ID: id, X: pos.X, Y: pos.Y})
	}
	return snap
}
