package core

import "math"

// ---- Position ----

// Position is a point on the board in screen pixels
type Position struct {
	X, Y float64
}

func (p *Position) Type() ComponentType { return CompPosition }

// DistanceTo returns euclidean distance to another position
func (p *Position) DistanceTo(other *Position) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// AngleTo returns the angle from this position to another
func (p *Position) AngleTo(other *Position) float64 {
	return math.Atan2(other.Y-p.Y, other.X-p.X)
}

// ---- Health ----

// Health represents hit points
type Health struct {
	Current int
	Max     int
}

func (h *Health) Type() ComponentType { return CompHealth }

func (h *Health) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

// ---- Movement ----

// Movable walks an entity along the session's shared path. PathIdx is
// the index of the last waypoint reached; the entity always heads for
// PathIdx+1.
type Movable struct {
	Speed   float64 // pixels per tick
	PathIdx int
}

func (m *Movable) Type() ComponentType { return CompMovable }

// ---- Enemy ----

type EnemyKind uint8

const (
	EnemyBasic EnemyKind = iota
	EnemyFast
	EnemyTank
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyBasic:
		return "basic"
	case EnemyFast:
		return "fast"
	case EnemyTank:
		return "tank"
	}
	return "unknown"
}

// Enemy marks an entity as a wave attacker
type Enemy struct {
	Kind   EnemyKind
	Reward int     // money credited on a kill
	Radius float64 // visual radius
}

func (e *Enemy) Type() ComponentType { return CompEnemy }

// ---- Tower ----

type TowerKind uint8

const (
	TowerBasic TowerKind = iota
	TowerSniper
	TowerSplash
)

func (k TowerKind) String() string {
	switch k {
	case TowerBasic:
		return "basic"
	case TowerSniper:
		return "sniper"
	case TowerSplash:
		return "splash"
	}
	return "unknown"
}

// Tower marks an entity as a placed defensive structure
type Tower struct {
	Kind  TowerKind
	Level int
}

func (t *Tower) Type() ComponentType { return CompTower }

// Weapon holds a tower's current firing stats. Range and Damage are
// refreshed from the stat table on upgrade; FireRate never changes.
type Weapon struct {
	Damage   int
	Range    float64
	FireRate uint64 // ticks between shots
	LastShot uint64 // tick of the most recent shot
	TargetID EntityID
}

func (w *Weapon) Type() ComponentType { return CompWeapon }

// ---- Projectile ----

// Projectile homes on a single target and carries the damage that was
// current on the firing tower at launch time.
type Projectile struct {
	SourceID EntityID
	TargetID EntityID
	Speed    float64 // pixels per tick
	Damage   int
	Radius   float64
}

func (p *Projectile) Type() ComponentType { return CompProjectile }
