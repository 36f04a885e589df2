package core

// Gameplay constants shared by every front end. These numbers are the
// contract: changing them changes what a legal game is.
const (
	StartingMoney = 500
	StartingLives = 20
	TowerCost     = 100
	UpgradeCost   = 150
	WaveBonus     = 50 // granted when starting any wave after the first
	VictoryWave   = 10
	MaxTowerLevel = 3

	SpawnInterval = 60 // ticks between wave spawns

	RangePerLevel  = 20.0
	DamagePerLevel = 15

	ProjectileSpeed  = 8.0
	EnemyRadius      = 8.0
	TowerRadius      = 15.0 // also the selection hitbox
	ProjectileRadius = 4.0
)

// EnemyDef holds the base stats for one enemy kind.
type EnemyDef struct {
	MaxHealth int
	Speed     float64 // pixels per tick
	Reward    int
}

// EnemyDefs is the enemy stat table.
var EnemyDefs = map[EnemyKind]EnemyDef{
	EnemyBasic: {MaxHealth: 100, Speed: 2.0, Reward: 20},
	EnemyFast:  {MaxHealth: 60, Speed: 4.0, Reward: 15},
	EnemyTank:  {MaxHealth: 250, Speed: 1.0, Reward: 50},
}

// TowerDef holds the level-1 stats for one tower kind.
type TowerDef struct {
	BaseRange  float64
	BaseDamage int
	FireRate   uint64 // ticks between shots, fixed across levels
}

// TowerDefs is the tower stat table.
var TowerDefs = map[TowerKind]TowerDef{
	TowerBasic:  {BaseRange: 120, BaseDamage: 30, FireRate: 30},
	TowerSniper: {BaseRange: 150, BaseDamage: 50, FireRate: 90},
	TowerSplash: {BaseRange: 100, BaseDamage: 20, FireRate: 60},
}

// TowerRange returns the attack range of a tower kind at a level.
func TowerRange(k TowerKind, level int) float64 {
	return TowerDefs[k].BaseRange + float64(level-1)*RangePerLevel
}

// TowerDamage returns the projectile damage of a tower kind at a level.
func TowerDamage(k TowerKind, level int) int {
	return TowerDefs[k].BaseDamage + (level-1)*DamagePerLevel
}

// WaveComposition returns the unshuffled spawn list for wave n: basics
// every wave, fasts from wave 2, tanks trickling in from wave 5, each
// capped.
func WaveComposition(n int) []EnemyKind {
	var kinds []EnemyKind
	for i := 0; i < min(5+n*2, 20); i++ {
		kinds = append(kinds, EnemyBasic)
	}
	if n >= 2 {
		for i := 0; i < min(n, 10); i++ {
			kinds = append(kinds, EnemyFast)
		}
	}
	if n >= 4 {
		for i := 0; i < min((n-3)/2, 5); i++ {
			kinds = append(kinds, EnemyTank)
		}
	}
	return kinds
}
