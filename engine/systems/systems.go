// Package systems holds the simulation pipeline. Each system runs once
// per tick against the session's world; priorities fix the order to
// wave spawning, enemy movement, tower fire, projectile resolution.
package systems

import "github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/core"

// Install registers the full pipeline on the session's world. Call once
// after NewSession; the systems survive session resets.
func Install(s *core.Session) {
	s.World.AddSystem(&WaveSystem{S: s})
	s.World.AddSystem(&MovementSystem{S: s})
	s.World.AddSystem(&CombatSystem{S: s})
	s.World.AddSystem(&ProjectileSystem{S: s})
}
