package core

import "math/rand"

// Wave tracks spawn progress for one enemy wave. The queue is built from
// the composition table and shuffled once at construction with the
// session's RNG, so a seeded session replays the same spawn order.
type Wave struct {
	Number   int
	Complete bool
	queue    []EnemyKind
	timer    int
}

// NewWave builds and shuffles the spawn queue for wave n.
func NewWave(n int, rng *rand.Rand) *Wave {
	queue := WaveComposition(n)
	rng.Shuffle(len(queue), func(i, j int) {
		queue[i], queue[j] = queue[j], queue[i]
	})
	return &Wave{Number: n, queue: queue}
}

// SpawnStep advances the spawn timer by one tick and returns the kind to
// spawn when the interval elapses. The wave is marked complete on the
// step after the last spawn, when the queue is found empty.
func (wv *Wave) SpawnStep() (EnemyKind, bool) {
	if len(wv.queue) == 0 {
		wv.Complete = true
		return 0, false
	}
	wv.timer++
	if wv.timer >= SpawnInterval {
		wv.timer = 0
		k := wv.queue[0]
		wv.queue = wv.queue[1:]
		return k, true
	}
	return 0, false
}

// Remaining returns how many enemies are still queued to spawn.
func (wv *Wave) Remaining() int {
	return len(wv.queue)
}
