package core

import (
	"math/rand"
	"testing"
)

// TestSpawnStepCadence verifies the first spawn lands exactly one interval
// after the wave starts and subsequent spawns follow at the same pace.
func TestSpawnStepCadence(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	wv := NewWave(1, rng)
	total := wv.Remaining()
	if total != 7 {
		t.Fatalf("Expected wave 1 to queue 7 enemies, got %d", total)
	}

	var spawnTicks []int
	for tick := 1; wv.Remaining() > 0; tick++ {
		if _, ok := wv.SpawnStep(); ok {
			spawnTicks = append(spawnTicks, tick)
		}
		if tick > total*SpawnInterval+1 {
			t.Fatal("Wave never drained its spawn queue")
		}
	}

	if len(spawnTicks) != total {
		t.Fatalf("Expected %d spawns, got %d", total, len(spawnTicks))
	}
	for i, tick := range spawnTicks {
		want := (i + 1) * SpawnInterval
		if tick != want {
			t.Errorf("Expected spawn %d at step %d, got %d", i+1, want, tick)
		}
	}
}

// TestWaveCompleteAfterLastSpawn verifies Complete flips on the step after
// the queue empties, not on the spawning step itself.
func TestWaveCompleteAfterLastSpawn(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	wv := NewWave(1, rng)

	for wv.Remaining() > 0 {
		wv.SpawnStep()
	}
	if wv.Complete {
		t.Error("Expected wave not complete on the step of the last spawn")
	}

	if _, ok := wv.SpawnStep(); ok {
		t.Error("Expected no spawn from an empty queue")
	}
	if !wv.Complete {
		t.Error("Expected wave complete once the empty queue is observed")
	}
}

// TestWaveRemaining verifies the pending count drains one spawn at a time
func TestWaveRemaining(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	wv := NewWave(2, rng)
	want := len(WaveComposition(2))
	if wv.Remaining() != want {
		t.Fatalf("Expected %d queued enemies, got %d", want, wv.Remaining())
	}

	// Run exactly one spawn interval
	for i := 0; i < SpawnInterval; i++ {
		wv.SpawnStep()
	}
	if wv.Remaining() != want-1 {
		t.Errorf("Expected %d queued after one spawn, got %d", want-1, wv.Remaining())
	}
}

// TestWaveShuffleIsSeeded verifies two waves built from equal-seeded RNGs
// produce the same spawn order.
func TestWaveShuffleIsSeeded(t *testing.T) {
	a := NewWave(5, rand.New(rand.NewSource(42)))
	b := NewWave(5, rand.New(rand.NewSource(42)))

	for a.Remaining() > 0 {
		ka, oka := a.SpawnStep()
		kb, okb := b.SpawnStep()
		if oka != okb || ka != kb {
			t.Fatal("Expected identical spawn sequences for identical seeds")
		}
	}
}
