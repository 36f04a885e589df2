package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/core"
)

const sampleRate = beep.SampleRate(44100)

// SoundID identifies a sound effect
type SoundID string

const (
	SndShoot     SoundID = "shoot"
	SndHit       SoundID = "hit"
	SndKill      SoundID = "kill"
	SndLeak      SoundID = "leak"
	SndWaveStart SoundID = "wave"
	SndPlace     SoundID = "place"
	SndUpgrade   SoundID = "upgrade"
	SndClick     SoundID = "click"
	SndGameOver  SoundID = "gameover"
	SndVictory   SoundID = "victory"
)

// AudioManager synthesizes and plays sound effects. Everything is
// generated at runtime, no audio assets are shipped.
type AudioManager struct {
	MasterVolume float64
	SFXVolume    float64
	initialized  bool
}

func NewAudioManager() *AudioManager {
	return &AudioManager{
		MasterVolume: 1.0,
		SFXVolume:    0.8,
	}
}

// Initialize opens the speaker. PlaySFX is a no-op until this succeeds,
// so headless runs can simply skip it.
func (am *AudioManager) Initialize() error {
	if am.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	am.initialized = true
	return nil
}

// Cleanup drops any effects still playing.
func (am *AudioManager) Cleanup() {
	if !am.initialized {
		return
	}
	speaker.Clear()
	am.initialized = false
}

// PlaySFX plays a sound effect
func (am *AudioManager) PlaySFX(id SoundID) {
	if !am.initialized {
		return
	}
	vol := am.SFXVolume * am.MasterVolume
	if vol <= 0 {
		return
	}
	s := am.sound(id)
	if s == nil {
		return
	}
	speaker.Play(newVolume(s, vol))
}

// SetVolume sets master volume (0-1)
func (am *AudioManager) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	am.MasterVolume = v
}

// AttachBus plays effects off gameplay events.
func (am *AudioManager) AttachBus(events *core.EventBus) {
	events.On(core.EvtTowerFired, func(core.Event) { am.PlaySFX(SndShoot) })
	events.On(core.EvtProjectileHit, func(core.Event) { am.PlaySFX(SndHit) })
	events.On(core.EvtEnemyKilled, func(core.Event) { am.PlaySFX(SndKill) })
	events.On(core.EvtEnemyLeaked, func(core.Event) { am.PlaySFX(SndLeak) })
	events.On(core.EvtWaveStarted, func(core.Event) { am.PlaySFX(SndWaveStart) })
	events.On(core.EvtTowerPlaced, func(core.Event) { am.PlaySFX(SndPlace) })
	events.On(core.EvtTowerUpgraded, func(core.Event) { am.PlaySFX(SndUpgrade) })
	events.On(core.EvtGameOver, func(core.Event) { am.PlaySFX(SndGameOver) })
	events.On(core.EvtVictory, func(core.Event) { am.PlaySFX(SndVictory) })
}

func (am *AudioManager) sound(id SoundID) beep.Streamer {
	switch id {
	case SndShoot:
		return note(WaveSquare, 880, 50*time.Millisecond)
	case SndHit:
		return note(WaveNoise, 0, 40*time.Millisecond)
	case SndKill:
		return beep.Seq(
			note(WaveSine, 660, 70*time.Millisecond),
			note(WaveSine, 880, 70*time.Millisecond),
		)
	case SndLeak:
		return note(WaveSaw, 150, 200*time.Millisecond)
	case SndWaveStart:
		return beep.Seq(
			note(WaveSquare, 523.25, 100*time.Millisecond),
			note(WaveSquare, 659.25, 100*time.Millisecond),
		)
	case SndPlace:
		return note(WaveSine, 440, 80*time.Millisecond)
	case SndUpgrade:
		return beep.Seq(
			note(WaveSine, 660, 60*time.Millisecond),
			note(WaveSine, 990, 90*time.Millisecond),
		)
	case SndClick:
		return note(WaveSquare, 1000, 30*time.Millisecond)
	case SndGameOver:
		return note(WaveSaw, 196, 400*time.Millisecond)
	case SndVictory:
		return beep.Seq(
			note(WaveSine, 523.25, 120*time.Millisecond),
			note(WaveSine, 659.25, 120*time.Millisecond),
			note(WaveSine, 783.99, 120*time.Millisecond),
			note(WaveSine, 1046.5, 160*time.Millisecond),
		)
	}
	return nil
}
