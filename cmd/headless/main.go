// Headless simulation runner. Plays the game with the built-in
// autoplayer, or re-applies a recorded command log, without a display.
package main

import (
	"flag"
	"log"

	"github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/ai"
	"github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/core"
	"github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/level"
	"github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/network"
	"github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/systems"
)

func main() {
	var (
		seed       = flag.Int64("seed", 1, "simulation seed")
		difficulty = flag.String("difficulty", "medium", "autoplayer difficulty: easy, medium or hard")
		maxTicks   = flag.Uint64("maxticks", 600000, "tick cap before the run is abandoned")
		recordPath = flag.String("record", "", "write the command log to this file")
		replayPath = flag.String("replay", "", "re-apply a recorded command log instead of the autoplayer")
		levelPath  = flag.String("level", "", "board layout YAML, empty for the built-in board")
		writeLevel = flag.String("writelevel", "", "write the built-in board to this YAML file and exit")
	)
	flag.Parse()

	if *writeLevel != "" {
		if err := level.Default().Save(*writeLevel); err != nil {
			log.Fatalf("write level: %v", err)
		}
		log.Printf("wrote %s", *writeLevel)
		return
	}

	lvl := level.Default()
	if *levelPath != "" {
		loaded, err := level.Load(*levelPath)
		if err != nil {
			log.Fatalf("load level: %v", err)
		}
		lvl = loaded
	}

	s := core.NewSession(lvl, *seed)
	systems.Install(s)
	logEvents(s)

	var rec *network.Replay
	if *recordPath != "" {
		r, err := network.NewReplayRecorder(*recordPath)
		if err != nil {
			log.Fatalf("open replay file: %v", err)
		}
		r.Attach(s.Events)
		rec = r
	}

	if *replayPath != "" {
		runReplay(s, *replayPath, *maxTicks)
	} else {
		runAutoplay(s, lvl, *seed, parseDifficulty(*difficulty), *maxTicks)
	}

	if rec != nil {
		if err := rec.Close(); err != nil {
			log.Fatalf("close replay file: %v", err)
		}
		log.Printf("recorded %d commands to %s", len(rec.Commands), *recordPath)
	}

	snap := s.Snapshot()
	log.Printf("finished: state=%s wave=%d lives=%d money=%d tick=%d",
		snap.State, snap.Wave, snap.Lives, snap.Money, snap.Tick)
}

func runAutoplay(s *core.Session, lvl *level.Level, seed int64, diff ai.Difficulty, maxTicks uint64) {
	player := ai.New(lvl, seed, diff)
	s.StartGame()
	for s.World.TickCount < maxTicks {
		player.Think(s)
		s.Tick()
		if s.State == core.StateVictory || s.State == core.StateGameOver {
			break
		}
	}
}

// runReplay feeds recorded commands back in at the ticks they were
// issued on. The tick counter freezes outside of play, so commands
// recorded around a reset all land on the frozen tick and are applied
// back to back.
func runReplay(s *core.Session, path string, maxTicks uint64) {
	rep, err := network.LoadReplay(path)
	if err != nil {
		log.Fatalf("load replay: %v", err)
	}
	cmds := rep.Commands
	log.Printf("replaying %d commands from %s", len(cmds), path)

	i := 0
	for s.World.TickCount < maxTicks {
		applied := false
		for i < len(cmds) && cmds[i].Tick == s.World.TickCount {
			cmds[i].Apply(s)
			i++
			applied = true
		}
		if i >= len(cmds) && s.State != core.StatePlaying {
			break
		}
		if s.State != core.StatePlaying && !applied {
			log.Printf("replay stalled at tick %d with %d commands left", s.World.TickCount, len(cmds)-i)
			break
		}
		s.Tick()
	}
}

func logEvents(s *core.Session) {
	s.Events.On(core.EvtWaveStarted, func(e core.Event) {
		ws := e.Payload.(core.WaveStartedEvent)
		log.Printf("tick %6d  wave %d started, %d enemies", e.Tick, ws.Number, ws.Size)
	})
	s.Events.On(core.EvtWaveCleared, func(e core.Event) {
		log.Printf("tick %6d  wave cleared", e.Tick)
	})
	s.Events.On(core.EvtEnemyLeaked, func(e core.Event) {
		el := e.Payload.(core.EnemyLeakedEvent)
		log.Printf("tick %6d  enemy leaked, %d lives left", e.Tick, el.LivesLeft)
	})
	s.Events.On(core.EvtGameOver, func(e core.Event) {
		log.Printf("tick %6d  game over", e.Tick)
	})
	s.Events.On(core.EvtVictory, func(e core.Event) {
		log.Printf("tick %6d  victory", e.Tick)
	})
}

func parseDifficulty(name string) ai.Difficulty {
	switch name {
	case "easy":
		return ai.DiffEasy
	case "hard":
		return ai.DiffHard
	default:
		return ai.DiffMedium
	}
}
