// Spectator server. Runs the simulation with the autoplayer and streams
// snapshots to websocket viewers.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/ai"
	"github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/core"
	"github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/level"
	"github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/network"
	"github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/systems"
)

const tickRate = 60

// snapshotEvery is the number of frames between broadcasts, 20 per second.
const snapshotEvery = 3

func main() {
	var (
		addr         = flag.String("addr", ":8080", "listen address")
		seed         = flag.Int64("seed", 0, "simulation seed, 0 picks one")
		difficulty   = flag.String("difficulty", "medium", "autoplayer difficulty: easy, medium or hard")
		levelPath    = flag.String("level", "", "board layout YAML, empty for the built-in board")
		restartAfter = flag.Duration("restart", 5*time.Second, "delay before a finished run restarts")
	)
	flag.Parse()

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
	player := ai.New(lvl, s.Seed, parseDifficulty(*difficulty))

	hub := network.NewHub()
	go hub.Run()

	// The ticker goroutine owns the session; /state readers take the lock.
	var mu sync.Mutex

	go func() {
		ticker := time.NewTicker(time.Second / tickRate)
		defer ticker.Stop()

		mu.Lock()
		s.StartGame()
		mu.Unlock()

		frame := 0
		var idleSince time.Time
		for range ticker.C {
			mu.Lock()
			switch s.State {
			case core.StatePlaying:
				player.Think(s)
				idleSince = time.Time{}
			case core.StateGameOver, core.StateVictory:
				if idleSince.IsZero() {
					idleSince = time.Now()
					log.Printf("run finished: %s at wave %d", s.State, s.WaveNumber)
				} else if time.Since(idleSince) >= *restartAfter {
					s.ResetToPlaying()
					idleSince = time.Time{}
					log.Println("starting a fresh run")
				}
			}
			s.Tick()

			frame++
			if frame%snapshotEvery == 0 {
				if err := hub.BroadcastSnapshot(s.Snapshot()); err != nil {
					log.Printf("broadcast: %v", err)
				}
			}
			mu.Unlock()
		}
	}()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		network.ServeWS(hub, w, r)
	})
	mux.HandleFunc("/state", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		snap := s.Snapshot()
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snap); err != nil {
			log.Printf("encode state: %v", err)
		}
	})

	log.Printf("spectator server on %s, seed %d", *addr, s.Seed)
	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.Fatal(err)
	}
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
