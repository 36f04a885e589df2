package network

import (
	"bufio"
	"os"

	"github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/core"
)

// Replay records and plays back game commands
type Replay struct {
	Commands []GameCommand
	file     *os.File
	writer   *bufio.Writer
	err      error
}

// NewReplayRecorder creates a replay file for recording
func NewReplayRecorder(path string) (*Replay, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &Replay{
		file:   f,
		writer: bufio.NewWriter(f),
	}, nil
}

// Record writes a command to the replay file
func (r *Replay) Record(cmd GameCommand) error {
	r.Commands = append(r.Commands, cmd)
	if r.writer == nil {
		return nil
	}
	if err := cmd.Encode(r.writer); err != nil {
		r.err = err
		return err
	}
	return nil
}

// Attach subscribes the recorder to a session's event bus so every
// session-mutating command gets captured with its tick stamp, no matter
// which front end issued it. Pause and menu navigation do not touch the
// simulation and are not recorded.
func (r *Replay) Attach(events *core.EventBus) {
	events.On(core.EvtGameReset, func(e core.Event) {
		r.Record(GameCommand{Tick: e.Tick, Type: CmdReset})
	})
	events.On(core.EvtWaveStarted, func(e core.Event) {
		r.Record(GameCommand{Tick: e.Tick, Type: CmdStartWave})
	})
	events.On(core.EvtTowerPlaced, func(e core.Event) {
		p := e.Payload.(core.TowerPlacedEvent)
		r.Record(GameCommand{Tick: e.Tick, Type: CmdPlaceTower, X: p.X, Y: p.Y})
	})
	events.On(core.EvtTowerUpgraded, func(e core.Event) {
		p := e.Payload.(core.TowerUpgradedEvent)
		r.Record(GameCommand{Tick: e.Tick, Type: CmdUpgradeTower, EntityID: uint64(p.ID)})
	})
}

// Close flushes and closes the replay file
func (r *Replay) Close() error {
	if r.writer != nil {
		if err := r.writer.Flush(); err != nil && r.err == nil {
			r.err = err
		}
	}
	if r.file != nil {
		if err := r.file.Close(); err != nil && r.err == nil {
			r.err = err
		}
	}
	return r.err
}

// LoadReplay loads a replay file
func LoadReplay(path string) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	replay := &Replay{}
	reader := bufio.NewReader(f)
	for {
		var cmd GameCommand
		if err := cmd.Decode(reader); err != nil {
			break
		}
		replay.Commands = append(replay.Commands, cmd)
	}
	return replay, nil
}

// CommandsForTick returns all commands at a given tick during playback
func (r *Replay) CommandsForTick(tick uint64) []GameCommand {
	var result []GameCommand
	for _, c := range r.Commands {
		if c.Tick == tick {
			result = append(result, c)
		}
	}
	return result
}
