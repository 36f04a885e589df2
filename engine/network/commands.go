package network

import (
	"encoding/binary"
	"io"

	"github.com/Rick-van-Dam/VibeCodedTowerDefence/engine/core"
)

// CmdType identifies a session command
type CmdType uint8

const (
	CmdReset CmdType = iota
	CmdStartWave
	CmdPlaceTower
	CmdUpgradeTower
	CmdPause
	CmdResume
	CmdReturnToMenu
)

// GameCommand is a tick-stamped session command. A run recorded as a
// command stream replays deterministically on a session with the same
// seed and level.
type GameCommand struct {
	Tick     uint64
	Type     CmdType
	EntityID uint64 // upgrade target
	X, Y     float64
}

// Apply executes the command against a session. Commands with unmet
// preconditions no-op, same as their interactive counterparts.
func (c *GameCommand) Apply(s *core.Session) {
	switch c.Type {
	case CmdReset:
		s.ResetToPlaying()
	case CmdStartWave:
		s.StartNextWave()
	case CmdPlaceTower:
		s.PlaceTowerAt(c.X, c.Y)
	case CmdUpgradeTower:
		s.UpgradeTower(core.EntityID(c.EntityID))
	case CmdPause:
		s.Pause()
	case CmdResume:
		s.Resume()
	case CmdReturnToMenu:
		s.ReturnToMenu()
	}
}

// Encode writes a command to binary
func (c *GameCommand) Encode(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, c.Tick); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, c.Type); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, c.EntityID); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, c.X); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, c.Y)
}

// Decode reads a command from binary
func (c *GameCommand) Decode(r io.Reader) error {
	if err := binary.Read(r, binary.LittleEndian, &c.Tick); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &c.Type); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &c.EntityID); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &c.X); err != nil {
		return err
	}
	return binary.Read(r, binary.LittleEndian, &c.Y)
}
