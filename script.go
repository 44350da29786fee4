package blocky

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single move in a move script.
type scriptStep struct {
	Action string `json:"action"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Level  int    `json:"level"`
	Arg    int    `json:"arg,omitempty"`
}

// moveScript is the top-level JSON structure for a move script.
type moveScript struct {
	Steps []scriptStep `json:"steps"`
}

// MoveScript is a parsed, replayable sequence of moves. Combined with a
// seeded Config it reproduces a game exactly.
type MoveScript struct {
	moves []Move
}

// LoadMoveScript parses a JSON move script:
//
//	{"steps": [
//		{"action": "rotate", "x": 10, "y": 10, "level": 1, "arg": 1},
//		{"action": "smash", "x": 300, "y": 40, "level": 2}
//	]}
func LoadMoveScript(jsonData []byte) (*MoveScript, error) {
	var raw moveScript
	if err := json.Unmarshal(jsonData, &raw); err != nil {
		return nil, fmt.Errorf("%w: parse: %v", ErrInvalidScript, err)
	}
	if len(raw.Steps) == 0 {
		return nil, fmt.Errorf("%w: no steps", ErrInvalidScript)
	}
	s := &MoveScript{moves: make([]Move, 0, len(raw.Steps))}
	for i, st := range raw.Steps {
		kind, ok := parseMoveKind(st.Action)
		if !ok {
			return nil, fmt.Errorf("%w: step %d: unknown action %q", ErrInvalidScript, i, st.Action)
		}
		s.moves = append(s.moves, Move{Kind: kind, Arg: st.Arg, X: st.X, Y: st.Y, Level: st.Level})
	}
	return s, nil
}

// Moves returns the parsed moves. The returned slice MUST NOT be mutated.
func (s *MoveScript) Moves() []Move {
	return s.moves
}

// Play applies every move of the script in order and returns the final
// score. It stops at the first move that fails.
func (b *Board) Play(s *MoveScript) (int, error) {
	for i, m := range s.moves {
		if _, err := b.Apply(m); err != nil {
			return b.Score(), fmt.Errorf("step %d (%s): %w", i, m.Kind, err)
		}
	}
	return b.Score(), nil
}

func parseMoveKind(action string) (MoveKind, bool) {
	for _, k := range []MoveKind{MoveRotate, MoveReflect, MoveSmash} {
		if k.String() == action {
			return k, true
		}
	}
	return 0, false
}
