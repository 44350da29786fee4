package blocky

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadMoveScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "rotate", "x": 0, "y": 0, "level": 0, "arg": 1},
			{"action": "reflect", "x": 3, "y": 1, "level": 1},
			{"action": "smash", "x": 2, "y": 2, "level": 1}
		]
	}`)

	s, err := LoadMoveScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Move{
		{Kind: MoveRotate, Arg: 1, X: 0, Y: 0, Level: 0},
		{Kind: MoveReflect, Arg: 0, X: 3, Y: 1, Level: 1},
		{Kind: MoveSmash, X: 2, Y: 2, Level: 1},
	}
	got := s.Moves()
	if len(got) != len(want) {
		t.Fatalf("got %d moves, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("move %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLoadMoveScript_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `not json`},
		{"empty", `{"steps": []}`},
		{"missing steps", `{}`},
		{"unknown action", `{"steps": [{"action": "swap"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadMoveScript([]byte(tt.data)); !errors.Is(err, ErrInvalidScript) {
				t.Errorf("err = %v, want ErrInvalidScript", err)
			}
		})
	}
}

func TestBoardPlayMatchesApply(t *testing.T) {
	s, err := LoadMoveScript([]byte(`{"steps": [
		{"action": "rotate", "level": 0, "arg": 0},
		{"action": "reflect", "x": 3, "y": 3, "level": 1, "arg": 1},
		{"action": "smash", "x": 0, "y": 0, "level": 1},
		{"action": "rotate", "x": 1, "y": 1, "level": 2, "arg": 1}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	played := newFixtureBoard(t)
	score, err := played.Play(s)
	if err != nil {
		t.Fatal(err)
	}

	manual := newFixtureBoard(t)
	for _, m := range s.Moves() {
		if _, err := manual.Apply(m); err != nil {
			t.Fatal(err)
		}
	}

	assertSameTree(t, treeDump(played.Root()), treeDump(manual.Root()))
	if score != manual.Score() {
		t.Errorf("Play score = %d, want %d", score, manual.Score())
	}
	if played.Moves() != 4 {
		t.Errorf("Moves = %d, want 4", played.Moves())
	}
}

func TestBoardPlayStopsAtFailure(t *testing.T) {
	s, err := LoadMoveScript([]byte(`{"steps": [
		{"action": "reflect", "level": 0},
		{"action": "rotate", "level": 0, "arg": 3},
		{"action": "reflect", "level": 0}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	b := newFixtureBoard(t)
	_, err = b.Play(s)
	if !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("err = %v, want ErrInvalidDirection", err)
	}
	if !strings.Contains(err.Error(), "step 1 (rotate)") {
		t.Errorf("err = %q, want it to name the failing step", err)
	}
	if b.Moves() != 1 {
		t.Errorf("Moves = %d, want 1", b.Moves())
	}
}
