package blocky

import (
	"errors"
	"strings"
	"testing"
)

func TestCheckInvariantsValid(t *testing.T) {
	if err := CheckInvariants(newFixture(t)); err != nil {
		t.Errorf("fixture should be valid: %v", err)
	}
	if err := CheckInvariants(NewLeaf(0, 0, 1, 0, 0, cR)); err != nil {
		t.Errorf("single unit leaf should be valid: %v", err)
	}
	if err := CheckInvariants(NewLeaf(0, 0, 1, 0, 0, Color{})); !errors.Is(err, ErrInvariant) {
		t.Errorf("colorless leaf: err = %v, want ErrInvariant", err)
	}
}

func TestCheckInvariantsViolations(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(root *Block)
		want    string
	}{
		{"three children", func(root *Block) {
			root.children = root.children[:3]
		}, "has 3 children"},
		{"color on subdivided block", func(root *Block) {
			root.color = cR
		}, "has a color"},
		{"leaf without color", func(root *Block) {
			root.children[QuadLowerLeft].children[QuadUpperLeft].color = Color{}
		}, "root/LL/UL is a leaf without a color"},
		{"wrong child size", func(root *Block) {
			root.children[QuadUpperRight].size = 4
		}, "root/UR size 4"},
		{"wrong child level", func(root *Block) {
			root.children[QuadUpperLeft].level = 2
		}, "root/UL level 2"},
		{"wrong max depth", func(root *Block) {
			root.children[QuadLowerRight].maxDepth = 3
		}, "root/LR max depth 3"},
		{"wrong position", func(root *Block) {
			root.children[QuadLowerLeft].children[QuadLowerRight].x = 0
		}, "root/LL/LR at (0,3)"},
		{"odd size", func(root *Block) {
			root.size = 3
		}, "odd"},
		{"swapped without resync", func(root *Block) {
			root.children[0], root.children[1] = root.children[1], root.children[0]
		}, "root/UR at (0,0)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newFixture(t)
			tt.corrupt(root)
			err := CheckInvariants(root)
			if !errors.Is(err, ErrInvariant) {
				t.Fatalf("err = %v, want ErrInvariant", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestDebugCheckTreePanics(t *testing.T) {
	root := newFixture(t)
	root.color = cR
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for corrupt tree, got none")
		}
		if msg, _ := r.(string); !strings.Contains(msg, "blocky debug: after rotate") {
			t.Errorf("panic = %v", r)
		}
	}()
	debugCheckTree(root, "rotate")
}
