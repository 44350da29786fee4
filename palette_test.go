package blocky

import (
	"errors"
	"testing"
)

func TestPaletteName(t *testing.T) {
	if got := DefaultPalette.Name(ColorYellow); got != "yellow" {
		t.Errorf("Name(yellow) = %q", got)
	}
	if got := DefaultPalette.Name(FrameColor); got != "" {
		t.Errorf("Name(frame) = %q, want empty", got)
	}
}

func TestPaletteSubset(t *testing.T) {
	sub, err := DefaultPalette.Subset([]string{"yellow", "red"})
	if err != nil {
		t.Fatal(err)
	}
	if len(sub) != 2 || sub[0].Color != ColorYellow || sub[1].Color != ColorRed {
		t.Errorf("Subset = %+v", sub)
	}
	if _, ok := sub.Lookup("green"); ok {
		t.Error("green should not be in the subset")
	}

	if _, err := DefaultPalette.Subset([]string{"red", "mauve"}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}
