package blocky

import (
	"math"
	"testing"
)

func TestHighlightPulseStartsOpaque(t *testing.T) {
	p := NewHighlightPulse(1.0)
	if p.Alpha != 1 {
		t.Errorf("Alpha = %f, want 1", p.Alpha)
	}
}

func TestHighlightPulseFadesOutAndBack(t *testing.T) {
	p := NewHighlightPulse(1.0)

	// Exact halves avoid float32 accumulation drift.
	p.Update(0.25)
	p.Update(0.25)
	if math.Abs(p.Alpha-pulseMinAlpha) > 0.01 {
		t.Errorf("after half period Alpha = %f, want ~%f", p.Alpha, pulseMinAlpha)
	}

	p.Update(0.25)
	if p.Alpha <= pulseMinAlpha || p.Alpha >= 1 {
		t.Errorf("mid fade-in Alpha = %f, want strictly between", p.Alpha)
	}
	p.Update(0.25)
	if math.Abs(p.Alpha-1) > 0.01 {
		t.Errorf("after full period Alpha = %f, want ~1", p.Alpha)
	}
}

func TestHighlightPulseStaysInRange(t *testing.T) {
	p := NewHighlightPulse(0.6)
	for i := 0; i < 300; i++ {
		p.Update(1.0 / 60)
		if p.Alpha < pulseMinAlpha-0.001 || p.Alpha > 1.001 {
			t.Fatalf("tick %d: Alpha = %f out of range", i, p.Alpha)
		}
	}
}

func TestHighlightPulseApply(t *testing.T) {
	p := NewHighlightPulse(1.0)
	p.Alpha = 0.5
	cmd := p.Apply(DrawCommand{Color: HighlightColor, X: 4, Y: 8, Size: 16, StrokeWidth: strokeHighlight})
	if cmd.Color.A != 0.5 {
		t.Errorf("A = %f, want 0.5", cmd.Color.A)
	}
	if cmd.X != 4 || cmd.Y != 8 || cmd.Size != 16 || cmd.Color.R != 1 {
		t.Errorf("Apply changed more than alpha: %+v", cmd)
	}
}
