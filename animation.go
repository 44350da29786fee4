package blocky

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// pulseMinAlpha is the dimmest point of the highlight pulse.
const pulseMinAlpha = 0.35

// HighlightPulse fades the selection frame's alpha back and forth between 1
// and pulseMinAlpha. Call Update(dt) each frame and Apply to the frame
// command before drawing.
//
// There is no global animation manager; callers call Update themselves.
type HighlightPulse struct {
	tween    *gween.Tween
	half     float32
	from, to float32

	// Alpha is the current multiplier in [pulseMinAlpha, 1].
	Alpha float64
}

// NewHighlightPulse creates a pulse that completes one fade out and back in
// over period seconds.
func NewHighlightPulse(period float32) *HighlightPulse {
	p := &HighlightPulse{half: period / 2, from: 1, to: pulseMinAlpha, Alpha: 1}
	p.tween = gween.New(p.from, p.to, p.half, ease.InOutSine)
	return p
}

// Update advances the pulse by dt seconds. When one fade finishes the next
// one starts in the opposite direction.
func (p *HighlightPulse) Update(dt float32) {
	val, finished := p.tween.Update(dt)
	p.Alpha = float64(val)
	if finished {
		p.from, p.to = p.to, p.from
		p.tween = gween.New(p.from, p.to, p.half, ease.InOutSine)
	}
}

// Apply returns cmd with its color alpha scaled by the current pulse value.
func (p *HighlightPulse) Apply(cmd DrawCommand) DrawCommand {
	cmd.Color.A *= p.Alpha
	return cmd
}
