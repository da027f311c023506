package components

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// PostureData interpolates the eye height toward a per-state target so
// crouching and standing never pop.
type PostureData struct {
	EyeHeight float64
	target    float64
	tween     *gween.Tween
}

var Posture = donburi.NewComponentType[PostureData]()

// NewPostureData starts at height with no transition pending.
func NewPostureData(height float64) PostureData {
	return PostureData{EyeHeight: height, target: height}
}

// SetTarget retargets the tween. A no-op when the target is unchanged.
func (p *PostureData) SetTarget(height, duration float64) {
	if height == p.target {
		return
	}
	p.target = height
	p.tween = gween.New(float32(p.EyeHeight), float32(height), float32(duration), ease.OutQuad)
}

// Step advances the interpolation by dt seconds.
func (p *PostureData) Step(dt float64) {
	if p.tween == nil {
		return
	}
	v, done := p.tween.Update(float32(dt))
	p.EyeHeight = float64(v)
	if done {
		p.EyeHeight = p.target
		p.tween = nil
	}
}

// Target returns the height the posture is interpolating toward.
func (p *PostureData) Target() float64 { return p.target }
