package affordance

import "github.com/pwiecz/vr_affordances/lib"

// Renderer draws the enabled affordances of a project each frame.
type Renderer struct {
	affordances []Affordance
	layers      Layers
	cache       *lib.GeometryCache
}

// NewRenderer creates a renderer drawing to layers. The cache may be nil.
func NewRenderer(affordances []Affordance, layers Layers, cache *lib.GeometryCache) *Renderer {
	return &Renderer{affordances: affordances, layers: layers, cache: cache}
}

func (r *Renderer) Layers() Layers {
	return r.layers
}

// RenderFrame clears the interaction layer and the HUD, and renders the
// enabled affordances in order. HUD affordances are skipped when the viewport
// settings hide the HUD.
func (r *Renderer) RenderFrame(buttons []*lib.Button, frame Frame) {
	if frame.Cache == nil {
		frame.Cache = r.cache
	}
	r.layers.Interaction.Clear()
	r.layers.HUD.Clear()
	for _, a := range r.affordances {
		if !a.Properties().Enabled {
			continue
		}
		if onHUD(a) && frame.Viewport != nil && !frame.Viewport.ShowHud {
			continue
		}
		a.Render(buttons, r.layers, &frame)
	}
	framesTotal.Inc()
}

// onHUD reports whether a draws onto the HUD layer.
func onHUD(a Affordance) bool {
	switch a.Type() {
	case TypeCursor, TypeEdgeIndicator:
		return true
	}
	return false
}
