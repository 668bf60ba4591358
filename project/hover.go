package project

import "golang.org/x/exp/slices"

import "github.com/pwiecz/vr_affordances/lib"

type HoverKind string

const (
	HoverIn  HoverKind = "hover-in"
	HoverOut HoverKind = "hover-out"
)

type HoverEvent struct {
	Kind   HoverKind
	Button *lib.Button
}

// HoverTracker keeps track of the hovered buttons between frames.
type HoverTracker struct {
	hovered []*lib.Button
}

// Update returns the events caused by moving the cursor to point. Buttons
// no longer hovered are reported before newly hovered ones.
func (t *HoverTracker) Update(scene *Scene, point lib.UVPoint, time float64) []HoverEvent {
	hovering := scene.ButtonsAt(point, time)
	var events []HoverEvent
	for _, b := range t.hovered {
		if !containsButton(hovering, b) {
			events = append(events, HoverEvent{Kind: HoverOut, Button: b})
		}
	}
	for _, b := range hovering {
		if !containsButton(t.hovered, b) {
			events = append(events, HoverEvent{Kind: HoverIn, Button: b})
		}
	}
	t.hovered = hovering
	return events
}

// Hovered returns the buttons hovered after the last update.
func (t *HoverTracker) Hovered() []*lib.Button {
	return t.hovered
}

func (t *HoverTracker) Reset() {
	t.hovered = nil
}

func containsButton(buttons []*lib.Button, b *lib.Button) bool {
	return slices.ContainsFunc(buttons, func(other *lib.Button) bool {
		return other.ID() == b.ID()
	})
}
