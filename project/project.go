// Package project holds the document model of an interactive video
// project: its scenes with their buttons, the affordances and the settings.
package project

import "encoding/json"
import "fmt"
import "sync/atomic"

import "github.com/pkg/errors"

import "github.com/pwiecz/vr_affordances/affordance"
import "github.com/pwiecz/vr_affordances/lib"

var sceneCounter atomic.Int64

// Scene is a video together with the buttons placed on it.
type Scene struct {
	id int64

	Name string
	// VideoID identifies the video resource of the scene, nil if none is
	// assigned.
	VideoID      *int
	Buttons      []*lib.Button
	IsEntryPoint bool
	// EndAction is executed when the video ends.
	EndAction lib.Action
}

func NewScene() *Scene {
	id := sceneCounter.Add(1) - 1
	return &Scene{
		id:        id,
		Name:      fmt.Sprintf("Scene %d", id+1),
		Buttons:   []*lib.Button{},
		EndAction: &lib.DoNothingAction{},
	}
}

func (s *Scene) ID() int64 {
	return s.id
}

// AddButton adds a new default button to the scene.
func (s *Scene) AddButton() *lib.Button {
	b := lib.NewButton()
	s.Buttons = append(s.Buttons, b)
	return b
}

// ButtonsAt returns the buttons hit at the given point and time.
func (s *Scene) ButtonsAt(point lib.UVPoint, time float64) []*lib.Button {
	var hit []*lib.Button
	for _, b := range s.Buttons {
		if b.Hits(point, time) {
			hit = append(hit, b)
		}
	}
	return hit
}

// Click executes the action of the first button hit at the given point and
// returns that button, or nil if no button was hit.
func (s *Scene) Click(point lib.UVPoint, time float64, viewer lib.Viewer) (*lib.Button, error) {
	for _, b := range s.Buttons {
		if !b.Hits(point, time) {
			continue
		}
		if b.Action == nil {
			return b, nil
		}
		if err := b.Action.Execute(viewer); err != nil {
			return b, errors.Wrapf(err, "button %q", b.Name)
		}
		return b, nil
	}
	return nil, nil
}

// End executes the end action of the scene.
func (s *Scene) End(viewer lib.Viewer) error {
	if s.EndAction == nil {
		return nil
	}
	return errors.Wrapf(s.EndAction.Execute(viewer), "end of scene %q", s.Name)
}

// Button returns the button with the given name.
func (s *Scene) Button(name string) (*lib.Button, bool) {
	for _, b := range s.Buttons {
		if b.Name == name {
			return b, true
		}
	}
	return nil, false
}

type sceneJSON struct {
	Name         string            `json:"name"`
	VideoID      *int              `json:"videoID"`
	Buttons      []json.RawMessage `json:"buttons"`
	IsEntryPoint bool              `json:"isEntryPoint"`
	EndAction    json.RawMessage   `json:"endAction,omitempty"`
}

func (s *Scene) MarshalJSON() ([]byte, error) {
	buttons := s.Buttons
	if buttons == nil {
		buttons = []*lib.Button{}
	}
	return json.Marshal(struct {
		Name         string        `json:"name"`
		VideoID      *int          `json:"videoID"`
		Buttons      []*lib.Button `json:"buttons"`
		IsEntryPoint bool          `json:"isEntryPoint"`
		EndAction    lib.Action    `json:"endAction,omitempty"`
	}{s.Name, s.VideoID, buttons, s.IsEntryPoint, s.EndAction})
}

func (s *Scene) UnmarshalJSON(data []byte) error {
	raw := sceneJSON{Name: s.Name, IsEntryPoint: s.IsEntryPoint, VideoID: s.VideoID}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Name, s.VideoID, s.IsEntryPoint = raw.Name, raw.VideoID, raw.IsEntryPoint
	if raw.Buttons != nil {
		buttons := make([]*lib.Button, 0, len(raw.Buttons))
		for i, rawButton := range raw.Buttons {
			b, err := lib.UnmarshalButton(rawButton)
			if err != nil {
				return errors.Wrapf(err, "button %d", i)
			}
			buttons = append(buttons, b)
		}
		s.Buttons = buttons
	}
	if len(raw.EndAction) > 0 && string(raw.EndAction) != "null" {
		action, err := lib.UnmarshalAction(raw.EndAction)
		if err != nil {
			return errors.Wrap(err, "end action")
		}
		s.EndAction = action
	}
	return nil
}

// Project is an interactive video project.
type Project struct {
	Scenes      []*Scene
	Affordances []affordance.Affordance
	Settings    []lib.Settings
}

// New creates an empty project with the default affordances and settings.
func New() *Project {
	return &Project{
		Scenes:      []*Scene{},
		Affordances: []affordance.Affordance{affordance.NewShape(), affordance.NewCursor()},
		Settings:    []lib.Settings{lib.NewViewportSettings(), lib.NewHTMLSettings()},
	}
}

// Scene returns the scene with the given name.
func (p *Project) Scene(name string) (*Scene, bool) {
	for _, s := range p.Scenes {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// EntryPoint returns the first scene marked as entry point, or the first
// scene if none is.
func (p *Project) EntryPoint() (*Scene, bool) {
	for _, s := range p.Scenes {
		if s.IsEntryPoint {
			return s, true
		}
	}
	if len(p.Scenes) > 0 {
		return p.Scenes[0], true
	}
	return nil, false
}

// ViewportSettings returns the viewport settings, or nil if there are none.
func (p *Project) ViewportSettings() *lib.ViewportSettings {
	for _, s := range p.Settings {
		if v, ok := s.(*lib.ViewportSettings); ok {
			return v
		}
	}
	return nil
}

// HTMLSettings returns the HTML settings, or nil if there are none.
func (p *Project) HTMLSettings() *lib.HTMLSettings {
	for _, s := range p.Settings {
		if h, ok := s.(*lib.HTMLSettings); ok {
			return h
		}
	}
	return nil
}

// EnabledAffordances returns the affordances that are enabled.
func (p *Project) EnabledAffordances() []affordance.Affordance {
	var enabled []affordance.Affordance
	for _, a := range p.Affordances {
		if a.Properties().Enabled {
			enabled = append(enabled, a)
		}
	}
	return enabled
}

type projectJSON struct {
	Scenes      []json.RawMessage `json:"scenes"`
	Affordances []json.RawMessage `json:"affordances"`
	Settings    []json.RawMessage `json:"settings"`
}

func (p *Project) MarshalJSON() ([]byte, error) {
	out := struct {
		Scenes      []*Scene                `json:"scenes"`
		Affordances []affordance.Affordance `json:"affordances"`
		Settings    []lib.Settings          `json:"settings"`
	}{p.Scenes, p.Affordances, p.Settings}
	if out.Scenes == nil {
		out.Scenes = []*Scene{}
	}
	if out.Affordances == nil {
		out.Affordances = []affordance.Affordance{}
	}
	if out.Settings == nil {
		out.Settings = []lib.Settings{}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a project. Missing affordances and settings keep
// the current ones.
func (p *Project) UnmarshalJSON(data []byte) error {
	var raw projectJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	scenes := make([]*Scene, 0, len(raw.Scenes))
	for i, rawScene := range raw.Scenes {
		scene := NewScene()
		if err := json.Unmarshal(rawScene, scene); err != nil {
			return errors.Wrapf(err, "scene %d", i)
		}
		scenes = append(scenes, scene)
	}
	p.Scenes = scenes
	if raw.Affordances != nil {
		affordances := make([]affordance.Affordance, 0, len(raw.Affordances))
		for i, rawAffordance := range raw.Affordances {
			a, err := affordance.Unmarshal(rawAffordance)
			if err != nil {
				return errors.Wrapf(err, "affordance %d", i)
			}
			affordances = append(affordances, a)
		}
		p.Affordances = affordances
	}
	if raw.Settings != nil {
		settings := make([]lib.Settings, 0, len(raw.Settings))
		for i, rawSettings := range raw.Settings {
			s, err := lib.UnmarshalSettings(rawSettings)
			if err != nil {
				return errors.Wrapf(err, "settings %d", i)
			}
			settings = append(settings, s)
		}
		p.Settings = settings
	}
	return nil
}
