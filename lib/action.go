package lib

import "bytes"
import "encoding/json"

import "github.com/pkg/errors"
import "github.com/yuin/goldmark"

// ActionType is the discriminator of persisted actions.
type ActionType string

const (
	ActionTypeDoNothing       ActionType = "do-nothing"
	ActionTypeComposite       ActionType = "composite"
	ActionTypeChangeScene     ActionType = "change-scene"
	ActionTypeDisplayMarkdown ActionType = "display-markdown"
	ActionTypeDisplayHTML     ActionType = "display-html"
	ActionTypeReplayVideo     ActionType = "replay-video"
)

// Viewer is the playback environment actions are executed against.
type Viewer interface {
	ChangeScene(name string) error
	ShowOverlay(overlay Overlay) error
	ReplayVideo() error
}

// Overlay is an HTML message box shown in front of the camera.
type Overlay struct {
	HTML string
	// LatitudeAdjustment in degrees is added to the latitude of the
	// displayed plane.
	LatitudeAdjustment float64
}

// Action is executed when a button is clicked or a scene ends.
type Action interface {
	Type() ActionType
	Execute(viewer Viewer) error

	isAction()
}

type DoNothingAction struct{}

func (*DoNothingAction) Type() ActionType     { return ActionTypeDoNothing }
func (*DoNothingAction) Execute(Viewer) error { return nil }

// CompositeAction executes its actions in order, stopping at the first
// failure.
type CompositeAction struct {
	Actions []Action
}

func (*CompositeAction) Type() ActionType { return ActionTypeComposite }

func (a *CompositeAction) Execute(viewer Viewer) error {
	for i, action := range a.Actions {
		if err := action.Execute(viewer); err != nil {
			return errors.Wrapf(err, "action %d (%s)", i, action.Type())
		}
	}
	return nil
}

// ChangeSceneAction switches to the scene named SceneName.
type ChangeSceneAction struct {
	SceneName string
}

func NewChangeSceneAction() *ChangeSceneAction {
	return &ChangeSceneAction{}
}

func (*ChangeSceneAction) Type() ActionType { return ActionTypeChangeScene }

func (a *ChangeSceneAction) Execute(viewer Viewer) error {
	if a.SceneName == "" {
		return errors.New("no scene selected to change to")
	}
	return viewer.ChangeScene(a.SceneName)
}

type DisplayHTMLAction struct {
	HTML               string
	LatitudeAdjustment float64
}

func NewDisplayHTMLAction() *DisplayHTMLAction {
	return &DisplayHTMLAction{HTML: "<div></div>"}
}

func (*DisplayHTMLAction) Type() ActionType { return ActionTypeDisplayHTML }

func (a *DisplayHTMLAction) Execute(viewer Viewer) error {
	return viewer.ShowOverlay(Overlay{HTML: a.HTML, LatitudeAdjustment: a.LatitudeAdjustment})
}

// DisplayMarkdownAction renders Markdown to HTML and shows it as an overlay.
type DisplayMarkdownAction struct {
	Markdown           string
	LatitudeAdjustment float64

	html memo[string, htmlResult]
}

type htmlResult struct {
	html string
	err  error
}

func NewDisplayMarkdownAction() *DisplayMarkdownAction {
	return &DisplayMarkdownAction{Markdown: "# Title"}
}

func (*DisplayMarkdownAction) Type() ActionType { return ActionTypeDisplayMarkdown }

// HTML returns the rendered markdown.
func (a *DisplayMarkdownAction) HTML() (string, error) {
	r := a.html.get(a.Markdown, func() htmlResult {
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(a.Markdown), &buf); err != nil {
			return htmlResult{err: errors.Wrap(err, "cannot convert markdown")}
		}
		return htmlResult{html: buf.String()}
	})
	return r.html, r.err
}

func (a *DisplayMarkdownAction) Execute(viewer Viewer) error {
	html, err := a.HTML()
	if err != nil {
		return err
	}
	return viewer.ShowOverlay(Overlay{HTML: html, LatitudeAdjustment: a.LatitudeAdjustment})
}

// ReplayVideoAction seeks to the beginning of the video and plays it.
type ReplayVideoAction struct{}

func (*ReplayVideoAction) Type() ActionType { return ActionTypeReplayVideo }

func (*ReplayVideoAction) Execute(viewer Viewer) error {
	return viewer.ReplayVideo()
}

func (*DoNothingAction) isAction()       {}
func (*CompositeAction) isAction()       {}
func (*ChangeSceneAction) isAction()     {}
func (*DisplayHTMLAction) isAction()     {}
func (*DisplayMarkdownAction) isAction() {}
func (*ReplayVideoAction) isAction()     {}

// NewAction returns an action of the given type with default properties.
func NewAction(actionType ActionType) (Action, error) {
	switch actionType {
	case ActionTypeDoNothing:
		return &DoNothingAction{}, nil
	case ActionTypeComposite:
		return &CompositeAction{}, nil
	case ActionTypeChangeScene:
		return NewChangeSceneAction(), nil
	case ActionTypeDisplayMarkdown:
		return NewDisplayMarkdownAction(), nil
	case ActionTypeDisplayHTML:
		return NewDisplayHTMLAction(), nil
	case ActionTypeReplayVideo:
		return &ReplayVideoAction{}, nil
	default:
		return nil, errors.Errorf("unknown action type: %q", actionType)
	}
}

func (a *DoNothingAction) MarshalJSON() ([]byte, error) {
	return json.Marshal(typeTag{Type: string(a.Type())})
}

func (a *ReplayVideoAction) MarshalJSON() ([]byte, error) {
	return json.Marshal(typeTag{Type: string(a.Type())})
}

func (a *CompositeAction) MarshalJSON() ([]byte, error) {
	actions := a.Actions
	if actions == nil {
		actions = []Action{}
	}
	return json.Marshal(struct {
		Type    ActionType `json:"type"`
		Actions []Action   `json:"actions"`
	}{a.Type(), actions})
}

func (a *CompositeAction) UnmarshalJSON(data []byte) error {
	var raw struct {
		Actions []json.RawMessage `json:"actions"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	actions := make([]Action, 0, len(raw.Actions))
	for i, rawAction := range raw.Actions {
		action, err := UnmarshalAction(rawAction)
		if err != nil {
			return errors.Wrapf(err, "action %d", i)
		}
		actions = append(actions, action)
	}
	a.Actions = actions
	return nil
}

type changeSceneJSON struct {
	Type      ActionType `json:"type"`
	SceneName *string    `json:"sceneName"`
}

func (a *ChangeSceneAction) MarshalJSON() ([]byte, error) {
	out := changeSceneJSON{Type: a.Type()}
	if a.SceneName != "" {
		out.SceneName = &a.SceneName
	}
	return json.Marshal(out)
}

func (a *ChangeSceneAction) UnmarshalJSON(data []byte) error {
	var in changeSceneJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if in.SceneName != nil {
		a.SceneName = *in.SceneName
	}
	return nil
}

type displayHTMLJSON struct {
	Type               ActionType `json:"type"`
	HTML               string     `json:"html"`
	LatitudeAdjustment float64    `json:"latitudeAdjustment"`
}

func (a *DisplayHTMLAction) MarshalJSON() ([]byte, error) {
	return json.Marshal(displayHTMLJSON{a.Type(), a.HTML, a.LatitudeAdjustment})
}

func (a *DisplayHTMLAction) UnmarshalJSON(data []byte) error {
	in := displayHTMLJSON{HTML: a.HTML, LatitudeAdjustment: a.LatitudeAdjustment}
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	a.HTML, a.LatitudeAdjustment = in.HTML, in.LatitudeAdjustment
	return nil
}

type displayMarkdownJSON struct {
	Type               ActionType `json:"type"`
	Markdown           string     `json:"markdown"`
	LatitudeAdjustment float64    `json:"latitudeAdjustment"`
}

func (a *DisplayMarkdownAction) MarshalJSON() ([]byte, error) {
	return json.Marshal(displayMarkdownJSON{a.Type(), a.Markdown, a.LatitudeAdjustment})
}

func (a *DisplayMarkdownAction) UnmarshalJSON(data []byte) error {
	in := displayMarkdownJSON{Markdown: a.Markdown, LatitudeAdjustment: a.LatitudeAdjustment}
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	a.Markdown, a.LatitudeAdjustment = in.Markdown, in.LatitudeAdjustment
	return nil
}

// UnmarshalAction decodes an action, dispatching on its "type" field.
func UnmarshalAction(data []byte) (Action, error) {
	var tag typeTag
	if err := json.Unmarshal(data, &tag); err != nil {
		return nil, errors.Wrap(err, "cannot decode action")
	}
	action, err := NewAction(ActionType(tag.Type))
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, action); err != nil {
		return nil, errors.Wrapf(err, "cannot decode %s action", tag.Type)
	}
	return action, nil
}
