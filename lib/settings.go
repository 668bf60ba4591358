package lib

import "encoding/json"

import "github.com/pkg/errors"

// SettingsType is the discriminator of persisted project settings.
type SettingsType string

const (
	SettingsTypeViewport SettingsType = "viewport"
	SettingsTypeHTML     SettingsType = "html"
)

// Settings is a group of project wide settings. It is implemented by
// *ViewportSettings and *HTMLSettings.
type Settings interface {
	Type() SettingsType
	Name() string

	isSettings()
}

type HudShift struct {
	// X is the shift on the X axis as fraction of the width.
	X float64 `json:"x"`
	// Y is the shift on the Y axis as fraction of the width.
	Y float64 `json:"y"`
}

type ViewportSettings struct {
	ShowHud         bool `json:"showHud"`
	IsViewportRound bool `json:"isViewportRound"`
	// EffectiveFov is the field of view in degrees actually visible on the
	// device, -1 if it equals the rendered one.
	EffectiveFov      float64  `json:"effectiveFov"`
	RemoveBrowserView bool     `json:"removeBrowserView"`
	ShiftHud          bool     `json:"shiftHud"`
	ManualHudShift    HudShift `json:"manualHudShift"`
}

func NewViewportSettings() *ViewportSettings {
	return &ViewportSettings{ShowHud: true, IsViewportRound: true, EffectiveFov: -1}
}

func (*ViewportSettings) Type() SettingsType { return SettingsTypeViewport }
func (*ViewportSettings) Name() string       { return "Viewport" }

// EffectiveFOV returns the field of view that should be used for hit testing
// and affordances given the rendered one.
func (s *ViewportSettings) EffectiveFOV(fov float64) float64 {
	if s == nil || s.EffectiveFov <= 0 {
		return fov
	}
	return s.EffectiveFov
}

func (s *ViewportSettings) MarshalJSON() ([]byte, error) {
	type plainViewport ViewportSettings
	return json.Marshal(struct {
		Type SettingsType `json:"type"`
		*plainViewport
	}{SettingsTypeViewport, (*plainViewport)(s)})
}

const DefaultCSS = `.root
{
	background: #333;
	color: #EEE;
	width: 100%;
	height: 100%;
	position: absolute;
	padding: 5px;
}`

// HTMLSettings pertain to the HTML displayed by the display-html and
// display-markdown actions.
type HTMLSettings struct {
	// CSS is supplied to all messages. ".root" matches the element around
	// the message contents.
	CSS string `json:"css"`
}

func NewHTMLSettings() *HTMLSettings {
	return &HTMLSettings{CSS: DefaultCSS}
}

func (*HTMLSettings) Type() SettingsType { return SettingsTypeHTML }
func (*HTMLSettings) Name() string       { return "HTML" }

func (s *HTMLSettings) MarshalJSON() ([]byte, error) {
	type plainHTML HTMLSettings
	return json.Marshal(struct {
		Type SettingsType `json:"type"`
		*plainHTML
	}{SettingsTypeHTML, (*plainHTML)(s)})
}

func (*ViewportSettings) isSettings() {}
func (*HTMLSettings) isSettings()     {}

// NewSettings returns settings of the given type with default values.
func NewSettings(settingsType SettingsType) (Settings, error) {
	switch settingsType {
	case SettingsTypeViewport:
		return NewViewportSettings(), nil
	case SettingsTypeHTML:
		return NewHTMLSettings(), nil
	default:
		return nil, errors.Errorf("unknown settings type: %q", settingsType)
	}
}

// UnmarshalSettings decodes settings, dispatching on their "type" field.
func UnmarshalSettings(data []byte) (Settings, error) {
	var tag typeTag
	if err := json.Unmarshal(data, &tag); err != nil {
		return nil, errors.Wrap(err, "cannot decode settings")
	}
	settings, err := NewSettings(SettingsType(tag.Type))
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, errors.Wrapf(err, "cannot decode %s settings", tag.Type)
	}
	return settings, nil
}
