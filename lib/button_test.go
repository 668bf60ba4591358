package lib

import "encoding/json"
import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

func TestNewButton(t *testing.T) {
	b1 := NewButton()
	b2 := NewButton()
	assert.NotEqual(t, b1.ID(), b2.ID())
	assert.NotEqual(t, b1.Name, b2.Name)
	require.Len(t, b1.Shapes, 1)
	assert.Equal(t, ShapeTypeCircle, b1.Shapes[0].Type())
	assert.Equal(t, ActionTypeChangeScene, b1.Action.Type())
}

func TestButtonCenter(t *testing.T) {
	button := NewButton()
	circle := NewCircle()
	circle.CenterX, circle.CenterY = 0.2, 0.4
	rect := NewRectangle()
	rect.CenterX, rect.CenterY = 0.4, 0.6
	rect.ActivitySpans = []ActivitySpan{{From: 10, To: 20}}
	button.Shapes = []Shape{circle, rect}

	center, ok := button.Center(15)
	require.True(t, ok)
	assert.InDelta(t, 0.3, center.U, 1e-12)
	assert.InDelta(t, 0.5, center.V, 1e-12)

	center, ok = button.Center(0)
	require.True(t, ok)
	assert.Equal(t, UVPoint{U: 0.2, V: 0.4}, center)

	circle.ActivitySpans = []ActivitySpan{{From: 100, To: 200}}
	_, ok = button.Center(0)
	assert.False(t, ok)
	assert.Empty(t, button.ActiveShapes(0))
}

func TestButtonWithoutShapesIsNeverHit(t *testing.T) {
	button := NewButton()
	button.Shapes = nil
	assert.False(t, button.Hits(UVPoint{U: 0.5, V: 0.5}, 0))
}

func TestUnmarshalButton(t *testing.T) {
	button, err := UnmarshalButton([]byte(`{
		"name": "Door",
		"shapes": [{"type": "rectangle", "centerX": 0.25}, {"type": "circle"}],
		"action": {"type": "change-scene", "sceneName": "Garden"}}`))
	require.NoError(t, err)
	assert.Equal(t, "Door", button.Name)
	require.Len(t, button.Shapes, 2)
	assert.Equal(t, 0.25, button.Shapes[0].Base().CenterX)
	assert.Equal(t, &ChangeSceneAction{SceneName: "Garden"}, button.Action)
}

func TestUnmarshalButtonKeepsDefaults(t *testing.T) {
	button, err := UnmarshalButton([]byte(`{"name": "Plain"}`))
	require.NoError(t, err)
	assert.Len(t, button.Shapes, 1)
	assert.Equal(t, ActionTypeChangeScene, button.Action.Type())

	button, err = UnmarshalButton([]byte(`{"action": null}`))
	require.NoError(t, err)
	assert.NotEmpty(t, button.Name)
	assert.NotNil(t, button.Action)
}

func TestUnmarshalButtonErrors(t *testing.T) {
	_, err := UnmarshalButton([]byte(`{"shapes": [{"type": "circle"}, {"type": "hexagon"}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shape 1")
	assert.Contains(t, err.Error(), "hexagon")

	_, err = UnmarshalButton([]byte(`{"action": {"type": "teleport"}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "teleport")
}

func TestMarshalButton(t *testing.T) {
	button := NewButton()
	button.Name = "Exit"
	button.Action = &ReplayVideoAction{}
	data, err := json.Marshal(button)
	require.NoError(t, err)

	decoded, err := UnmarshalButton(data)
	require.NoError(t, err)
	assert.Equal(t, "Exit", decoded.Name)
	assert.Equal(t, ActionTypeReplayVideo, decoded.Action.Type())
	require.Len(t, decoded.Shapes, 1)
	assert.Equal(t, button.Shapes[0].(*Circle).Radius, decoded.Shapes[0].(*Circle).Radius)
	assert.NotEqual(t, button.ID(), decoded.ID())
}
