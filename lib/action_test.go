package lib

import "encoding/json"
import "testing"

import "github.com/pkg/errors"
import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

type recordingViewer struct {
	scenes   []string
	overlays []Overlay
	replays  int
	err      error
}

func (v *recordingViewer) ChangeScene(name string) error {
	v.scenes = append(v.scenes, name)
	return v.err
}

func (v *recordingViewer) ShowOverlay(overlay Overlay) error {
	v.overlays = append(v.overlays, overlay)
	return v.err
}

func (v *recordingViewer) ReplayVideo() error {
	v.replays++
	return v.err
}

func TestExecuteActions(t *testing.T) {
	viewer := &recordingViewer{}
	require.NoError(t, (&DoNothingAction{}).Execute(viewer))
	require.NoError(t, (&ChangeSceneAction{SceneName: "Lobby"}).Execute(viewer))
	require.NoError(t, (&DisplayHTMLAction{HTML: "<p>hi</p>", LatitudeAdjustment: 5}).Execute(viewer))
	require.NoError(t, (&ReplayVideoAction{}).Execute(viewer))

	assert.Equal(t, []string{"Lobby"}, viewer.scenes)
	assert.Equal(t, []Overlay{{HTML: "<p>hi</p>", LatitudeAdjustment: 5}}, viewer.overlays)
	assert.Equal(t, 1, viewer.replays)
}

func TestChangeSceneWithoutScene(t *testing.T) {
	viewer := &recordingViewer{}
	assert.Error(t, NewChangeSceneAction().Execute(viewer))
	assert.Empty(t, viewer.scenes)
}

func TestDisplayMarkdown(t *testing.T) {
	action := NewDisplayMarkdownAction()
	html, err := action.HTML()
	require.NoError(t, err)
	assert.Equal(t, "<h1>Title</h1>\n", html)

	action.Markdown = "Some *text*"
	action.LatitudeAdjustment = -3
	viewer := &recordingViewer{}
	require.NoError(t, action.Execute(viewer))
	require.Len(t, viewer.overlays, 1)
	assert.Equal(t, "<p>Some <em>text</em></p>\n", viewer.overlays[0].HTML)
	assert.Equal(t, -3., viewer.overlays[0].LatitudeAdjustment)
}

func TestCompositeActionStopsAtFirstError(t *testing.T) {
	composite := &CompositeAction{Actions: []Action{
		&ReplayVideoAction{},
		&ChangeSceneAction{},
		&ChangeSceneAction{SceneName: "Next"},
	}}
	viewer := &recordingViewer{}
	err := composite.Execute(viewer)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "action 1 (change-scene)")
	assert.Equal(t, 1, viewer.replays)
	assert.Empty(t, viewer.scenes)

	failing := &recordingViewer{err: errors.New("no player")}
	err = (&CompositeAction{Actions: []Action{&ReplayVideoAction{}}}).Execute(failing)
	assert.EqualError(t, err, "action 0 (replay-video): no player")
}

func TestUnmarshalAction(t *testing.T) {
	action, err := UnmarshalAction([]byte(`{"type":"composite","actions":[
		{"type":"change-scene","sceneName":"Kitchen"},
		{"type":"display-html"},
		{"type":"display-markdown","markdown":"*x*","latitudeAdjustment":10},
		{"type":"replay-video"},
		{"type":"do-nothing"}]}`))
	require.NoError(t, err)
	composite, ok := action.(*CompositeAction)
	require.True(t, ok)
	require.Len(t, composite.Actions, 5)
	assert.Equal(t, &ChangeSceneAction{SceneName: "Kitchen"}, composite.Actions[0])
	assert.Equal(t, NewDisplayHTMLAction(), composite.Actions[1])
	markdown := composite.Actions[2].(*DisplayMarkdownAction)
	assert.Equal(t, "*x*", markdown.Markdown)
	assert.Equal(t, 10., markdown.LatitudeAdjustment)
	assert.Equal(t, ActionTypeReplayVideo, composite.Actions[3].Type())
	assert.Equal(t, ActionTypeDoNothing, composite.Actions[4].Type())
}

func TestUnmarshalActionUnknownType(t *testing.T) {
	_, err := UnmarshalAction([]byte(`{"type":"explode"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"explode"`)

	_, err = UnmarshalAction([]byte(`{"type":"composite","actions":[{"type":"explode"}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "action 0")
}

func TestMarshalChangeSceneAction(t *testing.T) {
	data, err := json.Marshal(NewChangeSceneAction())
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"change-scene","sceneName":null}`, string(data))

	data, err = json.Marshal(&ChangeSceneAction{SceneName: "Hall"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"change-scene","sceneName":"Hall"}`, string(data))
}

func TestMarshalCompositeAction(t *testing.T) {
	data, err := json.Marshal(&CompositeAction{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"composite","actions":[]}`, string(data))

	original := &CompositeAction{Actions: []Action{
		&DisplayHTMLAction{HTML: "<b>x</b>", LatitudeAdjustment: 2},
		&DoNothingAction{},
	}}
	data, err = json.Marshal(original)
	require.NoError(t, err)
	decoded, err := UnmarshalAction(data)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}
