package main

import "bytes"
import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

import "github.com/pwiecz/vr_affordances/lib"

func TestNewOutputSurface(t *testing.T) {
	surface, err := newOutputSurface("out/interaction.PNG", 40, 20)
	require.NoError(t, err)
	assert.IsType(t, rasterOutput{}, surface)
	assert.Equal(t, 40, surface.Width())
	assert.Equal(t, 20, surface.Height())

	surface, err = newOutputSurface("hud.svg", 64, 32)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, surface.write(&buf))
	assert.Contains(t, buf.String(), "<svg")

	_, err = newOutputSurface("hud.gif", 64, 32)
	assert.Error(t, err)
}

func TestViewCursor(t *testing.T) {
	assert.Equal(t, lib.UVPoint{U: 0.5, V: 0.5}, viewCursor(0, 0))
	p := viewCursor(-270, 0)
	assert.InDelta(t, 0.75, p.U, 1e-12)
	assert.InDelta(t, 0.5, p.V, 1e-12)
}

func TestPrintingViewer(t *testing.T) {
	var buf bytes.Buffer
	viewer := printingViewer{&buf}
	require.NoError(t, (&lib.ChangeSceneAction{SceneName: "Hall"}).Execute(viewer))
	require.NoError(t, (&lib.ReplayVideoAction{}).Execute(viewer))
	assert.Equal(t, "change scene: Hall\nreplay video\n", buf.String())
}
