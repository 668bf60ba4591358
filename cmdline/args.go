package main

import "fmt"
import "io"

import "github.com/pkg/errors"
import "github.com/spf13/cobra"

import "github.com/pwiecz/vr_affordances/affordance"
import "github.com/pwiecz/vr_affordances/lib"
import "github.com/pwiecz/vr_affordances/project"

// sceneArgs are the flags selecting a scene and a moment in it.
type sceneArgs struct {
	scene string
	time  float64
}

func (a *sceneArgs) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&a.scene, "scene", "", "Name of the scene, the entry point if empty.")
	cmd.Flags().Float64Var(&a.time, "time", 0, "Time in the video in seconds.")
}

// load loads the project file and selects the scene.
func (a *sceneArgs) load(path string) (*project.Project, *project.Scene, error) {
	p, err := project.Load(config.ProjectPath(path))
	if err != nil {
		return nil, nil, err
	}
	applyConfig(p)
	if a.scene == "" {
		scene, ok := p.EntryPoint()
		if !ok {
			return nil, nil, errors.New("project has no scenes")
		}
		return p, scene, nil
	}
	scene, ok := p.Scene(a.scene)
	if !ok {
		return nil, nil, errors.Errorf("no scene named %q", a.scene)
	}
	return p, scene, nil
}

// applyConfig applies the configured seam threshold to the shapes and
// affordances of the project, and the configured sample rate to shapes
// without one.
func applyConfig(p *project.Project) {
	for _, scene := range p.Scenes {
		for _, b := range scene.Buttons {
			for _, s := range b.Shapes {
				base := s.Base()
				base.CutThreshold = config.CutThreshold
				if base.SampleRate <= 0 {
					base.SampleRate = config.SampleRate
				}
			}
		}
	}
	for _, a := range p.Affordances {
		switch a := a.(type) {
		case *affordance.Line:
			a.CutThreshold = config.CutThreshold
		case *affordance.Halo:
			a.CutThreshold = config.CutThreshold
		case *affordance.EdgeIndicator:
			a.CutThreshold = config.CutThreshold
		}
	}
}

// printingViewer reports executed actions.
type printingViewer struct {
	w io.Writer
}

func (v printingViewer) ChangeScene(name string) error {
	_, err := fmt.Fprintf(v.w, "change scene: %s\n", name)
	return err
}

func (v printingViewer) ShowOverlay(overlay lib.Overlay) error {
	_, err := fmt.Fprintf(v.w, "show overlay (latitude adjustment %g):\n%s\n", overlay.LatitudeAdjustment, overlay.HTML)
	return err
}

func (v printingViewer) ReplayVideo() error {
	_, err := fmt.Fprintln(v.w, "replay video")
	return err
}
