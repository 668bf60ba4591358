package main

import "io"
import "os"
import "path/filepath"
import "strings"

import "github.com/golang/glog"
import "github.com/pkg/errors"
import "github.com/prometheus/client_golang/prometheus"
import "github.com/spf13/cobra"

import "github.com/pwiecz/vr_affordances/affordance"
import "github.com/pwiecz/vr_affordances/canvas"
import "github.com/pwiecz/vr_affordances/lib"

// interactionRadius is the radius of the interaction sphere, within the
// far plane of the camera.
const interactionRadius = 1000

type renderArgs struct {
	sceneArgs
	yaw, pitch     float64
	fov            float64
	interactionOut string
	hudOut         string
	metricsOut     string
}

var renderFlags renderArgs

var renderCmd = &cobra.Command{
	Use:   "render <project_file>",
	Short: "Renders the affordances of a scene for a view direction",
	Long: "Renders the enabled affordances of a scene as seen when looking in the " +
		"direction given by yaw and pitch (degrees). The interaction layer and the HUD " +
		"are written as PNG or SVG depending on the output file extension.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(args[0], &renderFlags)
	},
}

func init() {
	renderFlags.register(renderCmd)
	renderCmd.Flags().Float64Var(&renderFlags.yaw, "yaw", 0, "Longitude of the view direction in degrees.")
	renderCmd.Flags().Float64Var(&renderFlags.pitch, "pitch", 0, "Latitude of the view direction in degrees.")
	renderCmd.Flags().Float64Var(&renderFlags.fov, "fov", 75, "Vertical field of view in degrees.")
	renderCmd.Flags().StringVar(&renderFlags.interactionOut, "interaction-out", "interaction.png", "Output file of the interaction layer.")
	renderCmd.Flags().StringVar(&renderFlags.hudOut, "hud-out", "hud.png", "Output file of the HUD.")
	renderCmd.Flags().StringVar(&renderFlags.metricsOut, "metrics-out", "", "If set, write rendering metrics in the text exposition format to this file.")
}

// outputSurface is a surface that can be written to a file.
type outputSurface interface {
	canvas.Surface
	write(w io.Writer) error
}

type rasterOutput struct{ *canvas.Raster }

func (r rasterOutput) write(w io.Writer) error { return r.EncodePNG(w) }

type svgOutput struct{ *canvas.SVG }

func (s svgOutput) write(w io.Writer) error {
	_, err := s.WriteTo(w)
	return err
}

func newOutputSurface(path string, width, height int) (outputSurface, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return rasterOutput{canvas.NewRaster(width, height)}, nil
	case ".svg":
		return svgOutput{canvas.NewSVG(width, height)}, nil
	default:
		return nil, errors.Errorf("unsupported output format of %s", path)
	}
}

func writeSurface(path string, surface outputSurface) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "cannot create output file")
	}
	defer file.Close()
	if err := surface.write(file); err != nil {
		return errors.Wrapf(err, "cannot write %s", path)
	}
	return file.Close()
}

func parseColors() (affordance.Colors, error) {
	primary, err := canvas.ParseColor(config.Colors.Primary)
	if err != nil {
		return affordance.Colors{}, errors.Wrap(err, "colors.primary")
	}
	secondary, err := canvas.ParseColor(config.Colors.Secondary)
	if err != nil {
		return affordance.Colors{}, errors.Wrap(err, "colors.secondary")
	}
	return affordance.Colors{Primary: primary, Secondary: secondary}, nil
}

// viewCursor returns the UV point in the center of the view.
func viewCursor(yaw, pitch float64) lib.UVPoint {
	return lib.LatLonToUV(lib.LatLon{Lat: pitch, Lon: yaw}).Normalized()
}

func runRender(path string, args *renderArgs) error {
	p, scene, err := args.load(path)
	if err != nil {
		return err
	}
	colors, err := parseColors()
	if err != nil {
		return err
	}
	interaction, err := newOutputSurface(args.interactionOut, config.InteractionResolution, config.InteractionResolution/2)
	if err != nil {
		return err
	}
	hud, err := newOutputSurface(args.hudOut, config.HudWidth, config.HudHeight)
	if err != nil {
		return err
	}

	viewport := p.ViewportSettings()
	cursor := viewCursor(args.yaw, args.pitch)
	camera := lib.NewPerspectiveCamera(args.fov, lib.Aspect(float64(config.HudWidth), float64(config.HudHeight)), 0.1, 2000)
	camera.LookAtUV(cursor)

	layers := affordance.Layers{
		Interaction: affordance.SphereLayer{Surface: interaction, Radius: interactionRadius},
		HUD:         hud,
	}
	var cache *lib.GeometryCache
	if config.GeometryCacheSize > 0 {
		cache = lib.NewGeometryCache(config.GeometryCacheSize)
	}
	renderer := affordance.NewRenderer(p.Affordances, layers, cache)
	renderer.RenderFrame(scene.Buttons, affordance.Frame{
		Colors:      colors,
		Cursor:      cursor,
		Camera:      camera,
		FOV:         lib.DegToRad(viewport.EffectiveFOV(args.fov)),
		Viewport:    viewport,
		CurrentTime: args.time,
	})
	glog.V(1).Infof("Rendered scene %q at u=%.4f v=%.4f", scene.Name, cursor.U, cursor.V)

	if err := writeSurface(args.interactionOut, interaction); err != nil {
		return err
	}
	if err := writeSurface(args.hudOut, hud); err != nil {
		return err
	}
	if args.metricsOut != "" {
		if err := prometheus.WriteToTextfile(args.metricsOut, registry); err != nil {
			return errors.Wrap(err, "cannot write metrics")
		}
	}
	return nil
}
