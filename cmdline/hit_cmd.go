package main

import "fmt"
import "io"

import "github.com/spf13/cobra"

import "github.com/pwiecz/vr_affordances/lib"

type hitArgs struct {
	sceneArgs
	u, v  float64
	click bool
}

var hitFlags hitArgs

var hitCmd = &cobra.Command{
	Use:   "hit <project_file>",
	Short: "Lists the buttons of a scene under a UV point",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHit(cmd.OutOrStdout(), args[0], &hitFlags)
	},
}

func init() {
	hitFlags.register(hitCmd)
	hitCmd.Flags().Float64Var(&hitFlags.u, "u", 0.5, "U coordinate of the point.")
	hitCmd.Flags().Float64Var(&hitFlags.v, "v", 0.5, "V coordinate of the point.")
	hitCmd.Flags().BoolVar(&hitFlags.click, "click", false, "Execute the action of the first button hit.")
}

func runHit(w io.Writer, path string, args *hitArgs) error {
	_, scene, err := args.load(path)
	if err != nil {
		return err
	}
	point := lib.UVPoint{U: args.u, V: args.v}.Normalized()
	for _, button := range scene.ButtonsAt(point, args.time) {
		fmt.Fprintln(w, button.Name)
	}
	if !args.click {
		return nil
	}
	_, err = scene.Click(point, args.time, printingViewer{w})
	return err
}
