package main

import "io"

import "github.com/pkg/errors"
import "github.com/spf13/cobra"

import "github.com/pwiecz/vr_affordances/lib"

type geometryArgs struct {
	sceneArgs
	button string
}

var geometryFlags geometryArgs

var geometryCmd = &cobra.Command{
	Use:   "geometry <project_file>",
	Short: "Prints the planar outlines of a button as GeoJSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGeometry(cmd.OutOrStdout(), args[0], &geometryFlags)
	},
}

func init() {
	geometryFlags.register(geometryCmd)
	geometryCmd.Flags().StringVar(&geometryFlags.button, "button", "", "Name of the button.")
	if err := geometryCmd.MarkFlagRequired("button"); err != nil {
		panic(err)
	}
}

func runGeometry(w io.Writer, path string, args *geometryArgs) error {
	_, scene, err := args.load(path)
	if err != nil {
		return err
	}
	button, ok := scene.Button(args.button)
	if !ok {
		return errors.Errorf("no button named %q in scene %q", args.button, scene.Name)
	}
	data, err := lib.ButtonGeoJSON(button, args.time)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
