package main

import "fmt"

import "github.com/pkg/errors"
import "github.com/spf13/cobra"

import "github.com/pwiecz/vr_affordances/project"

var validateCmd = &cobra.Command{
	Use:   "validate <project_file>...",
	Short: "Validates project files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		var failed bool
		for _, path := range args {
			p, err := project.Load(config.ProjectPath(path))
			if err != nil {
				failed = true
				fmt.Fprintf(w, "%s: %v\n", path, err)
				continue
			}
			fmt.Fprintf(w, "%s: %d scenes, %d affordances\n", path, len(p.Scenes), len(p.Affordances))
		}
		if failed {
			return errors.New("some projects are invalid")
		}
		return nil
	},
}
