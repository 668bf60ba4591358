package main

import "fmt"

import "github.com/spf13/cobra"

import "github.com/pwiecz/vr_affordances/configuration"

var configOutput string

var configCmd = &cobra.Command{
	Use:   "save-config",
	Short: "Saves the effective configuration",
	Long: "Saves the configuration resulting from defaults, the configuration file, " +
		"environment variables and flags, by default to the user configuration directory.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if configOutput == "" {
			if err := configuration.SaveConfiguration(config); err != nil {
				return err
			}
			path, err := configuration.ConfigPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Saved", path)
			return nil
		}
		if err := configuration.WriteConfiguration(config, configOutput); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved", configOutput)
		return nil
	},
}

func init() {
	configCmd.Flags().StringVarP(&configOutput, "output", "o", "", "Output file instead of the user configuration file.")
}
