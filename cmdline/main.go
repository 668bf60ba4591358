package main

import goflag "flag"
import "os"
import "strings"

import "github.com/golang/glog"
import "github.com/prometheus/client_golang/prometheus"
import "github.com/spf13/cobra"
import "github.com/spf13/pflag"
import "github.com/spf13/viper"

import "github.com/pwiecz/vr_affordances/affordance"
import "github.com/pwiecz/vr_affordances/configuration"
import "github.com/pwiecz/vr_affordances/lib"

var conf = configuration.NewViper()
var config *configuration.Configuration
var registry = prometheus.NewRegistry()

var rootCmd = &cobra.Command{
	Use:   "vr_affordances",
	Short: "Inspects and renders interactive 360° video projects",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		config, err = configuration.LoadConfiguration(conf, conf.GetString("config"))
		if err != nil {
			return err
		}
		lib.Debug = config.Debug
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden by environment variables and flags.")
	rootCmd.PersistentFlags().Bool("debug", false, "Log recoverable rendering problems.")
	bindFlags(conf, rootCmd.PersistentFlags(), "config", "debug")

	pflag.CommandLine.AddGoFlagSet(goflag.CommandLine)

	rootCmd.AddCommand(renderCmd, hitCmd, geometryCmd, validateCmd, configCmd)
}

// bindFlags binds the named flags to the configuration keys of the same
// names with dashes replaced by underscores.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, names ...string) {
	for _, name := range names {
		key := strings.ReplaceAll(name, "-", "_")
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			glog.Fatalf("Cannot bind flag %s: %v", name, err)
		}
	}
}

func main() {
	// glog flags are parsed by cobra.
	if err := goflag.CommandLine.Parse(nil); err != nil {
		glog.Fatal(err)
	}
	if err := affordance.RegisterMetrics(registry); err != nil {
		glog.Fatalf("Cannot register metrics: %v", err)
	}
	defer glog.Flush()
	if err := rootCmd.Execute(); err != nil {
		glog.Flush()
		os.Exit(1)
	}
}
