package configuration

import "os"
import "path/filepath"
import "strings"

import "github.com/pkg/errors"
import "github.com/spf13/viper"

import "github.com/pwiecz/vr_affordances/lib"

const EnvPrefix = "VR_AFFORDANCES"

type Colors struct {
	Primary   string `mapstructure:"primary"`
	Secondary string `mapstructure:"secondary"`
}

type Configuration struct {
	ProjectsDirectory string  `mapstructure:"projects_directory"`
	Debug             bool    `mapstructure:"debug"`
	CutThreshold      float64 `mapstructure:"cut_threshold"`
	SampleRate        int     `mapstructure:"sample_rate"`
	// InteractionResolution is the width of the interaction layer in
	// pixels, its height is half of it.
	InteractionResolution int    `mapstructure:"interaction_resolution"`
	HudWidth              int    `mapstructure:"hud_width"`
	HudHeight             int    `mapstructure:"hud_height"`
	Colors                Colors `mapstructure:"colors"`
	GeometryCacheSize     int    `mapstructure:"geometry_cache_size"`
}

func ConfigDir() (string, error) {
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userConfigDir, "vr_affordances"), nil
}
func ConfigPath() (string, error) {
	configDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// NewViper returns a viper instance with the default values set and
// environment overrides (VR_AFFORDANCES_<KEY>) enabled.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("projects_directory", "")
	v.SetDefault("debug", false)
	v.SetDefault("cut_threshold", lib.DefaultCutThreshold)
	v.SetDefault("sample_rate", lib.DefaultSampleRate)
	v.SetDefault("interaction_resolution", 4096)
	v.SetDefault("hud_width", 1280)
	v.SetDefault("hud_height", 720)
	v.SetDefault("colors.primary", "#3f51b5")
	v.SetDefault("colors.secondary", "#ff4081")
	v.SetDefault("geometry_cache_size", lib.DefaultGeometryCacheSize)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfiguration reads the configuration from configFile, or from
// ConfigPath() if configFile is empty. A missing default configuration file
// is not an error.
func LoadConfiguration(v *viper.Viper, configFile string) (*Configuration, error) {
	if configFile == "" {
		configPath, err := ConfigPath()
		if err == nil {
			if _, err := os.Stat(configPath); err == nil {
				configFile = configPath
			}
		}
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "cannot read configuration %s", configFile)
		}
	}
	conf := &Configuration{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, errors.Wrap(err, "cannot decode configuration")
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (c *Configuration) Validate() error {
	if c.CutThreshold <= 0 || c.CutThreshold >= 1 {
		return errors.Errorf("cut_threshold must be in (0,1), got %v", c.CutThreshold)
	}
	if c.SampleRate <= 0 {
		return errors.Errorf("sample_rate must be positive, got %d", c.SampleRate)
	}
	if c.InteractionResolution < 2 || c.HudWidth <= 0 || c.HudHeight <= 0 {
		return errors.New("layer sizes must be positive")
	}
	if c.GeometryCacheSize < 0 {
		return errors.Errorf("geometry_cache_size must not be negative, got %d", c.GeometryCacheSize)
	}
	return nil
}

// ProjectPath resolves a relative project path against ProjectsDirectory,
// unless the path exists relative to the working directory.
func (c *Configuration) ProjectPath(path string) string {
	if c.ProjectsDirectory == "" || filepath.IsAbs(path) {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return filepath.Join(c.ProjectsDirectory, path)
}

// SaveConfiguration writes the configuration to ConfigPath().
func SaveConfiguration(config *Configuration) error {
	configDir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return errors.Wrap(err, "cannot create configuration directory")
	}
	configPath, err := ConfigPath()
	if err != nil {
		return err
	}
	return WriteConfiguration(config, configPath)
}

// WriteConfiguration writes the configuration as YAML to path.
func WriteConfiguration(config *Configuration, path string) error {
	v := viper.New()
	v.Set("projects_directory", config.ProjectsDirectory)
	v.Set("debug", config.Debug)
	v.Set("cut_threshold", config.CutThreshold)
	v.Set("sample_rate", config.SampleRate)
	v.Set("interaction_resolution", config.InteractionResolution)
	v.Set("hud_width", config.HudWidth)
	v.Set("hud_height", config.HudHeight)
	v.Set("colors.primary", config.Colors.Primary)
	v.Set("colors.secondary", config.Colors.Secondary)
	v.Set("geometry_cache_size", config.GeometryCacheSize)
	return errors.Wrap(v.WriteConfigAs(path), "cannot write configuration")
}
