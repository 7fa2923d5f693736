package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Overrides mirrors the tunable globals as sections of an override file.
type Overrides struct {
	Game      *Config          `mapstructure:"game"`
	Collision *CollisionConfig `mapstructure:"collision"`
	Player    *PlayerConfig    `mapstructure:"player"`
	Crate     *CrateConfig     `mapstructure:"crate"`
	Platform  *PlatformConfig  `mapstructure:"platform"`
	Camera    *CameraConfig    `mapstructure:"camera"`
	Debug     *DebugConfig     `mapstructure:"debug"`
}

// LoadOverrides reads a YAML, JSON or TOML file and applies the keys it
// sets on top of the current globals. Keys it leaves out keep their values.
// The merged result must pass Validate.
func LoadOverrides(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("hitgrid")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	o := Overrides{
		Game:      C,
		Collision: &Collision,
		Player:    &Player,
		Crate:     &Crate,
		Platform:  &Platform,
		Camera:    &Camera,
		Debug:     &Debug,
	}
	if err := v.Unmarshal(&o); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	return Validate()
}
