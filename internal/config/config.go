// Package config loads settings with viper: defaults, an optional config
// file and TACTICS_* environment overrides.
package config

import (
	"fmt"
	"strings"
	"time"

	"squad-tactics/internal/rules"

	"github.com/spf13/viper"
)

// ArchiveConfig controls the mission debrief store.
type ArchiveConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// ServerConfig controls the SSH host.
type ServerConfig struct {
	Port    int    `mapstructure:"port"`
	HostKey string `mapstructure:"hostKey"`
}

// RulesConfig mirrors rules.Rules for decoding.
type RulesConfig struct {
	TUPerTile             int     `mapstructure:"tuPerTile"`
	VisionRange           int     `mapstructure:"visionRange"`
	RayStepDegrees        float64 `mapstructure:"rayStepDegrees"`
	ReloadCostPercent     int     `mapstructure:"reloadCostPercent"`
	RangePenaltyFreeTiles int     `mapstructure:"rangePenaltyFreeTiles"`
	RangePenaltyPerTile   float64 `mapstructure:"rangePenaltyPerTile"`
	AlienReactionScale    float64 `mapstructure:"alienReactionScale"`
	SoldierReactionScale  float64 `mapstructure:"soldierReactionScale"`
	AlienSnapMultiplier   float64 `mapstructure:"alienSnapMultiplier"`
	SoldierSnapFactor     float64 `mapstructure:"soldierSnapFactor"`
	AlienMinReactionTU    int     `mapstructure:"alienMinReactionTU"`
	SoldierMinReactionTU  int     `mapstructure:"soldierMinReactionTU"`
}

// Config is the decoded configuration.
type Config struct {
	LogLevel string        `mapstructure:"logLevel"`
	LogFile  string        `mapstructure:"logFile"`
	Graylog  string        `mapstructure:"graylog"`
	Seed     int64         `mapstructure:"seed"`
	Scenario string        `mapstructure:"scenario"`
	Archive  ArchiveConfig `mapstructure:"archive"`
	Server   ServerConfig  `mapstructure:"server"`
	RuleSet  RulesConfig   `mapstructure:"rules"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "")
	v.SetDefault("graylog", "")
	v.SetDefault("seed", 0)
	v.SetDefault("scenario", "")

	v.SetDefault("archive.enabled", true)
	v.SetDefault("archive.path", "")

	v.SetDefault("server.port", 2222)
	v.SetDefault("server.hostKey", "host_key")

	d := rules.Default()
	v.SetDefault("rules.tuPerTile", d.TUPerTile)
	v.SetDefault("rules.visionRange", d.VisionRange)
	v.SetDefault("rules.rayStepDegrees", d.RayStepDegrees)
	v.SetDefault("rules.reloadCostPercent", d.ReloadCostPercent)
	v.SetDefault("rules.rangePenaltyFreeTiles", d.RangePenaltyFreeTiles)
	v.SetDefault("rules.rangePenaltyPerTile", d.RangePenaltyPerTile)
	v.SetDefault("rules.alienReactionScale", d.AlienReactionScale)
	v.SetDefault("rules.soldierReactionScale", d.SoldierReactionScale)
	v.SetDefault("rules.alienSnapMultiplier", d.AlienSnapMultiplier)
	v.SetDefault("rules.soldierSnapFactor", d.SoldierSnapFactor)
	v.SetDefault("rules.alienMinReactionTU", d.AlienMinReactionTU)
	v.SetDefault("rules.soldierMinReactionTU", d.SoldierMinReactionTU)
}

// Load reads configuration. An empty path uses defaults and the
// environment only; otherwise the file must exist and its extension picks
// the format. Environment variables such as TACTICS_SEED or
// TACTICS_RULES_VISIONRANGE override both.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("tactics")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if _, err := c.Rules(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Rules converts the rules section and validates it.
func (c Config) Rules() (rules.Rules, error) {
	r := rules.Rules(c.RuleSet)
	if err := r.Validate(); err != nil {
		return rules.Rules{}, fmt.Errorf("rules: %w", err)
	}
	return r, nil
}

// MissionSeed returns Seed, or a time-based seed when Seed is 0.
func (c Config) MissionSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
