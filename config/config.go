package config

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Database struct {
		URI string `yaml:"uri"`
	} `yaml:"database"`

	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	JWT struct {
		Secret string `yaml:"secret"`
	} `yaml:"jwt"`

	Sweeps struct {
		StreakBreakSeconds         int `yaml:"streakBreakSeconds"`
		ChallengeResolutionSeconds int `yaml:"challengeResolutionSeconds"`
		NotificationSeconds        int `yaml:"notificationSeconds"`
	} `yaml:"sweeps"`
}

// LoadConfig reads the configuration file
func LoadConfig(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	// Sweep intervals default to one minute so a blank config still runs.
	if cfg.Sweeps.StreakBreakSeconds <= 0 {
		cfg.Sweeps.StreakBreakSeconds = 60
	}
	if cfg.Sweeps.ChallengeResolutionSeconds <= 0 {
		cfg.Sweeps.ChallengeResolutionSeconds = 60
	}
	if cfg.Sweeps.NotificationSeconds <= 0 {
		cfg.Sweeps.NotificationSeconds = 120
	}

	return &cfg, nil
}
