package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the defaults a run starts from before flags are applied.
type Config struct {
	ProcRoot           string `yaml:"proc_root"`
	SkipUnreadable     bool   `yaml:"skip_unreadable"`
	InheritThreadNames bool   `yaml:"inherit_thread_names"`
	PruneKernelOrphans bool   `yaml:"prune_kernel_orphans"`
	ShowPIDs           bool   `yaml:"show_pids"`
	Color              bool   `yaml:"color"`
}

func Default() *Config {
	return &Config{
		ProcRoot:           "/proc",
		SkipUnreadable:     true,
		PruneKernelOrphans: true,
		Color:              true,
	}
}

// Load reads a YAML file on top of Default, so keys left out of the file
// keep their default values.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.ProcRoot == "" {
		cfg.ProcRoot = Default().ProcRoot
	}

	return cfg, nil
}
