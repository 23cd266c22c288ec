package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"workshop/internal/toolchain"
)

// Config persists the user-level defaults: minimum tool versions plus the
// preferred executables and languages written through by session setters.
type Config struct {
	PythonMinimumVersion        string `yaml:"python_minimum_version"`
	DockerComposeMinimumVersion string `yaml:"docker_compose_minimum_version"`
	GitMinimumVersion           string `yaml:"git_minimum_version"`

	PythonExecutable        string `yaml:"python_executable,omitempty"`
	DockerComposeExecutable string `yaml:"docker_compose_executable,omitempty"`
	GitExecutable           string `yaml:"git_executable,omitempty"`

	SpokenLanguage      string `yaml:"spoken_language,omitempty"`
	ProgrammingLanguage string `yaml:"programming_language,omitempty"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		PythonMinimumVersion:        "3.9.0",
		DockerComposeMinimumVersion: "2.20.0",
		GitMinimumVersion:           "2.25.0",
	}
}

// Load reads the YAML configuration from disk if it exists, otherwise
// returns the default configuration.
func Load(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// ApplyDefaults fills minimum versions the YAML omits.
func (c *Config) ApplyDefaults() {
	defaults := Default()

	if c.PythonMinimumVersion == "" {
		c.PythonMinimumVersion = defaults.PythonMinimumVersion
	}
	if c.DockerComposeMinimumVersion == "" {
		c.DockerComposeMinimumVersion = defaults.DockerComposeMinimumVersion
	}
	if c.GitMinimumVersion == "" {
		c.GitMinimumVersion = defaults.GitMinimumVersion
	}
}

// Validate parses every configured minimum version. A malformed value is a
// configuration error, reported immediately rather than during probing.
func (c Config) Validate() error {
	minimums := map[string]string{
		toolchain.ToolPython:        c.PythonMinimumVersion,
		toolchain.ToolDockerCompose: c.DockerComposeMinimumVersion,
		toolchain.ToolGit:           c.GitMinimumVersion,
	}
	for tool, raw := range minimums {
		if _, err := toolchain.ParseRequirement(raw); err != nil {
			return fmt.Errorf("%s: %w", tool, err)
		}
	}
	return nil
}

// Minimums bundles the configured minimum versions for tool detection.
func (c Config) Minimums() toolchain.Minimums {
	return toolchain.Minimums{
		Python:        c.PythonMinimumVersion,
		DockerCompose: c.DockerComposeMinimumVersion,
		Git:           c.GitMinimumVersion,
	}
}

// Marshal returns the YAML encoding of the configuration.
func (c Config) Marshal() ([]byte, error) {
	buf, err := yaml.Marshal(&c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return buf, nil
}

// Save writes the configuration to disk.
func (c Config) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
