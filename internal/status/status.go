// Package status holds the session context binding resolved tools,
// languages, workshop, and lesson to a working tree. It persists to
// status.yaml directly under the local workspace store and initializes from
// the user-level config defaults when no file exists yet.
package status

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"workshop/internal/config"
	"workshop/internal/store"
)

// FileName is the session context file kept under the workspace store.
const FileName = "status.yaml"

// Status is the active session context. Executable and language setters
// optionally write their value through to the config defaults; Save
// persists both the status file and the config.
type Status struct {
	PythonExecutable        string `yaml:"python_executable,omitempty" json:"python_executable,omitempty"`
	DockerComposeExecutable string `yaml:"docker_compose_executable,omitempty" json:"docker_compose_executable,omitempty"`
	GitExecutable           string `yaml:"git_executable,omitempty" json:"git_executable,omitempty"`
	SpokenLanguage          string `yaml:"spoken_language,omitempty" json:"spoken_language,omitempty"`
	ProgrammingLanguage     string `yaml:"programming_language,omitempty" json:"programming_language,omitempty"`
	Workshop                string `yaml:"workshop,omitempty" json:"workshop,omitempty"`
	Lesson                  string `yaml:"lesson,omitempty" json:"lesson,omitempty"`

	config     config.Config
	configPath string
}

// Load builds the session context for the working tree anchored at start.
// When the upward search finds a workspace holding a status file, that file
// wins; otherwise the context is initialized from the config defaults.
func Load(start string, cfg config.Config, configPath string) (*Status, error) {
	workspace, found, err := store.FindWorkspace(start)
	if err != nil {
		return nil, err
	}
	if found {
		path := filepath.Join(workspace, FileName)
		contents, err := os.ReadFile(path)
		switch {
		case err == nil:
			status := &Status{config: cfg, configPath: configPath}
			if err := yaml.Unmarshal(contents, status); err != nil {
				return nil, fmt.Errorf("unmarshal status %s: %w", path, err)
			}
			return status, nil
		case !errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("read status: %w", err)
		}
	}

	return &Status{
		PythonExecutable:        cfg.PythonExecutable,
		DockerComposeExecutable: cfg.DockerComposeExecutable,
		GitExecutable:           cfg.GitExecutable,
		SpokenLanguage:          cfg.SpokenLanguage,
		ProgrammingLanguage:     cfg.ProgrammingLanguage,
		config:                  cfg,
		configPath:              configPath,
	}, nil
}

// Save writes the status file into the workspace store found from start, if
// one exists, and always persists the config so written-through defaults
// survive.
func (s *Status) Save(start string) error {
	workspace, found, err := store.FindWorkspace(start)
	if err != nil {
		return err
	}
	if found {
		data, err := yaml.Marshal(s)
		if err != nil {
			return fmt.Errorf("marshal status: %w", err)
		}
		if err := os.WriteFile(filepath.Join(workspace, FileName), data, 0o644); err != nil {
			return fmt.Errorf("write status: %w", err)
		}
	}
	if s.configPath == "" {
		return nil
	}
	return s.config.Save(s.configPath)
}

// Config returns the backing user-level configuration.
func (s *Status) Config() config.Config {
	return s.config
}

// PythonMinimum returns the configured minimum Python version.
func (s *Status) PythonMinimum() string { return s.config.PythonMinimumVersion }

// DockerComposeMinimum returns the configured minimum compose version.
func (s *Status) DockerComposeMinimum() string { return s.config.DockerComposeMinimumVersion }

// GitMinimum returns the configured minimum git version.
func (s *Status) GitMinimum() string { return s.config.GitMinimumVersion }

// SetPythonExecutable records the selected interpreter; persist also makes
// it the config default.
func (s *Status) SetPythonExecutable(command string, persist bool) {
	s.PythonExecutable = command
	if persist {
		s.config.PythonExecutable = command
	}
}

// SetDockerComposeExecutable records the selected compose tool; persist
// also makes it the config default.
func (s *Status) SetDockerComposeExecutable(command string, persist bool) {
	s.DockerComposeExecutable = command
	if persist {
		s.config.DockerComposeExecutable = command
	}
}

// SetGitExecutable records the selected git client; persist also makes it
// the config default.
func (s *Status) SetGitExecutable(command string, persist bool) {
	s.GitExecutable = command
	if persist {
		s.config.GitExecutable = command
	}
}

// SetSpokenLanguage records the spoken language; persist also makes it the
// config default.
func (s *Status) SetSpokenLanguage(code string, persist bool) {
	s.SpokenLanguage = code
	if persist {
		s.config.SpokenLanguage = code
	}
}

// SetProgrammingLanguage records the programming language; persist also
// makes it the config default.
func (s *Status) SetProgrammingLanguage(code string, persist bool) {
	s.ProgrammingLanguage = code
	if persist {
		s.config.ProgrammingLanguage = code
	}
}

// SetWorkshop records the selected workshop and clears the lesson when the
// workshop changes.
func (s *Status) SetWorkshop(id string) {
	if s.Workshop != id {
		s.Lesson = ""
	}
	s.Workshop = id
}

// SetLesson records the selected lesson.
func (s *Status) SetLesson(id string) {
	s.Lesson = id
}
