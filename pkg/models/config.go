package models

import (
	"fmt"
	"regexp"
)

// Config describes which hook categories and sub-options are enabled for a
// project. Discovery produces one with detected defaults, the wizard may
// adjust it, and the renderer consumes it once.
//
// Sub-options are only meaningful while their category flag is set, but they
// are never cleared when the category is toggled off: a user who disables a
// category and re-enables it keeps their previous choices.
type Config struct {
	// PythonVersion pins default_language_version, e.g. "python3.11".
	PythonVersion string `yaml:"python_version,omitempty" json:"python_version,omitempty"`

	// Base hook options
	YAMLCheck    bool `yaml:"yaml_check" json:"yaml_check"`
	JSONCheck    bool `yaml:"json_check" json:"json_check"`
	TOMLCheck    bool `yaml:"toml_check" json:"toml_check"`
	XMLCheck     bool `yaml:"xml_check" json:"xml_check"`
	CaseConflict bool `yaml:"case_conflict" json:"case_conflict"`
	Executables  bool `yaml:"executables" json:"executables"`
	Symlinks     bool `yaml:"symlinks" json:"symlinks"`
	PythonBase   bool `yaml:"python_base" json:"python_base"`

	// Python hook options
	Python      bool     `yaml:"python" json:"python"`
	UvLock      bool     `yaml:"uv_lock" json:"uv_lock"`
	PyreflyArgs []string `yaml:"pyrefly_args,omitempty" json:"pyrefly_args,omitempty"`

	// Docker hook options
	Docker            bool `yaml:"docker" json:"docker"`
	DockerfileLinting bool `yaml:"dockerfile_linting" json:"dockerfile_linting"`
	DockerignoreCheck bool `yaml:"dockerignore_check" json:"dockerignore_check"`

	// GitHub Actions hook options
	GitHubActions      bool `yaml:"github_actions" json:"github_actions"`
	WorkflowValidation bool `yaml:"workflow_validation" json:"workflow_validation"`
	SecurityScanning   bool `yaml:"security_scanning" json:"security_scanning"`

	// JavaScript hook options
	JS             bool   `yaml:"js" json:"js"`
	TypeScript     bool   `yaml:"typescript" json:"typescript"`
	JSX            bool   `yaml:"jsx" json:"jsx"`
	PrettierConfig string `yaml:"prettier_config,omitempty" json:"prettier_config,omitempty"`
	ESLintConfig   string `yaml:"eslint_config,omitempty" json:"eslint_config,omitempty"`

	// Go hook options
	Go       bool `yaml:"go" json:"go"`
	GoCritic bool `yaml:"go_critic" json:"go_critic"`
}

var pythonVersionPattern = regexp.MustCompile(`^python\d+\.\d+(\.\d+)?$`)

// DefaultConfig returns a configuration with every detection flag off.
// Dockerfile linting and workflow validation stay on so that enabling
// their category later picks up the recommended hooks.
func DefaultConfig() *Config {
	return &Config{
		DockerfileLinting:  true,
		WorkflowValidation: true,
	}
}

// Validate checks constraints that are not enforced during construction.
func (c *Config) Validate() error {
	if c.PythonVersion != "" && !pythonVersionPattern.MatchString(c.PythonVersion) {
		return fmt.Errorf("python version must look like python3.11, got %q", c.PythonVersion)
	}
	return nil
}

// DetectedTechnologies returns display names for the enabled categories,
// in a stable order.
func (c *Config) DetectedTechnologies() []string {
	var techs []string
	if c.Python {
		techs = append(techs, "python")
	}
	if c.JS {
		techs = append(techs, "javascript")
	}
	if c.TypeScript {
		techs = append(techs, "typescript")
	}
	if c.Go {
		techs = append(techs, "go")
	}
	if c.Docker {
		techs = append(techs, "docker")
	}
	if c.GitHubActions {
		techs = append(techs, "github-actions")
	}
	return techs
}
