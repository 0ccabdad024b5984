package render

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/prectempl/prectempl-cli/pkg/models"
)

// Version is stamped into generated headers. Set during build with -ldflags.
var Version = "0.1.1"

// Fragment inputs. Each fragment only ever sees its own category's options.
type baseData struct {
	YAML         bool
	JSON         bool
	TOML         bool
	XML          bool
	CaseConflict bool
	Executables  bool
	Symlinks     bool
	Python       bool
}

type pythonData struct {
	UvLock      bool
	PyreflyArgs []string
}

type dockerData struct {
	DockerfileLinting bool
	DockerignoreCheck bool
}

type githubActionsData struct {
	WorkflowValidation bool
	SecurityScanning   bool
}

type jsData struct {
	TypeScript     bool
	JSX            bool
	PrettierConfig string
	ESLintConfig   string
}

type goData struct {
	GoCritic bool
}

type metaData struct {
	Content       string
	PythonVersion string
	Version       string
	Timestamp     string
	Technologies  []string
}

// Renderer assembles a pre-commit configuration from the fragment library.
// The clock is a field so tests can freeze it; output is otherwise fully
// determined by the configuration, keeping regenerated files diff-stable.
type Renderer struct {
	Version string
	Now     func() time.Time
}

// NewRenderer returns a renderer using the package version and wall clock.
func NewRenderer() *Renderer {
	return &Renderer{Version: Version, Now: time.Now}
}

// RenderConfig renders cfg with a default renderer.
func RenderConfig(cfg *models.Config) (string, error) {
	return NewRenderer().Render(cfg)
}

// Render produces the complete configuration document for cfg, ending with
// exactly one trailing newline.
func (r *Renderer) Render(cfg *models.Config) (string, error) {
	base, err := execute(baseTmpl, baseData{
		YAML:         cfg.YAMLCheck,
		JSON:         cfg.JSONCheck,
		TOML:         cfg.TOMLCheck,
		XML:          cfg.XMLCheck,
		CaseConflict: cfg.CaseConflict,
		Executables:  cfg.Executables,
		Symlinks:     cfg.Symlinks,
		Python:       cfg.PythonBase,
	})
	if err != nil {
		return "", err
	}
	sections := []string{base}

	// Optional fragments render in a fixed order so regenerating an
	// unchanged project produces identical output.
	optional := []struct {
		name    string
		enabled bool
		tmpl    *template.Template
		data    any
	}{
		{"python", cfg.Python, pythonTmpl, pythonData{UvLock: cfg.UvLock, PyreflyArgs: cfg.PyreflyArgs}},
		{"docker", cfg.Docker, dockerTmpl, dockerData{DockerfileLinting: cfg.DockerfileLinting, DockerignoreCheck: cfg.DockerignoreCheck}},
		{"github-actions", cfg.GitHubActions, githubActionsTmpl, githubActionsData{WorkflowValidation: cfg.WorkflowValidation, SecurityScanning: cfg.SecurityScanning}},
		{"js", cfg.JS, jsTmpl, jsData{TypeScript: cfg.TypeScript, JSX: cfg.JSX, PrettierConfig: cfg.PrettierConfig, ESLintConfig: cfg.ESLintConfig}},
		{"go", cfg.Go, goTmpl, goData{GoCritic: cfg.GoCritic}},
	}
	for _, frag := range optional {
		if !frag.enabled {
			continue
		}
		out, err := execute(frag.tmpl, frag.data)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(out) == "" {
			continue
		}
		sections = append(sections, out)
	}

	body := Indent(strings.Join(sections, "\n\n"), 2)

	result, err := execute(metaTmpl, metaData{
		Content:       body,
		PythonVersion: cfg.PythonVersion,
		Version:       r.Version,
		Timestamp:     r.Now().UTC().Format("2006-01-02T15:04:05Z"),
		Technologies:  cfg.DetectedTechnologies(),
	})
	if err != nil {
		return "", err
	}
	if !strings.HasSuffix(result, "\n") {
		result += "\n"
	}
	return result, nil
}

func execute(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s hooks: %w", t.Name(), err)
	}
	return buf.String(), nil
}

// Indent prefixes every non-blank line with the given number of spaces.
// Blank lines stay untouched so whitespace-sensitive YAML (block scalars)
// is not corrupted.
func Indent(text string, spaces int) string {
	prefix := strings.Repeat(" ", spaces)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
