package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/prectempl/prectempl-cli/pkg/models"
)

type stage int

const (
	stageCustomize stage = iota
	stageQuestions
	stageVersion
	stageDone
)

// question is a single yes/no prompt bound to one Config field. skip is
// re-evaluated when the question comes up so sub-options disappear when
// their category was just declined; declined values are kept, not cleared.
type question struct {
	prompt string
	value  func(*models.Config) bool
	apply  func(*models.Config, bool)
	skip   func(*models.Config) bool
}

// Wizard walks the user through the detected configuration one question at
// a time. Only detected categories are offered; everything else keeps its
// detected value.
type Wizard struct {
	detected  *models.Config
	cfg       models.Config
	questions []question
	index     int
	stage     stage
	input     textinput.Model
	inputErr  string
	width     int
	aborted   bool
}

// NewWizard seeds the wizard with the detected configuration.
func NewWizard(detected *models.Config) *Wizard {
	ti := textinput.New()
	ti.Placeholder = "python3.12"
	ti.CharLimit = 32
	ti.Width = 24
	if detected.PythonVersion != "" {
		ti.SetValue(detected.PythonVersion)
	}

	return &Wizard{
		detected:  detected,
		cfg:       *detected,
		questions: buildQuestions(detected),
		input:     ti,
	}
}

// Config returns the configuration as answered so far.
func (w *Wizard) Config() *models.Config {
	return &w.cfg
}

// Aborted reports whether the user quit before finishing.
func (w *Wizard) Aborted() bool {
	return w.aborted
}

// Done reports whether the wizard ran to completion.
func (w *Wizard) Done() bool {
	return w.stage == stageDone
}

func (w *Wizard) Init() tea.Cmd {
	return nil
}

func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		return w, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			w.aborted = true
			return w, tea.Quit
		}

		switch w.stage {
		case stageCustomize:
			switch msg.String() {
			case "y", "Y", "enter":
				return w.advance()
			case "n", "N":
				// Accept the detected defaults as-is.
				w.stage = stageDone
				return w, tea.Quit
			}
			return w, nil

		case stageQuestions:
			q := w.questions[w.index]
			switch msg.String() {
			case "y", "Y":
				return w.answer(q, true)
			case "n", "N":
				return w.answer(q, false)
			case "enter":
				return w.answer(q, q.value(&w.cfg))
			}
			return w, nil

		case stageVersion:
			if msg.String() == "enter" {
				version := strings.TrimSpace(w.input.Value())
				candidate := w.cfg
				candidate.PythonVersion = version
				if err := candidate.Validate(); err != nil {
					w.inputErr = err.Error()
					return w, nil
				}
				w.cfg.PythonVersion = version
				w.stage = stageDone
				return w, tea.Quit
			}
			var cmd tea.Cmd
			w.input, cmd = w.input.Update(msg)
			w.inputErr = ""
			return w, cmd
		}
	}

	if w.stage == stageVersion {
		var cmd tea.Cmd
		w.input, cmd = w.input.Update(msg)
		return w, cmd
	}
	return w, nil
}

func (w *Wizard) answer(q question, value bool) (tea.Model, tea.Cmd) {
	q.apply(&w.cfg, value)
	w.index++
	return w.advance()
}

// advance moves to the next applicable question, then to the version step,
// then finishes.
func (w *Wizard) advance() (tea.Model, tea.Cmd) {
	for w.index < len(w.questions) {
		q := w.questions[w.index]
		if q.skip != nil && q.skip(&w.cfg) {
			w.index++
			continue
		}
		w.stage = stageQuestions
		return w, nil
	}
	if w.cfg.Python {
		w.stage = stageVersion
		w.input.Focus()
		return w, textinput.Blink
	}
	w.stage = stageDone
	return w, tea.Quit
}

func (w *Wizard) View() string {
	if w.stage == stageDone {
		return ""
	}

	var b strings.Builder
	b.WriteString(w.renderSummary())
	b.WriteString("\n")

	switch w.stage {
	case stageCustomize:
		b.WriteString(promptStyle.Render("Customize the configuration?"))
		b.WriteString(dimStyle.Render("  [Y/n]"))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter/y customize • n accept detected defaults • esc quit"))

	case stageQuestions:
		q := w.questions[w.index]
		hint := "[y/N]"
		if q.value(&w.cfg) {
			hint = "[Y/n]"
		}
		b.WriteString(promptStyle.Render(q.prompt))
		b.WriteString(dimStyle.Render("  " + hint))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(fmt.Sprintf("question %d of %d • enter keeps the detected default", w.index+1, len(w.questions))))

	case stageVersion:
		b.WriteString(promptStyle.Render("Python version for default_language_version"))
		b.WriteString(dimStyle.Render("  (leave empty to skip)"))
		b.WriteString("\n")
		b.WriteString(w.input.View())
		if w.inputErr != "" {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(w.inputErr))
		}
	}

	view := b.String()
	if w.width > 0 {
		view = wordwrap.String(view, w.width)
	}
	return view + "\n"
}

// renderSummary draws the detected-technology panel shown above every step.
func (w *Wizard) renderSummary() string {
	var lines []string
	lines = append(lines, titleStyle.Render("Detected Technologies"))

	d := w.detected
	if d.Python {
		version := d.PythonVersion
		if version == "" {
			version = "no version pin"
		}
		lines = append(lines, summaryLine("Python", version))
	}
	if d.JS {
		var details []string
		if d.TypeScript {
			details = append(details, "TypeScript")
		}
		if d.JSX {
			details = append(details, "JSX/React")
		}
		detail := "plain JavaScript"
		if len(details) > 0 {
			detail = strings.Join(details, ", ")
		}
		lines = append(lines, summaryLine("JavaScript", detail))
	}
	if d.Go {
		lines = append(lines, summaryLine("Go", ""))
	}
	if d.Docker {
		lines = append(lines, summaryLine("Docker", ""))
	}
	if d.GitHubActions {
		lines = append(lines, summaryLine("GitHub Actions", ""))
	}

	var formats []string
	if d.YAMLCheck {
		formats = append(formats, "YAML")
	}
	if d.JSONCheck {
		formats = append(formats, "JSON")
	}
	if d.TOMLCheck {
		formats = append(formats, "TOML")
	}
	if d.XMLCheck {
		formats = append(formats, "XML")
	}
	if len(formats) > 0 {
		lines = append(lines, summaryLine("File formats", strings.Join(formats, ", ")))
	}

	if len(lines) == 1 {
		lines = append(lines, dimStyle.Render("nothing detected beyond base hooks"))
	}

	return panelStyle.Render(strings.Join(lines, "\n")) + "\n"
}

func summaryLine(name, detail string) string {
	line := checkStyle.Render("✓") + " " + name
	if detail != "" {
		line += " " + dimStyle.Render("("+detail+")")
	}
	return line
}

func buildQuestions(detected *models.Config) []question {
	var qs []question

	if detected.YAMLCheck {
		qs = append(qs, question{
			prompt: "Include YAML syntax checking?",
			value:  func(c *models.Config) bool { return c.YAMLCheck },
			apply:  func(c *models.Config, v bool) { c.YAMLCheck = v },
		})
	}
	if detected.JSONCheck {
		qs = append(qs, question{
			prompt: "Include JSON syntax checking?",
			value:  func(c *models.Config) bool { return c.JSONCheck },
			apply:  func(c *models.Config, v bool) { c.JSONCheck = v },
		})
	}
	if detected.TOMLCheck {
		qs = append(qs, question{
			prompt: "Include TOML syntax checking?",
			value:  func(c *models.Config) bool { return c.TOMLCheck },
			apply:  func(c *models.Config, v bool) { c.TOMLCheck = v },
		})
	}
	if detected.XMLCheck {
		qs = append(qs, question{
			prompt: "Include XML syntax checking?",
			value:  func(c *models.Config) bool { return c.XMLCheck },
			apply:  func(c *models.Config, v bool) { c.XMLCheck = v },
		})
	}

	if detected.Python {
		qs = append(qs, question{
			prompt: "Include Python hooks (Ruff + Pyrefly)?",
			value:  func(c *models.Config) bool { return c.Python },
			apply:  func(c *models.Config, v bool) { c.Python = v },
		})
	}

	if detected.JS {
		qs = append(qs, question{
			prompt: "Include JavaScript/TypeScript hooks (Prettier + ESLint)?",
			value:  func(c *models.Config) bool { return c.JS },
			apply:  func(c *models.Config, v bool) { c.JS = v },
		})
		qs = append(qs, question{
			prompt: "Include TypeScript support?",
			value:  func(c *models.Config) bool { return c.TypeScript },
			apply:  func(c *models.Config, v bool) { c.TypeScript = v },
			skip:   func(c *models.Config) bool { return !c.JS },
		})
		qs = append(qs, question{
			prompt: "Include JSX/React support?",
			value:  func(c *models.Config) bool { return c.JSX },
			apply:  func(c *models.Config, v bool) { c.JSX = v },
			skip:   func(c *models.Config) bool { return !c.JS },
		})
	}

	if detected.Go {
		qs = append(qs, question{
			prompt: "Include Go hooks (golangci-lint + formatting)?",
			value:  func(c *models.Config) bool { return c.Go },
			apply:  func(c *models.Config, v bool) { c.Go = v },
		})
		qs = append(qs, question{
			prompt: "Include go-critic for additional linting?",
			value:  func(c *models.Config) bool { return c.GoCritic },
			apply:  func(c *models.Config, v bool) { c.GoCritic = v },
			skip:   func(c *models.Config) bool { return !c.Go },
		})
	}

	if detected.Docker {
		qs = append(qs, question{
			prompt: "Include Docker hooks?",
			value:  func(c *models.Config) bool { return c.Docker },
			apply:  func(c *models.Config, v bool) { c.Docker = v },
		})
		qs = append(qs, question{
			prompt: "Include Dockerfile linting (hadolint)?",
			value:  func(c *models.Config) bool { return c.DockerfileLinting },
			apply:  func(c *models.Config, v bool) { c.DockerfileLinting = v },
			skip:   func(c *models.Config) bool { return !c.Docker },
		})
	}

	if detected.GitHubActions {
		qs = append(qs, question{
			prompt: "Include GitHub Actions hooks?",
			value:  func(c *models.Config) bool { return c.GitHubActions },
			apply:  func(c *models.Config, v bool) { c.GitHubActions = v },
		})
		qs = append(qs, question{
			prompt: "Include workflow validation (actionlint)?",
			value:  func(c *models.Config) bool { return c.WorkflowValidation },
			apply:  func(c *models.Config, v bool) { c.WorkflowValidation = v },
			skip:   func(c *models.Config) bool { return !c.GitHubActions },
		})
		qs = append(qs, question{
			prompt: "Include security scanning for workflows (zizmor)?",
			value:  func(c *models.Config) bool { return c.SecurityScanning },
			apply:  func(c *models.Config, v bool) { c.SecurityScanning = v },
			skip:   func(c *models.Config) bool { return !c.GitHubActions },
		})
	}

	return qs
}
