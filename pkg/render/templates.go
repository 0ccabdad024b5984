package render

import (
	"strings"
	"text/template"
)

// The fragment library is fixed at build time: one template per hook
// category plus the meta wrapper that assembles them. Each fragment renders
// a YAML snippet whose repo entries start at column zero; the wrapper
// indents the combined body under the top-level repos key.

var templateFuncs = template.FuncMap{
	"join": strings.Join,
}

func mustTemplate(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(templateFuncs).Parse(text))
}

var baseTmpl = mustTemplate("base", `- repo: https://github.com/pre-commit/pre-commit-hooks
  rev: v6.0.0
  hooks:
  - id: trailing-whitespace
  - id: end-of-file-fixer
  - id: check-added-large-files
    args: [--maxkb=1000]
  - id: check-merge-conflict
  - id: detect-private-key
  - id: detect-aws-credentials
    args: [--allow-missing-credentials]
  - id: no-commit-to-branch
    args: [--branch, main, --branch, master]
{{- if .YAML}}
  - id: check-yaml
{{- end}}
{{- if .JSON}}
  - id: check-json
{{- end}}
{{- if .TOML}}
  - id: check-toml
{{- end}}
{{- if .XML}}
  - id: check-xml
{{- end}}
{{- if .CaseConflict}}
  - id: check-case-conflict
{{- end}}
{{- if .Executables}}
  - id: check-executables-have-shebangs
{{- end}}
{{- if .Symlinks}}
  - id: check-symlinks
{{- end}}
{{- if .Python}}
  - id: check-ast
  - id: check-builtin-literals
  - id: check-docstring-first
  - id: debug-statements
{{- end}}`)

var pythonTmpl = mustTemplate("python", `- repo: https://github.com/astral-sh/ruff-pre-commit
  rev: v0.12.7
  hooks:
  - id: ruff-format
    name: Format Python code
  - id: ruff
    name: Lint Python code
    args: [--line-length=120]

- repo: https://github.com/facebook/pyrefly-pre-commit
  rev: 0.25.0
  hooks:
  - id: pyrefly-typecheck-specific-version
    name: Type-check Python code
{{- if .PyreflyArgs}}
    args: [{{join .PyreflyArgs ", "}}]
{{- end}}
{{- if .UvLock}}

- repo: https://github.com/astral-sh/uv-pre-commit
  rev: 0.8.4
  hooks:
  - id: uv-lock
    name: Keep uv.lock in sync with pyproject.toml
{{- end}}`)

var dockerTmpl = mustTemplate("docker", `- repo: https://github.com/pre-commit/pre-commit-hooks
  rev: v6.0.0
  hooks:
  - id: check-added-large-files
    args: [--maxkb=3000]
{{- if .DockerignoreCheck}}
  - id: check-case-conflict
{{- end}}
{{- if .DockerfileLinting}}

- repo: https://github.com/hadolint/hadolint
  rev: v2.13.1
  hooks:
  - id: hadolint-docker
    name: Lint Dockerfiles with hadolint
{{- end}}`)

var githubActionsTmpl = mustTemplate("github-actions", `{{- if .WorkflowValidation -}}
- repo: https://github.com/rhysd/actionlint
  rev: v1.7.7
  hooks:
  - id: actionlint
    name: Validate GitHub Actions workflows
{{- end -}}
{{- if .SecurityScanning -}}
{{- if .WorkflowValidation}}

{{end -}}
- repo: https://github.com/woodruffw/zizmor-pre-commit
  rev: v1.5.2
  hooks:
  - id: zizmor
    name: Audit GitHub Actions workflows for security issues
{{- end -}}`)

var jsTmpl = mustTemplate("js", `- repo: https://github.com/pre-commit/mirrors-prettier
  rev: v4.0.0-alpha.8
  hooks:
  - id: prettier
    types_or: [javascript, jsx, ts, tsx, json, css, markdown, yaml]
{{- if .PrettierConfig}}
    args: [--config={{.PrettierConfig}}]
{{- end}}

- repo: https://github.com/pre-commit/mirrors-eslint
  rev: v9.32.0
  hooks:
  - id: eslint
    files: \.[jt]sx?$
    types: [file]
{{- if .ESLintConfig}}
    args: [--config={{.ESLintConfig}}]
{{- end}}
    additional_dependencies:
    - eslint@9.32.0
{{- if .TypeScript}}
    - '@typescript-eslint/parser@8.38.0'
    - '@typescript-eslint/eslint-plugin@8.38.0'
{{- end}}
{{- if .JSX}}
    - eslint-plugin-react@7.37.5
{{- end}}`)

var goTmpl = mustTemplate("go", `- repo: https://github.com/dnephin/pre-commit-golang
  rev: v0.5.1
  hooks:
  - id: go-fmt
    name: Format Go code
  - id: go-mod-tidy
    name: Tidy go.mod and go.sum
{{- if .GoCritic}}
  - id: go-critic
    name: Lint Go code with go-critic
{{- end}}

- repo: https://github.com/golangci/golangci-lint
  rev: v2.3.0
  hooks:
  - id: golangci-lint
    name: Run golangci-lint`)

var metaTmpl = mustTemplate("meta", `# .pre-commit-config.yaml
# Generated by prectempl v{{.Version}} on {{.Timestamp}}
{{- if .Technologies}}
# Detected technologies: {{join .Technologies ", "}}
{{- end}}
# Hook documentation: https://pre-commit.com
{{- if .PythonVersion}}

default_language_version:
  python: {{.PythonVersion}}
{{- end}}

repos:
{{.Content}}
`)
