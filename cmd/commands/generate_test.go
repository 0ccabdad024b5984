package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, root, name, content string) {
	t.Helper()
	path := filepath.Join(root, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestGenerateStdout(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "go.mod", "module example.com/demo\n")
	path := root

	cmd := NewGenerateCommand(&path)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"--stdout"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("generate --stdout failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "repos:") {
		t.Error("output should contain the generated configuration")
	}
	if !strings.Contains(out, "golangci-lint") {
		t.Error("a Go project should get Go hooks")
	}
	if _, err := os.Stat(filepath.Join(root, ".pre-commit-config.yaml")); !os.IsNotExist(err) {
		t.Error("--stdout should not write a file")
	}
}

func TestGenerateWritesFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Dockerfile", "FROM scratch\n")
	path := root

	cmd := NewGenerateCommand(&path)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, ".pre-commit-config.yaml"))
	if err != nil {
		t.Fatalf("failed to read generated config: %v", err)
	}
	if !strings.Contains(string(data), "hadolint-docker") {
		t.Error("a Docker project should get hadolint")
	}
}

func TestGenerateCustomOutput(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "go.mod", "module example.com/demo\n")
	path := root

	cmd := NewGenerateCommand(&path)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"-o", "custom.yaml"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("generate -o failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "custom.yaml")); err != nil {
		t.Errorf("expected custom.yaml to exist: %v", err)
	}
}

func TestGenerateInvalidPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing")

	cmd := NewGenerateCommand(&path)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--stdout"})

	if err := cmd.Execute(); err == nil {
		t.Error("expected an error for a nonexistent project path")
	}
}
