package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestDetectTextTable(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "go.mod", "module example.com/demo\n")
	writeFile(t, root, "Dockerfile", "FROM scratch\n")
	path := root

	cmd := NewDetectCommand(&path)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("detect failed: %v", err)
	}

	out := buf.String()
	for _, expected := range []string{"TECHNOLOGY", "go", "docker"} {
		if !strings.Contains(out, expected) {
			t.Errorf("output should contain %q, got:\n%s", expected, out)
		}
	}
}

func TestDetectJSON(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "go.mod", "module example.com/demo\n")
	path := root

	cmd := NewDetectCommand(&path)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"-f", "json"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("detect -f json failed: %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if result["go"] != true {
		t.Errorf("go = %v, want true", result["go"])
	}
	if result["python"] != false {
		t.Errorf("python = %v, want false", result["python"])
	}
}

func TestDetectYAML(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json", "{}\n")
	path := root

	cmd := NewDetectCommand(&path)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"-f", "yaml"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("detect -f yaml failed: %v", err)
	}
	if !strings.Contains(buf.String(), "js: true") {
		t.Errorf("yaml output should contain js: true, got:\n%s", buf.String())
	}
}

func TestDetectUnknownFormat(t *testing.T) {
	root := t.TempDir()
	path := root

	cmd := NewDetectCommand(&path)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"-f", "csv"})

	if err := cmd.Execute(); err == nil {
		t.Error("expected an error for an unsupported format")
	}
}

func TestDetectEmptyProject(t *testing.T) {
	path := t.TempDir()

	cmd := NewDetectCommand(&path)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("detect failed: %v", err)
	}
	if !strings.Contains(buf.String(), "(none)") {
		t.Errorf("an empty project should report nothing detected, got:\n%s", buf.String())
	}
}
