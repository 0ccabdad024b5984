package discover

import "testing"

func TestDetectPythonVersionFromPyproject(t *testing.T) {
	tests := []struct {
		name     string
		requires string
		want     string
	}{
		{"range", ">=3.11,<4", "python3.11"},
		{"patch version", ">=3.10.5", "python3.10.5"},
		{"compatible release", "~=3.9", "python3.9"},
		{"no version token", ">=x", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeFile(t, root, "pyproject.toml", "[project]\nrequires-python = \""+tt.requires+"\"\n")

			if got := detectPythonVersion(root); got != tt.want {
				t.Errorf("detectPythonVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectPythonVersionFromVersionFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bare version", "3.12.1\n", "python3.12.1"},
		{"already prefixed", "python3.9\n", "python3.9"},
		{"empty file", "\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeFile(t, root, ".python-version", tt.content)

			if got := detectPythonVersion(root); got != tt.want {
				t.Errorf("detectPythonVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectPythonVersionPyprojectWins(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "pyproject.toml", "[project]\nrequires-python = \">=3.11\"\n")
	writeFile(t, root, ".python-version", "3.12\n")

	if got := detectPythonVersion(root); got != "python3.11" {
		t.Errorf("detectPythonVersion() = %q, want python3.11", got)
	}
}

func TestDetectPythonVersionMalformedPyprojectFallsThrough(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "pyproject.toml", "not [valid toml\n")
	writeFile(t, root, ".python-version", "3.12\n")

	if got := detectPythonVersion(root); got != "python3.12" {
		t.Errorf("detectPythonVersion() = %q, want python3.12", got)
	}
}

func TestDetectPythonVersionNoSources(t *testing.T) {
	if got := detectPythonVersion(t.TempDir()); got != "" {
		t.Errorf("detectPythonVersion() = %q, want empty", got)
	}
}
