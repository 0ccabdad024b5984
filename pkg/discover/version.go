package discover

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

var versionToken = regexp.MustCompile(`\d+\.\d+(?:\.\d+)?`)

// pyproject carries the one field the version probe cares about.
type pyproject struct {
	Project struct {
		RequiresPython string `toml:"requires-python"`
	} `toml:"project"`
}

// detectPythonVersion probes pyproject.toml and then .python-version for a
// version pin, returning e.g. "python3.11". A source that is missing or
// unparseable falls through to the next one; "" means no pin was found.
func detectPythonVersion(root string) string {
	if data, err := os.ReadFile(filepath.Join(root, "pyproject.toml")); err == nil {
		var pp pyproject
		if err := toml.Unmarshal(data, &pp); err == nil {
			if token := versionToken.FindString(pp.Project.RequiresPython); token != "" {
				return "python" + token
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join(root, ".python-version")); err == nil {
		version := strings.TrimSpace(string(data))
		if version != "" {
			if strings.HasPrefix(version, "python") {
				return version
			}
			return "python" + version
		}
	}

	return ""
}
