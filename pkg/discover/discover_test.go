package discover

import (
	"os"
	"path/filepath"
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

func TestDiscoverGoOnly(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "go.mod", "module example.com/demo\n")

	cfg, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	if !cfg.Go {
		t.Error("expected Go to be detected")
	}
	if cfg.Python || cfg.JS || cfg.TypeScript || cfg.Docker || cfg.GitHubActions {
		t.Error("expected no other ecosystems to be detected")
	}
}

func TestDiscoverEmptyDirectory(t *testing.T) {
	cfg, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	if cfg.Python || cfg.JS || cfg.Go || cfg.Docker || cfg.GitHubActions {
		t.Error("empty directory should detect no ecosystems")
	}
	if cfg.YAMLCheck || cfg.JSONCheck || cfg.TOMLCheck || cfg.XMLCheck {
		t.Error("empty directory should detect no file formats")
	}
	if !cfg.CaseConflict || !cfg.Executables {
		t.Error("safety checks should be enabled unconditionally")
	}
	if cfg.Symlinks {
		t.Error("symlink check should stay disabled")
	}
}

func TestDiscoverInvalidRoot(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected an error for a nonexistent root")
	}

	root := t.TempDir()
	writeFile(t, root, "plain.txt", "hello\n")
	if _, err := Discover(filepath.Join(root, "plain.txt")); err == nil {
		t.Error("expected an error when root is a file")
	}
}

func TestDiscoverPythonProject(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "pyproject.toml", "[project]\nname = \"demo\"\nrequires-python = \">=3.11,<4\"\n")
	writeFile(t, root, "src/app.py", "print('hi')\n")
	writeFile(t, root, "uv.lock", "")

	cfg, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	if !cfg.Python || !cfg.PythonBase {
		t.Error("expected Python to be detected")
	}
	if !cfg.UvLock {
		t.Error("expected uv.lock to be detected")
	}
	if !cfg.TOMLCheck {
		t.Error("pyproject.toml should trigger the TOML check")
	}
	if cfg.PythonVersion != "python3.11" {
		t.Errorf("PythonVersion = %q, want python3.11", cfg.PythonVersion)
	}
}

func TestDiscoverVersionProbeRequiresPython(t *testing.T) {
	// A version pin alone must not enable the probe; it only runs when
	// python itself was detected.
	root := t.TempDir()
	writeFile(t, root, ".python-version", "3.12\n")
	writeFile(t, root, "go.mod", "module example.com/demo\n")

	cfg, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if cfg.PythonVersion != "" {
		t.Errorf("PythonVersion = %q, want empty when python is not detected", cfg.PythonVersion)
	}
}

func TestDiscoverDockerfileWithoutExtension(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Dockerfile", "FROM scratch\n")

	cfg, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if !cfg.Docker {
		t.Error("a file named Dockerfile should count even without an extension")
	}
}

func TestDiscoverJavaScriptProject(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json", "{}\n")
	writeFile(t, root, "src/App.tsx", "export {}\n")
	writeFile(t, root, ".prettierrc", "{}\n")
	writeFile(t, root, ".eslintrc.json", "{}\n")

	cfg, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	if !cfg.JS {
		t.Error("expected JavaScript to be detected")
	}
	if !cfg.TypeScript {
		t.Error(".tsx should trigger TypeScript detection")
	}
	if !cfg.JSX {
		t.Error(".tsx should trigger JSX detection")
	}
	if cfg.PrettierConfig != ".prettierrc" {
		t.Errorf("PrettierConfig = %q, want .prettierrc", cfg.PrettierConfig)
	}
	if cfg.ESLintConfig != ".eslintrc.json" {
		t.Errorf("ESLintConfig = %q, want .eslintrc.json", cfg.ESLintConfig)
	}
	if !cfg.JSONCheck {
		t.Error("package.json should trigger the JSON check")
	}
}

func TestDiscoverGitHubActions(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".github/workflows/ci.yml", "on: push\n")

	cfg, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if !cfg.GitHubActions {
		t.Error("expected GitHub Actions to be detected")
	}
	if !cfg.YAMLCheck {
		t.Error("workflow YAML should trigger the YAML check; hidden directories must be walked")
	}
}

func TestDiscoverWorkflowsWithoutYAML(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".github/workflows/README.md", "docs\n")

	cfg, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if cfg.GitHubActions {
		t.Error("a workflows directory without YAML files should not count")
	}
}

func TestDiscoverHonorsGitignore(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".gitignore", "generated/\n*.log\n")
	writeFile(t, root, "generated/app.py", "print('hi')\n")
	writeFile(t, root, "debug.log", "noise\n")

	cfg, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if cfg.Python {
		t.Error("files under a gitignored directory should not be scanned")
	}
}

func TestDiscoverNestedGitignore(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "sub/.gitignore", "out/\n")
	writeFile(t, root, "sub/out/bundle.js", "x\n")

	cfg, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if cfg.JS {
		t.Error("directory-scoped ignore rules should apply to nested files")
	}
}

func TestDiscoverSkipsUnreadableEntries(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "locked/secret.py", "x\n")
	writeFile(t, root, "go.mod", "module example.com/demo\n")

	locked := filepath.Join(root, "locked")
	if err := os.Chmod(locked, 0); err != nil {
		t.Fatalf("failed to chmod: %v", err)
	}
	defer os.Chmod(locked, 0755)

	cfg, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover should skip unreadable entries, got: %v", err)
	}
	if !cfg.Go {
		t.Error("readable files should still be detected")
	}
}
