package discover

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/prectempl/prectempl-cli/pkg/models"
)

// Discover scans the tree rooted at root and returns the hook configuration
// implied by the files it finds. The scan reads the filesystem only;
// unreadable entries are skipped rather than failing the whole run.
func Discover(root string) (*models.Config, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("cannot analyze %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	files := scanFiles(root)

	cfg := models.DefaultConfig()

	cfg.YAMLCheck = hasIndicator(files, yamlIndicators)
	cfg.JSONCheck = hasIndicator(files, jsonIndicators)
	cfg.TOMLCheck = hasIndicator(files, tomlIndicators)
	cfg.XMLCheck = hasIndicator(files, xmlIndicators)

	// Cross-platform and shell-script safety checks are always on.
	cfg.CaseConflict = true
	cfg.Executables = true
	cfg.Symlinks = false

	cfg.Python = hasIndicator(files, pythonIndicators)
	cfg.PythonBase = cfg.Python
	_, cfg.UvLock = files["uv.lock"]

	cfg.JS = hasIndicator(files, javascriptIndicators)
	cfg.TypeScript = hasIndicator(files, typescriptIndicators)
	cfg.JSX = hasIndicator(files, jsxIndicators)
	cfg.Go = hasIndicator(files, goIndicators)
	cfg.Docker = hasIndicator(files, dockerIndicators)
	cfg.GitHubActions = detectGitHubActions(root)

	if cfg.Python {
		cfg.PythonVersion = detectPythonVersion(root)
	}
	if cfg.JS {
		cfg.PrettierConfig = findConfigFile(files, prettierConfigNames)
		cfg.ESLintConfig = findConfigFile(files, eslintConfigNames)
	}

	return cfg, nil
}

// scanFiles walks the tree and collects two lowercase tokens per regular
// file: its base name and its dot-prefixed extension. Entries excluded by
// gitignore rules are skipped; hidden entries are walked so that workflow
// directories stay discoverable.
func scanFiles(root string) map[string]struct{} {
	files := make(map[string]struct{})
	matcher := newIgnoreMatcher(root)

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			if matcher.Match(splitPath(rel), true) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if matcher.Match(splitPath(rel), false) {
			return nil
		}
		name := strings.ToLower(d.Name())
		files[name] = struct{}{}
		if ext := filepath.Ext(name); ext != "" && ext != name {
			files[ext] = struct{}{}
		}
		return nil
	})

	return files
}

// detectGitHubActions reports whether .github/workflows contains at least
// one YAML workflow. Listing failures count as absent.
func detectGitHubActions(root string) bool {
	entries, err := os.ReadDir(filepath.Join(root, ".github", "workflows"))
	if err != nil {
		return false
	}
	for _, entry := range entries {
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == ".yml" || ext == ".yaml" {
			return true
		}
	}
	return false
}

// newIgnoreMatcher loads ignore rules the way git resolves them: the global
// excludesfile, the repository's .git/info/exclude, and every .gitignore in
// the tree. Any source that cannot be read is simply left out.
func newIgnoreMatcher(root string) gitignore.Matcher {
	rootFS := osfs.New(root)

	patterns, err := gitignore.ReadPatterns(rootFS, nil)
	if err != nil {
		patterns = nil
	}
	if global, err := gitignore.LoadGlobalPatterns(osfs.New("/")); err == nil {
		patterns = append(patterns, global...)
	}

	return gitignore.NewMatcher(patterns)
}

// splitPath converts a relative path into the segment form the gitignore
// matcher expects.
func splitPath(path string) []string {
	parts := strings.Split(filepath.ToSlash(path), "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" && part != "." {
			segments = append(segments, part)
		}
	}
	return segments
}
