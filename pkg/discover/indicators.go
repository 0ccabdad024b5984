package discover

// Indicator sets map observed file tokens to technology categories. Tokens
// are lowercase base names or dot-prefixed extensions; a category counts as
// present when any of its tokens shows up in the scanned set.
var (
	pythonIndicators = []string{
		"setup.py",
		"pyproject.toml",
		"requirements.txt",
		"pipfile",
		"poetry.lock",
		"setup.cfg",
		"tox.ini",
		"pytest.ini",
		".py",
		"manage.py",
		"__init__.py",
	}

	javascriptIndicators = []string{
		"package.json",
		"yarn.lock",
		"package-lock.json",
		"npm-shrinkwrap.json",
		".js",
		".mjs",
		".cjs",
		"webpack.config.js",
		"vite.config.js",
		"rollup.config.js",
		"babel.config.js",
		".babelrc",
	}

	typescriptIndicators = []string{
		"tsconfig.json",
		"tsconfig.base.json",
		"tsconfig.build.json",
		".ts",
		".tsx",
		".d.ts",
	}

	jsxIndicators = []string{
		".jsx",
		".tsx",
		"next.config.js",
		"gatsby-config.js",
		"react-scripts",
		".storybook",
	}

	goIndicators = []string{"go.mod", "go.sum", "main.go", ".go", "vendor"}

	dockerIndicators = []string{
		"dockerfile",
		"docker-compose.yml",
		"docker-compose.yaml",
		".dockerignore",
		"dockerfile.dev",
		"dockerfile.prod",
	}

	yamlIndicators = []string{".yml", ".yaml", "docker-compose.yml", "docker-compose.yaml"}
	jsonIndicators = []string{".json"}
	tomlIndicators = []string{".toml", "pyproject.toml"}
	xmlIndicators  = []string{".xml"}
)

// Well-known formatter/linter config filenames, checked in order of
// preference when populating the JS sub-options.
var (
	prettierConfigNames = []string{
		".prettierrc",
		".prettierrc.json",
		".prettierrc.yaml",
		".prettierrc.yml",
		".prettierrc.js",
		"prettier.config.js",
	}

	eslintConfigNames = []string{
		".eslintrc.js",
		".eslintrc.cjs",
		".eslintrc.json",
		".eslintrc.yml",
		".eslintrc.yaml",
		"eslint.config.js",
		"eslint.config.mjs",
	}
)

func hasIndicator(files map[string]struct{}, indicators []string) bool {
	for _, ind := range indicators {
		if _, ok := files[ind]; ok {
			return true
		}
	}
	return false
}

// findConfigFile returns the first candidate present in the scanned set.
func findConfigFile(files map[string]struct{}, candidates []string) string {
	for _, name := range candidates {
		if _, ok := files[name]; ok {
			return name
		}
	}
	return ""
}
