package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/prectempl/prectempl-cli/cmd/commands"
	"github.com/prectempl/prectempl-cli/internal/cli"
	"github.com/prectempl/prectempl-cli/pkg/discover"
	"github.com/prectempl/prectempl-cli/pkg/render"
	"github.com/prectempl/prectempl-cli/pkg/runner"
	"github.com/prectempl/prectempl-cli/pkg/tui"
)

// ConfigFileName is where the generated configuration is saved.
const ConfigFileName = ".pre-commit-config.yaml"

var (
	flagInteractive bool
	flagPath        string
	flagQuiet       bool
	flagNoColor     bool
	flagYes         bool
)

var rootCmd = &cobra.Command{
	Use:   "prectempl",
	Short: "Detect project technologies and generate pre-commit configuration",
	Long: `Prectempl inspects a project directory, detects which technologies are in
use (Python, JavaScript/TypeScript, Go, Docker, GitHub Actions, common file
formats), and generates a matching .pre-commit-config.yaml.

By default it saves the configuration and then runs 'pre-commit install' and
'pre-commit run --all-files'. Use -i for an interactive wizard that lets you
accept or override every detected default, or the 'generate' subcommand to
only write the file.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(flagQuiet, flagNoColor, flagYes)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := filepath.Abs(flagPath)
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
		if flagInteractive {
			return runInteractive(root)
		}
		return runAuto(root)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of prectempl",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("prectempl version %s\n", render.Version)
	},
}

// runAuto detects, renders, saves, and hands off to the pre-commit binary.
// Hook-runner failures are warnings: the configuration is already saved.
func runAuto(root string) error {
	cfg, err := discover.Discover(root)
	if err != nil {
		return err
	}

	doc, err := render.RenderConfig(cfg)
	if err != nil {
		return err
	}

	configFile := filepath.Join(root, ConfigFileName)
	if _, err := os.Stat(configFile); err == nil {
		overwrite, err := cli.Confirm(ConfigFileName+" already exists, overwrite?", true)
		if err != nil {
			return err
		}
		if !overwrite {
			cli.PrintInfo("Keeping the existing configuration.")
			return nil
		}
	}
	if err := os.WriteFile(configFile, []byte(doc), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	cli.PrintSuccess("Configuration saved to %s", configFile)

	if out, err := runner.Install(root); err != nil {
		if errors.Is(err, runner.ErrNotInstalled) {
			cli.PrintInfo("pre-commit not found in PATH. Run 'pre-commit install' manually.")
			return nil
		}
		cli.PrintWarning("Failed to install pre-commit hooks: %v", err)
		if strings.TrimSpace(out) != "" {
			fmt.Fprintln(os.Stderr, out)
		}
		return nil
	}

	out, err := runner.RunAllFiles(root)
	if err != nil {
		cli.PrintInfo("Pre-commit setup complete but some hooks failed:")
		if strings.TrimSpace(out) != "" {
			fmt.Println(out)
		}
		return nil
	}
	cli.PrintSuccess("Pre-commit setup complete and all hooks passed!")
	return nil
}

// runInteractive launches the wizard and prints the result to stdout.
func runInteractive(root string) error {
	cfg, err := discover.Discover(root)
	if err != nil {
		return err
	}

	wizard := tui.NewWizard(cfg)
	p := tea.NewProgram(wizard)
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to start the wizard: %w", err)
	}

	w := finalModel.(*tui.Wizard)
	if w.Aborted() {
		return nil
	}

	doc, err := render.RenderConfig(w.Config())
	if err != nil {
		return err
	}
	fmt.Print(doc)
	return nil
}

func init() {
	rootCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "customize the configuration interactively")
	rootCmd.PersistentFlags().StringVar(&flagPath, "path", ".", "path of the project to analyze")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "assume yes for confirmation prompts")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewGenerateCommand(&flagPath))
	rootCmd.AddCommand(commands.NewDetectCommand(&flagPath))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
