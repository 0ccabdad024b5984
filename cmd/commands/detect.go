package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prectempl/prectempl-cli/internal/cli"
	"github.com/prectempl/prectempl-cli/pkg/discover"
	"github.com/prectempl/prectempl-cli/pkg/models"
)

var detectFormat string

// NewDetectCommand creates the detect command, which prints what discovery
// found without generating anything.
func NewDetectCommand(path *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Show which technologies discovery finds in the project",
		Long: `Scan the project and print the detected technologies and options.

Examples:
  # Human-readable table
  prectempl detect

  # Machine-readable output
  prectempl detect -f json
  prectempl detect -f yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := filepath.Abs(*path)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			cfg, err := discover.Discover(root)
			if err != nil {
				return err
			}

			if detectFormat != string(cli.FormatText) {
				return cli.OutputResults(cmd.OutOrStdout(), detectFormat, cfg)
			}

			printDetectionTable(cmd, cfg)
			return nil
		},
	}

	cmd.Flags().StringVarP(&detectFormat, "format", "f", "text", "output format (text, json, yaml)")

	return cmd
}

func printDetectionTable(cmd *cobra.Command, cfg *models.Config) {
	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("TECHNOLOGY", "DETAILS")

	if cfg.Python {
		details := "no version pin"
		if cfg.PythonVersion != "" {
			details = cfg.PythonVersion
		}
		if cfg.UvLock {
			details += ", uv.lock"
		}
		table.Row("python", details)
	}
	if cfg.JS {
		var details []string
		if cfg.TypeScript {
			details = append(details, "typescript")
		}
		if cfg.JSX {
			details = append(details, "jsx")
		}
		if cfg.PrettierConfig != "" {
			details = append(details, cfg.PrettierConfig)
		}
		if cfg.ESLintConfig != "" {
			details = append(details, cfg.ESLintConfig)
		}
		table.Row("javascript", strings.Join(details, ", "))
	}
	if cfg.Go {
		table.Row("go", "")
	}
	if cfg.Docker {
		table.Row("docker", "")
	}
	if cfg.GitHubActions {
		table.Row("github-actions", "")
	}

	var formats []string
	if cfg.YAMLCheck {
		formats = append(formats, "yaml")
	}
	if cfg.JSONCheck {
		formats = append(formats, "json")
	}
	if cfg.TOMLCheck {
		formats = append(formats, "toml")
	}
	if cfg.XMLCheck {
		formats = append(formats, "xml")
	}
	if len(formats) > 0 {
		table.Row("file formats", strings.Join(formats, ", "))
	}

	if len(cfg.DetectedTechnologies()) == 0 && len(formats) == 0 {
		table.Row("(none)", "only base hooks will be generated")
	}

	table.Flush()
}
