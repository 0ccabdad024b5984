package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/prectempl/prectempl-cli/internal/cli"
	"github.com/prectempl/prectempl-cli/pkg/discover"
	"github.com/prectempl/prectempl-cli/pkg/render"
)

var (
	generateOutput string
	generateStdout bool
	generateCopy   bool
)

// NewGenerateCommand creates the generate command. It detects and writes the
// configuration but never invokes the pre-commit binary.
func NewGenerateCommand(path *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate .pre-commit-config.yaml without running pre-commit",
		Long: `Detect the project's technologies and write the resulting configuration.

Examples:
  # Write .pre-commit-config.yaml into the project
  prectempl generate

  # Print the configuration instead of writing it
  prectempl generate --stdout

  # Write it and copy it to the clipboard
  prectempl generate --copy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := filepath.Abs(*path)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			cfg, err := discover.Discover(root)
			if err != nil {
				return err
			}
			doc, err := render.RenderConfig(cfg)
			if err != nil {
				return err
			}

			if generateStdout {
				fmt.Fprint(cmd.OutOrStdout(), doc)
			} else {
				outPath := generateOutput
				if !filepath.IsAbs(outPath) {
					outPath = filepath.Join(root, outPath)
				}
				if err := os.WriteFile(outPath, []byte(doc), 0644); err != nil {
					return fmt.Errorf("failed to write config: %w", err)
				}
				cli.PrintSuccess("Configuration saved to %s", outPath)
			}

			if generateCopy {
				if err := clipboard.WriteAll(doc); err != nil {
					cli.PrintWarning("Failed to copy to clipboard: %v", err)
				} else {
					cli.PrintSuccess("Configuration copied to clipboard")
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&generateOutput, "output", "o", ".pre-commit-config.yaml", "output file, relative to the project path")
	cmd.Flags().BoolVar(&generateStdout, "stdout", false, "print the configuration instead of writing a file")
	cmd.Flags().BoolVar(&generateCopy, "copy", false, "copy the configuration to the clipboard")

	return cmd
}
