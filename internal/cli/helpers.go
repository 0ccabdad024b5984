package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Confirm prompts the user for a yes/no answer on stdin.
func Confirm(prompt string, defaultYes bool) (bool, error) {
	if assumeYes {
		return true, nil
	}

	suffix := " [y/N]: "
	if defaultYes {
		suffix = " [Y/n]: "
	}

	fmt.Print(prompt + suffix)

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}

	response = strings.ToLower(strings.TrimSpace(response))
	if response == "" {
		return defaultYes, nil
	}
	return response == "y" || response == "yes", nil
}

// PrintSuccess prints a success message unless quiet mode is enabled.
func PrintSuccess(format string, args ...interface{}) {
	if quiet {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if noColor {
		fmt.Printf("OK: %s\n", msg)
	} else {
		fmt.Printf("✓ %s\n", msg)
	}
}

// PrintInfo prints an info message unless quiet mode is enabled.
func PrintInfo(format string, args ...interface{}) {
	if quiet {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if noColor {
		fmt.Printf("INFO: %s\n", msg)
	} else {
		fmt.Printf("ℹ %s\n", msg)
	}
}

// PrintWarning prints a warning message to stderr. Warnings are shown even
// in quiet mode.
func PrintWarning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if noColor {
		fmt.Fprintf(os.Stderr, "WARNING: %s\n", msg)
	} else {
		fmt.Fprintf(os.Stderr, "⚠ %s\n", msg)
	}
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if noColor {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", msg)
	} else {
		fmt.Fprintf(os.Stderr, "✗ %s\n", msg)
	}
}

// Global flags, set once from the cmd package.
var (
	quiet     bool
	noColor   bool
	assumeYes bool
)

// SetGlobalFlags wires the root command's persistent flags into this package.
func SetGlobalFlags(q, nc, yes bool) {
	quiet = q
	noColor = nc
	assumeYes = yes
}
