package cmd

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/ideaspaper/xcurl/internal/constants"
)

// Color definitions for consistent styling across commands
var (
	headerColor  = color.New(color.FgCyan)
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed, color.Bold)
	warnColor    = color.New(color.FgYellow)
	dimColor     = color.New(color.FgHiBlack)
)

// setColors turns fatih/color output on or off for the diagnostics and
// listings printed by commands.
func setColors(enabled bool) {
	color.NoColor = !enabled
}

// getMethodColor returns the appropriate color for an HTTP method
func getMethodColor(method string) *color.Color {
	switch method {
	case constants.MethodGET:
		return color.New(color.FgGreen, color.Bold)
	case constants.MethodPOST:
		return color.New(color.FgYellow, color.Bold)
	case constants.MethodPUT:
		return color.New(color.FgBlue, color.Bold)
	case constants.MethodDELETE:
		return color.New(color.FgRed, color.Bold)
	case constants.MethodPATCH:
		return color.New(color.FgMagenta, color.Bold)
	default:
		return color.New(color.FgWhite, color.Bold)
	}
}

// printMarker prints a marker (like * for current item)
func printMarker(marked bool) string {
	if marked {
		return successColor.Sprint("* ")
	}
	return "  "
}

// printError writes the single diagnostic line for a failed command.
func printError(err error) {
	fmt.Fprintf(color.Error, "%s %v\n", errorColor.Sprint("Error:"), err)
}

// warnf writes a warning line to stderr.
func warnf(format string, args ...any) {
	fmt.Fprintf(color.Error, "%s %s\n", warnColor.Sprint("Warning:"), fmt.Sprintf(format, args...))
}

// infof writes a dimmed diagnostic line to stderr when --verbose is set.
func infof(format string, args ...any) {
	if !verbose {
		return
	}
	fmt.Fprintln(color.Error, dimColor.Sprintf("* "+format, args...))
}
