package logger

import (
	"os" // Standard error for Fatal

	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// Define colorized printing functions for different log levels using fatih/color.
// These are package-level variables holding functions that behave like fmt.Printf,
// but with text colored appropriately for the log level.

// Info logs progress and success messages in green.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs non-fatal problems (missing assets, skipped steps) in bright magenta.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs failures in red. Fatal errors are still returned to the caller;
// Error is only for reporting.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug logs debug messages in cyan once Init(true) has been called.
// It starts as a no-op so packages can log before the CLI sets it up.
var Debug = func(format string, a ...any) {}

// Init enables or disables debug logging.
// When enabled, Debug prints cyan-colored messages; otherwise it silently drops them.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}

// Fatal prints an error in red to standard error. It is used for the final
// error of a failed command, which must not mix with a command's stdout output.
func Fatal(format string, a ...any) {
	_, _ = color.New(color.FgRed).Fprintf(os.Stderr, format, a...)
}
