package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/teamfit/teamfit/internal/logger"
)

// ErrNotFound marks record lookups that matched nothing.
var ErrNotFound = stderrors.New("not found")

// NotFound reports a failed record lookup, e.g. "member not found: alice".
// Callers can match it with errors.Is against ErrNotFound.
func NotFound(kind, ref string) error {
	return fmt.Errorf("%s %w: %s", kind, ErrNotFound, ref)
}

// Format renders an error for the terminal with a consistent "Error: " prefix.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf is Format for a message built from a format string.
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs the error, prints it to stderr, and exits with code 1.
// A nil error is a no-op.
func Fatal(err error) {
	if err != nil {
		logger.Error("command failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf is Fatal for a message built from a format string.
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("command failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
