package report

import (
	"fmt"
	"runtime"
	"strings"
)

// FilenameSanitizer turns an extracted report timestamp into a
// filesystem-legal archive suffix. Timestamps contain dots, a space and a
// colon; the colon is illegal in filenames on some platforms, so the
// implementation is chosen once at startup rather than branched per call.
type FilenameSanitizer interface {
	Sanitize(timestamp string) string
}

// PosixSanitizer keeps the colon: "05.03.2024 14:30" becomes
// "05-03-2024T14:30".
type PosixSanitizer struct{}

func (PosixSanitizer) Sanitize(timestamp string) string {
	timestamp = strings.ReplaceAll(timestamp, ".", "-")
	return strings.ReplaceAll(timestamp, " ", "T")
}

// WindowsSanitizer additionally replaces the colon: "05.03.2024 14:30"
// becomes "05-03-2024T14-30".
type WindowsSanitizer struct{}

func (WindowsSanitizer) Sanitize(timestamp string) string {
	timestamp = strings.ReplaceAll(timestamp, ".", "-")
	timestamp = strings.ReplaceAll(timestamp, " ", "T")
	return strings.ReplaceAll(timestamp, ":", "-")
}

// SanitizerForOS returns the sanitizer matching a GOOS value.
func SanitizerForOS(goos string) FilenameSanitizer {
	if goos == "windows" {
		return WindowsSanitizer{}
	}
	return PosixSanitizer{}
}

// DefaultSanitizer returns the sanitizer for the running platform.
func DefaultSanitizer() FilenameSanitizer {
	return SanitizerForOS(runtime.GOOS)
}

// ValidateUsername rejects usernames that cannot safely name a report file.
// Usernames arrive from remote data; one containing a path separator would
// escape the report directory, and rewriting unsafe names could collide two
// distinct usernames onto one path, so validation fails instead of mangling.
func ValidateUsername(username string) error {
	if username == "" || username == "." || username == ".." {
		return fmt.Errorf("%w: %q", ErrUnsafeUsername, username)
	}
	if strings.ContainsAny(username, "/\\\x00") {
		return fmt.Errorf("%w: %q", ErrUnsafeUsername, username)
	}
	return nil
}
