package report

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrTimestampNotFound means a text blob carries no DD.MM.YYYY HH:MM token.
	ErrTimestampNotFound = errors.New("no timestamp found")

	// ErrRenderInvariant means freshly rendered content carries no detectable
	// timestamp. The renderer embeds one unconditionally, so this is a
	// programming error, never a data problem.
	ErrRenderInvariant = errors.New("rendered report has no detectable timestamp")

	// ErrUnsafeUsername means a username cannot safely name a report file.
	ErrUnsafeUsername = errors.New("username is not filesystem-safe")
)

// CorruptReportError reports an existing on-disk report whose embedded
// timestamp cannot be recovered. Reconciliation refuses to overwrite such a
// file; it is left exactly as found.
type CorruptReportError struct {
	Path string
	Err  error
}

func (e *CorruptReportError) Error() string {
	return fmt.Sprintf("corrupt report %s: %v", e.Path, e.Err)
}

func (e *CorruptReportError) Unwrap() error {
	return e.Err
}
