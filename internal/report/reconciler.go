package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Action is the outcome of reconciling one user's report.
type Action int

const (
	ActionNone Action = iota
	// ActionCreated: no report existed and a fresh one was written.
	ActionCreated
	// ActionUnchanged: the existing report matches the fresh content apart
	// from its embedded timestamp; nothing was touched.
	ActionUnchanged
	// ActionReplaced: the existing report was archived, then rewritten.
	ActionReplaced
)

func (a Action) String() string {
	switch a {
	case ActionCreated:
		return "created"
	case ActionUnchanged:
		return "unchanged"
	case ActionReplaced:
		return "replaced"
	default:
		return "none"
	}
}

// Reconciler maintains exactly one current report file per username under
// its directory. Superseded reports are archived under an old_ prefix
// carrying the timestamp of the content they hold; nothing is ever deleted.
//
// Reconciliations of distinct usernames are independent. Two concurrent
// reconciliations of the same username would race on the archive rename and
// must be serialized by the caller; the sequential batch driver never
// produces that situation.
type Reconciler struct {
	dir       string
	sanitizer FilenameSanitizer
}

// NewReconciler creates the report directory if it is absent and returns a
// reconciler writing beneath it.
func NewReconciler(dir string, sanitizer FilenameSanitizer) (*Reconciler, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create report directory %s: %w", dir, err)
	}
	return &Reconciler{dir: dir, sanitizer: sanitizer}, nil
}

// Reconcile renders u's report as of now and installs it: written verbatim
// when no report exists, left alone when the existing report differs only
// in its timestamp, archived and replaced otherwise.
//
// The on-disk report is the only persisted state, so "same data" is decided
// by comparing rendered text with each side's embedded timestamp masked
// out. Only the first occurrence of each timestamp is removed; the renderer
// embeds exactly one.
func (r *Reconciler) Reconcile(u *UserTasks, now time.Time) (Action, error) {
	username := u.User.Username
	if err := ValidateUsername(username); err != nil {
		return ActionNone, err
	}

	content := Render(u, now)
	contentTS, err := ExtractTimestamp(content)
	if err != nil {
		return ActionNone, fmt.Errorf("%w: user %s", ErrRenderInvariant, username)
	}

	path := filepath.Join(r.dir, username+".txt")
	existing, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := r.write(path, content); err != nil {
			return ActionNone, err
		}
		return ActionCreated, nil
	}
	if err != nil {
		return ActionNone, fmt.Errorf("failed to read report %s: %w", path, err)
	}

	existingTS, err := ExtractTimestamp(string(existing))
	if err != nil {
		// The existing file has no recoverable timestamp. Refuse to
		// overwrite it: replacing would silently destroy whatever is there.
		return ActionNone, &CorruptReportError{Path: path, Err: err}
	}

	if strings.Replace(content, contentTS, "", 1) == strings.Replace(string(existing), existingTS, "", 1) {
		return ActionUnchanged, nil
	}

	if err := r.archive(path, username, existingTS); err != nil {
		return ActionNone, err
	}
	if err := r.write(path, content); err != nil {
		return ActionNone, err
	}
	return ActionReplaced, nil
}

// archive renames the current report out of the way, embedding the
// timestamp of the content it holds in a filesystem-legal form.
func (r *Reconciler) archive(path, username, timestamp string) error {
	name := fmt.Sprintf("old_%s.txt_%s.txt", username, r.sanitizer.Sanitize(timestamp))
	if err := os.Rename(path, filepath.Join(r.dir, name)); err != nil {
		return fmt.Errorf("failed to archive report %s: %w", path, err)
	}
	return nil
}

func (r *Reconciler) write(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}
