package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	serrors "github.com/sockforge/cli/internal/errors"
)

// Sink is the filesystem collaborator the materializer writes through.
// Implementations must create files all-or-nothing: a partially written
// file must never be observable at the final path.
type Sink interface {
	// MkdirAll creates a directory and any missing parents. An existing
	// directory is not an error; an existing file at the path is.
	MkdirAll(path string) error

	// WriteNew creates a new file with the given content. It fails if the
	// path already exists, without touching the existing file.
	WriteNew(path string, content []byte) error
}

// OSSink writes to the real filesystem.
type OSSink struct{}

// MkdirAll implements Sink.
func (OSSink) MkdirAll(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return serrors.NewPathUncreatableError(
			fmt.Sprintf("cannot create directory %s", path), path, err)
	}
	return nil
}

// WriteNew implements Sink. The content lands in a temporary file first and
// is renamed into place, so an interrupted run never leaves a half-written
// file at the final path.
func (OSSink) WriteNew(path string, content []byte) error {
	if _, err := os.Lstat(path); err == nil {
		return serrors.NewAlreadyExistsError(
			fmt.Sprintf("file %s already exists", path), path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return serrors.NewPathUncreatableError(
			fmt.Sprintf("cannot create file in %s", filepath.Dir(path)), path, err)
	}

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing %s: %w", path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("placing %s: %w", path, err)
	}
	return nil
}

// Report is the materialization outcome: the paths created, in plan order.
// Directories carry a trailing separator. On failure the report still lists
// everything created before the failing step; partial output is left in
// place for inspection, never rolled back.
type Report struct {
	Created []string
}

// Execute runs the plan against the sink, strictly in order, stopping at
// the first failure. The returned report is always non-nil.
func Execute(plan *Plan, sink Sink) (*Report, error) {
	report := &Report{}

	if err := sink.MkdirAll(plan.Target); err != nil {
		return report, err
	}

	for _, step := range plan.Steps {
		abs := filepath.Join(plan.Target, step.Path)

		switch step.Kind {
		case StepCreateDir:
			if err := sink.MkdirAll(abs); err != nil {
				return report, err
			}
			report.Created = append(report.Created, step.Path+string(os.PathSeparator))

		case StepWriteFile:
			body, err := step.Entry.Body()
			if err != nil {
				return report, err
			}
			content, err := Render(body, step.Vars)
			if err != nil {
				return report, fmt.Errorf("rendering %s: %w", step.Entry.Key, err)
			}
			if err := sink.WriteNew(abs, []byte(content)); err != nil {
				return report, err
			}
			report.Created = append(report.Created, step.Path)
		}
	}

	return report, nil
}
