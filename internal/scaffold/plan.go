package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	serrors "github.com/sockforge/cli/internal/errors"
)

// Options are the independent generation flags. Umbrella mode ignores Sup
// for file selection: an umbrella project has no entry point of its own.
type Options struct {
	// Sup includes a process-supervision entry point.
	Sup bool

	// Umbrella generates a multi-project container instead of a single
	// project.
	Umbrella bool
}

// StepKind discriminates plan steps.
type StepKind int

const (
	// StepCreateDir creates a directory (idempotent for directories).
	StepCreateDir StepKind = iota

	// StepWriteFile renders a catalog entry and writes it to a new file.
	StepWriteFile
)

// Step is one materialization action. Path is relative to the target root.
// Entry and Vars are set only for StepWriteFile.
type Step struct {
	Kind  StepKind
	Path  string
	Entry Entry
	Vars  Bindings
}

// Plan is the ordered list of steps for one generation run. Every CreateDir
// step precedes all WriteFile steps under its path. A plan is built once
// and consumed exactly once.
type Plan struct {
	// Target is the destination directory.
	Target string

	// Umbrella records which mode the plan was built for.
	Umbrella bool

	// Steps are executed strictly in order.
	Steps []Step
}

// BuildPlan selects the catalog subset and directory steps for the given
// identifier and options. It performs no filesystem mutation; its only read
// is the umbrella-nesting probe for single-project mode.
func BuildPlan(target string, id Identifier, opts Options, elixirVersion string) (*Plan, error) {
	entries := ProjectEntries()
	if opts.Umbrella {
		entries = UmbrellaEntries()
	}

	inUmbrella := false
	if !opts.Umbrella {
		inUmbrella = detectUmbrella(target)
	}

	base := NewBindings(id, opts, inUmbrella, elixirVersion)

	plan := &Plan{Target: target, Umbrella: opts.Umbrella}
	seenDirs := map[string]bool{}

	for _, e := range entries {
		vars := base.with(e.Vars)

		path, err := Render(e.Target, vars)
		if err != nil {
			return nil, fmt.Errorf("%w: rendering target path for %s: %w", serrors.ErrInternal, e.Key, err)
		}

		// Emit the ancestor directory chain before the file itself.
		for _, dir := range ancestorDirs(path) {
			if !seenDirs[dir] {
				seenDirs[dir] = true
				plan.Steps = append(plan.Steps, Step{Kind: StepCreateDir, Path: dir})
			}
		}

		plan.Steps = append(plan.Steps, Step{Kind: StepWriteFile, Path: path, Entry: e, Vars: vars})
	}

	if opts.Umbrella {
		// The empty container for future applications.
		plan.Steps = append(plan.Steps, Step{Kind: StepCreateDir, Path: "apps"})
	}

	return plan, nil
}

// ancestorDirs returns the directory chain above path, outermost first
// ("lib/my_app/x.ex" -> ["lib", "lib/my_app"]).
func ancestorDirs(path string) []string {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}

	parts := strings.Split(filepath.ToSlash(dir), "/")
	dirs := make([]string, 0, len(parts))
	for i := range parts {
		dirs = append(dirs, filepath.Join(parts[:i+1]...))
	}
	return dirs
}

// detectUmbrella reports whether target sits inside an umbrella's apps
// directory. The probe reads the manifest two levels up and looks for an
// apps_path declaration. It is a heuristic: any read failure or ambiguity
// means "standalone".
func detectUmbrella(target string) bool {
	manifest := filepath.Join(target, "..", "..", "mix.exs")
	content, err := os.ReadFile(manifest)
	if err != nil {
		return false
	}
	return strings.Contains(string(content), "apps_path:")
}
