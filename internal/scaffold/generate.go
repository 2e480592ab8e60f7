package scaffold

import "github.com/sockforge/cli/internal/output"

// Generator runs one generation end to end: validation, planning, and
// materialization. Validation completes before any filesystem mutation.
type Generator struct {
	// Registry answers module-name availability checks.
	Registry NameRegistry

	// Sink receives directory and file creation.
	Sink Sink

	// ElixirVersion is the full runtime version the generated project
	// targets.
	ElixirVersion string
}

// New returns a Generator wired to the real filesystem and the built-in
// reserved-name registry.
func New(elixirVersion string) *Generator {
	return &Generator{
		Registry:      ReservedRegistry{},
		Sink:          OSSink{},
		ElixirVersion: elixirVersion,
	}
}

// Generate validates the names, plans the file set, and materializes it
// under target. app may be empty, in which case it is inferred from the
// target path's base name; appExplicit tracks whether the caller supplied
// it (it only changes validation error hints). mod may be empty, in which
// case it is derived from the app name.
func (g *Generator) Generate(target, app string, appExplicit bool, mod string, opts Options) (*Plan, *Report, error) {
	id, err := NewIdentifier(app, appExplicit, mod, g.Registry)
	if err != nil {
		return nil, nil, err
	}

	plan, err := BuildPlan(target, id, opts, g.ElixirVersion)
	if err != nil {
		return nil, nil, err
	}

	output.Debug("materializing plan",
		"target", target,
		"app", id.App,
		"mod", id.Mod,
		"umbrella", opts.Umbrella,
		"sup", opts.Sup,
		"steps", len(plan.Steps))

	report, err := Execute(plan, g.Sink)
	if err != nil {
		return plan, report, err
	}
	return plan, report, nil
}
