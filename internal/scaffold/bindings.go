package scaffold

import "fmt"

// Bindings is the variable substitution context for one generation run.
// Built once from the validated identifier, the generation options, and the
// target runtime version; read-only during rendering.
type Bindings map[string]any

// NewBindings builds the run-wide bindings.
//
// elixirVersion is the full runtime version the generated project targets;
// the manifest requirement is its short form (see FormatVersion).
// inUmbrella reflects whether the target sits inside an umbrella's apps
// directory, which switches the manifest to its in-umbrella form.
func NewBindings(id Identifier, opts Options, inUmbrella bool, elixirVersion string) Bindings {
	return Bindings{
		"app":            id.App,
		"mod":            id.Mod,
		"otp_app_clause": fmt.Sprintf("app: :%s,", id.App),
		"version":        FormatVersion(elixirVersion),
		"sup":            opts.Sup,
		"in_umbrella":    inUmbrella,
	}
}

// with returns a copy of the bindings extended with per-entry variables.
// The receiver is never mutated.
func (b Bindings) with(extra map[string]any) Bindings {
	if len(extra) == 0 {
		return b
	}
	merged := make(Bindings, len(b)+len(extra))
	for k, v := range b {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}
