package scaffold

import (
	"embed"
	"fmt"

	serrors "github.com/sockforge/cli/internal/errors"
)

//go:embed templates
var templateFS embed.FS

// Entry describes one template in the catalog: where its body lives in the
// embedded filesystem, where the rendered result lands relative to the
// target root, and which variable slots the body declares.
//
// The catalog is process-wide static state: initialized at startup, never
// mutated.
type Entry struct {
	// Key is the stable template identifier.
	Key string

	// Source is the body's path inside the embedded filesystem.
	Source string

	// Target is the output path pattern, rendered with the run bindings
	// (it may reference the application name and per-entry variables).
	Target string

	// Requires lists the run-wide binding keys the body references.
	Requires []string

	// Vars carries per-entry static bindings, used by the symmetric
	// transport pairs that share one template shape.
	Vars map[string]any
}

// Body returns the raw template text. A read failure means the binary was
// built with a broken catalog.
func (e Entry) Body() (string, error) {
	b, err := templateFS.ReadFile(e.Source)
	if err != nil {
		return "", fmt.Errorf("%w: reading template %s: %w", serrors.ErrInternal, e.Key, err)
	}
	return string(b), nil
}

// projectEntries is the single-project catalog, in plan order.
var projectEntries = []Entry{
	{
		Key:      "readme",
		Source:   "templates/project/README.md.tmpl",
		Target:   "README.md",
		Requires: []string{"app", "mod"},
	},
	{
		Key:      "gitignore",
		Source:   "templates/project/gitignore.tmpl",
		Target:   ".gitignore",
		Requires: []string{"app"},
	},
	{
		Key:    "editorconfig",
		Source: "templates/project/editorconfig.tmpl",
		Target: ".editorconfig",
	},
	{
		Key:      "mixfile",
		Source:   "templates/project/mix.exs.tmpl",
		Target:   "mix.exs",
		Requires: []string{"mod", "otp_app_clause", "version", "in_umbrella", "sup"},
	},
	{
		Key:      "config",
		Source:   "templates/project/config.exs.tmpl",
		Target:   "config/config.exs",
		Requires: []string{"app"},
	},
	{
		Key:      "config_dev",
		Source:   "templates/project/env.exs.tmpl",
		Target:   "config/dev.exs",
		Requires: []string{"app"},
		Vars:     map[string]any{"env": "dev"},
	},
	{
		Key:      "config_prod",
		Source:   "templates/project/env.exs.tmpl",
		Target:   "config/prod.exs",
		Requires: []string{"app"},
		Vars:     map[string]any{"env": "prod"},
	},
	{
		Key:      "config_test",
		Source:   "templates/project/env.exs.tmpl",
		Target:   "config/test.exs",
		Requires: []string{"app"},
		Vars:     map[string]any{"env": "test"},
	},
	{
		Key:      "ssl_acceptor",
		Source:   "templates/project/acceptor.ex.tmpl",
		Target:   "lib/{{.app}}/ssl_acceptor.ex",
		Requires: []string{"app", "mod"},
		Vars:     map[string]any{"transport": "ssl", "transport_mod": "Ssl"},
	},
	{
		Key:      "tcp_acceptor",
		Source:   "templates/project/acceptor.ex.tmpl",
		Target:   "lib/{{.app}}/tcp_acceptor.ex",
		Requires: []string{"app", "mod"},
		Vars:     map[string]any{"transport": "tcp", "transport_mod": "Tcp"},
	},
	{
		Key:      "ssl_protocol_handler",
		Source:   "templates/project/protocol_handler.ex.tmpl",
		Target:   "lib/{{.app}}/ssl_protocol_handler.ex",
		Requires: []string{"app", "mod"},
		Vars:     map[string]any{"transport": "ssl", "transport_mod": "Ssl"},
	},
	{
		Key:      "tcp_protocol_handler",
		Source:   "templates/project/protocol_handler.ex.tmpl",
		Target:   "lib/{{.app}}/tcp_protocol_handler.ex",
		Requires: []string{"app", "mod"},
		Vars:     map[string]any{"transport": "tcp", "transport_mod": "Tcp"},
	},
	{
		Key:      "app",
		Source:   "templates/project/app.ex.tmpl",
		Target:   "lib/{{.app}}.ex",
		Requires: []string{"app", "mod", "sup"},
	},
	{
		Key:    "test_helper",
		Source: "templates/project/test_helper.exs.tmpl",
		Target: "test/test_helper.exs",
	},
	{
		Key:      "app_test",
		Source:   "templates/project/app_test.exs.tmpl",
		Target:   "test/{{.app}}_test.exs",
		Requires: []string{"app", "mod"},
	},
}

// umbrellaEntries is the umbrella-mode catalog, in plan order. An umbrella
// holds no code of its own, so no lib, test, or transport templates apply.
var umbrellaEntries = []Entry{
	{
		Key:      "readme",
		Source:   "templates/umbrella/README.md.tmpl",
		Target:   "README.md",
		Requires: []string{"mod"},
	},
	{
		Key:      "gitignore",
		Source:   "templates/project/gitignore.tmpl",
		Target:   ".gitignore",
		Requires: []string{"app"},
	},
	{
		Key:      "mixfile",
		Source:   "templates/umbrella/mix.exs.tmpl",
		Target:   "mix.exs",
		Requires: []string{"mod", "version"},
	},
	{
		Key:      "config",
		Source:   "templates/umbrella/config.exs.tmpl",
		Target:   "config/config.exs",
		Requires: []string{},
	},
}

// ProjectEntries returns the single-project catalog.
func ProjectEntries() []Entry { return projectEntries }

// UmbrellaEntries returns the umbrella-mode catalog.
func UmbrellaEntries() []Entry { return umbrellaEntries }
