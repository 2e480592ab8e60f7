package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sockforge/cli/internal/output"
	"github.com/sockforge/cli/internal/scaffold"
)

var (
	newApp      string
	newModule   string
	newSup      bool
	newUmbrella bool
)

// NewNewCmd creates the new command.
func NewNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <path>",
		Short: "Create a new networked service project",
		Long: `Create a new networked service project at the given path.

The application name defaults to the base name of the path; the module
name defaults to its camelized form (my_app becomes MyApp).

Examples:
  # Create a project
  sockforge new my_app

  # Create a project with a supervised entry point
  sockforge new my_app --sup

  # Create an umbrella container for multiple applications
  sockforge new my_platform --umbrella

  # Override the derived names
  sockforge new ./services/gateway --app gateway --module Edge.Gateway`,
		Args: cobra.ExactArgs(1),
		RunE: runNew,
	}

	cmd.Flags().StringVar(&newApp, "app", "", "application name (defaults to the path's base name)")
	cmd.Flags().StringVar(&newModule, "module", "", "module name (defaults to the camelized app name)")
	cmd.Flags().BoolVar(&newSup, "sup", false, "generate a supervised entry point")
	cmd.Flags().BoolVar(&newUmbrella, "umbrella", false, "generate an umbrella container project")

	return cmd
}

func runNew(_ *cobra.Command, args []string) error {
	target := args[0]

	app := newApp
	explicit := app != ""
	if app == "" {
		app = filepath.Base(filepath.Clean(target))
	}

	opts := scaffold.Options{Sup: newSup, Umbrella: newUmbrella}

	gen := scaffold.New(CurrentConfig().ElixirVersion)
	plan, report, err := gen.Generate(target, app, explicit, newModule, opts)
	if err != nil {
		return err
	}

	printReport(target, plan, report)
	return nil
}

// printReport writes the created-file summary and the next-steps hint.
func printReport(target string, plan *scaffold.Plan, report *scaffold.Report) {
	kind := "project"
	if plan.Umbrella {
		kind = "umbrella project"
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		abs = target
	}

	summary := output.Styled(output.StyleSummary, fmt.Sprintf("Created %s in %s", kind, abs))
	output.Println(output.FormatCheckmark(summary))
	output.Println("")

	entries := make([]output.FileEntry, 0, len(report.Created))
	for _, path := range report.Created {
		entries = append(entries, output.FileEntry{
			Path:        "  " + path,
			Description: fileDescription(path),
		})
	}
	output.Print(output.RenderFileTree(entries, 34))

	output.Print(nextSteps(target, plan.Umbrella))
}

// fileDescription returns the short description shown next to a created path.
func fileDescription(path string) string {
	path = strings.TrimSuffix(filepath.ToSlash(path), "/")

	switch path {
	case "README.md":
		return "Project overview"
	case ".gitignore":
		return "Build artifact ignores"
	case ".editorconfig":
		return "Editor defaults"
	case "mix.exs":
		return "Build manifest"
	case "config":
		return "Environment configuration"
	case "apps":
		return "Container for applications"
	case "config/config.exs":
		return "Shared configuration"
	case "test/test_helper.exs":
		return "Test harness bootstrap"
	}

	switch {
	case strings.HasPrefix(path, "config/"):
		return "Environment overrides"
	case strings.HasSuffix(path, "_acceptor.ex"):
		return "Connection acceptor scaffold"
	case strings.HasSuffix(path, "_protocol_handler.ex"):
		return "Session handler scaffold"
	case strings.HasSuffix(path, "_test.exs"):
		return "Example test"
	case strings.HasPrefix(path, "lib/") && strings.HasSuffix(path, ".ex"):
		return "Application entry point"
	}
	return ""
}

// nextSteps returns the mode-appropriate hint printed after a successful run.
func nextSteps(target string, umbrella bool) string {
	if umbrella {
		return fmt.Sprintf(`
Your umbrella project was created successfully.

Next steps:

    cd %s/apps
    sockforge new my_service --sup

Each application under apps/ is its own project sharing the umbrella build.
`, target)
	}
	return fmt.Sprintf(`
Your project was created successfully.

Next steps:

    cd %s
    mix test

Run "iex -S mix" to start your application in an interactive shell.
`, target)
}
