// Package scaffold implements the project generation engine: identifier
// validation, template selection, rendering, and materialization.
package scaffold

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-openapi/inflect"

	serrors "github.com/sockforge/cli/internal/errors"
)

// Application names become OTP application atoms, so they are restricted to
// the lowercase snake form.
var appNameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Module names are one or more dot-separated alias segments.
var moduleSegmentRegex = regexp.MustCompile(`^[A-Z][A-Za-z0-9_]*$`)

// Identifier is the validated name pair for one generation run. Immutable
// once built; the run fails before any filesystem mutation if either part
// is invalid.
type Identifier struct {
	// App is the application name in lowercase snake form (e.g. "my_app").
	App string

	// Mod is the module name in dotted Pascal form (e.g. "My.App").
	Mod string
}

// ValidateAppName checks an application name against the snake-form rule.
// explicit distinguishes a name passed via --app from one inferred from the
// target path; it changes the remediation hint, not the rule.
func ValidateAppName(raw string, explicit bool) error {
	if appNameRegex.MatchString(raw) {
		return nil
	}

	if explicit {
		return serrors.NewInvalidNameError(
			fmt.Sprintf("application name %q must start with a lowercase letter and contain only lowercase letters, digits, and underscores", raw),
			raw,
			"Fix the value passed to --app.",
		)
	}
	return serrors.NewInvalidNameError(
		fmt.Sprintf("application name %q (inferred from the target path) must start with a lowercase letter and contain only lowercase letters, digits, and underscores", raw),
		raw,
		"Rename the target directory, or pass --app explicitly.",
	)
}

// ValidateModuleName checks a module name: dot-separated segments, each
// starting with an uppercase letter.
func ValidateModuleName(raw string) error {
	segments := strings.Split(raw, ".")
	for _, seg := range segments {
		if !moduleSegmentRegex.MatchString(seg) {
			return serrors.NewInvalidNameError(
				fmt.Sprintf("module name %q is invalid: each dot-separated segment must start with an uppercase letter and contain only letters, digits, and underscores", raw),
				raw,
				"Pass --module with a name like MyApp or My.App.",
			)
		}
	}
	return nil
}

// ModuleNameFromApp derives the module name from a validated application
// name by camelizing it ("my_app" -> "MyApp"). Deterministic: the same app
// name always yields the same module name.
func ModuleNameFromApp(app string) string {
	return inflect.Camelize(app)
}

// CheckModuleAvailability asks the name registry whether mod is already a
// defined top-level name. The registry is best-effort: a clean answer is
// not a guarantee that the name is free at compile time in the generated
// project's own toolchain.
func CheckModuleAvailability(mod string, reg NameRegistry) error {
	if !reg.IsDefined(mod) {
		return nil
	}
	return serrors.NewNameCollisionError(
		fmt.Sprintf("module name %s is already taken", mod),
		mod,
		"Pick another module name with --module.",
	)
}

// NewIdentifier validates the raw inputs and builds the Identifier for one
// run. mod may be empty, in which case it is derived from app.
func NewIdentifier(app string, appExplicit bool, mod string, reg NameRegistry) (Identifier, error) {
	if err := ValidateAppName(app, appExplicit); err != nil {
		return Identifier{}, err
	}

	if mod == "" {
		mod = ModuleNameFromApp(app)
	} else if err := ValidateModuleName(mod); err != nil {
		return Identifier{}, err
	}

	if err := CheckModuleAvailability(mod, reg); err != nil {
		return Identifier{}, err
	}

	return Identifier{App: app, Mod: mod}, nil
}
