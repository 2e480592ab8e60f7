package scaffold

import (
	"bytes"
	"fmt"
	"text/template"

	serrors "github.com/sockforge/cli/internal/errors"
)

// Render produces the final text for one template body. It is a pure
// function of (body, vars): no filesystem access, no process state.
//
// Templates use only two forms: variable interpolation ({{.app}}) and
// single-level boolean blocks ({{if .sup}}...{{end}}). A variable missing
// from the bindings is a catalog bug, reported as ErrInternal rather than
// a user-facing failure.
func Render(body string, vars Bindings) (string, error) {
	tmpl, err := template.New("scaffold").Option("missingkey=error").Parse(body)
	if err != nil {
		return "", fmt.Errorf("%w: parsing template: %w", serrors.ErrInternal, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any(vars)); err != nil {
		return "", fmt.Errorf("%w: executing template: %w", serrors.ErrInternal, err)
	}

	return buf.String(), nil
}
