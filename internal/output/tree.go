package output

import "strings"

// FileEntry represents a file in a tree listing.
type FileEntry struct {
	Path        string
	Description string
}

// RenderFileTree renders a file tree with descriptions aligned at the given
// column. Paths longer than the column get a single separating space.
func RenderFileTree(files []FileEntry, alignColumn int) string {
	var b strings.Builder
	for _, f := range files {
		padding := alignColumn - len(f.Path)
		if padding < 1 {
			padding = 1
		}
		b.WriteString(Styled(StyleNoun, f.Path))
		if f.Description != "" {
			b.WriteString(strings.Repeat(" ", padding))
			b.WriteString(Styled(StyleDim, f.Description))
		}
		b.WriteString("\n")
	}
	return b.String()
}
