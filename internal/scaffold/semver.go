package scaffold

import "strings"

// FormatVersion derives the short version requirement written into the
// generated manifest from a full runtime version triple. The patch number
// and any build metadata are dropped; the first prerelease tag is kept:
//
//	"1.2.3"      -> "1.2"
//	"1.2.3-rc.0" -> "1.2-rc.0"
//
// Major and minor are copied verbatim, never parsed as numbers.
func FormatVersion(full string) string {
	full, _, _ = strings.Cut(full, "+")
	version, prerelease, _ := strings.Cut(full, "-")

	parts := strings.SplitN(version, ".", 3)
	short := parts[0]
	if len(parts) > 1 {
		short = parts[0] + "." + parts[1]
	}

	if prerelease != "" {
		first, _, _ := strings.Cut(prerelease, "-")
		short += "-" + first
	}

	return short
}
