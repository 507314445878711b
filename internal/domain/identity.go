package domain

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
)

// DisplayNameSeparator joins the configuration name and directory label
const DisplayNameSeparator = " Agent @ "

// DisplayNameFor builds the human label of a session, e.g. "Claude Code Agent @ api".
// Restart recovers the creation configuration by matching this prefix.
func DisplayNameFor(configName, workingDir string) string {
	return configName + DisplayNameSeparator + dirLabel(workingDir)
}

// BaseIdentifier derives the tmux-safe identifier for a kind and working directory
func BaseIdentifier(kind, workingDir string) string {
	id := SanitizeIdentifier(kind + "-" + dirLabel(workingDir))
	if id == "" {
		return "agent"
	}
	return id
}

// NthIdentifier returns the identifier for the n-th session sharing a base.
// The first session keeps the bare base.
func NthIdentifier(base string, n int) string {
	if n <= 1 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, n)
}

// SanitizeIdentifier converts a label to a tmux-compatible session name.
// Letters and digits are kept, lowered, along with inner hyphens. Spaces, periods, colons
// and slashes become underscores, collapsed. Everything else is dropped.
func SanitizeIdentifier(label string) string {
	var result strings.Builder
	lastWasUnderscore := false

	for _, r := range label {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-':
			result.WriteRune(unicode.ToLower(r))
			lastWasUnderscore = false
		case r == '_' || unicode.IsSpace(r) || r == '.' || r == ':' || r == '/':
			if !lastWasUnderscore && result.Len() > 0 {
				result.WriteRune('_')
				lastWasUnderscore = true
			}
		}
	}

	return strings.TrimRight(result.String(), "_-")
}

func dirLabel(workingDir string) string {
	if workingDir == "" {
		return "~"
	}
	base := filepath.Base(filepath.Clean(workingDir))
	if base == "." || base == string(filepath.Separator) {
		return workingDir
	}
	return base
}
