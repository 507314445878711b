package domain

import (
	"path/filepath"
	"strings"
)

// NavigationPlan describes where a session should be displayed.
// It is a plan, not an action; the caller applies it.
type NavigationPlan struct {
	MustCreateSurface bool
	ReuseSurfaceID    string // Empty when no surface can be reused
	TargetWorkspace   string // Empty when no workspace switch applies
}

// DirContains reports whether dir is parent or lies beneath it
func DirContains(parent, dir string) bool {
	if parent == "" || dir == "" {
		return false
	}
	parent = filepath.Clean(parent)
	dir = filepath.Clean(dir)
	if parent == dir {
		return true
	}
	if !strings.HasSuffix(parent, string(filepath.Separator)) {
		parent += string(filepath.Separator)
	}
	return strings.HasPrefix(dir, parent)
}
