package fragment

import (
	"path/filepath"
	"strings"
)

// Fragment kinds, encoded as filename prefixes in the available store.
const (
	KindConfig    = "cfg"
	KindExtension = "ext"
)

// CanonicalName derives a fragment name from a path or raw name: take
// the basename, strip a trailing .ini extension if present, then a
// trailing .so extension if present.
func CanonicalName(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, ".ini")
	name = strings.TrimSuffix(name, ".so")
	return name
}

// StoredName prepends the kind prefix to a canonical name. Kind may be
// empty, in which case the name is returned unchanged; list, enable,
// disable, remove and show address fragments by their full stored name.
func StoredName(kind, name string) string {
	if kind == "" {
		return name
	}
	return kind + "-" + name
}

// fileName is the on-disk basename for a stored fragment name.
func fileName(name string) string {
	return name + ".ini"
}
