package ir

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// IDKind discriminates the three forms an Identifier can take during
// construction and resolution.
type IDKind int

const (
	// IDUnique is a globally fresh integer, never visible to the user.
	IDUnique IDKind = iota
	// IDPath is a user-visible dotted name.
	IDPath
	// IDIndex is a resolved position in the side table. Every Identifier
	// reachable at runtime must be in this form.
	IDIndex
)

// Identifier names a grammar production. See IDKind for the three forms.
type Identifier struct {
	Kind   IDKind
	Unique uint64
	Path   string
	Index  int
}

func (id Identifier) String() string {
	switch id.Kind {
	case IDPath:
		return id.Path
	case IDIndex:
		return fmt.Sprintf("#%d", id.Index)
	default:
		return fmt.Sprintf("$%d", id.Unique)
	}
}

var uniqueCounter atomic.Uint64

// NewUnique mints a process-wide fresh Unique identifier. The counter is
// only required to be unique across callers, not ordered.
func NewUnique() Identifier {
	return Identifier{Kind: IDUnique, Unique: uniqueCounter.Add(1)}
}

// Path builds a user-visible dotted identifier.
func Path(name string) Identifier {
	return Identifier{Kind: IDPath, Path: name}
}

// Index builds a resolved side-table identifier.
func Index(i int) Identifier {
	return Identifier{Kind: IDIndex, Index: i}
}

// Prefixes returns the progressively shorter dotted prefixes of a Path
// identifier, from the full path down to "" (the whole-grammar namespace),
// e.g. "a.b.c" -> ["a.b.c", "a.b", "a", ""]. Used by resolve.identify to
// propagate a definition under each of its ancestor namespaces.
func (id Identifier) Prefixes() []string {
	if id.Kind != IDPath {
		return nil
	}
	if id.Path == "" {
		return []string{""}
	}
	segments := strings.Split(id.Path, ".")
	prefixes := make([]string, 0, len(segments)+1)
	for i := len(segments); i > 0; i-- {
		prefixes = append(prefixes, strings.Join(segments[:i], "."))
	}
	prefixes = append(prefixes, "")
	return prefixes
}
