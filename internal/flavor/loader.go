// Package flavor resolves named, user-overridable TOML documents with
// single-parent inheritance. It is generic over document families: icon
// sets and themes both load through the same Loader, each supplying its
// own Source.
package flavor

import (
	"io/fs"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"go.dot.industries/glyphs/internal/merge"
)

// Ext is the file extension recognized for flavor documents.
const Ext = ".toml"

// inheritsKey names the reserved key linking a document to its parent.
const inheritsKey = "inherits"

// mergeDepth bounds inheritance merging: top-level tables, their entries,
// and one nested field table merge key-by-key; anything deeper is
// replaced by the child document wholesale.
const mergeDepth = 3

// Source describes one family of flavor documents. Builtin documents
// returned by Builtin must be complete (no "inherits" key) and are treated
// as read-only by the Loader.
type Source interface {
	// Kind is a human-readable family name used in error messages.
	Kind() string

	// UserFS is the user override directory, or nil when none is
	// configured.
	UserFS() fs.FS

	// BuiltinFS is the directory of documents shipped with the
	// application.
	BuiltinFS() fs.FS

	// Builtin returns the compiled-in document registered under name.
	// The registry is consulted before any filesystem access.
	Builtin(name string) (map[string]any, bool)

	// BuiltinNames lists the names registered in the compiled-in
	// registry.
	BuiltinNames() []string
}

// Loader resolves flavor documents by name, following inheritance chains
// and merging ancestors into descendants.
type Loader struct {
	src Source
}

// NewLoader creates a Loader backed by the given Source.
func NewLoader(src Source) *Loader {
	return &Loader{src: src}
}

// Load resolves name into a fully merged document. Fields set by a
// document always win over fields inherited from its ancestors.
//
// A user document may inherit from the builtin document of the same name;
// the lookup for that parent is forced to the builtin directory so the
// chain terminates. Any other inheritance cycle fails with a CycleError.
func (l *Loader) Load(name string) (map[string]any, error) {
	return l.load(name, name, false, make(map[visit]bool))
}

// visit identifies one lookup within a resolution call. The builtinOnly
// dimension keeps the forced-builtin lookup of the base name distinct
// from its user-directory lookup.
type visit struct {
	name        string
	builtinOnly bool
}

func (l *Loader) load(name, base string, builtinOnly bool, seen map[visit]bool) (map[string]any, error) {
	v := visit{name: name, builtinOnly: builtinOnly}
	if seen[v] {
		return nil, &CycleError{Kind: l.src.Kind(), Name: name}
	}
	seen[v] = true

	if doc, ok := l.src.Builtin(name); ok {
		return doc, nil
	}

	doc, err := l.readDocument(name, builtinOnly)
	if err != nil {
		return nil, err
	}

	raw, ok := doc[inheritsKey]
	if !ok {
		return doc, nil
	}

	parent, ok := raw.(string)
	if !ok {
		return nil, &SchemaError{
			Kind:   l.src.Kind(),
			Name:   name,
			Reason: "expected 'inherits' to be a string",
		}
	}

	parentDoc, ok := l.src.Builtin(parent)
	if !ok {
		parentDoc, err = l.load(parent, base, parent == base, seen)
		if err != nil {
			return nil, err
		}
	}

	return merge.Merge(parentDoc, doc, mergeDepth).(map[string]any), nil
}

// readDocument reads and parses the document for name, preferring the user
// directory unless builtinOnly forces the builtin one.
func (l *Loader) readDocument(name string, builtinOnly bool) (map[string]any, error) {
	filename := name + Ext

	fsys := l.src.BuiltinFS()
	if user := l.src.UserFS(); user != nil && !builtinOnly {
		if _, err := fs.Stat(user, filename); err == nil {
			fsys = user
		}
	}

	data, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return nil, &NotFoundError{Kind: l.src.Kind(), Name: name}
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Kind: l.src.Kind(), Name: name, Err: err}
	}

	return doc, nil
}

// Names lists every flavor name available across the builtin registry and
// both directories. Duplicates across sources are the same logical flavor
// and appear once. The result is sorted.
func (l *Loader) Names() []string {
	set := make(map[string]struct{})

	for _, name := range l.src.BuiltinNames() {
		set[name] = struct{}{}
	}
	for _, name := range namesIn(l.src.UserFS()) {
		set[name] = struct{}{}
	}
	for _, name := range namesIn(l.src.BuiltinFS()) {
		set[name] = struct{}{}
	}

	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// namesIn collects the base names of recognized documents in a directory.
// A missing or unreadable directory yields no names.
func namesIn(fsys fs.FS) []string {
	if fsys == nil {
		return nil
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name, ok := strings.CutSuffix(entry.Name(), Ext)
		if !ok || name == "" {
			continue
		}
		names = append(names, name)
	}

	return names
}
