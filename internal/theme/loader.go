package theme

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"sync"

	toml "github.com/pelletier/go-toml/v2"

	"go.dot.industries/glyphs/internal/flavor"
)

// DefaultName is the reserved identifier of the compiled-in theme.
const DefaultName = "default"

//go:embed builtin/*.toml
var builtinAssets embed.FS

// document is the on-disk form of a theme. The inherits key is consumed by
// the flavor loader; it is declared here so strict decoding accepts it.
type document struct {
	Inherits string           `toml:"inherits,omitempty"`
	Styles   map[string]Style `toml:"styles"`
}

// defaultDoc returns the compiled-in default theme as a generic document
// for the flavor loader's builtin registry. Parsed once, shared read-only.
var defaultDoc = sync.OnceValue(func() map[string]any {
	data, err := builtinAssets.ReadFile("builtin/default.toml")
	if err != nil {
		panic("theme: missing embedded default theme: " + err.Error())
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		panic("theme: invalid embedded default theme: " + err.Error())
	}

	return doc
})

// Default returns the compiled-in default theme. The returned value is
// immutable and shared across callers.
func Default() *Theme {
	return defaultTheme()
}

var defaultTheme = sync.OnceValue(func() *Theme {
	th, err := fromGeneric(DefaultName, defaultDoc())
	if err != nil {
		panic("theme: invalid embedded default theme: " + err.Error())
	}
	return th
})

// source adapts the theme directories to the generic flavor loader.
type source struct {
	userDir string
	builtin fs.FS
}

func (s *source) Kind() string { return "theme" }

func (s *source) UserFS() fs.FS {
	if s.userDir == "" {
		return nil
	}
	return os.DirFS(s.userDir)
}

func (s *source) BuiltinFS() fs.FS { return s.builtin }

func (s *source) Builtin(name string) (map[string]any, bool) {
	if name == DefaultName {
		return defaultDoc(), true
	}
	return nil, false
}

func (s *source) BuiltinNames() []string {
	return []string{DefaultName}
}

// Loader loads themes from a user directory and a builtin directory, with
// the same override and inheritance rules as icon flavors.
type Loader struct {
	inner *flavor.Loader
}

// NewLoader creates a theme Loader. An empty userDir disables user
// overrides; an empty builtinDir falls back to the compiled-in themes.
func NewLoader(userDir, builtinDir string) *Loader {
	builtin := builtinDirFS()
	if builtinDir != "" {
		builtin = os.DirFS(builtinDir)
	}

	return &Loader{
		inner: flavor.NewLoader(&source{userDir: userDir, builtin: builtin}),
	}
}

// Load resolves the named theme, following inheritance, and converts it to
// the typed model.
func (l *Loader) Load(name string) (*Theme, error) {
	doc, err := l.inner.Load(name)
	if err != nil {
		return nil, err
	}

	th, err := fromGeneric(name, doc)
	if err != nil {
		return nil, fmt.Errorf("theme %q: %w", name, err)
	}

	return th, nil
}

// Names lists every available theme name.
func (l *Loader) Names() []string {
	return l.inner.Names()
}

// fromGeneric strictly converts a merged generic document into a Theme.
func fromGeneric(name string, generic map[string]any) (*Theme, error) {
	data, err := toml.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("re-encoding merged document: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}

	styles := doc.Styles
	if styles == nil {
		styles = map[string]Style{}
	}

	return New(name, styles), nil
}

func builtinDirFS() fs.FS {
	sub, err := fs.Sub(builtinAssets, "builtin")
	if err != nil {
		panic("theme: embedded builtin directory: " + err.Error())
	}
	return sub
}
