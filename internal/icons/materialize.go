package icons

import (
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"

	"go.dot.industries/glyphs/internal/flavor"
	"go.dot.industries/glyphs/internal/theme"
)

// source adapts the icon flavor directories to the generic flavor loader.
type source struct {
	userDir string
	builtin fs.FS
}

func (s *source) Kind() string { return "icon flavor" }

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

// Option configures a Materializer.
type Option func(*Materializer)

// WithCache attaches an in-memory cache to the materializer. Nil values
// are ignored.
func WithCache(c *Cache) Option {
	return func(m *Materializer) {
		if c != nil {
			m.cache = c
		}
	}
}

// Materializer resolves icon flavors by name and turns them into typed,
// style-resolved flavors ready for rendering.
type Materializer struct {
	loader *flavor.Loader
	cache  *Cache
}

// NewMaterializer creates a Materializer over the given directories. An
// empty userDir disables user overrides; an empty builtinDir falls back
// to the compiled-in flavors.
func NewMaterializer(userDir, builtinDir string, opts ...Option) *Materializer {
	builtin := builtinDirFS()
	if builtinDir != "" {
		builtin = os.DirFS(builtinDir)
	}

	m := &Materializer{
		loader: flavor.NewLoader(&source{userDir: userDir, builtin: builtin}),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Materialize resolves the named flavor through its inheritance chain,
// converts it to the typed model, and applies style precedence: explicit
// document colors first, theme-derived defaults for diagnostics second,
// colorless degradation last when trueColor is false.
//
// Resolution errors (missing file, bad TOML, bad inherits) propagate. A
// merged document that does not match the icon schema degrades to the
// builtin default flavor instead of failing; the cause is logged.
func (m *Materializer) Materialize(name string, th *theme.Theme, trueColor bool) (*Flavor, error) {
	if m.cache != nil {
		if fl, ok := m.cache.Get(name, th.Name(), trueColor); ok {
			return fl, nil
		}
	}

	fl, err := m.materialize(name, th, trueColor)
	if err != nil {
		return nil, err
	}

	if m.cache != nil {
		m.cache.Set(name, th.Name(), trueColor, fl)
	}

	return fl, nil
}

func (m *Materializer) materialize(name string, th *theme.Theme, trueColor bool) (*Flavor, error) {
	merged, err := m.loader.Load(name)
	if err != nil {
		return nil, err
	}

	fl, err := fromGeneric(name, merged)
	if err != nil {
		log.Error().
			Err(err).
			Str("flavor", name).
			Msg("flavor does not match the icon schema, using the default flavor")
		fl = Default()
	}

	fl.ApplyThemeDefaults(th)

	if !trueColor {
		fl.StripStyles()
	}

	return fl, nil
}

// Resolve returns the fully merged generic document for name without
// converting it to the typed model. Useful for inspecting what a flavor
// inherits.
func (m *Materializer) Resolve(name string) (map[string]any, error) {
	return m.loader.Load(name)
}

// Names lists every available flavor name across the builtin registry and
// both directories.
func (m *Materializer) Names() []string {
	return m.loader.Names()
}

// Check loads and converts the named flavor strictly, reporting any error
// instead of degrading to the default. Used by validation tooling.
func (m *Materializer) Check(name string) error {
	merged, err := m.loader.Load(name)
	if err != nil {
		return err
	}

	_, err = fromGeneric(name, merged)
	return err
}
