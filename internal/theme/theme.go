// Package theme provides named terminal themes. A theme maps style names
// (diagnostic severities, UI roles) to colors and text attributes, and
// serves as the fallback style source when an icon flavor does not pin a
// color itself.
package theme

// Style is a single named style within a theme.
type Style struct {
	Fg        string `toml:"fg,omitempty"`
	Bold      bool   `toml:"bold,omitempty"`
	Italic    bool   `toml:"italic,omitempty"`
	Underline bool   `toml:"underline,omitempty"`
}

// IsZero reports whether the style carries no color and no attributes.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Theme is an immutable collection of named styles.
type Theme struct {
	name   string
	styles map[string]Style
}

// New creates a Theme from a style table. The table is not copied; callers
// hand over ownership.
func New(name string, styles map[string]Style) *Theme {
	return &Theme{name: name, styles: styles}
}

// Name returns the name the theme was requested under.
func (t *Theme) Name() string { return t.name }

// Get returns the style registered under name. Unknown names yield the
// zero Style.
func (t *Theme) Get(name string) Style {
	return t.styles[name]
}
