// Package icons materializes icon flavors: named, user-overridable icon
// sets resolved through inheritance and styled against a terminal theme.
package icons

import (
	"path/filepath"
	"strings"

	"go.dot.industries/glyphs/internal/theme"
)

// StyleOrigin records where an icon's color came from. The distinction
// drives precedence: an explicit color from a flavor document is never
// overwritten by a theme-derived one.
type StyleOrigin uint8

const (
	// OriginExplicit marks a color pinned in the flavor document.
	OriginExplicit StyleOrigin = iota

	// OriginDerived marks a color taken from the active theme. A derived
	// style may be refreshed by a later derived value.
	OriginDerived
)

// Style is the color attached to an icon, tagged with its origin. An empty
// Color is a colorless style, used when true-color output is unavailable.
type Style struct {
	Origin StyleOrigin
	Color  string
}

// Icon is a single glyph with an optional style. A nil Style means no
// styling has been resolved for it yet.
type Icon struct {
	Glyph rune
	Style *Style
}

// Diagnostic holds one icon per diagnostic severity.
type Diagnostic struct {
	Error   Icon
	Warning Icon
	Info    Icon
	Hint    Icon
}

// Flavor is a fully materialized icon set. It always carries the name it
// was requested under, even when every field came from an ancestor
// document.
type Flavor struct {
	Name       string
	MimeType   map[string]Icon
	Diagnostic Diagnostic
	SymbolKind map[string]Icon
}

// ApplyThemeDefaults fills in diagnostic icon styles from the theme, one
// style per severity name. Icons whose color was pinned in the document
// keep it; icons with no style or a derived style receive the theme's.
func (f *Flavor) ApplyThemeDefaults(th *theme.Theme) {
	severities := []struct {
		icon *Icon
		name string
	}{
		{&f.Diagnostic.Error, "error"},
		{&f.Diagnostic.Warning, "warning"},
		{&f.Diagnostic.Info, "info"},
		{&f.Diagnostic.Hint, "hint"},
	}

	for _, s := range severities {
		if s.icon.Style != nil && s.icon.Style.Origin == OriginExplicit {
			continue
		}
		s.icon.Style = &Style{Origin: OriginDerived, Color: th.Get(s.name).Fg}
	}
}

// StripStyles forces every icon style to a colorless derived value, for
// terminals without true-color support. It must run after
// ApplyThemeDefaults so no true-color value survives on incapable
// terminals.
func (f *Flavor) StripStyles() {
	strip := func(ic Icon) Icon {
		ic.Style = &Style{Origin: OriginDerived}
		return ic
	}

	for key, ic := range f.MimeType {
		f.MimeType[key] = strip(ic)
	}
	for key, ic := range f.SymbolKind {
		f.SymbolKind[key] = strip(ic)
	}

	f.Diagnostic.Error = strip(f.Diagnostic.Error)
	f.Diagnostic.Warning = strip(f.Diagnostic.Warning)
	f.Diagnostic.Info = strip(f.Diagnostic.Info)
	f.Diagnostic.Hint = strip(f.Diagnostic.Hint)
}

// ForPath returns the icon for a file path. The lookup key is the file's
// extension without its leading dot when one exists; dotfiles and
// extension-less names such as ".gitignore" or "Makefile" match by full
// base name. When the mime-type table has no entry, the symbol-kind
// "file" icon is used. ok is false when the flavor defines no applicable
// icon; callers must tolerate that.
func (f *Flavor) ForPath(path string) (Icon, bool) {
	if ic, ok := f.MimeType[lookupKey(path)]; ok {
		return ic, true
	}
	if ic, ok := f.SymbolKind["file"]; ok {
		return ic, true
	}
	return Icon{}, false
}

func lookupKey(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == "" || ext == base {
		return base
	}
	return strings.TrimPrefix(ext, ".")
}

// clone returns a deep copy so cached and builtin flavors can be handed
// out without sharing mutable state.
func (f *Flavor) clone() *Flavor {
	cp := &Flavor{
		Name:       f.Name,
		MimeType:   cloneIcons(f.MimeType),
		SymbolKind: cloneIcons(f.SymbolKind),
		Diagnostic: Diagnostic{
			Error:   cloneIcon(f.Diagnostic.Error),
			Warning: cloneIcon(f.Diagnostic.Warning),
			Info:    cloneIcon(f.Diagnostic.Info),
			Hint:    cloneIcon(f.Diagnostic.Hint),
		},
	}
	return cp
}

func cloneIcons(m map[string]Icon) map[string]Icon {
	cp := make(map[string]Icon, len(m))
	for k, ic := range m {
		cp[k] = cloneIcon(ic)
	}
	return cp
}

func cloneIcon(ic Icon) Icon {
	if ic.Style != nil {
		style := *ic.Style
		ic.Style = &style
	}
	return ic
}
