package icons

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
)

// iconEntry is the on-disk form of a single icon.
type iconEntry struct {
	Icon  string `toml:"icon"`
	Color string `toml:"color,omitempty"`
}

// diagnosticSection requires an icon per severity; a flavor that leaves
// one out fails conversion.
type diagnosticSection struct {
	Error   iconEntry `toml:"error"`
	Warning iconEntry `toml:"warning"`
	Info    iconEntry `toml:"info"`
	Hint    iconEntry `toml:"hint"`
}

// document is the on-disk form of an icon flavor. The inherits key is
// consumed by the flavor loader; declaring it here keeps strict decoding
// from rejecting merged documents instead of stripping the key textually.
type document struct {
	Inherits   string               `toml:"inherits,omitempty"`
	MimeType   map[string]iconEntry `toml:"mime-type"`
	Diagnostic diagnosticSection    `toml:"diagnostic"`
	SymbolKind map[string]iconEntry `toml:"symbol-kind"`
}

// fromGeneric strictly converts a merged generic document into a typed
// Flavor. Unknown fields and malformed glyphs are conversion errors;
// malformed color literals are logged and treated as absent.
func fromGeneric(name string, generic map[string]any) (*Flavor, error) {
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

	return convert(name, &doc)
}

// convert builds the typed flavor from a decoded document. The name is
// assigned here, after conversion; it never participates in merging.
func convert(name string, doc *document) (*Flavor, error) {
	fl := &Flavor{
		Name:       name,
		MimeType:   make(map[string]Icon, len(doc.MimeType)),
		SymbolKind: make(map[string]Icon, len(doc.SymbolKind)),
	}

	for key, entry := range doc.MimeType {
		ic, err := convertEntry(name, "mime-type."+key, entry)
		if err != nil {
			return nil, err
		}
		fl.MimeType[key] = ic
	}

	for key, entry := range doc.SymbolKind {
		ic, err := convertEntry(name, "symbol-kind."+key, entry)
		if err != nil {
			return nil, err
		}
		fl.SymbolKind[key] = ic
	}

	severities := []struct {
		entry iconEntry
		icon  *Icon
		field string
	}{
		{doc.Diagnostic.Error, &fl.Diagnostic.Error, "diagnostic.error"},
		{doc.Diagnostic.Warning, &fl.Diagnostic.Warning, "diagnostic.warning"},
		{doc.Diagnostic.Info, &fl.Diagnostic.Info, "diagnostic.info"},
		{doc.Diagnostic.Hint, &fl.Diagnostic.Hint, "diagnostic.hint"},
	}
	for _, s := range severities {
		ic, err := convertEntry(name, s.field, s.entry)
		if err != nil {
			return nil, err
		}
		*s.icon = ic
	}

	return fl, nil
}

// convertEntry converts one icon entry. A successfully parsed color
// becomes an explicit style.
func convertEntry(flavor, field string, entry iconEntry) (Icon, error) {
	if utf8.RuneCountInString(entry.Icon) != 1 {
		return Icon{}, fmt.Errorf("%s: icon must be a single character, got %q", field, entry.Icon)
	}
	glyph, _ := utf8.DecodeRuneInString(entry.Icon)

	ic := Icon{Glyph: glyph}

	color, ok := parseColor(entry.Color)
	switch {
	case ok:
		ic.Style = &Style{Origin: OriginExplicit, Color: color}
	case entry.Color != "":
		log.Warn().
			Str("flavor", flavor).
			Str("icon", field).
			Str("color", entry.Color).
			Msg("ignoring malformed color, expected #RRGGBB")
	}

	return ic, nil
}

// parseColor validates a 7-character #RRGGBB literal. Anything else,
// including the empty string, means no explicit color.
func parseColor(s string) (string, bool) {
	if len(s) != 7 || s[0] != '#' {
		return "", false
	}
	for _, c := range s[1:] {
		if !isHexDigit(c) {
			return "", false
		}
	}
	return s, true
}

func isHexDigit(c rune) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}
