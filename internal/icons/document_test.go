package icons

import (
	"strings"
	"testing"

	toml "github.com/pelletier/go-toml/v2"
)

func genericDoc(t *testing.T, text string) map[string]any {
	t.Helper()
	var doc map[string]any
	if err := toml.Unmarshal([]byte(text), &doc); err != nil {
		t.Fatalf("test document is not valid TOML: %v", err)
	}
	return doc
}

const minimalDoc = `
[mime-type]
go = { icon = "g" }

[diagnostic]
error = { icon = "x", color = "#FF0000" }
warning = { icon = "!" }
info = { icon = "i" }
hint = { icon = "?" }

[symbol-kind]
file = { icon = "*" }
`

func TestFromGeneric_TypedConversion(t *testing.T) {
	fl, err := fromGeneric("mine", genericDoc(t, minimalDoc))
	if err != nil {
		t.Fatalf("fromGeneric() error = %v", err)
	}

	if fl.Name != "mine" {
		t.Errorf("Name = %q, want %q", fl.Name, "mine")
	}
	if fl.MimeType["go"].Glyph != 'g' {
		t.Errorf("mime-type.go glyph = %q, want 'g'", fl.MimeType["go"].Glyph)
	}
	if fl.Diagnostic.Warning.Glyph != '!' {
		t.Errorf("diagnostic.warning glyph = %q, want '!'", fl.Diagnostic.Warning.Glyph)
	}

	style := fl.Diagnostic.Error.Style
	if style == nil || style.Origin != OriginExplicit || style.Color != "#FF0000" {
		t.Errorf("diagnostic.error style = %+v, want explicit #FF0000", style)
	}
	if fl.Diagnostic.Warning.Style != nil {
		t.Errorf("diagnostic.warning style = %+v, want none before theme defaults", fl.Diagnostic.Warning.Style)
	}
}

func TestFromGeneric_InheritsKeyAccepted(t *testing.T) {
	doc := genericDoc(t, "inherits = \"default\"\n"+minimalDoc)

	if _, err := fromGeneric("child", doc); err != nil {
		t.Fatalf("fromGeneric() error = %v, want inherits to be tolerated", err)
	}
}

func TestFromGeneric_UnknownFieldRejected(t *testing.T) {
	doc := genericDoc(t, minimalDoc+"\n[surprise]\nkey = 1\n")

	if _, err := fromGeneric("odd", doc); err == nil {
		t.Fatal("fromGeneric() expected error for unknown top-level field")
	}
}

func TestFromGeneric_MultiRuneGlyphRejected(t *testing.T) {
	doc := genericDoc(t, strings.Replace(minimalDoc, `go = { icon = "g" }`, `go = { icon = "go" }`, 1))

	if _, err := fromGeneric("odd", doc); err == nil {
		t.Fatal("fromGeneric() expected error for multi-character icon")
	}
}

func TestFromGeneric_MissingDiagnosticRejected(t *testing.T) {
	doc := genericDoc(t, `
[diagnostic]
error = { icon = "x" }
`)

	if _, err := fromGeneric("partial", doc); err == nil {
		t.Fatal("fromGeneric() expected error when a diagnostic severity has no icon")
	}
}

func TestFromGeneric_MalformedColorTreatedAsAbsent(t *testing.T) {
	doc := genericDoc(t, strings.Replace(minimalDoc, `color = "#FF0000"`, `color = "red"`, 1))

	fl, err := fromGeneric("lenient", doc)
	if err != nil {
		t.Fatalf("fromGeneric() error = %v, want malformed colors to degrade, not fail", err)
	}

	if fl.Diagnostic.Error.Style != nil {
		t.Errorf("style = %+v, want none for a malformed color literal", fl.Diagnostic.Error.Style)
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"#FF0000", "#FF0000", true},
		{"#a1B2c3", "#a1B2c3", true},
		{"", "", false},
		{"#FF000", "", false},
		{"#FF00000", "", false},
		{"FF0000", "", false},
		{"#GG0000", "", false},
	}

	for _, tc := range cases {
		got, ok := parseColor(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("parseColor(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
