package flavor

import (
	"errors"
	"io/fs"
	"reflect"
	"testing"
	"testing/fstest"
)

// testSource is an in-memory Source over fstest.MapFS directories.
type testSource struct {
	user    fs.FS
	builtin fs.FS
	reg     map[string]map[string]any
}

func (s *testSource) Kind() string     { return "test flavor" }
func (s *testSource) UserFS() fs.FS    { return s.user }
func (s *testSource) BuiltinFS() fs.FS { return s.builtin }

func (s *testSource) Builtin(name string) (map[string]any, bool) {
	doc, ok := s.reg[name]
	return doc, ok
}

func (s *testSource) BuiltinNames() []string {
	names := make([]string, 0, len(s.reg))
	for name := range s.reg {
		names = append(names, name)
	}
	return names
}

func dir(files map[string]string) fs.FS {
	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return fsys
}

func TestLoad_PlainDocument(t *testing.T) {
	src := &testSource{
		builtin: dir(map[string]string{
			"plain.toml": "glyph = \"x\"\n",
		}),
	}

	doc, err := NewLoader(src).Load("plain")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if doc["glyph"] != "x" {
		t.Errorf("doc[glyph] = %v, want %q", doc["glyph"], "x")
	}
}

func TestLoad_UserDirectoryTakesPrecedence(t *testing.T) {
	src := &testSource{
		user: dir(map[string]string{
			"dup.toml": "origin = \"user\"\n",
		}),
		builtin: dir(map[string]string{
			"dup.toml": "origin = \"builtin\"\n",
		}),
	}

	doc, err := NewLoader(src).Load("dup")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if doc["origin"] != "user" {
		t.Errorf("doc[origin] = %v, want %q", doc["origin"], "user")
	}
}

func TestLoad_FallsBackToBuiltinDirectory(t *testing.T) {
	src := &testSource{
		user: dir(nil),
		builtin: dir(map[string]string{
			"only.toml": "origin = \"builtin\"\n",
		}),
	}

	doc, err := NewLoader(src).Load("only")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if doc["origin"] != "builtin" {
		t.Errorf("doc[origin] = %v, want %q", doc["origin"], "builtin")
	}
}

func TestLoad_RegistryShortCircuitsFilesystem(t *testing.T) {
	src := &testSource{
		user: dir(map[string]string{
			"default.toml": "origin = \"user\"\n",
		}),
		builtin: dir(nil),
		reg: map[string]map[string]any{
			"default": {"origin": "registry"},
		},
	}

	doc, err := NewLoader(src).Load("default")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if doc["origin"] != "registry" {
		t.Errorf("doc[origin] = %v, want %q", doc["origin"], "registry")
	}
}

func TestLoad_NotFound(t *testing.T) {
	src := &testSource{builtin: dir(nil)}

	_, err := NewLoader(src).Load("missing")

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Load() error = %v, want NotFoundError", err)
	}
	if notFound.Name != "missing" {
		t.Errorf("NotFoundError.Name = %q, want %q", notFound.Name, "missing")
	}
}

func TestLoad_ParseError(t *testing.T) {
	src := &testSource{
		builtin: dir(map[string]string{
			"broken.toml": "this is not valid [toml",
		}),
	}

	_, err := NewLoader(src).Load("broken")

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Load() error = %v, want ParseError", err)
	}
}

func TestLoad_InheritsMustBeString(t *testing.T) {
	src := &testSource{
		builtin: dir(map[string]string{
			"bad.toml": "inherits = 42\n",
		}),
	}

	_, err := NewLoader(src).Load("bad")

	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("Load() error = %v, want SchemaError", err)
	}
}

func TestLoad_TransitiveInheritance(t *testing.T) {
	src := &testSource{
		builtin: dir(map[string]string{
			"b.toml": "inherits = \"a\"\nfrom-b = true\nshared = \"b\"\n",
			"c.toml": "inherits = \"b\"\nfrom-c = true\n",
		}),
		reg: map[string]map[string]any{
			"a": {"from-a": true, "shared": "a", "base-only": "a"},
		},
	}

	doc, err := NewLoader(src).Load("c")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := map[string]any{
		"inherits":  "b",
		"from-a":    true,
		"from-b":    true,
		"from-c":    true,
		"shared":    "b",
		"base-only": "a",
	}
	if !reflect.DeepEqual(doc, want) {
		t.Errorf("Load() = %v, want %v", doc, want)
	}
}

func TestLoad_ChildFieldsWinOverAncestors(t *testing.T) {
	src := &testSource{
		builtin: dir(map[string]string{
			"parent.toml": "[table]\nkey = \"parent\"\nkept = \"parent\"\n",
			"child.toml":  "inherits = \"parent\"\n[table]\nkey = \"child\"\n",
		}),
	}

	doc, err := NewLoader(src).Load("child")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	table := doc["table"].(map[string]any)
	if table["key"] != "child" {
		t.Errorf("table.key = %v, want %q", table["key"], "child")
	}
	if table["kept"] != "parent" {
		t.Errorf("table.kept = %v, want %q", table["kept"], "parent")
	}
}

func TestLoad_SelfInheritLoadsBuiltinParent(t *testing.T) {
	// A user override named "x" inheriting "x" must resolve its parent
	// from the builtin directory instead of looping.
	src := &testSource{
		user: dir(map[string]string{
			"x.toml": "inherits = \"x\"\nextra = \"user\"\n",
		}),
		builtin: dir(map[string]string{
			"x.toml": "base = \"builtin\"\n",
		}),
	}

	doc, err := NewLoader(src).Load("x")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if doc["base"] != "builtin" {
		t.Errorf("doc[base] = %v, want inherited builtin field", doc["base"])
	}
	if doc["extra"] != "user" {
		t.Errorf("doc[extra] = %v, want user field preserved", doc["extra"])
	}
}

func TestLoad_GeneralCycleFails(t *testing.T) {
	src := &testSource{
		builtin: dir(map[string]string{
			"a.toml": "inherits = \"b\"\n",
			"b.toml": "inherits = \"a\"\n",
		}),
	}

	_, err := NewLoader(src).Load("a")

	var cycleErr *CycleError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("Load() error = %v, want CycleError", err)
	}
}

func TestLoad_BuiltinSelfCycleFails(t *testing.T) {
	// Both lookups of "x" land in the builtin directory, so the forced
	// builtin parent lookup cannot break this cycle; the visited set must.
	src := &testSource{
		builtin: dir(map[string]string{
			"x.toml": "inherits = \"x\"\n",
		}),
	}

	_, err := NewLoader(src).Load("x")

	var cycleErr *CycleError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("Load() error = %v, want CycleError", err)
	}
}

func TestNames_UnionDeduplicatedSorted(t *testing.T) {
	src := &testSource{
		user: dir(map[string]string{
			"zeta.toml":   "",
			"shared.toml": "",
			"notes.txt":   "",
		}),
		builtin: dir(map[string]string{
			"alpha.toml":  "",
			"shared.toml": "",
		}),
		reg: map[string]map[string]any{
			"default": {},
		},
	}

	got := NewLoader(src).Names()

	want := []string{"alpha", "default", "shared", "zeta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestNames_MissingDirectoriesIgnored(t *testing.T) {
	src := &testSource{builtin: dir(nil)}

	if got := NewLoader(src).Names(); len(got) != 0 {
		t.Errorf("Names() = %v, want empty", got)
	}
}
