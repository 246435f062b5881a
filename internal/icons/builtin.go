package icons

import (
	"embed"
	"io/fs"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
)

// DefaultName is the reserved identifier of the compiled-in baseline
// flavor. It resolves without touching the filesystem and cannot be
// shadowed by a user file.
const DefaultName = "default"

//go:embed builtin/*.toml
var builtinAssets embed.FS

// defaultDoc returns the compiled-in baseline flavor as a generic
// document for the flavor loader's builtin registry. Parsed once, shared
// read-only.
var defaultDoc = sync.OnceValue(func() map[string]any {
	data, err := builtinAssets.ReadFile("builtin/default.toml")
	if err != nil {
		panic("icons: missing embedded default flavor: " + err.Error())
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		panic("icons: invalid embedded default flavor: " + err.Error())
	}

	return doc
})

var defaultFlavor = sync.OnceValue(func() *Flavor {
	fl, err := fromGeneric(DefaultName, defaultDoc())
	if err != nil {
		panic("icons: invalid embedded default flavor: " + err.Error())
	}
	return fl
})

// Default returns a fresh copy of the compiled-in baseline flavor. The
// copy is the caller's to mutate through style resolution.
func Default() *Flavor {
	return defaultFlavor().clone()
}

func builtinDirFS() fs.FS {
	sub, err := fs.Sub(builtinAssets, "builtin")
	if err != nil {
		panic("icons: embedded builtin directory: " + err.Error())
	}
	return sub
}
