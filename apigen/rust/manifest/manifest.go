// Package manifest emits the Cargo.toml of a generated client crate.
package manifest

import (
	"bytes"
	"maps"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
)

// Version is the package version every generated crate starts at.
const Version = "0.1.0"

const template = `
[package]
name = "CRATE NAME GOES HERE"
version = "VERSION GOES HERE"
authors = ["Glenn Griffin <ggriffiniii@gmail.com"]
edition = "2018"

[dependencies]
serde = { version = "1", features = ["derive"] }
serde_json = "1"
chrono = { version = "0.4", features = ["serde"] }
reqwest = "0.9"
field_selector = { git = "https://github.com/ggriffiniii/google-apis" }
mime = "0.3"
textnonce = "0.6"
`

// Document is a parsed Cargo manifest. Package and Dependencies are typed
// views; every other key of the parsed source is written back unchanged.
type Document struct {
	Package      Package
	Dependencies map[string]any

	raw map[string]any
}

// Package is the [package] table.
type Package struct {
	Name    string   `toml:"name"`
	Version string   `toml:"version"`
	Authors []string `toml:"authors"`
	Edition string   `toml:"edition"`
}

// Parse decodes a manifest.
func Parse(data []byte) (*Document, error) {
	var typed struct {
		Package      Package        `toml:"package"`
		Dependencies map[string]any `toml:"dependencies"`
	}
	if err := toml.Unmarshal(data, &typed); err != nil {
		return nil, errors.Wrap(err, "parse manifest")
	}
	raw := map[string]any{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "parse manifest")
	}
	return &Document{Package: typed.Package, Dependencies: typed.Dependencies, raw: raw}, nil
}

// Cargo returns the manifest for a crate named name. The template is fixed,
// so a parse failure is a programming error and panics.
func Cargo(name string) *Document {
	doc, err := Parse([]byte(template))
	if err != nil {
		panic(err)
	}
	doc.Package.Name = name
	doc.Package.Version = Version
	return doc
}

// Marshal serializes the manifest. Strings are written as TOML literal
// strings and inline tables as dotted sub-tables, both of which Cargo reads.
func (d *Document) Marshal() ([]byte, error) {
	out := maps.Clone(d.raw)
	if out == nil {
		out = map[string]any{}
	}
	pkg := map[string]any{}
	if prev, ok := out["package"].(map[string]any); ok {
		pkg = maps.Clone(prev)
	}
	pkg["name"] = d.Package.Name
	pkg["version"] = d.Package.Version
	if d.Package.Authors != nil {
		pkg["authors"] = d.Package.Authors
	}
	if d.Package.Edition != "" {
		pkg["edition"] = d.Package.Edition
	}
	out["package"] = pkg
	if d.Dependencies != nil {
		out["dependencies"] = d.Dependencies
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(false)
	if err := enc.Encode(out); err != nil {
		return nil, errors.Wrap(err, "encode manifest")
	}
	return buf.Bytes(), nil
}
