// Package rust generates a Rust client crate from a service description.
//
// Generate is a pure transform: it never touches the filesystem or logs, and
// the same description always produces byte-identical files. The crate has
// two files:
//
//	Cargo.toml    package manifest
//	src/lib.rs    Client, global params, schemas and the resources tree
//
// The resources tree mirrors the description's resource tree. Every resource
// becomes a module holding a params module for its parameter types, an
// action struct handed out by the parent, and one builder per method.
package rust

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/ggriffiniii/google-apis/apigen/desc"
	"github.com/ggriffiniii/google-apis/apigen/naming"
	"github.com/ggriffiniii/google-apis/apigen/rust/manifest"
)

// Paths of the generated files, relative to the crate root.
const (
	ManifestPath = "Cargo.toml"
	LibPath      = "src/lib.rs"
)

const (
	resourcesModule = "resources"
	schemasModName  = "schemas"
	clientName      = "Client"
)

// Callables the Client declares for itself.
var clientFns = []string{"new", "with_reqwest_client"}

// Options configures crate generation.
type Options struct {
	// PackageName is the crate name. Defaults to DefaultPackageName of the service.
	PackageName string
}

// File is one generated file.
type File struct {
	Path    string
	Content []byte
}

// Stats summarizes a generated crate.
type Stats struct {
	Resources  int
	Methods    int
	Builders   int
	ParamTypes int
	Schemas    int
	Depth      int
}

// Crate is the result of a successful generation.
type Crate struct {
	Name     string
	Manifest *manifest.Document

	// Resources is the item tree of the resources module.
	Resources *Module

	// Files are sorted by Path.
	Files    []File
	Warnings []desc.Warning
	Stats    Stats
}

// File returns the content of the file at path, or nil.
func (c *Crate) File(path string) []byte {
	for _, f := range c.Files {
		if f.Path == path {
			return f.Content
		}
	}
	return nil
}

// DefaultPackageName returns the crate name used when none is configured,
// e.g. "drive_v3" for drive v3.
func DefaultPackageName(d *desc.ServiceDescription) string {
	name := d.Name
	if d.Version != "" {
		name += "_" + d.Version
	}
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return strings.Trim(b.String(), "_")
}

// Generate validates d and renders the crate. On error no files are produced.
func Generate(d *desc.ServiceDescription, opts Options) (*Crate, error) {
	if d == nil {
		return nil, errors.New("nil service description")
	}
	warnings, errs := desc.Validate(d)
	if len(errs) == 0 {
		errs = checkIdentifiers(d)
	}
	if len(errs) > 0 {
		return nil, errors.Wrapf(errs, "invalid description %s", d.Name)
	}

	name := opts.PackageName
	if name == "" {
		name = DefaultPackageName(d)
	}
	if name == "" {
		return nil, errors.Newf("service %q has no usable package name", d.Name)
	}

	resources, err := generateResource(newScope(d), d.Resource)
	if err != nil {
		return nil, errors.Wrap(err, "generate resources")
	}
	resources.Name = resourcesModule

	schemas, err := schemasItems(d.Schemas)
	if err != nil {
		return nil, errors.Wrap(err, "generate schemas")
	}

	globalDefs := collectTypeDefs(d.GlobalParams)
	items := clientItems(d, resources)
	items = append(items,
		paramTypesModule(globalDefs),
		&Module{Name: schemasModName, Items: schemas},
		resources,
	)
	lib := PrintFile(fileHeader(d), items)

	doc := manifest.Cargo(name)
	cargo, err := doc.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "render manifest")
	}

	stats := resourceStats(d.Resource)
	stats.ParamTypes += len(globalDefs)
	stats.Schemas = len(d.Schemas)

	return &Crate{
		Name:      name,
		Manifest:  doc,
		Resources: resources,
		Files: []File{
			{Path: ManifestPath, Content: cargo},
			{Path: LibPath, Content: []byte(lib)},
		},
		Warnings: warnings,
		Stats:    stats,
	}, nil
}

func fileHeader(d *desc.ServiceDescription) []string {
	header := []string{"// Code generated by google-apis-gen. DO NOT EDIT.", ""}
	title := d.Title
	if title == "" {
		title = d.Name
	}
	about := "//! Client for " + title
	if d.Version != "" {
		about += " (" + d.Name + " " + d.Version + ")"
	}
	return append(header, about+".")
}

// clientItems emits the top-level Client and its impl.
func clientItems(d *desc.ServiceDescription, resources *Module) []Item {
	client := &Struct{
		Doc:     "Entry point of the " + d.Name + " API.",
		Name:    clientName,
		Derives: builderDerives,
		Fields:  []Field{{Name: reqwestField, Type: "::reqwest::Client"}},
	}
	impl := &Impl{
		Type: clientName,
		Consts: []Const{{
			Doc:   "Base URL of every request.",
			Name:  "BASE_URL",
			Type:  "&'static str",
			Value: naming.StringLiteral(d.BaseURL()),
		}},
		Fns: []Fn{
			{
				Doc:     "Creates a client with a default HTTP client.",
				Name:    clientFns[0],
				Returns: "Self",
				Body:    []Stmt{Line(clientName + "::" + clientFns[1] + "(::reqwest::Client::new())")},
			},
			{
				Doc:     "Creates a client that sends requests with reqwest.",
				Name:    clientFns[1],
				Args:    []Arg{{Name: reqwestField, Type: "::reqwest::Client"}},
				Returns: "Self",
				Body:    []Stmt{&StructLit{Type: clientName, Fields: []FieldInit{{Name: reqwestField}}}},
			},
		},
	}

	root := d.Resource
	if len(root.Methods) > 0 {
		impl.Fns = append(impl.Fns, clientCallable(root.Identifier, resourcesModule+"::"+naming.ActionName(root.Identifier)))
	}
	for i := range root.Resources {
		child := &root.Resources[i]
		typ := resourcesModule + "::" + naming.ModuleName(child.Identifier) + "::" + naming.ActionName(child.Identifier)
		impl.Fns = append(impl.Fns, clientCallable(child.Identifier, typ))
	}
	return []Item{client, impl}
}

func clientCallable(identifier, typ string) Fn {
	return Fn{
		Doc:      naming.ResourceDoc(identifier),
		Name:     naming.VarName(identifier),
		Receiver: "&self",
		Returns:  typ + "<'_>",
		Body: []Stmt{&StructLit{
			Type:   typ,
			Fields: []FieldInit{{Name: reqwestField, Expr: "&self." + reqwestField}},
		}},
	}
}

func resourceStats(r *desc.Resource) Stats {
	s := Stats{
		Resources: 1,
		Methods:   len(r.Methods),
		Builders:  len(r.Methods),
		Depth:     r.Depth(),
	}
	var defs []*desc.EnumType
	for i := range r.Methods {
		defs = appendTypeDefs(defs, collectTypeDefs(r.Methods[i].Params)...)
	}
	s.ParamTypes = len(defs)
	for i := range r.Resources {
		c := resourceStats(&r.Resources[i])
		s.Resources += c.Resources
		s.Methods += c.Methods
		s.Builders += c.Builders
		s.ParamTypes += c.ParamTypes
	}
	return s
}
