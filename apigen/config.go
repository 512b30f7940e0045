package apigen

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/ggriffiniii/google-apis/apigen/desc"
	"github.com/ggriffiniii/google-apis/apigen/sink"
)

// Loader turns a source reference (path, URL or API name) into a description.
type Loader interface {
	Load(ctx context.Context, source string) (*desc.ServiceDescription, error)
}

// Config holds the configuration for crate generation.
type Config struct {
	// OutDir is the crate root files are written below, e.g. "./drive3".
	// Ignored when Sink is set.
	OutDir string

	// PackageName overrides the crate name.
	// Default: "<name>_<version>" of the service
	PackageName string

	// Source is loaded through Loader when no description is given.
	Source string

	// Overwrite controls whether existing files in OutDir are replaced.
	// Default: true
	Overwrite *bool

	// Sink receives the generated files. When nil, files go to a
	// FilesystemSink rooted at OutDir.
	Sink sink.OutputSink

	// Logger reports progress. Default: discard.
	Logger *slog.Logger

	// Loader resolves Source.
	Loader Loader
}

// applyConfigDefaults applies default values to Config.
func applyConfigDefaults(cfg *Config) *Config {
	// Make a copy to avoid mutating the input
	result := *cfg

	if result.Overwrite == nil {
		overwrite := true
		result.Overwrite = &overwrite
	}
	if result.Logger == nil {
		result.Logger = slog.New(slog.DiscardHandler)
	}
	return &result
}

// outputSink returns the configured sink, or a filesystem sink on OutDir.
func (cfg *Config) outputSink() (sink.OutputSink, error) {
	if cfg.Sink != nil {
		return cfg.Sink, nil
	}
	if cfg.OutDir == "" {
		return nil, errors.New("OutDir is required")
	}
	fs := sink.NewFilesystemSink(cfg.OutDir)
	fs.Overwrite = *cfg.Overwrite
	return fs, nil
}

// Generator provides a fluent API for crate generation.
// Create with FromDescription() or FromSource() and configure with method chaining.
//
// Example:
//
//	apigen.FromSource("drive:v3").
//	    WithLoader(discovery.NewClient(discovery.DefaultOptions())).
//	    PackageName("google_drive3").
//	    ToDir(ctx, "./drive3")
type Generator struct {
	desc *desc.ServiceDescription
	cfg  Config
}

// FromDescription creates a Generator for an already loaded description.
func FromDescription(d *desc.ServiceDescription) *Generator {
	return &Generator{desc: d}
}

// FromSource creates a Generator that loads source with the configured Loader.
func FromSource(source string) *Generator {
	return &Generator{cfg: Config{Source: source}}
}

// PackageName sets the crate name.
func (g *Generator) PackageName(name string) *Generator {
	g.cfg.PackageName = name
	return g
}

// Overwrite controls whether ToDir replaces existing files.
func (g *Generator) Overwrite(overwrite bool) *Generator {
	g.cfg.Overwrite = &overwrite
	return g
}

// WithLogger sets the progress logger.
func (g *Generator) WithLogger(logger *slog.Logger) *Generator {
	g.cfg.Logger = logger
	return g
}

// WithLoader sets the loader used for FromSource.
func (g *Generator) WithLoader(l Loader) *Generator {
	g.cfg.Loader = l
	return g
}

// ToDir writes the crate below dir.
// This is a terminal operation that writes files to disk.
func (g *Generator) ToDir(ctx context.Context, dir string) (*GenerateResult, error) {
	cfg := g.cfg
	cfg.OutDir = dir
	cfg.Sink = nil
	return Generate(ctx, g.desc, &cfg)
}

// ToSink writes the crate to s.
func (g *Generator) ToSink(ctx context.Context, s sink.OutputSink) (*GenerateResult, error) {
	cfg := g.cfg
	cfg.Sink = s
	return Generate(ctx, g.desc, &cfg)
}

// Generate returns generated files in memory without writing to disk.
// Use ToDir() to write files to disk instead.
func (g *Generator) Generate(ctx context.Context) (*GenerateResult, error) {
	return g.ToSink(ctx, sink.NewMemorySink())
}
