// Package apigen generates Rust client crates for Google APIs.
//
// The work is split into stages: a description is loaded (see
// internal/discovery), validated and rendered by package rust, and the
// resulting files are written through a sink.OutputSink.
package apigen

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/ggriffiniii/google-apis/apigen/desc"
	"github.com/ggriffiniii/google-apis/apigen/rust"
)

// GenerateResult describes a generated crate.
type GenerateResult struct {
	// Crate is the rendered crate.
	Crate *rust.Crate

	// Files maps each written path to its content.
	Files map[string][]byte

	// Warnings are the non-fatal issues found in the description.
	Warnings []desc.Warning
}

// Paths returns the written paths in sorted order.
func (r *GenerateResult) Paths() []string {
	paths := make([]string, 0, len(r.Files))
	for p := range r.Files {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

// Generate renders the crate for d and writes it through the configured sink.
// When d is nil, cfg.Source is loaded through cfg.Loader. Nothing is written
// if the description is invalid.
func Generate(ctx context.Context, d *desc.ServiceDescription, cfg *Config) (*GenerateResult, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	cfg = applyConfigDefaults(cfg)
	log := cfg.Logger

	if d == nil {
		loaded, err := load(ctx, cfg)
		if err != nil {
			return nil, err
		}
		d = loaded
	}

	out, err := cfg.outputSink()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	crate, err := rust.Generate(d, rust.Options{PackageName: cfg.PackageName})
	if err != nil {
		return nil, err
	}
	for _, w := range crate.Warnings {
		log.Warn("description warning", "code", w.Code, "param", w.Param, "message", w.Message)
	}

	result := &GenerateResult{
		Crate:    crate,
		Files:    make(map[string][]byte, len(crate.Files)),
		Warnings: crate.Warnings,
	}
	files := slices.Clone(crate.Files)
	slices.SortFunc(files, func(a, b rust.File) int { return cmp.Compare(a.Path, b.Path) })
	for _, f := range files {
		if err := out.WriteFile(ctx, f.Path, f.Content); err != nil {
			return nil, errors.Wrapf(err, "write %s", f.Path)
		}
		result.Files[f.Path] = f.Content
		log.Debug("wrote file", "path", f.Path, "bytes", len(f.Content))
	}

	log.Info("generated crate",
		"crate", crate.Name,
		"resources", crate.Stats.Resources,
		"methods", crate.Stats.Methods,
		"schemas", crate.Stats.Schemas,
		"duration", time.Since(start))
	return result, nil
}

func load(ctx context.Context, cfg *Config) (*desc.ServiceDescription, error) {
	if cfg.Source == "" {
		return nil, errors.New("no description: set Source or pass a description")
	}
	if cfg.Loader == nil {
		return nil, errors.Newf("no loader configured for source %q", cfg.Source)
	}
	cfg.Logger.Debug("loading description", "source", cfg.Source)
	d, err := cfg.Loader.Load(ctx, cfg.Source)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", cfg.Source)
	}
	return d, nil
}
