// Package gen implements the gen subcommand.
package gen

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/ggriffiniii/google-apis/apigen"
	"github.com/ggriffiniii/google-apis/apigen/sink"
	"github.com/ggriffiniii/google-apis/cmd/google-apis-gen/internal/cli"
	"github.com/ggriffiniii/google-apis/internal/config"
	"github.com/ggriffiniii/google-apis/internal/discovery"
	"github.com/ggriffiniii/google-apis/internal/watch"
)

type Cmd struct {
	Source      string `arg:"" optional:"" help:"Discovery document: file path, URL, or API reference such as drive:v3."`
	Out         string `help:"Output directory for the crate." short:"o" type:"path"`
	Package     string `help:"Crate name (default: <name>_<version>)." short:"p"`
	Config      string `help:"Configuration file." short:"c" type:"existingfile"`
	Txtar       bool   `help:"Write the crate to stdout as a txtar archive instead of to disk."`
	Watch       bool   `help:"Watch the source file and regenerate on change." short:"w"`
	NoOverwrite bool   `help:"Fail instead of replacing existing files." name:"no-overwrite"`
}

// options merges the config file (if any) under the flags.
type options struct {
	source    string
	out       string
	pkg       string
	overwrite *bool
	http      discovery.Options
}

func (c *Cmd) options() (*options, error) {
	opts := &options{http: discovery.DefaultOptions()}
	if c.Config != "" {
		f, err := config.Load(c.Config)
		if err != nil {
			return nil, err
		}
		opts.source = f.Source
		opts.out = f.OutDir
		opts.pkg = f.Package
		opts.overwrite = f.Overwrite
		opts.http = f.DiscoveryOptions()
	}
	if c.Source != "" {
		opts.source = c.Source
	}
	if c.Out != "" {
		opts.out = c.Out
	}
	if c.Package != "" {
		opts.pkg = c.Package
	}
	if c.NoOverwrite {
		no := false
		opts.overwrite = &no
	}

	if opts.source == "" {
		return nil, errors.WithHint(errors.New("no source given"),
			"pass a Discovery document path, URL or name:version, or set source in --config")
	}
	if opts.out == "" && !c.Txtar {
		return nil, errors.WithHint(errors.New("no output directory given"), "pass --out, or --txtar to print the crate")
	}
	return opts, nil
}

func (c *Cmd) Run(ctx context.Context, g *cli.Globals) error {
	opts, err := c.options()
	if err != nil {
		return err
	}
	if c.Watch && discovery.IsRemote(opts.source) {
		return errors.Newf("--watch needs a local source file, got %q", opts.source)
	}
	log := g.Logger()

	if err := c.generate(ctx, g, log, opts); err != nil {
		if !c.Watch {
			return err
		}
		log.Warn("generation failed", "error", err)
	}
	if !c.Watch {
		return nil
	}

	paths := []string{opts.source}
	if c.Config != "" {
		paths = append(paths, c.Config)
	}
	w, err := watch.New(paths...)
	if err != nil {
		return err
	}
	defer w.Close()
	w.Logger = log
	log.Info("watching for changes", "files", paths)

	return w.Run(ctx, func(ctx context.Context) error {
		// The config file may have changed too.
		opts, err := c.options()
		if err != nil {
			return err
		}
		return c.generate(ctx, g, log, opts)
	})
}

func (c *Cmd) generate(ctx context.Context, g *cli.Globals, log *slog.Logger, opts *options) error {
	cfg := &apigen.Config{
		OutDir:      opts.out,
		PackageName: opts.pkg,
		Source:      opts.source,
		Overwrite:   opts.overwrite,
		Logger:      log,
		Loader:      g.Client(opts.http),
	}
	var archive *sink.TxtarSink
	if c.Txtar {
		archive = sink.NewTxtarSink("generated from " + opts.source)
		cfg.Sink = archive
	}
	if _, err := apigen.Generate(ctx, nil, cfg); err != nil {
		return err
	}
	if archive != nil {
		_, err := g.Out().Write(archive.Bytes())
		return errors.Wrap(err, "write archive")
	}
	return nil
}
