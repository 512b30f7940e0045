// Package check implements the check subcommand.
package check

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/ggriffiniii/google-apis/apigen/rust"
	"github.com/ggriffiniii/google-apis/cmd/google-apis-gen/internal/cli"
	"github.com/ggriffiniii/google-apis/internal/discovery"
)

type Cmd struct {
	Source string `arg:"" help:"Discovery document: file path, URL, or API reference such as drive:v3."`
	Strict bool   `help:"Treat warnings as errors."`
}

func (c *Cmd) Run(ctx context.Context, g *cli.Globals) error {
	client := g.Client(discovery.DefaultOptions())
	d, err := client.Load(ctx, c.Source)
	if err != nil {
		return err
	}
	crate, err := rust.Generate(d, rust.Options{})
	if err != nil {
		return err
	}

	out := g.Out()
	for _, w := range crate.Warnings {
		fmt.Fprintf(out, "warning: %s: %s\n", w.Code, w.Message)
	}
	s := crate.Stats
	fmt.Fprintf(out, "%s: ok\n", crate.Name)
	fmt.Fprintf(out, "  resources:   %d (depth %d)\n", s.Resources, s.Depth)
	fmt.Fprintf(out, "  methods:     %d\n", s.Methods)
	fmt.Fprintf(out, "  param types: %d\n", s.ParamTypes)
	fmt.Fprintf(out, "  schemas:     %d\n", s.Schemas)

	if c.Strict && len(crate.Warnings) > 0 {
		return errors.Newf("%d warnings", len(crate.Warnings))
	}
	return nil
}
