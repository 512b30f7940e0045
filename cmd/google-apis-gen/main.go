package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/cockroachdb/errors"

	"github.com/ggriffiniii/google-apis/cmd/google-apis-gen/internal/check"
	"github.com/ggriffiniii/google-apis/cmd/google-apis-gen/internal/cli"
	"github.com/ggriffiniii/google-apis/cmd/google-apis-gen/internal/gen"
	"github.com/ggriffiniii/google-apis/cmd/google-apis-gen/internal/list"
)

type CLI struct {
	cli.Globals `embed:""`

	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     gen.Cmd    `cmd:"" help:"Generate a Rust client crate from a Discovery document."`
	Check   check.Cmd  `cmd:"" help:"Validate a Discovery document without generating files."`
	List    list.Cmd   `cmd:"" help:"List APIs in the Discovery directory."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run(g *cli.Globals) error {
	fmt.Fprintln(g.Out(), currentVersion())
	return nil
}

func main() {
	c := &CLI{}
	kctx := kong.Parse(c,
		kong.Name("google-apis-gen"),
		kong.Description("Generate Rust client crates for Google APIs."),
		kong.UsageOnError(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	kctx.BindTo(ctx, (*context.Context)(nil))

	if err := kctx.Run(&c.Globals); err != nil {
		fmt.Fprintf(os.Stderr, "google-apis-gen: %v\n", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "hint: %s\n", hint)
		}
		stop()
		os.Exit(1)
	}
}
