// Package list implements the list subcommand.
package list

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/cockroachdb/errors"

	"github.com/ggriffiniii/google-apis/cmd/google-apis-gen/internal/cli"
	"github.com/ggriffiniii/google-apis/internal/discovery"
)

type Cmd struct {
	Name      string `help:"Only list versions of this API." short:"n"`
	Preferred bool   `help:"Only list the preferred version of each API."`
	Directory string `help:"Discovery directory URL." default:"https://www.googleapis.com/discovery/v1/apis"`
}

func (c *Cmd) Run(ctx context.Context, g *cli.Globals) error {
	opts := discovery.DefaultOptions()
	opts.DirectoryURL = c.Directory
	client := g.Client(opts)

	items, err := client.ListDirectory(ctx, discovery.DirectoryQuery{Name: c.Name, Preferred: c.Preferred})
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return errors.New("no APIs match")
	}

	tw := tabwriter.NewWriter(g.Out(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "API\tTITLE\tPREFERRED")
	for _, item := range items {
		preferred := ""
		if item.Preferred {
			preferred = "yes"
		}
		fmt.Fprintf(tw, "%s:%s\t%s\t%s\n", item.Name, item.Version, item.Title, preferred)
	}
	return errors.Wrap(tw.Flush(), "write listing")
}
