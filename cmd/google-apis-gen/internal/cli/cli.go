// Package cli holds state shared by the google-apis-gen subcommands.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/ggriffiniii/google-apis/internal/discovery"
)

// Globals are the flags accepted by every subcommand.
type Globals struct {
	Verbose   bool   `help:"Log debug output." short:"v"`
	LogFormat string `help:"Log output format." enum:"text,json" default:"text" name:"log-format"`

	// Stdout and Stderr default to the process streams.
	Stdout io.Writer `kong:"-"`
	Stderr io.Writer `kong:"-"`
}

// Out returns the writer for command output.
func (g *Globals) Out() io.Writer {
	if g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

func (g *Globals) errOut() io.Writer {
	if g.Stderr == nil {
		return os.Stderr
	}
	return g.Stderr
}

// Logger returns a logger writing to stderr.
func (g *Globals) Logger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if g.Verbose {
		opts.Level = slog.LevelDebug
	}
	if g.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(g.errOut(), opts))
	}
	return slog.New(slog.NewTextHandler(g.errOut(), opts))
}

// Client returns a discovery client logging through g.
func (g *Globals) Client(opts discovery.Options) *discovery.Client {
	opts.Logger = g.Logger()
	return discovery.NewClient(opts)
}
