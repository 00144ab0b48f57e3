package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tangramkit/config"
	"tangramkit/kit"
	"tangramkit/shapegraph"
)

type graphOptions struct {
	pool     string
	generate bool
	format   string
	out      string
	path     string
	shapeID  string
}

func newGraphCmd(root *rootOptions) *cobra.Command {
	o := &graphOptions{}
	cmd := &cobra.Command{
		Use:   "graph [file]",
		Short: "Derive vertex and segment records from shape outlines",
		Long: `Reads a shape kit (JSON or SVG) and turns the closed outline of every
shape into vertex and segment records that reference each other by id.

Ids are drawn from the end of the pool: first one per vertex, then one
per segment. Use --path and --shape-id to process a single outline.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(cmd, root, o, args)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.pool, "pool", "", "id pool file, a JSON array or one id per line")
	f.BoolVar(&o.generate, "generate", false, "generate fresh ids when no pool is given")
	f.StringVar(&o.format, "format", string(shapegraph.FormatFragments), "output format: fragments or json")
	f.StringVarP(&o.out, "out", "o", "", "output file (default: stdout)")
	f.StringVar(&o.path, "path", "", "path data of a single shape, instead of a kit")
	f.StringVar(&o.shapeID, "shape-id", "", "shape id used with --path")
	return cmd
}

func (o *graphOptions) override(f *pflag.FlagSet, g *config.Graph) {
	if f.Changed("pool") {
		g.Pool = o.pool
	}
	if f.Changed("generate") {
		g.Generate = o.generate
	}
	if f.Changed("format") {
		g.Format = o.format
	}
}

func (o *graphOptions) shapes(cmd *cobra.Command, args []string) ([]kit.Shape, error) {
	if o.path == "" {
		name, b, err := readInput(cmd, args)
		if err != nil {
			return nil, err
		}
		return kit.Read(name, bytes.NewReader(b))
	}
	if len(args) > 0 {
		return nil, errors.New("--path cannot be combined with an input file")
	}
	if o.shapeID == "" {
		return nil, errors.New("--path needs --shape-id")
	}
	return []kit.Shape{{ID: o.shapeID, Path: o.path}}, nil
}

// openPool returns the pool named in g, or a generated one holding exactly
// the ids shapes need.
func openPool(g config.Graph, shapes []kit.Shape) (*shapegraph.IDPool, error) {
	if g.Pool != "" {
		f, err := os.Open(g.Pool)
		if err != nil {
			return nil, errors.Wrap(err, "open id pool")
		}
		defer f.Close()
		return shapegraph.ReadIDPool(f)
	}
	if g.Generate {
		return shapegraph.NewIDPool(shapegraph.GenerateIDs(shapegraph.KitIDsNeeded(shapes))), nil
	}
	return nil, errors.New("no id pool: pass --pool or --generate")
}

func runGraph(cmd *cobra.Command, root *rootOptions, o *graphOptions, args []string) error {
	cfg, err := root.load()
	if err != nil {
		return err
	}
	o.override(cmd.Flags(), &cfg.Graph)
	if err := cfg.Validate(); err != nil {
		return err
	}
	format, err := shapegraph.ParseFormat(cfg.Graph.Format)
	if err != nil {
		return err
	}

	shapes, err := o.shapes(cmd, args)
	if err != nil {
		return err
	}
	if len(shapes) == 0 {
		slog.Warn("no shapes found")
	}
	pool, err := openPool(cfg.Graph, shapes)
	if err != nil {
		return err
	}
	slog.Debug("id pool", "available", pool.Len(), "needed", shapegraph.KitIDsNeeded(shapes))

	graphs, err := shapegraph.BuildKit(shapes, pool)
	if err != nil {
		return err
	}
	slog.Debug("graphs built", "shapes", len(graphs), "poolLeft", pool.Len())

	return writeOutput(cmd, o.out, func(w io.Writer) error {
		return format.Write(w, graphs)
	})
}
