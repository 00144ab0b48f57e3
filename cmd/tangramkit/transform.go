package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tangramkit/config"
	"tangramkit/pathdata"
)

type transformOptions struct {
	offsetX float64
	offsetY float64
	scale   float64
	mode    pathdata.Mode
	out     string
}

func newTransformCmd(root *rootOptions) *cobra.Command {
	o := &transformOptions{scale: 1}
	cmd := &cobra.Command{
		Use:   "transform [file]",
		Short: "Apply an offset and a scale to the path coordinates of a document",
		Long: `Rewrites the coordinates of every M, L, H, V and A command found in a
JSON or SVG document. The rest of the document is printed unchanged.

In offset-then-scale mode a coordinate v becomes (v - offset) / scale,
in scale-then-offset mode it becomes v / scale - offset. Arc radii are
divided by the scale only.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, root, o, args)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&o.offsetX, "offset-x", 0, "offset subtracted from x coordinates")
	f.Float64Var(&o.offsetY, "offset-y", 0, "offset subtracted from y coordinates")
	f.Float64Var(&o.scale, "scale", 1, "scale dividing every coordinate and radius")
	f.Var(&o.mode, "mode", "offset-then-scale or scale-then-offset")
	f.StringVarP(&o.out, "out", "o", "", "output file (default: stdout)")
	return cmd
}

// override copies the flags set on the command line over the file settings.
func (o *transformOptions) override(f *pflag.FlagSet, t *config.Transform) {
	if f.Changed("offset-x") {
		t.OffsetX = o.offsetX
	}
	if f.Changed("offset-y") {
		t.OffsetY = o.offsetY
	}
	if f.Changed("scale") {
		t.Scale = o.scale
	}
	if f.Changed("mode") {
		t.Mode = o.mode
	}
}

func runTransform(cmd *cobra.Command, root *rootOptions, o *transformOptions, args []string) error {
	cfg, err := root.load()
	if err != nil {
		return err
	}
	o.override(cmd.Flags(), &cfg.Transform)
	if err := cfg.Validate(); err != nil {
		return err
	}

	name, text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	xf := cfg.PathTransform()
	data := pathdata.Parse(string(text))
	n := len(data.Commands())
	if n == 0 {
		slog.Warn("no path commands found", "input", name)
	}
	slog.Debug("transform", "input", name, "commands", n, "mode", xf.Mode,
		"offsetX", xf.OffsetX, "offsetY", xf.OffsetY, "scale", xf.Scale)

	return writeOutput(cmd, o.out, func(w io.Writer) error {
		_, err := io.WriteString(w, xf.Apply(data).String())
		return err
	})
}
