package main

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"tangramkit/shapegraph"
)

func newIDsCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "ids <n>",
		Short: "Print n fresh ids as a JSON array, for use as an id pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return errors.Errorf("invalid id count %q", args[0])
			}
			ids := shapegraph.GenerateIDs(n)
			return writeOutput(cmd, out, func(w io.Writer) error {
				return json.NewEncoder(w).Encode(ids)
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")
	return cmd
}
