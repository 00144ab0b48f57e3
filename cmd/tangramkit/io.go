package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// readInput reads the file named by the first argument, or stdin when there
// is none or it is "-". It returns the name used for format sniffing.
func readInput(cmd *cobra.Command, args []string) (string, []byte, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		return "-", b, errors.Wrap(err, "read stdin")
	}
	b, err := os.ReadFile(args[0])
	return args[0], b, errors.Wrap(err, "read input")
}

// writeOutput calls write with the file at path, or with the command's
// stdout when path is empty or "-".
func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) (err error) {
	if path == "" || path == "-" {
		return write(cmd.OutOrStdout())
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = errors.Wrap(cerr, "close output")
		}
	}()
	return write(f)
}
