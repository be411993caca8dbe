package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"viewml"
)

func newTreeCmd() *cobra.Command {
	var indent int
	var chunkSize int
	var showDigest bool

	cmd := &cobra.Command{
		Use:   "tree [file]",
		Short: "Convert an XML layout to a nested JSON document",
		Long: `Convert an XML layout to a nested JSON document on stdout.

If a file is provided it is read in bounded chunks; without one, the
layout is read from stdin. On any parse error no output is produced.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, closeIn, err := openInput(args)
			if err != nil {
				return err
			}
			defer closeIn()

			parser := viewml.Parser{ChunkSize: chunkSize}
			root, digest, err := parser.ParseTree(in)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}
			if err := viewml.EncodeJSON(os.Stdout, root, indent); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			if showDigest {
				fmt.Fprintln(os.Stderr, digest.Hex())
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&indent, "indent", 4, "spaces per indent level, 0 for compact output")
	cmd.Flags().IntVar(&chunkSize, "chunk-size", viewml.ChunkSize, "read buffer size in bytes")
	cmd.Flags().BoolVar(&showDigest, "digest", false, "print the source fingerprint on stderr")

	return cmd
}
