package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"viewml"
)

func newHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash [file]",
		Short: "Print the fingerprint of a layout source",
		Long: `Print the SHA-256 fingerprint of the raw source bytes without
parsing them, for cache-key use.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, closeIn, err := openInput(args)
			if err != nil {
				return err
			}
			defer closeIn()

			hasher := viewml.NewHasher()
			if _, err := io.Copy(hasher, in); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			fmt.Println(hasher.Sum().Hex())
			return nil
		},
	}

	return cmd
}
