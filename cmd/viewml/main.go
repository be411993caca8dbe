package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "viewml",
		Short: "Convert XML layout markup to JSON trees or token streams",
	}

	rootCmd.AddCommand(newTreeCmd())
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newHashCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openInput resolves the optional file argument, falling back to stdin.
func openInput(args []string) (io.Reader, func(), error) {
	if len(args) == 0 {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
