package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"viewml"
)

func newTokensCmd() *cobra.Command {
	var chunkSize int

	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Dump an XML layout as a token stream",
		Long: `Dump an XML layout as a flat token stream, one token per line,
followed by the fingerprint of the source bytes. On any parse error
the stream stops and no fingerprint line is printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, closeIn, err := openInput(args)
			if err != nil {
				return err
			}
			defer closeIn()

			parser := viewml.Parser{ChunkSize: chunkSize}
			if err := parser.Stream(in, &printSink{w: os.Stdout}); err != nil {
				return fmt.Errorf("stream: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&chunkSize, "chunk-size", viewml.ChunkSize, "read buffer size in bytes")

	return cmd
}

type printSink struct {
	w io.Writer
}

func (s *printSink) WriteToken(token viewml.Token) error {
	var err error
	switch token.Kind {
	case viewml.StartElement:
		_, err = fmt.Fprintf(s.w, "start %s", token.Type)
		for _, attr := range token.Attrs {
			if err != nil {
				break
			}
			_, err = fmt.Fprintf(s.w, " %s=%q", attr.Name, attr.Value)
		}
		if err == nil {
			_, err = fmt.Fprintln(s.w)
		}
	case viewml.EndElement:
		_, err = fmt.Fprintf(s.w, "end %s\n", token.Type)
	case viewml.Text:
		_, err = fmt.Fprintf(s.w, "text %q\n", token.Text)
	}
	return err
}

func (s *printSink) Complete(digest viewml.Digest) error {
	_, err := fmt.Fprintf(s.w, "digest %s\n", digest.Hex())
	return err
}
