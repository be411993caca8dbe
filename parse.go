package viewml

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// handler receives the document-ordered event stream shared by the
// tree builder and the token emitter.
type handler interface {
	startElement(name string, attrs Attrs) error
	endElement(name string) error
	charData(text []byte) error
	endDocument() error
}

// Parser carries the knobs of one parse invocation. The zero value is
// ready to use.
type Parser struct {
	// ChunkSize bounds how many bytes a single read may pull from the
	// source. Zero selects ChunkSize.
	ChunkSize int
}

func ParseTree(r io.Reader) (*Node, Digest, error) {
	return Parser{}.ParseTree(r)
}

func ParseTreeBytes(b []byte) (*Node, Digest, error) {
	return Parser{ChunkSize: len(b)}.ParseTree(bytes.NewReader(b))
}

// ParseTree consumes the source to exhaustion and returns the single
// root node together with the fingerprint of the raw input. Any
// failure discards both.
func (p Parser) ParseTree(r io.Reader) (*Node, Digest, error) {
	builder := new(treeBuilder)
	digest, err := p.parse(r, builder)
	if err != nil {
		return nil, Digest{}, err
	}
	return builder.root, digest, nil
}

// parse drives the decoder over the chunked, hash-teed source and
// dispatches events to the handler. encoding/xml guarantees matched
// element nesting; the checks here add the single-document rules it
// does not enforce on its own.
func (p Parser) parse(r io.Reader, h handler) (Digest, error) {
	if r == nil {
		return Digest{}, errors.WithStack(UndefinedSourceError)
	}
	hasher := NewHasher()
	dec := xml.NewDecoder(newChunkedSource(r, hasher, p.ChunkSize))
	depth := 0
	rootClosed := false
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Digest{}, parseErrorAt(dec.InputOffset(), err)
		}
		switch tok := tok.(type) {
		case xml.StartElement:
			if depth == 0 && rootClosed {
				return Digest{}, parseErrorAt(dec.InputOffset(), JunkAfterRootError)
			}
			if err := h.startElement(tok.Name.Local, collectAttrs(tok.Attr)); err != nil {
				return Digest{}, err
			}
			depth += 1
		case xml.EndElement:
			if err := h.endElement(tok.Name.Local); err != nil {
				return Digest{}, err
			}
			depth -= 1
			if depth == 0 {
				rootClosed = true
			}
		case xml.CharData:
			if depth == 0 {
				if strings.TrimSpace(string(tok)) != "" {
					return Digest{}, parseErrorAt(dec.InputOffset(), TextOutsideRootError)
				}
				continue
			}
			if err := h.charData(tok); err != nil {
				return Digest{}, err
			}
		}
	}
	if !rootClosed {
		return Digest{}, parseErrorAt(dec.InputOffset(), NoDocumentError)
	}
	if err := h.endDocument(); err != nil {
		return Digest{}, parseErrorAt(dec.InputOffset(), err)
	}
	return hasher.Sum(), nil
}

// collectAttrs builds the ordered attribute list of one element.
// encoding/xml already splits raw keys at the first colon, so Local is
// exactly the normalized name; Set makes the last colliding normalized
// key win.
func collectAttrs(raw []xml.Attr) Attrs {
	if len(raw) == 0 {
		return nil
	}
	attrs := make(Attrs, 0, len(raw))
	for _, attr := range raw {
		attrs.Set(attr.Name.Local, attr.Value)
	}
	return attrs
}

// treeBuilder materializes the event stream into a single nested
// document. Character data carries no layout structure and is
// discarded in tree mode.
type treeBuilder struct {
	stack []*Node
	root  *Node
}

func (b *treeBuilder) startElement(name string, attrs Attrs) error {
	node := &Node{Type: name, Attrs: attrs}
	if len(b.stack) == 0 {
		b.root = node
	} else {
		parent := b.stack[len(b.stack)-1]
		parent.Nodes = append(parent.Nodes, node)
	}
	b.stack = append(b.stack, node)
	return nil
}

func (b *treeBuilder) endElement(name string) error {
	b.stack = b.stack[:len(b.stack)-1]
	return nil
}

func (b *treeBuilder) charData(text []byte) error {
	return nil
}

func (b *treeBuilder) endDocument() error {
	if len(b.stack) != 0 {
		return UnclosedElementError
	}
	return nil
}
