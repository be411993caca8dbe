package viewml

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

func Stream(r io.Reader, sink TokenSink) error {
	return Parser{}.Stream(r, sink)
}

func StreamBytes(b []byte, sink TokenSink) error {
	return Parser{ChunkSize: len(b)}.Stream(bytes.NewReader(b), sink)
}

// Stream consumes the source to exhaustion, delivering tokens to the
// sink as they become ready and the input fingerprint on successful
// completion. On failure the sink simply stops receiving tokens and
// Complete is never called.
func (p Parser) Stream(r io.Reader, sink TokenSink) error {
	if sink == nil {
		return errors.WithStack(UndefinedSinkError)
	}
	emitter := &tokenEmitter{sink: sink}
	digest, err := p.parse(r, emitter)
	if err != nil {
		return err
	}
	return sink.Complete(digest)
}

// tokenEmitter translates events into tokens without materializing a
// tree. Character data accumulates in a pending buffer that is flushed
// as one Text token right before the next structural token, and once
// more at end of document; an empty buffer emits nothing.
type tokenEmitter struct {
	sink TokenSink
	text []byte
}

func (e *tokenEmitter) flushText() error {
	if len(e.text) == 0 {
		return nil
	}
	token := Token{Kind: Text, Text: string(e.text)}
	e.text = e.text[:0]
	return e.sink.WriteToken(token)
}

func (e *tokenEmitter) startElement(name string, attrs Attrs) error {
	if err := e.flushText(); err != nil {
		return err
	}
	return e.sink.WriteToken(Token{Kind: StartElement, Type: name, Attrs: attrs})
}

func (e *tokenEmitter) endElement(name string) error {
	if err := e.flushText(); err != nil {
		return err
	}
	return e.sink.WriteToken(Token{Kind: EndElement, Type: name})
}

func (e *tokenEmitter) charData(text []byte) error {
	e.text = append(e.text, text...)
	return nil
}

func (e *tokenEmitter) endDocument() error {
	return e.flushText()
}
