package viewml

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	UndefinedSourceError = errors.New("byte source is undefined")
	UndefinedSinkError   = errors.New("token sink is undefined")
	NoDocumentError      = errors.New("no document element found")
	JunkAfterRootError   = errors.New("junk after document element")
	TextOutsideRootError = errors.New("character data outside document element")
	UnclosedElementError = errors.New("document element left open at end of input")
)

// ParseError reports a rejected document together with the byte offset
// the decoder had reached when it gave up.
type ParseError struct {
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse failed at byte %d: %v", e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseErrorAt(offset int64, err error) error {
	return errors.WithStack(&ParseError{Offset: offset, Err: err})
}
