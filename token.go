package viewml

type TokenKind int

const (
	StartElement TokenKind = iota
	EndElement
	Text
)

var tokenKindNames = map[TokenKind]string{
	StartElement: "StartElement",
	EndElement:   "EndElement",
	Text:         "Text",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Token is one discrete structural piece of a document. Type is set
// for StartElement and EndElement, Attrs only for StartElement (nil
// when the element had no attributes), Text only for Text.
type Token struct {
	Kind  TokenKind
	Type  string
	Attrs Attrs
	Text  string
}

// TokenSink receives tokens in document order. Complete is called
// exactly once, after the last token of a successful parse, with the
// fingerprint of the raw input; it is never called on failure.
type TokenSink interface {
	WriteToken(token Token) error
	Complete(digest Digest) error
}

// TokenSinkFunc adapts a plain function to a TokenSink that ignores
// the completion digest.
type TokenSinkFunc func(token Token) error

func (f TokenSinkFunc) WriteToken(token Token) error {
	return f(token)
}

func (f TokenSinkFunc) Complete(digest Digest) error {
	return nil
}

// TokenBuffer collects the whole token stream and the final digest in
// memory.
type TokenBuffer struct {
	Tokens []Token
	Digest Digest
}

func (b *TokenBuffer) WriteToken(token Token) error {
	b.Tokens = append(b.Tokens, token)
	return nil
}

func (b *TokenBuffer) Complete(digest Digest) error {
	b.Digest = digest
	return nil
}
