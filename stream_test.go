package viewml

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func collectTokens(t *testing.T, input string, chunk int) *TokenBuffer {
	t.Helper()
	buf := new(TokenBuffer)
	err := Parser{ChunkSize: chunk}.Stream(strings.NewReader(input), buf)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	return buf
}

func tokenSummary(tokens []Token) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		switch token.Kind {
		case StartElement:
			out = append(out, "start "+token.Type)
		case EndElement:
			out = append(out, "end "+token.Type)
		case Text:
			out = append(out, "text "+token.Text)
		}
	}
	return out
}

func equalSummaries(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for idx := range a {
		if a[idx] != b[idx] {
			return false
		}
	}
	return true
}

func TestStream(t *testing.T) {
	t.Run("document order", func(t *testing.T) {
		buf := collectTokens(t, `<a><b>hi</b><c/></a>`, 0)
		want := []string{
			"start a",
			"start b",
			"text hi",
			"end b",
			"start c",
			"end c",
			"end a",
		}
		got := tokenSummary(buf.Tokens)
		if !equalSummaries(got, want) {
			t.Errorf("tokens are:\n%v\nexpected:\n%v", got, want)
		}
	})
	t.Run("attributes normalized like the tree", func(t *testing.T) {
		buf := collectTokens(t, `<a a:id="1" b:id="2" x="3"/>`, 0)
		start := buf.Tokens[0]
		if start.Kind != StartElement {
			t.Errorf("expected a start token, got %s", start.Kind)
			return
		}
		if len(start.Attrs) != 2 {
			t.Errorf("expected 2 attrs, got %d", len(start.Attrs))
			return
		}
		if value, _ := start.Attrs.Get("id"); value != "2" {
			t.Errorf("expected id=2, got id=%s", value)
		}
	})
	t.Run("no attrs means nil attrs", func(t *testing.T) {
		buf := collectTokens(t, `<a/>`, 0)
		if buf.Tokens[0].Attrs != nil {
			t.Error("attribute-free element should carry nil attrs")
		}
	})
	t.Run("text concatenated across chunk boundaries", func(t *testing.T) {
		input := `<a>hello world</a>`
		buf := new(TokenBuffer)
		err := Parser{ChunkSize: 2}.Stream(&chunkReader{data: []byte(input), n: 2}, buf)
		if err != nil {
			t.Errorf("%+v", err)
			return
		}
		want := []string{"start a", "text hello world", "end a"}
		got := tokenSummary(buf.Tokens)
		if !equalSummaries(got, want) {
			t.Errorf("tokens are:\n%v\nexpected:\n%v", got, want)
		}
	})
	t.Run("text concatenated across comments and cdata", func(t *testing.T) {
		buf := collectTokens(t, `<a>he<!-- x -->l<![CDATA[lo]]></a>`, 0)
		want := []string{"start a", "text hello", "end a"}
		got := tokenSummary(buf.Tokens)
		if !equalSummaries(got, want) {
			t.Errorf("tokens are:\n%v\nexpected:\n%v", got, want)
		}
	})
	t.Run("whitespace text is preserved exactly", func(t *testing.T) {
		buf := collectTokens(t, "<a> <b/>\n</a>", 0)
		want := []string{"start a", "text  ", "start b", "end b", "text \n", "end a"}
		got := tokenSummary(buf.Tokens)
		if !equalSummaries(got, want) {
			t.Errorf("tokens are:\n%q\nexpected:\n%q", got, want)
		}
	})
	t.Run("no empty text tokens", func(t *testing.T) {
		buf := collectTokens(t, `<a><b/><c/></a>`, 0)
		for _, token := range buf.Tokens {
			if token.Kind == Text {
				t.Errorf("unexpected text token %q", token.Text)
			}
		}
	})
	t.Run("balance", func(t *testing.T) {
		buf := collectTokens(t, `<a><b><c/></b><d/></a>`, 0)
		var stack []string
		for _, token := range buf.Tokens {
			switch token.Kind {
			case StartElement:
				stack = append(stack, token.Type)
			case EndElement:
				if len(stack) == 0 || stack[len(stack)-1] != token.Type {
					t.Errorf("end %s does not match open element", token.Type)
					return
				}
				stack = stack[:len(stack)-1]
			}
		}
		if len(stack) != 0 {
			t.Errorf("unclosed elements left: %v", stack)
		}
	})
}

func TestStreamCompletion(t *testing.T) {
	t.Run("digest delivered on success", func(t *testing.T) {
		input := `<a><b>hi</b></a>`
		buf := collectTokens(t, input, 0)
		if buf.Digest != HashBytes([]byte(input)) {
			t.Error("completion digest should fingerprint the raw input")
		}
	})
	t.Run("digest withheld on failure", func(t *testing.T) {
		buf := new(TokenBuffer)
		err := Stream(strings.NewReader(`<a><b></a>`), buf)
		if err == nil {
			t.Error("expected a parse error")
			return
		}
		if buf.Digest != (Digest{}) {
			t.Error("no digest should be delivered on failure")
		}
	})
	t.Run("undefined sink", func(t *testing.T) {
		err := Stream(strings.NewReader(`<a/>`), nil)
		if !errors.Is(err, UndefinedSinkError) {
			t.Errorf("expected undefined sink error, got %v", err)
		}
	})
	t.Run("sink error aborts the stream", func(t *testing.T) {
		sinkErr := errors.New("sink is full")
		count := 0
		err := Stream(strings.NewReader(`<a><b/></a>`), TokenSinkFunc(func(Token) error {
			count += 1
			if count > 1 {
				return sinkErr
			}
			return nil
		}))
		if !errors.Is(err, sinkErr) {
			t.Errorf("expected the sink error, got %v", err)
		}
		if count != 2 {
			t.Errorf("expected delivery to stop after the failing token, got %d", count)
		}
	})
	t.Run("sink func ignores completion", func(t *testing.T) {
		err := Stream(strings.NewReader(`<a/>`), TokenSinkFunc(func(Token) error {
			return nil
		}))
		if err != nil {
			t.Errorf("%+v", err)
		}
	})
	t.Run("in-memory buffer", func(t *testing.T) {
		input := []byte(`<a><b>hi</b></a>`)
		buf := new(TokenBuffer)
		if err := StreamBytes(input, buf); err != nil {
			t.Errorf("%+v", err)
			return
		}
		if buf.Digest != HashBytes(input) {
			t.Error("digest should match the raw input bytes")
		}
	})
}
