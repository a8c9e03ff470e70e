package html

import (
	"fmt"
	gohtml "html"
	"strings"
	"unicode"
)

type TokenType int

const (
	TokenStartTag TokenType = iota
	TokenEndTag
	TokenText
	TokenRawText
	TokenEOF
)

func (t TokenType) String() string {
	switch t {
	case TokenStartTag:
		return "start-tag"
	case TokenEndTag:
		return "end-tag"
	case TokenText:
		return "text"
	case TokenRawText:
		return "raw-text"
	case TokenEOF:
		return "eof"
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

type Token struct {
	Type        TokenType
	TagName     string
	Attributes  map[string]string
	Text        string
	SelfClosing bool
	// Line is the 1-based line the token starts on.
	Line int
}

// rawTextElements hold unparsed content up to their end tag.
var rawTextElements = map[string]bool{
	"style":  true,
	"script": true,
}

// SyntaxError reports malformed markup.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

type Tokenizer struct {
	input string
	pos   int
	line  int
	// rawTag is set after the start tag of a raw text element.
	rawTag string
}

func NewTokenizer(markup string) *Tokenizer {
	return &Tokenizer{input: markup, line: 1}
}

func (t *Tokenizer) errorf(format string, args ...any) error {
	return &SyntaxError{Line: t.line, Msg: fmt.Sprintf(format, args...)}
}

func (t *Tokenizer) advance(n int) {
	end := t.pos + n
	if end > len(t.input) {
		end = len(t.input)
	}
	t.line += strings.Count(t.input[t.pos:end], "\n")
	t.pos = end
}

func (t *Tokenizer) peek(s string) bool {
	return strings.HasPrefix(t.input[t.pos:], s)
}

// NextToken returns the next token. Whitespace-only text between tags is
// dropped and comments, doctypes and processing instructions are skipped.
func (t *Tokenizer) NextToken() (Token, error) {
	for {
		if t.rawTag != "" {
			tag := t.rawTag
			t.rawTag = ""
			line := t.line
			content, err := t.readRawUntil(tag)
			if err != nil {
				return Token{}, err
			}
			return Token{Type: TokenRawText, TagName: tag, Text: content, Line: line}, nil
		}
		if t.pos >= len(t.input) {
			return Token{Type: TokenEOF, Line: t.line}, nil
		}

		switch {
		case t.peek("<!--"):
			if err := t.skipPast("-->"); err != nil {
				return Token{}, err
			}
		case t.peek("<?"):
			if err := t.skipPast("?>"); err != nil {
				return Token{}, err
			}
		case t.peek("<!"):
			if err := t.skipPast(">"); err != nil {
				return Token{}, err
			}
		case t.input[t.pos] == '<':
			return t.readTag()
		default:
			if tok, ok := t.readText(); ok {
				return tok, nil
			}
		}
	}
}

func (t *Tokenizer) skipPast(terminator string) error {
	i := strings.Index(t.input[t.pos:], terminator)
	if i < 0 {
		return t.errorf("missing %q", terminator)
	}
	t.advance(i + len(terminator))
	return nil
}

func (t *Tokenizer) readTag() (Token, error) {
	line := t.line
	t.advance(1)

	isEndTag := false
	if t.pos < len(t.input) && t.input[t.pos] == '/' {
		isEndTag = true
		t.advance(1)
	}
	tagName := t.readName(isTagNameChar)
	if tagName == "" {
		return Token{}, t.errorf("expected tag name")
	}
	if isEndTag {
		if err := t.skipPast(">"); err != nil {
			return Token{}, err
		}
		return Token{Type: TokenEndTag, TagName: tagName, Line: line}, nil
	}

	tok := Token{Type: TokenStartTag, TagName: tagName, Attributes: make(map[string]string), Line: line}
	for {
		t.skipWhitespace()
		if t.pos >= len(t.input) {
			return Token{}, t.errorf("unexpected end of input in <%s>", tagName)
		}
		if t.input[t.pos] == '>' {
			t.advance(1)
			break
		}
		if t.peek("/>") {
			t.advance(2)
			tok.SelfClosing = true
			break
		}
		name, value, err := t.readAttribute()
		if err != nil {
			return Token{}, err
		}
		tok.Attributes[name] = value
	}

	if rawTextElements[tagName] && !tok.SelfClosing {
		t.rawTag = tagName
	}
	return tok, nil
}

func (t *Tokenizer) readName(valid func(byte) bool) string {
	start := t.pos
	for t.pos < len(t.input) && valid(t.input[t.pos]) {
		t.pos++
	}
	return strings.ToLower(t.input[start:t.pos])
}

func (t *Tokenizer) readAttribute() (string, string, error) {
	name := t.readName(isAttributeNameChar)
	if name == "" {
		return "", "", t.errorf("unexpected %q in tag", t.input[t.pos])
	}
	t.skipWhitespace()
	if t.pos >= len(t.input) || t.input[t.pos] != '=' {
		return name, "", nil
	}
	t.advance(1)
	t.skipWhitespace()
	value, err := t.readAttributeValue()
	if err != nil {
		return "", "", err
	}
	return name, gohtml.UnescapeString(value), nil
}

func (t *Tokenizer) readAttributeValue() (string, error) {
	if t.pos >= len(t.input) {
		return "", t.errorf("expected attribute value")
	}
	quote := t.input[t.pos]
	if quote == '"' || quote == '\'' {
		end := strings.IndexByte(t.input[t.pos+1:], quote)
		if end < 0 {
			return "", t.errorf("unterminated attribute value")
		}
		value := t.input[t.pos+1 : t.pos+1+end]
		t.advance(end + 2)
		return value, nil
	}
	start := t.pos
	for t.pos < len(t.input) && !unicode.IsSpace(rune(t.input[t.pos])) && t.input[t.pos] != '>' {
		t.pos++
	}
	return t.input[start:t.pos], nil
}

// readText consumes text up to the next tag. It reports false for
// whitespace-only runs, which carry no content in a template.
func (t *Tokenizer) readText() (Token, bool) {
	line := t.line
	end := strings.IndexByte(t.input[t.pos:], '<')
	if end < 0 {
		end = len(t.input) - t.pos
	}
	raw := t.input[t.pos : t.pos+end]
	t.advance(end)
	if strings.TrimSpace(raw) == "" {
		return Token{}, false
	}
	lead := len(raw) - len(strings.TrimLeft(raw, " \t\r\n"))
	line += strings.Count(raw[:lead], "\n")
	return Token{Type: TokenText, Text: gohtml.UnescapeString(raw), Line: line}, true
}

func (t *Tokenizer) skipWhitespace() {
	for t.pos < len(t.input) && unicode.IsSpace(rune(t.input[t.pos])) {
		t.advance(1)
	}
}

// readRawUntil reads the content of a raw text element up to its end tag,
// matched case-insensitively.
func (t *Tokenizer) readRawUntil(tag string) (string, error) {
	needle := "</" + tag
	rest := strings.ToLower(t.input[t.pos:])
	i := strings.Index(rest, needle)
	if i < 0 {
		return "", t.errorf("unterminated <%s>", tag)
	}
	content := t.input[t.pos : t.pos+i]
	t.advance(i)
	return content, nil
}

func isTagNameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isAttributeNameChar(c byte) bool {
	return isTagNameChar(c) || c == ':' || c == '.' || c == '@'
}
