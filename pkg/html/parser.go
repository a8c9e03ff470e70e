package html

import "fmt"

type Parser struct {
	tokenizer *Tokenizer
	doc       *Document
	stack     []*Node
}

func NewParser(markup string) *Parser {
	return &Parser{
		tokenizer: NewTokenizer(markup),
		doc:       NewDocument(),
	}
}

// Parse builds the document tree. Elements still open at the end of input
// are closed implicitly; an end tag with no matching open element is an
// error.
func (p *Parser) Parse() (*Document, error) {
	p.stack = []*Node{p.doc.Root}

	for {
		token, err := p.tokenizer.NextToken()
		if err != nil {
			return nil, fmt.Errorf("tokenizer error: %w", err)
		}

		switch token.Type {
		case TokenEOF:
			return p.doc, nil

		case TokenStartTag:
			if rawTextElements[token.TagName] {
				continue
			}
			node := &Node{
				Type:       ElementNode,
				TagName:    token.TagName,
				Attributes: token.Attributes,
				Line:       token.Line,
			}
			p.currentParent().AddChild(node)
			if !token.SelfClosing && !isVoidElement(token.TagName) {
				p.push(node)
			}

		case TokenRawText:
			switch token.TagName {
			case "style":
				p.doc.Stylesheets = append(p.doc.Stylesheets, token.Text)
			case "script":
				p.doc.Scripts = append(p.doc.Scripts, token.Text)
			}

		case TokenText:
			p.currentParent().AddChild(&Node{Type: TextNode, Text: token.Text, Line: token.Line})

		case TokenEndTag:
			if rawTextElements[token.TagName] || isVoidElement(token.TagName) {
				continue
			}
			if !p.closeTag(token.TagName) {
				return nil, &SyntaxError{Line: token.Line, Msg: fmt.Sprintf("unexpected </%s>", token.TagName)}
			}
		}
	}
}

// currentParent returns the current parent node (top of stack)
func (p *Parser) currentParent() *Node {
	return p.stack[len(p.stack)-1]
}

func (p *Parser) push(node *Node) {
	p.stack = append(p.stack, node)
}

// closeTag pops up to and including the innermost open element named
// tagName. It reports false, leaving the stack alone, when none is open.
func (p *Parser) closeTag(tagName string) bool {
	for i := len(p.stack) - 1; i > 0; i-- {
		if p.stack[i].TagName == tagName {
			p.stack = p.stack[:i]
			return true
		}
	}
	return false
}

// Parse parses markup into a Document.
func Parse(markup string) (*Document, error) {
	return NewParser(markup).Parse()
}
