// Package parser builds the lossless concrete syntax tree. The parser is
// tolerant: every token always ends up in exactly one node, so any input,
// including syntactically broken input, renders back byte for byte.
// Constructs the grammar does not model degrade into UnknownStmt token runs
// instead of failing.
package parser

import (
	"swiftfmt/internal/cst"
	"swiftfmt/internal/diag"
	"swiftfmt/internal/lexer"
	"swiftfmt/internal/source"
	"swiftfmt/internal/token"
)

// Options configures parsing.
type Options struct {
	Reporter diag.Reporter
}

type parser struct {
	toks []*token.Token
	pos  int
	rep  diag.Reporter
}

// ParseFile lexes and parses one file into a SourceFile tree.
func ParseFile(file *source.File, opts Options) *cst.Node {
	rep := opts.Reporter
	if rep == nil {
		rep = diag.NopReporter{}
	}
	toks := lexer.Scan(file, lexer.Options{Reporter: rep})
	p := &parser{toks: toks, rep: rep}

	root := cst.NewNode(cst.SourceFile)
	for !p.at(token.EOF) {
		root.Append(p.parseStmt())
	}
	// финальный EOF несёт trivia конца файла
	root.Append(p.bump())
	return root
}

// Parse is a convenience for virtual sources.
func Parse(name string, src []byte, opts Options) *cst.Node {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, src)
	return ParseFile(fs.Get(id), opts)
}

func (p *parser) peek() *token.Token {
	return p.toks[p.pos]
}

func (p *parser) peekAhead(n int) *token.Token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}
	return p.toks[p.pos+n]
}

func (p *parser) at(kind token.Kind) bool {
	return p.peek().Kind == kind
}

// bump consumes the current token into a leaf node. The EOF token is never
// consumed past: callers looping on bump stay put at EOF.
func (p *parser) bump() *cst.Node {
	tok := p.toks[p.pos]
	if tok.Kind != token.EOF {
		p.pos++
	}
	return cst.NewToken(tok)
}

// eat consumes the current token if it has the wanted kind.
func (p *parser) eat(kind token.Kind) *cst.Node {
	if p.at(kind) {
		return p.bump()
	}
	return nil
}

// expect consumes the wanted kind or reports and returns nil.
func (p *parser) expect(kind token.Kind, code diag.Code, msg string) *cst.Node {
	if n := p.eat(kind); n != nil {
		return n
	}
	p.rep.Report(code, diag.SevError, p.peek().Span, msg)
	return nil
}

// atLineStart reports whether the current token begins a new physical line.
func (p *parser) atLineStart() bool {
	return p.peek().StartsLine()
}

// atStmtEnd reports whether the current position terminates a same-line
// statement tail (import paths, return operands, directive conditions).
func (p *parser) atStmtEnd() bool {
	switch p.peek().Kind {
	case token.EOF, token.RBrace, token.Semicolon,
		token.PoundElseif, token.PoundElse, token.PoundEndif:
		return true
	}
	return p.atLineStart()
}

// restOfLine consumes tokens until a statement end, keeping bracket pairs
// balanced so a multi-line group does not get cut in half.
func (p *parser) restOfLine(into *cst.Node) {
	depth := 0
	for {
		if depth == 0 && p.atStmtEnd() {
			return
		}
		switch p.peek().Kind {
		case token.LParen, token.LBracket:
			depth++
		case token.RParen, token.RBracket:
			if depth == 0 {
				return
			}
			depth--
		case token.EOF:
			return
		}
		into.Append(p.bump())
	}
}
