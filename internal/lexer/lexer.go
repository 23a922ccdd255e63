// Package lexer produces the lossless token stream the formatter operates
// on. Every byte of the input ends up either in a token's Text or in some
// token's attached trivia, so rendering the stream reproduces the input
// exactly.
package lexer

import (
	"swiftfmt/internal/diag"
	"swiftfmt/internal/source"
	"swiftfmt/internal/token"
)

// Options configures lexing.
type Options struct {
	Reporter diag.Reporter
}

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	hold   []token.Trivia // накопленные leading trivia
	done   bool
}

func New(file *source.File, opts Options) *Lexer {
	if opts.Reporter == nil {
		opts.Reporter = diag.NopReporter{}
	}
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token with its Leading trivia attached.
// After the input is exhausted it returns one final EOF token carrying any
// trailing trivia of the file, then keeps returning bare EOF.
func (lx *Lexer) Next() *token.Token {
	// 1) собрать trivia перед токеном
	lx.collectLeadingTrivia()

	// 2) EOF: функция забирает остаток trivia, чтобы рендер был без потерь
	if lx.cursor.EOF() {
		tok := &token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
		}
		if !lx.done {
			tok.Leading = lx.hold
			lx.hold = nil
			lx.done = true
		}
		return tok
	}

	// 3) выбрать сканер по первому байту
	ch := lx.cursor.Peek()
	var tok *token.Token
	switch {
	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		tok = lx.scanIdentOrKeyword()
	case isDec(ch):
		tok = lx.scanNumber()
	case ch == '"':
		tok = lx.scanString()
	case ch == '#':
		tok = lx.scanDirective()
	default:
		tok = lx.scanOperatorOrPunct()
	}

	// 4) приклеить leading
	tok.Leading = lx.hold
	lx.hold = nil
	return tok
}

// Scan tokenizes the whole file and distributes same-line trivia after each
// token into its Trailing list. This is the entry point the parser uses.
func Scan(file *source.File, opts Options) []*token.Token {
	lx := New(file, opts)
	var toks []*token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	attachTrailing(toks)
	return toks
}

// attachTrailing moves the prefix of each token's leading trivia that sits
// on the previous token's line (everything before the first newline) into
// the previous token's Trailing list.
func attachTrailing(toks []*token.Token) {
	for i := 1; i < len(toks); i++ {
		tok := toks[i]
		cut := 0
		for cut < len(tok.Leading) && tok.Leading[cut].Newlines() == 0 {
			cut++
		}
		if cut == 0 {
			continue
		}
		prev := toks[i-1]
		prev.Trailing = append(prev.Trailing, tok.Leading[:cut]...)
		tok.Leading = tok.Leading[cut:]
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	lx.opts.Reporter.Report(code, diag.SevError, sp, msg)
}
