// Package indent is the indentation engine: a single depth-first pass
// over the concrete syntax tree that decides, for every token, how many
// indentation units precede it on its line, and rewrites leading trivia
// accordingly. The pass is deterministic and idempotent; the input tree
// is never mutated.
//
// The indent level is one integer counter. Every construct that raises
// it lowers it before finishing, so the counter equals the nesting depth
// at the moment any token is rewritten. Three mechanisms mutate it:
//
//   - the generic list driver: one increment per multi-line list (list.go)
//   - construct handlers: fixed slots of a form share one increment
//     (guard else, initializer '=', ternary branches, function headers)
//   - the method-chain tracker: one increment per chain of accesses and
//     calls, applied at the first line-starting dot (chain.go)
package indent

import (
	"fmt"

	"swiftfmt/internal/cst"
	"swiftfmt/internal/token"
)

type engine struct {
	opts  Options
	level int

	// firstTok — первый токен файла: он «начинает строку» без перевода
	firstTok *token.Token

	// visited holds tokens already claimed as an increment site, so two
	// overlapping mechanisms never count the same boundary twice.
	visited map[*token.Token]bool

	// condAllow: вершина говорит, можно ли ближайшему списку операторов
	// поднимать уровень (подавление #if-регионов)
	condAllow []bool

	chains []*chainFrame
}

// Format returns a copy of root with every token's leading indentation
// rewritten. The input tree is left untouched.
func Format(root *cst.Node, opts Options) *cst.Node {
	if opts.Unit == (Unit{}) {
		opts.Unit = Spaces(4)
	}
	out := root.Clone()
	e := &engine{
		opts:     opts,
		firstTok: out.FirstToken(),
		visited:  make(map[*token.Token]bool),
	}
	e.visit(out)
	if e.level != 0 {
		panic(fmt.Sprintf("indent: counter drifted to %d after full pass", e.level))
	}
	return out
}

func (e *engine) visit(n *cst.Node) {
	if n.IsToken() {
		e.rewriteToken(n.Tok)
		return
	}
	switch n.Kind {
	case cst.SourceFile:
		e.visitTopLevel(n)
	case cst.FunctionDecl:
		e.visitFunctionDecl(n)
	case cst.GuardStmt:
		e.visitGuard(n)
	case cst.InitializerClause:
		e.visitInitializer(n)
	case cst.TernaryExpr:
		e.visitTernary(n)
	case cst.WhereClause:
		e.visitWhere(n)
	case cst.IfConfigClause:
		e.visitIfConfigClause(n)
	case cst.MemberAccessExpr, cst.FunctionCallExpr, cst.SubscriptExpr:
		e.visitChainNode(n)
	default:
		if eligibleList(n.Kind, e.opts) {
			e.visitList(n)
			return
		}
		e.visitChildren(n)
	}
}

func (e *engine) visitChildren(n *cst.Node) {
	for _, c := range n.Children {
		e.visit(c)
	}
}

// visitTopLevel walks the file's statements. The top-level list is not
// an indentable list (a file does not indent its own body), but every
// statement still gets its own chain frame.
func (e *engine) visitTopLevel(n *cst.Node) {
	for _, c := range n.Children {
		if c.IsToken() {
			e.visit(c)
			continue
		}
		e.pushFrame()
		e.visit(c)
		e.popFrame()
	}
}

// qualifies reports whether the token sits at a line boundary: it either
// opens the file or carries a line break in its leading trivia.
func (e *engine) qualifies(tok *token.Token) bool {
	if tok == nil {
		return false
	}
	return tok == e.firstTok || tok.StartsLine()
}

// slot is one construct-scoped increment shared by several syntactic
// positions. The first qualifying position raises the level; the rest
// only claim their token so no other mechanism counts it again.
type slot struct {
	bumped bool
}

func (e *engine) bumpAt(tok *token.Token, s *slot) {
	if !e.qualifies(tok) || e.visited[tok] {
		return
	}
	e.visited[tok] = true
	if !s.bumped {
		s.bumped = true
		e.level++
	}
}

func (e *engine) release(s *slot) {
	if s.bumped {
		s.bumped = false
		e.dec()
	}
}

func (e *engine) dec() {
	e.level--
	if e.level < 0 {
		panic("indent: counter went negative")
	}
}

// visitFunctionDecl gives the declaration header one shared increment
// for its continuation lines (effects keyword, return clause, where
// clause, and in editor-compat mode the closing parenthesis). The
// increment is released before the body so block contents indent from
// the declaration's own level.
func (e *engine) visitFunctionDecl(n *cst.Node) {
	var header slot
	released := false
	for _, c := range n.Children {
		switch {
		case c.Kind == cst.ParameterClause:
			e.visitParameterClause(c, &header)
		case c.IsToken() && (c.Tok.Kind == token.KwThrows || c.Tok.Kind == token.KwRethrows):
			e.bumpAt(c.Tok, &header)
			e.rewriteToken(c.Tok)
		case c.Kind == cst.ReturnClause, c.Kind == cst.WhereClause:
			e.bumpAt(c.FirstToken(), &header)
			e.visitChildren(c)
		case c.Kind == cst.CodeBlock:
			e.release(&header)
			released = true
			e.visit(c)
		default:
			e.visit(c)
		}
	}
	if !released {
		e.release(&header)
	}
}

func (e *engine) visitParameterClause(n *cst.Node, header *slot) {
	for _, c := range n.Children {
		if c.IsToken() && c.Tok.Kind == token.RParen && e.opts.EditorCompat {
			e.bumpAt(c.Tok, header)
		}
		e.visit(c)
	}
}

// visitGuard shares one increment between the else keyword and the exit
// body, spanning the whole statement.
func (e *engine) visitGuard(n *cst.Node) {
	var s slot
	for _, c := range n.Children {
		if c.IsToken() && c.Tok.Kind == token.KwElse {
			e.bumpAt(c.Tok, &s)
		}
		if c.Kind == cst.CodeBlock {
			e.bumpAt(c.FirstToken(), &s)
		}
		e.visit(c)
	}
	e.release(&s)
}

// visitInitializer shares one increment between the '=' and the value,
// so `let x\n= 1` and `let x =\n1` both indent the continuation once.
func (e *engine) visitInitializer(n *cst.Node) {
	var s slot
	for _, c := range n.Children {
		e.bumpAt(c.FirstToken(), &s)
		e.visit(c)
	}
	e.release(&s)
}

// visitTernary keeps the condition at ambient level and shares one
// increment across '?', both branches and ':', so continuation lines
// land on one level instead of nesting progressively.
func (e *engine) visitTernary(n *cst.Node) {
	var s slot
	for i, c := range n.Children {
		if i > 0 {
			e.bumpAt(c.FirstToken(), &s)
		}
		e.visit(c)
	}
	e.release(&s)
}

// visitWhere handles a standalone constraint clause (loop filters). A
// where clause inside a function header contributes to the header slot
// instead and never reaches this path.
func (e *engine) visitWhere(n *cst.Node) {
	var s slot
	for _, c := range n.Children {
		e.bumpAt(c.FirstToken(), &s)
		e.visit(c)
	}
	e.release(&s)
}
