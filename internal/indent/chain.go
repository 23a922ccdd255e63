package indent

import (
	"swiftfmt/internal/cst"
	"swiftfmt/internal/token"
)

// chainFrame tracks one method/property chain inside a single list
// child. The first access, call or subscript expression encountered
// claims the frame; the first line-starting dot under it raises the
// level once; the matching decrement lands when the claiming node is
// done. A chain of any length therefore indents all its continuation
// dots by exactly one unit.
type chainFrame struct {
	root   *cst.Node
	bumped bool
}

func (e *engine) pushFrame() {
	e.chains = append(e.chains, &chainFrame{})
}

func (e *engine) popFrame() {
	e.chains = e.chains[:len(e.chains)-1]
}

func (e *engine) topFrame() *chainFrame {
	if len(e.chains) == 0 {
		return nil
	}
	return e.chains[len(e.chains)-1]
}

// visitChainNode walks a member access, call or subscript. Nested nodes
// of the same chain share the frame claimed by the outermost one; call
// arguments and closure bodies recurse at ambient level through their
// own list contexts.
func (e *engine) visitChainNode(n *cst.Node) {
	f := e.topFrame()
	claimed := false
	if f != nil && f.root == nil {
		f.root = n
		claimed = true
	}

	for _, c := range n.Children {
		if c.IsToken() && c.Tok.Kind == token.Dot {
			e.chainDot(c.Tok)
			e.rewriteToken(c.Tok)
			continue
		}
		if c.Kind == cst.ClosureExpr && e.opts.EditorCompat {
			// трейлинг-замыкание в editor-режиме: перенесённая '{'
			// держит внутренний уровень
			var s slot
			e.bumpAt(c.FirstToken(), &s)
			e.visit(c)
			e.release(&s)
			continue
		}
		e.visit(c)
	}

	if claimed {
		if f.bumped {
			e.dec()
		}
		// фрейм снова свободен: следующая цепочка в том же выражении
		// получает собственный инкремент
		f.root, f.bumped = nil, false
	}
}

// chainDot raises the level at the first line-starting dot of a claimed,
// not-yet-incremented chain.
func (e *engine) chainDot(tok *token.Token) {
	f := e.topFrame()
	if f == nil || f.root == nil || f.bumped {
		return
	}
	if !e.qualifies(tok) || e.visited[tok] {
		return
	}
	e.visited[tok] = true
	e.level++
	f.bumped = true
}
