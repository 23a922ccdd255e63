// Package cst models the lossless concrete syntax tree the formatter
// rewrites. A node is either a composite (ordered children) or a token
// leaf; every input token appears in exactly one leaf, so rendering a tree
// reproduces the source text byte for byte.
package cst

import (
	"strings"

	"swiftfmt/internal/token"
)

// Node is one element of the tree. Composites own Children; leaves own Tok.
type Node struct {
	Kind     Kind
	Tok      *token.Token
	Children []*Node
}

// NewNode builds a composite node.
func NewNode(kind Kind, children ...*Node) *Node {
	return &Node{Kind: kind, Children: children}
}

// NewToken wraps a token into a leaf node.
func NewToken(tok *token.Token) *Node {
	return &Node{Kind: KindToken, Tok: tok}
}

// IsToken reports whether the node is a leaf.
func (n *Node) IsToken() bool {
	return n.Kind == KindToken
}

// Append adds children to a composite.
func (n *Node) Append(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// FirstToken returns the first token in the subtree, or nil for an empty
// composite.
func (n *Node) FirstToken() *token.Token {
	if n == nil {
		return nil
	}
	if n.IsToken() {
		return n.Tok
	}
	for _, c := range n.Children {
		if tok := c.FirstToken(); tok != nil {
			return tok
		}
	}
	return nil
}

// LastToken returns the last token in the subtree, or nil.
func (n *Node) LastToken() *token.Token {
	if n == nil {
		return nil
	}
	if n.IsToken() {
		return n.Tok
	}
	for i := len(n.Children) - 1; i >= 0; i-- {
		if tok := n.Children[i].LastToken(); tok != nil {
			return tok
		}
	}
	return nil
}

// FindChild returns the first direct child with the given kind, or nil.
func (n *Node) FindChild(kind Kind) *Node {
	for _, c := range n.Children {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

// FindToken returns the first direct token child with the given kind, or nil.
func (n *Node) FindToken(kind token.Kind) *Node {
	for _, c := range n.Children {
		if c.IsToken() && c.Tok.Kind == kind {
			return c
		}
	}
	return nil
}

// Tokens appends all tokens of the subtree, in source order, to out.
func (n *Node) Tokens(out []*token.Token) []*token.Token {
	if n.IsToken() {
		return append(out, n.Tok)
	}
	for _, c := range n.Children {
		out = c.Tokens(out)
	}
	return out
}

// Render writes the exact text of the subtree: leading trivia, token text,
// and trailing trivia of every token.
func (n *Node) Render() string {
	var sb strings.Builder
	n.render(&sb)
	return sb.String()
}

func (n *Node) render(sb *strings.Builder) {
	if n.IsToken() {
		token.Render(n.Tok.Leading, sb)
		sb.WriteString(n.Tok.Text)
		token.Render(n.Tok.Trailing, sb)
		return
	}
	for _, c := range n.Children {
		c.render(sb)
	}
}

// Clone deep-copies the subtree. Tokens and their trivia slices are copied
// too, so a pass may rewrite trivia on the clone without aliasing the input
// tree.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	if n.IsToken() {
		tok := *n.Tok
		tok.Leading = append([]token.Trivia(nil), n.Tok.Leading...)
		tok.Trailing = append([]token.Trivia(nil), n.Tok.Trailing...)
		return &Node{Kind: KindToken, Tok: &tok}
	}
	out := &Node{Kind: n.Kind}
	if len(n.Children) > 0 {
		out.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = c.Clone()
		}
	}
	return out
}

// Equal reports structural equality: same kinds, same token texts, and the
// same rendered trivia.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	if a.IsToken() {
		if a.Tok.Kind != b.Tok.Kind || a.Tok.Text != b.Tok.Text {
			return false
		}
		return renderTrivia(a.Tok.Leading) == renderTrivia(b.Tok.Leading) &&
			renderTrivia(a.Tok.Trailing) == renderTrivia(b.Tok.Trailing)
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

func renderTrivia(pieces []token.Trivia) string {
	var sb strings.Builder
	token.Render(pieces, &sb)
	return sb.String()
}
