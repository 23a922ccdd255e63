// Package rewrite runs ordered trivia-rewriting passes over a parsed
// file. Each pass takes a complete tree and returns a complete tree;
// passes never interleave, because later ones (whitespace cleanup)
// assume indentation is already final.
package rewrite

import "swiftfmt/internal/cst"

// Pass is one tree-to-tree transformation.
type Pass interface {
	Name() string
	Rewrite(root *cst.Node) *cst.Node
}

// Pipeline applies passes strictly in order.
type Pipeline struct {
	passes []Pass
}

// NewPipeline builds a pipeline from the given passes.
func NewPipeline(passes ...Pass) *Pipeline {
	return &Pipeline{passes: passes}
}

// Run feeds the tree through every pass and returns the final tree.
func (p *Pipeline) Run(root *cst.Node) *cst.Node {
	for _, pass := range p.passes {
		root = pass.Rewrite(root)
	}
	return root
}

// Names lists the pass names in execution order.
func (p *Pipeline) Names() []string {
	out := make([]string, len(p.passes))
	for i, pass := range p.passes {
		out[i] = pass.Name()
	}
	return out
}
