package cst

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a readable tree outline, one node per line. Used by the
// `swiftfmt parse` debug command and by tests when a structure assertion
// fails.
func Dump(w io.Writer, n *Node) {
	dump(w, n, 0)
}

func dump(w io.Writer, n *Node, depth int) {
	pad := strings.Repeat("  ", depth)
	if n.IsToken() {
		fmt.Fprintf(w, "%s%s %q\n", pad, n.Tok.Kind, n.Tok.Text)
		return
	}
	fmt.Fprintf(w, "%s%s\n", pad, n.Kind)
	for _, c := range n.Children {
		dump(w, c, depth+1)
	}
}
