package driver

import (
	"swiftfmt/internal/cst"
	"swiftfmt/internal/diag"
	"swiftfmt/internal/lexer"
	"swiftfmt/internal/parser"
	"swiftfmt/internal/source"
	"swiftfmt/internal/token"
)

// TokenizeFile lexes one file for the `tokenize` debug command.
func TokenizeFile(path string, maxDiagnostics int) ([]*token.Token, *source.FileSet, *diag.Bag, error) {
	bag := diag.NewBag(maxDiagnostics)
	fileSet := source.NewFileSet()
	id, err := fileSet.Load(path)
	if err != nil {
		return nil, nil, nil, err
	}
	toks := lexer.Scan(fileSet.Get(id), lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})
	return toks, fileSet, bag, nil
}

// ParseTree parses one file for the `parse` debug command.
func ParseTree(path string, maxDiagnostics int) (*cst.Node, *source.FileSet, *diag.Bag, error) {
	bag := diag.NewBag(maxDiagnostics)
	fileSet := source.NewFileSet()
	id, err := fileSet.Load(path)
	if err != nil {
		return nil, nil, nil, err
	}
	root := parser.ParseFile(fileSet.Get(id), parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	return root, fileSet, bag, nil
}
