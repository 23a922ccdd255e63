package parser

import (
	"strings"
	"testing"

	"swiftfmt/internal/cst"
	"swiftfmt/internal/diag"
	"swiftfmt/internal/token"
)

func parseSrc(t *testing.T, src string) *cst.Node {
	t.Helper()
	return Parse("test.swift", []byte(src), Options{})
}

// Every input must render back byte for byte, broken code included.
func TestRoundTrip(t *testing.T) {
	samples := []string{
		"",
		"let x = 1\n",
		"let x = 1\nlet y = 2 // tail\n",
		"func greet(name: String) -> String {\n    return \"hi \\(name)\"\n}\n",
		"struct Point {\n    var x: Int\n    var y: Int\n}\n",
		"if let v = opt, v > 0 {\n    use(v)\n} else {\n    bail()\n}\n",
		"switch x {\ncase 1, 2:\n    a()\ndefault:\n    b()\n}\n",
		"foo\n    .bar()\n    .baz { x in\n        x + 1\n    }\n",
		"#if DEBUG\nlog()\n#else\nnoop()\n#endif\n",
		"for (k, v) in dict where v > 0 {\n    print(k)\n}\n",
		"let d = [\"a\": 1, \"b\": 2]\nlet a = [1, 2, 3]\nlet e = [:]\n",
		"guard let x = y else { return }\n",
		"let v = flag ? a : b\n",
		"x = try! risky()\nlet y = opt?.chain!.end\n",
		"repeat {\n    spin()\n} while busy\n",
		"@discardableResult\npublic func run() throws -> Int { return 0 }\n",
		"func max<T: Comparable>(_ a: T, _ b: T) -> T where T: Equatable {\n    return a > b ? a : b\n}\n",
		// broken inputs still round-trip
		"func (\n",
		"let = = =\n",
		"} stray\n",
		"#if X\nlet a = 1\n",
	}
	for _, src := range samples {
		root := parseSrc(t, src)
		if got := root.Render(); got != src {
			t.Fatalf("round trip failed\n input: %q\noutput: %q", src, got)
		}
	}
}

func TestEveryTokenInTree(t *testing.T) {
	src := "class C { func f() { if x { y() } } }\n"
	root := parseSrc(t, src)
	toks := root.Tokens(nil)
	if toks[len(toks)-1].Kind != token.EOF {
		t.Fatalf("tree must end with the EOF token")
	}
	var sb strings.Builder
	for _, tok := range toks {
		token.Render(tok.Leading, &sb)
		sb.WriteString(tok.Text)
		token.Render(tok.Trailing, &sb)
	}
	if sb.String() != src {
		t.Fatalf("token stream diverged: %q", sb.String())
	}
}

func TestVariableStructure(t *testing.T) {
	root := parseSrc(t, "let x: Int = 1 + 2\n")
	decl := root.Children[0]
	if decl.Kind != cst.VariableDecl {
		t.Fatalf("kind: %v", decl.Kind)
	}
	binding := decl.FindChild(cst.PatternBinding)
	if binding == nil {
		t.Fatalf("no PatternBinding")
	}
	if binding.FindChild(cst.TypeAnnotation) == nil {
		t.Fatalf("no TypeAnnotation")
	}
	init := binding.FindChild(cst.InitializerClause)
	if init == nil {
		t.Fatalf("no InitializerClause")
	}
	if init.Children[1].Kind != cst.SequenceExpr {
		t.Fatalf("initializer value: %v", init.Children[1].Kind)
	}
}

// Аннотация типа заканчивается на границе строки: следующий statement
// не втягивается в неё.
func TestTypeAnnotationStopsAtLineStart(t *testing.T) {
	root := parseSrc(t, "let x: Int\nfoo(\n1,\n2\n)\n")
	if len(root.Children) != 3 { // VariableDecl + ExprStmt + EOF
		t.Fatalf("want 2 statements, got %d", len(root.Children)-1)
	}
	if root.Children[0].Kind != cst.VariableDecl {
		t.Fatalf("first: %v", root.Children[0].Kind)
	}
	if root.Children[1].Children[0].Kind != cst.FunctionCallExpr {
		t.Fatalf("second: %v", root.Children[1].Children[0].Kind)
	}
}

func TestGenericArgumentStructure(t *testing.T) {
	root := parseSrc(t, "let d: Dictionary<String, Int> = [:]\n")
	ann := root.Children[0].FindChild(cst.PatternBinding).FindChild(cst.TypeAnnotation)
	clause := ann.FindChild(cst.GenericArgumentClause)
	if clause == nil {
		t.Fatalf("no GenericArgumentClause")
	}
	args := clause.FindChild(cst.GenericArgumentList)
	if args == nil || len(args.Children) != 3 { // два аргумента и запятая
		t.Fatalf("args: %+v", args)
	}

	// многострочный вариант остаётся одной аннотацией
	root = parseSrc(t, "let d: Dictionary<\nString,\nInt\n> = [:]\n")
	if len(root.Children) != 2 { // VariableDecl + EOF
		t.Fatalf("annotation split into %d statements", len(root.Children)-1)
	}
}

func TestChainStructure(t *testing.T) {
	root := parseSrc(t, "a.b().c\n")
	expr := root.Children[0].Children[0]
	// наружный узел — доступ к .c поверх вызова
	if expr.Kind != cst.MemberAccessExpr {
		t.Fatalf("outer: %v", expr.Kind)
	}
	call := expr.Children[0]
	if call.Kind != cst.FunctionCallExpr {
		t.Fatalf("call: %v", call.Kind)
	}
	if call.Children[0].Kind != cst.MemberAccessExpr {
		t.Fatalf("inner access: %v", call.Children[0].Kind)
	}
}

func TestLineStartingDotStaysInChain(t *testing.T) {
	root := parseSrc(t, "foo\n    .bar()\n")
	if len(root.Children) != 2 { // ExprStmt + EOF
		t.Fatalf("chain split into %d statements", len(root.Children)-1)
	}
	expr := root.Children[0].Children[0]
	if expr.Kind != cst.FunctionCallExpr {
		t.Fatalf("expr: %v", expr.Kind)
	}
}

func TestOperatorContinuation(t *testing.T) {
	// оператор в начале строки продолжает выражение
	root := parseSrc(t, "1\n    + 2\n")
	if len(root.Children) != 2 {
		t.Fatalf("sequence split into %d statements", len(root.Children)-1)
	}
	if root.Children[0].Children[0].Kind != cst.SequenceExpr {
		t.Fatalf("kind: %v", root.Children[0].Children[0].Kind)
	}

	// операнд в начале строки открывает новый statement
	root = parseSrc(t, "a()\nb()\n")
	if len(root.Children) != 3 {
		t.Fatalf("want 2 statements, got %d", len(root.Children)-1)
	}
}

func TestSwitchStructure(t *testing.T) {
	root := parseSrc(t, "switch v {\ncase .a where x > 0:\n    f()\ncase .b:\n    g()\ndefault:\n    h()\n}\n")
	sw := root.Children[0]
	if sw.Kind != cst.SwitchStmt {
		t.Fatalf("kind: %v", sw.Kind)
	}
	cases := sw.FindChild(cst.SwitchCaseList)
	if cases == nil || len(cases.Children) != 3 {
		t.Fatalf("cases: %+v", cases)
	}
	first := cases.Children[0]
	label := first.FindChild(cst.CaseLabel)
	if label == nil || label.FindToken(token.Colon) == nil {
		t.Fatalf("case label missing colon")
	}
	if first.FindChild(cst.StmtList) == nil {
		t.Fatalf("case body missing")
	}
}

func TestIfConfigStructure(t *testing.T) {
	root := parseSrc(t, "#if os(macOS)\na()\n#elseif os(Linux)\nb()\n#else\nc()\n#endif\n")
	region := root.Children[0]
	if region.Kind != cst.IfConfigDecl {
		t.Fatalf("kind: %v", region.Kind)
	}
	clauses := 0
	for _, c := range region.Children {
		if c.Kind == cst.IfConfigClause {
			clauses++
		}
	}
	if clauses != 3 {
		t.Fatalf("clauses: %d", clauses)
	}
	if region.FindToken(token.PoundEndif) == nil {
		t.Fatalf("missing #endif leaf")
	}
}

func TestClosureSignature(t *testing.T) {
	root := parseSrc(t, "run { x, y in\n    x + y\n}\n")
	call := root.Children[0].Children[0]
	if call.Kind != cst.FunctionCallExpr {
		t.Fatalf("kind: %v", call.Kind)
	}
	closure := call.FindChild(cst.ClosureExpr)
	if closure == nil || closure.FindChild(cst.ClosureSignature) == nil {
		t.Fatalf("signature not detected")
	}

	root = parseSrc(t, "run {\n    work()\n}\n")
	closure = root.Children[0].Children[0].FindChild(cst.ClosureExpr)
	if closure == nil {
		t.Fatalf("no closure")
	}
	if closure.FindChild(cst.ClosureSignature) != nil {
		t.Fatalf("phantom signature")
	}
}

func TestDiagnostics(t *testing.T) {
	bag := diag.NewBag(0)
	Parse("bad.swift", []byte("func f( {\n"), Options{Reporter: &diag.BagReporter{Bag: bag}})
	if !bag.HasErrors() {
		t.Fatalf("expected a syntax diagnostic")
	}

	bag = diag.NewBag(0)
	Parse("dangling.swift", []byte("#if A\nx()\n"), Options{Reporter: &diag.BagReporter{Bag: bag}})
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.SynDanglingDirective {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing dangling-directive diagnostic: %+v", bag.Items())
	}
}

func TestTernary(t *testing.T) {
	root := parseSrc(t, "let v = c ? a : b\n")
	init := root.Children[0].FindChild(cst.PatternBinding).FindChild(cst.InitializerClause)
	if init.Children[1].Kind != cst.TernaryExpr {
		t.Fatalf("kind: %v", init.Children[1].Kind)
	}
}
