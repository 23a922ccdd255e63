package cst

// Kind classifies a concrete-syntax-tree node. Leaf nodes always have
// KindToken; every other kind is a composite with ordered children.
type Kind uint8

const (
	KindToken Kind = iota
	SourceFile

	// Declarations.
	ImportDecl
	VariableDecl
	PatternBinding
	TypeAnnotation
	InitializerClause
	FunctionDecl
	ParameterClause
	ParameterList
	Parameter
	ReturnClause
	GenericParameterClause
	GenericParameterList
	GenericArgumentClause
	GenericArgumentList
	WhereClause
	RequirementList
	Requirement
	TypeDecl
	InheritanceClause
	InheritedTypeList
	MemberBlock
	MemberList
	AttributeList
	Attribute

	// Statements.
	CodeBlock
	StmtList
	ExprStmt
	IfStmt
	GuardStmt
	ConditionList
	Condition
	SwitchStmt
	SwitchCaseList
	SwitchCase
	CaseLabel
	CaseItemList
	CaseItem
	ForStmt
	WhileStmt
	RepeatStmt
	ReturnStmt
	DeferStmt
	IfConfigDecl
	IfConfigClause
	UnknownStmt

	// Expressions.
	SequenceExpr
	TernaryExpr
	MemberAccessExpr
	FunctionCallExpr
	SubscriptExpr
	ArgumentList
	Argument
	TupleExpr
	TupleElementList
	TupleElement
	ArrayExpr
	DictionaryExpr
	ElementList
	Element
	ClosureExpr
	ClosureSignature
)

var kindNames = [...]string{
	KindToken:              "token",
	SourceFile:             "source_file",
	ImportDecl:             "import_decl",
	VariableDecl:           "variable_decl",
	PatternBinding:         "pattern_binding",
	TypeAnnotation:         "type_annotation",
	InitializerClause:      "initializer_clause",
	FunctionDecl:           "function_decl",
	ParameterClause:        "parameter_clause",
	ParameterList:          "parameter_list",
	Parameter:              "parameter",
	ReturnClause:           "return_clause",
	GenericParameterClause: "generic_parameter_clause",
	GenericParameterList:   "generic_parameter_list",
	GenericArgumentClause:  "generic_argument_clause",
	GenericArgumentList:    "generic_argument_list",
	WhereClause:            "where_clause",
	RequirementList:        "requirement_list",
	Requirement:            "requirement",
	TypeDecl:               "type_decl",
	InheritanceClause:      "inheritance_clause",
	InheritedTypeList:      "inherited_type_list",
	MemberBlock:            "member_block",
	MemberList:             "member_list",
	AttributeList:          "attribute_list",
	Attribute:              "attribute",
	CodeBlock:              "code_block",
	StmtList:               "stmt_list",
	ExprStmt:               "expr_stmt",
	IfStmt:                 "if_stmt",
	GuardStmt:              "guard_stmt",
	ConditionList:          "condition_list",
	Condition:              "condition",
	SwitchStmt:             "switch_stmt",
	SwitchCaseList:         "switch_case_list",
	SwitchCase:             "switch_case",
	CaseLabel:              "case_label",
	CaseItemList:           "case_item_list",
	CaseItem:               "case_item",
	ForStmt:                "for_stmt",
	WhileStmt:              "while_stmt",
	RepeatStmt:             "repeat_stmt",
	ReturnStmt:             "return_stmt",
	DeferStmt:              "defer_stmt",
	IfConfigDecl:           "if_config_decl",
	IfConfigClause:         "if_config_clause",
	UnknownStmt:            "unknown_stmt",
	SequenceExpr:           "sequence_expr",
	TernaryExpr:            "ternary_expr",
	MemberAccessExpr:       "member_access_expr",
	FunctionCallExpr:       "function_call_expr",
	SubscriptExpr:          "subscript_expr",
	ArgumentList:           "argument_list",
	Argument:               "argument",
	TupleExpr:              "tuple_expr",
	TupleElementList:       "tuple_element_list",
	TupleElement:           "tuple_element",
	ArrayExpr:              "array_expr",
	DictionaryExpr:         "dictionary_expr",
	ElementList:            "element_list",
	Element:                "element",
	ClosureExpr:            "closure_expr",
	ClosureSignature:       "closure_signature",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}
