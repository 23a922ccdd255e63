package indent

import (
	"swiftfmt/internal/cst"
)

// eligibleList reports whether a node kind is an indentable list: an
// ordered sibling sequence that gets at most one increment when any of
// its children starts a new line. Switch-case lists join the set only by
// configuration; the top-level statement slot of a file never does.
func eligibleList(k cst.Kind, opts Options) bool {
	switch k {
	case cst.StmtList, cst.MemberList,
		cst.ParameterList, cst.ArgumentList,
		cst.GenericParameterList, cst.GenericArgumentList,
		cst.RequirementList, cst.InheritedTypeList,
		cst.TupleElementList, cst.ElementList, cst.CaseItemList,
		cst.ConditionList, cst.AttributeList,
		cst.SequenceExpr:
		return true
	case cst.SwitchCaseList:
		return opts.IndentSwitchCases
	}
	return false
}

// visitList applies the one-increment-per-list rule: the first child
// whose first token starts a line (or opens the file) raises the level,
// every child from there on is visited at the raised level, and the
// matching decrement lands after the last child. A token already claimed
// by a construct handler disqualifies the whole list: that boundary was
// counted once already.
func (e *engine) visitList(n *cst.Node) {
	suppressed := e.consumeSuppression(n.Kind)

	bumped := false
	decided := false
	for _, c := range n.Children {
		if !decided {
			if tok := c.FirstToken(); e.qualifies(tok) {
				decided = true
				if !suppressed && !e.visited[tok] {
					e.visited[tok] = true
					e.level++
					bumped = true
				}
			}
		}
		if c.IsToken() {
			e.visit(c)
			continue
		}
		e.pushFrame()
		e.visit(c)
		e.popFrame()
	}
	if bumped {
		e.dec()
	}
}

// visitIfConfigClause walks one #if/#elseif/#else arm. The directive and
// its condition stay at ambient level; when conditional-region
// indentation is off, the clause arms its statement list for
// suppression, and the list consumes it so regions nested deeper indent
// normally again.
func (e *engine) visitIfConfigClause(n *cst.Node) {
	if !e.opts.IndentConditionalRegions {
		e.condAllow = append(e.condAllow, false)
		defer func() {
			e.condAllow = e.condAllow[:len(e.condAllow)-1]
		}()
	}
	e.visitChildren(n)
}

// consumeSuppression reports whether this statement list must stay at
// ambient level because it is the direct body of a suppressed
// conditional region.
func (e *engine) consumeSuppression(k cst.Kind) bool {
	if k != cst.StmtList && k != cst.MemberList {
		return false
	}
	if top := len(e.condAllow) - 1; top >= 0 && !e.condAllow[top] {
		e.condAllow[top] = true
		return true
	}
	return false
}
