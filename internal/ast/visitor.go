package ast

// Visitor walks the tree; every node type has one method.
type Visitor interface {
	VisitProgram(node *Program)
	VisitExpressionStatement(node *ExpressionStatement)
	VisitAssignStatement(node *AssignStatement)
	VisitBlockStatement(node *BlockStatement)

	VisitStringLiteral(node *StringLiteral)
	VisitIntegerLiteral(node *IntegerLiteral)
	VisitBooleanLiteral(node *BooleanLiteral)
	VisitName(node *Name)
	VisitUndefLiteral(node *UndefLiteral)
	VisitVariable(node *Variable)
	VisitRegexLiteral(node *RegexLiteral)
	VisitArrayConstructor(node *ArrayConstructor)
	VisitDefault(node *Default)
	VisitCaseStatement(node *CaseStatement)
	VisitCaseOpt(node *CaseOpt)
}
