package ast

// StringLiteral is a `"..."` literal with escapes already expanded:
// \\, \", \uXXXX and \UXXXXXX.
type StringLiteral struct {
	Base
	Value string
}

// NumberLiteral is a numeric literal. Value keeps the original lexical
// digit string (consumers reparse as needed); Precision is the number of
// digits after the decimal point, 0 when there is none.
type NumberLiteral struct {
	Base
	Value     string
	Precision int
}

// VariableReference refers to a `$name` external argument.
type VariableReference struct {
	Base
	ID *Identifier
}

// TermReference refers to a `-name` term, with an optional `.attribute`
// and optional call arguments.
type TermReference struct {
	Base
	ID        *Identifier
	Attribute *Identifier // nil when absent
	Arguments *CallArguments // nil when absent
}

// MessageReference refers to a message, with an optional `.attribute`.
type MessageReference struct {
	Base
	ID        *Identifier
	Attribute *Identifier // nil when absent
}

// FunctionReference calls a built-in function. ID.Name always matches
// `[A-Z][A-Z0-9_-]*`; anything else is rejected with E0008 before this
// node is ever constructed.
type FunctionReference struct {
	Base
	ID        *Identifier
	Arguments *CallArguments
}

// CallArguments is the parenthesized argument list passed to a term or
// function reference: positional expressions followed by named ones.
type CallArguments struct {
	Base
	Positional []Node // Expression
	Named      []*NamedArgument
}

// NamedArgument is a `name: literal` argument. Its value is restricted to
// StringLiteral/NumberLiteral by the grammar (E0014 otherwise).
type NamedArgument struct {
	Base
	Name  *Identifier
	Value Node // StringLiteral or NumberLiteral
}

// SelectExpression branches on Selector across an ordered, non-empty list
// of Variants, exactly one of which is the default.
type SelectExpression struct {
	Base
	Selector Node // Expression
	Variants []*Variant
}

// Variant is one arm of a SelectExpression: a key (Identifier or
// NumberLiteral), a pattern value, and whether it is the default (`*`).
type Variant struct {
	Base
	Key     Node // Identifier or NumberLiteral
	Value   *Pattern
	Default bool
}
