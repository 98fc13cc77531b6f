// Package ast defines the syntax tree produced by parsing an FTL resource.
//
// Every node is an immutable value built once by the parser and never
// mutated afterwards. The tree is strictly rooted: a Resource owns its
// entries, an entry owns its patterns and child nodes, and so on; there
// are no back-references.
package ast

// NodeKind names the concrete production a Node was built from. It matches
// the canonical names used by the reference Fluent AST so that ToMap's
// "type" field lines up across implementations.
type NodeKind string

const (
	KindResource          NodeKind = "Resource"
	KindMessage           NodeKind = "Message"
	KindTerm              NodeKind = "Term"
	KindPattern           NodeKind = "Pattern"
	KindTextElement       NodeKind = "TextElement"
	KindPlaceable         NodeKind = "Placeable"
	KindStringLiteral     NodeKind = "StringLiteral"
	KindNumberLiteral     NodeKind = "NumberLiteral"
	KindMessageReference  NodeKind = "MessageReference"
	KindTermReference     NodeKind = "TermReference"
	KindVariableReference NodeKind = "VariableReference"
	KindFunctionReference NodeKind = "FunctionReference"
	KindSelectExpression  NodeKind = "SelectExpression"
	KindVariant           NodeKind = "Variant"
	KindAttribute         NodeKind = "Attribute"
	KindIdentifier        NodeKind = "Identifier"
	KindCallArguments     NodeKind = "CallArguments"
	KindNamedArgument     NodeKind = "NamedArgument"
	KindComment           NodeKind = "Comment"
	KindGroupComment      NodeKind = "GroupComment"
	KindResourceComment   NodeKind = "ResourceComment"
	KindJunk              NodeKind = "Junk"
	KindAnnotation        NodeKind = "Annotation"
)

// Node is implemented by every syntax tree node. It is a closed,
// discriminated union: callers type-switch on the concrete type (or on
// Kind()) rather than on behavior.
type Node interface {
	Kind() NodeKind
	span() *Span
}

// Span is a byte-offset interval [Start, End) into the original,
// pre-normalization source. A Span is only attached when the parser was
// constructed with spans enabled; otherwise every node's span is nil.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Base is embedded by every concrete node type to satisfy Node.
type Base struct {
	NodeKind NodeKind
	Span     *Span
}

func (b Base) Kind() NodeKind { return b.NodeKind }
func (b Base) span() *Span    { return b.Span }

// SpanOf returns n's span, or nil if spans were disabled for the parse
// that produced n.
func SpanOf(n Node) *Span {
	if n == nil {
		return nil
	}
	return n.span()
}
