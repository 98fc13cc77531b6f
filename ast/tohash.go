package ast

import "encoding/json"

// ToMap renders n into a plain map whose shape matches the reference
// Fluent AST: a "type" key carrying the canonical NodeKind, with the
// rest of the fields following spec.md §6.3's omission rules (a nil
// Message value and a nil Message/Term comment are omitted rather than
// emitted as null; "attributes" is always present, even empty). Other
// absent optional fields, such as a reference's attribute or a term
// reference's arguments, are emitted as null.
//
// ToMap is the "to_hash" operation spec.md §6.3 requires: a reflection-
// free reification of the tree that downstream tools (serializers,
// fixture comparisons) can consume without depending on this package's
// Go types directly.
func ToMap(n Node) map[string]interface{} {
	if n == nil {
		return nil
	}

	m := map[string]interface{}{"type": string(n.Kind())}
	if span := SpanOf(n); span != nil {
		m["span"] = map[string]interface{}{
			"type":  "Span",
			"start": span.Start,
			"end":   span.End,
		}
	}

	switch v := n.(type) {
	case *Resource:
		m["body"] = mapNodes(v.Body)
	case *Identifier:
		m["name"] = v.Name
	case *Comment:
		m["content"] = v.Content
	case *GroupComment:
		m["content"] = v.Content
	case *ResourceComment:
		m["content"] = v.Content
	case *Message:
		m["id"] = ToMap(v.ID)
		if v.Value != nil {
			m["value"] = ToMap(v.Value)
		}
		m["attributes"] = mapAttributes(v.Attributes)
		if v.Comment != nil {
			m["comment"] = ToMap(v.Comment)
		}
	case *Term:
		m["id"] = ToMap(v.ID)
		m["value"] = ToMap(v.Value)
		m["attributes"] = mapAttributes(v.Attributes)
		if v.Comment != nil {
			m["comment"] = ToMap(v.Comment)
		}
	case *Attribute:
		m["id"] = ToMap(v.ID)
		m["value"] = ToMap(v.Value)
	case *Pattern:
		m["elements"] = mapNodes(v.Elements)
	case *TextElement:
		m["value"] = v.Value
	case *Placeable:
		m["expression"] = ToMap(v.Expression)
	case *StringLiteral:
		m["value"] = v.Value
	case *NumberLiteral:
		m["value"] = v.Value
		m["precision"] = v.Precision
	case *MessageReference:
		m["id"] = ToMap(v.ID)
		m["attribute"] = maybeMap(v.Attribute)
	case *TermReference:
		m["id"] = ToMap(v.ID)
		m["attribute"] = maybeMap(v.Attribute)
		m["arguments"] = maybeMap(v.Arguments)
	case *VariableReference:
		m["id"] = ToMap(v.ID)
	case *FunctionReference:
		m["id"] = ToMap(v.ID)
		m["arguments"] = ToMap(v.Arguments)
	case *CallArguments:
		m["positional"] = mapNodes(v.Positional)
		named := make([]interface{}, len(v.Named))
		for i, n := range v.Named {
			named[i] = ToMap(n)
		}
		m["named"] = named
	case *NamedArgument:
		m["name"] = ToMap(v.Name)
		m["value"] = ToMap(v.Value)
	case *SelectExpression:
		m["selector"] = ToMap(v.Selector)
		variants := make([]interface{}, len(v.Variants))
		for i, variant := range v.Variants {
			variants[i] = ToMap(variant)
		}
		m["variants"] = variants
	case *Variant:
		m["key"] = ToMap(v.Key)
		m["value"] = ToMap(v.Value)
		m["default"] = v.Default
	case *Junk:
		m["content"] = v.Content
		annotations := make([]interface{}, len(v.Annotations))
		for i, a := range v.Annotations {
			annotations[i] = ToMap(a)
		}
		m["annotations"] = annotations
	case *Annotation:
		m["code"] = v.Code
		args := make([]interface{}, len(v.Args))
		for i, a := range v.Args {
			args[i] = a
		}
		m["args"] = args
		m["message"] = v.Message
	}

	return m
}

func maybeMap(n Node) interface{} {
	if isNilNode(n) {
		return nil
	}
	return ToMap(n)
}

// isNilNode reports whether a typed Node interface value wraps a nil
// pointer (n == nil is not enough once a *Pattern/*Identifier etc. has
// been boxed into the Node interface).
func isNilNode(n Node) bool {
	if n == nil {
		return true
	}
	switch v := n.(type) {
	case *Identifier:
		return v == nil
	case *Pattern:
		return v == nil
	case *CallArguments:
		return v == nil
	default:
		return false
	}
}

func mapNodes(nodes []Node) []interface{} {
	out := make([]interface{}, len(nodes))
	for i, n := range nodes {
		out[i] = ToMap(n)
	}
	return out
}

func mapAttributes(attrs []*Attribute) []interface{} {
	out := make([]interface{}, len(attrs))
	for i, a := range attrs {
		out[i] = ToMap(a)
	}
	return out
}

// MarshalJSON lets any Node serialize through encoding/json by routing
// through ToMap, so fixture comparisons and external tooling see the
// reference AST shape without needing ast-specific decoding logic.
func MarshalJSON(n Node) ([]byte, error) {
	return json.Marshal(ToMap(n))
}
