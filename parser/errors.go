package parser

import (
	"fmt"
	"strings"

	"github.com/sakuro/ftl/ast"
)

// Code is a catalog error code, e.g. "E0003".
type Code string

// The catalog spec.md §6.4 requires the parser to be able to emit.
const (
	CodeExpectedChar       Code = "E0003"
	CodeExpectedCharClass  Code = "E0004"
	CodeMessageWithoutValue Code = "E0005"
	CodeTermWithoutValue   Code = "E0006"
	CodeInvalidCallee      Code = "E0008"
	CodeInvalidArgumentName Code = "E0009"
	CodeNoDefaultVariant   Code = "E0010"
	CodeNoVariants         Code = "E0011"
	CodeExpectedValue      Code = "E0012"
	CodeExpectedVariantKey Code = "E0013"
	CodeExpectedLiteral    Code = "E0014"
	CodeMultipleDefaults   Code = "E0015"
	CodeMessageAsSelector  Code = "E0016"
	CodeTermAsSelector     Code = "E0017"
	CodeMessageAttributeAsSelector Code = "E0018"
	CodeTermAttributeAsPlaceable  Code = "E0019"
	CodeUnterminatedString Code = "E0020"
	CodePositionalAfterNamed Code = "E0021"
	CodeDuplicateNamedArgument Code = "E0022"
	CodeUnknownEscape      Code = "E0025"
	CodeInvalidUnicodeEscape Code = "E0026"
	CodeUnbalancedClosingBrace Code = "E0027"
	CodeExpectedExpression Code = "E0028"
)

// catalog maps each code to its message template, with "{0}", "{1}", ...
// placeholders substituted positionally from Args.
var catalog = map[Code]string{
	CodeExpectedChar:               "Expected token: {0}",
	CodeExpectedCharClass:          "Expected a character from range: {0}",
	CodeMessageWithoutValue:        `Expected message "{0}" to have a value or attributes`,
	CodeTermWithoutValue:           `Expected term "-{0}" to have a value`,
	CodeInvalidCallee:              "The callee has to be an upper-case identifier or a term",
	CodeInvalidArgumentName:        "The argument name has to be a simple identifier",
	CodeNoDefaultVariant:           "Expected one of the variants to be marked as default (*)",
	CodeNoVariants:                 `Expected at least one variant after "->"`,
	CodeExpectedValue:              "Expected value",
	CodeExpectedVariantKey:         "Expected variant key",
	CodeExpectedLiteral:            "Expected literal",
	CodeMultipleDefaults:           "Only one variant can be marked as default (*)",
	CodeMessageAsSelector:          "Message references cannot be used as selectors",
	CodeTermAsSelector:             "Terms cannot be used as selectors",
	CodeMessageAttributeAsSelector: "Attributes of messages cannot be used as selectors",
	CodeTermAttributeAsPlaceable:   "Attributes of terms cannot be used as placeables",
	CodeUnterminatedString:         "Unterminated string expression",
	CodePositionalAfterNamed:       "Positional arguments must not follow named arguments",
	CodeDuplicateNamedArgument:     "Named arguments must be unique",
	CodeUnknownEscape:              `Unknown escape sequence: \{0}`,
	CodeInvalidUnicodeEscape:       "Invalid Unicode escape sequence: {0}",
	CodeUnbalancedClosingBrace:     "Unbalanced closing brace in TextElement",
	CodeExpectedExpression:         "Expected an expression",
}

// ParseError is the structured result every grammar routine that can
// fail returns, instead of raising/throwing: spec.md §9's
// "result values" strategy for exception-free recovery. The entry-level
// driver is the only place that inspects one.
type ParseError struct {
	Code Code
	Args []string
	Pos  int // byte offset where the error was detected
}

func (e *ParseError) Error() string {
	return e.Render()
}

// Render substitutes Args positionally into the catalog template for
// Code, producing the human-readable message an Annotation carries.
func (e *ParseError) Render() string {
	template, ok := catalog[e.Code]
	if !ok {
		return string(e.Code)
	}
	msg := template
	for i, arg := range e.Args {
		msg = strings.ReplaceAll(msg, fmt.Sprintf("{%d}", i), arg)
	}
	return msg
}

func newParseError(pos int, code Code, args ...string) *ParseError {
	return &ParseError{Code: code, Args: args, Pos: pos}
}

// annotation builds the ast.Annotation an entry-level Junk node carries
// for a given ParseError.
func annotation(err *ParseError, spanFrom, spanTo int, withSpans bool) *ast.Annotation {
	a := &ast.Annotation{
		Base:    ast.Base{NodeKind: ast.KindAnnotation},
		Code:    string(err.Code),
		Args:    err.Args,
		Message: err.Render(),
	}
	if withSpans {
		a.Span = &ast.Span{Start: spanFrom, End: spanTo}
	}
	return a
}
