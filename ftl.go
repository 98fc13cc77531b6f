// Package ftl parses Project Fluent's FTL localization file format into a
// syntax tree. It implements the grammar and error-recovery core only:
// message formatting, variable resolution and locale/plural data are
// out of scope and live in separate packages built on top of this one.
package ftl

import (
	"github.com/sakuro/ftl/ast"
	"github.com/sakuro/ftl/parser"
)

// Parse parses source into a Resource. It never returns an error: any
// region that fails to parse becomes a Junk entry in the returned tree,
// carrying an Annotation that explains why. The returned slice mirrors
// those annotations in encounter order, for callers that want a flat
// error list without walking the tree themselves.
func Parse(source string, opts ...parser.Option) (*ast.Resource, []*parser.ParseError) {
	return parser.New(source, opts...).Parse()
}
