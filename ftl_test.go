package ftl

import (
	"testing"

	"github.com/sakuro/ftl/ast"
	"github.com/sakuro/ftl/parser"
)

func TestParseReturnsResourceAndNoErrorsForValidInput(t *testing.T) {
	res, errs := Parse("greeting = Hello, {$name}!\n")
	if len(errs) != 0 {
		t.Fatalf("errs = %v, want none", errs)
	}
	if len(res.Body) != 1 {
		t.Fatalf("body = %d entries, want 1", len(res.Body))
	}
	if _, ok := res.Body[0].(*ast.Message); !ok {
		t.Fatalf("body[0] = %T, want *ast.Message", res.Body[0])
	}
}

func TestParseNeverFailsOnMalformedInput(t *testing.T) {
	res, errs := Parse("not a valid = = = entry\n")
	if res == nil {
		t.Fatal("resource = nil, Parse must always return a Resource")
	}
	if len(errs) == 0 {
		t.Fatal("errs = empty, want at least one for malformed input")
	}
	if len(res.Body) != 1 {
		t.Fatalf("body = %d entries, want 1", len(res.Body))
	}
	if _, ok := res.Body[0].(*ast.Junk); !ok {
		t.Fatalf("body[0] = %T, want *ast.Junk", res.Body[0])
	}
}

func TestParseForwardsOptions(t *testing.T) {
	res, errs := Parse("a = 1\n", parser.WithSpans(false))
	if len(errs) != 0 {
		t.Fatalf("errs = %v, want none", errs)
	}
	msg := res.Body[0].(*ast.Message)
	if msg.Span != nil {
		t.Fatalf("span = %#v, want nil with spans disabled", msg.Span)
	}
}
