package parser

import (
	_ "embed"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rogpeppe/go-internal/txtar"

	"github.com/sakuro/ftl/ast"
)

//go:embed testdata/fixtures.txtar
var fixturesArchive []byte

// TestFixtures walks testdata/fixtures.txtar, pairs each "name.ftl" with
// its "name.json", parses the former and compares it against the latter.
// Both sides are round-tripped through encoding/json before comparison so
// that numeric types line up (ToMap's native ints vs. JSON's float64).
func TestFixtures(t *testing.T) {
	archive := txtar.Parse(fixturesArchive)

	sources := map[string][]byte{}
	expectations := map[string][]byte{}
	for _, f := range archive.Files {
		switch {
		case strings.HasSuffix(f.Name, ".ftl"):
			sources[strings.TrimSuffix(f.Name, ".ftl")] = f.Data
		case strings.HasSuffix(f.Name, ".json"):
			expectations[strings.TrimSuffix(f.Name, ".json")] = f.Data
		}
	}

	if len(sources) == 0 {
		t.Fatal("no .ftl fixtures found in testdata/fixtures.txtar")
	}

	for name, src := range sources {
		name, src := name, src
		t.Run(name, func(t *testing.T) {
			expectedJSON, ok := expectations[name]
			if !ok {
				t.Fatalf("no matching %s.json fixture", name)
			}

			res, _ := New(string(src), WithSpans(false)).Parse()

			gotBytes, err := json.Marshal(ast.ToMap(res))
			if err != nil {
				t.Fatalf("marshal parsed result: %v", err)
			}
			var got map[string]interface{}
			if err := json.Unmarshal(gotBytes, &got); err != nil {
				t.Fatalf("unmarshal parsed result: %v", err)
			}

			var want map[string]interface{}
			if err := json.Unmarshal(expectedJSON, &want); err != nil {
				t.Fatalf("unmarshal expected fixture: %v", err)
			}

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("fixture %s mismatch (-want +got):\n%s", name, diff)
			}
		})
	}
}
