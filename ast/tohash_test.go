package ast

import "testing"

func TestToMapOmitsNilValueAndComment(t *testing.T) {
	msg := &Message{
		Base:       Base{NodeKind: KindMessage},
		ID:         &Identifier{Base: Base{NodeKind: KindIdentifier}, Name: "title"},
		Value:      nil,
		Attributes: []*Attribute{{Base: Base{NodeKind: KindAttribute}, ID: &Identifier{Base: Base{NodeKind: KindIdentifier}, Name: "gender"}, Value: &Pattern{Base: Base{NodeKind: KindPattern}}}},
	}

	m := ToMap(msg)
	if m["type"] != "Message" {
		t.Fatalf(`type = %v, want "Message"`, m["type"])
	}
	if _, ok := m["value"]; ok {
		t.Fatalf("value key present (%v), want omitted", m["value"])
	}
	if _, ok := m["comment"]; ok {
		t.Fatalf("comment key present (%v), want omitted", m["comment"])
	}
	attrs, ok := m["attributes"].([]interface{})
	if !ok || len(attrs) != 1 {
		t.Fatalf("attributes = %#v, want one entry", m["attributes"])
	}
}

func TestToMapSpanOmittedWhenNil(t *testing.T) {
	id := &Identifier{Base: Base{NodeKind: KindIdentifier, Span: nil}, Name: "x"}
	m := ToMap(id)
	if _, ok := m["span"]; ok {
		t.Fatalf("span key present, want omitted when Span is nil")
	}
}

func TestToMapSpanPresentWhenSet(t *testing.T) {
	id := &Identifier{Base: Base{NodeKind: KindIdentifier, Span: &Span{Start: 3, End: 9}}, Name: "x"}
	m := ToMap(id)
	span, ok := m["span"].(map[string]interface{})
	if !ok {
		t.Fatalf("span = %#v, want a map", m["span"])
	}
	if span["start"] != 3 || span["end"] != 9 {
		t.Fatalf("span = %#v, want {start:3 end:9}", span)
	}
}

// TestSpanParityOnNonSpanFields exercises spec.md's requirement that
// enabling and disabling spans never changes a tree's shape or content,
// only whether Span fields are populated: every non-span key in the two
// maps below must be identical.
func TestSpanParityOnNonSpanFields(t *testing.T) {
	withSpans := &Resource{
		Base: Base{NodeKind: KindResource, Span: &Span{Start: 0, End: 5}},
		Body: []Node{
			&Message{
				Base: Base{NodeKind: KindMessage, Span: &Span{Start: 0, End: 5}},
				ID:   &Identifier{Base: Base{NodeKind: KindIdentifier, Span: &Span{Start: 0, End: 1}}, Name: "a"},
				Value: &Pattern{
					Base: Base{NodeKind: KindPattern, Span: &Span{Start: 4, End: 5}},
					Elements: []Node{
						&TextElement{Base: Base{NodeKind: KindTextElement, Span: &Span{Start: 4, End: 5}}, Value: "1"},
					},
				},
				Attributes: []*Attribute{},
			},
		},
	}
	withoutSpans := &Resource{
		Base: Base{NodeKind: KindResource},
		Body: []Node{
			&Message{
				Base: Base{NodeKind: KindMessage},
				ID:   &Identifier{Base: Base{NodeKind: KindIdentifier}, Name: "a"},
				Value: &Pattern{
					Base: Base{NodeKind: KindPattern},
					Elements: []Node{
						&TextElement{Base: Base{NodeKind: KindTextElement}, Value: "1"},
					},
				},
				Attributes: []*Attribute{},
			},
		},
	}

	a := stripSpans(ToMap(withSpans))
	b := stripSpans(ToMap(withoutSpans))
	if !mapsEqual(a, b) {
		t.Fatalf("trees differ on non-span fields:\n%#v\n%#v", a, b)
	}
}

func stripSpans(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		if k == "span" {
			continue
		}
		out[k] = stripSpansValue(v)
	}
	return out
}

func stripSpansValue(v interface{}) interface{} {
	switch x := v.(type) {
	case map[string]interface{}:
		return stripSpans(x)
	case []interface{}:
		out := make([]interface{}, len(x))
		for i, e := range x {
			out[i] = stripSpansValue(e)
		}
		return out
	default:
		return v
	}
}

func mapsEqual(a, b map[string]interface{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok {
			return false
		}
		if !valuesEqual(av, bv) {
			return false
		}
	}
	return true
}

func valuesEqual(a, b interface{}) bool {
	switch av := a.(type) {
	case map[string]interface{}:
		bv, ok := b.(map[string]interface{})
		return ok && mapsEqual(av, bv)
	case []interface{}:
		bv, ok := b.([]interface{})
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !valuesEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

func TestMarshalJSONEncodesToMap(t *testing.T) {
	comment := &Comment{Base: Base{NodeKind: KindComment}, Content: "hi"}
	b, err := MarshalJSON(comment)
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	want := `{"content":"hi","type":"Comment"}`
	if string(b) != want {
		t.Fatalf("MarshalJSON = %s, want %s", b, want)
	}
}
