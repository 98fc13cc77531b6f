package ast

// Resource is the root of a parsed FTL file: an ordered sequence of
// entries in source order. Junk entries stand in for regions that failed
// to parse; valid entries are never merged with neighboring junk.
type Resource struct {
	Base
	Body []Node // Message, Term, Comment, GroupComment, ResourceComment, Junk
}

// Identifier is the lexical token `[A-Za-z][A-Za-z0-9_-]*` used for
// message, term, attribute and variable names.
type Identifier struct {
	Base
	Name string
}

// Comment is a `#`-prefixed standalone comment, or one consumed into the
// Comment field of the message/term it immediately precedes.
type Comment struct {
	Base
	Content string
}

// GroupComment is a `##`-prefixed comment. It always stands alone.
type GroupComment struct {
	Base
	Content string
}

// ResourceComment is a `###`-prefixed comment. It always stands alone.
type ResourceComment struct {
	Base
	Content string
}

// Message is an identifier with an optional value pattern and zero or
// more attributes; at least one of Value/Attributes is always present
// (otherwise parsing demotes the entry to Junk, code E0005).
type Message struct {
	Base
	ID         *Identifier
	Value      *Pattern // nil when absent
	Attributes []*Attribute
	Comment    *Comment // nil when no comment was attached
}

// Term is like Message but its Value is mandatory (absence is E0006) and
// its identifier is stored without the leading '-' sigil.
type Term struct {
	Base
	ID         *Identifier
	Value      *Pattern
	Attributes []*Attribute
	Comment    *Comment
}

// Attribute is a `.name = pattern` entry nested inside a Message or Term.
type Attribute struct {
	Base
	ID    *Identifier
	Value *Pattern
}

// Junk wraps a byte range of source that failed to parse, along with the
// annotation(s) describing why. Annotations is never empty and Content is
// never empty.
type Junk struct {
	Base
	Content     string
	Annotations []*Annotation
}

// Annotation records one parse failure: a catalog error code, the
// positional arguments substituted into its template, and the rendered
// human-readable message.
type Annotation struct {
	Base
	Code    string
	Args    []string
	Message string
}
