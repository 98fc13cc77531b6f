// Package parser implements a recursive-descent parser for the FTL
// localization file format. It never panics and Parse never fails: every
// region that cannot be parsed is wrapped into a Junk entry carrying an
// Annotation, and parsing resumes at the next recognizable entry.
package parser

import (
	"strconv"
	"strings"

	"github.com/sakuro/ftl/ast"
)

// Options configures a Parser.
type Options struct {
	// WithSpans attaches a byte-offset Span to every syntax node when
	// true. Disabling it produces a tree that is byte-identical to the
	// span-enabled one on every other field (spec.md §3.1, §8.1).
	WithSpans bool
}

// Option mutates Options; see WithSpans.
type Option func(*Options)

// WithSpans toggles span attachment (spec.md §6.1). New already turns
// spans on by default, which is why most callers never need this option
// at all; it exists for the one configuration switch the core exposes.
func WithSpans(enabled bool) Option {
	return func(o *Options) { o.WithSpans = enabled }
}

// Parser drives the grammar over a single source text. A Parser is not
// safe for concurrent use; independent instances may run in parallel.
type Parser struct {
	str  *stream
	opts Options
}

// New constructs a Parser for source. Spans are attached by default
// (implementations SHOULD default to true per spec.md §6.1).
func New(source string, opts ...Option) *Parser {
	o := Options{WithSpans: true}
	for _, opt := range opts {
		opt(&o)
	}
	return &Parser{str: newStream(source), opts: o}
}

func (p *Parser) span(start, end int) *ast.Span {
	if !p.opts.WithSpans {
		return nil
	}
	return &ast.Span{Start: start, End: end}
}

func (p *Parser) pos() int { return p.str.bytePos() }

// Parse consumes the whole source and returns the resulting Resource.
// This never fails: parse errors are recorded as Annotations on Junk
// entries in the returned tree. The returned slice mirrors those
// annotations in encounter order, as a convenience for callers that want
// a flat error list without walking the tree.
func (p *Parser) Parse() (*ast.Resource, []*ParseError) {
	p.str.skipBlankBlock()

	var errs []*ParseError
	var body []ast.Node
	var pendingComment *ast.Comment

	for p.str.hasNext() {
		entry, err := p.parseEntryOrJunk()
		if err != nil {
			errs = append(errs, err)
		}

		blank := p.str.skipBlankBlock()

		// A standalone level-0 comment immediately followed by another
		// entry with no intervening blank line is held back: it may
		// need to be attached to that entry instead of standing alone
		// (spec.md §4.3.2).
		if comment, ok := entry.(*ast.Comment); ok && blank == "" && p.str.hasNext() {
			pendingComment = comment
			continue
		}

		if pendingComment != nil {
			switch e := entry.(type) {
			case *ast.Message:
				e.Comment = pendingComment
				if e.Span != nil && pendingComment.Span != nil {
					e.Span.Start = pendingComment.Span.Start
				}
			case *ast.Term:
				e.Comment = pendingComment
				if e.Span != nil && pendingComment.Span != nil {
					e.Span.Start = pendingComment.Span.Start
				}
			default:
				body = append(body, pendingComment)
			}
			pendingComment = nil
		}

		body = append(body, entry)
	}

	if pendingComment != nil {
		body = append(body, pendingComment)
	}

	return &ast.Resource{
		Base: ast.Base{NodeKind: ast.KindResource, Span: p.span(0, p.str.length)},
		Body: body,
	}, errs
}

// parseEntryOrJunk attempts one entry; on any failure (a structured
// parse error, or leftover content before the line end) it performs
// spec.md §4.4's recovery protocol and returns a Junk node instead.
func (p *Parser) parseEntryOrJunk() (ast.Node, *ParseError) {
	start := p.pos()

	entry, err := p.parseEntry()
	if err == nil {
		if lineErr := p.str.expectLineEnd(); lineErr == nil {
			return entry, nil
		} else {
			err = lineErr
		}
	}

	p.str.skipToNextEntryStart(start)
	end := p.pos()
	content := p.str.sliceFrom(start, end)

	var annotations []*ast.Annotation
	if err != nil {
		annotations = []*ast.Annotation{annotation(err, start, end, p.opts.WithSpans)}
	}

	return &ast.Junk{
		Base:        ast.Base{NodeKind: ast.KindJunk, Span: p.span(start, end)},
		Content:     content,
		Annotations: annotations,
	}, err
}

// parseEntry dispatches to a comment, term or message by lookahead.
func (p *Parser) parseEntry() (ast.Node, *ParseError) {
	switch p.str.current() {
	case '#':
		return p.parseComment()
	case '-':
		return p.parseTerm()
	default:
		return p.parseMessage()
	}
}

// parseComment parses a run of same-level '#' lines into a Comment,
// GroupComment or ResourceComment depending on how many '#' introduce it
// (spec.md §4.3.3).
func (p *Parser) parseComment() (ast.Node, *ParseError) {
	start := p.pos()
	level := -1
	var content strings.Builder

	for {
		if level == -1 {
			lvl, off := -1, 0
			for p.str.peekNth(off) == '#' && lvl < 2 {
				off++
				lvl++
			}
			level = lvl
		}
		p.str.skip(level + 1)

		if p.str.current() != EOL {
			if err := p.str.expectChar(' '); err != nil {
				return nil, err
			}
			line := p.str.peekUntil(func(r rune) bool { return r == EOL })
			p.str.skip(len(line))
			content.WriteString(string(line))
		}

		continues := true
		for i := 0; i <= level; i++ {
			if p.str.peekNth(1+i) != '#' {
				continues = false
				break
			}
		}
		if !continues {
			break
		}
		next := p.str.peekNth(level + 2)
		if next != ' ' && next != EOL {
			break
		}
		content.WriteByte('\n')
		p.str.skip(1)
	}

	end := p.pos()
	base := ast.Base{Span: p.span(start, end)}
	text := content.String()
	switch level {
	case 0:
		base.NodeKind = ast.KindComment
		return &ast.Comment{Base: base, Content: text}, nil
	case 1:
		base.NodeKind = ast.KindGroupComment
		return &ast.GroupComment{Base: base, Content: text}, nil
	default:
		base.NodeKind = ast.KindResourceComment
		return &ast.ResourceComment{Base: base, Content: text}, nil
	}
}

// parseTerm parses `-id = pattern` plus attributes (spec.md §4.3.5).
func (p *Parser) parseTerm() (*ast.Term, *ParseError) {
	start := p.pos()

	if err := p.str.expectChar('-'); err != nil {
		return nil, err
	}
	id, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	p.str.skipBlankInline()
	if err := p.str.expectChar('='); err != nil {
		return nil, err
	}

	value, err := p.parseOptionalPattern()
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, newParseError(p.pos(), CodeTermWithoutValue, id.Name)
	}

	attributes, err := p.parseAttributes()
	if err != nil {
		return nil, err
	}

	return &ast.Term{
		Base:       ast.Base{NodeKind: ast.KindTerm, Span: p.span(start, p.pos())},
		ID:         id,
		Value:      value,
		Attributes: attributes,
	}, nil
}

// parseMessage parses `id = pattern?` plus attributes; a message with
// neither a value nor any attributes is rejected with E0005 (spec.md
// §4.3.4).
func (p *Parser) parseMessage() (*ast.Message, *ParseError) {
	start := p.pos()

	id, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	p.str.skipBlankInline()
	if err := p.str.expectChar('='); err != nil {
		return nil, err
	}

	value, err := p.parseOptionalPattern()
	if err != nil {
		return nil, err
	}

	attributes, attrErr := p.parseAttributes()
	if attrErr != nil {
		err = attrErr
	}
	if attributes == nil {
		attributes = []*ast.Attribute{}
	}

	if value == nil && len(attributes) == 0 {
		return nil, newParseError(p.pos(), CodeMessageWithoutValue, id.Name)
	}

	return &ast.Message{
		Base:       ast.Base{NodeKind: ast.KindMessage, Span: p.span(start, p.pos())},
		ID:         id,
		Value:      value,
		Attributes: attributes,
	}, err
}

// --- patterns ---

// patternSeg is an intermediate pattern element recorded while scanning,
// before common-indent stripping is applied. A placeable segment is
// already final. A transition segment represents the boundary between
// one pattern line and the next: the newlines consumed (including any
// wholly blank lines in between, which must be preserved literally) plus
// the raw indent of the following content line, which is only known to
// be strippable once every continuation line has been seen and the
// minimum indent is final.
type patternSeg struct {
	placeable    *ast.Placeable
	text         string
	newlines     int
	indent       string
	isTransition bool
	start, end   int
}

// parseOptionalPattern looks ahead to decide whether a pattern follows
// at all (spec.md §4.3.7); it never consumes anything when it returns a
// nil pattern and nil error.
func (p *Parser) parseOptionalPattern() (*ast.Pattern, *ParseError) {
	blank := p.str.peekBlankInline()
	first := p.str.peekNth(len(blank))

	if first == EOF {
		return nil, nil
	}

	if first != EOL {
		p.str.skip(len(blank))
		return p.parsePattern(false)
	}

	_, blockLen := p.str.peekBlankBlock()
	inline, inlineW := p.str.runesWhileAt(p.str.pos+blockLen, func(r rune) bool { return r == ' ' })
	firstAfter, _ := p.str.decodeAt(p.str.pos + blockLen + inlineW)

	if firstAfter != '{' && (len(inline) == 0 || isSpecialContinuationLead(firstAfter)) {
		return nil, nil
	}

	p.str.skip(runeCountBytes(p.str, blockLen))
	return p.parsePattern(true)
}

// parsePattern consumes pattern elements until the value ends, then
// strips the common indent shared by continuation lines and trims the
// whole pattern's trailing whitespace (spaces, '\n', '\r') anchored at
// the very end of the text — not per line, which is what would strip
// internal blank lines (spec.md §9, the "blank-preservation bug" fix).
func (p *Parser) parsePattern(block bool) (*ast.Pattern, *ParseError) {
	start := p.pos()

	commonIndent := -1 // -1 means "no continuation line observed yet"
	var segs []patternSeg

	if block {
		s := p.pos()
		indentRunes := p.str.peekBlankInline()
		p.str.skip(len(indentRunes))
		commonIndent = len(indentRunes)
		segs = append(segs, patternSeg{isTransition: true, indent: string(indentRunes), start: s, end: p.pos()})
	}

patternLoop:
	for p.str.hasNext() {
		switch p.str.current() {
		case '{':
			placeable, err := p.parsePlaceable()
			if err != nil {
				return nil, err
			}
			segs = append(segs, patternSeg{placeable: placeable})
		case '}':
			return nil, newParseError(p.pos(), CodeUnbalancedClosingBrace)
		case EOL:
			s := p.pos()
			blankNL, blankLen := p.str.peekBlankBlock()
			indentRunes, indentW := p.str.runesWhileAt(p.str.pos+blankLen, func(r rune) bool { return r == ' ' })
			first, _ := p.str.decodeAt(p.str.pos + blankLen + indentW)

			continuation := first == '{' || (len(indentRunes) > 0 && !isSpecialContinuationLead(first) && first != EOF)
			if !continuation {
				break patternLoop
			}
			if commonIndent < 0 || len(indentRunes) < commonIndent {
				commonIndent = len(indentRunes)
			}
			p.str.skip(runeCountBytes(p.str, blankLen) + len(indentRunes))
			segs = append(segs, patternSeg{
				isTransition: true,
				newlines:     len(blankNL),
				indent:       string(indentRunes),
				start:        s,
				end:          p.pos(),
			})
		default:
			s := p.pos()
			text := p.parseRawText()
			segs = append(segs, patternSeg{text: text, start: s, end: p.pos()})
		}
	}

	if commonIndent < 0 {
		commonIndent = 0
	}

	return &ast.Pattern{
		Base:     ast.Base{NodeKind: ast.KindPattern, Span: p.span(start, p.pos())},
		Elements: assemblePattern(segs, commonIndent, p.opts.WithSpans),
	}, nil
}

// parseRawText consumes literal pattern text up to the next placeable
// boundary ('{' or '}'), line end, or EOF.
func (p *Parser) parseRawText() string {
	var b strings.Builder
	for {
		c := p.str.current()
		if c == '{' || c == '}' || c == EOL || c == EOF {
			break
		}
		b.WriteRune(p.str.advance())
	}
	return b.String()
}

// assemblePattern replays the recorded segments into final AST nodes,
// stripping exactly commonIndent leading characters from every
// transition segment's indent (the rest of that indent, beyond the
// common prefix, is significant text) and merging consecutive text runs
// around each placeable into a single TextElement.
func assemblePattern(segs []patternSeg, commonIndent int, withSpans bool) []ast.Node {
	var elements []ast.Node
	var buf strings.Builder
	chunkStart, chunkEnd := 0, 0
	chunkOpen := false

	flush := func() {
		if buf.Len() == 0 {
			chunkOpen = false
			return
		}
		te := &ast.TextElement{
			Base:  ast.Base{NodeKind: ast.KindTextElement},
			Value: buf.String(),
		}
		if withSpans {
			te.Span = &ast.Span{Start: chunkStart, End: chunkEnd}
		}
		elements = append(elements, te)
		buf.Reset()
		chunkOpen = false
	}

	extend := func(start, end int) {
		if !chunkOpen {
			chunkStart = start
			chunkOpen = true
		}
		chunkEnd = end
	}

	for _, seg := range segs {
		switch {
		case seg.placeable != nil:
			flush()
			elements = append(elements, seg.placeable)
		case seg.isTransition:
			extend(seg.start, seg.end)
			buf.WriteString(strings.Repeat("\n", seg.newlines))
			if len(seg.indent) > commonIndent {
				buf.WriteString(seg.indent[commonIndent:])
			}
		default:
			extend(seg.start, seg.end)
			buf.WriteString(seg.text)
		}
	}
	flush()

	if len(elements) > 0 {
		if last, ok := elements[len(elements)-1].(*ast.TextElement); ok {
			last.Value = strings.TrimRight(last.Value, " \n\r")
			if last.Value == "" {
				elements = elements[:len(elements)-1]
			}
		}
	}

	return elements
}

// parsePlaceable parses `{` expression `}` (spec.md §4.3.8).
func (p *Parser) parsePlaceable() (*ast.Placeable, *ParseError) {
	start := p.pos()
	if err := p.str.expectChar('{'); err != nil {
		return nil, err
	}
	p.str.skipBlank()
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.str.skipBlank()
	if err := p.str.expectChar('}'); err != nil {
		return nil, err
	}
	return &ast.Placeable{
		Base:       ast.Base{NodeKind: ast.KindPlaceable, Span: p.span(start, p.pos())},
		Expression: expr,
	}, nil
}

// parseExpression parses an InlineExpression, then an optional `->`
// select-expression tail. A selector that is structurally disallowed is
// rejected per spec.md §4.3.9's validity rules: a bare MessageReference
// is E0016, one with an attribute is E0018; a bare TermReference is
// E0017, but a TermReference with an attribute is a valid selector. When
// no `->` follows, a TermReference with an attribute is instead rejected
// as a bare placeable (E0019) — a term's attribute may only be consumed
// as a selector, never stood on its own inside `{ }`.
func (p *Parser) parseExpression() (ast.Node, *ParseError) {
	start := p.pos()
	selector, err := p.parseInlineExpression()
	if err != nil {
		return nil, err
	}

	mark := p.pos()
	p.str.skipBlank()
	if p.str.current() != '-' || p.str.peekNth(1) != '>' {
		p.str.setBytePos(mark)
		if term, ok := selector.(*ast.TermReference); ok && term.Attribute != nil {
			return nil, newParseError(start, CodeTermAttributeAsPlaceable)
		}
		return selector, nil
	}
	p.str.skip(2)

	if verr := validateSelector(selector, p.pos()); verr != nil {
		return nil, verr
	}

	p.str.skipBlankInline()
	if err := p.str.expectLineEnd(); err != nil {
		return nil, err
	}

	variants, sawDefault, err := p.parseVariants()
	if err != nil {
		return nil, err
	}
	if len(variants) == 0 {
		return nil, newParseError(p.pos(), CodeNoVariants)
	}
	if !sawDefault {
		return nil, newParseError(p.pos(), CodeNoDefaultVariant)
	}

	return &ast.SelectExpression{
		Base:     ast.Base{NodeKind: ast.KindSelectExpression, Span: p.span(start, p.pos())},
		Selector: selector,
		Variants: variants,
	}, nil
}

func validateSelector(n ast.Node, pos int) *ParseError {
	switch v := n.(type) {
	case *ast.MessageReference:
		if v.Attribute == nil {
			return newParseError(pos, CodeMessageAsSelector)
		}
		return newParseError(pos, CodeMessageAttributeAsSelector)
	case *ast.TermReference:
		if v.Attribute == nil {
			return newParseError(pos, CodeTermAsSelector)
		}
	}
	return nil
}

// parseVariants parses the indented `[key] pattern` lines following a
// `->`, reporting whether exactly one was marked default with `*`
// (spec.md §4.3.10).
func (p *Parser) parseVariants() ([]*ast.Variant, bool, *ParseError) {
	var variants []*ast.Variant
	sawDefault := false

	for {
		mark := p.pos()
		p.str.skipBlank()
		if !p.str.variantStart() {
			p.str.setBytePos(mark)
			break
		}

		variant, err := p.parseVariant()
		if err != nil {
			return variants, sawDefault, err
		}
		if variant.Default {
			if sawDefault {
				return variants, sawDefault, newParseError(p.pos(), CodeMultipleDefaults)
			}
			sawDefault = true
		}
		variants = append(variants, variant)
	}

	return variants, sawDefault, nil
}

func (p *Parser) parseVariant() (*ast.Variant, *ParseError) {
	start := p.pos()

	isDefault := false
	if p.str.current() == '*' {
		isDefault = true
		p.str.advance()
	}

	if err := p.str.expectChar('['); err != nil {
		return nil, err
	}
	p.str.skipBlank()
	key, err := p.parseVariantKey()
	if err != nil {
		return nil, err
	}
	p.str.skipBlank()
	if err := p.str.expectChar(']'); err != nil {
		return nil, err
	}

	value, err := p.parseOptionalPattern()
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, newParseError(p.pos(), CodeExpectedValue)
	}

	return &ast.Variant{
		Base:    ast.Base{NodeKind: ast.KindVariant, Span: p.span(start, p.pos())},
		Key:     key,
		Value:   value,
		Default: isDefault,
	}, nil
}

func (p *Parser) parseVariantKey() (ast.Node, *ParseError) {
	switch {
	case p.str.numberStart():
		return p.parseNumber()
	case p.str.identifierStart():
		return p.parseIdentifier()
	default:
		return nil, newParseError(p.pos(), CodeExpectedVariantKey)
	}
}

// parseAttributes parses the `.id = pattern` lines that may follow a
// message's or term's value (spec.md §4.3.6). An attribute line is
// recognized only after skipping blank (including the newline and
// indent that separate it from the previous line); anything else rewinds
// the cursor and ends the attribute list.
func (p *Parser) parseAttributes() ([]*ast.Attribute, *ParseError) {
	var attrs []*ast.Attribute
	for {
		mark := p.pos()
		p.str.skipBlank()
		if !p.str.attributeStart() {
			p.str.setBytePos(mark)
			break
		}

		attr, err := p.parseAttribute()
		if err != nil {
			return attrs, err
		}
		attrs = append(attrs, attr)
	}
	return attrs, nil
}

func (p *Parser) parseAttribute() (*ast.Attribute, *ParseError) {
	start := p.pos()
	if err := p.str.expectChar('.'); err != nil {
		return nil, err
	}
	id, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	p.str.skipBlankInline()
	if err := p.str.expectChar('='); err != nil {
		return nil, err
	}
	value, err := p.parseOptionalPattern()
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, newParseError(p.pos(), CodeExpectedValue)
	}
	return &ast.Attribute{
		Base:  ast.Base{NodeKind: ast.KindAttribute, Span: p.span(start, p.pos())},
		ID:    id,
		Value: value,
	}, nil
}

// --- expressions ---

func (p *Parser) parseInlineExpression() (ast.Node, *ParseError) {
	switch c := p.str.current(); {
	case c == '"':
		return p.parseString()
	case p.str.numberStart():
		return p.parseNumber()
	case c == '$':
		start := p.pos()
		p.str.advance()
		id, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		return &ast.VariableReference{
			Base: ast.Base{NodeKind: ast.KindVariableReference, Span: p.span(start, p.pos())},
			ID:   id,
		}, nil
	case c == '-':
		return p.parseTermReference()
	case isIdentifierStart(c):
		return p.parseMessageOrFunctionReference()
	case c == '{':
		return p.parsePlaceable()
	default:
		return nil, newParseError(p.pos(), CodeExpectedExpression)
	}
}

func (p *Parser) parseTermReference() (*ast.TermReference, *ParseError) {
	start := p.pos()
	if err := p.str.expectChar('-'); err != nil {
		return nil, err
	}
	id, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	var attr *ast.Identifier
	if p.str.current() == '.' {
		p.str.advance()
		attr, err = p.parseIdentifier()
		if err != nil {
			return nil, err
		}
	}

	var args *ast.CallArguments
	if p.str.current() == '(' {
		args, err = p.parseCallArguments()
		if err != nil {
			return nil, err
		}
	}

	return &ast.TermReference{
		Base:      ast.Base{NodeKind: ast.KindTermReference, Span: p.span(start, p.pos())},
		ID:        id,
		Attribute: attr,
		Arguments: args,
	}, nil
}

// parseMessageOrFunctionReference disambiguates on whether '(' follows
// the identifier directly: a callee must then be an all-uppercase
// identifier (E0008 otherwise), producing a FunctionReference; without
// '(' it is a MessageReference, optionally with a `.attribute`.
func (p *Parser) parseMessageOrFunctionReference() (ast.Node, *ParseError) {
	start := p.pos()
	id, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	if p.str.current() == '(' {
		if !isUppercaseIdentifier(id.Name) {
			return nil, newParseError(start, CodeInvalidCallee)
		}
		args, err := p.parseCallArguments()
		if err != nil {
			return nil, err
		}
		return &ast.FunctionReference{
			Base:      ast.Base{NodeKind: ast.KindFunctionReference, Span: p.span(start, p.pos())},
			ID:        id,
			Arguments: args,
		}, nil
	}

	var attr *ast.Identifier
	if p.str.current() == '.' {
		p.str.advance()
		attr, err = p.parseIdentifier()
		if err != nil {
			return nil, err
		}
	}

	return &ast.MessageReference{
		Base:      ast.Base{NodeKind: ast.KindMessageReference, Span: p.span(start, p.pos())},
		ID:        id,
		Attribute: attr,
	}, nil
}

func isUppercaseIdentifier(s string) bool {
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			return false
		}
	}
	return true
}

// parseCallArguments parses `( arg, arg, ... )`, enforcing that every
// positional argument precedes all named arguments (E0021) and that
// named argument names are unique (E0022).
func (p *Parser) parseCallArguments() (*ast.CallArguments, *ParseError) {
	start := p.pos()
	if err := p.str.expectChar('('); err != nil {
		return nil, err
	}
	p.str.skipBlank()

	var positional []ast.Node
	var named []*ast.NamedArgument
	seenNames := map[string]bool{}

	for p.str.current() != ')' {
		if p.str.current() == EOF {
			return nil, newParseError(p.pos(), CodeExpectedChar, ")")
		}

		argStart := p.pos()
		argument, err := p.parseCallArgument()
		if err != nil {
			return nil, err
		}

		if namedArg, ok := argument.(*ast.NamedArgument); ok {
			if seenNames[namedArg.Name.Name] {
				return nil, newParseError(argStart, CodeDuplicateNamedArgument)
			}
			seenNames[namedArg.Name.Name] = true
			named = append(named, namedArg)
		} else if len(named) > 0 {
			return nil, newParseError(argStart, CodePositionalAfterNamed)
		} else {
			positional = append(positional, argument)
		}

		p.str.skipBlank()
		if p.str.current() == ',' {
			p.str.advance()
			p.str.skipBlank()
		} else {
			break
		}
	}

	p.str.skipBlank()
	if err := p.str.expectChar(')'); err != nil {
		return nil, err
	}

	return &ast.CallArguments{
		Base:       ast.Base{NodeKind: ast.KindCallArguments, Span: p.span(start, p.pos())},
		Positional: positional,
		Named:      named,
	}, nil
}

// parseCallArgument parses one argument: an inline expression that is
// either the value of a positional argument or the value of a `:` away
// from being recognized as a named one. A name must reduce to a bare
// MessageReference with no attribute (e.g. `$x`, `1`, or `bar.attr` all
// fail with E0009) — validated only after the full expression and any
// trailing blank have been consumed, so the check applies uniformly
// regardless of what shape preceded the ':'.
func (p *Parser) parseCallArgument() (ast.Node, *ParseError) {
	start := p.pos()
	expr, err := p.parseInlineExpression()
	if err != nil {
		return nil, err
	}

	p.str.skipBlank()
	if p.str.current() != ':' {
		return expr, nil
	}

	ref, ok := expr.(*ast.MessageReference)
	if !ok || ref.Attribute != nil {
		return nil, newParseError(start, CodeInvalidArgumentName)
	}

	p.str.advance()
	p.str.skipBlank()
	value, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}

	return &ast.NamedArgument{
		Base:  ast.Base{NodeKind: ast.KindNamedArgument, Span: p.span(start, p.pos())},
		Name:  ref.ID,
		Value: value,
	}, nil
}

// parseLiteral restricts to the literal kinds valid as a named argument's
// value: string or number (spec.md §4.3.11).
func (p *Parser) parseLiteral() (ast.Node, *ParseError) {
	switch {
	case p.str.current() == '"':
		return p.parseString()
	case p.str.numberStart():
		return p.parseNumber()
	default:
		return nil, newParseError(p.pos(), CodeExpectedLiteral)
	}
}

func (p *Parser) parseNumber() (*ast.NumberLiteral, *ParseError) {
	start := p.pos()
	var b strings.Builder

	if p.str.current() == '-' {
		b.WriteRune(p.str.advance())
	}
	d, ok := p.str.takeDigit()
	if !ok {
		return nil, newParseError(p.pos(), CodeExpectedCharClass, "0-9")
	}
	b.WriteRune(d)
	for {
		d, ok := p.str.takeDigit()
		if !ok {
			break
		}
		b.WriteRune(d)
	}

	precision := 0
	if p.str.current() == '.' {
		mark := p.pos()
		p.str.advance()
		var frac strings.Builder
		for {
			d, ok := p.str.takeDigit()
			if !ok {
				break
			}
			frac.WriteRune(d)
		}
		if frac.Len() == 0 {
			p.str.setBytePos(mark)
		} else {
			b.WriteByte('.')
			b.WriteString(frac.String())
			precision = frac.Len()
		}
	}

	return &ast.NumberLiteral{
		Base:      ast.Base{NodeKind: ast.KindNumberLiteral, Span: p.span(start, p.pos())},
		Value:     b.String(),
		Precision: precision,
	}, nil
}

// parseString parses a double-quoted string, resolving `\\`, `\"`,
// `\uXXXX` and `\UXXXXXX` escapes; any other escape is E0025, a
// malformed Unicode escape is E0026, and a lone UTF-16 surrogate decodes
// to U+FFFD rather than an invalid rune (spec.md §4.3.13).
func (p *Parser) parseString() (*ast.StringLiteral, *ParseError) {
	start := p.pos()
	if err := p.str.expectChar('"'); err != nil {
		return nil, err
	}

	var b strings.Builder
	for {
		switch p.str.current() {
		case '"':
			p.str.advance()
			return &ast.StringLiteral{
				Base:  ast.Base{NodeKind: ast.KindStringLiteral, Span: p.span(start, p.pos())},
				Value: b.String(),
			}, nil
		case EOL, EOF:
			return nil, newParseError(p.pos(), CodeUnterminatedString)
		case '\\':
			p.str.advance()
			if err := p.parseEscapeSequence(&b); err != nil {
				return nil, err
			}
		default:
			b.WriteRune(p.str.advance())
		}
	}
}

func (p *Parser) parseEscapeSequence(b *strings.Builder) *ParseError {
	switch c := p.str.current(); c {
	case '\\', '"':
		b.WriteRune(p.str.advance())
		return nil
	case 'u':
		return p.parseUnicodeEscape(b, 4)
	case 'U':
		return p.parseUnicodeEscape(b, 6)
	default:
		arg := "EOF"
		if c != EOF {
			arg = string(c)
		}
		return newParseError(p.pos(), CodeUnknownEscape, arg)
	}
}

func (p *Parser) parseUnicodeEscape(b *strings.Builder, n int) *ParseError {
	marker := p.pos()
	p.str.advance() // consume 'u' or 'U'

	var hex strings.Builder
	for i := 0; i < n; i++ {
		d, ok := p.str.takeHexDigit()
		if !ok {
			return newParseError(marker, CodeInvalidUnicodeEscape, p.str.sliceFrom(marker, p.pos()))
		}
		hex.WriteRune(d)
	}

	code, convErr := strconv.ParseInt(hex.String(), 16, 32)
	if convErr != nil {
		return newParseError(marker, CodeInvalidUnicodeEscape, hex.String())
	}

	r := rune(code)
	if r >= 0xD800 && r <= 0xDFFF {
		r = 0xFFFD
	}
	b.WriteRune(r)
	return nil
}

func (p *Parser) parseIdentifier() (*ast.Identifier, *ParseError) {
	start := p.pos()
	first, err := p.str.takeIDStart()
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteRune(first)
	for {
		c, ok := p.str.takeIDChar()
		if !ok {
			break
		}
		b.WriteRune(c)
	}

	return &ast.Identifier{
		Base: ast.Base{NodeKind: ast.KindIdentifier, Span: p.span(start, p.pos())},
		Name: b.String(),
	}, nil
}
