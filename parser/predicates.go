package parser

import "strings"

// isIdentifierStart reports whether c can start an identifier: ASCII
// letters only.
func isIdentifierStart(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isIdentifierChar reports whether c can continue an identifier:
// letters, digits, '_' and '-'.
func isIdentifierChar(c rune) bool {
	return isIdentifierStart(c) || (c >= '0' && c <= '9') || c == '_' || c == '-'
}

// isEntryStart reports whether c may begin a new top-level entry: a
// comment, a term, or a message.
func isEntryStart(c rune) bool {
	return isIdentifierStart(c) || c == '#' || c == '-'
}

// isSpecialContinuationLead reports whether c is one of the characters
// spec.md §4.1 reserves to signal a structural boundary rather than
// pattern-continuation text: '}', '.', '[', '*'.
func isSpecialContinuationLead(c rune) bool {
	switch c {
	case '}', '.', '[', '*':
		return true
	}
	return false
}

func isAsciiDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// --- whitespace primitives (spec.md §4.1) ---

// peekBlankInline scans a run of ASCII spaces from the primary cursor
// without moving it, returning the consumed slice.
func (s *stream) peekBlankInline() []rune {
	runes, _ := s.runesWhileAt(s.pos, func(r rune) bool { return r == ' ' })
	return runes
}

// skipBlankInline commits peekBlankInline.
func (s *stream) skipBlankInline() []rune {
	blank := s.peekBlankInline()
	s.skip(len(blank))
	return blank
}

// peekBlankBlock greedily scans `blank_inline + EOL` lines from the
// primary cursor, returning one '\n' per consumed blank line, plus how
// many bytes were scanned. A trailing blank-inline run immediately
// before EOF is also consumed (but contributes no '\n'), per spec.md
// §4.1.
func (s *stream) peekBlankBlock() (string, int) {
	var nl int
	off := s.pos
	for {
		_, inlineW := s.runesWhileAt(off, func(r rune) bool { return r == ' ' })
		next, nextW := s.decodeAt(off + inlineW)
		if next == EOL {
			nl++
			off += inlineW + nextW
			continue
		}
		if next == EOF {
			off += inlineW
		}
		break
	}
	return strings.Repeat("\n", nl), off - s.pos
}

// skipBlankBlock commits peekBlankBlock.
func (s *stream) skipBlankBlock() string {
	blank, n := s.peekBlankBlock()
	s.skip(runeCountBytes(s, n))
	return blank
}

// runeCountBytes counts how many logical characters make up the first n
// bytes starting at the stream's current primary cursor.
func runeCountBytes(s *stream, n int) int {
	count := 0
	off := s.pos
	end := s.pos + n
	for off < end {
		_, w := s.decodeAt(off)
		if w == 0 {
			break
		}
		off += w
		count++
	}
	return count
}

// peekBlank scans any mix of spaces and EOLs from the primary cursor.
func (s *stream) peekBlank() []rune {
	runes, _ := s.runesWhileAt(s.pos, func(r rune) bool { return r == ' ' || r == EOL })
	return runes
}

// skipBlank commits peekBlank.
func (s *stream) skipBlank() []rune {
	blank := s.peekBlank()
	s.skip(len(blank))
	return blank
}

// --- predicates (all via lookahead; none move the primary cursor) ---

// identifierStart reports whether the current character can start an
// identifier.
func (s *stream) identifierStart() bool {
	return isIdentifierStart(s.current())
}

// numberStart reports whether the current position begins a number
// literal: an optional '-' then a digit.
func (s *stream) numberStart() bool {
	c := s.current()
	if c == '-' {
		c = s.peekNth(1)
	}
	return isAsciiDigit(c)
}

// variantStart reports whether the current position begins a variant:
// an optional '*' then '['.
func (s *stream) variantStart() bool {
	if s.current() == '*' {
		return s.peekNth(1) == '['
	}
	return s.current() == '['
}

// attributeStart reports whether the current position begins an
// attribute: a '.'.
func (s *stream) attributeStart() bool {
	return s.current() == '.'
}

// valueStart reports whether a pattern may start inline here: the next
// character is neither EOL nor EOF.
func (s *stream) valueStart() bool {
	c := s.current()
	return c != EOL && c != EOF
}

// valueContinuation reports whether, starting at an EOL, the following
// line continues a multiline pattern value: either it starts with '{'
// (always a continuation), or it is indented (blanks were actually
// consumed) and begins with a character that is not one of the
// structural-boundary leads.
func (s *stream) valueContinuation() bool {
	if s.current() != EOL {
		return false
	}
	inline, inlineW := s.runesWhileAt(s.pos+1, func(r rune) bool { return r == ' ' })
	first, _ := s.decodeAt(s.pos + 1 + inlineW)
	if first == '{' {
		return true
	}
	if len(inline) == 0 {
		return false
	}
	if first == EOF || first == EOL || isSpecialContinuationLead(first) {
		return false
	}
	return true
}

// nextLineComment reports whether the line right after the current
// position is a comment of exactly the given level: `level+1` '#'
// characters followed by a space or EOL.
func (s *stream) nextLineComment(level int) bool {
	off := s.pos
	if s.current() == EOL {
		off++
	}
	hashes, hw := s.runesWhileAt(off, func(r rune) bool { return r == '#' })
	if len(hashes) != level+1 {
		return false
	}
	next, _ := s.decodeAt(off + hw)
	return next == ' ' || next == EOL || next == EOF
}

// --- consumers that fail with a structured error ---

// expectChar consumes c if it is current, otherwise fails with E0003.
func (s *stream) expectChar(c rune) *ParseError {
	if s.current() != c {
		return newParseError(s.bytePos(), CodeExpectedChar, string(c))
	}
	s.advance()
	return nil
}

// expectLineEnd accepts EOL or EOF; otherwise fails with E0003 (arg: the
// symbol U+2424, "␤").
func (s *stream) expectLineEnd() *ParseError {
	c := s.current()
	if c == EOF {
		return nil
	}
	if c == EOL {
		s.advance()
		return nil
	}
	return newParseError(s.bytePos(), CodeExpectedChar, "␤")
}

// takeIDStart consumes an ASCII letter, or fails with E0004.
func (s *stream) takeIDStart() (rune, *ParseError) {
	c := s.current()
	if !isIdentifierStart(c) {
		return 0, newParseError(s.bytePos(), CodeExpectedCharClass, "a-zA-Z")
	}
	return s.advance(), nil
}

// takeIDChar consumes one identifier-continuation character, if present.
func (s *stream) takeIDChar() (rune, bool) {
	c := s.current()
	if !isIdentifierChar(c) {
		return 0, false
	}
	return s.advance(), true
}

// takeDigit consumes one ASCII digit, if present.
func (s *stream) takeDigit() (rune, bool) {
	c := s.current()
	if !isAsciiDigit(c) {
		return 0, false
	}
	return s.advance(), true
}

// takeHexDigit consumes one hex digit, if present.
func (s *stream) takeHexDigit() (rune, bool) {
	c := s.current()
	if !isHexDigit(c) {
		return 0, false
	}
	return s.advance(), true
}

// skipToNextEntryStart implements spec.md §4.1's recovery scan. Given the
// byte offset where the failing entry began, it first rewinds the
// primary cursor to the start of the line the error was detected on (the
// most recent '\n' at or after junkStart), then scans forward line by
// line for the first EOL immediately followed by a character that may
// begin a new entry (or EOF), and consumes that EOL. The cursor ends up
// at the start of the next entry, the same place a successful parse's
// trailing expectLineEnd would have left it — so the Junk content slice
// computed from junkStart to here includes the line's own newline.
func (s *stream) skipToNextEntryStart(junkStart int) {
	errPos := s.pos
	lastNL := -1
	for i := errPos - 1; i >= junkStart; i-- {
		if s.src[i] == '\n' {
			lastNL = i
			break
		}
	}
	if lastNL > junkStart {
		s.setBytePos(lastNL)
	}

	for {
		c := s.current()
		if c == EOF {
			return
		}
		if c == EOL {
			next := s.peekNth(1)
			if next == EOF || isEntryStart(next) {
				s.advance()
				return
			}
			s.advance()
			continue
		}
		s.advance()
	}
}
