// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package script

import "strings"

// Directive is one parsed line of a ".con" script: an object/category, the
// verb applied to it, and the verb's raw string arguments. Vector and
// rotation arguments remain slash-separated strings here — the consumer
// (internal/sourcemap) parses them, since only it knows which verbs expect
// a vector versus a bare scalar or name.
type Directive struct {
	Object string // e.g. "Object", "ObjectTemplate", or a bare category
	Verb   string // e.g. "create", "absolutePosition", "rotation"
	Args   []string
	Line   int
}

// fieldScanner splits a trimmed line into whitespace-separated tokens one
// rune at a time, mirroring the teacher's hand-rolled rune scanner rather
// than reaching for strings.Fields so the contract (exactly whitespace is a
// separator, nothing else) is explicit and easy to extend.
type fieldScanner struct {
	runes []rune
	pos   int
}

func newFieldScanner(line string) *fieldScanner {
	return &fieldScanner{runes: []rune(line)}
}

func (s *fieldScanner) isEOF() bool {
	return s.pos >= len(s.runes)
}

func (s *fieldScanner) isSpace() bool {
	return !s.isEOF() && (s.runes[s.pos] == ' ' || s.runes[s.pos] == '\t')
}

func (s *fieldScanner) skipSpaces() {
	for s.isSpace() {
		s.pos++
	}
}

// next returns the next whitespace-delimited field, or "" and false at EOF.
func (s *fieldScanner) next() (string, bool) {
	s.skipSpaces()
	if s.isEOF() {
		return "", false
	}
	start := s.pos
	for !s.isEOF() && !s.isSpace() {
		s.pos++
	}
	return string(s.runes[start:s.pos]), true
}

// fields splits a line into whitespace-separated tokens.
func fields(line string) []string {
	sc := newFieldScanner(line)
	var out []string
	for {
		tok, ok := sc.next()
		if !ok {
			break
		}
		out = append(out, tok)
	}
	return out
}

// splitVerb splits the first token of a directive line ("Object.verb") into
// its object and verb halves.
func splitVerb(token string) (object, verb string, ok bool) {
	object, verb, ok = strings.Cut(token, ".")
	if !ok || object == "" || verb == "" {
		return "", "", false
	}
	return object, verb, true
}
