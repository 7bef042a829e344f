// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package script

import (
	"bufio"
	"bytes"

	"github.com/portalconv/portalconv/cerrs"
	"github.com/portalconv/portalconv/internal/norm"
)

// Tokenize reads a ".con" file's raw bytes and returns one Directive per
// non-blank, non-comment line. It never returns a partial result: the first
// malformed line aborts with a *ParseError naming file and line number.
func Tokenize(file string, data []byte) ([]Directive, error) {
	var directives []Directive

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := norm.StripCR(scanner.Bytes())
		if norm.IsBlankLine(raw) || norm.IsCommentLine(raw) {
			continue
		}

		normalized := norm.NormalizeSpaces(raw)
		toks := fields(string(normalized))
		if len(toks) == 0 {
			continue
		}

		object, verb, ok := splitVerb(toks[0])
		if !ok {
			return nil, &ParseError{File: file, Line: lineNo, Reason: cerrs.ErrMalformedDirective}
		}

		directives = append(directives, Directive{
			Object: object,
			Verb:   verb,
			Args:   toks[1:],
			Line:   lineNo,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{File: file, Line: lineNo, Reason: err}
	}

	return directives, nil
}

// ParseVector parses a slash-separated "x/y/z" triple, including the
// scientific-notation form the Refractor engine emits for near-zero values
// (e.g. "1.52588e-005").
func ParseVector(arg string) (x, y, z float64, err error) {
	parts := bytes.Split([]byte(arg), []byte("/"))
	if len(parts) != 3 {
		return 0, 0, 0, cerrs.ErrMalformedVector
	}
	vals := make([]float64, 3)
	for i, p := range parts {
		v, perr := parseFloat(string(p))
		if perr != nil {
			return 0, 0, 0, cerrs.ErrMalformedVector
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], nil
}
