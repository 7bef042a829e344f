// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package script

import "fmt"

// ParseError reports a malformed directive line. The tokenizer never
// partially parses a file — the first ParseError aborts that file's
// conversion (§4.1, §7).
type ParseError struct {
	File   string
	Line   int
	Reason error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Reason
}
