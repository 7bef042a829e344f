// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package script tokenizes a Refractor-engine ".con" script file into a
// stream of Directive records. It owns the lexical contract of §4.1: rem
// comments, blank lines, and whitespace-separated tokens whose first token
// is always "Object.verb" or "category.verb".
package script
