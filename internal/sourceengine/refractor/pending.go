// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package refractor

import (
	"strconv"

	"github.com/portalconv/portalconv/cerrs"
	"github.com/portalconv/portalconv/internal/coords"
	"github.com/portalconv/portalconv/internal/script"
)

// pendingObject accumulates the directives that apply to one Object.create
// block until the next Object.create (or end of file) flushes it (§4.2).
type pendingObject struct {
	Template       string
	Position       coords.Vector3
	Rotation       coords.Rotation
	Team           int
	Name           string
	CanBeCaptured  *bool
	Extra          map[string]string
}

// walkObjects replays directives against the Object.* accumulator pattern,
// calling onObject once per completed Object.create block. Directives that
// aren't one of the verbs this parser understands are ignored, matching
// the Refractor format's tolerance for editor-only metadata directives. A
// malformed vector, rotation, or team number aborts the walk with a
// *script.ParseError naming file and line — this parser never drops a
// directive silently (§4.1, §8).
func walkObjects(file string, directives []script.Directive, onObject func(pendingObject)) error {
	var pending *pendingObject

	flush := func() {
		if pending != nil {
			onObject(*pending)
			pending = nil
		}
	}

	for _, d := range directives {
		if d.Object != "Object" {
			continue
		}
		switch d.Verb {
		case "create":
			flush()
			pending = &pendingObject{Extra: map[string]string{}}
			if len(d.Args) > 0 {
				pending.Template = d.Args[0]
			}
		case "absolutePosition":
			if pending == nil || len(d.Args) == 0 {
				continue
			}
			x, y, z, err := script.ParseVector(d.Args[0])
			if err != nil {
				return &script.ParseError{File: file, Line: d.Line, Reason: err}
			}
			pending.Position = coords.Vector3{X: x, Y: y, Z: z}
		case "rotation":
			if pending == nil || len(d.Args) == 0 {
				continue
			}
			p, y, r, err := script.ParseVector(d.Args[0])
			if err != nil {
				return &script.ParseError{File: file, Line: d.Line, Reason: err}
			}
			pending.Rotation = coords.Rotation{Pitch: p, Yaw: y, Roll: r}
		case "setTeam":
			if pending == nil || len(d.Args) == 0 {
				continue
			}
			n, err := strconv.Atoi(d.Args[0])
			if err != nil {
				return &script.ParseError{File: file, Line: d.Line, Reason: cerrs.ErrMalformedNumber}
			}
			pending.Team = n
		case "setName":
			if pending == nil || len(d.Args) == 0 {
				continue
			}
			pending.Name = d.Args[0]
			pending.Extra["name"] = d.Args[0]
		case "setCanBeCaptured":
			if pending == nil || len(d.Args) == 0 {
				continue
			}
			v := d.Args[0] != "0"
			pending.CanBeCaptured = &v
		default:
			if pending != nil && len(d.Args) > 0 {
				pending.Extra[d.Verb] = d.Args[0]
			}
		}
	}
	flush()
	return nil
}
