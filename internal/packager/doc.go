// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package packager implements the Experience Packager (§4.10): it wraps
// one or more emitted scenes in the fixed experience-envelope JSON shape
// the curated editor's web builder ingests, base64-encoding each scene as
// an attachment payload.
package packager
