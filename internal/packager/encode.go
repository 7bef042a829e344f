// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package packager

import "encoding/base64"

// encodeSceneBytes renders scene bytes as a standard base64 string for
// embedding in the experience JSON's attachmentData.original field
// (§4.10). Standard (not URL-safe) alphabet is used because the value
// lives inside a JSON string, not a URL.
func encodeSceneBytes(scene []byte) string {
	return base64.StdEncoding.EncodeToString(scene)
}
