// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

// package build contains build information for the tesseract module.
package build

import (
	_ "embed"
	"strings"
)

//go:embed version.txt
var version string

// Version of this build, trimmed of white space.
func Version() string { return strings.TrimSpace(version) }
