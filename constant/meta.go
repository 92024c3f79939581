// Package constant defines immutable application-level identifiers and build metadata.
package constant

import _ "embed"

const (
	// Reelctl is the canonical application identifier used for filesystem paths and CLI branding.
	Reelctl = "reelctl"

	// Version is the current application semantic version string.
	Version = "0.3.1"
)

// Build metadata, overridden at link time via -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// MPV is the name of the media engine executable looked up in PATH.
const MPV = "mpv"

// AsciiArtLogo is printed above the root command help.
//
//go:embed ascii.txt
var AsciiArtLogo string
