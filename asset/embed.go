package asset

import "embed"

// FS holds the bundled manifest and sprite art
//
//go:embed manifest.toml sprites
var FS embed.FS
