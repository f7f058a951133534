package parameter

import "time"

// Host loop timing
const (
	DefaultFPS = 60
	// MaxFrameDelta caps dt handed to the simulation after a stall
	MaxFrameDelta = 100 * time.Millisecond
)

// Sprite names resolved through the asset manifest
const (
	SpritePlayer      = "player"
	SpritePipeCap     = "pipe_cap"
	SpritePipeSegment = "pipe_segment"
)

// ManifestPath is the manifest location inside the asset filesystem
const ManifestPath = "manifest.toml"
