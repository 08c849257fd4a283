package qrcraft

import (
	"github.com/dmitrymomot/qrcraft/core/renderer"
)

// Config aliases the renderer configuration for single-import callers.
type Config = renderer.Config

// Result aliases the renderer output for single-import callers.
type Result = renderer.Result

// DefaultConfig returns the baseline render configuration: 1024 px, square
// style, black on white, medium error correction, no logo, no border.
func DefaultConfig() Config {
	return renderer.DefaultConfig()
}

// Render executes one synchronous render pass. See renderer.Render.
func Render(cfg Config) (*Result, error) {
	return renderer.Render(cfg)
}
