package engine

import "mazewalk/pkg/world"

// Renderer defines the interface for all renderers
type Renderer interface {
	// Render draws a scene snapshot
	Render(scene *world.SceneData)

	// Resize updates the viewport to the framebuffer size
	Resize(width, height int)

	// AspectRatio returns the current viewport width/height
	AspectRatio() float32

	// Close releases resources
	Close()
}
