package engine

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"mazewalk/pkg/world"
)

// watchedKeys are polled once per frame
var watchedKeys = []glfw.Key{
	glfw.KeyW, glfw.KeyS, glfw.KeyA, glfw.KeyD,
	glfw.KeySpace, glfw.KeyEscape, glfw.KeyM,
}

// InputHandler samples keyboard state and accumulates cursor and scroll
// callbacks between frames
type InputHandler struct {
	window       *glfw.Window
	currentKeys  map[glfw.Key]bool
	previousKeys map[glfw.Key]bool

	firstMouse      bool
	lastX, lastY    float64
	mouseDelta      [2]float64
	mouseWheelDelta float64
}

// NewInputHandler installs cursor and scroll callbacks on the window
func NewInputHandler(window *glfw.Window) *InputHandler {
	handler := &InputHandler{
		window:       window,
		currentKeys:  make(map[glfw.Key]bool, len(watchedKeys)),
		previousKeys: make(map[glfw.Key]bool, len(watchedKeys)),
		firstMouse:   true,
	}

	window.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		handler.onCursor(xpos, ypos)
	})
	window.SetScrollCallback(func(_ *glfw.Window, _, yoffset float64) {
		handler.mouseWheelDelta += yoffset
	})

	return handler
}

// onCursor turns absolute cursor positions into deltas. The first event only
// seeds the last position so the view does not jump when the cursor is grabbed.
func (ih *InputHandler) onCursor(xpos, ypos float64) {
	if ih.firstMouse {
		ih.lastX, ih.lastY = xpos, ypos
		ih.firstMouse = false
	}

	ih.mouseDelta[0] += xpos - ih.lastX
	ih.mouseDelta[1] += ih.lastY - ypos // screen Y grows downwards
	ih.lastX, ih.lastY = xpos, ypos
}

// Update polls the watched keys
func (ih *InputHandler) Update() {
	for _, key := range watchedKeys {
		ih.previousKeys[key] = ih.currentKeys[key]
		ih.currentKeys[key] = ih.window.GetKey(key) == glfw.Press
	}
}

// IsKeyDown reports whether the key is held
func (ih *InputHandler) IsKeyDown(key glfw.Key) bool {
	return ih.currentKeys[key]
}

// IsKeyPressed reports whether the key went down this frame
func (ih *InputHandler) IsKeyPressed(key glfw.Key) bool {
	return ih.currentKeys[key] && !ih.previousKeys[key]
}

// Frame builds the simulation input and clears the accumulated deltas
func (ih *InputHandler) Frame() world.FrameInput {
	in := world.FrameInput{
		Forward:  ih.IsKeyDown(glfw.KeyW),
		Backward: ih.IsKeyDown(glfw.KeyS),
		Left:     ih.IsKeyDown(glfw.KeyA),
		Right:    ih.IsKeyDown(glfw.KeyD),
		Jump:     ih.IsKeyDown(glfw.KeySpace),
		MouseDX:  float32(ih.mouseDelta[0]),
		MouseDY:  float32(ih.mouseDelta[1]),
		ScrollY:  float32(ih.mouseWheelDelta),
	}

	ih.mouseDelta = [2]float64{}
	ih.mouseWheelDelta = 0

	return in
}
