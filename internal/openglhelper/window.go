package openglhelper

import (
	"fmt"
	"log"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// contextHints request a resizable OpenGL 4.6 core, forward-compatible context
var contextHints = []struct {
	hint  glfw.Hint
	value int
}{
	{glfw.ContextVersionMajor, 4},
	{glfw.ContextVersionMinor, 6},
	{glfw.OpenGLProfile, glfw.OpenGLCoreProfile},
	{glfw.OpenGLForwardCompatible, glfw.True},
	{glfw.Resizable, glfw.True},
}

// Window owns the GLFW window, its GL context and the cursor mode
type Window struct {
	handle *glfw.Window

	// Framebuffer size, tracked through OnResize
	fbWidth, fbHeight int

	captured bool
}

// NewWindow opens a window and makes its context current on the calling thread
func NewWindow(width, height int, title string, vsync bool) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}
	for _, h := range contextHints {
		glfw.WindowHint(h.hint, h.value)
	}

	handle, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	handle.MakeContextCurrent()

	interval := 0
	if vsync {
		interval = 1
	}
	glfw.SwapInterval(interval)

	if err := gl.Init(); err != nil {
		handle.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}
	log.Printf("OpenGL %s on %s", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))

	w := &Window{handle: handle}
	// HiDPI displays report a framebuffer larger than the window
	w.fbWidth, w.fbHeight = handle.GetFramebufferSize()
	return w, nil
}

// GLFWWindow exposes the handle for installing input callbacks
func (w *Window) GLFWWindow() *glfw.Window { return w.handle }

func (w *Window) ShouldClose() bool { return w.handle.ShouldClose() }
func (w *Window) SetShouldClose(value bool) { w.handle.SetShouldClose(value) }
func (w *Window) GetKeyState(key glfw.Key) glfw.Action { return w.handle.GetKey(key) }

// Clear fills the color buffer with color and resets depth
func (w *Window) Clear(color mgl32.Vec4) {
	gl.ClearColor(color[0], color[1], color[2], color[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SwapBuffers presents the frame
func (w *Window) SwapBuffers() { w.handle.SwapBuffers() }

// PollEvents dispatches queued input to the installed callbacks
func (w *Window) PollEvents() { glfw.PollEvents() }

// AspectRatio is framebuffer width over height; a minimized window reports 1
func (w *Window) AspectRatio() float32 {
	if w.fbHeight == 0 {
		return 1
	}
	return float32(w.fbWidth) / float32(w.fbHeight)
}

// OnResize records the new framebuffer size and resizes the viewport to match
func (w *Window) OnResize(width, height int) {
	w.fbWidth, w.fbHeight = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// SetMouseCaptured hides and locks the cursor when captured is true
func (w *Window) SetMouseCaptured(captured bool) {
	mode := glfw.CursorNormal
	if captured {
		mode = glfw.CursorDisabled
	}
	w.handle.SetInputMode(glfw.CursorMode, mode)
	w.captured = captured
}

func (w *Window) ToggleMouseCaptured() { w.SetMouseCaptured(!w.captured) }
func (w *Window) IsMouseCaptured() bool { return w.captured }

// Close destroys the window and shuts GLFW down
func (w *Window) Close() {
	w.handle.Destroy()
	glfw.Terminate()
}
