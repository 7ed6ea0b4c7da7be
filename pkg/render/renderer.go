package render

import (
	"fmt"
	"log"

	"openglhelper"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-freecam/pkg/resource"
)

// Names the renderer caches its assets under
const (
	SceneShader  = "scene"
	SceneTexture = "diffuse"
	SceneModel   = "scene"
)

// The demo camera starts at the pinned height looking down at the origin,
// so the first frame already shows the model.
var (
	startPosition = mgl32.Vec3{0, PinnedHeight, 6}
	startYaw      = float32(-90)
	startPitch    = float32(-40)
)

// Config holds the window and asset settings for a Renderer
type Config struct {
	Width  int
	Height int
	Title  string
	VSync  bool

	VertexShader   string
	FragmentShader string
	TexturePath    string // optional
	ModelPath      string
}

// Renderer owns the window, the camera and the resource cache, and runs the frame loop
type Renderer struct {
	window    *openglhelper.Window
	camera    *Camera
	resources *resource.Manager
	mouse     *mouseTracker

	clearColor mgl32.Vec4
	wireframe  bool

	// Timing
	lastFrameTime float64
	deltaTime     float32
}

// NewRenderer creates the window, loads the configured assets and installs input callbacks
func NewRenderer(cfg Config) (*Renderer, error) {
	window, err := openglhelper.NewWindow(cfg.Width, cfg.Height, cfg.Title, cfg.VSync)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	renderer := &Renderer{
		window:     window,
		camera:     NewCamera(cfg.Width, cfg.Height, startPosition, mgl32.Vec3{0, 1, 0}, startYaw, startPitch),
		resources:  resource.NewManager(resource.GLLoaders()),
		mouse:      newMouseTracker(),
		clearColor: mgl32.Vec4{0.05, 0.05, 0.1, 1.0},
	}

	if err := renderer.loadAssets(cfg); err != nil {
		renderer.Cleanup()
		return nil, err
	}

	glfwWindow := window.GLFWWindow()
	glfwWindow.SetKeyCallback(renderer.keyCallback)
	glfwWindow.SetCursorPosCallback(renderer.cursorPosCallback)
	glfwWindow.SetScrollCallback(renderer.scrollCallback)
	glfwWindow.SetFramebufferSizeCallback(renderer.framebufferSizeCallback)

	window.SetMouseCaptured(true)

	return renderer, nil
}

func (r *Renderer) loadAssets(cfg Config) error {
	if err := r.resources.LoadShader(SceneShader, cfg.VertexShader, cfg.FragmentShader); err != nil {
		return err
	}
	if cfg.TexturePath != "" {
		if err := r.resources.LoadTexture(SceneTexture, cfg.TexturePath); err != nil {
			return err
		}
	}
	if err := r.resources.LoadModel(SceneModel, cfg.ModelPath); err != nil {
		return err
	}

	log.Printf("Loaded shaders %v, textures %v, models %v",
		r.resources.ShaderNames(), r.resources.TextureNames(), r.resources.ModelNames())
	return nil
}

// Camera returns the renderer's camera
func (r *Renderer) Camera() *Camera {
	return r.camera
}

// Resources returns the renderer's resource cache
func (r *Renderer) Resources() *resource.Manager {
	return r.resources
}

// Run starts the main rendering loop and cleans up when the window closes
func (r *Renderer) Run() {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	r.lastFrameTime = glfw.GetTime()

	for !r.window.ShouldClose() {
		currentTime := glfw.GetTime()
		r.deltaTime = float32(currentTime - r.lastFrameTime)
		r.lastFrameTime = currentTime

		r.processInput()
		r.render()

		r.window.SwapBuffers()
		r.window.PollEvents()
	}

	r.Cleanup()
}

// processInput polls the movement keys once per frame
func (r *Renderer) processInput() {
	bindings := []struct {
		key       glfw.Key
		direction MoveDirection
	}{
		{KeyW, MoveUp},
		{KeyS, MoveDown},
		{KeyA, MoveLeft},
		{KeyD, MoveRight},
	}

	for _, b := range bindings {
		if r.window.GetKeyState(b.key) == Press {
			r.camera.ProcessKeyboard(b.direction, r.deltaTime)
		}
	}
}

func (r *Renderer) render() {
	r.window.Clear(r.clearColor)

	shader, ok := r.resources.Shader(SceneShader)
	if !ok {
		return
	}
	model, ok := r.resources.Model(SceneModel)
	if !ok {
		return
	}

	shader.Use()
	shader.SetMat4("projection", r.camera.ProjectionMatrix(r.window.AspectRatio()))
	shader.SetMat4("view", r.camera.ViewMatrix())
	shader.SetMat4("model", mgl32.Ident4())

	if texture, ok := r.resources.Texture(SceneTexture); ok {
		texture.Bind(0)
		shader.SetInt("diffuse", 0)
		shader.SetInt("useTexture", 1)
	} else {
		shader.SetInt("useTexture", 0)
	}

	model.Draw()
}

// Cleanup frees all resources
func (r *Renderer) Cleanup() {
	r.resources.Close()
	r.window.Close()
}

// Callback functions
func (r *Renderer) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != Press {
		return
	}

	switch key {
	case KeyEscape:
		r.window.SetShouldClose(true)
	case KeyC:
		r.window.ToggleMouseCaptured()
		r.mouse.reset()
	case KeyX:
		r.wireframe = !r.wireframe
		if r.wireframe {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		} else {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
		}
	}
}

func (r *Renderer) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	if !r.window.IsMouseCaptured() {
		return
	}
	if xoffset, yoffset, ok := r.mouse.offset(xpos, ypos); ok {
		r.camera.ProcessMouseMove(xoffset, yoffset)
	}
}

func (r *Renderer) scrollCallback(_ *glfw.Window, _, yoffset float64) {
	r.camera.ProcessMouseScroll(yoffset)
}

func (r *Renderer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	r.window.OnResize(width, height)
}
