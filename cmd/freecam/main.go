package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/leterax/go-freecam/pkg/render"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	cfg := render.Config{}
	flag.IntVar(&cfg.Width, "width", 800, "Window width")
	flag.IntVar(&cfg.Height, "height", 600, "Window height")
	flag.StringVar(&cfg.Title, "title", "Go-Freecam", "Window title")
	flag.BoolVar(&cfg.VSync, "vsync", true, "Enable vsync")
	flag.StringVar(&cfg.VertexShader, "vert", "assets/shaders/scene.vert", "Vertex shader path")
	flag.StringVar(&cfg.FragmentShader, "frag", "assets/shaders/scene.frag", "Fragment shader path")
	flag.StringVar(&cfg.TexturePath, "texture", "", "Diffuse texture path (optional)")
	flag.StringVar(&cfg.ModelPath, "model", "assets/models/cube.obj", "OBJ model path")
	flag.Parse()

	log.Printf("Starting Go-Freecam (%dx%d)", cfg.Width, cfg.Height)

	renderer, err := render.NewRenderer(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}

	log.Println("WASD to move, mouse to look, scroll to zoom, C to release the cursor, X for wireframe, Esc to quit")
	renderer.Run()
}
