// Package resource caches loaded graphics assets (shaders, textures, models) by name.
//
// A Manager owns every handle it stores. Loading a second asset under an
// existing name deletes the previous handle before replacing it, and Close
// deletes everything that is still cached. A Manager is meant to be driven
// from the render thread only and does no locking.
package resource

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrNoLoader is returned when a Manager has no loader for the requested kind
var ErrNoLoader = errors.New("no loader configured")

// Handle is a loaded asset that holds resources which must be released
type Handle interface {
	Delete()
}

// Shader is a linked shader program
type Shader interface {
	Handle
	Use()
	SetInt(name string, value int32)
	SetMat4(name string, mat mgl32.Mat4)
}

// Texture is a 2D texture uploaded to the GPU
type Texture interface {
	Handle
	Bind(unit uint32)
}

// Model is a drawable collection of meshes
type Model interface {
	Handle
	Draw()
}

// Loaders constructs asset handles from files. Each field may be nil, in
// which case loading that kind fails with ErrNoLoader.
type Loaders struct {
	Shader  func(vertexPath, fragmentPath string) (Shader, error)
	Texture func(path string) (Texture, error)
	Model   func(path string) (Model, error)
}

// Manager caches shader, texture and model handles under unique names
type Manager struct {
	loaders  Loaders
	shaders  *cache[Shader]
	textures *cache[Texture]
	models   *cache[Model]
}

// NewManager creates an empty manager that builds handles with the given loaders
func NewManager(loaders Loaders) *Manager {
	return &Manager{
		loaders:  loaders,
		shaders:  newCache[Shader]("shader"),
		textures: newCache[Texture]("texture"),
		models:   newCache[Model]("model"),
	}
}

// LoadShader compiles a shader program and caches it under name
func (m *Manager) LoadShader(name, vertexPath, fragmentPath string) error {
	if m.loaders.Shader == nil {
		return fmt.Errorf("shader %q: %w", name, ErrNoLoader)
	}

	shader, err := m.loaders.Shader(vertexPath, fragmentPath)
	if err != nil {
		return fmt.Errorf("failed to load shader %q: %w", name, err)
	}

	m.shaders.put(name, shader)
	return nil
}

// Shader returns the shader cached under name
func (m *Manager) Shader(name string) (Shader, bool) {
	return m.shaders.get(name)
}

// LoadTexture decodes an image file and caches the texture under name
func (m *Manager) LoadTexture(name, path string) error {
	if m.loaders.Texture == nil {
		return fmt.Errorf("texture %q: %w", name, ErrNoLoader)
	}

	texture, err := m.loaders.Texture(path)
	if err != nil {
		return fmt.Errorf("failed to load texture %q: %w", name, err)
	}

	m.textures.put(name, texture)
	return nil
}

// Texture returns the texture cached under name
func (m *Manager) Texture(name string) (Texture, bool) {
	return m.textures.get(name)
}

// LoadModel parses a model file and caches it under name
func (m *Manager) LoadModel(name, path string) error {
	if m.loaders.Model == nil {
		return fmt.Errorf("model %q: %w", name, ErrNoLoader)
	}

	model, err := m.loaders.Model(path)
	if err != nil {
		return fmt.Errorf("failed to load model %q: %w", name, err)
	}

	m.models.put(name, model)
	return nil
}

// Model returns the model cached under name
func (m *Manager) Model(name string) (Model, bool) {
	return m.models.get(name)
}

// ShaderNames returns the cached shader names in sorted order
func (m *Manager) ShaderNames() []string { return m.shaders.names() }

// TextureNames returns the cached texture names in sorted order
func (m *Manager) TextureNames() []string { return m.textures.names() }

// ModelNames returns the cached model names in sorted order
func (m *Manager) ModelNames() []string { return m.models.names() }

// Close deletes every cached handle and leaves the manager empty
func (m *Manager) Close() {
	m.shaders.release()
	m.textures.release()
	m.models.release()
}

// cache is a name-keyed owning container of handles
type cache[T Handle] struct {
	kind    string
	entries map[string]T
}

func newCache[T Handle](kind string) *cache[T] {
	return &cache[T]{
		kind:    kind,
		entries: make(map[string]T),
	}
}

// put stores h under name, deleting any handle it displaces.
// A loader that hands back the handle already stored leaves it alive.
func (c *cache[T]) put(name string, h T) {
	if old, ok := c.entries[name]; ok && any(old) != any(h) {
		log.Printf("resource: replacing %s %q", c.kind, name)
		old.Delete()
	}
	c.entries[name] = h
}

func (c *cache[T]) get(name string) (T, bool) {
	h, ok := c.entries[name]
	return h, ok
}

func (c *cache[T]) names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *cache[T]) release() {
	for name, h := range c.entries {
		h.Delete()
		delete(c.entries, name)
	}
}
