package openglhelper

import (
	"fmt"
	"os"
)

// Model is a set of meshes loaded from one file
type Model struct {
	Name   string
	meshes []*Mesh
}

// NewModel uploads every parsed mesh
func NewModel(name string, data []MeshData) *Model {
	model := &Model{Name: name}
	for _, md := range data {
		model.meshes = append(model.meshes, NewMesh(md.Vertices, md.Indices))
	}
	return model
}

// LoadModelFromFile parses a Wavefront OBJ file and uploads its meshes
func LoadModelFromFile(path string) (*Model, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model file: %w", err)
	}
	defer file.Close()

	data, err := ParseOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return NewModel(path, data), nil
}

// Draw renders every mesh with the program currently in use
func (m *Model) Draw() {
	for _, mesh := range m.meshes {
		mesh.Draw()
	}
}

// Delete releases every mesh
func (m *Model) Delete() {
	for _, mesh := range m.meshes {
		mesh.Delete()
	}
	m.meshes = nil
}
