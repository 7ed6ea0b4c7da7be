package openglhelper

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/udhos/gwob"
)

// FloatsPerVertex is the interleaved vertex layout: position (3), normal (3), texture coordinates (2)
const FloatsPerVertex = 8

// ErrNoFaces is returned when an OBJ stream holds no usable triangles
var ErrNoFaces = errors.New("obj has no faces")

// MeshData holds interleaved vertex data and triangle indices for one mesh
type MeshData struct {
	Name     string
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of interleaved vertices
func (m *MeshData) VertexCount() int {
	return len(m.Vertices) / FloatsPerVertex
}

// ParseOBJ reads a Wavefront OBJ stream and splits it into one mesh per
// non-empty group. Each mesh is re-indexed from zero and laid out as
// FloatsPerVertex floats; missing normals or texture coordinates are zero.
func ParseOBJ(r io.Reader) ([]MeshData, error) {
	options := &gwob.ObjParserOptions{
		Logger: func(msg string) { log.Printf("obj: %s", msg) },
	}

	obj, err := gwob.NewObjFromReader("obj", bufio.NewReader(r), options)
	if err != nil {
		return nil, fmt.Errorf("failed to parse obj: %w", err)
	}

	// Strides and offsets are reported in bytes
	stride := obj.StrideSize / 4
	if stride == 0 {
		return nil, ErrNoFaces
	}
	count := len(obj.Coord) / stride

	var meshes []MeshData
	for _, group := range obj.Groups {
		if group.IndexCount == 0 {
			continue
		}
		end := group.IndexBegin + group.IndexCount
		if group.IndexBegin < 0 || end > len(obj.Indices) {
			return nil, fmt.Errorf("group %q: index range [%d, %d) exceeds %d indices",
				group.Name, group.IndexBegin, end, len(obj.Indices))
		}

		mesh := MeshData{Name: group.Name}
		local := make(map[int]uint32)
		for _, idx := range obj.Indices[group.IndexBegin:end] {
			if idx < 0 || idx >= count {
				return nil, fmt.Errorf("group %q: vertex index %d out of range (have %d)", group.Name, idx, count)
			}
			if li, ok := local[idx]; ok {
				mesh.Indices = append(mesh.Indices, li)
				continue
			}

			li := uint32(mesh.VertexCount())
			mesh.Vertices = appendVertex(mesh.Vertices, obj, idx*stride)
			local[idx] = li
			mesh.Indices = append(mesh.Indices, li)
		}
		meshes = append(meshes, mesh)
	}

	if len(meshes) == 0 {
		return nil, ErrNoFaces
	}
	return meshes, nil
}

// appendVertex converts one gwob element starting at base into the
// position, normal, uv layout
func appendVertex(dst []float32, obj *gwob.Obj, base int) []float32 {
	p := base + obj.StrideOffsetPosition/4
	dst = append(dst, obj.Coord[p], obj.Coord[p+1], obj.Coord[p+2])

	if obj.NormCoordFound {
		n := base + obj.StrideOffsetNormal/4
		dst = append(dst, obj.Coord[n], obj.Coord[n+1], obj.Coord[n+2])
	} else {
		dst = append(dst, 0, 0, 0)
	}

	if obj.TextCoordFound {
		t := base + obj.StrideOffsetTexture/4
		dst = append(dst, obj.Coord[t], obj.Coord[t+1])
	} else {
		dst = append(dst, 0, 0)
	}
	return dst
}
