package models

import (
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/taigrr/tesseract/pkg/mathnd"
)

// GLTFLoader loads GLTF/GLB files into 3D wire meshes. Each triangle
// contributes its three sides as edges.
type GLTFLoader struct {
	// Options
	WeldVertices bool // merge vertices with identical positions
}

// NewGLTFLoader creates a new GLTF loader with default options.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		WeldVertices: true,
	}
}

// LoadGLB loads a binary GLTF (.glb) file.
func LoadGLB(path string) (*ArrayWireMesh, error) {
	loader := NewGLTFLoader()
	return loader.Load(path)
}

// Load loads a GLTF or GLB file and returns a wire mesh.
func (l *GLTFLoader) Load(path string) (*ArrayWireMesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	mesh := NewArrayWireMesh(filepath.Base(path))
	welded := make(map[[3]float32]int)

	// Process all meshes in the document
	for _, m := range doc.Meshes {
		if err := l.processMesh(doc, m, mesh, welded); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}

	mesh.CalculateBounds()

	return mesh, nil
}

// processMesh extracts triangle edges from a GLTF mesh.
func (l *GLTFLoader) processMesh(doc *gltf.Document, m *gltf.Mesh, mesh *ArrayWireMesh, welded map[[3]float32]int) error {
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			// Skip non-triangle primitives (lines, points, etc)
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}

		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		// Map primitive-local indices to mesh vertex indices
		remap := make([]int, len(positions))
		for i, p := range positions {
			if l.WeldVertices {
				if existing, ok := welded[p]; ok {
					remap[i] = existing
					continue
				}
			}
			remap[i] = mesh.AddVertex(mathnd.Vec(float64(p[0]), float64(p[1]), float64(p[2])))
			welded[p] = remap[i]
		}

		var indices []uint32
		if prim.Indices != nil {
			indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
		} else {
			// No indices, assume sequential triangles
			indices = make([]uint32, len(positions))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}

		for i := 0; i+2 < len(indices); i += 3 {
			a, b, c := int(indices[i]), int(indices[i+1]), int(indices[i+2])
			if a >= len(remap) || b >= len(remap) || c >= len(remap) {
				return fmt.Errorf("triangle %d: index out of range", i/3)
			}
			mesh.AddEdge(remap[a], remap[b])
			mesh.AddEdge(remap[b], remap[c])
			mesh.AddEdge(remap[c], remap[a])
		}
	}

	return nil
}
