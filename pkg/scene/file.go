package scene

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/taigrr/tesseract/pkg/mathnd"
	"github.com/taigrr/tesseract/pkg/models"
	"gopkg.in/yaml.v3"
)

// Scene is a loaded scene description: the node tree plus the camera
// that looks at it.
type Scene struct {
	Root   *Node
	Camera Camera
}

// Camera holds the camera placement and projection settings of a scene.
type Camera struct {
	Transform        mathnd.Transform
	FOV              float64 // vertical field of view in radians
	Near             float64
	Far              float64
	Orthogonal       bool
	Size             float64 // view height for orthogonal projection
	DepthPerspective bool    // perspective divide along axes past the third
	DepthDistance    float64 // eye distance along each extra axis
}

// DefaultCamera returns the camera used when a scene does not define one.
func DefaultCamera() Camera {
	return Camera{
		Transform:        mathnd.FromPosition(mathnd.Vec(0, 0, 5)),
		FOV:              math.Pi / 3, // 60 degrees
		Near:             0.1,
		Far:              100,
		Size:             4,
		DepthPerspective: true,
		DepthDistance:    3,
	}
}

type fileScene struct {
	Camera *fileCamera `yaml:"camera"`
	Nodes  []fileNode  `yaml:"nodes"`
}

type fileCamera struct {
	fileTransform    `yaml:",inline"`
	FOV              *float64 `yaml:"fov"` // degrees
	Near             *float64 `yaml:"near"`
	Far              *float64 `yaml:"far"`
	Orthogonal       bool     `yaml:"orthogonal"`
	Size             *float64 `yaml:"size"`
	DepthPerspective *bool    `yaml:"depth_perspective"`
	DepthDistance    *float64 `yaml:"depth_distance"`
}

type fileTransform struct {
	Origin   []float64      `yaml:"origin"`
	Basis    [][]float64    `yaml:"basis"`
	Rotation []fileRotation `yaml:"rotation"`
	Scale    []float64      `yaml:"scale"`
}

type fileRotation struct {
	From  int     `yaml:"from"`
	To    int     `yaml:"to"`
	Angle float64 `yaml:"angle"` // degrees
}

type fileNode struct {
	fileTransform `yaml:",inline"`
	Name          string    `yaml:"name"`
	Parent        string    `yaml:"parent"`
	Visible       *bool     `yaml:"visible"`
	Color         string    `yaml:"color"`
	Mesh          *fileMesh `yaml:"mesh"`
}

type fileMesh struct {
	Kind string    `yaml:"kind"`
	Size []float64 `yaml:"size"`
	Path string    `yaml:"path"`
}

// Load reads a YAML scene file. Mesh paths are relative to the file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return parse(data, filepath.Dir(path))
}

// Parse decodes a YAML scene description. Mesh paths are relative to the
// working directory.
func Parse(data []byte) (*Scene, error) {
	return parse(data, ".")
}

func parse(data []byte, dir string) (*Scene, error) {
	var file fileScene
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}

	s := &Scene{Root: NewNode("root"), Camera: DefaultCamera()}
	if file.Camera != nil {
		s.Camera = file.Camera.camera()
	}

	byName := make(map[string]*Node, len(file.Nodes))
	for i, fn := range file.Nodes {
		if fn.Name == "" {
			return nil, fmt.Errorf("node %d: missing name", i)
		}
		if _, ok := byName[fn.Name]; ok {
			return nil, fmt.Errorf("node %q: duplicate name", fn.Name)
		}

		node, err := fn.node(dir)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", fn.Name, err)
		}

		parent := s.Root
		if fn.Parent != "" {
			p, ok := byName[fn.Parent]
			if !ok {
				return nil, fmt.Errorf("node %q: unknown parent %q", fn.Name, fn.Parent)
			}
			parent = p
		}
		if err := parent.AddChild(node); err != nil {
			return nil, fmt.Errorf("node %q: %w", fn.Name, err)
		}
		byName[fn.Name] = node
	}

	return s, nil
}

func (ft fileTransform) transform() mathnd.Transform {
	var euler mathnd.Euler
	for _, r := range ft.Rotation {
		euler = append(euler, mathnd.EulerRotation{From: r.From, To: r.To, Angle: r.Angle * math.Pi / 180})
	}
	t := mathnd.FromPositionRotationScale(mathnd.Vec(ft.Origin...), euler, mathnd.Vec(ft.Scale...))
	if len(ft.Basis) > 0 {
		basis := make(mathnd.Basis, len(ft.Basis))
		for i, column := range ft.Basis {
			basis[i] = mathnd.Vec(column...)
		}
		t.Basis = basis.ComposeExpand(t.Basis)
	}
	return t
}

func (fc fileCamera) camera() Camera {
	c := DefaultCamera()
	if len(fc.Origin) > 0 || len(fc.Basis) > 0 || len(fc.Rotation) > 0 || len(fc.Scale) > 0 {
		c.Transform = fc.transform()
	}
	if fc.FOV != nil {
		c.FOV = *fc.FOV * math.Pi / 180
	}
	if fc.Near != nil {
		c.Near = *fc.Near
	}
	if fc.Far != nil {
		c.Far = *fc.Far
	}
	c.Orthogonal = fc.Orthogonal
	if fc.Size != nil {
		c.Size = *fc.Size
	}
	if fc.DepthPerspective != nil {
		c.DepthPerspective = *fc.DepthPerspective
	}
	if fc.DepthDistance != nil {
		c.DepthDistance = *fc.DepthDistance
	}
	return c
}

func (fn fileNode) node(dir string) (*Node, error) {
	node := NewNode(fn.Name)
	node.Transform = fn.transform()
	if fn.Visible != nil {
		node.Visible = *fn.Visible
	}
	if fn.Color != "" {
		c, err := ParseColor(fn.Color)
		if err != nil {
			return nil, err
		}
		node.Color = c
	}
	if fn.Mesh != nil {
		mesh, err := fn.Mesh.mesh(dir)
		if err != nil {
			return nil, err
		}
		node.Mesh = mesh
	}
	return node, nil
}

func (fm fileMesh) mesh(dir string) (models.WireMesh, error) {
	switch strings.ToLower(fm.Kind) {
	case "box":
		return models.NewBoxWireMesh(mathnd.Vec(fm.Size...)), nil
	case "orthoplex":
		return models.NewOrthoplexWireMesh(mathnd.Vec(fm.Size...)), nil
	case "glb", "gltf":
		path := fm.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		mesh, err := models.LoadGLB(path)
		if err != nil {
			return nil, fmt.Errorf("load mesh: %w", err)
		}
		return mesh, nil
	default:
		return nil, fmt.Errorf("unsupported mesh kind: %q (use box, orthoplex or glb)", fm.Kind)
	}
}

// ParseColor parses a hex color such as "#ff8800".
func ParseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}, nil
}
