package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/taigrr/tesseract/pkg/mathnd"
	"github.com/taigrr/tesseract/pkg/models"
	"github.com/taigrr/tesseract/pkg/scene"
)

// Wireframe renders N-dimensional wire meshes.
type Wireframe struct {
	camera *Camera
	fb     *Framebuffer

	// ShowBounds draws the bounding rect of every mesh.
	ShowBounds  bool
	BoundsColor Color
}

// NewWireframe creates a new wireframe renderer.
func NewWireframe(camera *Camera, fb *Framebuffer) *Wireframe {
	return &Wireframe{
		camera:      camera,
		fb:          fb,
		BoundsColor: ColorGray,
	}
}

// DrawLine draws a line between two world points. It reports whether any
// part of the line was drawn.
func (w *Wireframe) DrawLine(a, b mathnd.VectorN, color Color) bool {
	n := max(len(a), len(b), w.camera.Dimension())
	return w.drawCameraLine(w.camera.ToCameraSpace(a), w.camera.ToCameraSpace(b), w.camera.Frustum(n), color)
}

// drawCameraLine clips a camera-space segment, projects it and draws what
// remains on screen.
func (w *Wireframe) drawCameraLine(a, b mathnd.VectorN, frustum Frustum, color Color) bool {
	a, b, ok := frustum.ClipSegment(a, b)
	if !ok {
		return false
	}
	pa, okA := w.camera.ProjectCameraPoint(a)
	pb, okB := w.camera.ProjectCameraPoint(b)
	if !okA || !okB {
		return false
	}

	// Clip in screen space so far off-screen endpoints stay cheap to draw
	sa, sb, ok := ndcFrustum.ClipSegment(mathnd.Vec(pa.X(), pa.Y()), mathnd.Vec(pb.X(), pb.Y()))
	if !ok {
		return false
	}
	x0, y0 := NDCToScreen(mgl64.Vec3{sa[0], sa[1], 0}, w.fb.Width, w.fb.Height)
	x1, y1 := NDCToScreen(mgl64.Vec3{sb[0], sb[1], 0}, w.fb.Width, w.fb.Height)
	w.fb.DrawLine(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Floor(x1)), int(math.Floor(y1)), color)
	return true
}

// DrawMesh draws a mesh placed by the global transform. It returns the
// number of edges drawn. Meshes whose bounds are outside the view are
// skipped without touching their edges.
func (w *Wireframe) DrawMesh(mesh models.WireMesh, global mathnd.Transform, color Color) int {
	modelView := w.camera.ViewTransform().ComposeSquare(global)
	n := max(mesh.Dimension(), modelView.Dimension())
	frustum := w.camera.Frustum(n)

	bounds := mesh.Bounds()
	if bounds.Dimension() > 0 && !frustum.IntersectsRect(TransformRect(bounds, modelView)) {
		return 0
	}

	vertices := mesh.Vertices()
	projected := make([]mathnd.VectorN, len(vertices))
	for i, v := range vertices {
		projected[i] = modelView.Xform(v)
	}

	drawn := 0
	edges := mesh.EdgeIndices()
	for i := 0; i+1 < len(edges); i += 2 {
		a, b := edges[i], edges[i+1]
		if a < 0 || b < 0 || a >= len(projected) || b >= len(projected) {
			continue
		}
		if w.drawCameraLine(projected[a], projected[b], frustum, color) {
			drawn++
		}
	}

	if w.ShowBounds && bounds.Dimension() > 0 {
		w.DrawRect(bounds, global, w.BoundsColor)
	}
	return drawn
}

// DrawRect draws the outline of a rect placed by the global transform.
func (w *Wireframe) DrawRect(r mathnd.Rect, global mathnd.Transform, color Color) {
	// Rect corners share the box vertex order, so box edges apply.
	vertices := r.Vertices()
	edges := models.NewBoxWireMesh(r.Size.WithDimension(r.Dimension())).EdgeIndices()
	for i := 0; i+1 < len(edges); i += 2 {
		w.DrawLine(global.Xform(vertices[edges[i]]), global.Xform(vertices[edges[i+1]]), color)
	}
}

// DrawScene draws every visible node with a mesh. Invisible nodes hide
// their whole subtree. It returns the number of edges drawn.
func (w *Wireframe) DrawScene(root *scene.Node) int {
	drawn := 0
	var visit func(node *scene.Node, parent mathnd.Transform)
	visit = func(node *scene.Node, parent mathnd.Transform) {
		if !node.Visible {
			return
		}
		global := parent.ComposeSquare(node.Transform)
		if node.Mesh != nil {
			drawn += w.DrawMesh(node.Mesh, global, node.Color)
		}
		for _, child := range node.Children() {
			visit(child, global)
		}
	}
	parent := mathnd.Transform{}
	if p := root.Parent(); p != nil {
		parent = p.GlobalTransform()
	}
	visit(root, parent)
	return drawn
}

// DrawAxes draws n coordinate axes from the origin, each in its own color.
func (w *Wireframe) DrawAxes(n int, length float64) {
	origin := mathnd.Zero(n)
	for axis := range n {
		w.DrawLine(origin, mathnd.AxisVector(n, axis).MultiplyScalar(length), AxisColor(axis))
	}
}

// DrawPoint draws a point as a small cross along every axis.
func (w *Wireframe) DrawPoint(pos mathnd.VectorN, size float64, color Color) {
	half := size / 2
	for axis := range len(pos) {
		offset := mathnd.AxisVector(len(pos), axis).MultiplyScalar(half)
		w.DrawLine(pos.Subtract(offset), pos.Add(offset), color)
	}
}
