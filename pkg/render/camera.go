package render

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/taigrr/tesseract/pkg/mathnd"
	"github.com/taigrr/tesseract/pkg/scene"
)

// Camera is an N-dimensional camera. In its own space it looks down -Z
// with +Y up. Axes past the third are folded into 3D first, by a
// perspective divide along each extra axis or by dropping it, and the
// result goes through an ordinary 3D projection.
type Camera struct {
	// Placement in world space
	Transform mathnd.Transform

	// Projection parameters
	FOV              float64 // Vertical field of view in radians
	AspectRatio      float64 // Width / Height
	Near             float64 // Near clipping plane
	Far              float64 // Far clipping plane
	Orthogonal       bool    // Orthographic instead of perspective projection
	Size             float64 // View height for orthographic projection
	DepthPerspective bool    // Perspective divide along axes past the third
	DepthDistance    float64 // Eye distance along each extra axis

	// Cached matrices (computed on demand)
	view       mathnd.Transform
	projMatrix mgl64.Mat4
	viewDirty  bool
	projDirty  bool
}

// NewCamera creates a new camera with default settings.
func NewCamera() *Camera {
	return CameraFromScene(scene.DefaultCamera())
}

// CameraFromScene creates a camera from scene settings.
func CameraFromScene(sc scene.Camera) *Camera {
	return &Camera{
		Transform:        sc.Transform.Duplicate(),
		FOV:              sc.FOV,
		AspectRatio:      16.0 / 9.0,
		Near:             sc.Near,
		Far:              sc.Far,
		Orthogonal:       sc.Orthogonal,
		Size:             sc.Size,
		DepthPerspective: sc.DepthPerspective,
		DepthDistance:    sc.DepthDistance,
		viewDirty:        true,
		projDirty:        true,
	}
}

// SetTransform sets the camera placement.
func (c *Camera) SetTransform(t mathnd.Transform) {
	c.Transform = t.Duplicate()
	c.viewDirty = true
}

// SetFOV sets the field of view (in radians).
func (c *Camera) SetFOV(fov float64) {
	c.FOV = fov
	c.projDirty = true
}

// SetAspectRatio sets the aspect ratio.
func (c *Camera) SetAspectRatio(aspect float64) {
	c.AspectRatio = aspect
	c.projDirty = true
}

// SetClipPlanes sets the near and far clipping planes.
func (c *Camera) SetClipPlanes(near, far float64) {
	c.Near = near
	c.Far = far
	c.projDirty = true
}

// SetOrthogonal switches between orthographic and perspective projection.
func (c *Camera) SetOrthogonal(orthogonal bool) {
	c.Orthogonal = orthogonal
	c.projDirty = true
}

// Dimension returns the dimension of the camera transform, at least 3.
func (c *Camera) Dimension() int {
	return max(c.Transform.Dimension(), 3)
}

// ViewTransform returns the transform from world space to camera space,
// the inverse of the camera placement. A singular placement is logged and
// treated as the identity.
func (c *Camera) ViewTransform() mathnd.Transform {
	if c.viewDirty {
		view, err := c.Transform.Inverse()
		if err != nil {
			slog.Warn("camera transform is not invertible", "transform", c.Transform.String(), "error", err)
		}
		c.view = view
		c.viewDirty = false
	}
	return c.view
}

// ProjectionMatrix returns the 3D projection matrix.
func (c *Camera) ProjectionMatrix() mgl64.Mat4 {
	if c.projDirty {
		c.computeProjectionMatrix()
		c.projDirty = false
	}
	return c.projMatrix
}

func (c *Camera) computeProjectionMatrix() {
	if c.Orthogonal {
		top := c.Size / 2
		right := top * c.AspectRatio
		c.projMatrix = mgl64.Ortho(-right, right, -top, top, c.Near, c.Far)
		return
	}
	c.projMatrix = mgl64.Perspective(c.FOV, c.AspectRatio, c.Near, c.Far)
}

// ToCameraSpace transforms a world point into camera space.
func (c *Camera) ToCameraSpace(world mathnd.VectorN) mathnd.VectorN {
	return c.ViewTransform().Xform(world)
}

// FoldTo3D reduces a camera-space point to 3D, handling the highest axis
// first. With DepthPerspective each extra axis scales the remaining
// coordinates by DepthDistance / (DepthDistance - w); ok is false when the
// point is at or past the eye on that axis.
func (c *Camera) FoldTo3D(p mathnd.VectorN) (mgl64.Vec3, bool) {
	for axis := len(p) - 1; axis >= 3; axis-- {
		w := p[axis]
		p = p.WithDimension(axis)
		if !c.DepthPerspective {
			continue
		}
		depth := c.DepthDistance - w
		if depth <= mathnd.Epsilon {
			return mgl64.Vec3{}, false
		}
		p = p.MultiplyScalar(c.DepthDistance / depth)
	}
	return p.ToVec3(), true
}

// ProjectCameraPoint maps a camera-space point to normalized device
// coordinates. The result is not limited to the [-1, 1] cube; ok is false
// only when the point cannot be projected.
func (c *Camera) ProjectCameraPoint(p mathnd.VectorN) (mgl64.Vec3, bool) {
	v, ok := c.FoldTo3D(p)
	if !ok {
		return mgl64.Vec3{}, false
	}
	clip := c.ProjectionMatrix().Mul4x1(v.Vec4(1))
	if clip.W() <= 0 {
		return mgl64.Vec3{}, false
	}
	return clip.Vec3().Mul(1 / clip.W()), true
}

// NDCToScreen converts normalized device coordinates to pixel coordinates.
func NDCToScreen(ndc mgl64.Vec3, screenWidth, screenHeight int) (x, y float64) {
	x = (ndc.X() + 1) * 0.5 * float64(screenWidth)
	y = (1 - ndc.Y()) * 0.5 * float64(screenHeight) // Y is flipped
	return x, y
}

// WorldToScreen transforms a world point to screen coordinates.
// Returns (screenX, screenY, depth, visible).
func (c *Camera) WorldToScreen(world mathnd.VectorN, screenWidth, screenHeight int) (x, y, depth float64, visible bool) {
	ndc, ok := c.ProjectCameraPoint(c.ToCameraSpace(world))
	if !ok {
		return 0, 0, 0, false
	}

	// Check if in view frustum
	if ndc.X() < -1 || ndc.X() > 1 || ndc.Y() < -1 || ndc.Y() > 1 || ndc.Z() < -1 || ndc.Z() > 1 {
		return 0, 0, 0, false
	}

	x, y = NDCToScreen(ndc, screenWidth, screenHeight)
	return x, y, ndc.Z(), true
}

// MoveForward moves the camera along its own -Z axis.
func (c *Camera) MoveForward(distance float64) {
	c.Transform = c.Transform.TranslatedLocal(mathnd.Vec(0, 0, -distance))
	c.viewDirty = true
}

// Orbit rotates the camera about the world origin in the (from, to) plane.
func (c *Camera) Orbit(from, to int, angle float64) error {
	t, err := c.Transform.RotatedGlobal(from, to, angle)
	if err != nil {
		return err
	}
	c.Transform = t
	c.viewDirty = true
	return nil
}
