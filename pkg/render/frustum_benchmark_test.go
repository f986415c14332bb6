package render

import (
	"testing"

	"github.com/taigrr/tesseract/pkg/mathnd"
	"github.com/taigrr/tesseract/pkg/models"
)

// BenchmarkFrustumClipSegment benchmarks clipping a segment that crosses
// the near plane.
func BenchmarkFrustumClipSegment(b *testing.B) {
	f := NewCamera().Frustum(4)
	a := mathnd.Vec(0, 0, 1, 0)
	c := mathnd.Vec(1, 1, -10, 0.5)

	for b.Loop() {
		_, _, _ = f.ClipSegment(a, c)
	}
}

// BenchmarkRectIntersection benchmarks rect vs frustum intersection tests.
func BenchmarkRectIntersection(b *testing.B) {
	f := NewCamera().Frustum(4)

	visible := mathnd.Rect{Position: mathnd.Vec(-1, -1, -15, -1), Size: mathnd.Vec(2, 2, 10, 2)}
	culled := mathnd.Rect{Position: mathnd.Vec(-1, -1, 5, -1), Size: mathnd.Vec(2, 2, 10, 2)}

	b.Run("visible", func(b *testing.B) {
		for b.Loop() {
			_ = f.IntersectsRect(visible)
		}
	})

	b.Run("culled", func(b *testing.B) {
		for b.Loop() {
			_ = f.IntersectsRect(culled)
		}
	})
}

// BenchmarkWireframeTesseract benchmarks drawing a tesseract.
func BenchmarkWireframeTesseract(b *testing.B) {
	fb := NewFramebuffer(160, 96)
	camera := NewCamera()
	camera.SetAspectRatio(160.0 / 96.0)
	wf := NewWireframe(camera, fb)
	mesh := models.NewBoxWireMesh(mathnd.Vec(2, 2, 2, 2))
	global := mathnd.FromPositionRotation(mathnd.Zero(4), mathnd.Euler{{From: 0, To: 3, Angle: 0.4}, {From: 1, To: 2, Angle: 0.3}})

	for b.Loop() {
		fb.Clear(ColorBlack)
		wf.DrawMesh(mesh, global, ColorWhite)
	}
}
