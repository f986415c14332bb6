package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taigrr/tesseract/pkg/mathnd"
)

func TestCameraFrustumPlanes(t *testing.T) {
	c := testCamera()
	assert.Len(t, c.Frustum(2).Planes, 2)
	assert.Len(t, c.Frustum(3).Planes, 2)
	assert.Len(t, c.Frustum(5).Planes, 4)

	c.DepthPerspective = false
	assert.Len(t, c.Frustum(5).Planes, 2)
}

func TestFrustumContainsPoint(t *testing.T) {
	c := testCamera()
	c.DepthDistance = 3
	f := c.Frustum(4)

	tests := []struct {
		name     string
		point    mathnd.VectorN
		expected bool
	}{
		{"in front", mathnd.Vec(0, 0, -1), true},
		{"beside is still inside", mathnd.Vec(50, 0, -1), true},
		{"behind", mathnd.Vec(0, 0, 1), false},
		{"before near", mathnd.Vec(0, 0, -0.05), false},
		{"past far", mathnd.Vec(0, 0, -200), false},
		{"W before eye", mathnd.Vec(0, 0, -1, 2.8), true},
		{"W past eye", mathnd.Vec(0, 0, -1, 2.95), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, f.ContainsPoint(tc.point))
		})
	}
}

func TestFrustumClipSegment(t *testing.T) {
	f := testCamera().Frustum(3)

	a, b, ok := f.ClipSegment(mathnd.Vec(0, 0, 1), mathnd.Vec(0, 0, -1))
	require.True(t, ok)
	assert.True(t, a.IsEqualApprox(mathnd.Vec(0, 0, -0.1)), "got %s", a)
	assert.True(t, b.IsEqualApprox(mathnd.Vec(0, 0, -1)))

	a, b, ok = f.ClipSegment(mathnd.Vec(1, 0, -2), mathnd.Vec(0, 0, -300))
	require.True(t, ok)
	assert.True(t, a.IsEqualApprox(mathnd.Vec(1, 0, -2)))
	assert.InDelta(t, -100, b[2], 1e-9)

	_, _, ok = f.ClipSegment(mathnd.Vec(0, 0, 1), mathnd.Vec(0, 0, 2))
	assert.False(t, ok)
}

func TestNDCFrustumClipSegment(t *testing.T) {
	a, b, ok := ndcFrustum.ClipSegment(mathnd.Vec(-3, 0), mathnd.Vec(3, 0))
	require.True(t, ok)
	assert.True(t, a.IsEqualApprox(mathnd.Vec(-1, 0)))
	assert.True(t, b.IsEqualApprox(mathnd.Vec(1, 0)))

	_, _, ok = ndcFrustum.ClipSegment(mathnd.Vec(2, -3), mathnd.Vec(2, 3))
	assert.False(t, ok)
}

func TestFrustumRects(t *testing.T) {
	f := testCamera().Frustum(3)

	tests := []struct {
		name       string
		rect       mathnd.Rect
		intersects bool
		contains   bool
	}{
		{"in front", mathnd.Rect{Position: mathnd.Vec(-1, -1, -3), Size: mathnd.Vec(2, 2, 2)}, true, true},
		{"behind", mathnd.Rect{Position: mathnd.Vec(-1, -1, 1), Size: mathnd.Vec(2, 2, 1)}, false, false},
		{"straddles near", mathnd.Rect{Position: mathnd.Vec(-1, -1, -1), Size: mathnd.Vec(2, 2, 2)}, true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.intersects, f.IntersectsRect(tc.rect))
			assert.Equal(t, tc.contains, f.ContainsRect(tc.rect))
		})
	}
}

func TestTransformRect(t *testing.T) {
	r := mathnd.Rect{Position: mathnd.Vec(0, 0), Size: mathnd.Vec(1, 2)}

	got := TransformRect(r, mathnd.FromPositionScale(mathnd.Vec(5, 0), mathnd.Vec(-1, 1)))
	assert.True(t, got.IsEqualApprox(mathnd.Rect{Position: mathnd.Vec(4, 0), Size: mathnd.Vec(1, 2)}), "got %s", got)

	// A 4D transform lifts a 2D rect.
	got = TransformRect(r, mathnd.FromPosition(mathnd.Vec(0, 0, 0, 1)))
	assert.True(t, got.IsEqualApprox(mathnd.Rect{Position: mathnd.Vec(0, 0, 0, 1), Size: mathnd.Vec(1, 2, 0, 0)}), "got %s", got)
}
