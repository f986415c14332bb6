package mathnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClosestPointOn(t *testing.T) {
	tests := []struct {
		name string
		got  VectorN
		want VectorN
	}{
		{"line", ClosestPointOnLine(Vec(0, 0), Vec(1, 0), Vec(3, 4)), Vec(3, 0)},
		{"line behind", ClosestPointOnLine(Vec(0, 0), Vec(2, 0), Vec(-3, 4)), Vec(-3, 0)},
		{"line zero direction", ClosestPointOnLine(Vec(1, 1), Vec(0, 0), Vec(5, 5)), Vec(1, 1)},
		{"ray ahead", ClosestPointOnRay(Vec(0, 0), Vec(1, 0), Vec(3, 4)), Vec(3, 0)},
		{"ray behind", ClosestPointOnRay(Vec(0, 0), Vec(1, 0), Vec(-3, 4)), Vec(0, 0)},
		{"segment inside", ClosestPointOnLineSegment(Vec(0, 0), Vec(2, 0), Vec(1, 5)), Vec(1, 0)},
		{"segment past end", ClosestPointOnLineSegment(Vec(0, 0), Vec(2, 0), Vec(5, 1)), Vec(2, 0)},
		{"segment 4d", ClosestPointOnLineSegment(Vec(0, 0, 0, 0), Vec(0, 0, 0, 4), Vec(1, 1, 1, 1)), Vec(0, 0, 0, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertVecApprox(t, tc.want, tc.got)
		})
	}
}

func TestClosestPointsBetweenLines(t *testing.T) {
	tests := []struct {
		name                  string
		p1, d1, p2, d2        VectorN
		wantFirst, wantSecond VectorN
	}{
		{"skew 3d", Vec(0, 0, 0), Vec(1, 0, 0), Vec(0, 1, 1), Vec(0, 0, 1), Vec(0, 0, 0), Vec(0, 1, 0)},
		{"skew 4d", Vec(0, 0, 0, 0), Vec(0, 0, 1, 0), Vec(1, 0, 0, 5), Vec(0, 0, 0, 1), Vec(0, 0, 0, 0), Vec(1, 0, 0, 0)},
		{"crossing 2d", Vec(-1, 0), Vec(1, 0), Vec(3, -2), Vec(0, 1), Vec(3, 0), Vec(3, 0)},
		{"parallel", Vec(0, 0), Vec(1, 0), Vec(5, 1), Vec(2, 0), Vec(0, 0), Vec(0, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			first, second := ClosestPointsBetweenLines(tc.p1, tc.d1, tc.p2, tc.d2)
			assertVecApprox(t, tc.wantFirst, first)
			assertVecApprox(t, tc.wantSecond, second)
		})
	}
}

func TestClosestPointsBetweenLineAndSegment(t *testing.T) {
	onLine, onSegment := ClosestPointsBetweenLineAndSegment(Vec(0, 0), Vec(1, 0), Vec(3, 1), Vec(3, 5))
	assertVecApprox(t, Vec(3, 0), onLine)
	assertVecApprox(t, Vec(3, 1), onSegment)

	// Parallel: the line position and the nearest segment point.
	onLine, onSegment = ClosestPointsBetweenLineAndSegment(Vec(0, 0), Vec(1, 0), Vec(2, 1), Vec(4, 1))
	assertVecApprox(t, Vec(0, 0), onLine)
	assertVecApprox(t, Vec(2, 1), onSegment)
}

func TestClosestPointsBetweenRays(t *testing.T) {
	// Unconstrained solution lies behind the second ray's origin.
	first, second := ClosestPointsBetweenRays(Vec(0, 0), Vec(1, 0), Vec(2, -1), Vec(0, -1))
	assertVecApprox(t, Vec(2, 0), first)
	assertVecApprox(t, Vec(2, -1), second)

	// Both rays reach their closest approach.
	first, second = ClosestPointsBetweenRays(Vec(0, 0, 0), Vec(1, 0, 0), Vec(2, -1, 1), Vec(0, 1, 0))
	assertVecApprox(t, Vec(2, 0, 0), first)
	assertVecApprox(t, Vec(2, 0, 1), second)

	// Parallel rays facing the same way.
	first, second = ClosestPointsBetweenRays(Vec(0, 0), Vec(1, 0), Vec(3, 1), Vec(1, 0))
	assertVecApprox(t, Vec(3, 0), first)
	assertVecApprox(t, Vec(3, 1), second)
}

func TestClosestPointsBetweenLineSegments(t *testing.T) {
	tests := []struct {
		name                  string
		p1, q1, p2, q2        VectorN
		wantFirst, wantSecond VectorN
	}{
		{"clamped end", Vec(0, 0), Vec(2, 0), Vec(1, 1), Vec(1, 3), Vec(1, 0), Vec(1, 1)},
		{"crossing", Vec(-1, 0), Vec(1, 0), Vec(0, -1), Vec(0, 1), Vec(0, 0), Vec(0, 0)},
		{"both points", Vec(1, 1), Vec(1, 1), Vec(2, 2), Vec(2, 2), Vec(1, 1), Vec(2, 2)},
		{"first is point", Vec(1, 1), Vec(1, 1), Vec(0, 0), Vec(4, 0), Vec(1, 1), Vec(1, 0)},
		{"second is point", Vec(0, 0), Vec(4, 0), Vec(5, 1), Vec(5, 1), Vec(4, 0), Vec(5, 1)},
		{"parallel overlap", Vec(0, 0), Vec(2, 0), Vec(1, 1), Vec(3, 1), Vec(1, 0), Vec(1, 1)},
		{"skew 4d", Vec(0, 0, 0, -1), Vec(0, 0, 0, 1), Vec(-1, 0, 2, 0), Vec(1, 0, 2, 0), Vec(0, 0, 0, 0), Vec(0, 0, 2, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			first, second := ClosestPointsBetweenLineSegments(tc.p1, tc.q1, tc.p2, tc.q2)
			assertVecApprox(t, tc.wantFirst, first)
			assertVecApprox(t, tc.wantSecond, second)
		})
	}
}

func TestBoxVertices(t *testing.T) {
	vertices := BoxVertices(Vec(1, 2, 3), true)
	require.Len(t, vertices, 8)
	assert.Equal(t, VectorN{-0.5, -1, -1.5}, vertices[0])
	assert.Equal(t, VectorN{0.5, -1, -1.5}, vertices[1])
	assert.Equal(t, VectorN{0.5, 1, 1.5}, vertices[7])

	vertices = BoxVertices(Vec(1, 2), false)
	assert.Equal(t, []VectorN{{0, 0}, {1, 0}, {0, 2}, {1, 2}}, vertices)

	assert.Len(t, BoxVertices(Vec(), false), 1)
	assert.Nil(t, BoxVertices(Zero(31), false))
}

func TestOrthoplexVertices(t *testing.T) {
	vertices := OrthoplexVertices(Vec(1, 2, 3))
	require.Len(t, vertices, 6)
	assertVecApprox(t, Vec(0.5, 0, 0), vertices[0])
	assertVecApprox(t, Vec(-0.5, 0, 0), vertices[1])
	assertVecApprox(t, Vec(0, 1, 0), vertices[2])
	assertVecApprox(t, Vec(0, 0, -1.5), vertices[5])
}
