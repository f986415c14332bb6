package mathnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectBasics(t *testing.T) {
	r := Rect{Position: Vec(1, 2, 3), Size: Vec(2, 4, 6)}
	assert.Equal(t, 3, r.Dimension())
	assert.Equal(t, VectorN{3, 6, 9}, r.End())
	assert.Equal(t, VectorN{2, 4, 6}, r.Center())
	assert.Equal(t, 48.0, r.Volume())
	assert.True(t, r.HasVolume())

	assert.False(t, Rect{Position: Vec(0, 0), Size: Vec(1, 0)}.HasVolume())
	assert.False(t, Rect{}.HasVolume())
	assert.Equal(t, 0.0, Rect{}.Volume())
	// A size shorter than the position is flat along the missing axes.
	assert.Equal(t, 0.0, Rect{Position: Vec(0, 0, 0), Size: Vec(1, 1)}.Volume())
}

func TestRectAbs(t *testing.T) {
	r := Rect{Position: Vec(2, 2), Size: Vec(-1, 3)}.Abs()
	assert.Equal(t, VectorN{1, 2}, r.Position)
	assert.Equal(t, VectorN{1, 3}, r.Size)
}

func TestRectHasPoint(t *testing.T) {
	r := Rect{Position: Vec(0, 0), Size: Vec(2, 2)}

	tests := []struct {
		name  string
		point VectorN
		want  bool
	}{
		{"inside", Vec(1, 1), true},
		{"corner", Vec(2, 2), true},
		{"outside", Vec(3, 1), false},
		{"below", Vec(1, -0.5), false},
		{"extra axes ignored", Vec(1, 1, 9), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.HasPoint(tc.point))
		})
	}
}

func TestRectEnclosesUsesLargerDimension(t *testing.T) {
	r := Rect{Position: Vec(0, 0), Size: Vec(2, 2)}
	assert.True(t, r.Encloses(Rect{Position: Vec(1, 1), Size: Vec(1, 1)}))
	assert.False(t, r.Encloses(Rect{Position: Vec(1, 1), Size: Vec(2, 1)}))
	// A flat third axis at zero is enclosed, a third axis elsewhere is not.
	assert.True(t, r.Encloses(Rect{Position: Vec(1, 1, 0), Size: Vec(1, 1, 0)}))
	assert.False(t, r.Encloses(Rect{Position: Vec(1, 1, 1), Size: Vec(1, 1, 1)}))
}

func TestRectIntersectsUsesSmallerDimension(t *testing.T) {
	r := Rect{Position: Vec(0, 0), Size: Vec(2, 2)}
	assert.True(t, r.Intersects(Rect{Position: Vec(1, 1, 5), Size: Vec(2, 2, 1)}))
	assert.False(t, r.Intersects(Rect{Position: Vec(3, 0), Size: Vec(1, 1)}))
	assert.False(t, r.Intersects(Rect{Position: Vec(2, 0), Size: Vec(1, 1)}), "touching")
}

func TestRectIntersection(t *testing.T) {
	r := Rect{Position: Vec(0, 0), Size: Vec(2, 2)}
	got := r.Intersection(Rect{Position: Vec(1, 1, 7), Size: Vec(2, 2, 1)})
	assert.Equal(t, Rect{Position: Vec(1, 1), Size: Vec(1, 1)}, got)

	assert.Equal(t, Rect{}, r.Intersection(Rect{Position: Vec(5, 5), Size: Vec(1, 1)}))
}

func TestRectMergeUsesLargerDimension(t *testing.T) {
	r := Rect{Position: Vec(0, 0), Size: Vec(1, 1)}
	got := r.Merge(Rect{Position: Vec(2, 2, 2), Size: Vec(1, 1, 1)})
	assert.Equal(t, Rect{Position: Vec(0, 0, 0), Size: Vec(3, 3, 3)}, got)
}

func TestRectGrowExpandSupport(t *testing.T) {
	r := Rect{Position: Vec(0, 0), Size: Vec(2, 2)}
	assert.Equal(t, Rect{Position: Vec(-1, -1), Size: Vec(4, 4)}, r.Grow(1))
	assert.Equal(t, Rect{Position: Vec(-1, 0), Size: Vec(3, 3)}, r.Expand(Vec(-1, 3)))
	assert.Equal(t, VectorN{2, 0}, r.Support(Vec(1, -1)))
	assert.Equal(t, VectorN{0, 2, 0}, r.Support(Vec(0, 1, 1)))
}

func TestRectVertices(t *testing.T) {
	r := Rect{Position: Vec(1, 1), Size: Vec(2, 3)}
	vertices := r.Vertices()
	require.Len(t, vertices, 4)
	assert.Equal(t, VectorN{1, 1}, vertices[0])
	assert.Equal(t, r.End(), vertices[3])
}

func TestRectFromPoints(t *testing.T) {
	got := RectFromPoints([]VectorN{Vec(1, 5), Vec(-2, 3), Vec(0, 8, 1)})
	assert.True(t, got.IsEqualApprox(Rect{Position: Vec(-2, 3, 0), Size: Vec(3, 5, 1)}), "got %s", got)
	assert.Equal(t, Rect{}, RectFromPoints(nil))
}
