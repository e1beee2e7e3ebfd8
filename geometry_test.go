package cubefield

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCubeVertices_Count(t *testing.T) {
	for _, size := range []float32{0.5, 1, 2, 60} {
		vertices := BuildCubeVertices(size)
		if len(vertices) != 24 {
			t.Errorf("size %v: expected 24 vertices, got %d", size, len(vertices))
		}
	}
}

func TestBuildCubeVertices_FaceNormals(t *testing.T) {
	vertices := BuildCubeVertices(1)
	require.Len(t, vertices, 24)

	expected := map[mgl32.Vec3]bool{
		{1, 0, 0}: false, {-1, 0, 0}: false,
		{0, 1, 0}: false, {0, -1, 0}: false,
		{0, 0, 1}: false, {0, 0, -1}: false,
	}

	for face := 0; face < 6; face++ {
		normal := vertices[face*4].Normal
		for corner := 1; corner < 4; corner++ {
			assert.Equal(t, normal, vertices[face*4+corner].Normal,
				"face %d: corner %d differs from the face normal", face, corner)
		}

		seen, ok := expected[normal]
		require.True(t, ok, "face %d: %v is not a unit axis", face, normal)
		require.False(t, seen, "face %d: normal %v appears twice", face, normal)
		expected[normal] = true
	}
}

func TestBuildCubeVertices_PositionsOnHalfSizeCube(t *testing.T) {
	size := float32(2)
	half := size * 0.5
	for _, v := range BuildCubeVertices(size) {
		for axis := 0; axis < 3; axis++ {
			if v.Position[axis] != half && v.Position[axis] != -half {
				t.Fatalf("coordinate %v not on the ±%v shell", v.Position, half)
			}
		}
		// the corner lies on the face its normal names
		assert.Equal(t, half, v.Position.Dot(v.Normal))
	}
}

func TestBuildCubeIndices_RangeAndCount(t *testing.T) {
	indices := BuildCubeIndices()
	require.Len(t, indices, 36)
	for _, idx := range indices {
		assert.Less(t, int(idx), 24)
	}
}

func TestBuildCubeIndices_OutwardWinding(t *testing.T) {
	vertices := BuildCubeVertices(1)
	indices := BuildCubeIndices()

	for tri := 0; tri < len(indices); tri += 3 {
		a := vertices[indices[tri]]
		b := vertices[indices[tri+1]]
		c := vertices[indices[tri+2]]

		e1 := b.Position.Sub(a.Position)
		e2 := c.Position.Sub(b.Position)
		cross := e1.Cross(e2)

		if cross.Dot(a.Normal) <= 0 {
			t.Errorf("triangle %d wound inward: cross %v vs normal %v", tri/3, cross, a.Normal)
		}
	}
}

func TestCubeGeometry_Deterministic(t *testing.T) {
	assert.Equal(t, BuildCubeVertices(1.5), BuildCubeVertices(1.5))
	assert.Equal(t, BuildCubeIndices(), BuildCubeIndices())
}
