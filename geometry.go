package cubefield

import (
	"github.com/go-gl/mathgl/mgl32"
)

// CubeVertex matches the WGSL VertexInput of the instanced cube shader.
// Layout: position at byte offset 0, normal at byte offset 12, stride 24.
type CubeVertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
}

// cubeFaces holds the unit corner positions of the 6 faces, 4 corners per
// face, wound counter-clockwise when viewed from outside the cube. Corners
// are given for a cube of side 2 centered at the origin and get scaled by
// size/2 in BuildCubeVertices.
var cubeFaces = [6]struct {
	normal  mgl32.Vec3
	corners [4]mgl32.Vec3
}{
	{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}}},
	{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{-1, 1, -1}, {1, 1, -1}, {1, -1, -1}, {-1, -1, -1}}},
	{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{1, -1, -1}, {1, 1, -1}, {1, 1, 1}, {1, -1, 1}}},
	{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}, {-1, -1, -1}}},
	{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{1, 1, -1}, {-1, 1, -1}, {-1, 1, 1}, {1, 1, 1}}},
	{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{1, -1, 1}, {-1, -1, 1}, {-1, -1, -1}, {1, -1, -1}}},
}

// BuildCubeVertices returns the 24 vertices of a cube with side length size
// centered at the origin. Each face contributes 4 vertices sharing that
// face's outward normal. Pure: identical input yields identical output.
func BuildCubeVertices(size float32) []CubeVertex {
	half := size * 0.5
	vertices := make([]CubeVertex, 0, 24)
	for _, face := range cubeFaces {
		for _, corner := range face.corners {
			vertices = append(vertices, CubeVertex{
				Position: corner.Mul(half),
				Normal:   face.normal,
			})
		}
	}
	return vertices
}

// BuildCubeIndices returns the 36 indices forming the 12 triangles of the
// cube, two per face, wound so that the triangle faces outward (consistent
// with FrontFaceCCW + back-face culling).
func BuildCubeIndices() []uint16 {
	indices := make([]uint16, 0, 36)
	for face := uint16(0); face < 6; face++ {
		base := face * 4
		indices = append(indices,
			base, base+1, base+2,
			base+2, base+3, base,
		)
	}
	return indices
}
