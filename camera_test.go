package cubefield

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestCamera_TargetProjectsToScreenCenter(t *testing.T) {
	camera := NewCamera()
	vp := camera.ViewProjection(16.0 / 9.0)

	clip := vp.Mul4x1(camera.Target.Vec4(1))
	assert.Greater(t, clip.W(), float32(0), "target must be in front of the camera")

	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	assert.InDelta(t, 0, float64(ndcX), 1e-5)
	assert.InDelta(t, 0, float64(ndcY), 1e-5)
}

func TestCamera_PointBehindCameraHasNegativeW(t *testing.T) {
	camera := NewCamera()
	vp := camera.ViewProjection(1)

	forward := camera.Target.Sub(camera.Position).Normalize()
	behind := camera.Position.Sub(forward.Mul(10))

	clip := vp.Mul4x1(behind.Vec4(1))
	assert.Less(t, clip.W(), float32(0))
}

func TestOrbitCamera_PreservesHeightAndDistance(t *testing.T) {
	camera := NewCamera()
	startHeight := camera.Position.Y()
	startDistance := camera.Position.Sub(camera.Target).Len()

	orbitCamera(camera, math.Pi/2)

	assert.InDelta(t, float64(startHeight), float64(camera.Position.Y()), 1e-4)
	assert.InDelta(t, float64(startDistance), float64(camera.Position.Sub(camera.Target).Len()), 1e-3)
}

func TestCamera_FieldSpreadFitsInFrustum(t *testing.T) {
	camera := NewCamera()
	vp := camera.ViewProjection(16.0 / 9.0)

	// the far corners of a spread-60 field must not be clipped by far plane
	for _, corner := range []mgl32.Vec3{{30, 30, 30}, {-30, -30, -30}} {
		clip := vp.Mul4x1(corner.Vec4(1))
		if clip.W() <= 0 {
			continue // behind the camera, not a far-plane question
		}
		ndcZ := clip.Z() / clip.W()
		assert.False(t, math.IsNaN(float64(ndcZ)))
		assert.LessOrEqual(t, ndcZ, float32(1), "corner %v clipped by far plane", corner)
	}
}
