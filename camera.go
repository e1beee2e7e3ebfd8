package cubefield

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a fixed look-at camera. There is no input handling; the only
// motion is the optional orbit animation below.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	FovYDeg  float32
	Near     float32
	Far      float32
}

func NewCamera() *Camera {
	return &Camera{
		Position: mgl32.Vec3{55, 40, 55},
		Target:   mgl32.Vec3{0, 0, 0},
		Up:       mgl32.Vec3{0, 1, 0},
		FovYDeg:  45,
		Near:     0.1,
		Far:      1000,
	}
}

// ViewProjection builds the combined view-projection matrix for the given
// aspect ratio.
func (c *Camera) ViewProjection(aspect float32) mgl32.Mat4 {
	proj := mgl32.Perspective(mgl32.DegToRad(c.FovYDeg), aspect, c.Near, c.Far)
	view := mgl32.LookAtV(c.Position, c.Target, c.Up)
	return proj.Mul4(view)
}

// CameraModule installs the Camera resource. With Orbit set the camera
// slowly circles the target, which is enough to show off the field without
// any input handling.
type CameraModule struct {
	Orbit      bool
	OrbitSpeed float32 // radians per second, default 0.25
}

func (mod CameraModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(NewCamera())

	if mod.Orbit {
		speed := mod.OrbitSpeed
		if speed == 0 {
			speed = 0.25
		}
		app.UseSystem(
			System(func(camera *Camera, timeResource *Time) {
				orbitCamera(camera, speed*float32(timeResource.Dt.Seconds()))
			}).InStage(Update),
		)
	}
}

// orbitCamera rotates the camera position around the target's vertical axis.
func orbitCamera(camera *Camera, angle float32) {
	radial := camera.Position.Sub(camera.Target)
	rotated := mgl32.QuatRotate(angle, mgl32.Vec3{0, 1, 0}).Rotate(radial)
	camera.Position = camera.Target.Add(rotated)
}
