package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera implements a free-fly 3D camera driven by discrete input events
type Camera struct {
	// Window dimensions, kept as configuration only
	width  int
	height int

	// Position and basis
	position mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3

	// Euler angles in degrees
	yaw   float32
	pitch float32

	zoom           float32
	moveSpeed      float32
	constrainPitch bool
}

// NewDefaultCamera creates a camera at (0,0,3) with a Y-up vector, yaw 90 and pitch 0
func NewDefaultCamera() *Camera {
	return NewCamera(DefaultWidth, DefaultHeight, mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 1, 0}, DefaultYaw, DefaultPitch)
}

// NewCamera creates a camera from an initial position, up vector and orientation.
// width and height are stored but never used in the camera math.
func NewCamera(width, height int, position, up mgl32.Vec3, yaw, pitch float32) *Camera {
	camera := &Camera{
		width:          width,
		height:         height,
		position:       position,
		up:             up,
		yaw:            yaw,
		pitch:          pitch,
		zoom:           DefaultZoom,
		front:          mgl32.Vec3{0, 0, -1},
		moveSpeed:      DefaultMoveSpeed,
		constrainPitch: true,
	}

	camera.updateCameraVectors()

	return camera
}

// updateCameraVectors recalculates the basis from the Euler angles.
// up is rebuilt from the new right and front, so it drifts away from the
// up vector given at construction as the orientation changes.
func (c *Camera) updateCameraVectors() {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))

	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.front = front.Normalize()

	right := c.front.Cross(c.up)
	if right.Len() < minBasisCross {
		// front swung (nearly) onto up in one step; the clamped pitch keeps
		// front away from the world vertical, so fall back to that
		worldUp := mgl32.Vec3{0, 1, 0}
		if c.up.Y() < 0 {
			worldUp = worldUp.Mul(-1)
		}
		right = c.front.Cross(worldUp)
	}
	c.right = right.Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

// ProcessKeyboard moves the camera along its front or right vector.
// The height is pinned to PinnedHeight after every call.
func (c *Camera) ProcessKeyboard(direction MoveDirection, deltaTime float32) {
	speed := c.moveSpeed * deltaTime

	switch direction {
	case MoveUp:
		c.position = c.position.Add(c.front.Mul(speed))
	case MoveDown:
		c.position = c.position.Sub(c.front.Mul(speed))
	case MoveLeft:
		c.position = c.position.Sub(c.right.Mul(speed))
	case MoveRight:
		c.position = c.position.Add(c.right.Mul(speed))
	}

	c.position[1] = PinnedHeight
}

// ProcessMouseMove turns the camera by the given cursor offsets
func (c *Camera) ProcessMouseMove(xoffset, yoffset float64) {
	xoffset *= MouseSensitivity
	yoffset *= MouseSensitivity

	c.yaw += float32(xoffset)
	c.pitch += float32(yoffset)

	if c.constrainPitch {
		if c.pitch > MaxPitch {
			c.pitch = MaxPitch
		}
		if c.pitch < MinPitch {
			c.pitch = MinPitch
		}
	}

	c.updateCameraVectors()
}

// ProcessMouseScroll zooms in for positive offsets and out for negative ones.
// The decrement only applies while zoom is inside [MinZoom, MaxZoom]; the
// result is then clamped back into that range.
func (c *Camera) ProcessMouseScroll(yoffset float64) {
	if c.zoom >= MinZoom && c.zoom <= MaxZoom {
		c.zoom -= float32(yoffset)
	}
	if c.zoom <= MinZoom {
		c.zoom = MinZoom
	}
	if c.zoom >= MaxZoom {
		c.zoom = MaxZoom
	}
}

// ViewMatrix returns the look-at transform for the current position and basis
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// ProjectionMatrix returns a perspective projection using the zoom as the vertical FOV
func (c *Camera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.zoom), aspect, NearPlane, FarPlane)
}

// Position returns the current camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// Zoom returns the current zoom level in degrees
func (c *Camera) Zoom() float32 {
	return c.zoom
}

// Orientation returns the current camera orientation (yaw, pitch)
func (c *Camera) Orientation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// Size returns the window dimensions the camera was created with
func (c *Camera) Size() (width, height int) {
	return c.width, c.height
}

// FrontVector returns the camera's front direction vector
func (c *Camera) FrontVector() mgl32.Vec3 {
	return c.front
}

// RightVector returns the camera's right direction vector
func (c *Camera) RightVector() mgl32.Vec3 {
	return c.right
}

// UpVector returns the camera's up direction vector
func (c *Camera) UpVector() mgl32.Vec3 {
	return c.up
}
