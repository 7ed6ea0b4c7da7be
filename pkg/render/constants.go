package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Key constants for keyboard input
const (
	KeyW      = glfw.KeyW
	KeyA      = glfw.KeyA
	KeyS      = glfw.KeyS
	KeyD      = glfw.KeyD
	KeyC      = glfw.KeyC
	KeyX      = glfw.KeyX
	KeyEscape = glfw.KeyEscape
)

// Action constants for key states
const (
	Press   = glfw.Press
	Release = glfw.Release
	Repeat  = glfw.Repeat
)

// MoveDirection is a discrete movement command for the camera
type MoveDirection int

const (
	MoveUp MoveDirection = iota
	MoveDown
	MoveLeft
	MoveRight
)

func (d MoveDirection) String() string {
	switch d {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	}
	return "unknown"
}

// Camera constants
const (
	// Window size stored by NewDefaultCamera
	DefaultWidth  = 600
	DefaultHeight = 600

	// Movement
	DefaultMoveSpeed = 2.5
	MouseSensitivity = 0.1

	// The camera is height-locked: every movement command resets Y to this.
	PinnedHeight = 5.0

	// Default orientation
	DefaultYaw   = 90.0 // Facing +Z
	DefaultPitch = 0.0

	// Zoom doubles as the vertical field of view in degrees
	DefaultZoom = 45.0
	MinZoom     = 1.0
	MaxZoom     = 45.0

	// Constraints
	MaxPitch = 89.0
	MinPitch = -89.0

	// Below this |front × up| the current up no longer defines a stable right vector
	minBasisCross = 0.05

	// Projection planes
	NearPlane = 0.1
	FarPlane  = 100.0
)
