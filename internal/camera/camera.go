// Package camera derives view and projection transforms from a free-flying
// camera driven by per-frame input snapshots.
package camera

import (
	"math"
	"time"

	"life3d/pkg/linalg"
)

// pitchLimit keeps the view direction off the world up axis.
const pitchLimit = math.Pi/2 - 0.01

// Basis is the orthonormal frame derived from the camera angles.
type Basis struct {
	Direction linalg.Vector3
	Right     linalg.Vector3
	Up        linalg.Vector3
}

// DeriveBasis computes the viewing frame for a horizontal angle theta and a
// vertical angle phi, both in radians. phi must stay strictly inside
// (-pi/2, pi/2) for Right to be defined.
func DeriveBasis(theta, phi float64) Basis {
	sinT, cosT := math.Sincos(theta)
	sinP, cosP := math.Sincos(phi)
	dir := linalg.V3(cosP*sinT, sinP, cosP*cosT)
	right := linalg.WorldUp.Cross(dir).Normalize()
	up := dir.Cross(right).Normalize()
	return Basis{Direction: dir, Right: right, Up: up}
}

// Input is everything the camera reads from the input devices in one frame.
type Input struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Ascend   bool
	Descend  bool

	// MouseDX and MouseDY are cursor deltas in pixels since the last frame.
	MouseDX float64
	MouseDY float64
}

// Settings holds the tunables for movement and projection.
type Settings struct {
	MoveSpeed        float64 // units per second
	MouseSensitivity float64 // radians per pixel
	FOV              float64 // vertical field of view, radians
	Near, Far        float64
}

// DefaultSettings matches the 90 degree, 5 units/s setup of the viewer.
func DefaultSettings() Settings {
	return Settings{
		MoveSpeed:        5,
		MouseSensitivity: 1.0 / 500,
		FOV:              math.Pi / 2,
		Near:             0.1,
		Far:              100,
	}
}

// Projection returns the perspective matrix for the given aspect ratio.
func (s Settings) Projection(aspect float64) linalg.Matrix4 {
	return linalg.Perspective(s.FOV, aspect, s.Near, s.Far)
}

// Camera is a position plus a horizontal (yaw) and vertical (pitch) angle.
type Camera struct {
	Position   linalg.Vector3
	Horizontal float64
	Vertical   float64
}

// Basis derives the camera frame.
func (c Camera) Basis() Basis { return DeriveBasis(c.Horizontal, c.Vertical) }

// View returns the look-at matrix for the camera.
func (c Camera) View() linalg.Matrix4 {
	b := c.Basis()
	return linalg.LookAt(c.Position, c.Position.Add(b.Direction), b.Up)
}

// Update applies one frame of input over dt and returns the moved camera.
// Mouse deltas turn the camera first; movement then follows the new frame,
// flattened onto the horizontal plane except for ascend/descend. Basis.Right
// is worldUp x direction, which LookAt renders on the left of the screen, so
// strafing left follows it.
func (c Camera) Update(in Input, dt time.Duration, s Settings) Camera {
	c.Horizontal -= in.MouseDX * s.MouseSensitivity
	c.Vertical -= in.MouseDY * s.MouseSensitivity
	c.Vertical = max(-pitchLimit, min(pitchLimit, c.Vertical))

	b := c.Basis()
	step := dt.Seconds() * s.MoveSpeed
	if in.Forward {
		c.Position.AddAssign(b.Direction.BirdView().Scale(step))
	}
	if in.Backward {
		c.Position.SubAssign(b.Direction.BirdView().Scale(step))
	}
	if in.Left {
		c.Position.AddAssign(b.Right.BirdView().Scale(step))
	}
	if in.Right {
		c.Position.SubAssign(b.Right.BirdView().Scale(step))
	}
	if in.Ascend {
		c.Position.Y += step
	}
	if in.Descend {
		c.Position.Y -= step
	}
	return c
}
