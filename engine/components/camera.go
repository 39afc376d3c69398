package components

import (
	"github.com/spaghettifunk/gamemath/engine/math"
)

// pitchLimit is 89 degrees in radians.
const pitchLimit float32 = 1.55334306

// Camera is a free-look camera described by a position and Euler angles
// (pitch around X, yaw around Y, roll around Z). The view matrix is
// rebuilt lazily after any change.
type Camera struct {
	position      math.Vector3
	eulerRotation math.Vector3
	isDirty       bool
	world         math.Matrix
	view          math.Matrix

	FieldOfView float32
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32
}

func NewCamera() *Camera {
	camera := &Camera{}
	camera.Reset()
	return camera
}

// Reset puts the camera at the origin looking down -Z with a 45 degree
// perspective lens.
func (c *Camera) Reset() {
	c.eulerRotation = math.Vector3Zero()
	c.position = math.Vector3Zero()
	c.isDirty = false
	c.world = math.MatrixIdentity()
	c.view = math.MatrixIdentity()

	c.FieldOfView = math.PiOver4
	c.AspectRatio = 16.0 / 9.0
	c.NearPlane = 0.1
	c.FarPlane = 1000
}

func (c *Camera) Position() math.Vector3 {
	return c.position
}

func (c *Camera) SetPosition(position math.Vector3) {
	c.position = position
	c.isDirty = true
}

func (c *Camera) EulerRotation() math.Vector3 {
	return c.eulerRotation
}

func (c *Camera) SetEulerRotation(rotation math.Vector3) {
	c.eulerRotation = rotation
	c.eulerRotation.X = math.Clamp(c.eulerRotation.X, -pitchLimit, pitchLimit)
	c.isDirty = true
}

func (c *Camera) rebuild() {
	if !c.isDirty {
		return
	}
	rotation := math.CreateFromYawPitchRoll(c.eulerRotation.Y, c.eulerRotation.X, c.eulerRotation.Z)
	c.world = rotation.Mul(math.CreateTranslation(c.position))
	// A rotation followed by a translation is always invertible.
	c.view, _ = c.world.Invert()
	c.isDirty = false
}

// World returns the camera's own transform, the inverse of View.
func (c *Camera) World() math.Matrix {
	c.rebuild()
	return c.world
}

func (c *Camera) View() math.Matrix {
	c.rebuild()
	return c.view
}

// Projection builds a perspective projection from the lens fields.
func (c *Camera) Projection() (math.Matrix, error) {
	return math.CreatePerspectiveFieldOfView(c.FieldOfView, c.AspectRatio, c.NearPlane, c.FarPlane)
}

// Frustum returns the view volume of the camera in world space.
func (c *Camera) Frustum() (*math.BoundingFrustum, error) {
	projection, err := c.Projection()
	if err != nil {
		return nil, err
	}
	return math.NewBoundingFrustum(c.View().Mul(projection)), nil
}

func (c *Camera) Forward() math.Vector3 {
	return c.World().Forward()
}

func (c *Camera) Backward() math.Vector3 {
	return c.World().Backward()
}

func (c *Camera) Left() math.Vector3 {
	return c.World().Left()
}

func (c *Camera) Right() math.Vector3 {
	return c.World().Right()
}

func (c *Camera) move(direction math.Vector3, amount float32) {
	c.position = c.position.Add(direction.MulScalar(amount))
	c.isDirty = true
}

func (c *Camera) MoveForward(amount float32) {
	c.move(c.Forward(), amount)
}

func (c *Camera) MoveBackward(amount float32) {
	c.move(c.Backward(), amount)
}

func (c *Camera) MoveLeft(amount float32) {
	c.move(c.Left(), amount)
}

func (c *Camera) MoveRight(amount float32) {
	c.move(c.Right(), amount)
}

// MoveUp and MoveDown travel along world Y regardless of orientation.
func (c *Camera) MoveUp(amount float32) {
	c.move(math.Vector3Up(), amount)
}

func (c *Camera) MoveDown(amount float32) {
	c.move(math.Vector3Down(), amount)
}

func (c *Camera) Yaw(amount float32) {
	c.eulerRotation.Y += amount
	c.isDirty = true
}

func (c *Camera) Pitch(amount float32) {
	c.eulerRotation.X += amount

	// Clamp to avoid gimbal lock.
	c.eulerRotation.X = math.Clamp(c.eulerRotation.X, -pitchLimit, pitchLimit)
	c.isDirty = true
}
