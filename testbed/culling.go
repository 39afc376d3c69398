package testbed

import (
	"fmt"

	"github.com/spaghettifunk/gamemath/engine/components"
	"github.com/spaghettifunk/gamemath/engine/core"
	"github.com/spaghettifunk/gamemath/engine/math"
)

// CullingScene is a camera orbiting in place over a field of random boxes.
type CullingScene struct {
	Camera *components.Camera
	Boxes  []math.BoundingBox

	projection math.Matrix
	frustum    *math.BoundingFrustum
}

// NewCullingScene scatters count boxes inside a cube of the given extent
// around the origin. The camera sits at the origin.
func NewCullingScene(rnd *math.Random, count int, extent float32) (*CullingScene, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: box count %d", core.ErrOutOfRange, count)
	}
	camera := components.NewCamera()
	camera.AspectRatio = 1
	camera.NearPlane = 0.5
	camera.FarPlane = extent

	projection, err := camera.Projection()
	if err != nil {
		return nil, err
	}

	boxes := make([]math.BoundingBox, count)
	for i := range boxes {
		center := rnd.Vector3(-extent, extent)
		half := math.Vector3Splat(rnd.FloatInRange(0.1, 2))
		boxes[i] = math.BoundingBox{Min: center.Sub(half), Max: center.Add(half)}
	}

	return &CullingScene{
		Camera:     camera,
		Boxes:      boxes,
		projection: projection,
		frustum:    math.NewBoundingFrustum(camera.View().Mul(projection)),
	}, nil
}

// Refresh rebuilds the frustum after the camera moved.
func (s *CullingScene) Refresh() {
	s.frustum.SetMatrix(s.Camera.View().Mul(s.projection))
}

// Visible counts the boxes that are not disjoint from the view volume.
func (s *CullingScene) Visible() int {
	visible := 0
	for i := range s.Boxes {
		if s.frustum.ContainsBox(s.Boxes[i]) != math.Disjoint {
			visible++
		}
	}
	return visible
}
