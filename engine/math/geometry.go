package math

import (
	"fmt"

	"github.com/spaghettifunk/gamemath/engine/core"
)

// Vertex is a single mesh vertex.
type Vertex struct {
	Position Vector3
	Normal   Vector3
	Texcoord Vector2
	Color    Vector4
	Tangent  Vector3
}

// ApproxEqual compares every attribute within Epsilon.
func (v Vertex) ApproxEqual(other Vertex) bool {
	return v.Position.ApproxEqual(other.Position, Epsilon) &&
		v.Normal.ApproxEqual(other.Normal, Epsilon) &&
		v.Texcoord.ApproxEqual(other.Texcoord, Epsilon) &&
		v.Color.ApproxEqual(other.Color, Epsilon) &&
		v.Tangent.ApproxEqual(other.Tangent, Epsilon)
}

func checkTriangles(vertexCount int, indices []uint32) error {
	if len(indices)%3 != 0 {
		return fmt.Errorf("%w: index count %d is not a multiple of 3", core.ErrOutOfRange, len(indices))
	}
	for i, index := range indices {
		if int(index) >= vertexCount {
			return fmt.Errorf("%w: index %d at %d exceeds vertex count %d", core.ErrOutOfRange, index, i, vertexCount)
		}
	}
	return nil
}

// GenerateNormals assigns each triangle's face normal to its three
// vertices. Shared vertices keep the normal of the last triangle.
func GenerateNormals(vertices []Vertex, indices []uint32) error {
	if err := checkTriangles(len(vertices), indices); err != nil {
		return err
	}
	for i := 0; i < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]

		edge1 := vertices[i1].Position.Sub(vertices[i0].Position)
		edge2 := vertices[i2].Position.Sub(vertices[i0].Position)
		normal := edge1.Cross(edge2).Normalize()

		vertices[i0].Normal = normal
		vertices[i1].Normal = normal
		vertices[i2].Normal = normal
	}
	return nil
}

// GenerateTangents derives per-triangle tangents from positions and
// texture coordinates. Tangents point along increasing U, mirrored UVs
// included.
func GenerateTangents(vertices []Vertex, indices []uint32) error {
	if err := checkTriangles(len(vertices), indices); err != nil {
		return err
	}
	for i := 0; i < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]

		edge1 := vertices[i1].Position.Sub(vertices[i0].Position)
		edge2 := vertices[i2].Position.Sub(vertices[i0].Position)

		delta1 := vertices[i1].Texcoord.Sub(vertices[i0].Texcoord)
		delta2 := vertices[i2].Texcoord.Sub(vertices[i0].Texcoord)

		fc := 1 / (delta1.X*delta2.Y - delta2.X*delta1.Y)
		tangent := edge1.MulScalar(delta2.Y).Sub(edge2.MulScalar(delta1.Y)).MulScalar(fc).Normalize()

		vertices[i0].Tangent = tangent
		vertices[i1].Tangent = tangent
		vertices[i2].Tangent = tangent
	}
	return nil
}

// DeduplicateVertices removes exact duplicate vertices and rewrites
// indices in place to point at the surviving copies.
func DeduplicateVertices(vertices []Vertex, indices []uint32) ([]Vertex, error) {
	if err := checkTriangles(len(vertices), indices); err != nil {
		return nil, err
	}

	unique := make([]Vertex, 0, len(vertices))
	remap := make([]uint32, len(vertices))
	seen := make(map[Vertex]uint32, len(vertices))

	for i, v := range vertices {
		if at, ok := seen[v]; ok {
			remap[i] = at
			continue
		}
		at := uint32(len(unique))
		seen[v] = at
		remap[i] = at
		unique = append(unique, v)
	}
	for i, index := range indices {
		indices[i] = remap[index]
	}

	core.LogDebug("deduplicate vertices: removed %d vertices, orig/now %d/%d", len(vertices)-len(unique), len(vertices), len(unique))
	return unique, nil
}
