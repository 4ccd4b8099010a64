package formats

import (
	"errors"

	"github.com/Faultbox/lumenlab/pkg/math"
)

// Mesh errors shared by every parser.
var (
	ErrEmptyMesh       = errors.New("mesh has no geometry")
	ErrIndexOutOfRange = errors.New("face index out of range")
)

// Face is a triangle referencing a Mesh's attribute pools.
// Indices are 0-based; -1 marks an absent attribute.
type Face struct {
	V  [3]int
	VT [3]int
	VN [3]int
}

// Mesh is format-neutral indexed triangle geometry.
type Mesh struct {
	Name      string
	Positions []math.Vec3
	Normals   []math.Vec3
	TexCoords []math.Vec2
	Faces     []Face
}

// Validate checks that the mesh has geometry and every face index resolves.
func (m *Mesh) Validate() error {
	if len(m.Positions) == 0 || len(m.Faces) == 0 {
		return ErrEmptyMesh
	}
	for _, f := range m.Faces {
		for i := 0; i < 3; i++ {
			if f.V[i] < 0 || f.V[i] >= len(m.Positions) {
				return ErrIndexOutOfRange
			}
			if f.VT[i] >= len(m.TexCoords) || f.VN[i] >= len(m.Normals) {
				return ErrIndexOutOfRange
			}
		}
	}
	return nil
}
