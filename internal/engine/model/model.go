package model

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/lumenlab/pkg/formats"
	"github.com/Faultbox/lumenlab/pkg/math"
)

// Model is a renderable triangle mesh.
//
// Geometry is fixed once built. Material, light vector and winding are set
// only by the scene's model registry; everything else treats a Model as
// read-only.
type Model struct {
	Name         string
	Vertices     []Vertex
	Faces        []Face
	HasTexCoords bool

	material    Material
	lightVector math.Vec3
	clockwise   bool
}

// vertexKey identifies a unique position/texcoord/normal combination.
type vertexKey struct{ v, vt, vn int }

// FromMesh builds a model from parsed geometry. Corners sharing the same
// attribute triple share a vertex. Positions without normals get the
// area-weighted average of their adjacent face normals.
func FromMesh(mesh *formats.Mesh) *Model {
	m := &Model{Name: mesh.Name, HasTexCoords: len(mesh.TexCoords) > 0}

	index := make(map[vertexKey]int)
	smooth := make([]math.Vec3, len(mesh.Positions))
	needsSmooth := make(map[int][]int) // position index -> vertices without a normal

	for _, f := range mesh.Faces {
		p0, p1, p2 := mesh.Positions[f.V[0]], mesh.Positions[f.V[1]], mesh.Positions[f.V[2]]
		faceNormal := p1.Sub(p0).Cross(p2.Sub(p0))
		for c := 0; c < 3; c++ {
			smooth[f.V[c]] = smooth[f.V[c]].Add(faceNormal)
		}

		var face Face
		for c := 0; c < 3; c++ {
			key := vertexKey{f.V[c], f.VT[c], f.VN[c]}
			idx, ok := index[key]
			if !ok {
				idx = len(m.Vertices)
				index[key] = idx
				v := Vertex{Position: mesh.Positions[key.v], World: mesh.Positions[key.v]}
				if key.vt >= 0 {
					v.TexCoord = mesh.TexCoords[key.vt]
				} else {
					m.HasTexCoords = false
				}
				if key.vn >= 0 {
					v.Normal = mesh.Normals[key.vn].Normalize()
				} else {
					needsSmooth[key.v] = append(needsSmooth[key.v], idx)
				}
				m.Vertices = append(m.Vertices, v)
			}
			face.Indices[c] = idx
		}
		m.Faces = append(m.Faces, face)
	}

	for pos, verts := range needsSmooth {
		n := smooth[pos].Normalize()
		for _, idx := range verts {
			m.Vertices[idx].Normal = n
		}
	}
	return m
}

// Material returns the model's current material.
func (m *Model) Material() Material { return m.material }

// SetMaterial replaces the model's material.
func (m *Model) SetMaterial(mat Material) { m.material = mat }

// LightVector returns the light position the model is lit from.
func (m *Model) LightVector() math.Vec3 { return m.lightVector }

// SetLightVector sets the light position the model is lit from.
func (m *Model) SetLightVector(v math.Vec3) { m.lightVector = v }

// Clockwise reports whether front faces wind clockwise.
func (m *Model) Clockwise() bool { return m.clockwise }

// SetClockwise sets the front-face winding order.
func (m *Model) SetClockwise(cw bool) { m.clockwise = cw }

// Corners returns the three vertices of a face.
func (m *Model) Corners(f Face) [3]Vertex {
	return [3]Vertex{m.Vertices[f.Indices[0]], m.Vertices[f.Indices[1]], m.Vertices[f.Indices[2]]}
}

// FaceNormal returns the unit world-space normal of f, honouring winding.
func (m *Model) FaceNormal(f Face) math.Vec3 {
	c := m.Corners(f)
	n := c[1].World.Sub(c[0].World).Cross(c[2].World.Sub(c[0].World)).Normalize()
	if m.clockwise {
		return n.Scale(-1)
	}
	return n
}

// Bounds returns the box around the vertices' current positions.
func (m *Model) Bounds() Bounds {
	if len(m.Vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.Vertices[0].Position, Max: m.Vertices[0].Position}
	for _, v := range m.Vertices[1:] {
		p := v.Position
		b.Min = math.V3(math32.Min(b.Min.X, p.X), math32.Min(b.Min.Y, p.Y), math32.Min(b.Min.Z, p.Z))
		b.Max = math.V3(math32.Max(b.Max.X, p.X), math32.Max(b.Max.Y, p.Y), math32.Max(b.Max.Z, p.Z))
	}
	return b
}

// BuildTextureCoords assigns texture coordinates to models that arrived
// without any, by projecting each vertex onto a sphere around the centre.
func (m *Model) BuildTextureCoords() {
	if m.HasTexCoords || len(m.Vertices) == 0 {
		return
	}
	center := m.Bounds().Center()
	for i := range m.Vertices {
		dir := m.Vertices[i].Position.Sub(center).Normalize()
		m.Vertices[i].TexCoord = math.Vec2{
			X: 0.5 + math32.Atan2(dir.Z, dir.X)/(2*math32.Pi),
			Y: 0.5 + math32.Asin(dir.Y)/math32.Pi,
		}
	}
	m.HasTexCoords = true
}

// MultiplyAll returns a copy with every vertex transformed by mat.
// Positions and world positions take the full transform; normals take the
// linear part and are renormalised.
func (m *Model) MultiplyAll(mat math.Mat4) *Model {
	out := m.Clone()
	for i, v := range out.Vertices {
		out.Vertices[i].Position = mat.TransformPoint(v.Position)
		out.Vertices[i].World = mat.TransformPoint(v.World)
		out.Vertices[i].Normal = mat.TransformDirection(v.Normal).Normalize()
	}
	return out
}

// Clone returns a deep copy of the geometry. The texture is shared, since
// textures are immutable.
func (m *Model) Clone() *Model {
	out := *m
	out.Vertices = append([]Vertex(nil), m.Vertices...)
	out.Faces = append([]Face(nil), m.Faces...)
	return &out
}
