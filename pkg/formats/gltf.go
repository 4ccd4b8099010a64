package formats

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Faultbox/lumenlab/pkg/math"
)

// ErrUnsupportedPrimitive is returned for non-triangle glTF primitives.
var ErrUnsupportedPrimitive = errors.New("unsupported glTF primitive mode")

// ReadGLTF opens a .gltf or .glb file and flattens every triangle primitive
// of every mesh into a single Mesh. Node transforms are not applied; the
// scene places models itself.
func ReadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}

	mesh := &Mesh{Name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))}
	if len(doc.Meshes) == 1 && doc.Meshes[0].Name != "" {
		mesh.Name = doc.Meshes[0].Name
	}

	for mi, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			if err := appendPrimitive(mesh, doc, prim); err != nil {
				return nil, fmt.Errorf("gltf mesh %d prim %d: %w", mi, pi, err)
			}
		}
	}

	if err := mesh.Validate(); err != nil {
		return nil, err
	}
	return mesh, nil
}

func appendPrimitive(mesh *Mesh, doc *gltf.Document, prim *gltf.Primitive) error {
	if prim.Mode != gltf.PrimitiveTriangles {
		return fmt.Errorf("%w: %v", ErrUnsupportedPrimitive, prim.Mode)
	}

	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return fmt.Errorf("no POSITION attribute")
	}
	posAcr, err := accessor(doc, posIdx)
	if err != nil {
		return fmt.Errorf("positions: %w", err)
	}
	positions, err := modeler.ReadPosition(doc, posAcr, nil)
	if err != nil {
		return fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	if idx, ok := prim.Attributes["NORMAL"]; ok {
		acr, err := accessor(doc, idx)
		if err != nil {
			return fmt.Errorf("normals: %w", err)
		}
		if normals, err = modeler.ReadNormal(doc, acr, nil); err != nil {
			return fmt.Errorf("normals: %w", err)
		}
	}
	var uvs [][2]float32
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		acr, err := accessor(doc, idx)
		if err != nil {
			return fmt.Errorf("texcoords: %w", err)
		}
		if uvs, err = modeler.ReadTextureCoord(doc, acr, nil); err != nil {
			return fmt.Errorf("texcoords: %w", err)
		}
	}

	var indices []uint32
	if prim.Indices != nil {
		acr, err := accessor(doc, *prim.Indices)
		if err != nil {
			return fmt.Errorf("indices: %w", err)
		}
		if indices, err = modeler.ReadIndices(doc, acr, nil); err != nil {
			return fmt.Errorf("indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	// Attribute pools share one index space per primitive.
	base := len(mesh.Positions)
	hasNormals := len(normals) == len(positions)
	hasUVs := len(uvs) == len(positions)
	nBase, tBase := len(mesh.Normals), len(mesh.TexCoords)

	for _, p := range positions {
		mesh.Positions = append(mesh.Positions, math.FromArray(p))
	}
	if hasNormals {
		for _, n := range normals {
			mesh.Normals = append(mesh.Normals, math.FromArray(n))
		}
	}
	if hasUVs {
		for _, uv := range uvs {
			mesh.TexCoords = append(mesh.TexCoords, math.Vec2{X: uv[0], Y: uv[1]})
		}
	}

	for i := 0; i+2 < len(indices); i += 3 {
		f := Face{VT: [3]int{-1, -1, -1}, VN: [3]int{-1, -1, -1}}
		for c := 0; c < 3; c++ {
			idx := int(indices[i+c])
			if idx >= len(positions) {
				return fmt.Errorf("%w: %d", ErrIndexOutOfRange, idx)
			}
			f.V[c] = base + idx
			if hasNormals {
				f.VN[c] = nBase + idx
			}
			if hasUVs {
				f.VT[c] = tBase + idx
			}
		}
		mesh.Faces = append(mesh.Faces, f)
	}
	return nil
}

// accessor returns doc.Accessors[idx] after checking that it and the
// buffer it reads from exist.
func accessor(doc *gltf.Document, idx int) (*gltf.Accessor, error) {
	if idx < 0 || idx >= len(doc.Accessors) {
		return nil, fmt.Errorf("%w: accessor %d of %d", ErrIndexOutOfRange, idx, len(doc.Accessors))
	}
	acr := doc.Accessors[idx]
	if acr.BufferView == nil {
		return acr, nil
	}
	bv := *acr.BufferView
	if bv < 0 || bv >= len(doc.BufferViews) {
		return nil, fmt.Errorf("%w: buffer view %d of %d", ErrIndexOutOfRange, bv, len(doc.BufferViews))
	}
	if b := doc.BufferViews[bv].Buffer; b < 0 || b >= len(doc.Buffers) {
		return nil, fmt.Errorf("%w: buffer %d of %d", ErrIndexOutOfRange, b, len(doc.Buffers))
	}
	return acr, nil
}
