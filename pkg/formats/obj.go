package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Faultbox/lumenlab/pkg/encoding"
	"github.com/Faultbox/lumenlab/pkg/math"
)

// OBJ format errors.
var (
	ErrInvalidOBJNumber = errors.New("invalid OBJ number")
	ErrInvalidOBJFace   = errors.New("invalid OBJ face")
)

// ParseOBJ parses Wavefront OBJ text into a Mesh.
// Polygons are fan-triangulated; negative indices are resolved relative to
// the end of the pool, as the format allows. Material libraries are ignored.
// Text that is not UTF-8 is read as Windows-1252.
func ParseOBJ(data []byte) (*Mesh, error) {
	mesh := &Mesh{}

	scanner := bufio.NewScanner(bytes.NewReader(encoding.ToUTF8(data)))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "o":
			if mesh.Name == "" && len(fields) > 1 {
				mesh.Name = strings.Join(fields[1:], " ")
			}
		case "v", "vn":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if fields[0] == "v" {
				mesh.Positions = append(mesh.Positions, v)
			} else {
				mesh.Normals = append(mesh.Normals, v)
			}
		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: %w: vt needs 2 components", lineNo, ErrInvalidOBJNumber)
			}
			u, err := parseFloat(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			v, err := parseFloat(fields[2])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			mesh.TexCoords = append(mesh.TexCoords, math.Vec2{X: u, Y: v})
		case "f":
			faces, err := parseFace(fields[1:], mesh)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			mesh.Faces = append(mesh.Faces, faces...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading OBJ: %w", err)
	}

	if err := mesh.Validate(); err != nil {
		return nil, err
	}
	return mesh, nil
}

// ParseOBJFile reads and parses an OBJ file. The mesh is named after the
// file when the data carries no object name.
func ParseOBJFile(path string) (*Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading OBJ file: %w", err)
	}
	mesh, err := ParseOBJ(data)
	if err != nil {
		return nil, err
	}
	if mesh.Name == "" {
		mesh.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return mesh, nil
}

func parseFloat(s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOBJNumber, s)
	}
	return float32(f), nil
}

func parseVec3(fields []string) (math.Vec3, error) {
	if len(fields) < 3 {
		return math.Vec3{}, fmt.Errorf("%w: need 3 components, got %d", ErrInvalidOBJNumber, len(fields))
	}
	var out [3]float32
	for i := 0; i < 3; i++ {
		f, err := parseFloat(fields[i])
		if err != nil {
			return math.Vec3{}, err
		}
		out[i] = f
	}
	return math.FromArray(out), nil
}

// parseFace turns one "f" statement into a triangle fan.
func parseFace(fields []string, mesh *Mesh) ([]Face, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("%w: need at least 3 vertices, got %d", ErrInvalidOBJFace, len(fields))
	}

	type corner struct{ v, vt, vn int }
	corners := make([]corner, len(fields))
	for i, field := range fields {
		parts := strings.Split(field, "/")
		if len(parts) > 3 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidOBJFace, field)
		}
		c := corner{v: -1, vt: -1, vn: -1}
		var err error
		if c.v, err = resolveIndex(parts[0], len(mesh.Positions)); err != nil {
			return nil, err
		}
		if c.v < 0 {
			return nil, fmt.Errorf("%w: missing position in %q", ErrInvalidOBJFace, field)
		}
		if len(parts) > 1 {
			if c.vt, err = resolveIndex(parts[1], len(mesh.TexCoords)); err != nil {
				return nil, err
			}
		}
		if len(parts) > 2 {
			if c.vn, err = resolveIndex(parts[2], len(mesh.Normals)); err != nil {
				return nil, err
			}
		}
		corners[i] = c
	}

	faces := make([]Face, 0, len(corners)-2)
	for i := 1; i+1 < len(corners); i++ {
		a, b, c := corners[0], corners[i], corners[i+1]
		faces = append(faces, Face{
			V:  [3]int{a.v, b.v, c.v},
			VT: [3]int{a.vt, b.vt, c.vt},
			VN: [3]int{a.vn, b.vn, c.vn},
		})
	}
	return faces, nil
}

// resolveIndex converts a 1-based (or negative, relative) OBJ index to a
// 0-based one. An empty string yields -1.
func resolveIndex(s string, poolSize int) (int, error) {
	if s == "" {
		return -1, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: index %q", ErrInvalidOBJFace, s)
	}
	switch {
	case n > 0 && n <= poolSize:
		return n - 1, nil
	case n < 0 && -n <= poolSize:
		return poolSize + n, nil
	default:
		return 0, fmt.Errorf("%w: %d (pool size %d)", ErrIndexOutOfRange, n, poolSize)
	}
}
