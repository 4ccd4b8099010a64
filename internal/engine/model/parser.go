package model

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Faultbox/lumenlab/pkg/formats"
)

// ErrUnsupportedFormat is returned for files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported model format")

// ParseError reports a model file that could not be turned into a Model.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parser reads model files, choosing the format from the extension.
type Parser struct{}

// ParseFile parses an .obj, .gltf or .glb file into a Model.
func (Parser) ParseFile(path string) (*Model, error) {
	var (
		mesh *formats.Mesh
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		mesh, err = formats.ParseOBJFile(path)
	case ".gltf", ".glb":
		mesh, err = formats.ReadGLTF(path)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return FromMesh(mesh), nil
}
