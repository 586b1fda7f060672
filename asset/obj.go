package asset

import (
	"github.com/pkg/errors"
	"github.com/udhos/gwob"
)

// LoadOBJ parses a Wavefront OBJ file into de-interleaved mesh data. Vertices
// without normals get a zero normal; colors default to opaque white.
func LoadOBJ(path string) (*MeshData, error) {
	obj, err := gwob.NewObjFromFile(path, &gwob.ObjParserOptions{})
	if err != nil {
		return nil, errors.Wrapf(err, "parse obj %q", path)
	}

	stride := obj.StrideSize / 4
	posOff := obj.StrideOffsetPosition / 4
	normOff := obj.StrideOffsetNormal / 4

	count := len(obj.Coord) / stride
	mesh := &MeshData{
		Positions: make([]float32, 0, count*3),
		Normals:   make([]float32, 0, count*3),
		Colors:    make([]float32, 0, count*4),
		Indices:   make([]uint32, 0, len(obj.Indices)),
	}

	for v := 0; v < count; v++ {
		base := v * stride
		mesh.Positions = append(mesh.Positions,
			obj.Coord[base+posOff],
			obj.Coord[base+posOff+1],
			obj.Coord[base+posOff+2])
		if obj.NormCoordFound {
			mesh.Normals = append(mesh.Normals,
				obj.Coord[base+normOff],
				obj.Coord[base+normOff+1],
				obj.Coord[base+normOff+2])
		} else {
			mesh.Normals = append(mesh.Normals, 0, 0, 0)
		}
		mesh.Colors = append(mesh.Colors, 1, 1, 1, 1)
	}

	for _, i := range obj.Indices {
		mesh.Indices = append(mesh.Indices, uint32(i))
	}

	return mesh, nil
}
