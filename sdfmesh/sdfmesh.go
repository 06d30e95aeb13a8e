// Package sdfmesh tessellates signed distance fields from
// github.com/deadsy/sdfx into gg3d meshes.
//
// Marching cubes produces many small triangles; every one becomes a face
// in the painter's sort, so keep the cell count modest:
//
//	s, _ := sdf.Sphere3D(1)
//	mesh, err := sdfmesh.New(s, sdfmesh.DefaultCells)
//	if err != nil {
//		return err
//	}
//	shape := gg3d.NewShape(mesh, gg3d.WithFill(gg3d.Red))
package sdfmesh

import (
	"errors"
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/gogpu/gg3d"
)

// DefaultCells is a cell count along the longest bounding box axis that
// keeps simple solids under a few thousand faces.
const DefaultCells = 32

// Errors returned by New.
var (
	ErrNilSDF       = errors.New("sdfmesh: nil SDF")
	ErrInvalidCells = errors.New("sdfmesh: cell count must be positive")
	ErrEmptyMesh    = errors.New("sdfmesh: surface produced no triangles")
)

// New runs uniform marching cubes over s with the given number of cells
// along the longest bounding box axis. Faces carry the triangle normals
// computed by sdfx.
func New(s sdf.SDF3, cells int) (*gg3d.Mesh, error) {
	if s == nil {
		return nil, ErrNilSDF
	}
	if cells <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCells, cells)
	}

	renderer := render.NewMarchingCubesUniform(cells)
	triangles := render.ToTriangles(s, renderer)
	if len(triangles) == 0 {
		return nil, ErrEmptyMesh
	}

	faces := make([]gg3d.Face, 0, len(triangles))
	for _, tri := range triangles {
		n := tri.Normal()
		faces = append(faces, gg3d.Face{
			Vertices: []gg3d.Vec3{vec(tri[0]), vec(tri[1]), vec(tri[2])},
			Normal:   vec(n),
		})
	}

	gg3d.Logger().Debug("sdfmesh: tessellated", "cells", cells, "faces", len(faces))
	return &gg3d.Mesh{Faces: faces}, nil
}

func vec(v v3.Vec) gg3d.Vec3 {
	return gg3d.V3(v.X, v.Y, v.Z)
}
