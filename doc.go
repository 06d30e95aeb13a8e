// Package gg3d is a CPU-side 3D geometry and visibility pipeline that
// paints flat-shaded solids through a 2D drawing backend.
//
// # Overview
//
// Solids are described by a [FaceSource] (Box, Cylinder, Sphere, ...)
// and placed in the world by a [Shape]. A [Camera] owns the viewpoint and
// pushes view and projection matrices into a [Context3D], the render
// target. Shapes transform, shade and project their faces through the
// context and hand the resulting polygons to a [Backend].
//
// # Quick Start
//
//	out := raster.NewImage(800, 600)
//	ctx := gg3d.NewContext3D(800, 600, gg3d.WithBackend(out))
//	cam := gg3d.NewCamera(ctx, gg3d.WithPosition(gg3d.V3(3, 3, 6)))
//	defer cam.Dispose()
//
//	cube := gg3d.NewShape(gg3d.Cube(2), gg3d.WithFill(gg3d.RGB(0.2, 0.5, 0.9)))
//	ctx.RenderFrame(cube)
//	_ = out.SavePNG("cube.png")
//
// # Painting Order
//
// Without further setup every shape sorts its own faces back to front and
// paints them immediately, which is correct for a single convex shape.
// When several shapes may overlap, enable global sorting
// ([WithGlobalSort], [Context3D.EnableGlobalSort] or [Group.GlobalSort]):
// shapes then enqueue their faces into the context's face buffer and the
// outermost [Context3D.MarkRenderEnd] sorts all of them once, farthest
// first (the painter's algorithm).
//
// # Coordinate System
//
//   - World space is right-handed with +Y up.
//   - Matrices are column-major, see [Matrix4].
//   - Screen space has its origin at the top-left, Y grows downward.
//
// There is no clipping against the view frustum and no depth buffer.
// Points behind the camera still project.
//
// # Concurrency
//
// The pipeline is single-threaded and frame-driven. A Context3D and the
// cameras and shapes bound to it must be used from one goroutine.
package gg3d
