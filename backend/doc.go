// Package backend provides a registry of named drawing targets.
//
// A target is a gg3d.Backend that owns its output and knows how to
// serialize it. Target packages register themselves from init(), so
// importing them for side effects is enough:
//
//	import (
//		_ "github.com/gogpu/gg3d/backend/raster"
//		_ "github.com/gogpu/gg3d/backend/svg"
//	)
//
// # Target Selection
//
// Use New to request a target by name, or Default to get the most
// preferred registered one:
//
//	t, err := backend.New("svg", 800, 600)
//	if err != nil {
//		log.Fatal(err)
//	}
//	ctx := gg3d.NewContext3D(800, 600, gg3d.WithBackend(t))
//	// ... render ...
//	_ = t.Encode(os.Stdout)
//
// Registered names:
//
//	png     backend/raster   anti-aliased fill via golang.org/x/image/vector
//	canvas  backend/canvas   path fill and stroke via draw2d
//	svg     backend/svg      vector output via svgo
package backend
