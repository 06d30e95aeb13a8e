package scenescript

import (
	"fmt"
	"strings"

	"github.com/deadsy/sdfx/sdf"
	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/gogpu/gg3d"
)

// Go values passed between builtins.

type sexpVec3 struct {
	vec gg3d.Vec3
}

func (v *sexpVec3) SexpString(*zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %g %g %g)", v.vec.X, v.vec.Y, v.vec.Z)
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

type sexpColor struct {
	c gg3d.RGBA
}

func (c *sexpColor) SexpString(*zygo.PrintState) string {
	return fmt.Sprintf("(color %q)", c.c.Hex())
}
func (c *sexpColor) Type() *zygo.RegisteredType { return nil }

type sexpItem struct {
	item gg3d.Renderable
	kind string
}

func (s *sexpItem) SexpString(*zygo.PrintState) string {
	return "(" + s.kind + ")"
}
func (s *sexpItem) Type() *zygo.RegisteredType { return nil }

type sexpSolid struct {
	s sdf.SDF3
}

func (s *sexpSolid) SexpString(*zygo.PrintState) string {
	bb := s.s.BoundingBox()
	return fmt.Sprintf("(solid %.3g..%.3g)", bb.Min, bb.Max)
}
func (s *sexpSolid) Type() *zygo.RegisteredType { return nil }

// kwArgs is an argument list split into keyword and positional values.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok || !strings.HasPrefix(str.S, kwPrefix) {
		return "", false
	}
	return str.S[len(kwPrefix):], true
}

func parseArgs(args []zygo.Sexp) kwArgs {
	res := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		name, ok := isKW(args[i])
		if !ok {
			res.positional = append(res.positional, args[i])
			continue
		}
		if i+1 < len(args) {
			res.kw[name] = args[i+1]
			i++
		} else {
			res.kw[name] = zygo.SexpNull
		}
	}
	return res
}

func describe(s zygo.Sexp) string {
	if s == nil {
		return "nil"
	}
	return fmt.Sprintf("%T (%s)", s, s.SexpString(nil))
}

func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %s", describe(s))
}

func toInt(s zygo.Sexp) (int, error) {
	if v, ok := s.(*zygo.SexpInt); ok {
		return int(v.Val), nil
	}
	return 0, fmt.Errorf("expected integer, got %s", describe(s))
}

func toBool(s zygo.Sexp) (bool, error) {
	if v, ok := s.(*zygo.SexpBool); ok {
		return v.Val, nil
	}
	return false, fmt.Errorf("expected true or false, got %s", describe(s))
}

func toVec3(s zygo.Sexp) (gg3d.Vec3, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.vec, nil
	}
	return gg3d.Vec3{}, fmt.Errorf("expected vec3, got %s", describe(s))
}

// toColor accepts (rgb ...) values and "#rrggbb[aa]" strings.
func toColor(s zygo.Sexp) (gg3d.RGBA, error) {
	switch v := s.(type) {
	case *sexpColor:
		return v.c, nil
	case *zygo.SexpStr:
		if c, ok := gg3d.Hex(v.S); ok {
			return c, nil
		}
		return gg3d.RGBA{}, fmt.Errorf("invalid hex color %q", v.S)
	}
	return gg3d.RGBA{}, fmt.Errorf("expected color, got %s", describe(s))
}

func toItem(s zygo.Sexp) (*sexpItem, error) {
	if v, ok := s.(*sexpItem); ok {
		return v, nil
	}
	return nil, fmt.Errorf("expected shape or group, got %s", describe(s))
}

func toSolid(s zygo.Sexp) (sdf.SDF3, error) {
	if v, ok := s.(*sexpSolid); ok {
		return v.s, nil
	}
	return nil, fmt.Errorf("expected solid, got %s", describe(s))
}

// Typed keyword lookups; absent keywords leave the destination untouched.

func (a kwArgs) floatArg(name string, dst *float64) error {
	v, ok := a.kw[name]
	if !ok {
		return nil
	}
	f, err := toFloat64(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = f
	return nil
}

func (a kwArgs) intArg(name string, dst *int) error {
	v, ok := a.kw[name]
	if !ok {
		return nil
	}
	n, err := toInt(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = n
	return nil
}

func (a kwArgs) boolArg(name string, dst *bool) error {
	v, ok := a.kw[name]
	if !ok {
		return nil
	}
	b, err := toBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = b
	return nil
}

func (a kwArgs) vec3Arg(name string, dst *gg3d.Vec3) (bool, error) {
	v, ok := a.kw[name]
	if !ok {
		return false, nil
	}
	vec, err := toVec3(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", name, err)
	}
	*dst = vec
	return true, nil
}

func (a kwArgs) colorArg(name string, dst *gg3d.RGBA) (bool, error) {
	v, ok := a.kw[name]
	if !ok {
		return false, nil
	}
	c, err := toColor(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", name, err)
	}
	*dst = c
	return true, nil
}
