package gg3d

// Group renders its children inside a nested frame bracket. When
// GlobalSort is set, the group activates the context's face buffer so
// that its children (and anything else rendered in the same outermost
// frame) are painted in one back-to-front order.
type Group struct {
	Children   []Renderable
	GlobalSort bool
}

// NewGroup creates a group of children.
func NewGroup(children ...Renderable) *Group {
	return &Group{Children: children}
}

// Add appends children.
func (g *Group) Add(children ...Renderable) {
	g.Children = append(g.Children, children...)
}

// Render draws every child. Brackets opened by the group nest inside any
// frame the caller already opened.
func (g *Group) Render(ctx *Context3D) {
	if ctx == nil {
		return
	}
	ctx.MarkRenderStart()
	defer ctx.MarkRenderEnd()

	if g.GlobalSort {
		ctx.EnableGlobalSort()
	}
	for _, child := range g.Children {
		if child != nil {
			child.Render(ctx)
		}
	}
}

// BoundingBox returns the union of the children's screen bounds.
func (g *Group) BoundingBox(ctx *Context3D) Rect {
	var pts []Point
	for _, child := range g.Children {
		b, ok := child.(interface{ BoundingBox(*Context3D) Rect })
		if !ok {
			continue
		}
		if r := b.BoundingBox(ctx); !r.Empty() {
			pts = append(pts, r.Min, r.Max)
		}
	}
	return boundsOf(pts)
}
