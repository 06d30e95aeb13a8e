package gg3d

import "testing"

// bracketProbe records the render depth and buffer state it observes.
type bracketProbe struct {
	depths    []int
	buffering []bool
}

func (p *bracketProbe) Render(ctx *Context3D) {
	p.depths = append(p.depths, ctx.RenderDepth())
	p.buffering = append(p.buffering, ctx.GlobalSortActive())
}

func TestGroupNestsBrackets(t *testing.T) {
	ctx := NewContext3D(100, 100)
	probe := &bracketProbe{}
	inner := NewGroup(probe)
	outer := NewGroup(inner, probe)

	ctx.RenderFrame(outer)

	if want := []int{3, 2}; probe.depths[0] != want[0] || probe.depths[1] != want[1] {
		t.Errorf("observed depths %v, want %v", probe.depths, want)
	}
	if ctx.RenderDepth() != 0 {
		t.Errorf("RenderDepth() = %d after frame, want 0", ctx.RenderDepth())
	}
}

func TestGroupGlobalSortPaintsOnceAtOutermostEnd(t *testing.T) {
	ctx, rec := newTestScene()
	near := NewShape(Cube(1), WithFill(Red))
	far := NewShape(Cube(1), WithFill(Blue), WithShapePosition(V3(0, 0, -6)))

	inner := NewGroup(far)
	g := &Group{Children: []Renderable{near, inner}, GlobalSort: true}

	ctx.MarkRenderStart()
	g.Render(ctx)
	if len(rec.polygons) != 0 {
		t.Fatal("group painted before the outermost bracket closed")
	}
	ctx.MarkRenderEnd()

	if len(rec.polygons) != 12 {
		t.Fatalf("painted %d polygons, want 12", len(rec.polygons))
	}
	for i := 0; i < 6; i++ {
		if rec.polygons[i].style.Fill.R != 0 {
			t.Fatalf("polygon %d: near shape painted before far shape", i)
		}
	}
}

func TestGroupWithoutGlobalSortPaintsPerShape(t *testing.T) {
	ctx, rec := newTestScene()
	probe := &bracketProbe{}
	g := NewGroup(NewShape(Cube(1)), probe)

	ctx.RenderFrame(g)

	if len(rec.polygons) != 6 {
		t.Errorf("painted %d polygons, want 6", len(rec.polygons))
	}
	if probe.buffering[0] {
		t.Error("face buffer active without a global sort request")
	}
}

func TestGroupBoundingBox(t *testing.T) {
	ctx, _ := newTestScene()
	a := NewShape(Cube(1), WithShapePosition(V3(-2, 0, 0)))
	b := NewShape(Cube(1), WithShapePosition(V3(2, 0, 0)))
	g := NewGroup(a, b, &bracketProbe{})

	r := g.BoundingBox(ctx)
	ra, rb := a.BoundingBox(ctx), b.BoundingBox(ctx)
	if r.Min.X != ra.Min.X || r.Max.X != rb.Max.X {
		t.Errorf("group bounds %+v do not span children %+v and %+v", r, ra, rb)
	}
	if !NewGroup().BoundingBox(ctx).Empty() {
		t.Error("empty group should have empty bounds")
	}
}
