// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitenview

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/gg3d"
	"github.com/gogpu/gg3d/backend/raster"
	"github.com/gogpu/gg3d/controls"
)

// fakeInput is a scripted input source.
type fakeInput struct {
	x, y    int
	pressed map[controls.Button]bool
	wheel   float64
	quit    bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{pressed: make(map[controls.Button]bool)}
}

func (f *fakeInput) CursorPosition() (int, int)       { return f.x, f.y }
func (f *fakeInput) IsPressed(b controls.Button) bool { return f.pressed[b] }
func (f *fakeInput) QuitRequested() bool              { return f.quit }

func (f *fakeInput) WheelSteps() float64 {
	w := f.wheel
	f.wheel = 0
	return w
}

func newTestViewer(t *testing.T, in Input, opts ...Option) *Viewer {
	t.Helper()
	opts = append([]Option{WithSize(64, 48), WithInput(in)}, opts...)
	v, err := New([]gg3d.Renderable{gg3d.NewShape(gg3d.Cube(2), gg3d.WithFill(gg3d.Red))}, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = v.Close() })
	return v
}

func TestNewNilScene(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNilScene) {
		t.Errorf("New(nil) error = %v, want ErrNilScene", err)
	}
	if _, err := New([]gg3d.Renderable{nil}); !errors.Is(err, ErrNilScene) {
		t.Errorf("New([nil]) error = %v, want ErrNilScene", err)
	}
}

func TestRenderFrameOnlyWhenDirty(t *testing.T) {
	v := newTestViewer(t, newFakeInput())

	if !v.RenderFrame() {
		t.Fatal("first frame not rendered")
	}
	if v.RenderFrame() {
		t.Error("clean frame rendered again")
	}
	v.MarkDirty()
	if !v.RenderFrame() {
		t.Error("MarkDirty() did not trigger a render")
	}
	if v.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", v.Frames())
	}

	got := v.Target().Image().RGBAAt(32, 24)
	if got.R < 50 || got.G != 0 {
		t.Errorf("center pixel = %v, want red shading", got)
	}
}

func TestContinuousAlwaysRenders(t *testing.T) {
	v := newTestViewer(t, newFakeInput(), WithContinuous(true))
	v.RenderFrame()
	if !v.RenderFrame() {
		t.Error("continuous viewer skipped a frame")
	}
}

func TestDragOrbitsCamera(t *testing.T) {
	in := newFakeInput()
	v := newTestViewer(t, in)
	v.RenderFrame()
	start := v.Camera().Position()

	in.x, in.y = 10, 10
	in.pressed[controls.ButtonLeft] = true
	if err := v.Update(); err != nil {
		t.Fatal(err)
	}
	in.x = 60
	if err := v.Update(); err != nil {
		t.Fatal(err)
	}
	in.pressed[controls.ButtonLeft] = false
	if err := v.Update(); err != nil {
		t.Fatal(err)
	}

	if v.Camera().Position() == start {
		t.Fatal("camera did not move")
	}
	if v.Controls().Mode() != controls.ModeIdle {
		t.Errorf("Mode() = %v after release", v.Controls().Mode())
	}
	if !v.IsDirty() {
		t.Error("camera motion did not dirty the viewer")
	}
	before := v.Context().View()
	v.RenderFrame()
	if v.Context().View() == before {
		t.Error("view not pushed at frame start")
	}
}

func TestWheelZooms(t *testing.T) {
	in := newFakeInput()
	v := newTestViewer(t, in)
	d := v.Camera().Distance()

	in.wheel = 1
	if err := v.Update(); err != nil {
		t.Fatal(err)
	}
	if got := v.Camera().Distance(); math.Abs(got-d*(1-controls.DefaultZoomSpeed)) > 1e-9 {
		t.Errorf("Distance() = %v after one wheel step from %v", got, d)
	}
}

func TestQuit(t *testing.T) {
	in := newFakeInput()
	v := newTestViewer(t, in)
	in.quit = true
	if err := v.Update(); !errors.Is(err, errTerminate) {
		t.Errorf("Update() error = %v, want termination", err)
	}
}

func TestUpdateCallback(t *testing.T) {
	calls := 0
	boom := errors.New("boom")
	v := newTestViewer(t, newFakeInput(), WithUpdate(func(v *Viewer) error {
		calls++
		if calls == 2 {
			return boom
		}
		return nil
	}))
	if err := v.Update(); err != nil {
		t.Fatal(err)
	}
	if err := v.Update(); !errors.Is(err, boom) {
		t.Errorf("Update() error = %v, want boom", err)
	}
}

func TestLayoutResizes(t *testing.T) {
	v := newTestViewer(t, newFakeInput())
	v.RenderFrame()

	w, h := v.Layout(100, 80)
	if w != 100 || h != 80 {
		t.Fatalf("Layout() = %d,%d", w, h)
	}
	if v.Context().Width() != 100 || v.Context().Height() != 80 {
		t.Errorf("context is %dx%d", v.Context().Width(), v.Context().Height())
	}
	if b := v.Target().Image().Bounds(); b.Dx() != 100 || b.Dy() != 80 {
		t.Errorf("target image is %v", b)
	}
	if v.Context().Backend() != v.Target() {
		t.Error("context still draws into the old target")
	}
	if !v.IsDirty() {
		t.Error("resize did not dirty the viewer")
	}

	// Invalid sizes keep the current layout.
	if w, h := v.Layout(0, 10); w != 100 || h != 80 {
		t.Errorf("Layout(0, 10) = %d,%d, want 100,80", w, h)
	}
}

func TestOverlayAndBackground(t *testing.T) {
	drawn := false
	v := newTestViewer(t, newFakeInput(),
		WithBackground(gg3d.Black),
		WithOverlay(func(b *raster.Backend) {
			drawn = true
			b.DrawText(gg3d.Pt(2, 12), "hi", gg3d.White)
		}))
	v.RenderFrame()

	if !drawn {
		t.Error("overlay not called")
	}
	if got := v.Target().Image().RGBAAt(63, 47); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("corner pixel = %v, want black background", got)
	}
}

func TestClosed(t *testing.T) {
	v := newTestViewer(t, newFakeInput())
	if err := v.Close(); err != nil {
		t.Fatal(err)
	}
	if err := v.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if err := v.Update(); !errors.Is(err, ErrViewerClosed) {
		t.Errorf("Update() error = %v, want ErrViewerClosed", err)
	}
	if v.RenderFrame() {
		t.Error("closed viewer rendered")
	}
}
