package backend

import (
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/gogpu/gg3d"
)

type fakeTarget struct {
	name          string
	width, height int
	polygons      int
}

func (f *fakeTarget) DrawPolygon([]gg3d.Point, gg3d.PolygonStyle) { f.polygons++ }
func (f *fakeTarget) Name() string                                { return f.name }
func (f *fakeTarget) Encode(w io.Writer) error {
	_, err := io.WriteString(w, f.name)
	return err
}

func fakeFactory(name string) Factory {
	return func(w, h int) (Target, error) {
		return &fakeTarget{name: name, width: w, height: h}, nil
	}
}

// withRegistry runs fn against a registry holding only the given names.
func withRegistry(t *testing.T, names ...string) {
	t.Helper()
	registryMu.Lock()
	saved := targets
	targets = make(map[string]Factory)
	registryMu.Unlock()
	t.Cleanup(func() {
		registryMu.Lock()
		targets = saved
		registryMu.Unlock()
	})
	for _, n := range names {
		Register(n, fakeFactory(n))
	}
}

func TestRegisterAndNew(t *testing.T) {
	withRegistry(t, "alpha")

	if !IsRegistered("alpha") {
		t.Fatal("alpha not registered")
	}
	tg, err := New("alpha", 64, 32)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ft := tg.(*fakeTarget)
	if ft.width != 64 || ft.height != 32 {
		t.Errorf("size = %dx%d, want 64x32", ft.width, ft.height)
	}
	if tg.Name() != "alpha" {
		t.Errorf("Name() = %q", tg.Name())
	}
}

func TestNewUnknown(t *testing.T) {
	withRegistry(t)

	_, err := New("missing", 10, 10)
	if !errors.Is(err, ErrBackendNotAvailable) {
		t.Errorf("New(missing) error = %v, want ErrBackendNotAvailable", err)
	}
}

func TestRegisterReplaces(t *testing.T) {
	withRegistry(t, "png")
	Register("png", func(w, h int) (Target, error) {
		return &fakeTarget{name: "replacement"}, nil
	})

	tg, err := New("png", 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if tg.Name() != "replacement" {
		t.Errorf("Name() = %q, want replacement", tg.Name())
	}
}

func TestUnregister(t *testing.T) {
	withRegistry(t, "a", "b")
	Unregister("a")

	if IsRegistered("a") {
		t.Error("a still registered")
	}
	if got := Available(); !slices.Equal(got, []string{"b"}) {
		t.Errorf("Available() = %v", got)
	}
}

func TestAvailableSorted(t *testing.T) {
	withRegistry(t, "svg", "canvas", "png", "zeta")

	want := []string{"canvas", "png", "svg", "zeta"}
	if got := Available(); !slices.Equal(got, want) {
		t.Errorf("Available() = %v, want %v", got, want)
	}
}

func TestDefault(t *testing.T) {
	tests := []struct {
		name       string
		registered []string
		want       string
	}{
		{"prefers png", []string{"svg", "canvas", "png"}, "png"},
		{"canvas over svg", []string{"svg", "canvas"}, "canvas"},
		{"svg only", []string{"svg"}, "svg"},
		{"fallback by name", []string{"zeta", "beta"}, "beta"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withRegistry(t, tt.registered...)
			tg, err := Default(8, 8)
			if err != nil {
				t.Fatalf("Default() error = %v", err)
			}
			if tg.Name() != tt.want {
				t.Errorf("Default() = %q, want %q", tg.Name(), tt.want)
			}
		})
	}
}

func TestDefaultEmpty(t *testing.T) {
	withRegistry(t)

	if _, err := Default(8, 8); !errors.Is(err, ErrBackendNotAvailable) {
		t.Errorf("Default() error = %v, want ErrBackendNotAvailable", err)
	}
}
