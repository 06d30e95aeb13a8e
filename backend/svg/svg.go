// Package svg implements a gg3d drawing backend that emits SVG markup
// through github.com/ajstarks/svgo.
//
// Each painted face becomes one <polygon> element in painting order, so
// the document reproduces the painter's algorithm directly.
package svg

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"github.com/gogpu/gg3d"
	"github.com/gogpu/gg3d/backend"
)

// Errors returned by the SVG backend.
var (
	// ErrClosed is returned when drawing into or closing a finished document.
	ErrClosed = errors.New("svg: document closed")

	// ErrNotBuffered is returned by Encode on a backend created with New.
	ErrNotBuffered = errors.New("svg: backend writes directly to its writer")
)

// Name is the registry name of this target.
const Name = "svg"

func init() {
	backend.Register(Name, func(width, height int) (backend.Target, error) {
		return NewBuffer(width, height), nil
	})
}

// Backend writes an SVG document as faces are drawn.
type Backend struct {
	w      *errWriter
	canvas *svgo.SVG
	buf    *bytes.Buffer
	width  int
	height int
	closed bool
	faces  int
}

// New starts a width x height document on w. Call Close to finish it.
// The background, when given, is written as a full-size rectangle.
func New(w io.Writer, width, height int, background ...gg3d.RGBA) *Backend {
	ew := &errWriter{w: w}
	b := &Backend{
		w:      ew,
		canvas: svgo.New(ew),
		width:  max(width, 1),
		height: max(height, 1),
	}
	b.canvas.Start(b.width, b.height)
	for _, c := range background {
		b.canvas.Rect(0, 0, b.width, b.height, fillStyle(c))
	}
	return b
}

// NewBuffer starts a document held in memory and retrieved with Encode
// or Bytes.
func NewBuffer(width, height int, background ...gg3d.RGBA) *Backend {
	buf := &bytes.Buffer{}
	b := New(buf, width, height, background...)
	b.buf = buf
	return b
}

// Name implements backend.Target.
func (b *Backend) Name() string { return Name }

// Faces returns how many polygons have been written.
func (b *Backend) Faces() int { return b.faces }

// DrawPolygon appends a <polygon> element.
func (b *Backend) DrawPolygon(points []gg3d.Point, style gg3d.PolygonStyle) {
	if b.closed || len(points) < 2 {
		return
	}
	xs := make([]int, len(points))
	ys := make([]int, len(points))
	for i, p := range points {
		xs[i] = round(p.X)
		ys[i] = round(p.Y)
	}
	b.canvas.Polygon(xs, ys, polygonStyle(style, len(points) >= 3))
	b.faces++
}

// DrawText appends a <text> element with its baseline at the given point.
func (b *Backend) DrawText(at gg3d.Point, text string, c gg3d.RGBA) {
	if b.closed || text == "" {
		return
	}
	b.canvas.Text(round(at.X), round(at.Y), text, fillStyle(c)+";font-family:sans-serif")
}

// Clear paints a full-size rectangle over everything drawn so far.
func (b *Backend) Clear(c gg3d.RGBA) {
	if b.closed {
		return
	}
	b.canvas.Rect(0, 0, b.width, b.height, fillStyle(c))
}

// Close ends the document and reports the first write error, if any.
func (b *Backend) Close() error {
	if b.closed {
		return ErrClosed
	}
	b.closed = true
	b.canvas.End()
	if b.w.err != nil {
		return fmt.Errorf("svg: write: %w", b.w.err)
	}
	return nil
}

// Bytes closes the document if needed and returns the buffered markup.
func (b *Backend) Bytes() ([]byte, error) {
	if b.buf == nil {
		return nil, ErrNotBuffered
	}
	if !b.closed {
		if err := b.Close(); err != nil {
			return nil, err
		}
	}
	return b.buf.Bytes(), nil
}

// Encode closes a buffered document if needed and copies it to w.
func (b *Backend) Encode(w io.Writer) error {
	data, err := b.Bytes()
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("svg: write: %w", err)
	}
	return nil
}

func round(v float64) int {
	return int(math.Round(v))
}

func opaque(c gg3d.RGBA) string {
	c.A = 1
	return c.Hex()
}

func fillStyle(c gg3d.RGBA) string {
	s := "fill:" + opaque(c)
	if c.A < 1 {
		s += ";fill-opacity:" + strconv.FormatFloat(c.A, 'g', 4, 64)
	}
	return s
}

func polygonStyle(style gg3d.PolygonStyle, closedArea bool) string {
	var sb strings.Builder
	if closedArea && style.Fill.A > 0 {
		sb.WriteString(fillStyle(style.Fill))
	} else {
		sb.WriteString("fill:none")
	}
	if style.Stroked() {
		fmt.Fprintf(&sb, ";stroke:%s;stroke-width:%s;stroke-linejoin:round",
			opaque(style.Stroke), strconv.FormatFloat(style.StrokeWidth, 'g', 4, 64))
		if style.Stroke.A < 1 {
			sb.WriteString(";stroke-opacity:" + strconv.FormatFloat(style.Stroke.A, 'g', 4, 64))
		}
	}
	return sb.String()
}

// errWriter remembers the first write error; svgo ignores them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
