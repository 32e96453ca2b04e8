package menubar

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"sync"

	xdraw "golang.org/x/image/draw"
	vector "golang.org/x/image/vector"
)

const (
	// IconSize is the edge of the menu bar icon in pixels
	IconSize = 22

	iconSupersample = 4
	circleKappa     = 0.5522847
)

var (
	iconOnce  sync.Once
	iconBytes []byte
	iconErr   error
)

// TemplateIcon returns the magnifying glass as a black-on-transparent PNG.
// macOS tints template images for light and dark menu bars.
func TemplateIcon() ([]byte, error) {
	iconOnce.Do(func() {
		iconBytes, iconErr = encodeIcon(renderMagnifier(IconSize))
	})
	return iconBytes, iconErr
}

// renderMagnifier rasterizes the glyph at a higher resolution and scales it
// down so the ring edges are smooth
func renderMagnifier(size int) *image.RGBA {
	big := size * iconSupersample
	s := float32(big)

	z := vector.NewRasterizer(big, big)

	cx, cy := s*0.41, s*0.41
	outer, inner := s*0.32, s*0.23

	circle(z, cx, cy, outer, true)
	circle(z, cx, cy, inner, false)

	// handle from the lens rim to the bottom-right corner
	const invSqrt2 = 0.70710677
	halfWidth := s * 0.065
	start := outer * 0.9
	x0, y0 := cx+start*invSqrt2, cy+start*invSqrt2
	x1, y1 := s*0.93, s*0.93
	nx, ny := -halfWidth*invSqrt2, halfWidth*invSqrt2

	z.MoveTo(x0+nx, y0+ny)
	z.LineTo(x1+nx, y1+ny)
	z.LineTo(x1-nx, y1-ny)
	z.LineTo(x0-nx, y0-ny)
	z.ClosePath()

	hi := image.NewRGBA(image.Rect(0, 0, big, big))
	z.Draw(hi, hi.Bounds(), image.Black, image.Point{})

	lo := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(lo, lo.Bounds(), hi, hi.Bounds(), xdraw.Over, nil)
	return lo
}

// circle appends a closed circle. Opposite windings cancel, which is how the
// lens gets its hole.
func circle(z *vector.Rasterizer, cx, cy, r float32, clockwise bool) {
	k := r * circleKappa

	z.MoveTo(cx+r, cy)
	if clockwise {
		z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
		z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
		z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
		z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	} else {
		z.CubeTo(cx+r, cy-k, cx+k, cy-r, cx, cy-r)
		z.CubeTo(cx-k, cy-r, cx-r, cy-k, cx-r, cy)
		z.CubeTo(cx-r, cy+k, cx-k, cy+r, cx, cy+r)
		z.CubeTo(cx+k, cy+r, cx+r, cy+k, cx+r, cy)
	}
	z.ClosePath()
}

func encodeIcon(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode menu bar icon: %w", err)
	}
	return buf.Bytes(), nil
}
