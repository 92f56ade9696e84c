package appicon

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// kappa places cubic Bézier control points so that four segments
// approximate a quarter ellipse each.
const kappa = 0.5522847498

// canvas paints anti-aliased solid shapes onto an opaque RGBA buffer.
// Box coordinates are inclusive pixel bounds, so a box of [2, 2, 4, 4]
// covers a 3x3 block of pixels.
type canvas struct {
	img *image.RGBA
	z   vector.Rasterizer
}

func newCanvas(size int, bg color.RGBA) *canvas {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return &canvas{img: img}
}

func (c *canvas) begin() {
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Over
}

func (c *canvas) fill(col color.RGBA) {
	c.z.ClosePath()
	c.z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// fillEllipse fills the ellipse inscribed in the inclusive box.
func (c *canvas) fillEllipse(x0, y0, x1, y1 int, col color.RGBA) {
	if x1 < x0 || y1 < y0 {
		return
	}
	left, top := float32(x0), float32(y0)
	right, bottom := float32(x1+1), float32(y1+1)
	cx, cy := (left+right)/2, (top+bottom)/2
	rx, ry := (right-left)/2, (bottom-top)/2
	kx, ky := rx*kappa, ry*kappa

	c.begin()
	c.z.MoveTo(cx+rx, cy)
	c.z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	c.z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	c.z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	c.z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	c.fill(col)
}

// fillPolygon fills the polygon whose vertices sit on the given pixel centers.
func (c *canvas) fillPolygon(col color.RGBA, pts ...image.Point) {
	if len(pts) < 3 {
		return
	}
	c.begin()
	c.z.MoveTo(float32(pts[0].X)+0.5, float32(pts[0].Y)+0.5)
	for _, p := range pts[1:] {
		c.z.LineTo(float32(p.X)+0.5, float32(p.Y)+0.5)
	}
	c.fill(col)
}

// fillRoundedRect fills the inclusive box with corners rounded to radius.
func (c *canvas) fillRoundedRect(x0, y0, x1, y1, radius int, col color.RGBA) {
	if x1 < x0 || y1 < y0 {
		return
	}
	left, top := float32(x0), float32(y0)
	right, bottom := float32(x1+1), float32(y1+1)
	r := min(float32(max(radius, 0)), (right-left)/2, (bottom-top)/2)
	k := r * (1 - kappa)

	c.begin()
	c.z.MoveTo(left+r, top)
	c.z.LineTo(right-r, top)
	c.z.CubeTo(right-k, top, right, top+k, right, top+r)
	c.z.LineTo(right, bottom-r)
	c.z.CubeTo(right, bottom-k, right-k, bottom, right-r, bottom)
	c.z.LineTo(left+r, bottom)
	c.z.CubeTo(left+k, bottom, left, bottom-k, left, bottom-r)
	c.z.LineTo(left, top+r)
	c.z.CubeTo(left, top+k, left+k, top, left+r, top)
	c.fill(col)
}
