package appicon

import (
	"image"
	"image/color"
	"math"
)

const maxGradientSteps = 60

var (
	badgeWhite = color.RGBA{255, 255, 255, 255}
	heartBlue  = stopDeepBlue
)

// Layout holds the integer geometry of the heart-and-plus glyph group for
// one icon size.
type Layout struct {
	Size      int
	Center    int // x and y of the icon center
	Total     int // width of the glyph group
	Heart     int // width reserved for the heart badge
	Plus      int // width reserved for the plus sign
	Spacing   int
	HeartX    int // badge center x; the badge sits at y = Center
	PlusX     int // plus center x
	Badge     int // badge radius
	HeartDraw int // heart glyph size inside the badge
	Thickness int // plus bar thickness
	Length    int // plus bar length
}

// ComputeLayout derives the glyph layout for an icon of side size.
func ComputeLayout(size int) Layout {
	l := Layout{Size: size, Center: size / 2}
	l.Total = int(float64(size) * 0.65)
	l.Heart = int(float64(l.Total) * 0.55)
	l.Plus = int(float64(l.Total) * 0.35)
	l.Spacing = int(float64(l.Total) * 0.10)

	groupStart := l.Center - l.Total/2
	l.HeartX = groupStart + l.Heart/2
	l.PlusX = groupStart + l.Heart + l.Spacing + l.Plus/2

	l.Badge = int(float64(l.Heart) * 0.5)
	l.HeartDraw = int(float64(l.Badge) * 1.25)

	l.Thickness = max(3, int(float64(l.Plus)*0.25))
	l.Length = int(float64(l.Plus) * 0.6)
	return l
}

// BadgeBox is the inclusive bounding box of the white badge disk.
func (l Layout) BadgeBox() image.Rectangle {
	return image.Rect(l.HeartX-l.Badge, l.Center-l.Badge, l.HeartX+l.Badge, l.Center+l.Badge)
}

// PlusBars returns the inclusive boxes of the vertical and horizontal bars.
func (l Layout) PlusBars() (vertical, horizontal image.Rectangle) {
	vertical = image.Rect(l.PlusX-l.Thickness/2, l.Center-l.Length/2, l.PlusX+l.Thickness/2, l.Center+l.Length/2)
	horizontal = image.Rect(l.PlusX-l.Length/2, l.Center-l.Thickness/2, l.PlusX+l.Length/2, l.Center+l.Thickness/2)
	return vertical, horizontal
}

// HeartShape is the heart glyph as two lobe disks and a lower triangle.
type HeartShape struct {
	Left, Right image.Rectangle // inclusive lobe bounding boxes
	Point       [3]image.Point
}

// Heart computes the heart glyph of the given size centered on (x, y).
// The proportions are visually tuned: lobes sit 22% of the width either side
// of center and 15% of the height above it, with radius 26% of the width.
func Heart(x, y, size int) HeartShape {
	w := float64(size) * 0.65
	h := float64(size) * 0.6
	cx, cy := float64(x), float64(y)

	lx, rx := cx-w*0.22, cx+w*0.22
	ly := cy - h*0.15
	r := w * 0.26

	lobe := func(ox float64) image.Rectangle {
		return image.Rect(int(ox-r), int(ly-r), int(ox+r), int(ly+r))
	}
	return HeartShape{
		Left:  lobe(lx),
		Right: lobe(rx),
		Point: [3]image.Point{
			{int(lx - r*0.3), int(ly + r*0.4)},
			{int(rx + r*0.3), int(ly + r*0.4)},
			{x, int(cy + h*0.55)},
		},
	}
}

// RenderIcon paints the gradient heart-and-plus icon at size x size pixels.
// The result is fully opaque.
func RenderIcon(size int) *image.RGBA {
	c := newCanvas(size, stopDeepBlue)
	paintBackground(c, size)

	l := ComputeLayout(size)

	b := l.BadgeBox()
	c.fillEllipse(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y, badgeWhite)

	heart := Heart(l.HeartX, l.Center, l.HeartDraw)
	c.fillEllipse(heart.Left.Min.X, heart.Left.Min.Y, heart.Left.Max.X, heart.Left.Max.Y, heartBlue)
	c.fillEllipse(heart.Right.Min.X, heart.Right.Min.Y, heart.Right.Max.X, heart.Right.Max.Y, heartBlue)
	c.fillPolygon(heartBlue, heart.Point[:]...)

	radius := l.Thickness / 3
	v, h := l.PlusBars()
	c.fillRoundedRect(v.Min.X, v.Min.Y, v.Max.X, v.Max.Y, radius, badgeWhite)
	c.fillRoundedRect(h.Min.X, h.Min.Y, h.Max.X, h.Max.Y, radius, badgeWhite)

	return c.img
}

// gradientDisk is one concentric background disk.
type gradientDisk struct {
	Radius int
	Color  color.RGBA
}

// gradientDisks returns the background disks for an icon of side size,
// outermost first. Together they approximate a radial gradient reaching from
// the center to the corners.
func gradientDisks(size int) []gradientDisk {
	center := size / 2
	maxRadius := int(math.Sqrt(float64(center*center + center*center)))
	steps := min(maxGradientSteps, maxRadius/2)

	disks := make([]gradientDisk, 0, steps)
	for i := 0; i < steps; i++ {
		ratio := float64(i) / float64(steps)
		radius := int(float64(steps-i) * float64(maxRadius) / float64(steps))
		if radius <= 0 {
			continue
		}
		disks = append(disks, gradientDisk{Radius: radius, Color: GradientAt(ratio)})
	}
	return disks
}

func paintBackground(c *canvas, size int) {
	center := size / 2
	for _, d := range gradientDisks(size) {
		c.fillEllipse(center-d.Radius, center-d.Radius, center+d.Radius, center+d.Radius, d.Color)
	}
}
