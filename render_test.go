package appicon

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderIconSizes(t *testing.T) {
	for _, slot := range DefaultSlots() {
		t.Run(slot.Label, func(t *testing.T) {
			img := RenderIcon(slot.Size)
			require.Equal(t, image.Rect(0, 0, slot.Size, slot.Size), img.Bounds())
			assert.True(t, img.Opaque(), "icon must not carry transparency")
		})
	}
}

func inCanvas(t *testing.T, size int, what string, pts ...image.Point) {
	t.Helper()
	for _, p := range pts {
		if p.X < 0 || p.Y < 0 || p.X >= size || p.Y >= size {
			t.Errorf("size %d: %s point %v outside canvas", size, what, p)
		}
	}
}

func TestLayoutWithinCanvas(t *testing.T) {
	for size := 20; size <= 1024; size++ {
		l := ComputeLayout(size)
		if l.Badge < 0 || l.Thickness < 0 || l.Length < 0 || l.HeartDraw < 0 {
			t.Fatalf("size %d: negative dimension in %+v", size, l)
		}
		b := l.BadgeBox()
		inCanvas(t, size, "badge", b.Min, b.Max)

		v, h := l.PlusBars()
		inCanvas(t, size, "plus", v.Min, v.Max, h.Min, h.Max)

		heart := Heart(l.HeartX, l.Center, l.HeartDraw)
		inCanvas(t, size, "heart", heart.Left.Min, heart.Left.Max, heart.Right.Min, heart.Right.Max)
		inCanvas(t, size, "heart", heart.Point[:]...)
	}
}

func TestComputeLayout1024(t *testing.T) {
	l := ComputeLayout(1024)
	assert.Equal(t, Layout{
		Size:      1024,
		Center:    512,
		Total:     665,
		Heart:     365,
		Plus:      232,
		Spacing:   66,
		HeartX:    362,
		PlusX:     727,
		Badge:     182,
		HeartDraw: 227,
		Thickness: 58,
		Length:    139,
	}, l)
}

func TestComputeLayoutSmallestIcon(t *testing.T) {
	l := ComputeLayout(20)
	assert.Equal(t, 3, l.Thickness, "thickness has a floor of 3 pixels")
	assert.Equal(t, 7, l.HeartX)
	assert.Equal(t, 14, l.PlusX)
	assert.Equal(t, 3, l.Badge)
}

func TestRenderIconPixels(t *testing.T) {
	const size = 1024
	img := RenderIcon(size)
	l := ComputeLayout(size)

	white := color.RGBA{255, 255, 255, 255}
	assert.Equal(t, heartBlue, img.RGBAAt(l.HeartX, l.Center), "heart center")
	assert.Equal(t, white, img.RGBAAt(l.HeartX, l.Center-l.Badge+3), "badge top")
	assert.Equal(t, white, img.RGBAAt(l.PlusX, l.Center), "plus center")
	assert.Equal(t, white, img.RGBAAt(l.PlusX-l.Length/2+2, l.Center), "plus arm")

	corner := img.RGBAAt(0, 0)
	assert.InDelta(t, 26, int(corner.R), 1)
	assert.InDelta(t, 77, int(corner.G), 1)
	assert.InDelta(t, 153, int(corner.B), 1)

	// The innermost gradient disk is close to the last stop.
	mid := img.RGBAAt(l.Center, l.Center-l.Badge-20)
	assert.Greater(t, int(mid.G), 150, "center of background should be cyan, got %v", mid)
}

func TestHeartProportions(t *testing.T) {
	heart := Heart(362, 512, 227)
	assert.Equal(t, image.Rect(291, 453, 367, 529), heart.Left)
	assert.Equal(t, image.Rect(356, 453, 432, 529), heart.Right)
	assert.Equal(t, [3]image.Point{{318, 506}, {405, 506}, {362, 586}}, heart.Point)
}

func TestGradientDisks(t *testing.T) {
	disks := gradientDisks(20)
	radii := make([]int, len(disks))
	for i, d := range disks {
		radii[i] = d.Radius
		assert.Equal(t, GradientAt(float64(i)/7), d.Color, "disk %d", i)
	}
	assert.Equal(t, []int{14, 12, 10, 8, 6, 4, 2}, radii)

	disks = gradientDisks(1024)
	require.Len(t, disks, maxGradientSteps)
	assert.Equal(t, 724, disks[0].Radius, "outermost disk reaches the corners")
	assert.Equal(t, 711, disks[1].Radius)
	assert.Equal(t, 12, disks[len(disks)-1].Radius)
	assert.Equal(t, stopDeepBlue, disks[0].Color)
}
