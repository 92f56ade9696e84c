package appicon

import (
	"image"
	"image/color"
	"math"
	"runtime"
	"strings"
	"sync"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// Filter names a resampling algorithm used to scale a bitmap source.
type Filter string

const (
	// Lanczos uses a parallel Lanczos-3 kernel. It is the default and gives
	// the sharpest downscaled icons.
	Lanczos    Filter = "lanczos"
	Nearest    Filter = "nearest"
	Bilinear   Filter = "bilinear"
	CatmullRom Filter = "catmullrom"
	Bicubic    Filter = "bicubic"
	Mitchell   Filter = "mitchell"
)

var filters = []Filter{Lanczos, Nearest, Bilinear, CatmullRom, Bicubic, Mitchell}

// Filters lists every supported filter. The returned slice is a copy.
func Filters() []Filter {
	out := make([]Filter, len(filters))
	copy(out, filters)
	return out
}

// ParseFilter resolves a filter name case-insensitively. An empty name
// selects Lanczos.
func ParseFilter(name string) (Filter, error) {
	if name == "" {
		return Lanczos, nil
	}
	f := Filter(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range filters {
		if f == known {
			return f, nil
		}
	}
	return "", errors.Errorf("unknown filter %q", name)
}

// Resample scales src to a width x height image with the given filter.
func Resample(width, height int, src image.Image, f Filter) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("invalid target size %dx%d", width, height)
	}
	switch f {
	case Lanczos, "":
		return ResizeLanczos3(width, height, src), nil
	case Nearest:
		return ResizeNearestNeighbor(width, height, src), nil
	case Bilinear:
		return scaleWith(draw.BiLinear, width, height, src), nil
	case CatmullRom:
		return scaleWith(draw.CatmullRom, width, height, src), nil
	case Bicubic:
		return resize.Resize(uint(width), uint(height), src, resize.Bicubic), nil
	case Mitchell:
		return resize.Resize(uint(width), uint(height), src, resize.MitchellNetravali), nil
	default:
		return nil, errors.Errorf("unknown filter %q", f)
	}
}

func scaleWith(s draw.Scaler, width, height int, src image.Image) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	s.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// ResizeNearestNeighbor resizes the source image to the specified dimensions
// using nearest neighbor interpolation.
//
// This method is extremely fast but may produce pixelated results, especially for
// significant size reductions.
func ResizeNearestNeighbor(width, height int, src image.Image) image.Image {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	w, h := b.Dx(), b.Dy()

	scaleX := float64(w) / float64(width)
	scaleY := float64(h) / float64(height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Map to source coordinates with centered rounding
			sx := b.Min.X + int(float64(x)*scaleX+0.5*scaleX)
			sy := b.Min.Y + int(float64(y)*scaleY+0.5*scaleY)

			sx = min(sx, b.Max.X-1)
			sy = min(sy, b.Max.Y-1)

			dst.Set(x, y, src.At(sx, sy))
		}
	}
	return dst
}

// A samplerFunc calculates a color for a given point in a source image using
// a specific interpolation algorithm.
type samplerFunc func(src image.Image, x, y, scaleX, scaleY float64) color.Color

// rowJob is one destination row to resample.
type rowJob struct {
	row    int
	width  int
	bounds image.Rectangle
	scaleX float64
	scaleY float64
}

type rowResult struct {
	row    int
	pixels []color.Color
}

func rowWorker(jobs <-chan rowJob, results chan<- rowResult, src image.Image, sampler samplerFunc, wg *sync.WaitGroup) {
	defer wg.Done()
	for job := range jobs {
		pixels := make([]color.Color, job.width)
		for x := 0; x < job.width; x++ {
			// Center-to-center mapping into source coordinates.
			srcX := (float64(x)+0.5)*job.scaleX - 0.5 + float64(job.bounds.Min.X)
			srcY := (float64(job.row)+0.5)*job.scaleY - 0.5 + float64(job.bounds.Min.Y)
			pixels[x] = sampler(src, srcX, srcY, job.scaleX, job.scaleY)
		}
		results <- rowResult{row: job.row, pixels: pixels}
	}
}

// resizeWithSampler spreads destination rows over one worker per CPU and
// assembles the result once every row is back.
func resizeWithSampler(width, height int, src image.Image, sampler samplerFunc) image.Image {
	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))

	scaleX := float64(bounds.Dx()) / float64(width)
	scaleY := float64(bounds.Dy()) / float64(height)

	numWorkers := min(height, runtime.NumCPU())
	jobs := make(chan rowJob, height)
	results := make(chan rowResult, height)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go rowWorker(jobs, results, src, sampler, &wg)
	}

	go func() {
		defer close(jobs)
		for y := 0; y < height; y++ {
			jobs <- rowJob{
				row:    y,
				width:  width,
				bounds: bounds,
				scaleX: scaleX,
				scaleY: scaleY,
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	for result := range results {
		for x, pixel := range result.pixels {
			dst.Set(x, result.row, pixel)
		}
	}
	return dst
}

// Lanczos-3 kernel (sinc-based).
func lanczos3(x float64) float64 {
	if x == 0 {
		return 1.0
	}
	if math.Abs(x) >= 3.0 {
		return 0.0
	}
	pix := math.Pi * x
	return 3.0 * math.Sin(pix) * math.Sin(pix/3.0) / (pix * pix)
}

// sampleLanczos3 samples src at (x, y) in source coordinates. When
// downscaling the kernel is stretched by the scale factor so it acts as a
// low-pass filter.
func sampleLanczos3(src image.Image, x, y, scaleX, scaleY float64) color.Color {
	bounds := src.Bounds()
	sX := math.Max(1.0, scaleX)
	sY := math.Max(1.0, scaleY)
	supportX := 3.0 * sX
	supportY := 3.0 * sY

	xMin := int(math.Ceil(x - supportX))
	xMax := int(math.Floor(x + supportX))
	yMin := int(math.Ceil(y - supportY))
	yMax := int(math.Floor(y + supportY))

	var r, g, b, a float64
	var totalWeight float64

	for sy := yMin; sy <= yMax; sy++ {
		if sy < bounds.Min.Y || sy >= bounds.Max.Y {
			continue
		}
		weightY := lanczos3((y - float64(sy)) / sY)
		if weightY == 0 {
			continue
		}
		for sx := xMin; sx <= xMax; sx++ {
			if sx < bounds.Min.X || sx >= bounds.Max.X {
				continue
			}
			weight := lanczos3((x-float64(sx))/sX) * weightY
			if weight == 0 {
				continue
			}

			sr, sg, sb, sa := src.At(sx, sy).RGBA()
			r += float64(sr) * weight
			g += float64(sg) * weight
			b += float64(sb) * weight
			a += float64(sa) * weight
			totalWeight += weight
		}
	}

	if totalWeight > 0 {
		r /= totalWeight
		g /= totalWeight
		b /= totalWeight
		a /= totalWeight
	}

	// Negative lobes can overshoot; keep the result a valid premultiplied color.
	a = math.Max(0, math.Min(65535, a))
	return color.RGBA64{
		R: uint16(math.Max(0, math.Min(a, r))),
		G: uint16(math.Max(0, math.Min(a, g))),
		B: uint16(math.Max(0, math.Min(a, b))),
		A: uint16(a),
	}
}

// ResizeLanczos3 resizes the source image to the specified dimensions using
// Lanczos-3 interpolation over a 6x6 window (wider when downscaling).
func ResizeLanczos3(width, height int, src image.Image) image.Image {
	return resizeWithSampler(width, height, src, sampleLanczos3)
}
