package appicon

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ErrSourceNotFound is returned when the source image path does not exist.
var ErrSourceNotFound = errors.New("source image not found")

// Source produces an opaque square icon of a requested size from an
// external image.
type Source interface {
	Icon(size int) (image.Image, error)
}

// LoadSource opens the image at path. Files with an .svg extension are kept
// as vectors and rasterized per size; everything else is decoded once and
// flattened onto white.
func LoadSource(path string, f Filter) (Source, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrSourceNotFound, path)
		}
		return nil, errors.Wrapf(err, "stat source %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read source %s", path)
	}

	if strings.EqualFold(filepath.Ext(path), ".svg") {
		icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
		if err != nil {
			return nil, errors.Wrapf(err, "parse svg %s", path)
		}
		return &vectorSource{icon: icon}, nil
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "decode source %s", path)
	}
	return &bitmapSource{img: Flatten(img), format: format, filter: f}, nil
}

type bitmapSource struct {
	img    *image.RGBA
	format string
	filter Filter
}

func (s *bitmapSource) Icon(size int) (image.Image, error) {
	resized, err := Resample(size, size, s.img, s.filter)
	if err != nil {
		return nil, err
	}
	return Flatten(resized), nil
}

func (s *bitmapSource) String() string {
	b := s.img.Bounds()
	return fmt.Sprintf("%s %dx%d", s.format, b.Dx(), b.Dy())
}

type vectorSource struct {
	icon *oksvg.SvgIcon
}

func (s *vectorSource) Icon(size int) (image.Image, error) {
	if size <= 0 {
		return nil, errors.Errorf("invalid target size %d", size)
	}
	s.icon.SetTarget(0, 0, float64(size), float64(size))
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	s.icon.Draw(raster, 1.0)
	return Flatten(img), nil
}

func (s *vectorSource) String() string {
	return fmt.Sprintf("svg %gx%g", s.icon.ViewBox.W, s.icon.ViewBox.H)
}

// Flatten composites img over opaque white and returns a fully opaque copy
// whose bounds start at the origin.
func Flatten(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst
}
