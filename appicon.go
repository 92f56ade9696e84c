// Package appicon generates the iOS/iPadOS app icon set: one square PNG per
// slot of the platform size table, either resized from a source image or
// painted procedurally. It can also write the asset catalog Contents.json, an
// HTML preview page and a mirror copy of the generated files.
package appicon

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultOutputDir is the app icon set inside the Xcode asset catalog.
const DefaultOutputDir = "HealthAI/Assets.xcassets/AppIcon.appiconset"

// Config holds icon generation configuration.
type Config struct {
	OutputDir   string             // directory the PNG files are written to, created if missing
	Slots       []Slot             // icon size table; DefaultSlots() when empty
	Source      string             // source image for Resize
	Filter      Filter             // resampling filter for bitmap sources
	Contents    bool               // also write Contents.json
	PreviewFile string             // optional HTML preview page written to OutputDir
	CopyTo      string             // optional directory receiving a copy of every icon
	Logger      logrus.FieldLogger // defaults to the logrus standard logger
}

// Result describes one written icon.
type Result struct {
	Label    string
	FileName string
	Size     int
}

// Producer returns the icon image for a slot.
type Producer func(slot Slot) (image.Image, error)

// Validate fills in defaults and rejects unusable configuration.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.New("config cannot be nil")
	}
	if cfg.OutputDir == "" {
		return errors.New("output directory cannot be empty")
	}
	if len(cfg.Slots) == 0 {
		cfg.Slots = DefaultSlots()
	}
	for _, s := range cfg.Slots {
		if s.Label == "" {
			return errors.New("slot label cannot be empty")
		}
		if s.Size <= 0 {
			return errors.Errorf("slot %s: size must be greater than zero", s.Label)
		}
	}
	if cfg.Filter == "" {
		cfg.Filter = Lanczos
	}
	if _, err := ParseFilter(string(cfg.Filter)); err != nil {
		return err
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	return nil
}

// Render paints the procedural icon for every slot.
func Render(cfg *Config) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return Generate(cfg, func(s Slot) (image.Image, error) {
		return RenderIcon(s.Size), nil
	})
}

// Resize scales cfg.Source to every slot. A missing source fails with
// ErrSourceNotFound before anything is written.
func Resize(cfg *Config) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Source == "" {
		return nil, errors.New("source image cannot be empty")
	}

	src, err := LoadSource(cfg.Source, cfg.Filter)
	if err != nil {
		return nil, err
	}
	cfg.Logger.WithField("source", cfg.Source).Infof("loaded source image: %v", src)

	return Generate(cfg, func(s Slot) (image.Image, error) {
		return src.Icon(s.Size)
	})
}

// Generate runs produce for every slot in table order and writes each image
// to OutputDir. The first failure aborts the batch; files already written
// stay in place.
func Generate(cfg *Config, produce Producer) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, errors.Wrap(err, "failed to create output directory")
	}
	cfg.Logger.WithField("dir", cfg.OutputDir).Info("generating app icons")

	results := make([]Result, 0, len(cfg.Slots))
	for _, slot := range cfg.Slots {
		log := cfg.Logger.WithFields(logrus.Fields{"slot": slot.Label, "size": slot.Size})
		log.Infof("generating %s (%dx%d)", slot.Label, slot.Size, slot.Size)

		img, err := produce(slot)
		if err != nil {
			return results, errors.Wrapf(err, "generate %s", slot.Label)
		}
		if b := img.Bounds(); b.Dx() != slot.Size || b.Dy() != slot.Size {
			return results, errors.Errorf("generate %s: got %dx%d image, want %dx%d",
				slot.Label, b.Dx(), b.Dy(), slot.Size, slot.Size)
		}

		name := slot.FileName()
		if err := saveImage(img, filepath.Join(cfg.OutputDir, name)); err != nil {
			return results, err
		}
		results = append(results, Result{Label: slot.Label, FileName: name, Size: slot.Size})
		log.WithField("file", name).Info("created icon")
	}

	if cfg.Contents {
		if err := WriteContents(cfg.OutputDir, cfg.Slots); err != nil {
			return results, err
		}
		cfg.Logger.Infof("wrote %s", ContentsFile)
	}

	if cfg.PreviewFile != "" {
		if err := writePreview(cfg, results); err != nil {
			return results, errors.Wrap(err, "failed to generate preview")
		}
		cfg.Logger.Infof("wrote %s", cfg.PreviewFile)
	}

	if err := copyIcons(cfg, results); err != nil {
		return results, errors.Wrap(err, "failed to copy icons")
	}

	cfg.Logger.Infof("generated %d icon files", len(results))
	return results, nil
}

// saveImage writes img to path as a best-compression PNG.
func saveImage(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create file %s", path)
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrapf(err, "failed to encode %s", path)
	}
	return errors.Wrapf(f.Close(), "failed to close %s", path)
}

// FileNames returns the distinct file names of results in first-seen order.
// Slots that share a file name, such as iphone-40pt@2x and ipad-40pt@2x,
// appear once.
func FileNames(results []Result) []string {
	seen := make(map[string]bool, len(results))
	var names []string
	for _, r := range results {
		if !seen[r.FileName] {
			seen[r.FileName] = true
			names = append(names, r.FileName)
		}
	}
	return names
}

// writePreview creates an HTML page showing every icon at its pixel size.
func writePreview(cfg *Config, results []Result) error {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset='utf-8'>\n<title>App icons</title>\n</head>\n<body>\n")
	for _, r := range results {
		sb.WriteString(fmt.Sprintf("<figure><img src='%s' width='%d' height='%d' alt='%s'><figcaption>%s (%dx%d)</figcaption></figure>\n",
			r.FileName, r.Size, r.Size, r.Label, r.Label, r.Size, r.Size))
	}
	sb.WriteString("</body>\n</html>")

	return os.WriteFile(filepath.Join(cfg.OutputDir, cfg.PreviewFile), []byte(sb.String()), 0644)
}

// Check if copy destination is the same as output directory
func isSameDirectory(path1, path2 string) (bool, error) {
	if path1 == "" || path2 == "" {
		return false, nil
	}

	abs1, err := filepath.Abs(path1)
	if err != nil {
		return false, errors.Wrapf(err, "failed to get absolute path for %s", path1)
	}

	abs2, err := filepath.Abs(path2)
	if err != nil {
		return false, errors.Wrapf(err, "failed to get absolute path for %s", path2)
	}

	return filepath.Clean(abs1) == filepath.Clean(abs2), nil
}

// copyIcons mirrors the generated icons into cfg.CopyTo if configured.
func copyIcons(cfg *Config, results []Result) error {
	if cfg.CopyTo == "" {
		return nil
	}

	same, err := isSameDirectory(cfg.CopyTo, cfg.OutputDir)
	if err != nil {
		return errors.Wrap(err, "failed to compare directories")
	}
	if same {
		cfg.Logger.Warn("copy destination is the same as output directory; skipping copy")
		return nil
	}

	if err := os.MkdirAll(cfg.CopyTo, 0755); err != nil {
		return errors.Wrap(err, "failed to create destination directory")
	}

	names := FileNames(results)
	if cfg.Contents {
		names = append(names, ContentsFile)
	}
	for _, name := range names {
		if err := copyFile(filepath.Join(cfg.OutputDir, name), filepath.Join(cfg.CopyTo, name)); err != nil {
			return err
		}
	}
	cfg.Logger.WithField("dir", cfg.CopyTo).Infof("copied %d files", len(names))
	return nil
}

func copyFile(srcPath, destPath string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", srcPath)
	}
	defer src.Close()

	dest, err := os.Create(destPath)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", destPath)
	}

	if _, err := dest.ReadFrom(src); err != nil {
		dest.Close()
		return errors.Wrapf(err, "failed to copy %s", srcPath)
	}
	return errors.Wrapf(dest.Close(), "failed to close %s", destPath)
}
