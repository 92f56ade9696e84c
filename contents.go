package appicon

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ContentsFile is the asset catalog manifest written next to the icons.
const ContentsFile = "Contents.json"

// Contents is the Contents.json document of an Xcode app icon set.
type Contents struct {
	Images []ContentsImage `json:"images"`
	Info   ContentsInfo    `json:"info"`
}

// ContentsImage is one image entry of the manifest.
type ContentsImage struct {
	Filename string `json:"filename"`
	Idiom    string `json:"idiom"`
	Scale    string `json:"scale"`
	Size     string `json:"size"`
}

// ContentsInfo records the tool and format version that wrote the manifest.
type ContentsInfo struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

// NewContents builds the manifest for slots, one image entry per slot.
func NewContents(slots []Slot) (Contents, error) {
	c := Contents{
		Images: make([]ContentsImage, 0, len(slots)),
		Info:   ContentsInfo{Author: "xcode", Version: 1},
	}
	for _, s := range slots {
		idiom, points, scale, err := s.Attributes()
		if err != nil {
			return Contents{}, err
		}
		c.Images = append(c.Images, ContentsImage{
			Filename: s.FileName(),
			Idiom:    idiom,
			Scale:    scale,
			Size:     points + "x" + points,
		})
	}
	return c, nil
}

// WriteContents writes Contents.json for slots into dir.
func WriteContents(dir string, slots []Slot) error {
	c, err := NewContents(slots)
	if err != nil {
		return errors.Wrap(err, "failed to build contents")
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode contents")
	}
	data = append(data, '\n')
	path := filepath.Join(dir, ContentsFile)
	return errors.Wrapf(os.WriteFile(path, data, 0644), "failed to write %s", path)
}
