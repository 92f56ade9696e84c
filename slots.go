package appicon

import (
	"strings"

	"github.com/pkg/errors"
)

// Slot is one entry of the icon size table: a platform label such as
// "iphone-60pt@2x" and the pixel size of the square icon it needs.
type Slot struct {
	Label string
	Size  int
}

var defaultSlots = []Slot{
	// iPhone app icon
	{"iphone-60pt@2x", 120},
	{"iphone-60pt@3x", 180},
	// iPhone settings
	{"iphone-29pt@2x", 58},
	{"iphone-29pt@3x", 87},
	// iPhone spotlight
	{"iphone-40pt@2x", 80},
	{"iphone-40pt@3x", 120},
	// iPhone notification
	{"iphone-20pt@2x", 40},
	{"iphone-20pt@3x", 60},
	// iPad app icon
	{"ipad-76pt@1x", 76},
	{"ipad-76pt@2x", 152},
	{"ipad-83.5pt@2x", 167},
	// iPad settings
	{"ipad-29pt@1x", 29},
	{"ipad-29pt@2x", 58},
	// iPad spotlight
	{"ipad-40pt@1x", 40},
	{"ipad-40pt@2x", 80},
	// iPad notification
	{"ipad-20pt@1x", 20},
	{"ipad-20pt@2x", 40},
	// App Store
	{"ios-marketing-1024pt@1x", 1024},
}

// DefaultSlots returns the iOS/iPadOS icon size table in table order.
// The returned slice is a copy and may be modified freely.
func DefaultSlots() []Slot {
	slots := make([]Slot, len(defaultSlots))
	copy(slots, defaultSlots)
	return slots
}

// FileName derives the PNG file name for a slot label.
//
//	iphone-60pt@2x          -> icon-60pt@2x.png
//	ipad-83.5pt@2x          -> icon-83.5pt@2x.png
//	ios-marketing-1024pt@1x -> icon-1024x1024.png
func FileName(label string) string {
	switch {
	case strings.Contains(label, "iphone"):
		return "icon-" + strings.ReplaceAll(label, "iphone-", "") + ".png"
	case strings.Contains(label, "ipad"):
		return "icon-" + strings.ReplaceAll(label, "ipad-", "") + ".png"
	case strings.Contains(label, "ios-marketing"):
		return "icon-1024x1024.png"
	default:
		return "icon-" + label + ".png"
	}
}

// FileName returns the output file name for the slot.
func (s Slot) FileName() string {
	return FileName(s.Label)
}

// Attributes splits the slot label into its asset catalog attributes.
// "ipad-83.5pt@2x" yields idiom "ipad", points "83.5" and scale "2x".
func (s Slot) Attributes() (idiom, points, scale string, err error) {
	i := strings.LastIndex(s.Label, "-")
	if i <= 0 {
		return "", "", "", errors.Errorf("slot %q: missing idiom", s.Label)
	}
	idiom = s.Label[:i]
	points, scale, ok := strings.Cut(s.Label[i+1:], "pt@")
	if !ok || points == "" || scale == "" {
		return "", "", "", errors.Errorf("slot %q: expected <points>pt@<scale>", s.Label)
	}
	return idiom, points, scale, nil
}
