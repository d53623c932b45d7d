package model

import "strings"

// SizeClass is the coarse display area category supplied per render request
type SizeClass int

const (
	SizeUnknown SizeClass = iota
	SizeSmall
	SizeMedium
	SizeLarge
)

// AllSizeClasses lists every size class, Unknown included
var AllSizeClasses = []SizeClass{SizeSmall, SizeMedium, SizeLarge, SizeUnknown}

func (s SizeClass) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	default:
		return "unknown"
	}
}

// ParseSizeClass maps a name to a size class. Unrecognised names yield
// SizeUnknown; "auto" and "" also yield SizeUnknown and ok=false so callers
// can fall back to measuring the terminal.
func ParseSizeClass(name string) (SizeClass, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "small", "s":
		return SizeSmall, true
	case "medium", "m":
		return SizeMedium, true
	case "large", "l":
		return SizeLarge, true
	case "unknown":
		return SizeUnknown, true
	default:
		return SizeUnknown, false
	}
}
