// Package format writes rendered symbols to disk in the container format
// implied by the output path, converting pixel layouts where the target
// format requires it.
package format

import (
	"path/filepath"
	"strings"
)

// Format is an output container format.
type Format int

const (
	PNG Format = iota
	JPEG
	BMP
	GIF
	TIFF
	WEBP
	ICO
)

var formatNames = [...]string{
	PNG:  "PNG",
	JPEG: "JPEG",
	BMP:  "BMP",
	GIF:  "GIF",
	TIFF: "TIFF",
	WEBP: "WEBP",
	ICO:  "ICO",
}

// extensionFormats maps lower-case file extensions to formats. Anything not
// listed is written as PNG.
var extensionFormats = map[string]Format{
	".jpg":  JPEG,
	".jpeg": JPEG,
	".png":  PNG,
	".bmp":  BMP,
	".gif":  GIF,
	".tiff": TIFF,
	".tif":  TIFF,
	".webp": WEBP,
	".ico":  ICO,
}

func (f Format) String() string {
	if f < PNG || int(f) >= len(formatNames) {
		return formatNames[PNG]
	}
	return formatNames[f]
}

// FromPath derives the format from the extension of path, ignoring case.
// Paths without a recognised extension are PNG.
func FromPath(path string) Format {
	if f, ok := extensionFormats[extension(path)]; ok {
		return f
	}
	return PNG
}

// extension returns the lower-cased suffix of the last path element.
// Leading dots of hidden files and trailing dots do not start a suffix.
func extension(path string) string {
	name := filepath.Base(path)
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[i:])
}
