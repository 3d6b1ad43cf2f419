package format

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ankek/terraform-provider-qrcode/internal/colors"
	"github.com/ankek/terraform-provider-qrcode/internal/renderer"
)

// SaveError reports a failure to encode or write an image file.
type SaveError struct {
	Path   string
	Format Format
	Err    error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("saving %s to %s: %v", e.Format, e.Path, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

// Save writes r to path in the format named by its extension. The image is
// encoded in memory first so a failed encode leaves no partial file behind.
func Save(r *renderer.Raster, path string, background colors.RGB) error {
	f := FromPath(path)

	var buf bytes.Buffer
	if err := Encode(&buf, r, f, background); err != nil {
		return &SaveError{Path: path, Format: f, Err: err}
	}

	if err := writeFile(path, buf.Bytes()); err != nil {
		return &SaveError{Path: path, Format: f, Err: err}
	}
	return nil
}

// writeFile writes data to a file
func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}
