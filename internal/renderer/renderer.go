// Package renderer rasterises QR symbols. Plain square symbols take a fast
// paletted path; every other style is drawn module by module with
// anti-aliased vector shapes onto an RGBA canvas.
package renderer

import (
	"fmt"
	"image"

	"github.com/ankek/terraform-provider-qrcode/internal/colors"
	"github.com/ankek/terraform-provider-qrcode/internal/encoder"
	"github.com/ankek/terraform-provider-qrcode/internal/style"
)

// Mode is the pixel layout of a rendered image.
type Mode int

const (
	ModeRGB      Mode = iota // opaque truecolor
	ModeRGBA                 // truecolor with an alpha channel
	ModePaletted             // palette indexed
)

func (m Mode) String() string {
	switch m {
	case ModeRGB:
		return "RGB"
	case ModeRGBA:
		return "RGBA"
	case ModePaletted:
		return "P"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// HasAlpha reports whether images in this mode carry an alpha channel.
func (m Mode) HasAlpha() bool {
	return m == ModeRGBA
}

// Raster is a rendered symbol.
type Raster struct {
	Image image.Image
	Mode  Mode
	// Version of the encoded symbol, 0 when not produced by the encoder.
	Version int
}

// Options contains the fixed encoding and layout parameters.
type Options struct {
	MinVersion int           // smallest symbol version
	Level      encoder.Level // error correction level
	Fit        bool          // grow beyond MinVersion when the data needs it
	BoxSize    int           // pixels per module
	Border     int           // quiet zone width in modules
}

// DefaultOptions returns version 1 in fit mode, level L, 10 pixel modules
// and a 4 module border.
func DefaultOptions() Options {
	return Options{
		MinVersion: 1,
		Level:      encoder.LevelL,
		Fit:        true,
		BoxSize:    10,
		Border:     4,
	}
}

// Renderer encodes text and draws the resulting symbol.
type Renderer struct {
	encoder encoder.Encoder
	options Options
}

// New creates a renderer. A nil encoder uses encoder.Skip2.
func New(enc encoder.Encoder, opts Options) *Renderer {
	if enc == nil {
		enc = encoder.Skip2{}
	}
	if opts.BoxSize < 1 {
		opts.BoxSize = 1
	}
	if opts.Border < 0 {
		opts.Border = 0
	}
	return &Renderer{
		encoder: enc,
		options: opts,
	}
}

// Render encodes data and draws it with the given colors and style.
// Encoding failures, including capacity overflow, are returned unchanged
// apart from wrapping.
func (r *Renderer) Render(data string, fill, back colors.RGB, s style.Style) (*Raster, error) {
	m, err := r.encoder.Encode(data, r.options.MinVersion, r.options.Level, r.options.Fit)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	return r.RenderMatrix(m, fill, back, s), nil
}

// RenderMatrix draws an already encoded symbol.
func (r *Renderer) RenderMatrix(m *encoder.Matrix, fill, back colors.RGB, s style.Style) *Raster {
	desc := style.Describe(s)

	if !desc.Styled {
		return &Raster{
			Image:   r.drawUnstyled(m, fill, back),
			Mode:    ModePaletted,
			Version: m.Version(),
		}
	}

	return &Raster{
		Image:   r.drawStyled(m, fill, back, desc.Drawer),
		Mode:    ModeRGBA,
		Version: m.Version(),
	}
}

// dimension returns the side of the output image in pixels.
func (r *Renderer) dimension(m *encoder.Matrix) int {
	return (m.Size() + 2*r.options.Border) * r.options.BoxSize
}
