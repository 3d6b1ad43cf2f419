// Package interfaces defines interfaces for dependency injection and testing
package interfaces

import (
	"context"

	"github.com/ankek/terraform-provider-qrcode/internal/colors"
	"github.com/ankek/terraform-provider-qrcode/internal/encoder"
	"github.com/ankek/terraform-provider-qrcode/internal/generator"
	"github.com/ankek/terraform-provider-qrcode/internal/renderer"
	"github.com/ankek/terraform-provider-qrcode/internal/style"
)

// ColorResolver turns a color expression into an RGB value
type ColorResolver interface {
	// Resolve never fails; unknown expressions resolve to black
	Resolve(expr string) colors.RGB
}

// MatrixEncoder produces the module matrix for a payload
type MatrixEncoder interface {
	Encode(text string, minVersion int, level encoder.Level, fit bool) (*encoder.Matrix, error)
}

// SymbolRenderer renders a payload to an in-memory raster
type SymbolRenderer interface {
	Render(data string, fill, back colors.RGB, s style.Style) (*renderer.Raster, error)
}

// QRGenerator runs the whole pipeline and writes the image file
type QRGenerator interface {
	Generate(ctx context.Context, req generator.Request) (*generator.Result, error)
}
