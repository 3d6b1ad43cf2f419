package renderer

import (
	"image"
	"image/color"

	"github.com/ankek/terraform-provider-qrcode/internal/colors"
	"github.com/ankek/terraform-provider-qrcode/internal/encoder"
)

// Palette indexes of the unstyled image
const (
	backIndex = 0
	fillIndex = 1
)

// drawUnstyled paints every dark module as a solid box on a two color
// paletted image. There is no per-module drawer and no alpha channel.
func (r *Renderer) drawUnstyled(m *encoder.Matrix, fill, back colors.RGB) *image.Paletted {
	dim := r.dimension(m)
	box := r.options.BoxSize
	border := r.options.Border

	img := image.NewPaletted(image.Rect(0, 0, dim, dim), color.Palette{
		backIndex: back.Color(),
		fillIndex: fill.Color(),
	})
	// Pix starts zeroed, which is already the background index

	for row := 0; row < m.Size(); row++ {
		for col := 0; col < m.Size(); col++ {
			if !m.Dark(row, col) {
				continue
			}

			startX := (col + border) * box
			startY := (row + border) * box
			for y := startY; y < startY+box; y++ {
				offset := img.PixOffset(startX, y)
				for x := 0; x < box; x++ {
					img.Pix[offset+x] = fillIndex
				}
			}
		}
	}

	return img
}
