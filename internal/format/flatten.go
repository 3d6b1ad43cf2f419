package format

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/ankek/terraform-provider-qrcode/internal/colors"
	"github.com/ankek/terraform-provider-qrcode/internal/renderer"
)

// needsFlatten reports whether r must be flattened before encoding as f.
// Only JPEG lacks both transparency and palette support.
func needsFlatten(r *renderer.Raster, f Format) bool {
	return f == JPEG && (r.Mode == renderer.ModeRGBA || r.Mode == renderer.ModePaletted)
}

// Prepare returns the raster to encode as f: either r itself or an opaque
// RGB copy composited over background.
func Prepare(r *renderer.Raster, f Format, background colors.RGB) *renderer.Raster {
	if !needsFlatten(r, f) {
		return r
	}
	return &renderer.Raster{
		Image:   Flatten(r.Image, background),
		Mode:    renderer.ModeRGB,
		Version: r.Version,
	}
}

// Flatten composites img over an opaque canvas filled with background using
// img's alpha channel. Paletted images are expanded to RGBA first.
func Flatten(img image.Image, background colors.RGB) *image.RGBA {
	b := img.Bounds()

	canvas := image.NewRGBA(b)
	draw.Draw(canvas, b, image.NewUniform(background.Color()), image.Point{}, draw.Src)

	src := img
	if p, ok := img.(*image.Paletted); ok {
		src = toRGBA(p)
	}
	draw.Draw(canvas, b, src, b.Min, draw.Over)

	return canvas
}

func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, img, b.Min, draw.Src)
	return out
}
