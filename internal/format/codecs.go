package format

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"github.com/ankek/terraform-provider-qrcode/internal/colors"
	"github.com/ankek/terraform-provider-qrcode/internal/renderer"
)

// jpegQuality matches the common library default for lossy output.
const jpegQuality = 75

// encodeFunc writes img to w in one container format.
type encodeFunc func(w io.Writer, img image.Image) error

var codecs = map[Format]encodeFunc{
	PNG:  encodePNG,
	JPEG: encodeJPEG,
	BMP:  bmp.Encode,
	GIF:  encodeGIF,
	TIFF: encodeTIFF,
	WEBP: encodeWEBP,
	ICO:  encodeICO,
}

// Encode writes r to w as f. JPEG output is flattened over background first.
func Encode(w io.Writer, r *renderer.Raster, f Format, background colors.RGB) error {
	if r == nil || r.Image == nil {
		return fmt.Errorf("no image to encode")
	}

	codec, ok := codecs[f]
	if !ok {
		return fmt.Errorf("unsupported format: %v", f)
	}

	prepared := Prepare(r, f, background)
	if err := codec(w, prepared.Image); err != nil {
		return fmt.Errorf("failed to encode %s: %w", f, err)
	}
	return nil
}

func encodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	return enc.Encode(w, img)
}

func encodeJPEG(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

func encodeWEBP(w io.Writer, img image.Image) error {
	return nativewebp.Encode(w, img, nil)
}

// encodeGIF keeps exact colors when the image has at most 256 of them and
// dithers to the Plan 9 palette otherwise.
func encodeGIF(w io.Writer, img image.Image) error {
	if p, ok := img.(*image.Paletted); ok {
		return gif.Encode(w, p, nil)
	}
	return gif.Encode(w, palettize(img), nil)
}

func palettize(img image.Image) *image.Paletted {
	b := img.Bounds()

	if pal, ok := exactPalette(img, 256); ok {
		out := image.NewPaletted(b, pal)
		draw.Draw(out, b, img, b.Min, draw.Src)
		return out
	}

	out := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(out, b, img, b.Min)
	return out
}

// exactPalette collects the distinct colors of img in scan order. It gives up
// once more than limit colors are seen.
func exactPalette(img image.Image, limit int) (color.Palette, bool) {
	b := img.Bounds()
	seen := make(map[color.RGBA]struct{}, limit)
	pal := make(color.Palette, 0, limit)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			if _, ok := seen[c]; ok {
				continue
			}
			if len(pal) == limit {
				return nil, false
			}
			seen[c] = struct{}{}
			pal = append(pal, c)
		}
	}
	return pal, true
}
