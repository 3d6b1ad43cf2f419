package renderer

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/ankek/terraform-provider-qrcode/internal/colors"
	"github.com/ankek/terraform-provider-qrcode/internal/encoder"
	"github.com/ankek/terraform-provider-qrcode/internal/style"
)

const (
	// gappedRatio is the side of a gapped square relative to the box.
	gappedRatio = 0.8
	// barShrink is the thickness of a bar relative to the box.
	barShrink = 0.8
	// kappa places cubic control points so four curves approximate a circle.
	kappa = 0.5522847
)

// cell is one dark module in pixel space together with its four orthogonal
// neighbours.
type cell struct {
	x, y, size               float32
	north, south, east, west bool
}

// moduleDrawer adds the outline of one module to the rasterizer.
type moduleDrawer func(z *vector.Rasterizer, c cell)

var moduleDrawers = map[style.DrawerKind]moduleDrawer{
	style.SquareDrawer:         drawSquare,
	style.RoundedDrawer:        drawRounded,
	style.CircleDrawer:         drawCircle,
	style.GappedSquareDrawer:   drawGappedSquare,
	style.VerticalBarsDrawer:   drawVerticalBar,
	style.HorizontalBarsDrawer: drawHorizontalBar,
}

// drawStyled fills an RGBA canvas with back and draws every dark module in
// fill using the drawer of kind. Finder patterns always use square modules so
// the symbol stays easy to locate.
func (r *Renderer) drawStyled(m *encoder.Matrix, fill, back colors.RGB, kind style.DrawerKind) *image.RGBA {
	dim := r.dimension(m)
	box := r.options.BoxSize
	border := r.options.Border

	img := image.NewRGBA(image.Rect(0, 0, dim, dim))
	draw.Draw(img, img.Bounds(), image.NewUniform(back.Color()), image.Point{}, draw.Src)

	drawer, ok := moduleDrawers[kind]
	if !ok {
		drawer = drawSquare
	}

	z := vector.NewRasterizer(dim, dim)
	for row := 0; row < m.Size(); row++ {
		for col := 0; col < m.Size(); col++ {
			if !m.Dark(row, col) {
				continue
			}

			c := cell{
				x:     float32((col + border) * box),
				y:     float32((row + border) * box),
				size:  float32(box),
				north: m.Dark(row-1, col),
				south: m.Dark(row+1, col),
				east:  m.Dark(row, col+1),
				west:  m.Dark(row, col-1),
			}

			if m.IsFinder(row, col) {
				drawSquare(z, c)
				continue
			}
			drawer(z, c)
		}
	}

	z.Draw(img, img.Bounds(), image.NewUniform(fill.Color()), image.Point{})
	return img
}

func drawSquare(z *vector.Rasterizer, c cell) {
	roundedRect(z, c.x, c.y, c.x+c.size, c.y+c.size, 0, 0, 0, 0)
}

func drawGappedSquare(z *vector.Rasterizer, c cell) {
	gap := c.size * (1 - gappedRatio) / 2
	roundedRect(z, c.x+gap, c.y+gap, c.x+c.size-gap, c.y+c.size-gap, 0, 0, 0, 0)
}

func drawCircle(z *vector.Rasterizer, c cell) {
	r := c.size / 2
	roundedRect(z, c.x, c.y, c.x+c.size, c.y+c.size, r, r, r, r)
}

// drawRounded rounds each corner whose two adjoining neighbours are light.
func drawRounded(z *vector.Rasterizer, c cell) {
	r := c.size / 2
	nw := cornerRadius(!c.north && !c.west, r)
	ne := cornerRadius(!c.north && !c.east, r)
	se := cornerRadius(!c.south && !c.east, r)
	sw := cornerRadius(!c.south && !c.west, r)
	roundedRect(z, c.x, c.y, c.x+c.size, c.y+c.size, nw, ne, se, sw)
}

// drawVerticalBar draws a narrowed module that joins the modules above and
// below it, with rounded caps at the ends of a run.
func drawVerticalBar(z *vector.Rasterizer, c cell) {
	w := c.size * barShrink
	inset := (c.size - w) / 2
	r := w / 2
	top := cornerRadius(!c.north, r)
	bottom := cornerRadius(!c.south, r)
	roundedRect(z, c.x+inset, c.y, c.x+inset+w, c.y+c.size, top, top, bottom, bottom)
}

// drawHorizontalBar is drawVerticalBar rotated by a quarter turn.
func drawHorizontalBar(z *vector.Rasterizer, c cell) {
	h := c.size * barShrink
	inset := (c.size - h) / 2
	r := h / 2
	left := cornerRadius(!c.west, r)
	right := cornerRadius(!c.east, r)
	roundedRect(z, c.x, c.y+inset, c.x+c.size, c.y+inset+h, left, right, right, left)
}

func cornerRadius(round bool, r float32) float32 {
	if round {
		return r
	}
	return 0
}

// roundedRect adds a closed rectangle outline from (x0,y0) to (x1,y1) with an
// independent radius per corner, clockwise from the top-left. A zero radius
// gives a sharp corner; radii of half the side give a circle.
func roundedRect(z *vector.Rasterizer, x0, y0, x1, y1, nw, ne, se, sw float32) {
	z.MoveTo(x0+nw, y0)

	z.LineTo(x1-ne, y0)
	if ne > 0 {
		z.CubeTo(x1-ne+kappa*ne, y0, x1, y0+ne-kappa*ne, x1, y0+ne)
	}

	z.LineTo(x1, y1-se)
	if se > 0 {
		z.CubeTo(x1, y1-se+kappa*se, x1-se+kappa*se, y1, x1-se, y1)
	}

	z.LineTo(x0+sw, y1)
	if sw > 0 {
		z.CubeTo(x0+sw-kappa*sw, y1, x0, y1-sw+kappa*sw, x0, y1-sw)
	}

	z.LineTo(x0, y0+nw)
	if nw > 0 {
		z.CubeTo(x0, y0+nw-kappa*nw, x0+nw-kappa*nw, y0, x0+nw, y0)
	}

	z.ClosePath()
}
