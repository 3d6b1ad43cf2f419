// Package colors resolves user supplied color expressions into RGB values.
//
// Resolution never fails: expressions that cannot be understood are reported
// through the logger and replaced with black, so callers can always rely on a
// valid color being returned.
package colors

import (
	"fmt"
	"image/color"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ankek/terraform-provider-qrcode/internal/logger"
)

// RGB is an opaque 8-bit color. It satisfies color.Color.
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// RGBA implements color.Color. Alpha is always fully opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Color returns c as an opaque color.RGBA.
func (c RGB) Color() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Hex returns the color as an upper-case #RRGGBB string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}

// Resolver turns color expressions into RGB values, logging a warning for
// every expression it has to replace with black.
type Resolver struct {
	log *slog.Logger
}

// NewResolver creates a resolver reporting fallbacks to log.
// A nil logger uses slog.Default().
func NewResolver(log *slog.Logger) *Resolver {
	return &Resolver{log: logger.OrDefault(log)}
}

// Resolve parses expr and always returns a valid color.
//
// Accepted forms, first match wins:
//   - "R,G,B" with three integers in [0,255]
//   - anything Parse understands (hex, color names, rgb()/hsl()/hsv())
//
// Anything else resolves to black and a warning is logged.
func (r *Resolver) Resolve(expr string) RGB {
	expr = strings.TrimSpace(expr)

	// Comma separated triple like "255,0,0"
	if strings.Contains(expr, ",") && !strings.HasPrefix(expr, "#") {
		if c, ok := parseTriple(expr); ok {
			return c
		}
	}

	c, err := Parse(expr)
	if err != nil {
		r.log.Warn("invalid color, using black as fallback",
			slog.String("color", expr),
			logger.Color("fallback", Black),
			logger.Error(err),
		)
		return Black
	}
	return c
}

// Resolve resolves expr with a resolver logging to slog.Default().
func Resolve(expr string) RGB {
	return NewResolver(nil).Resolve(expr)
}

// parseTriple accepts exactly three comma separated integers in [0,255].
// Segments may carry surrounding whitespace.
func parseTriple(expr string) (RGB, bool) {
	parts := strings.Split(expr, ",")
	if len(parts) != 3 {
		return RGB{}, false
	}

	var vals [3]uint8
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return RGB{}, false
		}
		vals[i] = uint8(n)
	}
	return RGB{vals[0], vals[1], vals[2]}, true
}
