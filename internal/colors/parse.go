package colors

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrUnknownColor is returned by Parse for expressions it cannot understand.
var ErrUnknownColor = errors.New("unknown color specifier")

var (
	hexPattern    = regexp.MustCompile(`^#(?:[0-9a-f]{3,4}|[0-9a-f]{6}|[0-9a-f]{8})$`)
	rgbPattern    = regexp.MustCompile(`^rgba?\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*(?:,\s*\d+\s*)?\)$`)
	rgbPctPattern = regexp.MustCompile(`^rgb\(\s*(\d*\.?\d+)\s*%\s*,\s*(\d*\.?\d+)\s*%\s*,\s*(\d*\.?\d+)\s*%\s*\)$`)
	hslPattern    = regexp.MustCompile(`^hsl\(\s*(\d*\.?\d+)\s*,\s*(\d*\.?\d+)\s*%\s*,\s*(\d*\.?\d+)\s*%\s*\)$`)
	hsvPattern    = regexp.MustCompile(`^hs[bv]\(\s*(\d*\.?\d+)\s*,\s*(\d*\.?\d+)\s*%\s*,\s*(\d*\.?\d+)\s*%\s*\)$`)
)

// Parse converts a hex, named or functional color specifier into RGB.
//
// Supported forms (case-insensitive):
//
//	#rgb, #rgba, #rrggbb, #rrggbbaa   alpha, when present, is discarded
//	red, cornflowerblue, ...          CSS/SVG color keywords
//	rgb(255, 0, 0), rgb(100%, 0%, 0%)
//	hsl(0, 100%, 50%)
//	hsv(0, 100%, 100%), hsb(...)
func Parse(expr string) (RGB, error) {
	text := strings.ToLower(strings.TrimSpace(expr))
	if text == "" {
		return RGB{}, fmt.Errorf("%w: empty string", ErrUnknownColor)
	}

	if c, ok := colornames.Map[text]; ok {
		return RGB{c.R, c.G, c.B}, nil
	}

	if hexPattern.MatchString(text) {
		return parseHex(text)
	}

	if m := rgbPattern.FindStringSubmatch(text); m != nil {
		var vals [3]uint8
		for i := range vals {
			n, err := strconv.Atoi(m[i+1])
			if err != nil || n > 255 {
				return RGB{}, fmt.Errorf("%w: %q: component out of range", ErrUnknownColor, expr)
			}
			vals[i] = uint8(n)
		}
		return RGB{vals[0], vals[1], vals[2]}, nil
	}

	if m := rgbPctPattern.FindStringSubmatch(text); m != nil {
		var vals [3]uint8
		for i := range vals {
			pct, err := parsePercent(m[i+1])
			if err != nil {
				return RGB{}, fmt.Errorf("%w: %q: %v", ErrUnknownColor, expr, err)
			}
			vals[i] = uint8(math.Floor(pct*255 + 0.5))
		}
		return RGB{vals[0], vals[1], vals[2]}, nil
	}

	if m := hslPattern.FindStringSubmatch(text); m != nil {
		h, s, l, err := parseHueTriple(m)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q: %v", ErrUnknownColor, expr, err)
		}
		return fromColorful(colorful.Hsl(h, s, l)), nil
	}

	if m := hsvPattern.FindStringSubmatch(text); m != nil {
		h, s, v, err := parseHueTriple(m)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q: %v", ErrUnknownColor, expr, err)
		}
		return fromColorful(colorful.Hsv(h, s, v)), nil
	}

	return RGB{}, fmt.Errorf("%w: %q", ErrUnknownColor, expr)
}

// parseHex handles the four hex layouts. Alpha digits are dropped before
// handing the value to colorful, which understands #rgb and #rrggbb.
func parseHex(text string) (RGB, error) {
	switch len(text) {
	case 5: // #rgba
		text = text[:4]
	case 9: // #rrggbbaa
		text = text[:7]
	}

	c, err := colorful.Hex(text)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q: %v", ErrUnknownColor, text, err)
	}
	return fromColorful(c), nil
}

// parseHueTriple reads hue in degrees and two percentages from a regexp match.
func parseHueTriple(m []string) (h, a, b float64, err error) {
	h, err = strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, 0, 0, err
	}
	h = math.Mod(h, 360)

	if a, err = parsePercent(m[2]); err != nil {
		return 0, 0, 0, err
	}
	if b, err = parsePercent(m[3]); err != nil {
		return 0, 0, 0, err
	}
	return h, a, b, nil
}

// parsePercent converts "42.5" into 0.425, rejecting values above 100.
func parsePercent(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if v > 100 {
		return 0, fmt.Errorf("percentage %s%% out of range", s)
	}
	return v / 100, nil
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}
