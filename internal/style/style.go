// Package style maps style names onto module drawing strategies.
package style

import "strings"

// Style identifies how the dark modules of a symbol are drawn.
type Style int

const (
	Square Style = iota
	Rounded
	Dots
	Gapped
	Vertical
	Horizontal
)

// DrawerKind is the module drawer a style renders with.
type DrawerKind int

const (
	SquareDrawer DrawerKind = iota
	RoundedDrawer
	CircleDrawer
	GappedSquareDrawer
	VerticalBarsDrawer
	HorizontalBarsDrawer
)

// Descriptor is the rendering configuration of a style.
type Descriptor struct {
	Drawer DrawerKind
	// Styled is false only for the plain square style, which renders on the
	// fast unstyled path with no per-module drawer.
	Styled bool
}

var names = [...]string{
	Square:     "square",
	Rounded:    "rounded",
	Dots:       "dots",
	Gapped:     "gapped",
	Vertical:   "vertical",
	Horizontal: "horizontal",
}

var descriptors = [...]Descriptor{
	Square:     {Drawer: SquareDrawer, Styled: false},
	Rounded:    {Drawer: RoundedDrawer, Styled: true},
	Dots:       {Drawer: CircleDrawer, Styled: true},
	Gapped:     {Drawer: GappedSquareDrawer, Styled: true},
	Vertical:   {Drawer: VerticalBarsDrawer, Styled: true},
	Horizontal: {Drawer: HorizontalBarsDrawer, Styled: true},
}

// Select returns the style called name. Matching ignores case and
// surrounding whitespace; unknown names select Square.
func Select(name string) Style {
	s, ok := Lookup(name)
	if !ok {
		return Square
	}
	return s
}

// Lookup is like Select but reports whether name was recognised.
func Lookup(name string) (Style, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range names {
		if n == name {
			return Style(i), true
		}
	}
	return Square, false
}

// Describe returns the drawer configuration for s. Out of range values
// describe Square.
func Describe(s Style) Descriptor {
	if !s.valid() {
		return descriptors[Square]
	}
	return descriptors[s]
}

// Names lists every style name in declaration order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names[:])
	return out
}

func (s Style) String() string {
	if !s.valid() {
		return names[Square]
	}
	return names[s]
}

func (s Style) valid() bool {
	return s >= Square && int(s) < len(names)
}
