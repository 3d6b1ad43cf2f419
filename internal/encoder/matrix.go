package encoder

// finderSize is the width of a finder pattern in modules.
const finderSize = 7

// Matrix is the module grid of a symbol without its quiet zone.
// It is immutable once built.
type Matrix struct {
	version int
	modules [][]bool
}

func newMatrix(version int, modules [][]bool) *Matrix {
	return &Matrix{version: version, modules: modules}
}

// NewMatrix builds a matrix from a square grid of modules, true being dark.
// The grid is copied.
func NewMatrix(version int, modules [][]bool) *Matrix {
	cp := make([][]bool, len(modules))
	for i, row := range modules {
		cp[i] = append([]bool(nil), row...)
	}
	return newMatrix(version, cp)
}

// Version returns the symbol version (1-40).
func (m *Matrix) Version() int {
	return m.version
}

// Size returns the number of modules per side.
func (m *Matrix) Size() int {
	return len(m.modules)
}

// Dark reports whether the module at row, col is dark. Coordinates outside
// the symbol are light.
func (m *Matrix) Dark(row, col int) bool {
	if row < 0 || col < 0 || row >= len(m.modules) || col >= len(m.modules[row]) {
		return false
	}
	return m.modules[row][col]
}

// IsFinder reports whether row, col lies inside one of the three finder
// patterns in the top-left, top-right and bottom-left corners.
func (m *Matrix) IsFinder(row, col int) bool {
	n := m.Size()
	top := row < finderSize
	left := col < finderSize
	right := col >= n-finderSize
	bottom := row >= n-finderSize
	return (top && left) || (top && right) || (bottom && left)
}
