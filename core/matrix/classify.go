package matrix

// Region partitions matrix cells into the parts that follow different
// rendering paths.
type Region int

const (
	// RegionData cells carry payload and error-correction bits.
	RegionData Region = iota
	// RegionEye cells belong to one of the three fixed 7x7 finder patterns.
	RegionEye
)

// Classify reports whether the cell at (row, col) of a size-by-size matrix
// falls inside one of the three finder patterns: top-left, top-right, or
// bottom-left corner. Pure and total; any coordinate outside the three
// corners is data.
func Classify(row, col, size int) Region {
	switch {
	case row < 7 && col < 7:
		return RegionEye
	case row < 7 && col >= size-7:
		return RegionEye
	case row >= size-7 && col < 7:
		return RegionEye
	default:
		return RegionData
	}
}

// Neighbors holds the drawable state of a cell's four axis neighbours.
// Connector styles use it to decide which sides to bridge; a neighbour that
// is suppressed (off, occluded, or inside an eye) never receives a connector.
type Neighbors struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

// NeighborsOf evaluates the drawable predicate for the four axis neighbours
// of (row, col). The predicate must apply the same classification and
// occlusion rules used for the cell itself.
func NeighborsOf(row, col int, drawable func(row, col int) bool) Neighbors {
	return Neighbors{
		Up:    drawable(row-1, col),
		Down:  drawable(row+1, col),
		Left:  drawable(row, col-1),
		Right: drawable(row, col+1),
	}
}
