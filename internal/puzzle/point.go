package puzzle

// Point is a 2D grid coordinate. X is the row, Y the column, matching the
// scan order of the daily inputs.
type Point[T int | int32 | int64] struct {
	X, Y T
}

// Pt is shorthand for constructing a Point.
func Pt[T int | int32 | int64](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}
