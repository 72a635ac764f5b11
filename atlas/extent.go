package atlas

import "fmt"

// Extent is a three-component unsigned vector, used both for the size of a region and for its
// position within a page
type Extent struct {
	X uint32
	Y uint32
	Z uint32
}

var (
	Zero  = Extent{}
	AxisX = Extent{X: 1}
	AxisY = Extent{Y: 1}
	AxisZ = Extent{Z: 1}
)

// Splat returns an Extent with all three components set to value
func Splat(value uint32) Extent {
	return Extent{X: value, Y: value, Z: value}
}

func (e Extent) Add(other Extent) Extent {
	return Extent{X: e.X + other.X, Y: e.Y + other.Y, Z: e.Z + other.Z}
}

// Sub subtracts component-wise. The caller must ensure no component of other exceeds
// the matching component of e.
func (e Extent) Sub(other Extent) Extent {
	return Extent{X: e.X - other.X, Y: e.Y - other.Y, Z: e.Z - other.Z}
}

func (e Extent) Mul(other Extent) Extent {
	return Extent{X: e.X * other.X, Y: e.Y * other.Y, Z: e.Z * other.Z}
}

// LessEqual returns true if every component of e is less than or equal to the matching component of other
func (e Extent) LessEqual(other Extent) bool {
	return e.X <= other.X && e.Y <= other.Y && e.Z <= other.Z
}

// AnyZero returns true if at least one component is zero
func (e Extent) AnyZero() bool {
	return e.X == 0 || e.Y == 0 || e.Z == 0
}

// Volume is the number of cells covered by a region of this size
func (e Extent) Volume() uint64 {
	return uint64(e.X) * uint64(e.Y) * uint64(e.Z)
}

// fitsWithin reports whether a region of this size placed at position stays inside dim. The sum
// is computed in 64 bits so that oversized requests cannot wrap around.
func (e Extent) fitsWithin(position, dim Extent) bool {
	return uint64(position.X)+uint64(e.X) <= uint64(dim.X) &&
		uint64(position.Y)+uint64(e.Y) <= uint64(dim.Y) &&
		uint64(position.Z)+uint64(e.Z) <= uint64(dim.Z)
}

func (e Extent) String() string {
	return fmt.Sprintf("(%d, %d, %d)", e.X, e.Y, e.Z)
}
