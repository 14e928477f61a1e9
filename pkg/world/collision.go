package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// AABB is an axis-aligned bounding box
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// BoxAround returns a cube of the given half extent centred on p
func BoxAround(p mgl32.Vec3, halfExtent float32) AABB {
	e := mgl32.Vec3{halfExtent, halfExtent, halfExtent}
	return AABB{Min: p.Sub(e), Max: p.Add(e)}
}

// CellBox returns the footprint of a grid cell. Walls are treated as unbounded
// in Y so a jump cannot clear them.
func CellBox(c Cell, groundY float32) AABB {
	x, z := float32(c.X), float32(c.Z)
	return AABB{
		Min: mgl32.Vec3{x - 0.5, groundY, z - 0.5},
		Max: mgl32.Vec3{x + 0.5, groundY, z + 0.5},
	}
}

// Overlaps tests strict overlap on the X and Z axes only
func (b AABB) Overlaps(o AABB) bool {
	return b.Max.X() > o.Min.X() && b.Min.X() < o.Max.X() &&
		b.Max.Z() > o.Min.Z() && b.Min.Z() < o.Max.Z()
}

// CollidesAt checks a camera box of the given radius against the wall cells
// in the 3x3 neighbourhood of the camera's rounded cell. Cells beyond the grid
// are walls. It returns the first wall hit.
func (m *Maze) CollidesAt(pos mgl32.Vec3, radius float32) (Cell, bool) {
	center := CellAt(pos.X(), pos.Z())
	camera := BoxAround(pos, radius)

	for i := center.X - 1; i <= center.X+1; i++ {
		for j := center.Z - 1; j <= center.Z+1; j++ {
			if !m.IsWall(i, j) {
				continue
			}
			cell := Cell{X: i, Z: j}
			if camera.Overlaps(CellBox(cell, pos.Y())) {
				return cell, true
			}
		}
	}

	return Cell{}, false
}

// roundToInt rounds half away from zero
func roundToInt(v float32) int {
	return int(math.Round(float64(v)))
}
