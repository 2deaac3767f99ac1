// pkg/geom/box.go
package geom

import rl "github.com/gen2brain/raylib-go/raylib"

// BoxAt returns the AABB centered at center with the given half extents.
func BoxAt(center, half rl.Vector3) rl.BoundingBox {
	return rl.BoundingBox{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

// CubeAt returns the AABB of a cube centered at center.
func CubeAt(center rl.Vector3, halfExtent float32) rl.BoundingBox {
	return BoxAt(center, rl.NewVector3(halfExtent, halfExtent, halfExtent))
}

// Overlaps reports whether two AABBs intersect. Touching faces count as an
// overlap, matching raylib's CheckCollisionBoxes.
func Overlaps(a, b rl.BoundingBox) bool {
	return a.Max.X >= b.Min.X && a.Min.X <= b.Max.X &&
		a.Max.Y >= b.Min.Y && a.Min.Y <= b.Max.Y &&
		a.Max.Z >= b.Min.Z && a.Min.Z <= b.Max.Z
}

// HorizontalDir returns the Y-ignored unit vector from a to b, or a zero
// vector when the horizontal distance is zero.
func HorizontalDir(from, to rl.Vector3) rl.Vector3 {
	d := rl.NewVector3(to.X-from.X, 0, to.Z-from.Z)
	if d.X == 0 && d.Z == 0 {
		return rl.Vector3{}
	}
	return rl.Vector3Normalize(d)
}
