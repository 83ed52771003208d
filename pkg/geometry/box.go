package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Box is an axis-aligned box given by its min and max corners
type Box struct {
	Min core.Vec3 // Minimum corner
	Max core.Vec3 // Maximum corner
}

// NewBox creates an axis-aligned box from its corners
func NewBox(min, max core.Vec3) *Box {
	return &Box{Min: min, Max: max}
}

// slabBound is a candidate ray parameter tagged with the face it lies on
type slabBound struct {
	t    float64
	face Face
}

var (
	minFaces = [3]Face{FaceNegX, FaceNegY, FaceNegZ}
	maxFaces = [3]Face{FacePosX, FacePosY, FacePosZ}
)

// slab returns the ordered entry and exit bounds of the ray for one axis.
// A zero direction component divides to ±Inf (or NaN when the origin
// lies exactly on the bound), which the comparisons in Intersect absorb.
func (b *Box) slab(ray core.Ray, axis int) (near, far slabBound) {
	origin := ray.Origin.Component(axis)
	direction := ray.Direction.Component(axis)

	near = slabBound{t: (b.Min.Component(axis) - origin) / direction, face: minFaces[axis]}
	far = slabBound{t: (b.Max.Component(axis) - origin) / direction, face: maxFaces[axis]}

	if near.t > far.t {
		near, far = far, near
	}
	return near, far
}

// Intersect tests the ray against the box using the slab method.
// The accepted t is the entry distance when it is non-negative, otherwise
// the exit distance, so rays starting inside the box report the face they
// leave through. The face is tracked through the reduction; ties keep the
// earlier axis.
func (b *Box) Intersect(ray core.Ray) HitInfo {
	entry, exit := b.slab(ray, 0)

	for axis := 1; axis < 3; axis++ {
		near, far := b.slab(ray, axis)

		if entry.t > far.t || near.t > exit.t {
			return HitInfo{}
		}

		if near.t > entry.t {
			entry = near
		}
		if far.t < exit.t {
			exit = far
		}
	}

	// Box entirely behind the ray origin
	if entry.t < 0 && exit.t < 0 {
		return HitInfo{}
	}

	accepted := exit
	if entry.t >= 0 {
		accepted = entry
	}

	return HitInfo{
		Hit:    true,
		T:      accepted.t,
		Point:  ray.At(accepted.t),
		Normal: accepted.face.Normal(),
		Face:   accepted.face,
	}
}

// BoundingBox returns the box itself as an AABB
func (b *Box) BoundingBox() core.AABB {
	return core.NewAABB(b.Min, b.Max)
}
