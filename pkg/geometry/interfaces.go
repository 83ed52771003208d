package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Primitive is anything a camera ray can be tested against
type Primitive interface {
	Intersect(ray core.Ray) HitInfo
	BoundingBox() core.AABB
}

// HitInfo describes the result of a single ray-primitive test
type HitInfo struct {
	Hit    bool      // Whether the ray hit the primitive
	T      float64   // Parameter t along the ray
	Point  core.Vec3 // World-space hit point
	Normal core.Vec3 // Outward unit normal at the hit point
	Face   Face      // Box face that produced the hit (FaceNone for spheres)
}

// Face identifies one of the six faces of an axis-aligned box
type Face int

const (
	FaceNone Face = iota
	FaceNegX
	FacePosX
	FaceNegY
	FacePosY
	FaceNegZ
	FacePosZ
)

var faceNormals = [...]core.Vec3{
	FaceNone: {},
	FaceNegX: {X: -1},
	FacePosX: {X: 1},
	FaceNegY: {Y: -1},
	FacePosY: {Y: 1},
	FaceNegZ: {Z: -1},
	FacePosZ: {Z: 1},
}

var faceNames = [...]string{"none", "-X", "+X", "-Y", "+Y", "-Z", "+Z"}

// Normal returns the outward axis-aligned unit normal of the face
func (f Face) Normal() core.Vec3 {
	if f < FaceNone || int(f) >= len(faceNormals) {
		return core.Vec3{}
	}
	return faceNormals[f]
}

func (f Face) String() string {
	if f < FaceNone || int(f) >= len(faceNames) {
		return "unknown"
	}
	return faceNames[f]
}
