package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// Discriminant returns b² - 4ac of the ray-sphere quadratic
func (s *Sphere) Discriminant(ray core.Ray) float64 {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	return b*b - 4*a*c
}

// Intersect reports whether the ray's line touches the sphere.
// Only the hit flag is set; there is no check that the intersection
// lies in front of the ray origin, and tangent rays count as hits.
func (s *Sphere) Intersect(ray core.Ray) HitInfo {
	return HitInfo{Hit: s.Discriminant(ray) >= 0}
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	)
}
