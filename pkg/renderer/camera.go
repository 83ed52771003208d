package renderer

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Camera projection defaults
const (
	DefaultVFov = 60.0 // Vertical field of view in degrees
	DefaultNear = 0.1  // Near clip plane
	DefaultFar  = 10.0 // Far clip plane
)

var (
	// ErrInvalidDimensions is returned for images with zero or negative area
	ErrInvalidDimensions = errors.New("image dimensions must be positive")
	// ErrDegenerateCamera is returned when the view-projection matrix cannot be inverted
	ErrDegenerateCamera = errors.New("camera view-projection matrix is not invertible")
)

// RayModel selects how an unprojected near-plane point becomes a ray direction
type RayModel int

const (
	// RayModelPerspective divides by w and aims from the camera position
	// through the unprojected point.
	RayModelPerspective RayModel = iota
	// RayModelLegacy normalizes the homogeneous xyz of the unprojected point
	// directly, treating it as a direction from the world origin.
	RayModelLegacy
)

func (m RayModel) String() string {
	switch m {
	case RayModelPerspective:
		return "perspective"
	case RayModelLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("RayModel(%d)", int(m))
	}
}

// ParseRayModel parses "perspective" or "legacy"
func ParseRayModel(s string) (RayModel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "perspective", "":
		return RayModelPerspective, nil
	case "legacy":
		return RayModelLegacy, nil
	default:
		return 0, fmt.Errorf("unknown ray model %q (want perspective or legacy)", s)
	}
}

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	Center   core.Vec3 // Camera position
	LookAt   core.Vec3 // Point the camera is looking at
	Up       core.Vec3 // Up direction
	Width    int       // Image width in pixels
	Height   int       // Image height in pixels
	VFov     float64   // Vertical field of view in degrees (0 = DefaultVFov)
	Near     float64   // Near clip plane (0 = DefaultNear)
	Far      float64   // Far clip plane (0 = DefaultFar)
	RayModel RayModel  // Ray direction derivation
}

func (c CameraConfig) withDefaults() CameraConfig {
	if c.VFov == 0 {
		c.VFov = DefaultVFov
	}
	if c.Near == 0 {
		c.Near = DefaultNear
	}
	if c.Far == 0 {
		c.Far = DefaultFar
	}
	return c
}

// Camera generates one world-space ray per pixel from a combined
// view-projection matrix
type Camera struct {
	config         CameraConfig
	origin         core.Vec3
	viewProjection mgl64.Mat4
	inverse        mgl64.Mat4
}

// NewCamera builds the view-projection matrix and its inverse once
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, config.Width, config.Height)
	}
	config = config.withDefaults()

	view := mgl64.LookAtV(toMgl(config.Center), toMgl(config.LookAt), toMgl(config.Up))

	aspectRatio := float64(config.Width) / float64(config.Height)
	projection := mgl64.Perspective(mgl64.DegToRad(config.VFov), aspectRatio, config.Near, config.Far)

	viewProjection := projection.Mul4(view)

	// LookAt with a zero-length or up-parallel view direction yields NaN entries
	det := viewProjection.Det()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return nil, ErrDegenerateCamera
	}

	return &Camera{
		config:         config,
		origin:         config.Center,
		viewProjection: viewProjection,
		inverse:        viewProjection.Inv(),
	}, nil
}

func toMgl(v core.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// GetRay returns the ray for pixel row i, column j.
// Row 0 is the top of the image.
func (c *Camera) GetRay(i, j int) core.Ray {
	ndcX := 2.0*float64(j)/float64(c.config.Width) - 1.0
	ndcY := 1.0 - 2.0*float64(i)/float64(c.config.Height)

	// -1 selects the near plane
	p := c.inverse.Mul4x1(mgl64.Vec4{ndcX, ndcY, -1, 1})

	var direction core.Vec3
	switch c.config.RayModel {
	case RayModelLegacy:
		direction = core.NewVec3(p[0], p[1], p[2]).Normalize()
	default:
		nearPoint := core.NewVec3(p[0]/p[3], p[1]/p[3], p[2]/p[3])
		direction = nearPoint.Subtract(c.origin).Normalize()
	}

	return core.NewRay(c.origin, direction)
}

// Origin returns the camera position shared by every ray
func (c *Camera) Origin() core.Vec3 {
	return c.origin
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.config.Width
}

// Height returns the image height in pixels
func (c *Camera) Height() int {
	return c.config.Height
}

// ViewProjection returns the combined projection * view matrix
func (c *Camera) ViewProjection() mgl64.Mat4 {
	return c.viewProjection
}

// GetCameraForward returns the normalized viewing direction
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.config.LookAt.Subtract(c.config.Center).Normalize()
}
