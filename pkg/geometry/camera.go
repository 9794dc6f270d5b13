package geometry

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidCamera is wrapped by every camera configuration error
var ErrInvalidCamera = errors.New("invalid camera configuration")

// CameraConfig contains the thin-lens camera parameters
type CameraConfig struct {
	Center        core.Vec3 // Eye position
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // Camera-relative up direction
	VFov          float64   // Vertical field of view in degrees, in (0, 180)
	DefocusAngle  float64   // Cone angle in degrees of rays through each pixel; 0 disables depth of field
	FocusDistance float64   // Distance from the eye to the plane of perfect focus
}

// DefaultCameraConfig returns a camera at the origin looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center:        core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          90,
		DefocusAngle:  0,
		FocusDistance: 10,
	}
}

// Camera generates primary rays. All fields are derived once in NewCamera and read-only afterwards.
type Camera struct {
	config       CameraConfig
	u, v, w      core.Vec3 // Camera frame; w points from the target to the eye
	pixel00      core.Vec3 // Center of pixel (0, 0)
	pixelDeltaU  core.Vec3 // Offset to the pixel on the right
	pixelDeltaV  core.Vec3 // Offset to the pixel below
	defocusDiskU core.Vec3 // Horizontal radius of the lens disk
	defocusDiskV core.Vec3 // Vertical radius of the lens disk
}

// NewCamera validates the configuration and derives the viewport for a width x height canvas
func NewCamera(config CameraConfig, width, height int) (*Camera, error) {
	if err := config.validate(width, height); err != nil {
		return nil, err
	}

	// Rows of the view matrix are the camera basis vectors
	view := mgl64.LookAtV(toMgl(config.Center), toMgl(config.LookAt), toMgl(config.Up))
	u := fromMgl(view.Row(0).Vec3())
	v := fromMgl(view.Row(1).Vec3())
	w := fromMgl(view.Row(2).Vec3())

	theta := mgl64.DegToRad(config.VFov)
	viewportHeight := 2 * math.Tan(theta/2) * config.FocusDistance
	viewportWidth := viewportHeight * (float64(width) / float64(height))

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Multiply(-viewportHeight)

	pixelDeltaU := viewportU.Divide(float64(width))
	pixelDeltaV := viewportV.Divide(float64(height))

	viewportUpperLeft := config.Center.
		Subtract(w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := config.FocusDistance * math.Tan(mgl64.DegToRad(config.DefocusAngle/2))

	return &Camera{
		config:       config,
		u:            u,
		v:            v,
		w:            w,
		pixel00:      pixel00,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
	}, nil
}

// GetRay returns a ray through a jittered point of pixel (i, j).
// With a positive defocus angle the origin is sampled from the lens disk.
func (c *Camera) GetRay(i, j int, random *rand.Rand) core.Ray {
	offset := core.SampleSquare(random)
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y))

	origin := c.config.Center
	if c.config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(random)
	}

	return core.NewRay(origin, pixelSample.Subtract(origin))
}

// PixelCenter returns the world position of the center of pixel (i, j)
func (c *Camera) PixelCenter(i, j int) core.Vec3 {
	return c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i))).
		Add(c.pixelDeltaV.Multiply(float64(j)))
}

// Basis returns the camera frame (u right, v up, w backward)
func (c *Camera) Basis() (u, v, w core.Vec3) {
	return c.u, c.v, c.w
}

func (c *Camera) defocusDiskSample(random *rand.Rand) core.Vec3 {
	p := core.RandomInUnitDisk(random)
	return c.config.Center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}

func (config CameraConfig) validate(width, height int) error {
	switch {
	case width <= 0 || height <= 0:
		return fmt.Errorf("canvas %dx%d must be positive: %w", width, height, ErrInvalidCamera)
	case config.VFov <= 0 || config.VFov >= 180:
		return fmt.Errorf("vertical fov %v outside (0, 180): %w", config.VFov, ErrInvalidCamera)
	case config.DefocusAngle < 0:
		return fmt.Errorf("defocus angle %v is negative: %w", config.DefocusAngle, ErrInvalidCamera)
	case config.FocusDistance <= 0:
		return fmt.Errorf("focus distance %v must be positive: %w", config.FocusDistance, ErrInvalidCamera)
	}

	backward := config.Center.Subtract(config.LookAt)
	if backward.NearZero() {
		return fmt.Errorf("center and look-at coincide: %w", ErrInvalidCamera)
	}
	if config.Up.Cross(backward.Normalize()).NearZero() {
		return fmt.Errorf("up vector %v is parallel to the view direction: %w", config.Up, ErrInvalidCamera)
	}
	return nil
}

func toMgl(v core.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl64.Vec3) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
