package output

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
)

// intensity keeps quantized channels below 256
var intensity = core.NewInterval(0.0, 0.999)

// ToneMap compresses linear radiance in [0,∞) into [0,1) with x/(1+x)
func ToneMap(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return x / (1 + x)
}

// LinearToGamma applies gamma 2 correction
func LinearToGamma(x float64) float64 {
	if x > 0 {
		return math.Sqrt(x)
	}
	return 0
}

// Quantize maps a display value in [0,1] to an 8-bit channel
func Quantize(x float64) uint8 {
	return uint8(256 * intensity.Clamp(x))
}

// DisplayColor converts a linear radiance triple to an 8-bit sRGB-ish color
func DisplayColor(c core.Vec3) color.RGBA {
	return color.RGBA{
		R: Quantize(LinearToGamma(ToneMap(c.X))),
		G: Quantize(LinearToGamma(ToneMap(c.Y))),
		B: Quantize(LinearToGamma(ToneMap(c.Z))),
		A: 255,
	}
}

// ToImage converts the color pass of a finished frame to an image
func ToImage(frame *renderer.FrameBuffer) *image.RGBA {
	return toImage(frame.Width, frame.Height, func(idx int) color.RGBA {
		return DisplayColor(frame.Color[idx])
	})
}

// AlbedoImage renders the albedo pass with gamma correction only; albedo is already in [0,1]
func AlbedoImage(frame *renderer.FrameBuffer) *image.RGBA {
	if !frame.HasAux() {
		return nil
	}
	return toImage(frame.Width, frame.Height, func(idx int) color.RGBA {
		a := frame.Albedo[idx]
		return color.RGBA{
			R: Quantize(LinearToGamma(a.X)),
			G: Quantize(LinearToGamma(a.Y)),
			B: Quantize(LinearToGamma(a.Z)),
			A: 255,
		}
	})
}

// NormalImage maps normals from [-1,1] to [0,1] per axis
func NormalImage(frame *renderer.FrameBuffer) *image.RGBA {
	if !frame.HasAux() {
		return nil
	}
	return toImage(frame.Width, frame.Height, func(idx int) color.RGBA {
		n := frame.Normal[idx]
		return color.RGBA{
			R: Quantize(0.5 * (n.X + 1)),
			G: Quantize(0.5 * (n.Y + 1)),
			B: Quantize(0.5 * (n.Z + 1)),
			A: 255,
		}
	})
}

// DepthImage renders distance as grey normalized by the farthest hit; misses stay black
func DepthImage(frame *renderer.FrameBuffer) *image.RGBA {
	if !frame.HasAux() {
		return nil
	}

	maxDepth := 0.0
	for _, d := range frame.Depth {
		maxDepth = max(maxDepth, d)
	}

	return toImage(frame.Width, frame.Height, func(idx int) color.RGBA {
		v := uint8(0)
		if maxDepth > 0 {
			v = Quantize(frame.Depth[idx] / maxDepth)
		}
		return color.RGBA{R: v, G: v, B: v, A: 255}
	})
}

func toImage(width, height int, pixel func(idx int) color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			img.SetRGBA(i, j, pixel(j*width+i))
		}
	}
	return img
}
