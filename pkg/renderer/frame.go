package renderer

import "github.com/df07/go-sphere-pathtracer/pkg/core"

// FrameBuffer holds linear radiance per pixel in row-major order, top row first.
// The auxiliary slices are nil unless auxiliary passes were requested.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []core.Vec3
	Albedo []core.Vec3
	Normal []core.Vec3
	Depth  []float64
}

// NewFrameBuffer allocates a zeroed buffer
func NewFrameBuffer(width, height int, auxPasses bool) *FrameBuffer {
	size := width * height
	frame := &FrameBuffer{
		Width:  width,
		Height: height,
		Color:  make([]core.Vec3, size),
	}
	if auxPasses {
		frame.Albedo = make([]core.Vec3, size)
		frame.Normal = make([]core.Vec3, size)
		frame.Depth = make([]float64, size)
	}
	return frame
}

// Index returns the offset of pixel (i, j)
func (f *FrameBuffer) Index(i, j int) int {
	return j*f.Width + i
}

// At returns the color of pixel (i, j)
func (f *FrameBuffer) At(i, j int) core.Vec3 {
	return f.Color[f.Index(i, j)]
}

// HasAux reports whether the auxiliary passes are present
func (f *FrameBuffer) HasAux() bool {
	return f.Albedo != nil
}

// store writes one finished pixel; callers guarantee no other goroutine owns index
func (f *FrameBuffer) store(index int, pixel *PixelStats) {
	f.Color[index] = pixel.GetColor()
	if f.HasAux() {
		f.Albedo[index] = pixel.GetAlbedo()
		f.Normal[index] = pixel.GetNormal()
		f.Depth[index] = pixel.GetDepth()
	}
}
