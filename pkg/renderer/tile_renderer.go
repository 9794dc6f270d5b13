package renderer

import (
	"math/rand"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/integrator"
)

// TileRenderer renders rows of the image into a shared frame buffer using an integrator.
// It holds no mutable state of its own, so one instance serves every worker.
type TileRenderer struct {
	camera          *geometry.Camera
	integrator      integrator.Integrator
	frame           *FrameBuffer
	samplesPerPixel int
	maxBounces      int
}

// NewTileRenderer creates a tile renderer writing into frame
func NewTileRenderer(camera *geometry.Camera, integratorInst integrator.Integrator, frame *FrameBuffer, samplesPerPixel, maxBounces int) *TileRenderer {
	return &TileRenderer{
		camera:          camera,
		integrator:      integratorInst,
		frame:           frame,
		samplesPerPixel: samplesPerPixel,
		maxBounces:      maxBounces,
	}
}

// RenderBand renders every pixel of band, calling rowDone after each finished row
func (tr *TileRenderer) RenderBand(band RowBand, random *rand.Rand, rowDone func()) {
	for j := band.StartRow; j < band.EndRow; j++ {
		for i := 0; i < tr.frame.Width; i++ {
			pixel := tr.samplePixelStats(i, j, random)
			tr.frame.store(tr.frame.Index(i, j), &pixel)
		}
		if rowDone != nil {
			rowDone()
		}
	}
}

// SamplePixel averages samplesPerPixel radiance estimates through pixel (i, j)
func (tr *TileRenderer) SamplePixel(i, j int, random *rand.Rand) core.Vec3 {
	pixel := tr.samplePixelStats(i, j, random)
	return pixel.GetColor()
}

func (tr *TileRenderer) samplePixelStats(i, j int, random *rand.Rand) PixelStats {
	var pixel PixelStats
	for sample := 0; sample < tr.samplesPerPixel; sample++ {
		ray := tr.camera.GetRay(i, j, random)
		if tr.frame.HasAux() {
			color, surface := tr.integrator.Trace(ray, tr.maxBounces, random)
			pixel.AddSample(color)
			pixel.AddSurface(surface)
		} else {
			pixel.AddSample(tr.integrator.EstimateRadiance(ray, tr.maxBounces, random))
		}
	}
	return pixel
}
