package output

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThumbnail_PreservesAspect(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 50))
	thumb := Thumbnail(img, 20)
	assert.Equal(t, 20, thumb.Bounds().Dx())
	assert.Equal(t, 10, thumb.Bounds().Dy())
}

func TestThumbnail_NoUpscale(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 9))
	assert.Same(t, img, Thumbnail(img, 64))
	assert.Same(t, img, Thumbnail(img, 0))
}
