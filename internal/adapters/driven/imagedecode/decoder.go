// Package imagedecode reports the format and dimensions of raster images.
package imagedecode

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // registers the webp decoder

	"github.com/custodia-labs/gittable/internal/core/domain"
	"github.com/custodia-labs/gittable/internal/core/ports/driven"
)

// Ensure Decoder implements the interface.
var _ driven.ImageDecoder = Decoder{}

// Decoder decodes png, jpeg, gif, bmp, tiff and webp.
// Dimensions honour EXIF orientation, as an image viewer would show them.
type Decoder struct{}

// New returns an image decoder.
func New() Decoder {
	return Decoder{}
}

// Decode returns the format name and oriented width and height of data.
func (Decoder) Decode(data []byte) (string, int, int, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", 0, 0, fmt.Errorf("%w: %v", domain.ErrUnsupportedFormat, err)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return "", 0, 0, fmt.Errorf("decode %s: %w", format, err)
	}

	b := img.Bounds()
	return format, b.Dx(), b.Dy(), nil
}
