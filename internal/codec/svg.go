package codec

import (
	"bytes"
	"fmt"
	"image"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/ironsheep/anybitmap/internal/pixel"
)

// maxSVGSide bounds the raster size of a vector image.
const maxSVGSide = 16384

// decodeSVG rasterizes an SVG document at its view box size onto a
// transparent canvas.
func decodeSVG(data []byte) ([]*pixel.Frame, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, err
	}

	w := int(math.Ceil(icon.ViewBox.W))
	h := int(math.Ceil(icon.ViewBox.H))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: svg has no size", ErrDecodeFailure)
	}
	if w > maxSVGSide || h > maxSVGSide {
		return nil, fmt.Errorf("%w: svg size %dx%d exceeds %d", ErrDecodeFailure, w, h, maxSVGSide)
	}

	icon.SetTarget(0, 0, float64(w), float64(h))
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, canvas, canvas.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)

	f, err := pixel.FrameFromImage(canvas, pixel.RGBA32)
	if err != nil {
		return nil, err
	}
	return []*pixel.Frame{f}, nil
}
