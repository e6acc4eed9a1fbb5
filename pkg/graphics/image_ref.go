package graphics

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// ImageRef is an opaque reference to decoded image pixels, used for the
// background and scope-bar background image options. The pixels are held as
// PNG so the payload can cross the bridge without a second encode.
type ImageRef struct {
	width  int
	height int
	data   []byte // PNG-encoded
}

// DecodeImage reads a PNG or JPEG image into an ImageRef.
func DecodeImage(r io.Reader) (*ImageRef, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("graphics: decode image: %w", err)
	}
	return fromImage(img)
}

// Width returns the image width in pixels.
func (ref *ImageRef) Width() int { return ref.width }

// Height returns the image height in pixels.
func (ref *ImageRef) Height() int { return ref.height }

// Scaled returns a copy resampled to the given pixel bounds. Native bars
// expect images pre-sized to their metrics, so scaling happens on the Go
// side before the payload crosses the bridge.
func (ref *ImageRef) Scaled(width, height int) (*ImageRef, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("graphics: invalid scale bounds %dx%d", width, height)
	}
	if width == ref.width && height == ref.height {
		return ref, nil
	}

	src, err := png.Decode(bytes.NewReader(ref.data))
	if err != nil {
		return nil, fmt.Errorf("graphics: re-decode image: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return fromImage(dst)
}

// Payload returns the bridge representation of the image.
func (ref *ImageRef) Payload() map[string]any {
	if ref == nil {
		return nil
	}
	return map[string]any{
		"width":  ref.width,
		"height": ref.height,
		"data":   base64.StdEncoding.EncodeToString(ref.data),
	}
}

func fromImage(img image.Image) (*ImageRef, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("graphics: encode image: %w", err)
	}
	b := img.Bounds()
	return &ImageRef{
		width:  b.Dx(),
		height: b.Dy(),
		data:   buf.Bytes(),
	}, nil
}
