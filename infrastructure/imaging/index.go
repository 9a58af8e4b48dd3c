package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"
)

var ErrUndecodable = errors.New("image could not be decoded")

const minDimension = 16

// Decode turns raw bytes into a pixel buffer. Supported formats are
// jpeg, png and gif. Returns the detected format name alongside the image.
func Decode(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", ErrUndecodable
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", ErrUndecodable
	}
	bounds := img.Bounds()
	if bounds.Dx() < minDimension || bounds.Dy() < minDimension {
		return nil, "", fmt.Errorf("image dimensions too small: %dx%d", bounds.Dx(), bounds.Dy())
	}
	return img, format, nil
}

// Luma converts an image into its luma plane using the Rec. 601 weights.
// Values are in [0, 255].
func Luma(img image.Image) [][]float64 {
	bounds := img.Bounds()
	plane := make([][]float64, bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := make([]float64, bounds.Dx())
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			row[x-bounds.Min.X] = (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 257.0
		}
		plane[y-bounds.Min.Y] = row
	}
	return plane
}

// Crop copies the given region into a standalone image. The rectangle is
// clamped to the source bounds.
func Crop(img image.Image, rect image.Rectangle) image.Image {
	rect = rect.Intersect(img.Bounds())
	cropped := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(cropped, cropped.Bounds(), img, rect.Min, draw.Src)
	return cropped
}

func EncodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
