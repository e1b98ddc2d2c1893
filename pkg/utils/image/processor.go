package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"mime/multipart"

	"github.com/chai2010/webp"
)

const (
	MaxImageSize = 10 * 1024 * 1024 // 10MB
)

var (
	ErrFileSize = errors.New("file size exceeds limit of 10MB")
	ErrFileType = errors.New("invalid file type. Allowed types: JPG, PNG, WEBP")

	AllowedImageTypes = map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/webp": true,
	}
)

// ProcessImage validates and re-encodes an uploaded image before it is
// handed to the image CDN. Re-encoding strips anything that isn't pixel
// data and normalizes quality.
func ProcessImage(file *multipart.FileHeader) (*bytes.Buffer, string, error) {
	if file.Size > MaxImageSize {
		return nil, "", ErrFileSize
	}
	if !AllowedImageTypes[file.Header.Get("Content-Type")] {
		return nil, "", ErrFileType
	}

	src, err := file.Open()
	if err != nil {
		return nil, "", fmt.Errorf("could not open file: %v", err)
	}
	defer src.Close()

	img, format, err := image.Decode(src)
	if err != nil {
		return nil, "", fmt.Errorf("could not decode image: %v", err)
	}

	buf := new(bytes.Buffer)
	switch format {
	case "jpeg":
		err = jpeg.Encode(buf, img, &jpeg.Options{Quality: 85})
	case "png":
		err = png.Encode(buf, img)
	case "webp":
		err = webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: 85})
	default:
		return nil, "", fmt.Errorf("unsupported image format: %s", format)
	}
	if err != nil {
		return nil, "", fmt.Errorf("could not encode image: %v", err)
	}

	contentType := fmt.Sprintf("image/%s", format)
	return buf, contentType, nil
}
