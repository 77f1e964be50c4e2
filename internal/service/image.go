package service

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// 题图以 data URI 形式内嵌，解码后最大 5MB。
const maxImageBytes = 5 << 20

var (
	ErrImageMalformed   = errors.New("featured image is not a valid image data URI")
	ErrImageTooLarge    = errors.New("featured image exceeds the 5MB limit")
	ErrImageUnsupported = errors.New("featured image is not an accepted image type")
)

// decodeImageDataURI splits and decodes a base64 image data URI.
func decodeImageDataURI(uri string) ([]byte, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return nil, ErrImageMalformed
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, ErrImageMalformed
	}

	mediaType, ok := strings.CutSuffix(meta, ";base64")
	if !ok || !strings.HasPrefix(mediaType, "image/") {
		return nil, ErrImageMalformed
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrImageMalformed
	}
	return data, nil
}

// validateFeaturedImage enforces the intake limits: a well-formed data URI,
// decoded size within bounds, and a registered image format.
func validateFeaturedImage(uri string) error {
	data, err := decodeImageDataURI(uri)
	if err != nil {
		return err
	}
	if len(data) > maxImageBytes {
		return ErrImageTooLarge
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return ErrImageUnsupported
	}
	return nil
}

// wellFormedImageDataURI is the lenient check used at decision time, where a
// bad image is dropped rather than failing the approval.
func wellFormedImageDataURI(uri string) bool {
	_, err := decodeImageDataURI(uri)
	return err == nil
}
