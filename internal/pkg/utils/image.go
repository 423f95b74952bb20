package utils

import (
	"encoding/base64"
	"errors"
	"mime"
	"strings"
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// DecodeBase64Image decodes a data URL such as "data:image/jpeg;base64,..."
// and returns the bytes, the content type and a file extension.
func DecodeBase64Image(encodedImage string) ([]byte, string, string, error) {
	parts := strings.SplitN(encodedImage, ",", 2)
	if len(parts) != 2 || !strings.HasPrefix(parts[0], "data:") {
		return nil, "", "", errors.New("invalid base64 image")
	}

	header := strings.TrimPrefix(parts[0], "data:")
	semicolon := strings.Index(header, ";")
	if semicolon < 0 || header[semicolon+1:] != "base64" {
		return nil, "", "", errors.New("image is not base64 encoded")
	}
	contentType := header[:semicolon]
	if !strings.HasPrefix(contentType, "image/") {
		return nil, "", "", errors.New("invalid image type")
	}

	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, "", "", err
	}
	if len(data) == 0 {
		return nil, "", "", errors.New("empty image")
	}

	if ext, ok := imageExtensions[contentType]; ok {
		return data, contentType, ext, nil
	}
	ext, err := mime.ExtensionsByType(contentType)
	if err != nil || len(ext) == 0 {
		return nil, "", "", errors.New("invalid image type")
	}

	return data, contentType, ext[0], nil
}
