package verification

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"plantao-service/internal/app/contracts"
)

// archiveMatcher accepts any frame that decodes as an image. It keeps the
// gate wired end to end until a face recognition backend is configured.
type archiveMatcher struct{}

func NewArchiveMatcher() contracts.FaceMatcher {
	return archiveMatcher{}
}

func (archiveMatcher) Match(_ context.Context, reference, candidate []byte) (float64, error) {
	if len(reference) == 0 {
		return 0, fmt.Errorf("empty reference image")
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(candidate)); err != nil {
		return 0, fmt.Errorf("decode candidate frame: %w", err)
	}
	return 1, nil
}
