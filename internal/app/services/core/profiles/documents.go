package profiles

import (
	"plantao-service/internal/app/models"
	"plantao-service/internal/pkg/constvars"
)

func IsDocumentKey(key string) bool {
	for _, k := range constvars.MandatoryDocuments {
		if k == key {
			return true
		}
	}
	for _, k := range constvars.OptionalDocuments {
		if k == key {
			return true
		}
	}
	return false
}

// MissingMandatoryDocuments lists mandatory keys absent from documents, in the
// order they are declared.
func MissingMandatoryDocuments(documents map[string]models.DocumentRef) []string {
	var missing []string
	for _, key := range constvars.MandatoryDocuments {
		if ref, ok := documents[key]; !ok || ref.ObjectName == "" {
			missing = append(missing, key)
		}
	}
	return missing
}
