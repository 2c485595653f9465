package handlers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"gharBack/utils"
)

// listingPhotoFields in storage order: main photo first, then the two extras.
var listingPhotoFields = []string{"photo_main", "photo_1", "photo_2"}

// saveListingPhotos stores up to three uploaded photos and returns their
// public paths keyed by form field. A missing file leaves its entry empty.
func saveListingPhotos(r *http.Request, storage *utils.Storage) (map[string]string, error) {
	paths := make(map[string]string, len(listingPhotoFields))
	now := time.Now()

	for _, field := range listingPhotoFields {
		file, header, err := r.FormFile(field)
		if err == http.ErrMissingFile {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to open uploaded %s: %w", field, err)
		}

		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read uploaded %s: %w", field, err)
		}

		filename := fmt.Sprintf("%s_%s", uuid.New().String(), header.Filename)
		path, err := storage.SaveListingImage(data, filename, header.Header.Get("Content-Type"), now)
		if err != nil {
			return nil, err
		}
		paths[field] = path
	}

	return paths, nil
}
