package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"
)

// CarPhotoRepositoryGCS stores vehicle photos in a GCS bucket.
//
// Layout (single bucket):
// - bucket: manchy-car-photos
// - objectPath: cars/{carId}/{fileName}
//
// Public access: the bucket is expected to grant "allUsers: Storage Object
// Viewer" (uniform access) so uploaded objects are publicly readable.
type CarPhotoRepositoryGCS struct {
	Client *storage.Client
	Bucket string
	// Optional: if empty, uses https://storage.googleapis.com
	PublicBaseURL string
}

func NewCarPhotoRepositoryGCS(client *storage.Client, bucket string) *CarPhotoRepositoryGCS {
	return &CarPhotoRepositoryGCS{
		Client:        client,
		Bucket:        strings.TrimSpace(bucket),
		PublicBaseURL: "https://storage.googleapis.com",
	}
}

// Upload writes one photo and returns its public URL.
func (r *CarPhotoRepositoryGCS) Upload(ctx context.Context, carID, fileName, contentType string, body io.Reader) (string, error) {
	if r == nil || r.Client == nil {
		return "", errors.New("car_photo_repository_gcs: storage client is nil")
	}
	bucket := strings.TrimSpace(r.Bucket)
	if bucket == "" {
		return "", errors.New("car_photo_repository_gcs: bucket is empty")
	}
	carID = strings.TrimSpace(carID)
	if carID == "" {
		return "", errors.New("car_photo_repository_gcs: carID is empty")
	}
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		fileName = fmt.Sprintf("photo-%d", time.Now().UTC().UnixNano())
	}

	objPath := "cars/" + carID + "/" + fileName

	w := r.Client.Bucket(bucket).Object(objPath).NewWriter(ctx)
	if contentType != "" {
		w.ContentType = contentType
	}
	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("upload car photo: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize car photo upload: %w", err)
	}

	base := strings.TrimRight(r.PublicBaseURL, "/")
	if base == "" {
		base = "https://storage.googleapis.com"
	}
	return base + "/" + bucket + "/" + objPath, nil
}

// Delete removes one photo object (best-effort cleanup for admin edits).
func (r *CarPhotoRepositoryGCS) Delete(ctx context.Context, carID, fileName string) error {
	if r == nil || r.Client == nil {
		return errors.New("car_photo_repository_gcs: storage client is nil")
	}
	bucket := strings.TrimSpace(r.Bucket)
	if bucket == "" {
		return errors.New("car_photo_repository_gcs: bucket is empty")
	}

	objPath := "cars/" + strings.TrimSpace(carID) + "/" + strings.TrimSpace(fileName)
	if err := r.Client.Bucket(bucket).Object(objPath).Delete(ctx); err != nil {
		if err == storage.ErrObjectNotExist {
			return nil
		}
		return err
	}
	return nil
}
