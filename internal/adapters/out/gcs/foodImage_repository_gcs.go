// internal/adapters/out/gcs/foodImage_repository_gcs.go
package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"

	gcscommon "foodcourt/internal/adapters/out/gcs/common"
)

// FoodImageRepositoryGCS is a GCS adapter for catalog item images
// (object storage).
//
// Layout (single bucket):
// - bucket: <GCS_BUCKET>
// - objectPath: foods/{foodId}/<fileName>
//
// Public access:
//   - If the bucket has IAM "allUsers: Storage Object Viewer" (uniform access),
//     uploaded objects become publicly readable without per-object ACL changes.
type FoodImageRepositoryGCS struct {
	Client *storage.Client
	Bucket string
}

func NewFoodImageRepositoryGCS(client *storage.Client, bucket string) *FoodImageRepositoryGCS {
	return &FoodImageRepositoryGCS{
		Client: client,
		Bucket: strings.TrimSpace(bucket),
	}
}

func (r *FoodImageRepositoryGCS) bucket() (*storage.BucketHandle, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("foodImage_repository_gcs: storage client is nil")
	}
	if r.Bucket == "" {
		return nil, errors.New("foodImage_repository_gcs: bucket is empty")
	}
	return r.Client.Bucket(r.Bucket), nil
}

// Upload streams an image under foods/{foodId}/ and returns the public URL.
func (r *FoodImageRepositoryGCS) Upload(ctx context.Context, foodID, fileName, contentType string, body io.Reader) (string, error) {
	bh, err := r.bucket()
	if err != nil {
		return "", err
	}

	fid := strings.TrimSpace(foodID)
	fn := strings.TrimSpace(fileName)
	if fid == "" || fn == "" {
		return "", errors.New("foodImage_repository_gcs: foodID and fileName are required")
	}

	objPath := fmt.Sprintf("foods/%s/%s", fid, fn)
	w := bh.Object(objPath).NewWriter(ctx)
	if ct := strings.TrimSpace(contentType); ct != "" {
		w.ContentType = ct
	}

	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("foodImage_repository_gcs: upload failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("foodImage_repository_gcs: upload close failed: %w", err)
	}

	return gcscommon.PublicURL(r.Bucket, objPath), nil
}

// Delete removes all objects under foods/{foodId}/ referenced by imageURL.
// Unknown or external URLs are ignored (the catalog may reference images the
// admin panel never uploaded).
func (r *FoodImageRepositoryGCS) Delete(ctx context.Context, imageURL string) error {
	bh, err := r.bucket()
	if err != nil {
		return err
	}

	bucket, objPath, ok := gcscommon.ParseURL(imageURL)
	if !ok || bucket != r.Bucket {
		return nil
	}

	if err := bh.Object(objPath).Delete(ctx); err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil
		}
		return err
	}
	return nil
}
