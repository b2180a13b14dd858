package service

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// UploadService streams customer documents to the storage bucket and hands
// back a publicly retrievable URL. One upload per order; failures surface to
// the caller with no retry.
type UploadService interface {
	Upload(ctx context.Context, fileName, contentType string, r io.Reader) (string, error)
}

type uploadService struct {
	client *storage.Client
	bucket string
	folder string
}

func NewUploadService(client *storage.Client, bucket, folder string) UploadService {
	return &uploadService{client: client, bucket: bucket, folder: folder}
}

func (s *uploadService) Upload(ctx context.Context, fileName, contentType string, r io.Reader) (string, error) {
	token := uuid.NewString()
	objectPath := path.Join(s.folder, uuid.NewString()+"-"+path.Base(fileName))

	w := s.client.Bucket(s.bucket).Object(objectPath).NewWriter(ctx)
	if contentType != "" {
		w.ContentType = contentType
	}
	w.Metadata = map[string]string{
		"firebaseStorageDownloadTokens": token,
	}
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	escapedPath := url.PathEscape(objectPath)
	publicURL := fmt.Sprintf("https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media&token=%s",
		s.bucket, escapedPath, token)
	return publicURL, nil
}
