package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/minio/minio-go/v7"
)

// Uploader pousse les images produit dans MinIO.
type Uploader struct {
	client   *minio.Client
	bucket   string
	endpoint string
	useSSL   bool
}

func NewUploader(client *minio.Client, bucket, endpoint string, useSSL bool) *Uploader {
	return &Uploader{client: client, bucket: bucket, endpoint: endpoint, useSSL: useSSL}
}

// UploadProductImage stocke le fichier et renvoie son URL publique.
func (u *Uploader) UploadProductImage(ctx context.Context, productID string, file *multipart.FileHeader) (string, error) {
	if u.client == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	objectName := productID + "/" + file.Filename
	_, err = u.client.PutObject(ctx, u.bucket, objectName, f, file.Size,
		minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")})
	if err != nil {
		return "", err
	}

	scheme := "http"
	if u.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, u.endpoint, u.bucket, objectName), nil
}
