package storage

import (
	"context"
	"io"
	"medtrack-portal/internal/app/contracts"
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/exceptions"
	"medtrack-portal/internal/pkg/utils"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type minioStorage struct {
	MinioClient  *minio.Client
	BucketName   string
	PresignedTTL time.Duration
	Log          *zap.Logger
}

func NewMinioStorage(minioClient *minio.Client, bucketName string, presignedTTL time.Duration, logger *zap.Logger) contracts.Storage {
	return &minioStorage{
		MinioClient:  minioClient,
		BucketName:   bucketName,
		PresignedTTL: presignedTTL,
		Log:          logger,
	}
}

func (m *minioStorage) UploadFile(ctx context.Context, objectName string, file io.Reader, size int64, contentType string) (string, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	m.Log.Info("minioStorage.UploadFile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketNameKey, m.BucketName),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)

	_, err := m.MinioClient.PutObject(ctx, m.BucketName, objectName, file, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		m.Log.Error("minioStorage.UploadFile error putting object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, m.BucketName, objectName, m.PresignedTTL, url.Values{})
	if err != nil {
		m.Log.Error("minioStorage.UploadFile error presigning object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrMinioPresignedURL(err, m.BucketName)
	}

	m.Log.Info("minioStorage.UploadFile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return presignedURL.String(), nil
}
