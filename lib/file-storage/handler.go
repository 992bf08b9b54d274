package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"recruit-track-backend/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

type Provider interface {
	UploadResume(ctx context.Context, candidateID string, file []byte, fileName string) (fileID string, err error)
	GetResume(ctx context.Context, fileID string) ([]byte, error)
}

var Instance Provider

func NewInstance(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) UploadResume(ctx context.Context, candidateID string, file []byte, fileName string) (string, error) {
	// ключ объекта уникален, исходное имя сохраняется в расширении
	fileID := fmt.Sprintf("%s/%s%s", candidateID, uuid.NewString(), path.Ext(fileName))
	_, err := i.s3client.PutObject(
		ctx,
		config.Conf.S3.BucketName,
		fileID,
		bytes.NewReader(file),
		int64(len(file)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"},
	)
	if err != nil {
		return "", err
	}
	return fileID, nil
}

func (i impl) GetResume(ctx context.Context, fileID string) ([]byte, error) {
	obj, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, fileID, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	return io.ReadAll(obj)
}
