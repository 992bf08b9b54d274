package initializers

import (
	"context"
	"recruit-track-backend/config"
	filestorage "recruit-track-backend/lib/file-storage"
	s3client "recruit-track-backend/s3"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
)

func InitS3(ctx context.Context) {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV2(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}

	// Проверка соединения
	_, err = minioClient.ListBuckets(ctx)
	if err != nil {
		log.WithError(err).Error("не удалось установить соединение с S3")
	}

	s3client.Client = minioClient
	if err = s3client.MakeBucket(ctx); err != nil {
		log.WithError(err).Error("ошибка создания бакета для резюме")
	}
	filestorage.NewInstance(minioClient)
	log.Info("S3 клиент успешно инициализирован")
}
