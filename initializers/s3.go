package initializers

import (
	"context"

	"childminder-backend/config"
	filestorage "childminder-backend/lib/file-storage"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
)

func InitS3(ctx context.Context) {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKey, config.Conf.S3.SecretKey, ""),
		Secure: config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("s3 client init failed")
		return
	}

	filestorage.NewInstance(minioClient, config.Conf.S3.Bucket)
	if err = filestorage.Instance.MakeBucket(ctx); err != nil {
		log.WithError(err).Error("s3 connection failed, evidence bucket is not available")
		return
	}
	log.Info("s3 client initialized")
}
