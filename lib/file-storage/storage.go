package filestorage

import (
	"bytes"
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	PutFile(ctx context.Context, key string, file []byte, contentType string) error
	GetFile(ctx context.Context, key string) ([]byte, error)
	MakeBucket(ctx context.Context) error
}

var Instance Provider

const bucketLocation = "eu-west-2"

func NewInstance(s3client *minio.Client, bucket string) {
	Instance = &impl{
		s3client: s3client,
		bucket:   bucket,
	}
}

type impl struct {
	s3client *minio.Client
	bucket   string
}

func (i impl) PutFile(ctx context.Context, key string, file []byte, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := i.s3client.PutObject(ctx, i.bucket, key, bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrap(err, "s3 put failed")
	}
	return nil
}

func (i impl) GetFile(ctx context.Context, key string) ([]byte, error) {
	obj, err := i.s3client.GetObject(ctx, i.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "s3 get failed")
	}
	defer obj.Close()
	body, err := io.ReadAll(obj)
	if err != nil {
		return nil, errors.Wrap(err, "s3 read failed")
	}
	return body, nil
}

func (i impl) MakeBucket(ctx context.Context) error {
	exists, err := i.s3client.BucketExists(ctx, i.bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	err = i.s3client.MakeBucket(ctx, i.bucket, minio.MakeBucketOptions{Region: bucketLocation})
	if err != nil {
		return err
	}
	log.WithField("bucket", i.bucket).Info("evidence bucket created")
	return nil
}
