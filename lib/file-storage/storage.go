package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"

	"career-coach-backend/config"
)

type Provider interface {
	UploadCv(ctx context.Context, userID, fileName string, data []byte) error
	GetCv(ctx context.Context, userID, fileName string) ([]byte, error)
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

func (i impl) UploadCv(ctx context.Context, userID, fileName string, data []byte) error {
	if i.s3client == nil {
		return errors.New("клиент S3 не инициализирован")
	}
	_, err := i.s3client.PutObject(
		ctx,
		config.Conf.S3.BucketName,
		cvObjectName(userID, fileName),
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"},
	)
	if err != nil {
		return err
	}
	return nil
}

func (i impl) GetCv(ctx context.Context, userID, fileName string) ([]byte, error) {
	if i.s3client == nil {
		return nil, errors.New("клиент S3 не инициализирован")
	}
	obj, err := i.s3client.GetObject(
		ctx,
		config.Conf.S3.BucketName,
		cvObjectName(userID, fileName),
		minio.GetObjectOptions{},
	)
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	return io.ReadAll(obj)
}

func cvObjectName(userID, fileName string) string {
	return fmt.Sprintf("cv/%s/%s", userID, fileName)
}
