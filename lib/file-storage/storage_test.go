package filestorage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStorageWithoutClient(t *testing.T) {
	t.Run(`upload without s3 client check`, func(t *testing.T) {
		NewInstance(nil)
		err := Instance.UploadCv(context.TODO(), "user-1", "cv.txt", []byte("cv"))
		require.EqualError(t, err, "клиент S3 не инициализирован")
	})

	t.Run(`get without s3 client check`, func(t *testing.T) {
		NewInstance(nil)
		data, err := Instance.GetCv(context.TODO(), "user-1", "cv.txt")
		require.EqualError(t, err, "клиент S3 не инициализирован")
		require.Nil(t, data)
	})
}
