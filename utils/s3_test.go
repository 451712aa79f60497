package utils

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	in   *s3.PutObjectInput
	body []byte
	err  error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, f.err
}

func TestS3Archive_Store(t *testing.T) {
	fp := &fakePutter{}
	a := &S3Archive{client: fp, bucket: "meals", now: func() time.Time { return time.Unix(0, 42) }}

	key, err := a.Store(context.Background(), []byte("jpeg-bytes"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "meal-photos/42.jpg", key)
	assert.Equal(t, "meals", aws.ToString(fp.in.Bucket))
	assert.Equal(t, "image/jpeg", aws.ToString(fp.in.ContentType))
	assert.Equal(t, []byte("jpeg-bytes"), fp.body)
}

func TestS3Archive_StoreError(t *testing.T) {
	a := &S3Archive{client: &fakePutter{err: errors.New("denied")}, bucket: "meals", now: time.Now}
	_, err := a.Store(context.Background(), []byte("x"), "image/png")
	assert.ErrorContains(t, err, "denied")
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, ".jpg", extensionFor("image/jpg"))
	assert.Equal(t, ".png", extensionFor("image/png"))
	assert.Equal(t, ".x-smartcal", extensionFor("image/x-smartcal"))
	assert.Equal(t, "", extensionFor("garbage"))
}
