package storage

import (
	"bytes"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	s3iface.S3API
	objects map[string][]byte
	types   map[string]string
	cache   map[string]string
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}, types: map[string]string{}, cache: map[string]string{}}
}

func (f *fakeS3) PutObject(in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	key := aws.StringValue(in.Key)
	f.objects[key] = b
	f.types[key] = aws.StringValue(in.ContentType)
	f.cache[key] = aws.StringValue(in.CacheControl)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(in *s3.GetObjectInput) (*s3.GetObjectOutput, error) {
	key := aws.StringValue(in.Key)
	b, ok := f.objects[key]
	if !ok {
		return nil, awserr.New(s3.ErrCodeNoSuchKey, "missing", nil)
	}
	return &s3.GetObjectOutput{
		Body:          io.NopCloser(bytes.NewReader(b)),
		ContentType:   aws.String(f.types[key]),
		ContentLength: aws.Int64(int64(len(b))),
	}, nil
}

func TestS3Provider(t *testing.T) {
	api := newFakeS3()
	p := &S3Provider{api: api, bucket: "posters"}

	require.NoError(t, p.Put("image-1.gif", bytes.NewReader([]byte("GIF89a")), "image/gif", "public, max-age=60"))
	assert.Equal(t, "public, max-age=60", api.cache["image-1.gif"])

	obj, err := p.Get("image-1.gif")
	require.NoError(t, err)
	body, err := io.ReadAll(obj.Body)
	require.NoError(t, err)
	assert.Equal(t, "GIF89a", string(body))
	assert.Equal(t, "image/gif", obj.ContentType)
	assert.EqualValues(t, 6, obj.ContentLength)

	_, err = p.Get("image-2.gif")
	assert.ErrorIs(t, err, ErrNotFound)
}
