package aws

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/undeniable-app/undeniable/blame"
)

type stubGetter struct {
	body string
	err  error
}

func (s stubGetter) GetObject(_ context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(s.body))}, nil
}

func TestDownloadFromS3WithStub(t *testing.T) {
	m, err := NewAWSWrapper(context.Background(), *NewAwsConfig(), WithObjectGetter(stubGetter{body: "name,email\n"}))
	require.NoError(t, err)

	data, err := m.DownloadFromS3(context.Background(), "bucket", "companies.csv")
	require.NoError(t, err)
	assert.Equal(t, "name,email\n", string(data))
}

func TestDownloadFromS3Failure(t *testing.T) {
	m, err := NewAWSWrapper(context.Background(), *NewAwsConfig(), WithObjectGetter(stubGetter{err: errors.New("denied")}))
	require.NoError(t, err)

	_, err = m.DownloadFromS3(context.Background(), "bucket", "companies.csv")
	require.Error(t, err)
	assert.True(t, errors.Is(err, blame.NewBasicError(blame.ErrorBucketDownloadFailure)))
}

func TestDownloadFromS3Endpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/directory/companies.csv", r.URL.Path)
		_, _ = w.Write([]byte("name,email\nAcme,a@acme.example\n"))
	}))
	defer srv.Close()

	m, err := NewAWSWrapper(context.Background(), AWSConfig{},
		WithEndpoint(srv.URL),
		WithS3ForcePathStyle(true),
		WithStaticCredentials("AKIDTEST", "secret", ""),
	)
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", m.GetConfig().Region)

	data, err := m.DownloadFromS3(context.Background(), "directory", "companies.csv")
	require.NoError(t, err)
	assert.Contains(t, string(data), "Acme")
}
