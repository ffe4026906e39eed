package directory

import (
	"context"
	_ "embed"
	"os"
	"strings"

	"github.com/undeniable-app/undeniable/adapters/aws"
	httpclient "github.com/undeniable-app/undeniable/adapters/http"
	"github.com/undeniable-app/undeniable/adapters/log"
	"github.com/undeniable-app/undeniable/blame"
	"github.com/undeniable-app/undeniable/config"
	"github.com/undeniable-app/undeniable/utils/constant"
)

//go:embed data/insurance-companies.csv
var embeddedDirectory []byte

// Source yields the raw directory table.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	Name() string
}

// EmbeddedSource serves the table compiled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return embeddedDirectory, nil
}

func (EmbeddedSource) Name() string { return constant.SourceEmbedded.String() }

// FileSource reads the table from the local filesystem.
type FileSource struct {
	Path string
}

func (s FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, blame.FileNotFoundError(s.Path, err)
	}
	return data, nil
}

func (s FileSource) Name() string { return constant.SourceFile.String() + ":" + s.Path }

// HTTPSource downloads the table from a URL.
type HTTPSource struct {
	URL    string
	Client *httpclient.Client
}

func (s HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	res := s.Client.Get(ctx, s.URL)
	if res.IsError() {
		return nil, res.Error()
	}
	return *res.ToValue(), nil
}

func (s HTTPSource) Name() string { return constant.SourceHTTP.String() + ":" + s.URL }

// ObjectDownloader is satisfied by *aws.AWSManager.
type ObjectDownloader interface {
	DownloadFromS3(ctx context.Context, bucket, key string) ([]byte, error)
}

// S3Source downloads the table from an S3 compatible bucket.
type S3Source struct {
	Bucket     string
	Key        string
	Downloader ObjectDownloader
}

func (s S3Source) Fetch(ctx context.Context) ([]byte, error) {
	return s.Downloader.DownloadFromS3(ctx, s.Bucket, s.Key)
}

func (s S3Source) Name() string {
	return constant.SourceS3.String() + "://" + s.Bucket + "/" + strings.TrimPrefix(s.Key, "/")
}

// NewSource builds the Source selected by cfg.Directory.Source.
func NewSource(ctx context.Context, cfg *config.Config, logger *log.Log) (Source, error) {
	dc := cfg.Directory
	switch cfg.SourceKind() {
	case constant.SourceEmbedded, "":
		return EmbeddedSource{}, nil
	case constant.SourceFile:
		return FileSource{Path: dc.Path}, nil
	case constant.SourceHTTP:
		opts := []httpclient.Option{
			httpclient.WithLogger(logger),
			httpclient.WithFastHTTP(dc.HTTPClient == "fast"),
			httpclient.WithHeader("Accept", "text/csv"),
		}
		if dc.Timeout > 0 {
			opts = append(opts, httpclient.WithTimeout(dc.Timeout))
		}
		return HTTPSource{URL: dc.URL, Client: httpclient.NewClient(opts...)}, nil
	case constant.SourceS3:
		awsCfg := aws.NewAwsConfig()
		var opts []aws.Option
		if dc.S3.Region != "" {
			opts = append(opts, aws.WithRegion(dc.S3.Region))
		}
		if dc.S3.Endpoint != "" {
			opts = append(opts, aws.WithEndpoint(dc.S3.Endpoint), aws.WithS3ForcePathStyle(true))
		}
		manager, err := aws.NewAWSWrapper(ctx, *awsCfg, opts...)
		if err != nil {
			return nil, err
		}
		return S3Source{Bucket: dc.S3.Bucket, Key: dc.S3.Key, Downloader: manager}, nil
	}
	return nil, blame.InvalidSourceError(dc.Source)
}
