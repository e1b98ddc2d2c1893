package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

const presignExpiry = 15 * time.Minute

// Client issues presigned PUT URLs against an R2 bucket so the browser
// uploads directly, without the file passing through this server.
type Client struct {
	presign   *s3.PresignClient
	bucket    string
	publicURL string
}

type Options struct {
	AccountID string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string
}

func New(opts Options) (*Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			opts.AccessKey,
			opts.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %v", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", opts.AccountID))
		o.UsePathStyle = true
		o.Region = "auto"
	})

	return &Client{
		presign:   s3.NewPresignClient(client),
		bucket:    opts.Bucket,
		publicURL: strings.TrimSuffix(opts.PublicURL, "/"),
	}, nil
}

type PresignedUpload struct {
	UploadURL string `json:"uploadURL"`
	PublicURL string `json:"publicURL"`
}

// PresignUpload builds a unique, URL-safe object key for the file and
// returns the PUT URL alongside the public URL the object will have.
func (c *Client) PresignUpload(filename string) (PresignedUpload, error) {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filepath.Base(filename), ext)
	objectKey := fmt.Sprintf("uploads/%s/%s-%s%s",
		time.Now().Format("2006/01"),
		uuid.New().String(),
		slug.Make(base),
		strings.ToLower(ext),
	)

	request, err := c.presign.PresignPutObject(context.TODO(), &s3.PutObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return PresignedUpload{}, fmt.Errorf("could not presign upload: %v", err)
	}

	return PresignedUpload{
		UploadURL: request.URL,
		PublicURL: fmt.Sprintf("%s/%s", c.publicURL, objectKey),
	}, nil
}
