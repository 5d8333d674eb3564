package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/seoforge/contentiq/internal/models"
)

// S3Config contains object-storage configuration. Works against AWS
// S3, Cloudflare R2 and MinIO.
type S3Config struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	UsePathStyle    bool
}

// S3Archive stores reports in an S3-compatible bucket under
// reports/YYYY/MM/DD/<id>.json.
type S3Archive struct {
	client *s3.Client
	bucket string
}

// NewS3Archive builds the client and verifies required settings.
func NewS3Archive(ctx context.Context, cfg S3Config) (*S3Archive, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("S3 bucket name is required")
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("S3 region is required")
	}
	if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
		return nil, fmt.Errorf("S3 credentials are required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return &S3Archive{client: client, bucket: cfg.Bucket}, nil
}

func (a *S3Archive) SaveReport(ctx context.Context, report *models.ScoreReport) error {
	key := a.key(report)

	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload report: %w", err)
	}

	report.FilePath = key
	return nil
}

func (a *S3Archive) GetReport(ctx context.Context, id string) (*models.ScoreReport, error) {
	key, err := a.findKey(ctx, id)
	if err != nil {
		return nil, err
	}

	out, err := a.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch report %s: %w", id, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read report body: %w", err)
	}

	var report models.ScoreReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	report.FilePath = key
	return &report, nil
}

func (a *S3Archive) ListReports(ctx context.Context, page, pageSize int) ([]*models.ScoreReport, error) {
	keys, err := a.listKeys(ctx)
	if err != nil {
		return nil, err
	}

	// Keys embed the date path, so a reverse lexical sort orders
	// newest first.
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	start := (page - 1) * pageSize
	if start >= len(keys) {
		return []*models.ScoreReport{}, nil
	}
	end := start + pageSize
	if end > len(keys) {
		end = len(keys)
	}

	reports := make([]*models.ScoreReport, 0, end-start)
	for _, key := range keys[start:end] {
		out, err := a.client.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(a.bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", key, err)
		}

		data, err := io.ReadAll(out.Body)
		out.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", key, err)
		}

		var report models.ScoreReport
		if err := json.Unmarshal(data, &report); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s: %w", key, err)
		}
		report.FilePath = key
		reports = append(reports, &report)
	}

	return reports, nil
}

func (a *S3Archive) DeleteReport(ctx context.Context, id string) error {
	key, err := a.findKey(ctx, id)
	if err != nil {
		return err
	}

	_, err = a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete report %s: %w", id, err)
	}
	return nil
}

func (a *S3Archive) key(report *models.ScoreReport) string {
	return fmt.Sprintf("reports/%s/%s.json", report.CreatedAt.Format("2006/01/02"), report.ID)
}

func (a *S3Archive) findKey(ctx context.Context, id string) (string, error) {
	keys, err := a.listKeys(ctx)
	if err != nil {
		return "", err
	}
	for _, key := range keys {
		if strings.Contains(key, id) {
			return key, nil
		}
	}
	return "", fmt.Errorf("report with ID %s not found", id)
}

func (a *S3Archive) listKeys(ctx context.Context) ([]string, error) {
	var keys []string
	paginator := s3.NewListObjectsV2Paginator(a.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(a.bucket),
		Prefix: aws.String("reports/"),
	})
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list reports: %w", err)
		}
		for _, obj := range out.Contents {
			keys = append(keys, aws.ToString(obj.Key))
		}
	}
	return keys, nil
}
