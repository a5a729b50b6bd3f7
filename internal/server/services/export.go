package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/devopschat/internal/common"
	"github.com/dmitrijs2005/devopschat/internal/logging"
	"github.com/dmitrijs2005/devopschat/internal/server/models"
	"github.com/google/uuid"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

type historyReader interface {
	List(ctx context.Context, userID string) ([]*models.ChatMessage, bool)
}

// ExportConfig points at an S3-compatible bucket (AWS S3, MinIO...).
type ExportConfig struct {
	Bucket       string
	Region       string
	AccessKey    string
	SecretKey    string
	BaseEndpoint string
	LinkTTL      time.Duration
}

// ExportService uploads a user's transcript to object storage and hands out
// a time-limited download link. A nil *ExportService is valid and reports
// common.ErrExportDisabled.
type ExportService struct {
	history historyReader
	cfg     ExportConfig
	log     logging.Logger
	now     func() time.Time
}

// NewExportService returns nil when no bucket is configured.
func NewExportService(history historyReader, cfg ExportConfig, log logging.Logger) *ExportService {
	if cfg.Bucket == "" {
		return nil
	}
	return &ExportService{
		history: history,
		cfg:     cfg,
		log:     log.With("module", "export"),
		now:     time.Now,
	}
}

type transcriptMessage struct {
	Sender    models.Sender `json:"sender"`
	Message   string        `json:"message"`
	Timestamp time.Time     `json:"timestamp"`
}

type transcript struct {
	UserID     string              `json:"user_id"`
	ExportedAt time.Time           `json:"exported_at"`
	Messages   []transcriptMessage `json:"messages"`
}

func transcriptKey(userID string, t time.Time) string {
	return fmt.Sprintf("transcripts/%s/%04d/%02d/%02d/%s.json",
		url.PathEscape(userID), t.Year(), t.Month(), t.Day(), uuid.New())
}

func (s *ExportService) clients(ctx context.Context) (*s3.Client, *s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.AccessKey,
			s.cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if s.cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(s.cfg.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return client, newS3PresignClient(client), nil
}

// Export writes the user's full history as JSON and returns a presigned GET
// URL valid for LinkTTL. When the history cannot be read it fails with
// common.ErrUnavailable rather than exporting an empty transcript.
func (s *ExportService) Export(ctx context.Context, userID string) (string, error) {
	if s == nil {
		return "", common.ErrExportDisabled
	}

	userID = models.CanonicalUserID(userID)
	if userID == "" {
		return "", fmt.Errorf("%w: user id is required", common.ErrValidation)
	}

	msgs, ok := s.history.List(ctx, userID)
	if !ok {
		return "", fmt.Errorf("%w: history could not be read", common.ErrUnavailable)
	}

	now := s.now().UTC()
	t := transcript{UserID: userID, ExportedAt: now, Messages: make([]transcriptMessage, 0, len(msgs))}
	for _, m := range msgs {
		t.Messages = append(t.Messages, transcriptMessage{Sender: m.Sender, Message: m.Message, Timestamp: m.Timestamp})
	}
	body, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	client, presigner, err := s.clients(ctx)
	if err != nil {
		s.log.Error(ctx, "s3 client setup failed", "error", err)
		return "", fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	bucket := s.cfg.Bucket
	key := transcriptKey(userID, now)

	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		s.log.Error(ctx, "transcript upload failed", "key", key, "error", err)
		return "", fmt.Errorf("%w: upload transcript: %w", common.ErrUnavailable, err)
	}

	req, err := presignGetObject(presigner, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(s.cfg.LinkTTL))
	if err != nil {
		return "", fmt.Errorf("%w: presign transcript: %w", common.ErrorInternal, err)
	}

	s.log.Info(ctx, "transcript exported", "user_id", userID, "key", key, "messages", len(msgs))
	return req.URL, nil
}
