package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"regexp"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/devopschat/internal/common"
	"github.com/dmitrijs2005/devopschat/internal/logging"
	"github.com/dmitrijs2005/devopschat/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHistoryReader struct {
	msgs []*models.ChatMessage
	ok   bool
}

func (f *fakeHistoryReader) List(ctx context.Context, userID string) ([]*models.ChatMessage, bool) {
	return f.msgs, f.ok
}

type s3Calls struct {
	endpoint   string
	pathStyle  bool
	putBucket  string
	putKey     string
	putBody    []byte
	presignKey string
	presignTTL time.Duration
}

func stubS3(t *testing.T, putErr error) *s3Calls {
	t.Helper()
	calls := &s3Calls{}

	origLoad, origNew, origPre, origPut, origGet := loadDefaultAWSConfig, newS3ClientFromConfig, newS3PresignClient, putObject, presignGetObject
	t.Cleanup(func() {
		loadDefaultAWSConfig, newS3ClientFromConfig, newS3PresignClient, putObject, presignGetObject = origLoad, origNew, origPre, origPut, origGet
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "us-east-1", lo.Region)
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		var o s3.Options
		for _, fn := range optFns {
			fn(&o)
		}
		if o.BaseEndpoint != nil {
			calls.endpoint = *o.BaseEndpoint
		}
		calls.pathStyle = o.UsePathStyle
		return &s3.Client{}
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient { return &s3.PresignClient{} }
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		if putErr != nil {
			return nil, putErr
		}
		calls.putBucket = *in.Bucket
		calls.putKey = *in.Key
		b, err := io.ReadAll(in.Body)
		require.NoError(t, err)
		calls.putBody = b
		return &s3.PutObjectOutput{}, nil
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		var po s3.PresignOptions
		for _, fn := range optFns {
			fn(&po)
		}
		calls.presignKey = *in.Key
		calls.presignTTL = po.Expires
		return &v4.PresignedHTTPRequest{URL: "https://minio.local/" + *in.Key + "?X-Amz-Signature=abc"}, nil
	}
	return calls
}

func exportConfig() ExportConfig {
	return ExportConfig{
		Bucket:       "transcripts",
		Region:       "us-east-1",
		AccessKey:    "minioadmin",
		SecretKey:    "minioadmin",
		BaseEndpoint: "http://127.0.0.1:9000",
		LinkTTL:      15 * time.Minute,
	}
}

func TestNewExportService_DisabledWithoutBucket(t *testing.T) {
	svc := NewExportService(&fakeHistoryReader{ok: true}, ExportConfig{}, logging.Nop{})
	assert.Nil(t, svc)

	_, err := svc.Export(context.Background(), "u1")
	assert.ErrorIs(t, err, common.ErrExportDisabled)
}

func TestExport_Success(t *testing.T) {
	calls := stubS3(t, nil)
	ts := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	hist := &fakeHistoryReader{ok: true, msgs: []*models.ChatMessage{
		{UserID: "u1", Message: "q", Sender: models.SenderUser, Timestamp: ts},
		{UserID: "u1", Message: "a", Sender: models.SenderBot, Timestamp: ts.Add(time.Second)},
	}}
	svc := NewExportService(hist, exportConfig(), logging.Nop{})
	svc.now = func() time.Time { return time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC) }

	url, err := svc.Export(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:9000", calls.endpoint)
	assert.True(t, calls.pathStyle)
	assert.Equal(t, "transcripts", calls.putBucket)
	assert.Regexp(t, regexp.MustCompile(`^transcripts/u1/2025/06/02/[0-9a-f-]{36}\.json$`), calls.putKey)
	assert.Equal(t, calls.putKey, calls.presignKey)
	assert.Equal(t, 15*time.Minute, calls.presignTTL)
	assert.Contains(t, url, calls.putKey)

	var got transcript
	require.NoError(t, json.Unmarshal(calls.putBody, &got))
	assert.Equal(t, "u1", got.UserID)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, models.SenderUser, got.Messages[0].Sender)
	assert.Equal(t, "a", got.Messages[1].Message)
}

func TestExport_DegradedHistory(t *testing.T) {
	stubS3(t, nil)
	svc := NewExportService(&fakeHistoryReader{ok: false, msgs: []*models.ChatMessage{}}, exportConfig(), logging.Nop{})

	_, err := svc.Export(context.Background(), "u1")
	assert.ErrorIs(t, err, common.ErrUnavailable)
}

func TestExport_Validation(t *testing.T) {
	svc := NewExportService(&fakeHistoryReader{ok: true}, exportConfig(), logging.Nop{})
	_, err := svc.Export(context.Background(), "   ")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestExport_UploadFails(t *testing.T) {
	stubS3(t, errors.New("bucket not found"))
	svc := NewExportService(&fakeHistoryReader{ok: true}, exportConfig(), logging.Nop{})

	_, err := svc.Export(context.Background(), "u1")
	assert.ErrorIs(t, err, common.ErrUnavailable)
	assert.ErrorContains(t, err, "bucket not found")
}

func TestExport_AWSConfigFails(t *testing.T) {
	stubS3(t, nil)
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("bad profile")
	}
	svc := NewExportService(&fakeHistoryReader{ok: true}, exportConfig(), logging.Nop{})

	_, err := svc.Export(context.Background(), "u1")
	assert.ErrorIs(t, err, common.ErrorInternal)
}

func TestTranscriptKey_EscapesUserID(t *testing.T) {
	k := transcriptKey("a/b", time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC))
	assert.Regexp(t, regexp.MustCompile(`^transcripts/a%2Fb/2025/01/09/`), k)
}
