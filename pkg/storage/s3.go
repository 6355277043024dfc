package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("go-comic-kit/storage")

// S3Config は S3 互換ストレージへの接続設定です。
type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// S3Writer は s3://bucket/key 形式のパスへ書き込む OutputWriter です。
type S3Writer struct {
	client *minio.Client
}

// NewS3Writer は MinIO クライアントを初期化して S3Writer を返します。
func NewS3Writer(cfg S3Config) (*S3Writer, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("S3 のエンドポイントが指定されていません")
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("MinIO クライアントの初期化に失敗しました: %w", err)
	}
	return &S3Writer{client: client}, nil
}

// Write は r の内容をオブジェクトとして保存します。バケットが無ければ作成します。
func (w *S3Writer) Write(ctx context.Context, path string, r io.Reader, contentType string) error {
	bucket, key, err := ParseS3Path(path)
	if err != nil {
		return err
	}

	ctx, span := tracer.Start(ctx, "s3_write")
	defer span.End()

	data, err := io.ReadAll(r)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("書き込みデータの読み込みに失敗しました: %w", err)
	}
	span.SetAttributes(
		attribute.String("s3.bucket", bucket),
		attribute.String("s3.key", key),
		attribute.Int("s3.size", len(data)),
	)

	exists, err := w.client.BucketExists(ctx, bucket)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("バケットの確認に失敗しました: %w", err)
	}
	if !exists {
		if err := w.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			span.RecordError(err)
			return fmt.Errorf("バケットの作成に失敗しました: %w", err)
		}
	}

	_, err = w.client.PutObject(ctx, bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("オブジェクトのアップロードに失敗しました: %w", err)
	}
	return nil
}

// ParseS3Path は s3://bucket/key を bucket と key に分解します。
func ParseS3Path(p string) (bucket, key string, err error) {
	if !IsS3Path(p) {
		return "", "", fmt.Errorf("s3:// 形式のパスではありません: %s", p)
	}
	rest := p[len(S3Scheme):]
	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("バケット名とキーが必要です: %s", p)
	}
	return bucket, key, nil
}
