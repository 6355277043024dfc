package storage

import (
	"context"
	"fmt"
	"io"
)

// Router はパスのスキームに応じて書き込み先を振り分ける OutputWriter です。
type Router struct {
	local OutputWriter
	s3    OutputWriter
}

// NewRouter は Router を生成します。s3 が nil の場合、s3:// へのパスはエラーになります。
func NewRouter(local, s3 OutputWriter) *Router {
	if local == nil {
		local = NewLocalWriter()
	}
	return &Router{local: local, s3: s3}
}

func (r *Router) Write(ctx context.Context, path string, rd io.Reader, contentType string) error {
	if IsS3Path(path) {
		if r.s3 == nil {
			return fmt.Errorf("S3 への書き込みが設定されていません: %s", path)
		}
		return r.s3.Write(ctx, path, rd, contentType)
	}
	return r.local.Write(ctx, path, rd, contentType)
}
