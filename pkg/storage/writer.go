// Package storage は成果物をローカルファイルやオブジェクトストレージへ保存する OutputWriter を提供します。
package storage

import (
	"context"
	"io"

	"github.com/shouni/go-utils/urlpath"
)

// OutputWriter はデータを外部ストレージに保存するためのインターフェースです。
type OutputWriter interface {
	Write(ctx context.Context, path string, r io.Reader, contentType string) error
}

// S3Scheme は S3 互換ストレージを指すパスの接頭辞です。
const S3Scheme = urlpath.SchemeS3

// IsS3Path はパスが s3:// 形式かどうかを返します。
func IsS3Path(p string) bool {
	return urlpath.IsS3URI(p)
}
