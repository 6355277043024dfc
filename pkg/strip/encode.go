package strip

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/shouni/go-comic-kit/pkg/domain"
	"github.com/shouni/go-comic-kit/pkg/storage"
)

// Format は出力画像のエンコード形式です。
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

// ContentType は Format に対応する MIME タイプを返します。
func (f Format) ContentType() string {
	if f == FormatJPEG {
		return "image/jpeg"
	}
	return "image/png"
}

// FormatFor は拡張子から出力形式を判定します。不明な拡張子は PNG として扱います。
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return FormatJPEG
	default:
		return FormatPNG
	}
}

// Encode は画像を指定の形式で w に書き出します。
func (c *Composer) Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: c.cfg.JPEGQuality})
	case FormatPNG, "":
		enc := png.Encoder{CompressionLevel: png.DefaultCompression}
		return enc.Encode(w, img)
	default:
		return fmt.Errorf("未対応の出力形式です: %s", format)
	}
}

// Emit は画像をメモリ上でエンコードしてから writer に一度だけ書き込みます。
// 失敗は domain.WriteError として返されます。
func (c *Composer) Emit(ctx context.Context, img image.Image, writer storage.OutputWriter, target string) error {
	format := FormatFor(target)
	var buf bytes.Buffer
	if err := c.Encode(&buf, img, format); err != nil {
		return &domain.WriteError{Target: target, Err: fmt.Errorf("画像のエンコードに失敗しました: %w", err)}
	}
	if err := writer.Write(ctx, target, &buf, format.ContentType()); err != nil {
		return &domain.WriteError{Target: target, Err: err}
	}
	slog.InfoContext(ctx, "Comic strip saved", "path", target, "format", string(format))
	return nil
}

// ComposeTo はストリップを合成して target に保存します。入力の検証に失敗した場合は何も書き込みません。
func (c *Composer) ComposeTo(ctx context.Context, images []ImageRef, captions []string, writer storage.OutputWriter, target string) error {
	img, err := c.Compose(ctx, images, captions)
	if err != nil {
		return err
	}
	return c.Emit(ctx, img, writer, target)
}
