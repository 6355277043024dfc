// Package publisher は完成したコミックストリップを画像と PDF として保存します。
package publisher

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"log/slog"

	"github.com/shouni/go-comic-kit/pkg/asset"
	"github.com/shouni/go-comic-kit/pkg/config"
	"github.com/shouni/go-comic-kit/pkg/domain"
	"github.com/shouni/go-comic-kit/pkg/storage"
	"github.com/shouni/go-comic-kit/pkg/strip"
)

// Options はパブリッシュ動作を制御する設定項目です。
type Options struct {
	OutputDir string
	ImageName string // 空なら comic_strip_with_text.png
	PDFName   string // 空なら comic_strip.pdf
	SkipPDF   bool
}

// PublishResult はパブリッシュ処理の結果として生成されたファイルの情報を保持します。
type PublishResult struct {
	ImagePath  string   // 保存したストリップ画像のパス
	PDFPath    string   // 保存した PDF のパス。SkipPDF の場合は空
	PanelPaths []string // 保存したパネル画像のパス
}

// StripPublisher は完成したストリップの永続化とフォーマット変換を担います。
type StripPublisher struct {
	writer   storage.OutputWriter
	composer *strip.Composer
	pdf      PDFOptions
}

// NewStripPublisher は StripPublisher を初期化します。
func NewStripPublisher(writer storage.OutputWriter, composer *strip.Composer) *StripPublisher {
	return &StripPublisher{
		writer:   writer,
		composer: composer,
		pdf:      PDFOptionsFrom(composer.Config()),
	}
}

// Publish は画像と PDF を保存し、生成されたファイル情報を返却します。
func (p *StripPublisher) Publish(ctx context.Context, img image.Image, opts Options) (PublishResult, error) {
	result := PublishResult{}

	imageName := opts.ImageName
	if imageName == "" {
		imageName = asset.DefaultStripFileName
	}
	imagePath, err := asset.ResolveOutputPath(opts.OutputDir, imageName)
	if err != nil {
		return result, fmt.Errorf("出力パスの解決に失敗しました: %w", err)
	}

	if err := p.composer.Emit(ctx, img, p.writer, imagePath); err != nil {
		return result, err
	}
	result.ImagePath = imagePath

	if opts.SkipPDF {
		return result, nil
	}

	pdfName := opts.PDFName
	if pdfName == "" {
		pdfName = asset.DefaultPDFFileName
	}
	pdfPath, err := asset.ResolveOutputPath(opts.OutputDir, pdfName)
	if err != nil {
		return result, fmt.Errorf("出力パスの解決に失敗しました: %w", err)
	}

	var buf bytes.Buffer
	if err := ExportPDF(&buf, img, p.pdf); err != nil {
		return result, &domain.WriteError{Target: pdfPath, Err: err}
	}
	if err := p.writer.Write(ctx, pdfPath, &buf, "application/pdf"); err != nil {
		return result, &domain.WriteError{Target: pdfPath, Err: err}
	}
	slog.InfoContext(ctx, "PDF saved", "path", pdfPath)
	result.PDFPath = pdfPath

	return result, nil
}

// SavePanelImages は各パネルのソース画像を dir/panel_N.png として保存し、そのパスを返します。
// nil の画像は読み飛ばします。
func (p *StripPublisher) SavePanelImages(ctx context.Context, images []image.Image, dir string) ([]string, error) {
	var paths []string
	for i, img := range images {
		if img == nil {
			continue
		}
		fullPath, err := asset.PanelPath(dir, i)
		if err != nil {
			return nil, err
		}
		if err := p.composer.Emit(ctx, img, p.writer, fullPath); err != nil {
			return nil, fmt.Errorf("パネル %d の保存に失敗しました: %w", i+1, err)
		}
		paths = append(paths, fullPath)
	}
	return paths, nil
}

// PDFOptionsFrom は設定から PDF のレイアウトを取り出します。
func PDFOptionsFrom(cfg config.Config) PDFOptions {
	return PDFOptions{
		ImageWidth:  cfg.PDFImageWidth,
		ImageHeight: cfg.PDFImageHeight,
		TopMargin:   cfg.PDFMargin,
	}
}
