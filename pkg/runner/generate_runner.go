package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-comic-kit/pkg/asset"
	"github.com/shouni/go-comic-kit/pkg/domain"
	"github.com/shouni/go-comic-kit/pkg/generator"
	"github.com/shouni/go-comic-kit/pkg/publisher"
	"github.com/shouni/go-comic-kit/pkg/strip"
)

// GenerateRunner は、協調コンポーネントからパネルの内容と画像を取得し、ストリップとして保存します。
type GenerateRunner struct {
	content   generator.ContentSource
	images    generator.PanelsImageGenerator
	composer  *strip.Composer
	publisher *publisher.StripPublisher
	opts      publisher.Options
	panelDir  string
}

// NewGenerateRunner は、依存関係を注入して初期化します。
// panelDir が空でなければ、取得した画像を outputDir/panelDir/panel_N.png として保存します。
func NewGenerateRunner(
	content generator.ContentSource,
	images generator.PanelsImageGenerator,
	composer *strip.Composer,
	pub *publisher.StripPublisher,
	opts publisher.Options,
	panelDir string,
) *GenerateRunner {
	return &GenerateRunner{
		content:   content,
		images:    images,
		composer:  composer,
		publisher: pub,
		opts:      opts,
		panelDir:  panelDir,
	}
}

// Run は、依頼文と画風から6コマのストリップを生成して outputDir に保存します。
func (r *GenerateRunner) Run(ctx context.Context, prompt string, style domain.Style, outputDir string) (publisher.PublishResult, error) {
	result := publisher.PublishResult{}

	panels, err := r.content.Panels(ctx, prompt, style)
	if err != nil {
		return result, fmt.Errorf("パネル内容の取得に失敗しました: %w", err)
	}
	if len(panels) != domain.StripPanelCount {
		return result, &domain.InputCountError{Images: len(panels), Captions: len(panels), Want: domain.StripPanelCount}
	}

	slog.InfoContext(ctx, "Starting parallel image generation", "style", string(style))
	images, err := r.images.Execute(ctx, panels, style)
	if err != nil {
		slog.ErrorContext(ctx, "Image generation failed", "error", err)
		return result, err
	}
	slog.InfoContext(ctx, "Successfully generated panels", "count", len(images))

	var panelPaths []string
	if r.panelDir != "" {
		dir, err := asset.ResolveOutputPath(outputDir, r.panelDir)
		if err != nil {
			return result, fmt.Errorf("パネル保存先の解決に失敗しました: %w", err)
		}
		panelPaths, err = r.publisher.SavePanelImages(ctx, images, dir)
		if err != nil {
			return result, err
		}
	}

	img, err := r.composer.Compose(ctx, strip.FromImages(images), domain.Panels(panels).Captions())
	if err != nil {
		return result, err
	}

	opts := r.opts
	opts.OutputDir = outputDir
	result, err = r.publisher.Publish(ctx, img, opts)
	result.PanelPaths = panelPaths
	return result, err
}
