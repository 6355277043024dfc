// Package runner はストリップの合成から保存までの一連の処理を実行します。
package runner

import (
	"context"
	"log/slog"

	"github.com/shouni/go-comic-kit/pkg/publisher"
	"github.com/shouni/go-comic-kit/pkg/strip"
)

// ComposeRunner は、既存の画像とキャプションからストリップを合成して保存します。
type ComposeRunner struct {
	composer  *strip.Composer
	publisher *publisher.StripPublisher
	opts      publisher.Options
}

// NewComposeRunner は、依存関係を注入して初期化します。opts.OutputDir は Run の引数で上書きされます。
func NewComposeRunner(composer *strip.Composer, pub *publisher.StripPublisher, opts publisher.Options) *ComposeRunner {
	return &ComposeRunner{
		composer:  composer,
		publisher: pub,
		opts:      opts,
	}
}

// Run は、画像パスとキャプションからストリップを合成し、outputDir に保存します。
func (r *ComposeRunner) Run(ctx context.Context, paths, captions []string, outputDir string) (publisher.PublishResult, error) {
	return r.RunRefs(ctx, strip.FromPaths(paths), captions, outputDir)
}

// RunRefs は、ImageRef で指定された画像から Run と同じ処理を行います。
func (r *ComposeRunner) RunRefs(ctx context.Context, images []strip.ImageRef, captions []string, outputDir string) (publisher.PublishResult, error) {
	slog.InfoContext(ctx, "Composing comic strip", "panels", len(images))

	img, err := r.composer.Compose(ctx, images, captions)
	if err != nil {
		slog.ErrorContext(ctx, "Comic strip composition failed", "error", err)
		return publisher.PublishResult{}, err
	}

	opts := r.opts
	opts.OutputDir = outputDir
	return r.publisher.Publish(ctx, img, opts)
}
