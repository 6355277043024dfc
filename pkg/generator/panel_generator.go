package generator

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/shouni/go-comic-kit/pkg/domain"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// PanelGenerator は、レート制限をかけながら並列で複数パネルの画像を取得します。
type PanelGenerator struct {
	source  ImageSource
	limiter *rate.Limiter
	workers int
}

// NewPanelGenerator は PanelGenerator の新しいインスタンスを初期化します。
// interval が 0 以下の場合はレート制限を行いません。
func NewPanelGenerator(source ImageSource, interval time.Duration, burst, workers int) *PanelGenerator {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	if burst <= 0 {
		burst = 1
	}
	return &PanelGenerator{
		source:  source,
		limiter: rate.NewLimiter(limit, burst),
		workers: max(workers, 1),
	}
}

// Execute は、並列処理を用いてパネル群の画像を取得します。結果は入力と同じ順序です。
// 失敗したパネルは domain.GenerationError として返されます。
func (pg *PanelGenerator) Execute(ctx context.Context, panels []domain.PanelSource, style domain.Style) ([]image.Image, error) {
	if pg.source == nil {
		return nil, errors.New("画像の取得元が設定されていません")
	}

	images := make([]image.Image, len(panels))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(pg.workers)

	for i, panel := range panels {
		eg.Go(func() error {
			if err := pg.limiter.Wait(egCtx); err != nil {
				return &domain.GenerationError{Index: i, Err: err}
			}

			logger := slog.With("panel_index", i+1, "style", string(style))
			logger.Info("Starting panel generation")

			startTime := time.Now()
			img, err := pg.source.Render(egCtx, i, panel, style)
			if err != nil {
				return &domain.GenerationError{Index: i, Err: err}
			}
			if img == nil {
				return &domain.GenerationError{Index: i, Err: fmt.Errorf("画像が返されませんでした")}
			}

			logger.Info("Panel generation completed", "duration", time.Since(startTime).Round(time.Millisecond))
			images[i] = img
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return images, nil
}
