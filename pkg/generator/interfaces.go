// Package generator はパネルの内容と画像を外部の協調コンポーネントから取得します。
package generator

import (
	"context"
	"image"

	"github.com/shouni/go-comic-kit/pkg/domain"
)

// ContentSource は依頼文と画風から、(描写, キャプション) の順序付きリストを返します。
type ContentSource interface {
	Panels(ctx context.Context, prompt string, style domain.Style) ([]domain.PanelSource, error)
}

// ImageSource はパネルの描写と画風から1枚のラスタ画像を返します。
type ImageSource interface {
	Render(ctx context.Context, index int, panel domain.PanelSource, style domain.Style) (image.Image, error)
}

// PanelsImageGenerator はパネル群の画像をまとめて取得するためのインターフェースです。
type PanelsImageGenerator interface {
	Execute(ctx context.Context, panels []domain.PanelSource, style domain.Style) ([]image.Image, error)
}
