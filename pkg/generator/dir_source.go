package generator

import (
	"context"
	"fmt"
	"image"
	"os"

	"github.com/shouni/go-comic-kit/pkg/asset"
	"github.com/shouni/go-comic-kit/pkg/domain"
)

// DirImageSource はディレクトリ内の panel_N.png を読み込む ImageSource です。
type DirImageSource struct {
	dir string
}

// NewDirImageSource は DirImageSource を生成します。
func NewDirImageSource(dir string) *DirImageSource {
	return &DirImageSource{dir: dir}
}

// Paths は先頭 n 枚分のパネル画像パスを返します。ファイルの存在は確認しません。
func (s *DirImageSource) Paths(n int) ([]string, error) {
	return asset.PanelPaths(s.dir, n)
}

func (s *DirImageSource) Render(ctx context.Context, index int, _ domain.PanelSource, _ domain.Style) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := asset.PanelPath(s.dir, index)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("パネル画像を開けません: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("パネル画像のデコードに失敗しました (%s): %w", p, err)
	}
	return img, nil
}
