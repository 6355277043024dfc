// Package strip は6枚のパネルを2列×3行のグリッドに並べ、1枚のコミックストリップを合成します。
package strip

import (
	"context"
	"image"
	"image/draw"
	"log/slog"
	"time"

	"github.com/shouni/go-comic-kit/pkg/config"
	"github.com/shouni/go-comic-kit/pkg/domain"
	"github.com/shouni/go-comic-kit/pkg/layout"
	"github.com/shouni/go-comic-kit/pkg/panel"
	"github.com/shouni/go-comic-kit/pkg/typeset"
	"golang.org/x/sync/errgroup"
)

// Composer はパネルのレンダリングとグリッドへの配置を統括します。
type Composer struct {
	cfg      config.Config
	loader   ImageLoader
	resolver *typeset.Resolver
	renderer *panel.Renderer
}

// Option は Composer の構成を変更する関数です。
type Option func(*Composer)

// WithLoader は画像の読み込み元を差し替えます。
func WithLoader(l ImageLoader) Option {
	return func(c *Composer) {
		if l != nil {
			c.loader = l
		}
	}
}

// WithResolver はフォントの解決に使う Resolver を差し替えます。
// 複数の Composer でフォントキャッシュを共有する場合に使います。
func WithResolver(r *typeset.Resolver) Option {
	return func(c *Composer) {
		if r != nil {
			c.resolver = r
		}
	}
}

// WithPanelRenderer はパネル単体のレンダラーを差し替えます。
// WithResolver を指定しない場合、フォントの解決にはこのレンダラーの Resolver を使います。
func WithPanelRenderer(r *panel.Renderer) Option {
	return func(c *Composer) {
		if r != nil {
			c.renderer = r
		}
	}
}

// NewComposer は Composer を初期化します。
func NewComposer(cfg config.Config, opts ...Option) *Composer {
	c := &Composer{
		cfg:    cfg,
		loader: FileLoader{},
	}
	for _, opt := range opts {
		opt(c)
	}
	switch {
	case c.resolver != nil:
	case c.renderer != nil:
		c.resolver = c.renderer.Resolver()
	default:
		c.resolver = typeset.NewResolver(cfg.FontCacheTTL)
	}
	if c.renderer == nil {
		c.renderer = panel.NewRenderer(cfg, c.resolver)
	}
	return c
}

// Config は Composer の設定を返します。
func (c *Composer) Config() config.Config { return c.cfg }

// ComposePanels は Panel のスライスからストリップを合成します。
func (c *Composer) ComposePanels(ctx context.Context, panels []Panel) (*image.RGBA, error) {
	images := make([]ImageRef, len(panels))
	captions := make([]string, len(panels))
	for i, p := range panels {
		images[i] = p.Image
		captions[i] = p.Caption
	}
	return c.Compose(ctx, images, captions)
}

// Compose は6枚の画像と6個のキャプションからコミックストリップを合成します。
//
// 入力数の検証と画像ファイルの存在確認は、デコードやレンダリングより前にすべて完了します。
// パネルは並列にレンダリングされますが、配置は常に入力順です。
func (c *Composer) Compose(ctx context.Context, images []ImageRef, captions []string) (*image.RGBA, error) {
	if len(images) != domain.StripPanelCount || len(captions) != domain.StripPanelCount {
		return nil, &domain.InputCountError{
			Images:   len(images),
			Captions: len(captions),
			Want:     domain.StripPanelCount,
		}
	}

	var missing []string
	for _, ref := range images {
		if ref.HasPath() && !c.loader.Exists(ref.path) {
			missing = append(missing, ref.path)
		}
	}
	if len(missing) > 0 {
		return nil, &domain.MissingAssetError{Paths: missing}
	}

	tf := c.resolver.Resolve(ctx, c.renderer.FontOptions())
	slog.DebugContext(ctx, "Typeface resolved", "kind", tf.Kind().String())

	units, err := c.renderUnits(ctx, images, captions, tf)
	if err != nil {
		return nil, err
	}

	want := units[0].Bounds().Size()
	for i, u := range units[1:] {
		if got := u.Bounds().Size(); got != want {
			return nil, &domain.PanelSizeError{Index: i + 1, Want: want, Got: got}
		}
	}

	canvas := image.NewRGBA(layout.CanvasSize(want.X, want.Y))
	for i, u := range units {
		dst := layout.CellRect(i, want.X, want.Y)
		draw.Draw(canvas, dst, u, u.Bounds().Min, draw.Src)
	}
	return canvas, nil
}

// renderUnits は各パネルをデコードしてレンダリングします。
// 各ゴルーチンは自分のインデックスにのみ書き込み、失敗した場合は最も小さいインデックスのエラーを返します。
func (c *Composer) renderUnits(ctx context.Context, images []ImageRef, captions []string, tf typeset.Typeface) ([]*image.RGBA, error) {
	units := make([]*image.RGBA, len(images))
	errs := make([]error, len(images))

	var eg errgroup.Group
	eg.SetLimit(max(c.cfg.Workers, 1))

	for i := range images {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			logger := slog.With("panel_index", i+1)
			startTime := time.Now()

			src, err := decode(c.loader, images[i])
			if err != nil {
				errs[i] = &domain.AssetDecodeError{Index: i, Path: images[i].path, Err: err}
				return nil
			}

			units[i] = c.renderer.Render(src, captions[i], tf.NewRenderer())
			logger.DebugContext(ctx, "Panel rendered", "duration", time.Since(startTime).Round(time.Millisecond))
			return nil
		})
	}
	_ = eg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return units, nil
}
