// Package panel は1枚のソース画像とキャプションから、枠線とキャプション帯を持つパネルを生成します。
package panel

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/shouni/go-comic-kit/pkg/config"
	"github.com/shouni/go-comic-kit/pkg/typeset"
)

// Renderer はパネル単体のレンダリングを担います。ディスクI/Oは行いません。
type Renderer struct {
	cfg          config.Config
	resolver     *typeset.Resolver
	resolverOnce sync.Once
}

// NewRenderer は設定を基に Renderer を初期化します。
// resolver が nil の場合、RenderWithFont の初回呼び出し時に生成します。
func NewRenderer(cfg config.Config, resolver *typeset.Resolver) *Renderer {
	return &Renderer{
		cfg:      cfg,
		resolver: resolver,
	}
}

// Resolver は RenderWithFont が使うフォントの Resolver を返します。
func (r *Renderer) Resolver() *typeset.Resolver {
	r.resolverOnce.Do(func() {
		if r.resolver == nil {
			r.resolver = typeset.NewResolver(r.cfg.FontCacheTTL)
		}
	})
	return r.resolver
}

// FontOptions は設定から優先フォントの指定を組み立てます。
func (r *Renderer) FontOptions() typeset.Options {
	return typeset.Options{
		Name: r.cfg.FontName,
		Size: r.cfg.FontSize,
		DPI:  r.cfg.FontDPI,
	}
}

// Render は枠線を付けた画像の下にキャプション帯を追加したパネルを返します。
func (r *Renderer) Render(src image.Image, caption string, tr typeset.TextRenderer) *image.RGBA {
	bordered := r.AddBorder(src)
	return r.AddCaption(bordered, caption, tr)
}

// RenderWithFont は呼び出しごとにフォントを解決して Render を実行します。
func (r *Renderer) RenderWithFont(ctx context.Context, src image.Image, caption string) *image.RGBA {
	tf := r.Resolver().Resolve(ctx, r.FontOptions())
	return r.Render(src, caption, tf.NewRenderer())
}

// AddBorder は四辺に BorderThickness の枠線を付けた新しいキャンバスを返します。
// ソース画像のアルファは破棄され、(thickness, thickness) の位置に不透明で貼り付けられます。
func (r *Renderer) AddBorder(src image.Image) *image.RGBA {
	t := r.cfg.BorderThickness
	b := src.Bounds()
	canvas := image.NewRGBA(image.Rect(0, 0, b.Dx()+2*t, b.Dy()+2*t))
	fill(canvas, canvas.Bounds(), r.cfg.BorderColor)
	pasteOpaque(canvas, image.Pt(t, t), src)
	return canvas
}

// AddCaption は画像の下に TextBandHeight のキャプション帯を追加した新しいキャンバスを返します。
// キャプションは帯の中で水平・垂直に中央揃えされます。パネル幅を超えるキャプションは折り返さず、
// キャンバスの境界でのみ切り取られます。
func (r *Renderer) AddCaption(src *image.RGBA, caption string, tr typeset.TextRenderer) *image.RGBA {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	band := r.cfg.TextBandHeight

	canvas := image.NewRGBA(image.Rect(0, 0, w, h+band))
	fill(canvas, canvas.Bounds(), r.cfg.TextBandBackground)
	draw.Draw(canvas, image.Rect(0, 0, w, h), src, src.Bounds().Min, draw.Src)

	bandRect := image.Rect(0, h, w, h+band)
	strokeRect(canvas, bandRect, r.cfg.TextBoxStrokeWidth, r.cfg.TextBoxColor)

	if caption == "" || tr == nil {
		return canvas
	}
	x := floorDiv(w-tr.Measure(caption), 2)
	top := h + floorDiv(band-tr.LineHeight(), 2)
	tr.Draw(canvas, caption, x, top, r.cfg.CaptionInkColor)
	return canvas
}

func fill(dst *image.RGBA, rect image.Rectangle, c color.Color) {
	draw.Draw(dst, rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// strokeRect は rect の内側に沿って width ピクセルの線を描きます。
func strokeRect(dst *image.RGBA, rect image.Rectangle, width int, c color.Color) {
	if width <= 0 || rect.Empty() {
		return
	}
	width = min(width, rect.Dx(), rect.Dy())
	fill(dst, image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+width), c)
	fill(dst, image.Rect(rect.Min.X, rect.Max.Y-width, rect.Max.X, rect.Max.Y), c)
	fill(dst, image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+width, rect.Max.Y), c)
	fill(dst, image.Rect(rect.Max.X-width, rect.Min.Y, rect.Max.X, rect.Max.Y), c)
}

// pasteOpaque は src を dst の at の位置にアルファを無視して貼り付けます。
func pasteOpaque(dst *image.RGBA, at image.Point, src image.Image) {
	b := src.Bounds()
	rect := image.Rectangle{Min: at, Max: at.Add(b.Size())}

	if o, ok := src.(interface{ Opaque() bool }); ok && o.Opaque() {
		draw.Draw(dst, rect, src, b.Min, draw.Src)
		return
	}

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			dst.SetRGBA(at.X+x, at.Y+y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}
}

// floorDiv は負の値でも切り捨てになる整数除算です。
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
