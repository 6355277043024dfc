// Package typeset はキャプション描画用の TextRenderer と、そのフォント解決を提供します。
//
// TextRenderer には2つの実装があります。
//   - ScalableRenderer: TrueType/OpenType フォントを指定ポイントで描画します。
//   - BitmapRenderer: 組み込みの basicfont.Face7x13 で描画します。
//
// 優先フォントが使えない環境でも Resolver はエラーを返さず、BitmapRenderer に切り替えます。
package typeset

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Kind は TextRenderer の種類です。
type Kind int

const (
	KindBitmap Kind = iota
	KindScalable
)

func (k Kind) String() string {
	if k == KindScalable {
		return "scalable"
	}
	return "bitmap"
}

// TextRenderer は1行のテキストを計測・描画します。
// 実装はゴルーチン間で共有せず、パネルごとに生成して使います。
type TextRenderer interface {
	Kind() Kind
	// Measure はテキストの描画幅 (px) を返します。
	Measure(text string) int
	// LineHeight は1行の高さ (ascent + descent, px) を返します。
	LineHeight() int
	// Draw は行の上端を top、左端を x としてテキストを描画します。
	Draw(dst draw.Image, text string, x, top int, ink color.Color)
}

type faceText struct {
	face font.Face
}

func (f faceText) Measure(text string) int {
	return font.MeasureString(f.face, text).Ceil()
}

func (f faceText) LineHeight() int {
	m := f.face.Metrics()
	return (m.Ascent + m.Descent).Ceil()
}

func (f faceText) Draw(dst draw.Image, text string, x, top int, ink color.Color) {
	if text == "" {
		return
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(ink),
		Face: f.face,
		Dot:  fixed.P(x, top+f.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}

// ScalableRenderer はアウトラインフォントによる TextRenderer です。
type ScalableRenderer struct {
	faceText
}

func (*ScalableRenderer) Kind() Kind { return KindScalable }

// BitmapRenderer は組み込みビットマップフォントによる TextRenderer です。
type BitmapRenderer struct {
	faceText
}

// NewBitmapRenderer は basicfont.Face7x13 を使う TextRenderer を返します。
func NewBitmapRenderer() *BitmapRenderer {
	return &BitmapRenderer{faceText{face: basicfont.Face7x13}}
}

func (*BitmapRenderer) Kind() Kind { return KindBitmap }
