package typeset

import "golang.org/x/image/font/opentype"

// Typeface は1本のストリップで共有するフォント解決の結果です。
// 描画にはパネルごとに NewRenderer で TextRenderer を生成します。
type Typeface struct {
	font   *opentype.Font
	opts   Options
	reason error
}

// Fallback はビットマップフォントだけを使う Typeface を返します。
func Fallback() Typeface {
	return Typeface{}
}

// Kind は NewRenderer が返す TextRenderer の種類です。
func (t Typeface) Kind() Kind {
	if t.font == nil {
		return KindBitmap
	}
	return KindScalable
}

// Reason は優先フォントを使えなかった理由を返します。使えた場合は nil です。
func (t Typeface) Reason() error {
	return t.reason
}

// NewRenderer は新しい TextRenderer を返します。
func (t Typeface) NewRenderer() TextRenderer {
	if t.font == nil {
		return NewBitmapRenderer()
	}
	face, err := newFace(t.font, t.opts)
	if err != nil {
		return NewBitmapRenderer()
	}
	return &ScalableRenderer{faceText{face: face}}
}
