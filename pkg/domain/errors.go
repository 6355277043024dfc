package domain

import (
	"fmt"
	"image"
	"strings"
)

// InputCountError は画像とキャプションの数がストリップの要件を満たさない場合のエラーです。
type InputCountError struct {
	Images   int
	Captions int
	Want     int
}

func (e *InputCountError) Error() string {
	return fmt.Sprintf("パネル画像とキャプションはそれぞれ %d 個必要です (images=%d, captions=%d)", e.Want, e.Images, e.Captions)
}

// MissingAssetError は参照された画像ファイルが見つからない場合のエラーです。
// 見つからなかったパスを入力順にすべて保持します。
type MissingAssetError struct {
	Paths []string
}

func (e *MissingAssetError) Error() string {
	return fmt.Sprintf("パネル画像が見つかりません: %s", strings.Join(e.Paths, ", "))
}

// AssetDecodeError はパネル画像をビットマップにデコードできなかった場合のエラーです。
type AssetDecodeError struct {
	Index int
	Path  string
	Err   error
}

func (e *AssetDecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("パネル %d の画像をデコードできません: %v", e.Index+1, e.Err)
	}
	return fmt.Sprintf("パネル %d の画像をデコードできません (%s): %v", e.Index+1, e.Path, e.Err)
}

func (e *AssetDecodeError) Unwrap() error { return e.Err }

// PanelSizeError はレンダリング済みパネルの寸法が揃っていない場合のエラーです。
type PanelSizeError struct {
	Index int
	Want  image.Point
	Got   image.Point
}

func (e *PanelSizeError) Error() string {
	return fmt.Sprintf("パネル %d の寸法 %dx%d が先頭パネルの %dx%d と一致しません",
		e.Index+1, e.Got.X, e.Got.Y, e.Want.X, e.Want.Y)
}

// WriteError は成果物（画像やPDF）を保存できなかった場合のエラーです。
type WriteError struct {
	Target string
	Err    error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s の書き込みに失敗しました: %v", e.Target, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// GenerationError は外部の生成元がパネルの生成に失敗した場合のエラーです。
type GenerationError struct {
	Index int
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("パネル %d の生成に失敗しました: %v", e.Index+1, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
