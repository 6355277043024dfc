package config

import (
	"errors"
	"fmt"
	"image/color"
	"time"
)

// デフォルト値の定義
const (
	DefaultBorderThickness    = 6
	DefaultTextBandHeight     = 100
	DefaultFontSize           = 42.0
	DefaultTextBoxStrokeWidth = 4
	DefaultFontName           = "arial.ttf"
	DefaultFontDPI            = 72.0
	DefaultFontCacheTTL       = 1 * time.Hour
	DefaultWorkers            = 6
	DefaultRateBurst          = 2
	DefaultJPEGQuality        = 95
	DefaultPDFImageWidth      = 400.0
	DefaultPDFImageHeight     = 600.0
	DefaultPDFMargin          = 72.0
)

var (
	DefaultBorderColor        = color.RGBA{A: 0xff}
	DefaultTextBandBackground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	DefaultCaptionInkColor    = color.RGBA{A: 0xff}
	DefaultTextBoxColor       = color.RGBA{A: 0xff}
)

// Config は Go Comic Kit の各コンポーネントを動作させるための基本設定です。
type Config struct {
	// --- Panel Layout Settings ---
	BorderThickness    int // パネル外周の枠線の太さ (px)
	TextBandHeight     int // キャプション帯の高さ (px)
	TextBoxStrokeWidth int // キャプション帯を囲む線の太さ (px)
	BorderColor        color.RGBA
	TextBandBackground color.RGBA
	CaptionInkColor    color.RGBA
	TextBoxColor       color.RGBA

	// --- Font Settings ---
	FontName     string  // フォントファイルのパス、システムフォント名、または builtin:goregular
	FontSize     float64 // pt
	FontDPI      float64
	FontCacheTTL time.Duration

	// --- Concurrency Settings ---
	Workers      int           // パネルを並列にレンダリングする最大数
	RateInterval time.Duration // 画像生成元の呼び出し間隔。0 なら制限なし
	RateBurst    int

	// --- Export Settings ---
	JPEGQuality    int
	PDFImageWidth  float64 // pt
	PDFImageHeight float64 // pt
	PDFMargin      float64 // pt
}

// DefaultConfig は推奨されるデフォルト設定を返すヘルパー関数です。
func DefaultConfig() Config {
	return Config{
		BorderThickness:    DefaultBorderThickness,
		TextBandHeight:     DefaultTextBandHeight,
		TextBoxStrokeWidth: DefaultTextBoxStrokeWidth,
		BorderColor:        DefaultBorderColor,
		TextBandBackground: DefaultTextBandBackground,
		CaptionInkColor:    DefaultCaptionInkColor,
		TextBoxColor:       DefaultTextBoxColor,
		FontName:           DefaultFontName,
		FontSize:           DefaultFontSize,
		FontDPI:            DefaultFontDPI,
		FontCacheTTL:       DefaultFontCacheTTL,
		Workers:            DefaultWorkers,
		RateBurst:          DefaultRateBurst,
		JPEGQuality:        DefaultJPEGQuality,
		PDFImageWidth:      DefaultPDFImageWidth,
		PDFImageHeight:     DefaultPDFImageHeight,
		PDFMargin:          DefaultPDFMargin,
	}
}

// Validate は設定値の整合性を検証し、違反をすべてまとめて返します。
func (c Config) Validate() error {
	var errs []error
	if c.BorderThickness < 0 {
		errs = append(errs, fmt.Errorf("BorderThickness は 0 以上である必要があります: %d", c.BorderThickness))
	}
	if c.TextBandHeight < 0 {
		errs = append(errs, fmt.Errorf("TextBandHeight は 0 以上である必要があります: %d", c.TextBandHeight))
	}
	if c.TextBoxStrokeWidth < 0 {
		errs = append(errs, fmt.Errorf("TextBoxStrokeWidth は 0 以上である必要があります: %d", c.TextBoxStrokeWidth))
	}
	if c.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("FontSize は正の値である必要があります: %v", c.FontSize))
	}
	if c.FontDPI <= 0 {
		errs = append(errs, fmt.Errorf("FontDPI は正の値である必要があります: %v", c.FontDPI))
	}
	if c.Workers <= 0 {
		errs = append(errs, fmt.Errorf("Workers は 1 以上である必要があります: %d", c.Workers))
	}
	if c.RateInterval < 0 {
		errs = append(errs, fmt.Errorf("RateInterval は 0 以上である必要があります: %v", c.RateInterval))
	}
	if c.RateInterval > 0 && c.RateBurst <= 0 {
		errs = append(errs, fmt.Errorf("RateBurst は 1 以上である必要があります: %d", c.RateBurst))
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		errs = append(errs, fmt.Errorf("JPEGQuality は 1〜100 の範囲である必要があります: %d", c.JPEGQuality))
	}
	if c.PDFImageWidth <= 0 || c.PDFImageHeight <= 0 {
		errs = append(errs, fmt.Errorf("PDF の画像サイズは正の値である必要があります: %vx%v", c.PDFImageWidth, c.PDFImageHeight))
	}
	if c.PDFMargin < 0 {
		errs = append(errs, fmt.Errorf("PDFMargin は 0 以上である必要があります: %v", c.PDFMargin))
	}
	return errors.Join(errs...)
}
