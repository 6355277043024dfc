package config

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"time"

	"github.com/shouni/go-comic-kit/pkg/asset"
	comiccfg "github.com/shouni/go-comic-kit/pkg/config"
	"github.com/shouni/go-comic-kit/pkg/storage"

	"github.com/shouni/go-utils/envutil"
)

// デフォルト値の定義なのだ
const (
	DefaultOutputDir = asset.DefaultOutputDir
	DefaultPanelDir  = asset.DefaultPanelDir
)

// Config はアプリケーション全体の環境設定（描画設定と保存先）を保持する構造体なのだ。
type Config struct {
	Comic comiccfg.Config
	// S3 は COMIC_S3_ENDPOINT が設定されている場合のみ nil 以外になるのだ。
	S3 *storage.S3Config

	Options ComposeOptions
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
// 整数と真偽値は envutil に任せるので、解釈できなければデフォルト値のままなのだ。
// 小数・時間・色が解釈できなければ、すべてまとめてエラーにするのだ。
func LoadConfig() (*Config, error) {
	c := comiccfg.DefaultConfig()
	p := &envParser{}

	c.BorderThickness = envutil.GetEnvAsInt("COMIC_BORDER_THICKNESS", c.BorderThickness)
	c.TextBandHeight = envutil.GetEnvAsInt("COMIC_TEXT_BAND_HEIGHT", c.TextBandHeight)
	c.TextBoxStrokeWidth = envutil.GetEnvAsInt("COMIC_TEXT_BOX_STROKE", c.TextBoxStrokeWidth)
	c.BorderColor = p.color("COMIC_BORDER_COLOR", c.BorderColor)
	c.TextBandBackground = p.color("COMIC_BAND_BACKGROUND", c.TextBandBackground)
	c.CaptionInkColor = p.color("COMIC_CAPTION_COLOR", c.CaptionInkColor)
	c.TextBoxColor = p.color("COMIC_TEXT_BOX_COLOR", c.TextBoxColor)
	c.FontName = envutil.GetEnv("COMIC_FONT", c.FontName)
	c.FontSize = p.float("COMIC_FONT_SIZE", c.FontSize)
	c.FontDPI = p.float("COMIC_FONT_DPI", c.FontDPI)
	c.FontCacheTTL = p.duration("COMIC_FONT_CACHE_TTL", c.FontCacheTTL)
	c.Workers = envutil.GetEnvAsInt("COMIC_WORKERS", c.Workers)
	c.RateInterval = p.duration("COMIC_RATE_INTERVAL", c.RateInterval)
	c.RateBurst = envutil.GetEnvAsInt("COMIC_RATE_BURST", c.RateBurst)
	c.JPEGQuality = envutil.GetEnvAsInt("COMIC_JPEG_QUALITY", c.JPEGQuality)

	cfg := &Config{Comic: c}
	if endpoint := envutil.GetEnv("COMIC_S3_ENDPOINT", ""); endpoint != "" {
		cfg.S3 = &storage.S3Config{
			Endpoint:  endpoint,
			AccessKey: envutil.GetEnv("COMIC_S3_ACCESS_KEY", ""),
			SecretKey: envutil.GetEnv("COMIC_S3_SECRET_KEY", ""),
			UseSSL:    envutil.GetEnvAsBool("COMIC_S3_USE_SSL", true),
		}
	}

	if err := errors.Join(p.errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envParser は envutil に解釈関数がない値を読み、エラーを溜め込むのだ。
type envParser struct {
	errs []error
}

func (p *envParser) fail(key, raw string, err error) {
	p.errs = append(p.errs, fmt.Errorf("環境変数 %s の値 %q が不正なのだ: %w", key, raw, err))
}

func (p *envParser) float(key string, def float64) float64 {
	raw := envutil.GetEnv(key, "")
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.fail(key, raw, err)
		return def
	}
	return v
}

func (p *envParser) duration(key string, def time.Duration) time.Duration {
	raw := envutil.GetEnv(key, "")
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		p.fail(key, raw, err)
		return def
	}
	return v
}

func (p *envParser) color(key string, def color.RGBA) color.RGBA {
	raw := envutil.GetEnv(key, "")
	if raw == "" {
		return def
	}
	v, err := comiccfg.ParseColor(raw)
	if err != nil {
		p.fail(key, raw, err)
		return def
	}
	return v
}

// ComposeOptions は CLI フラグから渡される実行時のパラメータなのだ。
type ComposeOptions struct {
	// 入力関連
	Images     []string // --image, -i
	Captions   []string // --caption, -c
	ScriptFile string   // --script
	ImageDir   string   // --image-dir

	// 出力関連
	OutputDir string // --output-dir, -o
	ImageName string // --image-name
	NoPDF     bool   // --no-pdf

	// 描画設定の上書き
	Font     string  // --font
	FontSize float64 // --font-size
	Workers  int     // --workers
}

// Apply は CLI で指定された値で描画設定を上書きするのだ。0 や空文字は「指定なし」扱いなのだ。
func (o ComposeOptions) Apply(c *comiccfg.Config) {
	if o.Font != "" {
		c.FontName = o.Font
	}
	if o.FontSize > 0 {
		c.FontSize = o.FontSize
	}
	if o.Workers > 0 {
		c.Workers = o.Workers
	}
}
