package typeset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/flopp/go-findfont"
	"github.com/patrickmn/go-cache"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/sync/singleflight"
)

// BuiltinGoRegular はバイナリに埋め込まれた Go Regular フォントを指す名前です。
const BuiltinGoRegular = "builtin:goregular"

// ErrFontUnavailable は優先フォントを利用できなかったことを示します。
// Resolver はこのエラーを返さず、Typeface.Reason で参照できるようにするだけです。
var ErrFontUnavailable = errors.New("font unavailable")

// Options は優先フォントの指定です。
type Options struct {
	Name string  // フォントファイルのパス、システムフォント名、または BuiltinGoRegular
	Size float64 // pt
	DPI  float64
}

// Resolver は優先フォントを読み込み、パース済みフォントをキャッシュします。
type Resolver struct {
	fonts *cache.Cache
	group singleflight.Group

	lookup   func(name string) (string, error)
	readFile func(path string) ([]byte, error)
}

// NewResolver は ttl の間パース済みフォントを保持する Resolver を生成します。
func NewResolver(ttl time.Duration) *Resolver {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	return &Resolver{
		fonts:    cache.New(ttl, 2*ttl),
		lookup:   findfont.Find,
		readFile: os.ReadFile,
	}
}

// Resolve は優先フォントを解決した Typeface を返します。
// 優先フォントが使えない場合は WARN を記録し、ビットマップフォントの Typeface を返します。
func (r *Resolver) Resolve(ctx context.Context, opts Options) Typeface {
	f, err := r.load(opts.Name)
	if err == nil {
		// サイズ指定が不正な場合もここで検出し、ストリップ内で状態が揺れないようにする
		var face font.Face
		face, err = newFace(f, opts)
		if err == nil {
			_ = face.Close()
			return Typeface{font: f, opts: opts}
		}
	}

	slog.WarnContext(ctx, "優先フォントを読み込めないため、ビットマップフォントで代替します",
		"font", opts.Name,
		"error", err,
	)
	return Typeface{reason: fmt.Errorf("%w: %s: %v", ErrFontUnavailable, opts.Name, err)}
}

// load はフォント名をファイルパスに解決し、パース済みフォントを返します。
func (r *Resolver) load(name string) (*opentype.Font, error) {
	if name == "" {
		return nil, errors.New("フォント名が指定されていません")
	}

	key := name
	if name != BuiltinGoRegular {
		path, err := r.resolvePath(name)
		if err != nil {
			return nil, err
		}
		key = path
	}

	if f, ok := r.fonts.Get(key); ok {
		return f.(*opentype.Font), nil
	}

	v, err, _ := r.group.Do(key, func() (interface{}, error) {
		// 待機中に他のゴルーチンが読み込みを終えている可能性がある
		if f, ok := r.fonts.Get(key); ok {
			return f, nil
		}

		data := goregular.TTF
		if key != BuiltinGoRegular {
			var err error
			data, err = r.readFile(key)
			if err != nil {
				return nil, fmt.Errorf("フォントファイルの読み込みに失敗しました: %w", err)
			}
		}

		f, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("フォントのパースに失敗しました (%s): %w", key, err)
		}
		r.fonts.Set(key, f, cache.DefaultExpiration)
		return f, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*opentype.Font), nil
}

func (r *Resolver) resolvePath(name string) (string, error) {
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return name, nil
	}
	path, err := r.lookup(name)
	if err != nil {
		return "", fmt.Errorf("システムフォント %q が見つかりません: %w", name, err)
	}
	return path, nil
}

func newFace(f *opentype.Font, opts Options) (font.Face, error) {
	if opts.Size <= 0 || opts.DPI <= 0 {
		return nil, fmt.Errorf("不正なフォントサイズです: size=%v dpi=%v", opts.Size, opts.DPI)
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    opts.Size,
		DPI:     opts.DPI,
		Hinting: font.HintingFull,
	})
}
