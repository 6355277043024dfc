package typeset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/image/font/gofont/goregular"
)

func testOptions(name string) Options {
	return Options{Name: name, Size: 42, DPI: 72}
}

func newTestResolver() *Resolver {
	r := NewResolver(time.Minute)
	r.lookup = func(name string) (string, error) {
		return "", errors.New("not found")
	}
	return r
}

func TestResolver_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("組み込みフォントはアウトラインフォントとして解決されること", func(t *testing.T) {
		tf := newTestResolver().Resolve(ctx, testOptions(BuiltinGoRegular))
		if tf.Kind() != KindScalable {
			t.Fatalf("Kind = %v, want scalable (reason: %v)", tf.Kind(), tf.Reason())
		}
		if tf.Reason() != nil {
			t.Errorf("Reason = %v, want nil", tf.Reason())
		}
		tr := tf.NewRenderer()
		if tr.Kind() != KindScalable {
			t.Errorf("NewRenderer().Kind = %v", tr.Kind())
		}
		if tr.LineHeight() <= 13 {
			t.Errorf("42pt の行高がビットマップフォント以下です: %d", tr.LineHeight())
		}
	})

	t.Run("ファイルパスで指定したフォントを読み込めること", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "go.ttf")
		if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
			t.Fatal(err)
		}
		tf := newTestResolver().Resolve(ctx, testOptions(path))
		if tf.Kind() != KindScalable {
			t.Errorf("Kind = %v, reason: %v", tf.Kind(), tf.Reason())
		}
	})

	t.Run("フォントが存在しない場合はエラーにならずビットマップフォントになること", func(t *testing.T) {
		tf := newTestResolver().Resolve(ctx, testOptions(filepath.Join(t.TempDir(), "arial.ttf")))
		if tf.Kind() != KindBitmap {
			t.Fatalf("Kind = %v, want bitmap", tf.Kind())
		}
		if !errors.Is(tf.Reason(), ErrFontUnavailable) {
			t.Errorf("Reason = %v, want ErrFontUnavailable", tf.Reason())
		}
		if tr := tf.NewRenderer(); tr.Kind() != KindBitmap || tr.Measure("Hello") == 0 {
			t.Errorf("代替フォントで計測できません: kind=%v", tr.Kind())
		}
	})

	t.Run("壊れたフォントファイルはビットマップフォントになること", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.ttf")
		if err := os.WriteFile(path, []byte("not a font"), 0o644); err != nil {
			t.Fatal(err)
		}
		tf := newTestResolver().Resolve(ctx, testOptions(path))
		if tf.Kind() != KindBitmap || !errors.Is(tf.Reason(), ErrFontUnavailable) {
			t.Errorf("Kind = %v, Reason = %v", tf.Kind(), tf.Reason())
		}
	})

	t.Run("システムフォント名は lookup で解決されること", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "Arial.ttf")
		if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
			t.Fatal(err)
		}
		r := NewResolver(time.Minute)
		r.lookup = func(name string) (string, error) {
			if name != "arial.ttf" {
				t.Errorf("lookup(%q)", name)
			}
			return path, nil
		}
		if tf := r.Resolve(ctx, testOptions("arial.ttf")); tf.Kind() != KindScalable {
			t.Errorf("Kind = %v, reason: %v", tf.Kind(), tf.Reason())
		}
	})

	t.Run("不正なサイズ指定はビットマップフォントになること", func(t *testing.T) {
		tf := newTestResolver().Resolve(ctx, Options{Name: BuiltinGoRegular, Size: 0, DPI: 72})
		if tf.Kind() != KindBitmap {
			t.Errorf("Kind = %v, want bitmap", tf.Kind())
		}
	})
}

func TestResolver_Cache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "go.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}

	var reads atomic.Int32
	r := newTestResolver()
	r.readFile = func(p string) ([]byte, error) {
		reads.Add(1)
		return os.ReadFile(p)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if tf := r.Resolve(context.Background(), testOptions(path)); tf.Kind() != KindScalable {
				t.Errorf("Kind = %v", tf.Kind())
			}
		}()
	}
	wg.Wait()

	if got := reads.Load(); got != 1 {
		t.Errorf("フォントファイルが %d 回読み込まれました, want 1", got)
	}
}
