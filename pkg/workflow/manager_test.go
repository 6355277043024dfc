package workflow

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/shouni/go-comic-kit/pkg/config"
	"github.com/shouni/go-comic-kit/pkg/domain"
	"github.com/shouni/go-comic-kit/pkg/generator"
	"github.com/shouni/go-comic-kit/pkg/typeset"
)

func writePanels(t *testing.T, dir string) []string {
	t.Helper()
	paths := make([]string, domain.StripPanelCount)
	for i := range paths {
		img := image.NewRGBA(image.Rect(0, 0, 24, 16))
		draw.Draw(img, img.Bounds(), &image.Uniform{C: color.RGBA{B: uint8(40 * i), A: 0xff}}, image.Point{}, draw.Src)
		p := filepath.Join(dir, "panel_"+string(rune('1'+i))+".png")
		f, err := os.Create(p)
		if err != nil {
			t.Fatal(err)
		}
		if err := png.Encode(f, img); err != nil {
			t.Fatal(err)
		}
		_ = f.Close()
		paths[i] = p
	}
	return paths
}

func testConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.FontName = typeset.BuiltinGoRegular
	cfg.FontSize = 18
	return cfg
}

func TestNew(t *testing.T) {
	t.Run("不正な設定はエラーになること", func(t *testing.T) {
		cfg := testConfig()
		cfg.Workers = 0
		if _, err := New(ManagerArgs{Config: cfg}); err == nil {
			t.Error("エラーが期待されましたが nil でした")
		}
	})

	t.Run("BuildGenerateRunner は協調コンポーネントを必須とすること", func(t *testing.T) {
		m, err := New(ManagerArgs{Config: testConfig()})
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if _, err := m.BuildGenerateRunner(nil, nil); err == nil {
			t.Error("エラーが期待されましたが nil でした")
		}
	})
}

func TestManager_EndToEnd(t *testing.T) {
	ctx := context.Background()
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "output")
	paths := writePanels(t, in)

	m, err := New(ManagerArgs{Config: testConfig(), PanelDir: "PANEL_IMAGES"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	t.Run("ComposeRunner がローカルにストリップと PDF を保存すること", func(t *testing.T) {
		r, err := m.BuildComposeRunner()
		if err != nil {
			t.Fatal(err)
		}
		res, err := r.Run(ctx, paths, []string{"a", "b", "c", "d", "e", "f"}, out)
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		for _, p := range []string{res.ImagePath, res.PDFPath} {
			if _, err := os.Stat(p); err != nil {
				t.Errorf("%s が作成されていません: %v", p, err)
			}
		}
		f, err := os.Open(res.ImagePath)
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()
		cfgImg, err := png.DecodeConfig(f)
		if err != nil {
			t.Fatal(err)
		}
		cfg := testConfig()
		uw := 24 + 2*cfg.BorderThickness
		uh := 16 + 2*cfg.BorderThickness + cfg.TextBandHeight
		if cfgImg.Width != 2*uw || cfgImg.Height != 3*uh {
			t.Errorf("size = %dx%d, want %dx%d", cfgImg.Width, cfgImg.Height, 2*uw, 3*uh)
		}
	})

	t.Run("GenerateRunner が台本と画像ディレクトリから保存すること", func(t *testing.T) {
		script := filepath.Join(in, "script.json")
		body := `{"style":"Manga","panels":[` +
			`{"description":"1","caption":"one"},{"description":"2","caption":"two"},` +
			`{"description":"3","caption":"three"},{"description":"4","caption":"four"},` +
			`{"description":"5","caption":"five"},{"description":"6","caption":"six"}]}`
		if err := os.WriteFile(script, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		r, err := m.BuildGenerateRunner(generator.NewScriptSource(script), generator.NewDirImageSource(in))
		if err != nil {
			t.Fatal(err)
		}
		res, err := r.Run(ctx, "", domain.StyleManga, out)
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if len(res.PanelPaths) != 6 {
			t.Errorf("PanelPaths = %v", res.PanelPaths)
		}
		for _, p := range res.PanelPaths {
			if _, err := os.Stat(p); err != nil {
				t.Errorf("%s が作成されていません", p)
			}
		}
	})

	t.Run("画像ディレクトリのパスで合成できること", func(t *testing.T) {
		dirPaths, err := generator.NewDirImageSource(in).Paths(domain.StripPanelCount)
		if err != nil {
			t.Fatal(err)
		}
		r, err := m.BuildComposeRunner()
		if err != nil {
			t.Fatal(err)
		}
		if _, err := r.Run(ctx, dirPaths, []string{"a", "b", "c", "d", "e", "f"}, out); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	})

	t.Run("画像ディレクトリに欠けたパネルは MissingAssetError になること", func(t *testing.T) {
		empty := t.TempDir()
		dirPaths, err := generator.NewDirImageSource(empty).Paths(domain.StripPanelCount)
		if err != nil {
			t.Fatal(err)
		}
		r, err := m.BuildComposeRunner()
		if err != nil {
			t.Fatal(err)
		}
		_, err = r.Run(ctx, dirPaths, []string{"a", "b", "c", "d", "e", "f"}, out)
		var missing *domain.MissingAssetError
		if !errors.As(err, &missing) {
			t.Fatalf("err = %v, want MissingAssetError", err)
		}
		if len(missing.Paths) != domain.StripPanelCount {
			t.Errorf("Paths = %v", missing.Paths)
		}
	})
}
