package asset

import (
	"path/filepath"
	"testing"
)

func TestResolveOutputPath(t *testing.T) {
	tests := []struct {
		name     string
		baseDir  string
		fileName string
		want     string
	}{
		{"S3 のディレクトリ", "s3://bucket/out", DefaultPDFFileName, "s3://bucket/out/comic_strip.pdf"},
		{"S3 の末尾スラッシュ", "s3://bucket/out/", DefaultStripFileName, "s3://bucket/out/comic_strip_with_text.png"},
		{"ローカルのディレクトリ", DefaultOutputDir, DefaultStripFileName, filepath.Join("output", "comic_strip_with_text.png")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveOutputPath(tt.baseDir, tt.fileName)
			if err != nil {
				t.Fatalf("ResolveOutputPath() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveOutputPath(%q, %q) = %q, want %q", tt.baseDir, tt.fileName, got, tt.want)
			}
		})
	}
}

func TestPanelPath(t *testing.T) {
	t.Run("0始まりのインデックスを1始まりの連番に変換すること", func(t *testing.T) {
		got, err := PanelPath(DefaultPanelDir, 0)
		if err != nil {
			t.Fatalf("PanelPath() error = %v", err)
		}
		if want := filepath.Join("PANEL_IMAGES", "panel_1.png"); got != want {
			t.Errorf("PanelPath() = %q, want %q", got, want)
		}
	})

	t.Run("S3 上のディレクトリでも連番を付けること", func(t *testing.T) {
		got, err := PanelPath("s3://bucket/out/PANEL_IMAGES", 5)
		if err != nil {
			t.Fatalf("PanelPath() error = %v", err)
		}
		if want := "s3://bucket/out/PANEL_IMAGES/panel_6.png"; got != want {
			t.Errorf("PanelPath() = %q, want %q", got, want)
		}
	})

	t.Run("負のインデックスはエラーになること", func(t *testing.T) {
		if _, err := PanelPath("out", -1); err == nil {
			t.Error("エラーが期待されましたが nil でした")
		}
	})
}

func TestPanelPaths(t *testing.T) {
	paths, err := PanelPaths("in", 6)
	if err != nil {
		t.Fatalf("PanelPaths() error = %v", err)
	}
	if len(paths) != 6 {
		t.Fatalf("len(paths) = %d", len(paths))
	}
	if want := filepath.Join("in", "panel_6.png"); paths[5] != want {
		t.Errorf("paths[5] = %q, want %q", paths[5], want)
	}
}
