package asset

import (
	"fmt"

	"github.com/shouni/go-utils/urlpath"
)

const (
	// DefaultOutputDir は成果物を出力するデフォルトのディレクトリ名です。
	DefaultOutputDir = "output"
	// DefaultStripFileName は合成したコミックストリップのデフォルトのファイル名です。
	DefaultStripFileName = "comic_strip_with_text.png"
	// DefaultPDFFileName はコミックストリップを埋め込んだ PDF のデフォルトのファイル名です。
	DefaultPDFFileName = "comic_strip.pdf"
	// DefaultPanelDir は生成したパネル画像を格納するデフォルトのディレクトリ名です。
	DefaultPanelDir = "PANEL_IMAGES"
	// DefaultPanelFileName はパネル画像の共通のベースファイル名です。
	DefaultPanelFileName = "panel.png"
)

// ResolveOutputPath は、ベースとなるディレクトリパスとファイル名から、
// リモート (s3:// 等) とローカルを区別して最終的な出力パスを生成します。
func ResolveOutputPath(baseDir, fileName string) (string, error) {
	return urlpath.ResolvePath(baseDir, fileName)
}

// GenerateIndexedPath は、指定されたベースパスの拡張子の前に連番を挿入し、
// 新しいパス文字列を生成します。index は1以上の整数である必要があります。
// 例: "path/to/image.png", 1 -> "path/to/image_1.png"
func GenerateIndexedPath(basePath string, index int) (string, error) {
	return urlpath.GenerateIndexedPath(basePath, index)
}

// PanelPath はディレクトリ内の index 番目 (0始まり) のパネル画像パスを返します。
// 例: "PANEL_IMAGES", 0 -> "PANEL_IMAGES/panel_1.png"
func PanelPath(dir string, index int) (string, error) {
	base, err := ResolveOutputPath(dir, DefaultPanelFileName)
	if err != nil {
		return "", fmt.Errorf("パネル画像のパス解決に失敗しました: %w", err)
	}
	return GenerateIndexedPath(base, index+1)
}

// PanelPaths はディレクトリ内の先頭 n 枚分のパネル画像パスを順に返します。
func PanelPaths(dir string, n int) ([]string, error) {
	paths := make([]string, n)
	for i := range paths {
		p, err := PanelPath(dir, i)
		if err != nil {
			return nil, err
		}
		paths[i] = p
	}
	return paths, nil
}
