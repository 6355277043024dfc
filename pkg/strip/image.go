package strip

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageRef はパネルのソース画像への参照です。ファイルパスか、デコード済みの画像のどちらかを保持します。
type ImageRef struct {
	path   string
	img    image.Image
	byPath bool
}

// FromPath はファイルパスを参照する ImageRef を返します。
func FromPath(path string) ImageRef {
	return ImageRef{path: path, byPath: true}
}

// FromImage はメモリ上の画像を参照する ImageRef を返します。
func FromImage(img image.Image) ImageRef {
	return ImageRef{img: img}
}

// FromPaths は複数のパスをまとめて ImageRef に変換します。
func FromPaths(paths []string) []ImageRef {
	refs := make([]ImageRef, len(paths))
	for i, p := range paths {
		refs[i] = FromPath(p)
	}
	return refs
}

// FromImages は複数の画像をまとめて ImageRef に変換します。
func FromImages(imgs []image.Image) []ImageRef {
	refs := make([]ImageRef, len(imgs))
	for i, img := range imgs {
		refs[i] = FromImage(img)
	}
	return refs
}

// Path は参照しているパスを返します。メモリ上の画像の場合は空文字です。
func (r ImageRef) Path() string { return r.path }

// HasPath はパスを参照しているかどうかを返します。
func (r ImageRef) HasPath() bool { return r.byPath }

// Panel は1コマ分の入力です。
type Panel struct {
	Image   ImageRef
	Caption string
}

// ImageLoader はパス参照の画像を読み込むためのインターフェースです。
type ImageLoader interface {
	Exists(path string) bool
	Open(path string) (io.ReadCloser, error)
}

// FileLoader はローカルファイルシステムから画像を読み込む ImageLoader です。
type FileLoader struct{}

func (FileLoader) Exists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func (FileLoader) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// errNilImage は画像もパスも持たない参照を示します。
var errNilImage = errors.New("画像が指定されていません")

// decode は参照をビットマップに変換します。
func decode(loader ImageLoader, ref ImageRef) (image.Image, error) {
	if !ref.HasPath() {
		if ref.img == nil {
			return nil, errNilImage
		}
		return ref.img, nil
	}
	f, err := loader.Open(ref.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("ファイルが存在しません: %w", err)
		}
		return nil, fmt.Errorf("ファイルを開けません: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}
