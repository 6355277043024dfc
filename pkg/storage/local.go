package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalWriter はローカルファイルシステムへ書き込む OutputWriter です。
// 一時ファイルに書き込んでからリネームするため、失敗時に途中までのファイルは残りません。
type LocalWriter struct {
	dirPerm  os.FileMode
	filePerm os.FileMode
}

// NewLocalWriter は LocalWriter を生成します。
func NewLocalWriter() *LocalWriter {
	return &LocalWriter{dirPerm: 0o755, filePerm: 0o644}
}

// Write は r の内容を path に保存します。親ディレクトリは必要に応じて作成されます。
func (w *LocalWriter) Write(ctx context.Context, path string, r io.Reader, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, w.dirPerm); err != nil {
		return fmt.Errorf("出力ディレクトリの作成に失敗しました: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("一時ファイルの作成に失敗しました: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("ファイルの書き込みに失敗しました: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("ファイルのクローズに失敗しました: %w", err)
	}
	if err := os.Chmod(tmpName, w.filePerm); err != nil {
		return fmt.Errorf("ファイル権限の設定に失敗しました: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("ファイルの配置に失敗しました: %w", err)
	}
	committed = true
	return nil
}
