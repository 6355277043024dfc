package cmd

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-comic-kit/examples"
	"github.com/shouni/go-comic-kit/pkg/storage"

	"github.com/spf13/cobra"
)

var sampleOutput string

// sampleCmd は、compose --script で使えるサンプル台本を書き出すのだ。
var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "サンプル台本（JSON）を出力するのだ。",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := examples.LoadSampleScript(); err != nil {
			return err
		}
		if sampleOutput == "" || sampleOutput == "-" {
			_, err := cmd.OutOrStdout().Write(examples.ComicScriptJSON)
			return err
		}
		return writeSample(cmd.Context(), sampleOutput)
	},
}

func init() {
	sampleCmd.Flags().StringVarP(&sampleOutput, "output", "o", "-", "書き出し先のパス（'-' で標準出力なのだ）。")
}

func writeSample(ctx context.Context, path string) error {
	w := storage.NewLocalWriter()
	if err := w.Write(ctx, path, bytes.NewReader(examples.ComicScriptJSON), "application/json"); err != nil {
		return fmt.Errorf("サンプル台本の書き出しに失敗したのだ: %w", err)
	}
	slog.Info("サンプル台本を書き出したのだ", "path", path)
	return nil
}
