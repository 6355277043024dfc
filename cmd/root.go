package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var verbose bool

// rootCmd はアプリケーション全体のルートコマンドなのだ。
var rootCmd = &cobra.Command{
	Use:   "comic-kit",
	Short: "6コマのコミックストリップを合成するのだ。",
	Long: `6枚のパネル画像とキャプションから、枠線とキャプション帯つきの
2列×3行のコミックストリップ（PNG と PDF）を作るのだ。`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger(cmd.ErrOrStderr(), verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "デバッグログを出力するのだ。")
	rootCmd.AddCommand(composeCmd, stylesCmd, sampleCmd)
}

// newLogger はタイムスタンプつきのロガーを作るのだ。
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// setupLogger は charmbracelet/log を slog のハンドラーとして登録するのだ。
func setupLogger(w io.Writer, debug bool) {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	slog.SetDefault(slog.New(newLogger(w, level)))
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
