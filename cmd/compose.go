package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-comic-kit/internal/config"
	"github.com/shouni/go-comic-kit/pkg/domain"
	"github.com/shouni/go-comic-kit/pkg/generator"
	"github.com/shouni/go-comic-kit/pkg/publisher"
	"github.com/shouni/go-comic-kit/pkg/workflow"

	"github.com/spf13/cobra"
)

var opts config.ComposeOptions

// composeCmd は、6枚の画像とキャプションからストリップを合成するのだ。
var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "パネル画像とキャプションからコミックストリップを作るのだ。",
	Long: `-i で6枚の画像、-c で6個のキャプションを順番に指定するのだ。
--script を使うと、台本（JSON）のキャプションと画像を使うのだよ。
台本に画像が書かれていなければ --image-dir の panel_N.png を読むのだ。
--script - とすると台本を標準入力から読むのだ。`,
	Example: `  comic-kit compose -i p1.png -i p2.png -i p3.png -i p4.png -i p5.png -i p6.png \
    -c "朝" -c "昼" -c "夕方" -c "夜" -c "深夜" -c "翌朝" -o output
  comic-kit compose --script script.json --image-dir PANEL_IMAGES`,
	RunE: composeCommand,
}

func init() {
	f := composeCmd.Flags()
	f.StringArrayVarP(&opts.Images, "image", "i", nil, "パネル画像のパス（6回指定するのだ）。")
	f.StringArrayVarP(&opts.Captions, "caption", "c", nil, "パネルのキャプション（6回指定するのだ）。")
	f.StringVar(&opts.ScriptFile, "script", "", "キャプションと画像を定義した台本 JSON のパス（'-' で標準入力）なのだ。")
	f.StringVar(&opts.ImageDir, "image-dir", config.DefaultPanelDir, "台本に画像がないときに panel_N.png を探すディレクトリなのだ。")
	f.StringVarP(&opts.OutputDir, "output-dir", "o", config.DefaultOutputDir, "保存先ディレクトリ（ローカル or s3://...）なのだ。")
	f.StringVar(&opts.ImageName, "image-name", "", "保存するストリップのファイル名（.png / .jpg）なのだ。")
	f.BoolVar(&opts.NoPDF, "no-pdf", false, "PDF を作らないのだ。")
	f.StringVar(&opts.Font, "font", "", "フォントのパスかシステムフォント名（builtin:goregular も使えるのだ）。")
	f.Float64Var(&opts.FontSize, "font-size", 0, "キャプションの文字サイズ (pt) なのだ。")
	f.IntVar(&opts.Workers, "workers", 0, "並列にレンダリングするパネル数なのだ。")
}

func composeCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 1. 環境変数等から基本設定をロードして、フラグで上書きするのだ
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	opts.Apply(&cfg.Comic)

	mgr, err := workflow.New(workflow.ManagerArgs{
		Config: cfg.Comic,
		S3:     cfg.S3,
		Publish: publisher.Options{
			ImageName: opts.ImageName,
			SkipPDF:   opts.NoPDF,
		},
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "コミックストリップの合成を始めるのだ！",
		"font", cfg.Comic.FontName,
		"workers", cfg.Comic.Workers,
		"output", opts.OutputDir)

	// 2. 台本か、フラグの画像とキャプションのどちらかで合成するのだ
	var result publisher.PublishResult
	if opts.ScriptFile != "" {
		result, err = runScript(ctx, mgr)
	} else {
		result, err = runFlags(ctx, mgr)
	}
	if err != nil {
		return fmt.Errorf("ストリップの合成に失敗したのだ: %w", err)
	}

	slog.InfoContext(ctx, "すべての工程が完了したのだ！", "image", result.ImagePath, "pdf", result.PDFPath)
	return nil
}

func runFlags(ctx context.Context, mgr *workflow.Manager) (publisher.PublishResult, error) {
	r, err := mgr.BuildComposeRunner()
	if err != nil {
		return publisher.PublishResult{}, err
	}
	return r.Run(ctx, opts.Images, opts.Captions, opts.OutputDir)
}

// runScript は台本の画像パスがそろっていればそれを使い、なければ画像ディレクトリの panel_N.png を使うのだ。
func runScript(ctx context.Context, mgr *workflow.Manager) (publisher.PublishResult, error) {
	script, err := generator.LoadScript(opts.ScriptFile)
	if err != nil {
		return publisher.PublishResult{}, err
	}

	paths, ok := script.ImagePaths()
	if !ok {
		paths, err = generator.NewDirImageSource(opts.ImageDir).Paths(domain.StripPanelCount)
		if err != nil {
			return publisher.PublishResult{}, err
		}
		slog.InfoContext(ctx, "台本に画像がないので画像ディレクトリを使うのだ", "dir", opts.ImageDir)
	}

	r, err := mgr.BuildComposeRunner()
	if err != nil {
		return publisher.PublishResult{}, err
	}
	return r.Run(ctx, paths, script.Sources().Captions(), opts.OutputDir)
}
