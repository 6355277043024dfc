// Package workflow は設定から保存先・合成器・出版処理を組み立て、各 Runner を提供します。
package workflow

import (
	"errors"
	"fmt"

	"github.com/shouni/go-comic-kit/pkg/config"
	"github.com/shouni/go-comic-kit/pkg/generator"
	"github.com/shouni/go-comic-kit/pkg/publisher"
	"github.com/shouni/go-comic-kit/pkg/runner"
	"github.com/shouni/go-comic-kit/pkg/storage"
	"github.com/shouni/go-comic-kit/pkg/strip"
	"github.com/shouni/go-comic-kit/pkg/typeset"
)

// ManagerArgs は Manager の初期化に必要な引数です。
type ManagerArgs struct {
	Config config.Config
	// Writer が nil の場合、ローカルと S3 を振り分ける storage.Router を使います。
	Writer storage.OutputWriter
	// S3 が nil の場合、s3:// への出力はエラーになります。
	S3      *storage.S3Config
	Loader  strip.ImageLoader
	Publish publisher.Options
	// PanelDir が空でなければ、生成したパネル画像を出力先のこのディレクトリに保存します。
	PanelDir string
}

// Manager は、ワークフローの各工程を担う Runner 群を構築・管理します。
type Manager struct {
	cfg       config.Config
	writer    storage.OutputWriter
	composer  *strip.Composer
	publisher *publisher.StripPublisher
	publish   publisher.Options
	panelDir  string
}

var _ Workflow = (*Manager)(nil)

// New は、設定を検証して新しい Manager を初期化します。
func New(args ManagerArgs) (*Manager, error) {
	if err := args.Config.Validate(); err != nil {
		return nil, fmt.Errorf("設定が不正です: %w", err)
	}

	writer, err := buildWriter(args)
	if err != nil {
		return nil, err
	}

	composer := strip.NewComposer(args.Config,
		strip.WithLoader(args.Loader),
		strip.WithResolver(typeset.NewResolver(args.Config.FontCacheTTL)),
	)

	return &Manager{
		cfg:       args.Config,
		writer:    writer,
		composer:  composer,
		publisher: publisher.NewStripPublisher(writer, composer),
		publish:   args.Publish,
		panelDir:  args.PanelDir,
	}, nil
}

// buildWriter は出力先の OutputWriter を構築します。
func buildWriter(args ManagerArgs) (storage.OutputWriter, error) {
	if args.Writer != nil {
		return args.Writer, nil
	}
	var s3 storage.OutputWriter
	if args.S3 != nil {
		w, err := storage.NewS3Writer(*args.S3)
		if err != nil {
			return nil, fmt.Errorf("S3 出力の初期化に失敗しました: %w", err)
		}
		s3 = w
	}
	return storage.NewRouter(storage.NewLocalWriter(), s3), nil
}

// Composer は構築済みの Composer を返します。
func (m *Manager) Composer() *strip.Composer { return m.composer }

// BuildComposeRunner は、既存画像からストリップを作る Runner を構築します。
func (m *Manager) BuildComposeRunner() (ComposeRunner, error) {
	return runner.NewComposeRunner(m.composer, m.publisher, m.publish), nil
}

// BuildGenerateRunner は、協調コンポーネントを使ってストリップを作る Runner を構築します。
func (m *Manager) BuildGenerateRunner(content generator.ContentSource, images generator.ImageSource) (GenerateRunner, error) {
	if content == nil {
		return nil, errors.New("ContentSource は必須です")
	}
	if images == nil {
		return nil, errors.New("ImageSource は必須です")
	}
	gen := generator.NewPanelGenerator(images, m.cfg.RateInterval, m.cfg.RateBurst, m.cfg.Workers)
	return runner.NewGenerateRunner(content, gen, m.composer, m.publisher, m.publish, m.panelDir), nil
}
